package models_test

import (
	"testing"
	"time"

	"okrstudio/internal/domain/models"
)

var now = time.Date(2025, 11, 10, 12, 0, 0, 0, time.UTC)

func krWithUpdate(progress int, lastUpdate time.Time, due time.Time) models.KeyResult {
	return models.KeyResult{
		ID:       "kr-1",
		Title:    "Ship the thing",
		Progress: progress,
		DueDate:  due,
		ProgressUpdates: []models.ProgressUpdate{
			{ID: "pu-1", KrID: "kr-1", Value: progress, Date: lastUpdate},
		},
	}
}

func TestObjectiveProgress_Empty(t *testing.T) {
	o := models.Objective{ID: "obj-1"}
	if got := models.ObjectiveProgress(o); got != 0 {
		t.Errorf("expected 0 for objective without key results, got %d", got)
	}
}

func TestObjectiveProgress_Mean(t *testing.T) {
	o := models.Objective{
		KeyResults: []models.KeyResult{
			{Progress: 0},
			{Progress: 100},
		},
	}
	if got := models.ObjectiveProgress(o); got != 50 {
		t.Errorf("expected 50, got %d", got)
	}

	o.KeyResults = append(o.KeyResults, models.KeyResult{Progress: 50})
	if got := models.ObjectiveProgress(o); got != 50 {
		t.Errorf("expected 50 for {0,100,50}, got %d", got)
	}
}

func TestObjectiveProgress_Rounds(t *testing.T) {
	o := models.Objective{
		KeyResults: []models.KeyResult{
			{Progress: 33},
			{Progress: 33},
			{Progress: 34},
		},
	}
	// 100/3 = 33.33 -> 33
	if got := models.ObjectiveProgress(o); got != 33 {
		t.Errorf("expected 33, got %d", got)
	}

	o.KeyResults = []models.KeyResult{{Progress: 50}, {Progress: 51}}
	// 50.5 rounds up
	if got := models.ObjectiveProgress(o); got != 51 {
		t.Errorf("expected 51, got %d", got)
	}
}

func TestLastUpdate_None(t *testing.T) {
	kr := models.KeyResult{ID: "kr-1"}
	if _, ok := models.LastUpdate(kr); ok {
		t.Error("expected no last update for KR without check-ins")
	}
}

func TestLastUpdate_PicksMax(t *testing.T) {
	early := now.AddDate(0, 0, -20)
	late := now.AddDate(0, 0, -3)
	kr := models.KeyResult{
		ProgressUpdates: []models.ProgressUpdate{
			{Date: late},
			{Date: early},
		},
	}
	got, ok := models.LastUpdate(kr)
	if !ok {
		t.Fatal("expected a last update")
	}
	if !got.Equal(late) {
		t.Errorf("expected %v, got %v", late, got)
	}
}

func TestIsBehind_LowProgress(t *testing.T) {
	// Updated 3 days ago but only at 30%: behind on the progress rule.
	kr := krWithUpdate(30, now.AddDate(0, 0, -3), now.AddDate(0, 2, 0))
	if !models.IsBehind(kr, now) {
		t.Error("expected KR at 30% to be behind")
	}
}

func TestIsBehind_Stale(t *testing.T) {
	// 70% progress but no check-in for 20 days: behind on the staleness rule.
	kr := krWithUpdate(70, now.AddDate(0, 0, -20), now.AddDate(0, 2, 0))
	if !models.IsBehind(kr, now) {
		t.Error("expected stale KR to be behind")
	}
}

func TestIsBehind_NeverUpdated(t *testing.T) {
	kr := models.KeyResult{Progress: 80, DueDate: now.AddDate(0, 2, 0)}
	if !models.IsBehind(kr, now) {
		t.Error("expected never-updated KR to be behind")
	}
}

func TestIsBehind_OnTrack(t *testing.T) {
	kr := krWithUpdate(70, now.AddDate(0, 0, -3), now.AddDate(0, 2, 0))
	if models.IsBehind(kr, now) {
		t.Error("expected 70% KR updated 3 days ago not to be behind")
	}
}

func TestIsBehind_CompleteNeverBehind(t *testing.T) {
	// 100% with a months-old last update is still not behind.
	kr := krWithUpdate(100, now.AddDate(0, -6, 0), now.AddDate(0, -1, 0))
	if models.IsBehind(kr, now) {
		t.Error("expected completed KR never to be behind")
	}
}

func TestIsAtRisk_DeadlineRule(t *testing.T) {
	// Due in 10 days at 30%: at risk.
	kr := krWithUpdate(30, now.AddDate(0, 0, -3), now.AddDate(0, 0, 10))
	if !models.IsAtRisk(kr, now) {
		t.Error("expected KR due in 10 days at 30% to be at risk")
	}
}

func TestIsAtRisk_StaleRule(t *testing.T) {
	// Due far out, 70% progress, but untouched for 40 days: at risk.
	kr := krWithUpdate(70, now.AddDate(0, 0, -40), now.AddDate(0, 6, 0))
	if !models.IsAtRisk(kr, now) {
		t.Error("expected KR untouched for 40 days to be at risk")
	}
}

func TestIsAtRisk_HealthyKr(t *testing.T) {
	kr := krWithUpdate(60, now.AddDate(0, 0, -5), now.AddDate(0, 3, 0))
	if models.IsAtRisk(kr, now) {
		t.Error("expected healthy KR not to be at risk")
	}
}

func TestIsAtRisk_CompleteKr(t *testing.T) {
	// Completed KR: neither rule fires regardless of staleness or deadline.
	kr := krWithUpdate(100, now.AddDate(0, 0, -90), now.AddDate(0, 0, 5))
	if models.IsAtRisk(kr, now) {
		t.Error("expected completed KR not to be at risk")
	}
}

func TestBehindAndAtRiskScenario(t *testing.T) {
	// Last update 20 days ago at 30%, due in 10 days: behind (progress rule)
	// and at risk (deadline rule).
	kr := krWithUpdate(30, now.AddDate(0, 0, -20), now.AddDate(0, 0, 10))
	if !models.IsBehind(kr, now) {
		t.Error("expected KR to be behind")
	}
	if !models.IsAtRisk(kr, now) {
		t.Error("expected KR to be at risk")
	}

	kr.Progress = 100
	if models.IsBehind(kr, now) || models.IsAtRisk(kr, now) {
		t.Error("expected completed KR to be neither behind nor at risk")
	}
}

func TestInitials(t *testing.T) {
	cases := []struct {
		name string
		want string
	}{
		{"Dana Park", "DP"},
		{"dana park", "DP"},
		{"Madison", "M"},
		{"Ana Maria Silva", "AM"},
		{"", ""},
	}
	for _, c := range cases {
		if got := models.Initials(c.name); got != c.want {
			t.Errorf("Initials(%q): got %q, want %q", c.name, got, c.want)
		}
	}
}

func TestClampProgress(t *testing.T) {
	if got := models.ClampProgress(-10); got != 0 {
		t.Errorf("expected -10 to clamp to 0, got %d", got)
	}
	if got := models.ClampProgress(150); got != 100 {
		t.Errorf("expected 150 to clamp to 100, got %d", got)
	}
	if got := models.ClampProgress(42); got != 42 {
		t.Errorf("expected 42 unchanged, got %d", got)
	}
}
