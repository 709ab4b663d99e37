package coordinator

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"go.uber.org/zap"

	"okrstudio/internal/app/state"
	"okrstudio/internal/app/store/docstore"
	objectivestore "okrstudio/internal/app/store/objectives"
	"okrstudio/internal/app/system/notify"
	"okrstudio/internal/domain/models"
)

var testNow = time.Date(2025, time.November, 10, 12, 0, 0, 0, time.UTC)

type recorder struct {
	messages   []string
	severities []notify.Severity
}

func (r *recorder) Notify(message string, severity notify.Severity) {
	r.messages = append(r.messages, message)
	r.severities = append(r.severities, severity)
}

func (r *recorder) lastSeverity() notify.Severity {
	if len(r.severities) == 0 {
		return ""
	}
	return r.severities[len(r.severities)-1]
}

func testDataset() state.Dataset {
	return state.Dataset{
		Divisions: []models.Division{
			{ID: "d1", Name: "Product"},
			{ID: "d2", Name: "Operations"},
		},
		Teams: []models.Team{
			{ID: "t1", Name: "Platform", DivisionID: "d1", DivisionName: "Product", Members: []string{"u-admin", "u-owner"}},
			{ID: "t2", Name: "Growth", DivisionID: "d1", DivisionName: "Product", Members: []string{"u-other"}},
			{ID: "t3", Name: "Facilities", DivisionID: "d2", DivisionName: "Operations", Members: []string{"u-ops"}},
		},
		Users: []models.User{
			{ID: "u-ceo", Name: "Evelyn Cho", Role: models.RoleAdmin, Position: models.PositionCEO, DivisionID: "d1", DefaultTeamID: "t1", TeamIDs: []string{"t1"}},
			{ID: "u-admin", Name: "Dana Park", Role: models.RoleAdmin, Position: models.PositionDivisionHead, DivisionID: "d1", DefaultTeamID: "t1", TeamIDs: []string{"t1"}},
			{ID: "u-lead", Name: "Marcus Webb", Role: models.RoleMember, Position: models.PositionTechLead, DivisionID: "d1", DefaultTeamID: "t1", TeamIDs: []string{"t1"}},
			{ID: "u-owner", Name: "Riley Cho", Role: models.RoleMember, DivisionID: "d1", DefaultTeamID: "t1", TeamIDs: []string{"t1"}},
			{ID: "u-other", Name: "Tom Iversen", Role: models.RoleMember, DivisionID: "d1", DefaultTeamID: "t2", TeamIDs: []string{"t2"}},
			{ID: "u-ops", Name: "Sofia Marin", Role: models.RoleMember, DivisionID: "d2", DefaultTeamID: "t3", TeamIDs: []string{"t3"}},
		},
		Objectives: []models.Objective{
			{
				ID: "o-personal", Title: "Ship the importer", OwnerID: "u-owner", TeamID: "t1",
				Year: 2025, Quarter: 4, Status: models.StatusInProgress,
				KeyResults: []models.KeyResult{
					{
						ID: "k1", Title: "Migrate 50 accounts", Progress: 30, OwnerID: "u-owner",
						DueDate: testNow.AddDate(0, 2, 0),
						ProgressUpdates: []models.ProgressUpdate{
							{ID: "pu1", KrID: "k1", Value: 30, Date: testNow.AddDate(0, 0, -5)},
						},
					},
				},
				Changelog: []models.ChangelogEntry{
					{Timestamp: testNow.AddDate(0, -1, 0), UserID: "u-owner", Change: "Objective created."},
				},
			},
			{
				ID: "o-team", Title: "Stabilize the platform", OwnerID: "u-owner", TeamID: "t1",
				Year: 2025, Quarter: 4, Status: models.StatusPlanned, IsTeamObjective: true,
				KeyResults: []models.KeyResult{
					{ID: "k2", Title: "Cut error budget burn", Progress: 0, OwnerID: "u-owner", DueDate: testNow.AddDate(0, 2, 0)},
				},
				Changelog: []models.ChangelogEntry{
					{Timestamp: testNow.AddDate(0, -1, 0), UserID: "u-owner", Change: "Objective created."},
				},
			},
		},
	}
}

// newTestCoordinator runs offline (no remote) with a fixed clock and an
// inline executor.
func newTestCoordinator(t *testing.T) (*Coordinator, *state.Store, *recorder) {
	t.Helper()
	st := state.New(testDataset())
	rec := &recorder{}
	c := New(st, nil, rec, zap.NewNop())
	c.now = func() time.Time { return testNow }
	c.run = func(f func()) { f() }
	return c, st, rec
}

func withRemote(t *testing.T, c *Coordinator, handler http.Handler) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	client := docstore.New(srv.URL, "test-key", 300, srv.Client(), zap.NewNop())
	c.remote = &Remote{Objectives: objectivestore.New(client)}
	return srv
}

func TestPersist_SendsObjectiveUpdate(t *testing.T) {
	c, _, _ := newTestCoordinator(t)

	var gotMethod, gotPath string
	withRemote(t, c, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod, gotPath = r.Method, r.URL.Path
		w.Write([]byte(`{}`))
	}))

	if _, err := c.CheckIn("u-owner", "o-personal", "k1", 45, "steady"); err != nil {
		t.Fatalf("CheckIn failed: %v", err)
	}
	if gotMethod != http.MethodPatch {
		t.Errorf("expected PATCH, got %s", gotMethod)
	}
	if gotPath != "/objectives/o-personal" {
		t.Errorf("unexpected path %s", gotPath)
	}
}

func TestPersist_FailureKeepsLocalChangeAndNotifies(t *testing.T) {
	c, st, rec := newTestCoordinator(t)

	withRemote(t, c, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))

	if _, err := c.CheckIn("u-owner", "o-personal", "k1", 45, ""); err != nil {
		t.Fatalf("CheckIn failed: %v", err)
	}

	// Local state keeps the change despite the failed write.
	o, _ := st.ObjectiveByID("o-personal")
	if o.KeyResults[0].Progress != 45 {
		t.Errorf("expected local progress 45, got %d", o.KeyResults[0].Progress)
	}
	if rec.lastSeverity() != notify.Error {
		t.Errorf("expected an error notification after failed persistence, got %v", rec.severities)
	}
}

func TestOffline_MutationsStillApply(t *testing.T) {
	c, st, rec := newTestCoordinator(t)
	if !c.Offline() {
		t.Fatal("expected offline coordinator")
	}
	if _, err := c.CheckIn("u-owner", "o-personal", "k1", 60, ""); err != nil {
		t.Fatalf("CheckIn failed: %v", err)
	}
	o, _ := st.ObjectiveByID("o-personal")
	if o.KeyResults[0].Progress != 60 {
		t.Errorf("expected progress 60, got %d", o.KeyResults[0].Progress)
	}
	if rec.lastSeverity() != notify.Success {
		t.Errorf("expected success notification, got %v", rec.severities)
	}
}
