// internal/domain/models/derive.go
package models

import (
	"math"
	"strings"
	"time"
)

// Thresholds used by the schedule-health derivations. IsBehind and IsAtRisk
// use deliberately different windows; different dashboards depend on each.
const (
	behindProgressFloor = 50
	behindStaleDays     = 14
	atRiskDueWindowDays = 30
	atRiskStaleDays     = 30
)

// KeyResultProgress returns the key result's progress. The KR model is a
// plain 0-100 value, so this is the identity.
func KeyResultProgress(kr KeyResult) int {
	return kr.Progress
}

// ObjectiveProgress is the mean of all key-result progress values rounded to
// the nearest integer, or 0 when the objective has no key results. It is
// recomputed on every call; callers must not cache it.
func ObjectiveProgress(o Objective) int {
	if len(o.KeyResults) == 0 {
		return 0
	}
	total := 0
	for _, kr := range o.KeyResults {
		total += kr.Progress
	}
	return int(math.Round(float64(total) / float64(len(o.KeyResults))))
}

// LastUpdate returns the most recent progress-update timestamp, and false if
// the key result has never been checked in.
func LastUpdate(kr KeyResult) (time.Time, bool) {
	if len(kr.ProgressUpdates) == 0 {
		return time.Time{}, false
	}
	last := kr.ProgressUpdates[0].Date
	for _, pu := range kr.ProgressUpdates[1:] {
		if pu.Date.After(last) {
			last = pu.Date
		}
	}
	return last, true
}

// IsBehind reports whether a key result is behind schedule: progress below
// 50%, or no check-in within the last 14 days (never checked in counts as
// infinitely stale). A key result at 100% is never behind.
func IsBehind(kr KeyResult, now time.Time) bool {
	if kr.Progress >= 100 {
		return false
	}
	daysSinceUpdate := math.Inf(1)
	if last, ok := LastUpdate(kr); ok {
		daysSinceUpdate = now.Sub(last).Hours() / 24
	}
	return kr.Progress < behindProgressFloor || daysSinceUpdate > behindStaleDays
}

// IsAtRisk reports whether a key result is at risk: due within 30 days while
// under 50% progress, or not updated for more than 30 days while incomplete.
func IsAtRisk(kr KeyResult, now time.Time) bool {
	progress := KeyResultProgress(kr)

	daysRemaining := kr.DueDate.Sub(now).Hours() / 24
	if daysRemaining < atRiskDueWindowDays && progress < behindProgressFloor {
		return true
	}

	if last, ok := LastUpdate(kr); ok {
		daysSinceUpdate := now.Sub(last).Hours() / 24
		if daysSinceUpdate > atRiskStaleDays && progress < 100 {
			return true
		}
	}
	return false
}

// Initials builds an avatar placeholder from the first character of each of
// the first two space-separated name tokens, uppercased.
func Initials(name string) string {
	var b strings.Builder
	tokens := strings.Fields(name)
	if len(tokens) > 2 {
		tokens = tokens[:2]
	}
	for _, tok := range tokens {
		r := []rune(tok)
		b.WriteString(strings.ToUpper(string(r[0])))
	}
	return b.String()
}

// ClampProgress bounds a requested check-in value into the valid 0-100 range.
func ClampProgress(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
