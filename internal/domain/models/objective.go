// internal/domain/models/objective.go
package models

import "time"

// Status is the lifecycle state of an objective.
//
// Planned, In Progress, and Done are derived from aggregate key-result
// progress and are only recomputed by the check-in path. At Risk and Dropped
// are manual administrative states; nothing enters or leaves them
// automatically.
type Status string

const (
	StatusPlanned    Status = "Planned"
	StatusInProgress Status = "In Progress"
	StatusDone       Status = "Done"
	StatusAtRisk     Status = "At Risk"
	StatusDropped    Status = "Dropped"
)

// ProgressUpdate is one check-in entry on a key result. Updates are
// append-only: never deleted, never reordered.
type ProgressUpdate struct {
	ID      string    `json:"id"`
	KrID    string    `json:"krId"`
	Value   int       `json:"value"` // 0-100, clamped at check-in
	Comment string    `json:"comment,omitempty"`
	Date    time.Time `json:"date"`
}

// KeyResult is a quantitatively tracked outcome belonging to one objective.
// Progress always equals the value of the most recent progress update.
type KeyResult struct {
	ID              string           `json:"id"`
	Title           string           `json:"title"`
	Description     string           `json:"description,omitempty"`
	Progress        int              `json:"progress"` // 0-100
	OwnerID         string           `json:"ownerId,omitempty"`
	DueDate         time.Time        `json:"dueDate"`
	Confidence      int              `json:"confidence"` // 0-100
	ProgressUpdates []ProgressUpdate `json:"progressUpdates"`
}

// ChangelogEntry is one append-only audit record on an objective.
type ChangelogEntry struct {
	Timestamp time.Time `json:"timestamp"`
	UserID    string    `json:"userId"`
	Change    string    `json:"change"`
}

// Objective is a quarterly goal owned by a user or, when IsTeamObjective is
// set, by a team. It exclusively owns its key results and changelog.
type Objective struct {
	ID              string           `json:"id"`
	Title           string           `json:"title"`
	Description     string           `json:"description,omitempty"`
	OwnerID         string           `json:"ownerId"`
	TeamID          string           `json:"teamId,omitempty"`
	Year            int              `json:"year"`
	Quarter         int              `json:"quarter"`
	Status          Status           `json:"status"`
	KeyResults      []KeyResult      `json:"keyResults"`
	Changelog       []ChangelogEntry `json:"changelog"`
	IsTeamObjective bool             `json:"isTeamObjective,omitempty"`
}

// KeyResultByID returns the key result with the given id, if present.
func (o Objective) KeyResultByID(id string) (KeyResult, bool) {
	for _, kr := range o.KeyResults {
		if kr.ID == id {
			return kr, true
		}
	}
	return KeyResult{}, false
}
