package coordinator

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"okrstudio/internal/app/policy/okrpolicy"
	"okrstudio/internal/app/system/htmlsanitize"
	"okrstudio/internal/app/system/notify"
	"okrstudio/internal/domain/models"
)

// KeyResultDraft is the creation input for one key result.
type KeyResultDraft struct {
	Title       string    `json:"title"`
	Description string    `json:"description"`
	OwnerID     string    `json:"ownerId"`
	DueDate     time.Time `json:"dueDate"`
	Confidence  int       `json:"confidence"`
}

// ObjectiveDraft is the creation input for an objective.
type ObjectiveDraft struct {
	Title           string           `json:"title"`
	Description     string           `json:"description"`
	TeamID          string           `json:"teamId"`
	Year            int              `json:"year"`
	Quarter         int              `json:"quarter"`
	IsTeamObjective bool             `json:"isTeamObjective"`
	KeyResults      []KeyResultDraft `json:"keyResults"`
}

// CreateObjective validates the draft, mints ids, and inserts the new
// objective at the head of the list. Team objectives require team-OKR
// creation rights. Every create, personal or team, must target a team in
// the actor's own division; nobody is exempt.
func (c *Coordinator) CreateObjective(actorID string, draft ObjectiveDraft) (models.Objective, error) {
	actor, err := c.actor(actorID)
	if err != nil {
		return models.Objective{}, err
	}
	if err := validateObjectiveInput(draft.Title, len(draft.KeyResults), krDraftTitles(draft.KeyResults)); err != nil {
		return models.Objective{}, err
	}

	teamID := draft.TeamID
	if teamID == "" {
		teamID = actor.DefaultTeamID
	}

	if draft.IsTeamObjective && !okrpolicy.CanCreateTeamOkr(actor) {
		return models.Objective{}, fmt.Errorf("%w: team objectives require a leadership position", ErrNotAuthorized)
	}

	team, ok := c.state.TeamByID(teamID)
	if !ok {
		return models.Objective{}, fmt.Errorf("%w: team %s", ErrNotFound, teamID)
	}
	if team.DivisionID != actor.DivisionID {
		return models.Objective{}, fmt.Errorf("%w: objectives are limited to teams in the actor's division", ErrNotAuthorized)
	}

	now := c.now().UTC()
	year, quarter := draft.Year, draft.Quarter
	if year == 0 {
		year = now.Year()
	}
	if quarter == 0 {
		quarter = quarterOf(now)
	}

	krs := make([]models.KeyResult, 0, len(draft.KeyResults))
	for _, d := range draft.KeyResults {
		ownerID := d.OwnerID
		if ownerID == "" {
			ownerID = actor.ID
		}
		krs = append(krs, models.KeyResult{
			ID:          uuid.NewString(),
			Title:       strings.TrimSpace(d.Title),
			Description: htmlsanitize.Sanitize(d.Description),
			Progress:    0,
			OwnerID:     ownerID,
			DueDate:     d.DueDate,
			Confidence:  d.Confidence,
		})
	}

	o := models.Objective{
		ID:              uuid.NewString(),
		Title:           strings.TrimSpace(draft.Title),
		Description:     htmlsanitize.Sanitize(draft.Description),
		OwnerID:         actor.ID,
		TeamID:          teamID,
		Year:            year,
		Quarter:         quarter,
		Status:          models.StatusPlanned,
		IsTeamObjective: draft.IsTeamObjective,
		KeyResults:      krs,
		Changelog: []models.ChangelogEntry{
			{Timestamp: now, UserID: actor.ID, Change: "Objective created."},
		},
	}

	c.state.PrependObjective(o)
	c.persist("objective.create", func(ctx context.Context) error {
		return c.remote.Objectives.Create(ctx, o)
	})
	c.notifier.Notify("Objective created.", notify.Success)
	return o, nil
}

// KeyResultEdit is the edit input for one key result. An edit carries no
// progress fields: progress only moves through check-ins.
type KeyResultEdit struct {
	Title       string    `json:"title"`
	Description string    `json:"description"`
	OwnerID     string    `json:"ownerId"`
	DueDate     time.Time `json:"dueDate"`
	Confidence  int       `json:"confidence"`
}

// ObjectiveEdit is the edit input for an objective. An empty Status keeps
// the current one; At Risk and Dropped are set here and nowhere else, and
// the derived states (Planned, In Progress, Done) are rejected.
type ObjectiveEdit struct {
	Title       string          `json:"title"`
	Description string          `json:"description"`
	TeamID      string          `json:"teamId"`
	Year        int             `json:"year"`
	Quarter     int             `json:"quarter"`
	Status      models.Status   `json:"status"`
	KeyResults  []KeyResultEdit `json:"keyResults"`
}

// UpdateObjective rewrites the objective from the edit form. Incoming key
// results are reconciled against the existing ones by title first, then by
// list position, so accumulated progress and check-in history survive a
// retitle or reorder; unmatched entries are treated as new key results.
func (c *Coordinator) UpdateObjective(actorID, objectiveID string, edit ObjectiveEdit) (models.Objective, error) {
	actor, err := c.actor(actorID)
	if err != nil {
		return models.Objective{}, err
	}
	existing, ok := c.state.ObjectiveByID(objectiveID)
	if !ok {
		return models.Objective{}, fmt.Errorf("%w: objective %s", ErrNotFound, objectiveID)
	}
	if !okrpolicy.CanEditObjective(actor, existing) {
		return models.Objective{}, fmt.Errorf("%w: cannot edit this objective", ErrNotAuthorized)
	}
	if err := validateObjectiveInput(edit.Title, len(edit.KeyResults), krEditTitles(edit.KeyResults)); err != nil {
		return models.Objective{}, err
	}

	now := c.now().UTC()
	updated := existing
	updated.Title = strings.TrimSpace(edit.Title)
	updated.Description = htmlsanitize.Sanitize(edit.Description)
	if edit.TeamID != "" {
		updated.TeamID = edit.TeamID
	}
	if edit.Year != 0 {
		updated.Year = edit.Year
	}
	if edit.Quarter != 0 {
		updated.Quarter = edit.Quarter
	}
	switch edit.Status {
	case "":
		// keep the current status
	case models.StatusAtRisk, models.StatusDropped:
		updated.Status = edit.Status
	default:
		// Planned/In Progress/Done are derived from check-in progress and
		// cannot be set by hand.
		return models.Objective{}, fmt.Errorf("%w: status %q cannot be set manually", ErrInvalid, edit.Status)
	}
	updated.KeyResults = reconcileKeyResults(actor.ID, existing.KeyResults, edit.KeyResults)
	updated.Changelog = append(append([]models.ChangelogEntry(nil), existing.Changelog...),
		models.ChangelogEntry{Timestamp: now, UserID: actor.ID, Change: "Objective updated."})

	c.state.ReplaceObjective(updated)
	c.persist("objective.update", func(ctx context.Context) error {
		return c.remote.Objectives.Update(ctx, updated)
	})
	c.notifier.Notify("Objective updated.", notify.Success)
	return updated, nil
}

// CheckIn appends a progress update to a key result and moves its progress
// to the new value. This is the only path that recomputes the objective's
// lifecycle status from aggregate progress.
func (c *Coordinator) CheckIn(actorID, objectiveID, krID string, value int, comment string) (models.Objective, error) {
	actor, err := c.actor(actorID)
	if err != nil {
		return models.Objective{}, err
	}
	o, ok := c.state.ObjectiveByID(objectiveID)
	if !ok {
		return models.Objective{}, fmt.Errorf("%w: objective %s", ErrNotFound, objectiveID)
	}
	if !okrpolicy.CanCheckIn(actor, o) {
		return models.Objective{}, fmt.Errorf("%w: only the objective owner can check in", ErrNotAuthorized)
	}

	idx := -1
	for i := range o.KeyResults {
		if o.KeyResults[i].ID == krID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return models.Objective{}, fmt.Errorf("%w: key result %s", ErrNotFound, krID)
	}

	now := c.now().UTC()
	clamped := models.ClampProgress(value)

	updated := o
	updated.KeyResults = append([]models.KeyResult(nil), o.KeyResults...)
	kr := updated.KeyResults[idx]
	kr.ProgressUpdates = append(append([]models.ProgressUpdate(nil), kr.ProgressUpdates...),
		models.ProgressUpdate{
			ID:      uuid.NewString(),
			KrID:    kr.ID,
			Value:   clamped,
			Comment: comment,
			Date:    now,
		})
	kr.Progress = clamped
	updated.KeyResults[idx] = kr

	updated.Status = deriveStatus(updated)
	updated.Changelog = append(append([]models.ChangelogEntry(nil), o.Changelog...),
		models.ChangelogEntry{
			Timestamp: now,
			UserID:    actor.ID,
			Change:    fmt.Sprintf("Checked in on %q: %d%%.", kr.Title, clamped),
		})

	c.state.ReplaceObjective(updated)
	c.persist("objective.checkin", func(ctx context.Context) error {
		return c.remote.Objectives.Update(ctx, updated)
	})
	c.notifier.Notify("Check-in recorded.", notify.Success)
	return updated, nil
}

// DeleteObjective removes the objective. Only the owner may delete, even
// for team objectives. CFR sessions referencing the objective are left in
// place.
func (c *Coordinator) DeleteObjective(actorID, objectiveID string) error {
	actor, err := c.actor(actorID)
	if err != nil {
		return err
	}
	o, ok := c.state.ObjectiveByID(objectiveID)
	if !ok {
		return fmt.Errorf("%w: objective %s", ErrNotFound, objectiveID)
	}
	if !okrpolicy.CanDeleteObjective(actor, o) {
		return fmt.Errorf("%w: only the owner can delete an objective", ErrNotAuthorized)
	}

	c.state.RemoveObjective(objectiveID)
	c.persist("objective.delete", func(ctx context.Context) error {
		return c.remote.Objectives.Delete(ctx, objectiveID)
	})
	c.notifier.Notify("Objective deleted.", notify.Success)
	return nil
}

// reconcileKeyResults maps edited key results onto the existing set. A
// title match wins; failing that, the entry at the same position; anything
// left unmatched is a brand-new key result starting at zero progress.
func reconcileKeyResults(actorID string, existing []models.KeyResult, edits []KeyResultEdit) []models.KeyResult {
	out := make([]models.KeyResult, 0, len(edits))
	for i, e := range edits {
		title := strings.TrimSpace(e.Title)

		var match *models.KeyResult
		for j := range existing {
			if existing[j].Title == title {
				match = &existing[j]
				break
			}
		}
		if match == nil && i < len(existing) {
			match = &existing[i]
		}

		kr := models.KeyResult{
			Title:       title,
			Description: htmlsanitize.Sanitize(e.Description),
			OwnerID:     e.OwnerID,
			DueDate:     e.DueDate,
			Confidence:  e.Confidence,
		}
		if match != nil {
			kr.ID = match.ID
			kr.Progress = match.Progress
			kr.ProgressUpdates = match.ProgressUpdates
			if kr.OwnerID == "" {
				kr.OwnerID = match.OwnerID
			}
		} else {
			kr.ID = uuid.NewString()
			if kr.OwnerID == "" {
				kr.OwnerID = actorID
			}
		}
		out = append(out, kr)
	}
	return out
}

// deriveStatus maps aggregate progress onto the automatic lifecycle
// states. Manual states (At Risk, Dropped) are deliberately overwritten
// here: a check-in signals the objective is moving again.
func deriveStatus(o models.Objective) models.Status {
	p := models.ObjectiveProgress(o)
	switch {
	case p >= 100:
		return models.StatusDone
	case p > 0:
		return models.StatusInProgress
	default:
		return models.StatusPlanned
	}
}

func validateObjectiveInput(title string, krCount int, krTitles []string) error {
	if strings.TrimSpace(title) == "" {
		return fmt.Errorf("%w: objective title is required", ErrInvalid)
	}
	if krCount == 0 {
		return fmt.Errorf("%w: at least one key result is required", ErrInvalid)
	}
	for _, t := range krTitles {
		if strings.TrimSpace(t) == "" {
			return fmt.Errorf("%w: key result titles are required", ErrInvalid)
		}
	}
	return nil
}

func krDraftTitles(drafts []KeyResultDraft) []string {
	titles := make([]string, 0, len(drafts))
	for _, d := range drafts {
		titles = append(titles, d.Title)
	}
	return titles
}

func krEditTitles(edits []KeyResultEdit) []string {
	titles := make([]string, 0, len(edits))
	for _, e := range edits {
		titles = append(titles, e.Title)
	}
	return titles
}

func quarterOf(t time.Time) int {
	return (int(t.Month())-1)/3 + 1
}
