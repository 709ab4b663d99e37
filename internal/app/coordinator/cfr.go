package coordinator

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"okrstudio/internal/app/policy/cfrpolicy"
	"okrstudio/internal/app/system/htmlsanitize"
	"okrstudio/internal/app/system/notify"
	"okrstudio/internal/domain/models"
)

// CfrDraft is the save input for a monthly CFR session. Saves are upserts
// keyed by (objective, year, month); there is never more than one session
// per objective per month.
type CfrDraft struct {
	ObjectiveID     string               `json:"objectiveId"`
	Year            int                  `json:"year"`
	Quarter         int                  `json:"quarter"`
	Month           int                  `json:"month"`
	WhatHappened    string               `json:"whatHappened"`
	Challenges      string               `json:"challenges"`
	NextPlans       string               `json:"nextPlans"`
	Recognitions    []models.Recognition `json:"recognitions"`
	ManagerFeedback string               `json:"managerFeedback"`
}

// SaveCfrSession creates or updates the month's session for an objective.
// The original author and creation time survive updates; only admins may
// change the manager-feedback field.
func (c *Coordinator) SaveCfrSession(actorID string, draft CfrDraft) (models.CfrSession, error) {
	actor, err := c.actor(actorID)
	if err != nil {
		return models.CfrSession{}, err
	}
	if _, ok := c.state.ObjectiveByID(draft.ObjectiveID); !ok {
		return models.CfrSession{}, fmt.Errorf("%w: objective %s", ErrNotFound, draft.ObjectiveID)
	}
	if draft.Month < 1 || draft.Month > 12 {
		return models.CfrSession{}, fmt.Errorf("%w: month %d out of range", ErrInvalid, draft.Month)
	}

	now := c.now().UTC()
	existing, exists := c.state.CfrSessionForMonth(draft.ObjectiveID, draft.Year, draft.Month)

	feedback := htmlsanitize.Sanitize(draft.ManagerFeedback)
	if feedback != existing.ManagerFeedback && !cfrpolicy.CanWriteManagerFeedback(actor) {
		return models.CfrSession{}, fmt.Errorf("%w: manager feedback requires the admin role", ErrNotAuthorized)
	}

	recognitions := make([]models.Recognition, 0, len(draft.Recognitions))
	for _, r := range draft.Recognitions {
		recognitions = append(recognitions, models.Recognition{
			MemberID: r.MemberID,
			Comment:  htmlsanitize.Sanitize(r.Comment),
		})
	}

	session := models.CfrSession{
		ObjectiveID:     draft.ObjectiveID,
		AuthorID:        actor.ID,
		Year:            draft.Year,
		Quarter:         draft.Quarter,
		Month:           draft.Month,
		WhatHappened:    htmlsanitize.Sanitize(draft.WhatHappened),
		Challenges:      htmlsanitize.Sanitize(draft.Challenges),
		NextPlans:       htmlsanitize.Sanitize(draft.NextPlans),
		Recognitions:    recognitions,
		ManagerFeedback: feedback,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if exists {
		session.ID = existing.ID
		session.AuthorID = existing.AuthorID
		session.CreatedAt = existing.CreatedAt
	} else {
		session.ID = uuid.NewString()
	}

	c.state.PutCfrSession(session)
	if exists {
		c.persist("cfr.update", func(ctx context.Context) error {
			return c.remote.Cfr.Update(ctx, session)
		})
	} else {
		c.persist("cfr.create", func(ctx context.Context) error {
			return c.remote.Cfr.Create(ctx, session)
		})
	}
	c.notifier.Notify("CFR session saved.", notify.Success)
	return session, nil
}
