package coordinator

import (
	"okrstudio/internal/app/policy/cfrpolicy"
	"okrstudio/internal/app/policy/okrpolicy"
	"okrstudio/internal/domain/models"
)

// VisibleObjectives returns the objectives the actor may see, newest
// first. A dangling owner id (owner deleted, no cascade) evaluates as a
// zero-valued user, so such objectives stay visible to the CEO and vanish
// for everyone below.
func (c *Coordinator) VisibleObjectives(actorID string) ([]models.Objective, error) {
	actor, err := c.actor(actorID)
	if err != nil {
		return nil, err
	}
	var out []models.Objective
	for _, o := range c.state.Objectives() {
		owner, _ := c.state.UserByID(o.OwnerID)
		owner.ID = o.OwnerID
		if okrpolicy.CanViewOkr(actor, o, owner) {
			out = append(out, o)
		}
	}
	return out, nil
}

// VisibleCfrSessions returns the CFR sessions the actor may see. CFR
// visibility keys off the owner of the session's objective, not the
// session author.
func (c *Coordinator) VisibleCfrSessions(actorID string) ([]models.CfrSession, error) {
	actor, err := c.actor(actorID)
	if err != nil {
		return nil, err
	}
	var out []models.CfrSession
	for _, s := range c.state.CfrSessions() {
		var owner models.User
		if o, ok := c.state.ObjectiveByID(s.ObjectiveID); ok {
			owner, _ = c.state.UserByID(o.OwnerID)
			owner.ID = o.OwnerID
		}
		if cfrpolicy.CanViewCfr(actor, owner) {
			out = append(out, s)
		}
	}
	return out, nil
}
