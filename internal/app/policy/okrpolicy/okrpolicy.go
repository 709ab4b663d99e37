// Package okrpolicy provides the authorization rules for viewing and
// managing objectives.
//
// Visibility rules (first match wins):
//   - Owners always see their own objectives
//   - The CEO sees everything, regardless of division or team
//   - Division heads, tech leads, and the admin office head see their division
//   - Directors (by job title) see their division
//   - Everyone else sees objectives within their own default team
//
// Edit/delete rules are deliberately asymmetric for team OKRs: any admin may
// edit a team OKR, but only the original owner may delete it.
package okrpolicy

import (
	"okrstudio/internal/domain/models"
)

// divisionRankPositions are the positions granted division-wide visibility
// and team-OKR creation rights.
var divisionRankPositions = map[string]bool{
	models.PositionDivisionHead:    true,
	models.PositionTechLead:        true,
	models.PositionAdminOfficeHead: true,
}

// CanViewOkr reports whether viewer may see an objective owned by owner.
// Rules are evaluated top-down; order matters. A CEO nominally assigned to a
// different division still sees everything because the CEO rule precedes the
// division rules.
func CanViewOkr(viewer models.User, objective models.Objective, owner models.User) bool {
	if viewer.ID == owner.ID {
		return true
	}
	if viewer.Position == models.PositionCEO {
		return true
	}
	if divisionRankPositions[viewer.Position] {
		return viewer.DivisionID == owner.DivisionID
	}
	if viewer.JobTitle == models.JobTitleDirector {
		return viewer.DivisionID == owner.DivisionID
	}
	return viewer.DefaultTeamID == owner.DefaultTeamID
}

// CanCreateTeamOkr reports whether viewer may create a team objective.
//
// Authorization:
//   - CEO: yes
//   - Division head / tech lead / admin office head: yes
//   - Director by job title (even without a ranked position): yes
//   - Everyone else: no
func CanCreateTeamOkr(viewer models.User) bool {
	if viewer.Position == models.PositionCEO {
		return true
	}
	if divisionRankPositions[viewer.Position] {
		return true
	}
	return viewer.JobTitle == models.JobTitleDirector
}

// CanEditObjective reports whether actor may edit the objective. Team
// objectives are editable by admins only; personal objectives only by their
// owner.
func CanEditObjective(actor models.User, objective models.Objective) bool {
	if objective.IsTeamObjective {
		return actor.IsAdmin()
	}
	return objective.OwnerID == actor.ID
}

// CanDeleteObjective reports whether actor may delete the objective. Only
// the owner may delete, even for team objectives.
func CanDeleteObjective(actor models.User, objective models.Objective) bool {
	return objective.OwnerID == actor.ID
}

// CanCheckIn reports whether actor may record key-result progress on the
// objective. Check-ins are restricted to the objective owner regardless of
// objective type.
func CanCheckIn(actor models.User, objective models.Objective) bool {
	return objective.OwnerID == actor.ID
}
