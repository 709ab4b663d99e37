// Package cfrpolicy provides the authorization rules for CFR sessions.
//
// CFR visibility is intentionally stricter than OKR visibility because
// sessions contain feedback text:
//   - The CEO sees everything
//   - Division heads, tech leads, and the admin office head see their division
//   - Directors (by job title) see their division
//   - Admins without a qualifying rank see only their own team
//   - Plain members see only their own sessions, even within the same team
package cfrpolicy

import (
	"okrstudio/internal/domain/models"
)

var divisionRankPositions = map[string]bool{
	models.PositionDivisionHead:    true,
	models.PositionTechLead:        true,
	models.PositionAdminOfficeHead: true,
}

// CanViewCfr reports whether viewer may see CFR sessions for objectives
// owned by owner. Rules are evaluated top-down; first match wins.
func CanViewCfr(viewer, owner models.User) bool {
	if viewer.Position == models.PositionCEO {
		return true
	}
	if divisionRankPositions[viewer.Position] {
		return viewer.DivisionID == owner.DivisionID
	}
	if viewer.JobTitle == models.JobTitleDirector {
		return viewer.DivisionID == owner.DivisionID
	}
	if viewer.IsAdmin() {
		return viewer.DefaultTeamID == owner.DefaultTeamID
	}
	return viewer.ID == owner.ID
}

// CanWriteManagerFeedback reports whether actor may author the
// manager-feedback field of a CFR session. Admin role only.
func CanWriteManagerFeedback(actor models.User) bool {
	return actor.IsAdmin()
}
