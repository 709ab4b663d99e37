package cfrpolicy_test

import (
	"testing"

	"okrstudio/internal/app/policy/cfrpolicy"
	"okrstudio/internal/domain/models"
)

func user(id, role, divisionID, teamID string) models.User {
	return models.User{
		ID:            id,
		Role:          role,
		DivisionID:    divisionID,
		DefaultTeamID: teamID,
		TeamIDs:       []string{teamID},
	}
}

func TestCanViewCfr_CEO(t *testing.T) {
	owner := user("u1", models.RoleMember, "div-a", "team-1")
	ceo := user("u2", models.RoleMember, "div-b", "team-9")
	ceo.Position = models.PositionCEO
	if !cfrpolicy.CanViewCfr(ceo, owner) {
		t.Error("CEO should see all CFR sessions")
	}
}

func TestCanViewCfr_DivisionRanks(t *testing.T) {
	owner := user("u1", models.RoleMember, "div-a", "team-1")

	head := user("u2", models.RoleMember, "div-a", "team-2")
	head.Position = models.PositionDivisionHead
	if !cfrpolicy.CanViewCfr(head, owner) {
		t.Error("division head should see CFR within their division")
	}

	head.DivisionID = "div-b"
	if cfrpolicy.CanViewCfr(head, owner) {
		t.Error("division head should not see CFR outside their division")
	}
}

func TestCanViewCfr_AdminTeamFloor(t *testing.T) {
	owner := user("u1", models.RoleMember, "div-a", "team-1")

	// Admin without a qualifying rank falls back to team-level visibility,
	// not global.
	admin := user("u2", models.RoleAdmin, "div-a", "team-1")
	if !cfrpolicy.CanViewCfr(admin, owner) {
		t.Error("admin should see CFR within their own team")
	}

	admin.DefaultTeamID = "team-2"
	if cfrpolicy.CanViewCfr(admin, owner) {
		t.Error("admin should not see CFR outside their team")
	}
}

func TestCanViewCfr_MemberSelfOnly(t *testing.T) {
	owner := user("u1", models.RoleMember, "div-a", "team-1")

	// A plain member on the same team still cannot read someone else's CFR.
	teammate := user("u2", models.RoleMember, "div-a", "team-1")
	if cfrpolicy.CanViewCfr(teammate, owner) {
		t.Error("plain member must not see a teammate's CFR")
	}

	if !cfrpolicy.CanViewCfr(owner, owner) {
		t.Error("member must see their own CFR")
	}
}

func TestCanWriteManagerFeedback(t *testing.T) {
	admin := user("u1", models.RoleAdmin, "div-a", "team-1")
	if !cfrpolicy.CanWriteManagerFeedback(admin) {
		t.Error("admin should write manager feedback")
	}
	member := user("u2", models.RoleMember, "div-a", "team-1")
	if cfrpolicy.CanWriteManagerFeedback(member) {
		t.Error("member must not write manager feedback")
	}
}
