package okrpolicy_test

import (
	"testing"

	"okrstudio/internal/app/policy/okrpolicy"
	"okrstudio/internal/domain/models"
)

func member(id, divisionID, teamID string) models.User {
	return models.User{
		ID:            id,
		Role:          models.RoleMember,
		DivisionID:    divisionID,
		DefaultTeamID: teamID,
		TeamIDs:       []string{teamID},
	}
}

func TestCanViewOkr_OwnerAlwaysSees(t *testing.T) {
	owner := member("u1", "div-a", "team-1")
	obj := models.Objective{ID: "obj-1", OwnerID: owner.ID}

	// Even with every other relationship mismatched, the owner sees their own.
	viewer := owner
	viewer.DivisionID = "div-z"
	viewer.DefaultTeamID = "team-z"
	if !okrpolicy.CanViewOkr(viewer, obj, owner) {
		t.Error("owner must always see their own objective")
	}
}

func TestCanViewOkr_CEOSeesAll(t *testing.T) {
	owner := member("u1", "div-a", "team-1")
	obj := models.Objective{OwnerID: owner.ID}

	ceo := member("u2", "div-b", "team-9")
	ceo.Position = models.PositionCEO
	if !okrpolicy.CanViewOkr(ceo, obj, owner) {
		t.Error("CEO in a different division must still see everything")
	}
}

func TestCanViewOkr_DivisionRanks(t *testing.T) {
	owner := member("u1", "div-a", "team-1")
	obj := models.Objective{OwnerID: owner.ID}

	for _, position := range []string{
		models.PositionDivisionHead,
		models.PositionTechLead,
		models.PositionAdminOfficeHead,
	} {
		sameDiv := member("u2", "div-a", "team-2")
		sameDiv.Position = position
		if !okrpolicy.CanViewOkr(sameDiv, obj, owner) {
			t.Errorf("%s in same division should see the objective", position)
		}

		otherDiv := member("u3", "div-b", "team-3")
		otherDiv.Position = position
		if okrpolicy.CanViewOkr(otherDiv, obj, owner) {
			t.Errorf("%s in another division should not see the objective", position)
		}
	}
}

func TestCanViewOkr_DirectorByJobTitle(t *testing.T) {
	owner := member("u1", "div-a", "team-1")
	obj := models.Objective{OwnerID: owner.ID}

	director := member("u2", "div-a", "team-2")
	director.JobTitle = models.JobTitleDirector
	if !okrpolicy.CanViewOkr(director, obj, owner) {
		t.Error("director in same division should see the objective")
	}

	director.DivisionID = "div-b"
	if okrpolicy.CanViewOkr(director, obj, owner) {
		t.Error("director in another division should not see the objective")
	}
}

func TestCanViewOkr_TeamFloor(t *testing.T) {
	owner := member("u1", "div-a", "team-1")
	obj := models.Objective{OwnerID: owner.ID}

	teammate := member("u2", "div-a", "team-1")
	if !okrpolicy.CanViewOkr(teammate, obj, owner) {
		t.Error("teammate should see objectives within the same default team")
	}

	stranger := member("u3", "div-a", "team-2")
	if okrpolicy.CanViewOkr(stranger, obj, owner) {
		t.Error("user outside the default team should not see the objective")
	}
}

func TestCanCreateTeamOkr(t *testing.T) {
	plain := member("u1", "div-a", "team-1")
	if okrpolicy.CanCreateTeamOkr(plain) {
		t.Error("plain member must not create team OKRs")
	}

	ceo := plain
	ceo.Position = models.PositionCEO
	if !okrpolicy.CanCreateTeamOkr(ceo) {
		t.Error("CEO must be able to create team OKRs")
	}

	head := plain
	head.Position = models.PositionDivisionHead
	if !okrpolicy.CanCreateTeamOkr(head) {
		t.Error("division head must be able to create team OKRs")
	}

	// Director job title qualifies even without a ranked position.
	director := plain
	director.JobTitle = models.JobTitleDirector
	if !okrpolicy.CanCreateTeamOkr(director) {
		t.Error("director by job title must be able to create team OKRs")
	}
}

func TestCanEditObjective_Personal(t *testing.T) {
	owner := member("u1", "div-a", "team-1")
	obj := models.Objective{OwnerID: owner.ID}

	if !okrpolicy.CanEditObjective(owner, obj) {
		t.Error("owner should edit their personal objective")
	}

	admin := member("u2", "div-a", "team-1")
	admin.Role = models.RoleAdmin
	if okrpolicy.CanEditObjective(admin, obj) {
		t.Error("admin should not edit someone else's personal objective")
	}
}

func TestCanEditObjective_Team(t *testing.T) {
	owner := member("u1", "div-a", "team-1")
	obj := models.Objective{OwnerID: owner.ID, IsTeamObjective: true}

	admin := member("u2", "div-a", "team-1")
	admin.Role = models.RoleAdmin
	if !okrpolicy.CanEditObjective(admin, obj) {
		t.Error("admin should edit team objectives")
	}

	// Owner without admin role cannot edit a team objective.
	if okrpolicy.CanEditObjective(owner, obj) {
		t.Error("non-admin owner should not edit a team objective")
	}
}

func TestCanDeleteObjective_OwnerOnly(t *testing.T) {
	owner := member("u1", "div-a", "team-1")
	obj := models.Objective{OwnerID: owner.ID, IsTeamObjective: true}

	if !okrpolicy.CanDeleteObjective(owner, obj) {
		t.Error("owner should delete their objective, even team-scoped")
	}

	admin := member("u2", "div-a", "team-1")
	admin.Role = models.RoleAdmin
	if okrpolicy.CanDeleteObjective(admin, obj) {
		t.Error("admin who is not the owner must not delete the objective")
	}
}

func TestCanCheckIn_OwnerOnly(t *testing.T) {
	owner := member("u1", "div-a", "team-1")
	obj := models.Objective{OwnerID: owner.ID}

	if !okrpolicy.CanCheckIn(owner, obj) {
		t.Error("owner should check in on their own objective")
	}
	other := member("u2", "div-a", "team-1")
	if okrpolicy.CanCheckIn(other, obj) {
		t.Error("non-owner must not check in")
	}
}
