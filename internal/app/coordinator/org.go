package coordinator

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"okrstudio/internal/app/system/notify"
	"okrstudio/internal/app/system/timezones"
	"okrstudio/internal/domain/models"
)

// UserEdit is the profile-edit input. Zero-valued fields keep their
// current values; Role, Position, and JobTitle may only be changed by an
// admin.
type UserEdit struct {
	UserID        string `json:"userId"`
	Name          string `json:"name"`
	Email         string `json:"email"`
	AvatarURL     string `json:"avatarUrl"`
	Timezone      string `json:"timezone"`
	DefaultTeamID string `json:"defaultTeamId"`
	Role          string `json:"role"`
	Position      string `json:"position"`
	JobTitle      string `json:"jobTitle"`
}

// UpdateUserProfile edits a user. Changing the default team is a
// three-sided update: the user record, the old team's member list, and
// the new team's member list. The three remote writes are independent and
// best-effort, so a partial failure can leave the remote store with a
// membership the local state no longer has; the next full reload wins.
func (c *Coordinator) UpdateUserProfile(actorID string, edit UserEdit) (models.User, error) {
	actor, err := c.actor(actorID)
	if err != nil {
		return models.User{}, err
	}
	target, ok := c.state.UserByID(edit.UserID)
	if !ok {
		return models.User{}, fmt.Errorf("%w: user %s", ErrNotFound, edit.UserID)
	}
	if actor.ID != target.ID && !actor.IsAdmin() {
		return models.User{}, fmt.Errorf("%w: cannot edit another user's profile", ErrNotAuthorized)
	}

	updated := target
	if edit.Name != "" {
		updated.Name = strings.TrimSpace(edit.Name)
	}
	if edit.Email != "" {
		updated.Email = strings.TrimSpace(edit.Email)
	}
	if edit.AvatarURL != "" {
		updated.AvatarURL = edit.AvatarURL
	}
	if edit.Timezone != "" {
		if !timezones.Valid(edit.Timezone) {
			return models.User{}, fmt.Errorf("%w: unknown timezone %q", ErrInvalid, edit.Timezone)
		}
		updated.Timezone = edit.Timezone
	}

	rankChanged := (edit.Role != "" && edit.Role != target.Role) ||
		(edit.Position != "" && edit.Position != target.Position) ||
		(edit.JobTitle != "" && edit.JobTitle != target.JobTitle)
	if rankChanged && !actor.IsAdmin() {
		return models.User{}, fmt.Errorf("%w: role and position changes require the admin role", ErrNotAuthorized)
	}
	if edit.Role != "" {
		updated.Role = edit.Role
	}
	if edit.Position != "" {
		updated.Position = edit.Position
	}
	if edit.JobTitle != "" {
		updated.JobTitle = edit.JobTitle
	}

	var oldTeam, newTeam models.Team
	teamChanged := edit.DefaultTeamID != "" && edit.DefaultTeamID != target.DefaultTeamID
	if teamChanged {
		newTeam, ok = c.state.TeamByID(edit.DefaultTeamID)
		if !ok {
			return models.User{}, fmt.Errorf("%w: team %s", ErrNotFound, edit.DefaultTeamID)
		}

		if prev, found := c.state.TeamByID(target.DefaultTeamID); found {
			oldTeam = prev
			oldTeam.Members = removeString(oldTeam.Members, target.ID)
			c.state.PutTeam(oldTeam)
		}
		if !containsString(newTeam.Members, target.ID) {
			newTeam.Members = append(append([]string(nil), newTeam.Members...), target.ID)
		}
		c.state.PutTeam(newTeam)

		updated.TeamIDs = removeString(updated.TeamIDs, target.DefaultTeamID)
		if !containsString(updated.TeamIDs, newTeam.ID) {
			updated.TeamIDs = append(updated.TeamIDs, newTeam.ID)
		}
		updated.DefaultTeamID = newTeam.ID
		updated.DivisionID = newTeam.DivisionID
		updated.DivisionName = newTeam.DivisionName
	}

	c.state.PutUser(updated)

	c.persist("user.update", func(ctx context.Context) error {
		return c.remote.Users.Update(ctx, updated)
	})
	if teamChanged {
		if oldTeam.ID != "" {
			old := oldTeam
			c.persist("team.members", func(ctx context.Context) error {
				return c.remote.Teams.UpdateMembers(ctx, old.ID, old.Members)
			})
		}
		next := newTeam
		c.persist("team.members", func(ctx context.Context) error {
			return c.remote.Teams.UpdateMembers(ctx, next.ID, next.Members)
		})
	}

	c.notifier.Notify("Profile updated.", notify.Success)
	return updated, nil
}

// AddUser creates a directory entry and joins the user to their default
// team. Admin only.
func (c *Coordinator) AddUser(actorID string, u models.User) (models.User, error) {
	actor, err := c.actor(actorID)
	if err != nil {
		return models.User{}, err
	}
	if !actor.IsAdmin() {
		return models.User{}, fmt.Errorf("%w: adding users requires the admin role", ErrNotAuthorized)
	}
	if strings.TrimSpace(u.Name) == "" {
		return models.User{}, fmt.Errorf("%w: user name is required", ErrInvalid)
	}
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	if u.Role == "" {
		u.Role = models.RoleMember
	}

	var team models.Team
	hasTeam := false
	if u.DefaultTeamID != "" {
		team, hasTeam = c.state.TeamByID(u.DefaultTeamID)
		if !hasTeam {
			return models.User{}, fmt.Errorf("%w: team %s", ErrNotFound, u.DefaultTeamID)
		}
		if !u.MemberOf(team.ID) {
			u.TeamIDs = append(u.TeamIDs, team.ID)
		}
		u.DivisionID = team.DivisionID
		u.DivisionName = team.DivisionName
		if !containsString(team.Members, u.ID) {
			team.Members = append(append([]string(nil), team.Members...), u.ID)
		}
		c.state.PutTeam(team)
	}

	c.state.PutUser(u)

	newUser := u
	c.persist("user.create", func(ctx context.Context) error {
		return c.remote.Users.Create(ctx, newUser)
	})
	if hasTeam {
		joined := team
		c.persist("team.members", func(ctx context.Context) error {
			return c.remote.Teams.UpdateMembers(ctx, joined.ID, joined.Members)
		})
	}

	c.notifier.Notify("User added.", notify.Success)
	return u, nil
}

// DeleteUser removes a user from the directory. Admin only, and never the
// acting user. Nothing cascades: team member lists, objective owners, and
// CFR authors keep the dangling id.
func (c *Coordinator) DeleteUser(actorID, userID string) error {
	actor, err := c.actor(actorID)
	if err != nil {
		return err
	}
	if !actor.IsAdmin() {
		return fmt.Errorf("%w: deleting users requires the admin role", ErrNotAuthorized)
	}
	if actorID == userID {
		return fmt.Errorf("%w: cannot delete the acting user", ErrInvalid)
	}
	if _, ok := c.state.UserByID(userID); !ok {
		return fmt.Errorf("%w: user %s", ErrNotFound, userID)
	}

	c.state.RemoveUser(userID)
	c.persist("user.delete", func(ctx context.Context) error {
		return c.remote.Users.Delete(ctx, userID)
	})
	c.notifier.Notify("User deleted.", notify.Success)
	return nil
}

// TeamEdit is the team-edit input. Member lists are not edited here; they
// move only through profile default-team changes and AddUser.
type TeamEdit struct {
	TeamID      string `json:"teamId"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Code        string `json:"code"`
	DivisionID  string `json:"divisionId"`
}

// AddTeam creates a team. Admin only.
func (c *Coordinator) AddTeam(actorID string, t models.Team) (models.Team, error) {
	actor, err := c.actor(actorID)
	if err != nil {
		return models.Team{}, err
	}
	if !actor.IsAdmin() {
		return models.Team{}, fmt.Errorf("%w: managing teams requires the admin role", ErrNotAuthorized)
	}
	if strings.TrimSpace(t.Name) == "" {
		return models.Team{}, fmt.Errorf("%w: team name is required", ErrInvalid)
	}
	if t.DivisionID != "" {
		div, ok := c.state.DivisionByID(t.DivisionID)
		if !ok {
			return models.Team{}, fmt.Errorf("%w: division %s", ErrNotFound, t.DivisionID)
		}
		t.DivisionName = div.Name
	}
	if t.ID == "" {
		t.ID = uuid.NewString()
	}

	c.state.PutTeam(t)
	created := t
	c.persist("team.create", func(ctx context.Context) error {
		return c.remote.Teams.Create(ctx, created)
	})
	c.notifier.Notify("Team created.", notify.Success)
	return t, nil
}

// UpdateTeam edits team metadata. Admin only.
func (c *Coordinator) UpdateTeam(actorID string, edit TeamEdit) (models.Team, error) {
	actor, err := c.actor(actorID)
	if err != nil {
		return models.Team{}, err
	}
	if !actor.IsAdmin() {
		return models.Team{}, fmt.Errorf("%w: managing teams requires the admin role", ErrNotAuthorized)
	}
	team, ok := c.state.TeamByID(edit.TeamID)
	if !ok {
		return models.Team{}, fmt.Errorf("%w: team %s", ErrNotFound, edit.TeamID)
	}
	if edit.Name != "" {
		team.Name = strings.TrimSpace(edit.Name)
	}
	if edit.Description != "" {
		team.Description = edit.Description
	}
	if edit.Code != "" {
		team.Code = edit.Code
	}
	if edit.DivisionID != "" && edit.DivisionID != team.DivisionID {
		div, found := c.state.DivisionByID(edit.DivisionID)
		if !found {
			return models.Team{}, fmt.Errorf("%w: division %s", ErrNotFound, edit.DivisionID)
		}
		team.DivisionID = div.ID
		team.DivisionName = div.Name
	}

	c.state.PutTeam(team)
	updated := team
	c.persist("team.update", func(ctx context.Context) error {
		return c.remote.Teams.Update(ctx, updated)
	})
	c.notifier.Notify("Team updated.", notify.Success)
	return team, nil
}

// DeleteTeam removes a team. Admin only. User teamIds and objective
// teamIds referencing it are left dangling.
func (c *Coordinator) DeleteTeam(actorID, teamID string) error {
	actor, err := c.actor(actorID)
	if err != nil {
		return err
	}
	if !actor.IsAdmin() {
		return fmt.Errorf("%w: managing teams requires the admin role", ErrNotAuthorized)
	}
	if _, ok := c.state.TeamByID(teamID); !ok {
		return fmt.Errorf("%w: team %s", ErrNotFound, teamID)
	}

	c.state.RemoveTeam(teamID)
	c.persist("team.delete", func(ctx context.Context) error {
		return c.remote.Teams.Delete(ctx, teamID)
	})
	c.notifier.Notify("Team deleted.", notify.Success)
	return nil
}

// AddDivision creates a division. Admin only.
func (c *Coordinator) AddDivision(actorID string, d models.Division) (models.Division, error) {
	actor, err := c.actor(actorID)
	if err != nil {
		return models.Division{}, err
	}
	if !actor.IsAdmin() {
		return models.Division{}, fmt.Errorf("%w: managing divisions requires the admin role", ErrNotAuthorized)
	}
	if strings.TrimSpace(d.Name) == "" {
		return models.Division{}, fmt.Errorf("%w: division name is required", ErrInvalid)
	}
	if d.ID == "" {
		d.ID = uuid.NewString()
	}

	c.state.PutDivision(d)
	created := d
	c.persist("division.create", func(ctx context.Context) error {
		return c.remote.Divisions.Create(ctx, created)
	})
	c.notifier.Notify("Division created.", notify.Success)
	return d, nil
}

// UpdateDivision edits a division. Admin only. Denormalized division
// names on teams and users are not rewritten; they stay stale until those
// records are next edited.
func (c *Coordinator) UpdateDivision(actorID string, d models.Division) (models.Division, error) {
	actor, err := c.actor(actorID)
	if err != nil {
		return models.Division{}, err
	}
	if !actor.IsAdmin() {
		return models.Division{}, fmt.Errorf("%w: managing divisions requires the admin role", ErrNotAuthorized)
	}
	if _, ok := c.state.DivisionByID(d.ID); !ok {
		return models.Division{}, fmt.Errorf("%w: division %s", ErrNotFound, d.ID)
	}
	if strings.TrimSpace(d.Name) == "" {
		return models.Division{}, fmt.Errorf("%w: division name is required", ErrInvalid)
	}

	c.state.PutDivision(d)
	updated := d
	c.persist("division.update", func(ctx context.Context) error {
		return c.remote.Divisions.Update(ctx, updated)
	})
	c.notifier.Notify("Division updated.", notify.Success)
	return d, nil
}

// DeleteDivision removes a division. Admin only; teams keep their
// dangling divisionId.
func (c *Coordinator) DeleteDivision(actorID, divisionID string) error {
	actor, err := c.actor(actorID)
	if err != nil {
		return err
	}
	if !actor.IsAdmin() {
		return fmt.Errorf("%w: managing divisions requires the admin role", ErrNotAuthorized)
	}
	if _, ok := c.state.DivisionByID(divisionID); !ok {
		return fmt.Errorf("%w: division %s", ErrNotFound, divisionID)
	}

	c.state.RemoveDivision(divisionID)
	c.persist("division.delete", func(ctx context.Context) error {
		return c.remote.Divisions.Delete(ctx, divisionID)
	})
	c.notifier.Notify("Division deleted.", notify.Success)
	return nil
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

func removeString(list []string, s string) []string {
	out := make([]string, 0, len(list))
	for _, v := range list {
		if v != s {
			out = append(out, v)
		}
	}
	return out
}
