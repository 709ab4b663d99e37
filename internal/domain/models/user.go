// internal/domain/models/user.go
package models

// Role values for User.Role.
const (
	RoleAdmin  = "admin"
	RoleMember = "member"
)

// Position ranks that carry elevated visibility. Position is free text on the
// user record; these are the values the access policies recognize.
const (
	PositionCEO             = "CEO"
	PositionDivisionHead    = "Division Head"
	PositionTechLead        = "Tech Lead"
	PositionAdminOfficeHead = "Admin Office Head"
)

// JobTitleDirector grants division-level visibility and team-OKR creation
// rights even when the user's position is not one of the ranked positions.
const JobTitleDirector = "Director"

// User represents admins and members.
//
// NOTE:
//   - DefaultTeamID, when set, must also appear in TeamIDs. The coordinator
//     keeps Team.Members and the user's TeamIDs/DefaultTeamID in sync on
//     every default-team change.
type User struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Email         string   `json:"email"`
	AvatarURL     string   `json:"avatarUrl,omitempty"`
	Role          string   `json:"role"` // admin | member
	Position      string   `json:"position,omitempty"`
	JobTitle      string   `json:"jobTitle,omitempty"`
	DivisionID    string   `json:"divisionId,omitempty"`
	DivisionName  string   `json:"divisionName,omitempty"`
	DefaultTeamID string   `json:"defaultTeamId,omitempty"`
	TeamIDs       []string `json:"teamIds"`
	Timezone      string   `json:"timezone,omitempty"`
}

// IsAdmin reports whether the user has the admin role.
func (u User) IsAdmin() bool { return u.Role == RoleAdmin }

// MemberOf reports whether teamID appears in the user's team memberships.
func (u User) MemberOf(teamID string) bool {
	for _, id := range u.TeamIDs {
		if id == teamID {
			return true
		}
	}
	return false
}
