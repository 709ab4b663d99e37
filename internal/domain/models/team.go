// internal/domain/models/team.go
package models

// Team is a working group inside a division. Members holds user ids; it is
// the owning side of the membership relation and must stay consistent with
// each member's TeamIDs and DefaultTeamID.
type Team struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Description  string   `json:"description,omitempty"`
	Code         string   `json:"code,omitempty"`
	DivisionID   string   `json:"divisionId"`
	DivisionName string   `json:"divisionName"` // denormalized for display
	Members      []string `json:"members"`
}

// HasMember reports whether userID is in the team's member list.
func (t Team) HasMember(userID string) bool {
	for _, id := range t.Members {
		if id == userID {
			return true
		}
	}
	return false
}
