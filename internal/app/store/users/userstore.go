// internal/app/store/users/userstore.go
package userstore

import (
	"context"

	"okrstudio/internal/app/store/docstore"
	"okrstudio/internal/domain/models"
)

// Collection is the remote collection name for users.
const Collection = "users"

type Store struct {
	c *docstore.Client
}

func New(c *docstore.Client) *Store {
	return &Store{c: c}
}

func encode(u models.User) map[string]any {
	return map[string]any{
		"name":          u.Name,
		"email":         u.Email,
		"avatarUrl":     u.AvatarURL,
		"role":          u.Role,
		"position":      u.Position,
		"jobTitle":      u.JobTitle,
		"divisionId":    u.DivisionID,
		"divisionName":  u.DivisionName,
		"defaultTeamId": u.DefaultTeamID,
		"teamIds":       docstore.StringList(u.TeamIDs),
		"timezone":      u.Timezone,
	}
}

func decode(doc docstore.Document) models.User {
	f := doc.Fields
	u := models.User{
		ID:            doc.ID,
		Name:          docstore.String(f, "name"),
		Email:         docstore.String(f, "email"),
		AvatarURL:     docstore.String(f, "avatarUrl"),
		Role:          docstore.String(f, "role"),
		Position:      docstore.String(f, "position"),
		JobTitle:      docstore.String(f, "jobTitle"),
		DivisionID:    docstore.String(f, "divisionId"),
		DivisionName:  docstore.String(f, "divisionName"),
		DefaultTeamID: docstore.String(f, "defaultTeamId"),
		TeamIDs:       docstore.Strings(f, "teamIds"),
		Timezone:      docstore.String(f, "timezone"),
	}
	// Older documents may predate teamIds; fall back to the default team.
	if len(u.TeamIDs) == 0 && u.DefaultTeamID != "" {
		u.TeamIDs = []string{u.DefaultTeamID}
	}
	return u
}

// ListAll fetches every user from the remote collection.
func (s *Store) ListAll(ctx context.Context) ([]models.User, error) {
	docs, err := s.c.ListAll(ctx, Collection)
	if err != nil {
		return nil, err
	}
	users := make([]models.User, 0, len(docs))
	for _, d := range docs {
		users = append(users, decode(d))
	}
	return users, nil
}

// Create stores a new user under its explicit id.
func (s *Store) Create(ctx context.Context, u models.User) error {
	_, err := s.c.Create(ctx, Collection, docstore.Document{ID: u.ID, Fields: encode(u)})
	return err
}

// Update rewrites all user fields. TeamIDs is an array and is replaced
// wholesale; the caller sends the full membership list from local state.
func (s *Store) Update(ctx context.Context, u models.User) error {
	fields := encode(u)
	return s.c.Update(ctx, Collection, u.ID, fields, fieldMask(fields))
}

// Delete removes the user document. References to the user elsewhere
// (team members, objective owners) are intentionally left dangling.
func (s *Store) Delete(ctx context.Context, id string) error {
	return s.c.Delete(ctx, Collection, id)
}

// Seed batch-creates users in order during first-run seeding.
func (s *Store) Seed(ctx context.Context, users []models.User) error {
	docs := make([]docstore.Document, 0, len(users))
	for _, u := range users {
		docs = append(docs, docstore.Document{ID: u.ID, Fields: encode(u)})
	}
	return s.c.SeedBatch(ctx, Collection, docs)
}

func fieldMask(fields map[string]any) []string {
	mask := make([]string, 0, len(fields))
	for k := range fields {
		mask = append(mask, k)
	}
	return mask
}
