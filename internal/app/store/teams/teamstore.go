// internal/app/store/teams/teamstore.go
package teamstore

import (
	"context"

	"okrstudio/internal/app/store/docstore"
	"okrstudio/internal/domain/models"
)

// Collection is the remote collection name for teams.
const Collection = "teams"

type Store struct {
	c *docstore.Client
}

func New(c *docstore.Client) *Store {
	return &Store{c: c}
}

func encode(t models.Team) map[string]any {
	return map[string]any{
		"name":         t.Name,
		"description":  t.Description,
		"code":         t.Code,
		"divisionId":   t.DivisionID,
		"divisionName": t.DivisionName,
		"members":      docstore.StringList(t.Members),
	}
}

func decode(doc docstore.Document) models.Team {
	f := doc.Fields
	t := models.Team{
		ID:           doc.ID,
		Name:         docstore.String(f, "name"),
		Description:  docstore.String(f, "description"),
		Code:         docstore.String(f, "code"),
		DivisionID:   docstore.String(f, "divisionId"),
		DivisionName: docstore.String(f, "divisionName"),
		Members:      docstore.Strings(f, "members"),
	}
	return t
}

// ListAll fetches every team from the remote collection.
func (s *Store) ListAll(ctx context.Context) ([]models.Team, error) {
	docs, err := s.c.ListAll(ctx, Collection)
	if err != nil {
		return nil, err
	}
	teams := make([]models.Team, 0, len(docs))
	for _, d := range docs {
		teams = append(teams, decode(d))
	}
	return teams, nil
}

// Create stores a new team under its explicit id.
func (s *Store) Create(ctx context.Context, t models.Team) error {
	_, err := s.c.Create(ctx, Collection, docstore.Document{ID: t.ID, Fields: encode(t)})
	return err
}

// Update rewrites all team fields.
func (s *Store) Update(ctx context.Context, t models.Team) error {
	fields := encode(t)
	return s.c.Update(ctx, Collection, t.ID, fields, fieldMask(fields))
}

// UpdateMembers rewrites only the members list. The array is replaced
// wholesale on the remote side, so the caller must pass the complete
// membership from local state, not a delta.
func (s *Store) UpdateMembers(ctx context.Context, teamID string, members []string) error {
	fields := map[string]any{"members": docstore.StringList(members)}
	return s.c.Update(ctx, Collection, teamID, fields, []string{"members"})
}

// Delete removes the team document. Users referencing the team keep their
// dangling team ids by design.
func (s *Store) Delete(ctx context.Context, id string) error {
	return s.c.Delete(ctx, Collection, id)
}

// Seed batch-creates teams in order during first-run seeding.
func (s *Store) Seed(ctx context.Context, teams []models.Team) error {
	docs := make([]docstore.Document, 0, len(teams))
	for _, t := range teams {
		docs = append(docs, docstore.Document{ID: t.ID, Fields: encode(t)})
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
