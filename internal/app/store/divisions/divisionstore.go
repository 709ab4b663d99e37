// internal/app/store/divisions/divisionstore.go
package divisionstore

import (
	"context"

	"okrstudio/internal/app/store/docstore"
	"okrstudio/internal/domain/models"
)

// Collection is the remote collection name for divisions.
const Collection = "divisions"

type Store struct {
	c *docstore.Client
}

func New(c *docstore.Client) *Store {
	return &Store{c: c}
}

func encode(d models.Division) map[string]any {
	return map[string]any{
		"name":        d.Name,
		"description": d.Description,
	}
}

func decode(doc docstore.Document) models.Division {
	return models.Division{
		ID:          doc.ID,
		Name:        docstore.String(doc.Fields, "name"),
		Description: docstore.String(doc.Fields, "description"),
	}
}

// ListAll fetches every division from the remote collection.
func (s *Store) ListAll(ctx context.Context) ([]models.Division, error) {
	docs, err := s.c.ListAll(ctx, Collection)
	if err != nil {
		return nil, err
	}
	divisions := make([]models.Division, 0, len(docs))
	for _, d := range docs {
		divisions = append(divisions, decode(d))
	}
	return divisions, nil
}

// Create stores a new division under its explicit id.
func (s *Store) Create(ctx context.Context, d models.Division) error {
	_, err := s.c.Create(ctx, Collection, docstore.Document{ID: d.ID, Fields: encode(d)})
	return err
}

// Update rewrites the division fields.
func (s *Store) Update(ctx context.Context, d models.Division) error {
	return s.c.Update(ctx, Collection, d.ID, encode(d), []string{"name", "description"})
}

// Delete removes the division document; teams and users keep their
// dangling division ids by design.
func (s *Store) Delete(ctx context.Context, id string) error {
	return s.c.Delete(ctx, Collection, id)
}

// Seed batch-creates divisions in order during first-run seeding.
func (s *Store) Seed(ctx context.Context, divisions []models.Division) error {
	docs := make([]docstore.Document, 0, len(divisions))
	for _, d := range divisions {
		docs = append(docs, docstore.Document{ID: d.ID, Fields: encode(d)})
	}
	return s.c.SeedBatch(ctx, Collection, docs)
}
