// internal/app/store/cfr/cfrstore.go
package cfrstore

import (
	"context"

	"okrstudio/internal/app/store/docstore"
	"okrstudio/internal/domain/models"
)

// Collection is the remote collection name for CFR sessions.
const Collection = "cfr_sessions"

type Store struct {
	c *docstore.Client
}

func New(c *docstore.Client) *Store {
	return &Store{c: c}
}

func encode(s models.CfrSession) map[string]any {
	recognitions := make([]any, 0, len(s.Recognitions))
	for _, r := range s.Recognitions {
		recognitions = append(recognitions, map[string]any{
			"memberId": r.MemberID,
			"comment":  r.Comment,
		})
	}
	return map[string]any{
		"objectiveId":     s.ObjectiveID,
		"authorId":        s.AuthorID,
		"year":            int64(s.Year),
		"quarter":         int64(s.Quarter),
		"month":           int64(s.Month),
		"whatHappened":    s.WhatHappened,
		"challenges":      s.Challenges,
		"nextPlans":       s.NextPlans,
		"recognitions":    recognitions,
		"managerFeedback": s.ManagerFeedback,
		"createdAt":       docstore.FormatTime(s.CreatedAt),
		"updatedAt":       docstore.FormatTime(s.UpdatedAt),
	}
}

func decode(doc docstore.Document) models.CfrSession {
	f := doc.Fields
	rawRecognitions := docstore.Maps(f, "recognitions")
	recognitions := make([]models.Recognition, 0, len(rawRecognitions))
	for _, m := range rawRecognitions {
		recognitions = append(recognitions, models.Recognition{
			MemberID: docstore.String(m, "memberId"),
			Comment:  docstore.String(m, "comment"),
		})
	}
	return models.CfrSession{
		ID:              doc.ID,
		ObjectiveID:     docstore.String(f, "objectiveId"),
		AuthorID:        docstore.String(f, "authorId"),
		Year:            docstore.Int(f, "year"),
		Quarter:         docstore.Int(f, "quarter"),
		Month:           docstore.Int(f, "month"),
		WhatHappened:    docstore.String(f, "whatHappened"),
		Challenges:      docstore.String(f, "challenges"),
		NextPlans:       docstore.String(f, "nextPlans"),
		Recognitions:    recognitions,
		ManagerFeedback: docstore.String(f, "managerFeedback"),
		CreatedAt:       docstore.Time(f, "createdAt"),
		UpdatedAt:       docstore.Time(f, "updatedAt"),
	}
}

// ListAll fetches every CFR session from the remote collection.
func (s *Store) ListAll(ctx context.Context) ([]models.CfrSession, error) {
	docs, err := s.c.ListAll(ctx, Collection)
	if err != nil {
		return nil, err
	}
	sessions := make([]models.CfrSession, 0, len(docs))
	for _, d := range docs {
		sessions = append(sessions, decode(d))
	}
	return sessions, nil
}

// Create stores a new session under its explicit id.
func (s *Store) Create(ctx context.Context, session models.CfrSession) error {
	_, err := s.c.Create(ctx, Collection, docstore.Document{ID: session.ID, Fields: encode(session)})
	return err
}

// Update rewrites the full session document, including the recognitions
// list (arrays replace wholesale).
func (s *Store) Update(ctx context.Context, session models.CfrSession) error {
	fields := encode(session)
	mask := make([]string, 0, len(fields))
	for k := range fields {
		mask = append(mask, k)
	}
	return s.c.Update(ctx, Collection, session.ID, fields, mask)
}

// Seed batch-creates sessions during first-run seeding.
func (s *Store) Seed(ctx context.Context, sessions []models.CfrSession) error {
	docs := make([]docstore.Document, 0, len(sessions))
	for _, session := range sessions {
		docs = append(docs, docstore.Document{ID: session.ID, Fields: encode(session)})
	}
	return s.c.SeedBatch(ctx, Collection, docs)
}
