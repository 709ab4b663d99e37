// internal/app/store/objectives/objectivestore.go
package objectivestore

import (
	"context"

	"okrstudio/internal/app/store/docstore"
	"okrstudio/internal/domain/models"
)

// Collection is the remote collection name for objectives.
const Collection = "objectives"

type Store struct {
	c *docstore.Client
}

func New(c *docstore.Client) *Store {
	return &Store{c: c}
}

func encodeProgressUpdate(pu models.ProgressUpdate) map[string]any {
	return map[string]any{
		"id":      pu.ID,
		"krId":    pu.KrID,
		"value":   int64(pu.Value),
		"comment": pu.Comment,
		"date":    docstore.FormatTime(pu.Date),
	}
}

func decodeProgressUpdate(f map[string]any) models.ProgressUpdate {
	return models.ProgressUpdate{
		ID:      docstore.String(f, "id"),
		KrID:    docstore.String(f, "krId"),
		Value:   docstore.Int(f, "value"),
		Comment: docstore.String(f, "comment"),
		Date:    docstore.Time(f, "date"),
	}
}

func encodeKeyResult(kr models.KeyResult) map[string]any {
	updates := make([]any, 0, len(kr.ProgressUpdates))
	for _, pu := range kr.ProgressUpdates {
		updates = append(updates, encodeProgressUpdate(pu))
	}
	return map[string]any{
		"id":              kr.ID,
		"title":           kr.Title,
		"description":     kr.Description,
		"progress":        int64(kr.Progress),
		"ownerId":         kr.OwnerID,
		"dueDate":         docstore.FormatTime(kr.DueDate),
		"confidence":      int64(kr.Confidence),
		"progressUpdates": updates,
	}
}

func decodeKeyResult(f map[string]any) models.KeyResult {
	rawUpdates := docstore.Maps(f, "progressUpdates")
	updates := make([]models.ProgressUpdate, 0, len(rawUpdates))
	for _, m := range rawUpdates {
		updates = append(updates, decodeProgressUpdate(m))
	}
	return models.KeyResult{
		ID:              docstore.String(f, "id"),
		Title:           docstore.String(f, "title"),
		Description:     docstore.String(f, "description"),
		Progress:        docstore.Int(f, "progress"),
		OwnerID:         docstore.String(f, "ownerId"),
		DueDate:         docstore.Time(f, "dueDate"),
		Confidence:      docstore.Int(f, "confidence"),
		ProgressUpdates: updates,
	}
}

func encode(o models.Objective) map[string]any {
	keyResults := make([]any, 0, len(o.KeyResults))
	for _, kr := range o.KeyResults {
		keyResults = append(keyResults, encodeKeyResult(kr))
	}
	changelog := make([]any, 0, len(o.Changelog))
	for _, entry := range o.Changelog {
		changelog = append(changelog, map[string]any{
			"timestamp": docstore.FormatTime(entry.Timestamp),
			"userId":    entry.UserID,
			"change":    entry.Change,
		})
	}
	return map[string]any{
		"title":           o.Title,
		"description":     o.Description,
		"ownerId":         o.OwnerID,
		"teamId":          o.TeamID,
		"year":            int64(o.Year),
		"quarter":         int64(o.Quarter),
		"status":          string(o.Status),
		"keyResults":      keyResults,
		"changelog":       changelog,
		"isTeamObjective": o.IsTeamObjective,
	}
}

func decode(doc docstore.Document) models.Objective {
	f := doc.Fields
	rawKrs := docstore.Maps(f, "keyResults")
	keyResults := make([]models.KeyResult, 0, len(rawKrs))
	for _, m := range rawKrs {
		keyResults = append(keyResults, decodeKeyResult(m))
	}
	rawLog := docstore.Maps(f, "changelog")
	changelog := make([]models.ChangelogEntry, 0, len(rawLog))
	for _, m := range rawLog {
		changelog = append(changelog, models.ChangelogEntry{
			Timestamp: docstore.Time(m, "timestamp"),
			UserID:    docstore.String(m, "userId"),
			Change:    docstore.String(m, "change"),
		})
	}
	return models.Objective{
		ID:              doc.ID,
		Title:           docstore.String(f, "title"),
		Description:     docstore.String(f, "description"),
		OwnerID:         docstore.String(f, "ownerId"),
		TeamID:          docstore.String(f, "teamId"),
		Year:            docstore.Int(f, "year"),
		Quarter:         docstore.Int(f, "quarter"),
		Status:          models.Status(docstore.String(f, "status")),
		KeyResults:      keyResults,
		Changelog:       changelog,
		IsTeamObjective: docstore.Bool(f, "isTeamObjective"),
	}
}

// ListAll fetches every objective from the remote collection.
func (s *Store) ListAll(ctx context.Context) ([]models.Objective, error) {
	docs, err := s.c.ListAll(ctx, Collection)
	if err != nil {
		return nil, err
	}
	objectives := make([]models.Objective, 0, len(docs))
	for _, d := range docs {
		objectives = append(objectives, decode(d))
	}
	return objectives, nil
}

// Create stores a new objective under its explicit id.
func (s *Store) Create(ctx context.Context, o models.Objective) error {
	_, err := s.c.Create(ctx, Collection, docstore.Document{ID: o.ID, Fields: encode(o)})
	return err
}

// Update rewrites the full objective document. keyResults and changelog are
// arrays and are replaced wholesale, which is why the coordinator always
// persists the complete objective after any nested change (a single KR
// check-in still resends the whole keyResults list).
func (s *Store) Update(ctx context.Context, o models.Objective) error {
	fields := encode(o)
	mask := make([]string, 0, len(fields))
	for k := range fields {
		mask = append(mask, k)
	}
	return s.c.Update(ctx, Collection, o.ID, fields, mask)
}

// Delete removes the objective document.
func (s *Store) Delete(ctx context.Context, id string) error {
	return s.c.Delete(ctx, Collection, id)
}

// Seed batch-creates objectives in order during first-run seeding.
func (s *Store) Seed(ctx context.Context, objectives []models.Objective) error {
	docs := make([]docstore.Document, 0, len(objectives))
	for _, o := range objectives {
		docs = append(docs, docstore.Document{ID: o.ID, Fields: encode(o)})
	}
	return s.c.SeedBatch(ctx, Collection, docs)
}
