package docstore_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"okrstudio/internal/app/store/docstore"
	"go.uber.org/zap"
)

func newClient(t *testing.T, h http.HandlerFunc) (*docstore.Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	c := docstore.New(srv.URL, "test-key", 50, srv.Client(), zap.NewNop())
	return c, srv
}

func wireDoc(name string, fields map[string]any) map[string]any {
	return map[string]any{"name": name, "fields": fields}
}

func TestListAll_FollowsPageTokens(t *testing.T) {
	calls := 0
	c, _ := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
		if r.URL.Query().Get("key") != "test-key" {
			t.Errorf("expected api key on request, got %q", r.URL.RawQuery)
		}
		w.Header().Set("Content-Type", "application/json")
		if r.URL.Query().Get("pageToken") == "" {
			json.NewEncoder(w).Encode(map[string]any{
				"documents": []any{
					wireDoc("x/users/u1", map[string]any{"name": map[string]any{"stringValue": "A"}}),
				},
				"nextPageToken": "p2",
			})
			return
		}
		json.NewEncoder(w).Encode(map[string]any{
			"documents": []any{
				wireDoc("x/users/u2", map[string]any{"name": map[string]any{"stringValue": "B"}}),
			},
		})
	})

	docs, err := c.ListAll(context.Background(), "users")
	if err != nil {
		t.Fatalf("ListAll failed: %v", err)
	}
	if calls != 2 {
		t.Errorf("expected 2 page fetches, got %d", calls)
	}
	if len(docs) != 2 || docs[0].ID != "u1" || docs[1].ID != "u2" {
		t.Errorf("unexpected documents: %#v", docs)
	}
}

func TestListAll_ConnectionError(t *testing.T) {
	c, _ := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "permission denied", http.StatusForbidden)
	})

	_, err := c.ListAll(context.Background(), "users")
	if !errors.Is(err, docstore.ErrConnection) {
		t.Errorf("expected ErrConnection, got %v", err)
	}
}

func TestCreate_WithExplicitID(t *testing.T) {
	c, _ := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("expected POST, got %s", r.Method)
		}
		if got := r.URL.Query().Get("documentId"); got != "u7" {
			t.Errorf("expected documentId=u7, got %q", got)
		}
		var body map[string]any
		json.NewDecoder(r.Body).Decode(&body)
		if _, ok := body["fields"]; !ok {
			t.Error("expected fields envelope in create body")
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(wireDoc("x/users/u7", body["fields"].(map[string]any)))
	})

	stored, err := c.Create(context.Background(), "users", docstore.Document{
		ID:     "u7",
		Fields: map[string]any{"name": "Dana Park"},
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if stored.ID != "u7" {
		t.Errorf("expected stored id u7, got %q", stored.ID)
	}
}

func TestCreate_PersistenceError(t *testing.T) {
	c, _ := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "rejected", http.StatusBadRequest)
	})

	_, err := c.Create(context.Background(), "users", docstore.Document{Fields: map[string]any{}})
	if !errors.Is(err, docstore.ErrPersistence) {
		t.Errorf("expected ErrPersistence, got %v", err)
	}
}

func TestUpdate_SendsFieldMask(t *testing.T) {
	c, _ := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPatch {
			t.Errorf("expected PATCH, got %s", r.Method)
		}
		paths := r.URL.Query()["updateMask.fieldPaths"]
		if len(paths) != 2 || paths[0] != "members" || paths[1] != "name" {
			t.Errorf("unexpected field mask: %v", paths)
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(wireDoc("x/teams/t1", map[string]any{}))
	})

	err := c.Update(context.Background(), "teams", "t1",
		map[string]any{"members": []any{"u1", "u2"}, "name": "Platform"},
		[]string{"members", "name"})
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}
}

func TestDelete(t *testing.T) {
	deleted := false
	c, _ := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodDelete {
			deleted = true
		}
		w.Write([]byte("{}"))
	})

	if err := c.Delete(context.Background(), "teams", "t1"); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if !deleted {
		t.Error("expected DELETE request")
	}
}

func TestSeedBatch_SequentialAndNonAtomic(t *testing.T) {
	var created []string
	c, _ := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		id := r.URL.Query().Get("documentId")
		if id == "bad" {
			http.Error(w, "rejected", http.StatusBadRequest)
			return
		}
		created = append(created, id)
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(wireDoc("x/c/"+id, map[string]any{}))
	})

	docs := []docstore.Document{
		{ID: "d1", Fields: map[string]any{}},
		{ID: "bad", Fields: map[string]any{}},
		{ID: "d3", Fields: map[string]any{}},
	}
	err := c.SeedBatch(context.Background(), "divisions", docs)
	if !errors.Is(err, docstore.ErrPersistence) {
		t.Fatalf("expected ErrPersistence from mid-batch failure, got %v", err)
	}
	// d1 was seeded before the failure; d3 never attempted.
	if len(created) != 1 || created[0] != "d1" {
		t.Errorf("expected only d1 created before failure, got %v", created)
	}
}
