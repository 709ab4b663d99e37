package admin_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go.uber.org/zap"

	"okrstudio/internal/app/coordinator"
	"okrstudio/internal/app/features/admin"
	"okrstudio/internal/app/state"
	"okrstudio/internal/app/store/seed"
	"okrstudio/internal/app/system/notify"
)

func newServer(t *testing.T, actorID string) (*httptest.Server, *state.Store) {
	t.Helper()
	st := state.New(seed.Dataset())
	c := coordinator.New(st, nil, notify.NewHub(zap.NewNop()), zap.NewNop())
	h := admin.NewHandler(c, actorID, zap.NewNop())
	srv := httptest.NewServer(admin.Routes(h))
	t.Cleanup(srv.Close)
	return srv, st
}

func do(t *testing.T, method, url, body string) *http.Response {
	t.Helper()
	req, _ := http.NewRequest(method, url, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("%s %s failed: %v", method, url, err)
	}
	return resp
}

func TestCreateTeam_AdminOnly(t *testing.T) {
	// u-riley is a plain member.
	srv, _ := newServer(t, "u-riley")
	resp := do(t, http.MethodPost, srv.URL+"/teams", `{"name":"Rogue Team"}`)
	resp.Body.Close()
	if resp.StatusCode != http.StatusForbidden {
		t.Errorf("expected 403 for non-admin, got %d", resp.StatusCode)
	}
}

func TestCreateTeam(t *testing.T) {
	srv, st := newServer(t, "u-dana")

	resp := do(t, http.MethodPost, srv.URL+"/teams", `{"name":"Data Platform","code":"DPL","divisionId":"div-product"}`)
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("expected 201, got %d", resp.StatusCode)
	}
	var team struct {
		ID           string `json:"id"`
		DivisionName string `json:"divisionName"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&team); err != nil {
		t.Fatalf("bad body: %v", err)
	}
	if team.DivisionName != "Product Division" {
		t.Errorf("expected denormalized division name, got %q", team.DivisionName)
	}
	if _, ok := st.TeamByID(team.ID); !ok {
		t.Error("expected team in state")
	}
}

func TestUpdateUser_AdminRankChange(t *testing.T) {
	srv, st := newServer(t, "u-dana")

	resp := do(t, http.MethodPut, srv.URL+"/users/u-riley", `{"position":"Tech Lead"}`)
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	u, _ := st.UserByID("u-riley")
	if u.Position != "Tech Lead" {
		t.Errorf("expected position applied, got %q", u.Position)
	}
}

func TestDeleteUser_NoCascade(t *testing.T) {
	srv, st := newServer(t, "u-dana")

	resp := do(t, http.MethodDelete, srv.URL+"/users/u-marcus", "")
	resp.Body.Close()
	if resp.StatusCode != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", resp.StatusCode)
	}
	if _, ok := st.UserByID("u-marcus"); ok {
		t.Error("expected user removed")
	}
	// The personal objective keeps its dangling owner.
	if o, ok := st.ObjectiveByID("obj-marcus-personal"); !ok || o.OwnerID != "u-marcus" {
		t.Error("expected objective to keep the dangling owner id")
	}
}

func TestDivisionLifecycle(t *testing.T) {
	srv, st := newServer(t, "u-dana")

	resp := do(t, http.MethodPost, srv.URL+"/divisions", `{"name":"Research"}`)
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("expected 201, got %d", resp.StatusCode)
	}
	var div struct {
		ID string `json:"id"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&div); err != nil {
		t.Fatalf("bad body: %v", err)
	}
	resp.Body.Close()

	resp = do(t, http.MethodPut, srv.URL+"/divisions/"+div.ID, `{"name":"Research Lab"}`)
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	resp = do(t, http.MethodDelete, srv.URL+"/divisions/"+div.ID, "")
	resp.Body.Close()
	if resp.StatusCode != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", resp.StatusCode)
	}
	if _, ok := st.DivisionByID(div.ID); ok {
		t.Error("expected division removed")
	}
}
