package auth_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/zap"

	"okrstudio/internal/app/system/auth"
)

type staticResolver map[string]auth.Actor

func (r staticResolver) ActorByID(id string) (auth.Actor, bool) {
	a, ok := r[id]
	return a, ok
}

func initStore(t *testing.T) {
	t.Helper()
	if err := auth.InitSessionStore("0123456789abcdef0123456789abcdef", "", false, zap.NewNop()); err != nil {
		t.Fatalf("InitSessionStore failed: %v", err)
	}
}

func TestSetActor_ThenLoad(t *testing.T) {
	initStore(t)
	resolver := staticResolver{"u1": {ID: "u1", Name: "Dana Park", Role: "admin"}}

	// Write the cookie.
	setRec := httptest.NewRecorder()
	setReq := httptest.NewRequest(http.MethodPost, "/api/actor", nil)
	if err := auth.SetActor(setRec, setReq, "u1"); err != nil {
		t.Fatalf("SetActor failed: %v", err)
	}
	cookies := setRec.Result().Cookies()
	if len(cookies) == 0 {
		t.Fatal("expected session cookie to be set")
	}

	// Replay it through the middleware.
	var got auth.Actor
	var found bool
	h := auth.LoadActor(resolver)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got, found = auth.CurrentActor(r)
	}))
	req := httptest.NewRequest(http.MethodGet, "/api/okrs", nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	h.ServeHTTP(httptest.NewRecorder(), req)

	if !found {
		t.Fatal("expected actor in context")
	}
	if got.ID != "u1" || got.Name != "Dana Park" {
		t.Errorf("unexpected actor: %#v", got)
	}
}

func TestLoadActor_StaleIDLeavesNoActor(t *testing.T) {
	initStore(t)

	setRec := httptest.NewRecorder()
	if err := auth.SetActor(setRec, httptest.NewRequest(http.MethodPost, "/api/actor", nil), "ghost"); err != nil {
		t.Fatalf("SetActor failed: %v", err)
	}

	var found bool
	h := auth.LoadActor(staticResolver{})(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, found = auth.CurrentActor(r)
	}))
	req := httptest.NewRequest(http.MethodGet, "/api/okrs", nil)
	for _, c := range setRec.Result().Cookies() {
		req.AddCookie(c)
	}
	h.ServeHTTP(httptest.NewRecorder(), req)

	if found {
		t.Error("expected no actor for a deleted user id")
	}
}

func TestLoadActor_NoCookie(t *testing.T) {
	initStore(t)

	var found bool
	h := auth.LoadActor(staticResolver{})(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, found = auth.CurrentActor(r)
	}))
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

	if found {
		t.Error("expected no actor without a session cookie")
	}
}

func TestInitSessionStore_EmptyKey(t *testing.T) {
	if err := auth.InitSessionStore("", "", false, zap.NewNop()); err == nil {
		t.Error("expected error for empty session key")
	}
}
