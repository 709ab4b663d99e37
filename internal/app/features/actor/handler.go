// Package actor implements the user switcher: any directory user can be
// selected as the acting user for the session, and all permission checks
// follow the selection.
package actor

import (
	"net/http"

	"go.uber.org/zap"

	"okrstudio/internal/app/features/shared"
	"okrstudio/internal/app/state"
	"okrstudio/internal/app/system/auth"
)

// Handler owns the actor-session handlers.
type Handler struct {
	State          *state.Store
	DefaultActorID string
	Log            *zap.Logger
}

// NewHandler constructs an actor Handler. defaultActorID is used when the
// session has no stored selection.
func NewHandler(st *state.Store, defaultActorID string, logger *zap.Logger) *Handler {
	return &Handler{State: st, DefaultActorID: defaultActorID, Log: logger}
}

// Current handles GET /: the full record of the acting user.
func (h *Handler) Current(w http.ResponseWriter, r *http.Request) {
	id := shared.ActorID(r, h.DefaultActorID)
	u, ok := h.State.UserByID(id)
	if !ok {
		shared.Error(w, http.StatusNotFound, "no acting user available")
		return
	}
	shared.JSON(w, http.StatusOK, u)
}

// Switch handles POST /: select a different acting user.
func (h *Handler) Switch(w http.ResponseWriter, r *http.Request) {
	var body struct {
		UserID string `json:"userId"`
	}
	if err := shared.DecodeJSON(r, &body); err != nil {
		shared.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	u, ok := h.State.UserByID(body.UserID)
	if !ok {
		shared.Error(w, http.StatusNotFound, "unknown user")
		return
	}
	if err := auth.SetActor(w, r, u.ID); err != nil {
		h.Log.Error("could not store actor selection", zap.Error(err))
		shared.Error(w, http.StatusInternalServerError, "could not store selection")
		return
	}
	shared.JSON(w, http.StatusOK, u)
}

// Reset handles DELETE /: drop the selection back to the default actor.
func (h *Handler) Reset(w http.ResponseWriter, r *http.Request) {
	if err := auth.ClearActor(w, r); err != nil {
		h.Log.Error("could not clear actor selection", zap.Error(err))
		shared.Error(w, http.StatusInternalServerError, "could not clear selection")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Resolver adapts the state store to auth.ActorResolver.
type Resolver struct {
	State *state.Store
}

// ActorByID resolves a stored session id to a lightweight actor.
func (r Resolver) ActorByID(id string) (auth.Actor, bool) {
	u, ok := r.State.UserByID(id)
	if !ok {
		return auth.Actor{}, false
	}
	return auth.Actor{ID: u.ID, Name: u.Name, Role: u.Role}, true
}

var _ auth.ActorResolver = Resolver{}
