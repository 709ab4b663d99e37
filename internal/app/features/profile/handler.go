// Package profile lets the acting user view and edit their own record.
// Role and position are not editable here; those are admin operations.
package profile

import (
	"net/http"

	"go.uber.org/zap"

	"okrstudio/internal/app/coordinator"
	"okrstudio/internal/app/features/shared"
	"okrstudio/internal/app/state"
)

// Handler owns the profile handlers.
type Handler struct {
	C              *coordinator.Coordinator
	State          *state.Store
	DefaultActorID string
	Log            *zap.Logger
}

// NewHandler constructs a profile Handler.
func NewHandler(c *coordinator.Coordinator, st *state.Store, defaultActorID string, logger *zap.Logger) *Handler {
	return &Handler{C: c, State: st, DefaultActorID: defaultActorID, Log: logger}
}

// Show handles GET /.
func (h *Handler) Show(w http.ResponseWriter, r *http.Request) {
	u, ok := h.State.UserByID(shared.ActorID(r, h.DefaultActorID))
	if !ok {
		shared.Error(w, http.StatusNotFound, "no acting user available")
		return
	}
	shared.JSON(w, http.StatusOK, u)
}

// Update handles PUT /. Changing the default team reassigns team
// membership as a side effect.
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Name          string `json:"name"`
		Email         string `json:"email"`
		AvatarURL     string `json:"avatarUrl"`
		Timezone      string `json:"timezone"`
		DefaultTeamID string `json:"defaultTeamId"`
	}
	if err := shared.DecodeJSON(r, &body); err != nil {
		shared.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	actorID := shared.ActorID(r, h.DefaultActorID)
	u, err := h.C.UpdateUserProfile(actorID, coordinator.UserEdit{
		UserID:        actorID,
		Name:          body.Name,
		Email:         body.Email,
		AvatarURL:     body.AvatarURL,
		Timezone:      body.Timezone,
		DefaultTeamID: body.DefaultTeamID,
	})
	if err != nil {
		shared.CoordinatorError(w, err)
		return
	}
	shared.JSON(w, http.StatusOK, u)
}
