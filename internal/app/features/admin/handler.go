// Package admin exposes the org-management surface: users, teams, and
// divisions. Authorization lives in the coordinator; every mutation here
// requires the admin role and fails with 403 otherwise.
package admin

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"okrstudio/internal/app/coordinator"
	"okrstudio/internal/app/features/shared"
	"okrstudio/internal/domain/models"
)

// Handler owns the admin handlers.
type Handler struct {
	C              *coordinator.Coordinator
	DefaultActorID string
	Log            *zap.Logger
}

// NewHandler constructs an admin Handler.
func NewHandler(c *coordinator.Coordinator, defaultActorID string, logger *zap.Logger) *Handler {
	return &Handler{C: c, DefaultActorID: defaultActorID, Log: logger}
}

func (h *Handler) actorID(r *http.Request) string {
	return shared.ActorID(r, h.DefaultActorID)
}

/* Users */

// CreateUser handles POST /users.
func (h *Handler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var u models.User
	if err := shared.DecodeJSON(r, &u); err != nil {
		shared.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	created, err := h.C.AddUser(h.actorID(r), u)
	if err != nil {
		shared.CoordinatorError(w, err)
		return
	}
	shared.JSON(w, http.StatusCreated, created)
}

// UpdateUser handles PUT /users/{id}.
func (h *Handler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	var edit coordinator.UserEdit
	if err := shared.DecodeJSON(r, &edit); err != nil {
		shared.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	edit.UserID = chi.URLParam(r, "id")
	updated, err := h.C.UpdateUserProfile(h.actorID(r), edit)
	if err != nil {
		shared.CoordinatorError(w, err)
		return
	}
	shared.JSON(w, http.StatusOK, updated)
}

// DeleteUser handles DELETE /users/{id}.
func (h *Handler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	if err := h.C.DeleteUser(h.actorID(r), chi.URLParam(r, "id")); err != nil {
		shared.CoordinatorError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

/* Teams */

// CreateTeam handles POST /teams.
func (h *Handler) CreateTeam(w http.ResponseWriter, r *http.Request) {
	var t models.Team
	if err := shared.DecodeJSON(r, &t); err != nil {
		shared.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	created, err := h.C.AddTeam(h.actorID(r), t)
	if err != nil {
		shared.CoordinatorError(w, err)
		return
	}
	shared.JSON(w, http.StatusCreated, created)
}

// UpdateTeam handles PUT /teams/{id}.
func (h *Handler) UpdateTeam(w http.ResponseWriter, r *http.Request) {
	var edit coordinator.TeamEdit
	if err := shared.DecodeJSON(r, &edit); err != nil {
		shared.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	edit.TeamID = chi.URLParam(r, "id")
	updated, err := h.C.UpdateTeam(h.actorID(r), edit)
	if err != nil {
		shared.CoordinatorError(w, err)
		return
	}
	shared.JSON(w, http.StatusOK, updated)
}

// DeleteTeam handles DELETE /teams/{id}.
func (h *Handler) DeleteTeam(w http.ResponseWriter, r *http.Request) {
	if err := h.C.DeleteTeam(h.actorID(r), chi.URLParam(r, "id")); err != nil {
		shared.CoordinatorError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

/* Divisions */

// CreateDivision handles POST /divisions.
func (h *Handler) CreateDivision(w http.ResponseWriter, r *http.Request) {
	var d models.Division
	if err := shared.DecodeJSON(r, &d); err != nil {
		shared.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	created, err := h.C.AddDivision(h.actorID(r), d)
	if err != nil {
		shared.CoordinatorError(w, err)
		return
	}
	shared.JSON(w, http.StatusCreated, created)
}

// UpdateDivision handles PUT /divisions/{id}.
func (h *Handler) UpdateDivision(w http.ResponseWriter, r *http.Request) {
	var d models.Division
	if err := shared.DecodeJSON(r, &d); err != nil {
		shared.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	d.ID = chi.URLParam(r, "id")
	updated, err := h.C.UpdateDivision(h.actorID(r), d)
	if err != nil {
		shared.CoordinatorError(w, err)
		return
	}
	shared.JSON(w, http.StatusOK, updated)
}

// DeleteDivision handles DELETE /divisions/{id}.
func (h *Handler) DeleteDivision(w http.ResponseWriter, r *http.Request) {
	if err := h.C.DeleteDivision(h.actorID(r), chi.URLParam(r, "id")); err != nil {
		shared.CoordinatorError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
