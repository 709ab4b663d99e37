// Package directory serves read-only listings of the org structure. The
// listings back the user switcher, team pickers, and admin screens; they
// carry no authorization because org structure is visible to everyone.
package directory

import (
	"net/http"

	"go.uber.org/zap"

	"okrstudio/internal/app/features/shared"
	"okrstudio/internal/app/state"
	"okrstudio/internal/app/system/timezones"
	"okrstudio/internal/domain/models"
)

// Handler owns the directory listings.
type Handler struct {
	State *state.Store
	Log   *zap.Logger
}

// NewHandler constructs a directory Handler.
func NewHandler(st *state.Store, logger *zap.Logger) *Handler {
	return &Handler{State: st, Log: logger}
}

// userView is the listing shape: the full record plus the avatar initials
// shown when no avatar image is set.
type userView struct {
	models.User
	Initials string `json:"initials"`
}

// Users handles GET /users.
func (h *Handler) Users(w http.ResponseWriter, r *http.Request) {
	users := h.State.Users()
	out := make([]userView, 0, len(users))
	for _, u := range users {
		out = append(out, userView{User: u, Initials: models.Initials(u.Name)})
	}
	shared.JSON(w, http.StatusOK, out)
}

// Teams handles GET /teams.
func (h *Handler) Teams(w http.ResponseWriter, r *http.Request) {
	shared.JSON(w, http.StatusOK, h.State.Teams())
}

// Divisions handles GET /divisions.
func (h *Handler) Divisions(w http.ResponseWriter, r *http.Request) {
	shared.JSON(w, http.StatusOK, h.State.Divisions())
}

// Timezones handles GET /timezones: the zones offered in profile settings.
func (h *Handler) Timezones(w http.ResponseWriter, r *http.Request) {
	shared.JSON(w, http.StatusOK, timezones.Zones())
}
