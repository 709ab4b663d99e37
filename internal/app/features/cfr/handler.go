// Package cfr serves monthly CFR (conversation, feedback, recognition)
// sessions: the visible listing and the upsert-style save.
package cfr

import (
	"net/http"
	"strconv"

	"go.uber.org/zap"

	"okrstudio/internal/app/coordinator"
	"okrstudio/internal/app/features/shared"
	"okrstudio/internal/domain/models"
)

// Handler owns the CFR handlers.
type Handler struct {
	C              *coordinator.Coordinator
	DefaultActorID string
	Log            *zap.Logger
}

// NewHandler constructs a cfr Handler.
func NewHandler(c *coordinator.Coordinator, defaultActorID string, logger *zap.Logger) *Handler {
	return &Handler{C: c, DefaultActorID: defaultActorID, Log: logger}
}

// List handles GET /. Optional query filters: objectiveId, year, month.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	actorID := shared.ActorID(r, h.DefaultActorID)
	sessions, err := h.C.VisibleCfrSessions(actorID)
	if err != nil {
		shared.CoordinatorError(w, err)
		return
	}

	q := r.URL.Query()
	objectiveID := q.Get("objectiveId")
	year, _ := strconv.Atoi(q.Get("year"))
	month, _ := strconv.Atoi(q.Get("month"))

	out := make([]models.CfrSession, 0, len(sessions))
	for _, s := range sessions {
		if objectiveID != "" && s.ObjectiveID != objectiveID {
			continue
		}
		if year != 0 && s.Year != year {
			continue
		}
		if month != 0 && s.Month != month {
			continue
		}
		out = append(out, s)
	}
	shared.JSON(w, http.StatusOK, out)
}

// Save handles PUT /: create or update the month's session for an
// objective.
func (h *Handler) Save(w http.ResponseWriter, r *http.Request) {
	var draft coordinator.CfrDraft
	if err := shared.DecodeJSON(r, &draft); err != nil {
		shared.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	session, err := h.C.SaveCfrSession(shared.ActorID(r, h.DefaultActorID), draft)
	if err != nil {
		shared.CoordinatorError(w, err)
		return
	}
	shared.JSON(w, http.StatusOK, session)
}
