// Package okrs serves the objective list and all objective mutations:
// create, edit, delete, and key-result check-ins.
package okrs

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"okrstudio/internal/app/coordinator"
	"okrstudio/internal/app/features/shared"
	"okrstudio/internal/domain/models"
)

// Handler owns the objective handlers.
type Handler struct {
	C              *coordinator.Coordinator
	DefaultActorID string
	Log            *zap.Logger

	// Now is injectable for view tests; the schedule-health flags depend
	// on the current date.
	Now func() time.Time
}

// NewHandler constructs an okrs Handler.
func NewHandler(c *coordinator.Coordinator, defaultActorID string, logger *zap.Logger) *Handler {
	return &Handler{C: c, DefaultActorID: defaultActorID, Log: logger, Now: time.Now}
}

// keyResultView decorates a key result with its derived schedule-health
// flags.
type keyResultView struct {
	models.KeyResult
	IsBehind bool `json:"isBehind"`
	IsAtRisk bool `json:"isAtRisk"`
}

// objectiveView decorates an objective with its aggregate progress and
// per-key-result health.
type objectiveView struct {
	models.Objective
	Progress   int             `json:"progress"`
	KeyResults []keyResultView `json:"keyResults"`
}

func toView(o models.Objective, now time.Time) objectiveView {
	krs := make([]keyResultView, 0, len(o.KeyResults))
	for _, kr := range o.KeyResults {
		krs = append(krs, keyResultView{
			KeyResult: kr,
			IsBehind:  models.IsBehind(kr, now),
			IsAtRisk:  models.IsAtRisk(kr, now),
		})
	}
	return objectiveView{
		Objective:  o,
		Progress:   models.ObjectiveProgress(o),
		KeyResults: krs,
	}
}

// List handles GET /: the objectives visible to the acting user, newest
// first.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	actorID := shared.ActorID(r, h.DefaultActorID)
	objectives, err := h.C.VisibleObjectives(actorID)
	if err != nil {
		shared.CoordinatorError(w, err)
		return
	}
	now := h.Now()
	out := make([]objectiveView, 0, len(objectives))
	for _, o := range objectives {
		out = append(out, toView(o, now))
	}
	shared.JSON(w, http.StatusOK, out)
}

// Create handles POST /.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var draft coordinator.ObjectiveDraft
	if err := shared.DecodeJSON(r, &draft); err != nil {
		shared.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	o, err := h.C.CreateObjective(shared.ActorID(r, h.DefaultActorID), draft)
	if err != nil {
		shared.CoordinatorError(w, err)
		return
	}
	shared.JSON(w, http.StatusCreated, toView(o, h.Now()))
}

// Update handles PUT /{id}.
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	var edit coordinator.ObjectiveEdit
	if err := shared.DecodeJSON(r, &edit); err != nil {
		shared.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	o, err := h.C.UpdateObjective(shared.ActorID(r, h.DefaultActorID), chi.URLParam(r, "id"), edit)
	if err != nil {
		shared.CoordinatorError(w, err)
		return
	}
	shared.JSON(w, http.StatusOK, toView(o, h.Now()))
}

// Delete handles DELETE /{id}.
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.C.DeleteObjective(shared.ActorID(r, h.DefaultActorID), chi.URLParam(r, "id")); err != nil {
		shared.CoordinatorError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// CheckIn handles POST /{id}/checkins.
func (h *Handler) CheckIn(w http.ResponseWriter, r *http.Request) {
	var body struct {
		KrID    string `json:"krId"`
		Value   int    `json:"value"`
		Comment string `json:"comment"`
	}
	if err := shared.DecodeJSON(r, &body); err != nil {
		shared.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	o, err := h.C.CheckIn(shared.ActorID(r, h.DefaultActorID), chi.URLParam(r, "id"), body.KrID, body.Value, body.Comment)
	if err != nil {
		shared.CoordinatorError(w, err)
		return
	}
	shared.JSON(w, http.StatusOK, toView(o, h.Now()))
}
