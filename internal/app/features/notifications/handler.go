// Package notifications drains the transient notification buffer to the
// client, which renders the entries as auto-dismissing toasts. Draining is
// destructive: each notification is delivered once.
package notifications

import (
	"net/http"

	"okrstudio/internal/app/features/shared"
	"okrstudio/internal/app/system/notify"
)

// Handler owns the notification drain endpoint.
type Handler struct {
	Hub *notify.Hub
}

// NewHandler constructs a notifications Handler.
func NewHandler(hub *notify.Hub) *Handler {
	return &Handler{Hub: hub}
}

// Drain handles GET /: return and clear all pending notifications.
func (h *Handler) Drain(w http.ResponseWriter, r *http.Request) {
	pending := h.Hub.Drain()
	if pending == nil {
		pending = []notify.Notification{}
	}
	shared.JSON(w, http.StatusOK, pending)
}
