package health

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"
)

// Handler holds dependencies needed for health checks.
type Handler struct {
	Offline func() bool
	Log     *zap.Logger
}

// NewHandler constructs a health Handler. offline reports whether the
// remote document store is unavailable (demo-data mode).
func NewHandler(offline func() bool, logger *zap.Logger) *Handler {
	return &Handler{Offline: offline, Log: logger}
}

type healthResponse struct {
	Status string `json:"status"`
	Store  string `json:"store"`
}

// Serve handles GET /health. The service is healthy even in offline mode;
// the store field tells operators which mode it is in.
func (h *Handler) Serve(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	resp := healthResponse{Status: "ok", Store: "connected"}
	if h.Offline() {
		resp.Store = "offline"
	}
	_ = json.NewEncoder(w).Encode(resp)
}
