// internal/app/features/cfr/routes.go
package cfr

import "github.com/go-chi/chi/v5"

// Routes returns the CFR subrouter, mounted under /api/cfr.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.List)
	r.Put("/", h.Save)
	return r
}
