// internal/app/features/okrs/routes.go
package okrs

import "github.com/go-chi/chi/v5"

// Routes returns the objective subrouter, mounted under /api/okrs.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.List)
	r.Post("/", h.Create)
	r.Put("/{id}", h.Update)
	r.Delete("/{id}", h.Delete)
	r.Post("/{id}/checkins", h.CheckIn)
	return r
}
