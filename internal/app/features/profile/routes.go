// internal/app/features/profile/routes.go
package profile

import "github.com/go-chi/chi/v5"

// Routes returns the profile subrouter, mounted under /api/profile.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.Show)
	r.Put("/", h.Update)
	return r
}
