// internal/app/features/actor/routes.go
package actor

import "github.com/go-chi/chi/v5"

// Routes returns the actor-session subrouter, mounted under /api/actor.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.Current)
	r.Post("/", h.Switch)
	r.Delete("/", h.Reset)
	return r
}
