// internal/app/features/directory/routes.go
package directory

import "github.com/go-chi/chi/v5"

// Routes returns the directory subrouter, mounted under /api/directory.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/users", h.Users)
	r.Get("/teams", h.Teams)
	r.Get("/divisions", h.Divisions)
	r.Get("/timezones", h.Timezones)
	return r
}
