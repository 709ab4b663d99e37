// internal/app/features/admin/routes.go
package admin

import "github.com/go-chi/chi/v5"

// Routes returns the admin subrouter, mounted under /api/admin.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()

	r.Post("/users", h.CreateUser)
	r.Put("/users/{id}", h.UpdateUser)
	r.Delete("/users/{id}", h.DeleteUser)

	r.Post("/teams", h.CreateTeam)
	r.Put("/teams/{id}", h.UpdateTeam)
	r.Delete("/teams/{id}", h.DeleteTeam)

	r.Post("/divisions", h.CreateDivision)
	r.Put("/divisions/{id}", h.UpdateDivision)
	r.Delete("/divisions/{id}", h.DeleteDivision)

	return r
}
