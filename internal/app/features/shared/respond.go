// Package shared holds the JSON plumbing common to all feature handlers.
package shared

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"okrstudio/internal/app/coordinator"
	"okrstudio/internal/app/system/auth"
)

const maxBodyBytes = 1 << 20

// JSON writes v with the given status.
func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// Error writes a JSON error body.
func Error(w http.ResponseWriter, status int, msg string) {
	JSON(w, status, map[string]string{"error": msg})
}

// CoordinatorError maps the coordinator's sentinel errors onto HTTP
// statuses.
func CoordinatorError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, coordinator.ErrNotFound):
		Error(w, http.StatusNotFound, err.Error())
	case errors.Is(err, coordinator.ErrNotAuthorized):
		Error(w, http.StatusForbidden, err.Error())
	case errors.Is(err, coordinator.ErrInvalid):
		Error(w, http.StatusBadRequest, err.Error())
	default:
		Error(w, http.StatusInternalServerError, "internal error")
	}
}

// DecodeJSON reads a bounded JSON body into dst.
func DecodeJSON(r *http.Request, dst any) error {
	dec := json.NewDecoder(http.MaxBytesReader(nil, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return fmt.Errorf("decode request body: %w", err)
	}
	return nil
}

// ActorID resolves the acting user for a request: the session actor when
// one is set, otherwise the configured default actor.
func ActorID(r *http.Request, fallback string) string {
	if a, ok := auth.CurrentActor(r); ok {
		return a.ID
	}
	return fallback
}
