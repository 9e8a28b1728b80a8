package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"couple-space-backend/internal/repository"
	"couple-space-backend/internal/services"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// respondError sends an error response
func respondError(w http.ResponseWriter, message string, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(ErrorResponse{Error: message})
}

// respondJSON sends a JSON response
func respondJSON(w http.ResponseWriter, statusCode int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(payload)
}

// pathID extracts the {id} route parameter. All record ids are UUIDs, so a
// value that does not parse can never name a record and reads as not found
// rather than reaching the database and failing on the uuid column.
func pathID(r *http.Request) (string, error) {
	id := chi.URLParam(r, "id")
	if _, err := uuid.Parse(id); err != nil {
		return "", repository.ErrNotFound
	}
	return id, nil
}

// statusForError maps known sentinel errors to HTTP status codes
func statusForError(err error) int {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, repository.ErrEmailTaken), errors.Is(err, repository.ErrCoupleFull):
		return http.StatusConflict
	case errors.Is(err, repository.ErrInvalidTransition):
		return http.StatusUnprocessableEntity
	case errors.Is(err, services.ErrInvalidCredentials):
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}
