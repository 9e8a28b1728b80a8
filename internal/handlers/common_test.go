package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"couple-space-backend/internal/repository"
	"couple-space-backend/internal/services"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func requestWithID(id string) *http.Request {
	r := httptest.NewRequest(http.MethodPatch, "/", nil)
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("id", id)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func TestPathIDValid(t *testing.T) {
	want := uuid.New().String()

	id, err := pathID(requestWithID(want))
	assert.NoError(t, err)
	assert.Equal(t, want, id)
}

func TestPathIDMalformed(t *testing.T) {
	for _, raw := range []string{"abc123", "", "12345678-1234", "'; DROP TABLE couples;--"} {
		_, err := pathID(requestWithID(raw))
		assert.ErrorIs(t, err, repository.ErrNotFound, "id %q", raw)
	}
}

func TestStatusForError(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{repository.ErrNotFound, http.StatusNotFound},
		{repository.ErrEmailTaken, http.StatusConflict},
		{repository.ErrCoupleFull, http.StatusConflict},
		{repository.ErrInvalidTransition, http.StatusUnprocessableEntity},
		{services.ErrInvalidCredentials, http.StatusUnauthorized},
		{assert.AnError, http.StatusInternalServerError},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, statusForError(tt.err), "%v", tt.err)
	}
}
