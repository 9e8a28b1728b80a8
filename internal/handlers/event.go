package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"couple-space-backend/internal/middleware"
	"couple-space-backend/internal/models"
	"couple-space-backend/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

var eventTypes = map[string]bool{
	"anniversary": true,
	"date":        true,
	"special":     true,
	"reminder":    true,
}

// EventHandler handles calendar HTTP requests
type EventHandler struct {
	eventRepo *repository.EventRepository
}

// NewEventHandler creates a new event handler
func NewEventHandler(eventRepo *repository.EventRepository) *EventHandler {
	return &EventHandler{eventRepo: eventRepo}
}

// ListEvents handles GET /api/v1/events
func (h *EventHandler) ListEvents(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	coupleID := middleware.GetCoupleID(ctx)

	events, err := h.eventRepo.ListByCouple(ctx, coupleID)
	if err != nil {
		log.Error().Err(err).Str("couple_id", coupleID).Msg("Failed to list events")
		respondError(w, err.Error(), statusForError(err))
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{"events": events})
}

// CreateEventRequest is the body for creating a calendar event
type CreateEventRequest struct {
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Date        time.Time `json:"date"`
	Type        string    `json:"type"`
}

// CreateEvent handles POST /api/v1/events
func (h *EventHandler) CreateEvent(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID := middleware.GetUserID(ctx)
	coupleID := middleware.GetCoupleID(ctx)

	var req CreateEventRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if req.Title == "" || req.Date.IsZero() {
		respondError(w, "title and date are required", http.StatusBadRequest)
		return
	}
	if !eventTypes[req.Type] {
		respondError(w, "unknown event type", http.StatusBadRequest)
		return
	}

	event := &models.Event{
		ID:          uuid.New().String(),
		CoupleID:    coupleID,
		Title:       req.Title,
		Description: req.Description,
		Date:        req.Date,
		Type:        req.Type,
		CreatedBy:   userID,
		CreatedAt:   time.Now(),
	}
	if err := h.eventRepo.Create(ctx, event); err != nil {
		log.Error().Err(err).Str("couple_id", coupleID).Msg("Failed to create event")
		respondError(w, err.Error(), statusForError(err))
		return
	}

	respondJSON(w, http.StatusCreated, event)
}

// DeleteEvent handles DELETE /api/v1/events/{id}
func (h *EventHandler) DeleteEvent(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	coupleID := middleware.GetCoupleID(ctx)
	id, err := pathID(r)
	if err != nil {
		respondError(w, err.Error(), statusForError(err))
		return
	}

	if err := h.eventRepo.Delete(ctx, id, coupleID); err != nil {
		log.Error().Err(err).Str("couple_id", coupleID).Str("event_id", id).Msg("Failed to delete event")
		respondError(w, err.Error(), statusForError(err))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
