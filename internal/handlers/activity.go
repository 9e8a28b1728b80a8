package handlers

import (
	"encoding/json"
	"net/http"

	"couple-space-backend/internal/middleware"
	"couple-space-backend/internal/services"

	"github.com/rs/zerolog/log"
)

var activityCategories = map[string]bool{
	"romantic":  true,
	"fun":       true,
	"surprise":  true,
	"challenge": true,
}

// ActivityHandler handles activity catalog and roulette HTTP requests
type ActivityHandler struct {
	activityService *services.ActivityService
}

// NewActivityHandler creates a new activity handler
func NewActivityHandler(activityService *services.ActivityService) *ActivityHandler {
	return &ActivityHandler{activityService: activityService}
}

// ListActivities handles GET /api/v1/activities
func (h *ActivityHandler) ListActivities(w http.ResponseWriter, r *http.Request) {
	category := r.URL.Query().Get("category")
	if category != "" && !activityCategories[category] {
		respondError(w, "unknown category", http.StatusBadRequest)
		return
	}

	activities, err := h.activityService.GetActivities(r.Context(), category)
	if err != nil {
		log.Error().Err(err).Msg("Failed to list activities")
		respondError(w, err.Error(), statusForError(err))
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{"activities": activities})
}

// RandomActivity handles GET /api/v1/activities/random
func (h *ActivityHandler) RandomActivity(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	coupleID := middleware.GetCoupleID(ctx)

	category := r.URL.Query().Get("category")
	if category != "" && !activityCategories[category] {
		respondError(w, "unknown category", http.StatusBadRequest)
		return
	}
	excludeCompleted := r.URL.Query().Get("exclude_completed") != "false"

	activity, err := h.activityService.GetRandomActivity(ctx, category, excludeCompleted, coupleID)
	if err != nil {
		log.Error().
			Err(err).
			Str("couple_id", coupleID).
			Str("category", category).
			Msg("Failed to pick random activity")
		respondError(w, err.Error(), statusForError(err))
		return
	}

	respondJSON(w, http.StatusOK, activity)
}

// ListCoupleActivities handles GET /api/v1/couple/activities
func (h *ActivityHandler) ListCoupleActivities(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	coupleID := middleware.GetCoupleID(ctx)

	records, err := h.activityService.GetCoupleActivities(ctx, coupleID)
	if err != nil {
		log.Error().Err(err).Str("couple_id", coupleID).Msg("Failed to list couple activities")
		respondError(w, err.Error(), statusForError(err))
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{"activities": records})
}

// AddActivityRequest is the body for accepting an activity
type AddActivityRequest struct {
	ActivityID string `json:"activity_id"`
}

// AddCoupleActivity handles POST /api/v1/couple/activities
func (h *ActivityHandler) AddCoupleActivity(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	coupleID := middleware.GetCoupleID(ctx)

	var req AddActivityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if req.ActivityID == "" {
		respondError(w, "activity_id is required", http.StatusBadRequest)
		return
	}

	record, err := h.activityService.AddActivityToCouple(ctx, coupleID, req.ActivityID)
	if err != nil {
		log.Error().
			Err(err).
			Str("couple_id", coupleID).
			Str("activity_id", req.ActivityID).
			Msg("Failed to add activity to couple")
		respondError(w, err.Error(), statusForError(err))
		return
	}

	log.Info().
		Str("couple_id", coupleID).
		Str("activity_id", req.ActivityID).
		Msg("Activity added to couple")

	respondJSON(w, http.StatusCreated, record)
}

// UpdateCoupleActivity handles PATCH /api/v1/couple/activities/{id}
func (h *ActivityHandler) UpdateCoupleActivity(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	coupleID := middleware.GetCoupleID(ctx)
	id, err := pathID(r)
	if err != nil {
		respondError(w, err.Error(), statusForError(err))
		return
	}

	var patch services.CoupleActivityPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		respondError(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if patch.Rating != nil && (*patch.Rating < 1 || *patch.Rating > 5) {
		respondError(w, "rating must be between 1 and 5", http.StatusBadRequest)
		return
	}

	record, err := h.activityService.UpdateCoupleActivity(ctx, id, coupleID, patch)
	if err != nil {
		log.Error().
			Err(err).
			Str("couple_id", coupleID).
			Str("couple_activity_id", id).
			Msg("Failed to update couple activity")
		respondError(w, err.Error(), statusForError(err))
		return
	}

	respondJSON(w, http.StatusOK, record)
}
