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

var challengeStatuses = map[string]bool{
	"active":    true,
	"completed": true,
	"expired":   true,
}

// ChallengeHandler handles weekly challenge HTTP requests
type ChallengeHandler struct {
	challengeRepo *repository.ChallengeRepository
}

// NewChallengeHandler creates a new challenge handler
func NewChallengeHandler(challengeRepo *repository.ChallengeRepository) *ChallengeHandler {
	return &ChallengeHandler{challengeRepo: challengeRepo}
}

// ListChallenges handles GET /api/v1/challenges
func (h *ChallengeHandler) ListChallenges(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	coupleID := middleware.GetCoupleID(ctx)

	challenges, err := h.challengeRepo.ListByCouple(ctx, coupleID)
	if err != nil {
		log.Error().Err(err).Str("couple_id", coupleID).Msg("Failed to list challenges")
		respondError(w, err.Error(), statusForError(err))
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{"challenges": challenges})
}

// CreateChallengeRequest is the body for starting a weekly challenge
type CreateChallengeRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// CreateChallenge handles POST /api/v1/challenges. The challenge is anchored
// to the start of the current week (Sunday).
func (h *ChallengeHandler) CreateChallenge(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	coupleID := middleware.GetCoupleID(ctx)

	var req CreateChallengeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if req.Title == "" {
		respondError(w, "title is required", http.StatusBadRequest)
		return
	}

	challenge := &models.WeeklyChallenge{
		ID:          uuid.New().String(),
		CoupleID:    coupleID,
		Title:       req.Title,
		Description: req.Description,
		WeekStart:   startOfWeek(time.Now()),
		Status:      "active",
		CreatedAt:   time.Now(),
	}
	if err := h.challengeRepo.Create(ctx, challenge); err != nil {
		log.Error().Err(err).Str("couple_id", coupleID).Msg("Failed to create challenge")
		respondError(w, err.Error(), statusForError(err))
		return
	}

	respondJSON(w, http.StatusCreated, challenge)
}

// UpdateChallengeRequest is the body for changing a challenge's status
type UpdateChallengeRequest struct {
	Status string `json:"status"`
}

// UpdateChallenge handles PATCH /api/v1/challenges/{id}
func (h *ChallengeHandler) UpdateChallenge(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	coupleID := middleware.GetCoupleID(ctx)
	id, err := pathID(r)
	if err != nil {
		respondError(w, err.Error(), statusForError(err))
		return
	}

	var req UpdateChallengeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if !challengeStatuses[req.Status] {
		respondError(w, "unknown status", http.StatusBadRequest)
		return
	}

	if err := h.challengeRepo.UpdateStatus(ctx, id, coupleID, req.Status); err != nil {
		log.Error().Err(err).Str("couple_id", coupleID).Str("challenge_id", id).Msg("Failed to update challenge")
		respondError(w, err.Error(), statusForError(err))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// startOfWeek truncates t to the preceding Sunday at midnight
func startOfWeek(t time.Time) time.Time {
	t = time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	return t.AddDate(0, 0, -int(t.Weekday()))
}
