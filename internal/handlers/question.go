package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"couple-space-backend/internal/middleware"
	"couple-space-backend/internal/services"

	"github.com/rs/zerolog/log"
)

// QuestionHandler handles daily question HTTP requests
type QuestionHandler struct {
	questionService *services.QuestionService
}

// NewQuestionHandler creates a new question handler
func NewQuestionHandler(questionService *services.QuestionService) *QuestionHandler {
	return &QuestionHandler{questionService: questionService}
}

// GetDailyQuestion handles GET /api/v1/daily-question
func (h *QuestionHandler) GetDailyQuestion(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID := middleware.GetUserID(ctx)
	coupleID := middleware.GetCoupleID(ctx)

	view, err := h.questionService.GetDailyQuestion(ctx, coupleID, userID, time.Now().UTC())
	if err != nil {
		log.Error().Err(err).Str("couple_id", coupleID).Msg("Failed to load daily question")
		respondError(w, err.Error(), statusForError(err))
		return
	}

	respondJSON(w, http.StatusOK, view)
}

// AnswerRequest is the body for answering today's question
type AnswerRequest struct {
	Answer string `json:"answer"`
}

// AnswerDailyQuestion handles POST /api/v1/daily-question
func (h *QuestionHandler) AnswerDailyQuestion(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID := middleware.GetUserID(ctx)
	coupleID := middleware.GetCoupleID(ctx)

	var req AnswerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if req.Answer == "" {
		respondError(w, "answer is required", http.StatusBadRequest)
		return
	}

	if err := h.questionService.AnswerDailyQuestion(ctx, coupleID, userID, time.Now().UTC(), req.Answer); err != nil {
		log.Error().Err(err).Str("couple_id", coupleID).Msg("Failed to store answer")
		respondError(w, err.Error(), statusForError(err))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
