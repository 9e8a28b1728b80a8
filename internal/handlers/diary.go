package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"couple-space-backend/internal/middleware"
	"couple-space-backend/internal/models"
	"couple-space-backend/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// DiaryHandler handles diary HTTP requests
type DiaryHandler struct {
	diaryRepo *repository.DiaryRepository
}

// NewDiaryHandler creates a new diary handler
func NewDiaryHandler(diaryRepo *repository.DiaryRepository) *DiaryHandler {
	return &DiaryHandler{diaryRepo: diaryRepo}
}

// ListEntries handles GET /api/v1/diary
func (h *DiaryHandler) ListEntries(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	coupleID := middleware.GetCoupleID(ctx)

	limit := 20
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		if parsed, err := strconv.Atoi(limitStr); err == nil && parsed > 0 && parsed <= 100 {
			limit = parsed
		}
	}

	entries, err := h.diaryRepo.ListByCouple(ctx, coupleID, limit)
	if err != nil {
		log.Error().Err(err).Str("couple_id", coupleID).Msg("Failed to list diary entries")
		respondError(w, err.Error(), statusForError(err))
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{"entries": entries})
}

// CreateEntryRequest is the body for writing a diary entry
type CreateEntryRequest struct {
	Title   string   `json:"title"`
	Content string   `json:"content"`
	Mood    string   `json:"mood"`
	Photos  []string `json:"photos"`
}

// CreateEntry handles POST /api/v1/diary
func (h *DiaryHandler) CreateEntry(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID := middleware.GetUserID(ctx)
	coupleID := middleware.GetCoupleID(ctx)

	var req CreateEntryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if req.Title == "" || req.Content == "" {
		respondError(w, "title and content are required", http.StatusBadRequest)
		return
	}
	if req.Photos == nil {
		req.Photos = []string{}
	}

	entry := &models.DiaryEntry{
		ID:        uuid.New().String(),
		CoupleID:  coupleID,
		AuthorID:  userID,
		Title:     req.Title,
		Content:   req.Content,
		Mood:      req.Mood,
		Photos:    req.Photos,
		CreatedAt: time.Now(),
	}
	if err := h.diaryRepo.Create(ctx, entry); err != nil {
		log.Error().Err(err).Str("couple_id", coupleID).Msg("Failed to create diary entry")
		respondError(w, err.Error(), statusForError(err))
		return
	}

	respondJSON(w, http.StatusCreated, entry)
}
