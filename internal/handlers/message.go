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

var messageTypes = map[string]bool{
	"text":    true,
	"image":   true,
	"sticker": true,
	"voice":   true,
}

// MessageHandler handles chat HTTP requests
type MessageHandler struct {
	messageRepo *repository.MessageRepository
}

// NewMessageHandler creates a new message handler
func NewMessageHandler(messageRepo *repository.MessageRepository) *MessageHandler {
	return &MessageHandler{messageRepo: messageRepo}
}

// ListMessages handles GET /api/v1/messages
func (h *MessageHandler) ListMessages(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	coupleID := middleware.GetCoupleID(ctx)

	limit := 50
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		if parsed, err := strconv.Atoi(limitStr); err == nil && parsed > 0 && parsed <= 200 {
			limit = parsed
		}
	}

	messages, err := h.messageRepo.ListByCouple(ctx, coupleID, limit)
	if err != nil {
		log.Error().Err(err).Str("couple_id", coupleID).Msg("Failed to list messages")
		respondError(w, err.Error(), statusForError(err))
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{"messages": messages})
}

// SendMessageRequest is the body for sending a message
type SendMessageRequest struct {
	Content     string `json:"content"`
	MessageType string `json:"message_type"`
}

// SendMessage handles POST /api/v1/messages
func (h *MessageHandler) SendMessage(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID := middleware.GetUserID(ctx)
	coupleID := middleware.GetCoupleID(ctx)

	var req SendMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if req.Content == "" {
		respondError(w, "content is required", http.StatusBadRequest)
		return
	}
	if req.MessageType == "" {
		req.MessageType = "text"
	}
	if !messageTypes[req.MessageType] {
		respondError(w, "unknown message_type", http.StatusBadRequest)
		return
	}

	message := &models.Message{
		ID:          uuid.New().String(),
		CoupleID:    coupleID,
		SenderID:    userID,
		Content:     req.Content,
		MessageType: req.MessageType,
		CreatedAt:   time.Now(),
	}
	if err := h.messageRepo.Create(ctx, message); err != nil {
		log.Error().Err(err).Str("couple_id", coupleID).Msg("Failed to send message")
		respondError(w, err.Error(), statusForError(err))
		return
	}

	respondJSON(w, http.StatusCreated, message)
}
