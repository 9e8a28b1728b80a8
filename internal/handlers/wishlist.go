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

var (
	wishlistCategories = map[string]bool{
		"travel":      true,
		"experiences": true,
		"gifts":       true,
		"goals":       true,
		"general":     true,
	}
	wishlistPriorities = map[string]bool{
		"low":    true,
		"medium": true,
		"high":   true,
		"urgent": true,
	}
)

// WishlistHandler handles wishlist HTTP requests
type WishlistHandler struct {
	wishlistRepo *repository.WishlistRepository
}

// NewWishlistHandler creates a new wishlist handler
func NewWishlistHandler(wishlistRepo *repository.WishlistRepository) *WishlistHandler {
	return &WishlistHandler{wishlistRepo: wishlistRepo}
}

// ListItems handles GET /api/v1/wishlist
func (h *WishlistHandler) ListItems(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	coupleID := middleware.GetCoupleID(ctx)

	items, err := h.wishlistRepo.ListByCouple(ctx, coupleID)
	if err != nil {
		log.Error().Err(err).Str("couple_id", coupleID).Msg("Failed to list wishlist")
		respondError(w, err.Error(), statusForError(err))
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{"items": items})
}

// CreateItemRequest is the body for adding a wishlist item
type CreateItemRequest struct {
	Title         string   `json:"title"`
	Description   string   `json:"description"`
	Category      string   `json:"category"`
	Priority      string   `json:"priority"`
	EstimatedCost *float64 `json:"estimated_cost"`
	ImageURL      *string  `json:"image_url"`
}

// CreateItem handles POST /api/v1/wishlist
func (h *WishlistHandler) CreateItem(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID := middleware.GetUserID(ctx)
	coupleID := middleware.GetCoupleID(ctx)

	var req CreateItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if req.Title == "" {
		respondError(w, "title is required", http.StatusBadRequest)
		return
	}
	if req.Category == "" {
		req.Category = "general"
	}
	if req.Priority == "" {
		req.Priority = "medium"
	}
	if !wishlistCategories[req.Category] || !wishlistPriorities[req.Priority] {
		respondError(w, "unknown category or priority", http.StatusBadRequest)
		return
	}

	item := &models.WishlistItem{
		ID:            uuid.New().String(),
		CoupleID:      coupleID,
		Title:         req.Title,
		Description:   req.Description,
		Category:      req.Category,
		Priority:      req.Priority,
		EstimatedCost: req.EstimatedCost,
		ImageURL:      req.ImageURL,
		AddedBy:       userID,
		CreatedAt:     time.Now(),
	}
	if err := h.wishlistRepo.Create(ctx, item); err != nil {
		log.Error().Err(err).Str("couple_id", coupleID).Msg("Failed to create wishlist item")
		respondError(w, err.Error(), statusForError(err))
		return
	}

	respondJSON(w, http.StatusCreated, item)
}

// CompleteItemRequest toggles an item's completed flag
type CompleteItemRequest struct {
	Completed bool `json:"completed"`
}

// CompleteItem handles PATCH /api/v1/wishlist/{id}
func (h *WishlistHandler) CompleteItem(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	coupleID := middleware.GetCoupleID(ctx)
	id, err := pathID(r)
	if err != nil {
		respondError(w, err.Error(), statusForError(err))
		return
	}

	var req CompleteItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.wishlistRepo.SetCompleted(ctx, id, coupleID, req.Completed); err != nil {
		log.Error().Err(err).Str("couple_id", coupleID).Str("item_id", id).Msg("Failed to update wishlist item")
		respondError(w, err.Error(), statusForError(err))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// DeleteItem handles DELETE /api/v1/wishlist/{id}
func (h *WishlistHandler) DeleteItem(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	coupleID := middleware.GetCoupleID(ctx)
	id, err := pathID(r)
	if err != nil {
		respondError(w, err.Error(), statusForError(err))
		return
	}

	if err := h.wishlistRepo.Delete(ctx, id, coupleID); err != nil {
		log.Error().Err(err).Str("couple_id", coupleID).Str("item_id", id).Msg("Failed to delete wishlist item")
		respondError(w, err.Error(), statusForError(err))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
