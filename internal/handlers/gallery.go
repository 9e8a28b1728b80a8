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

var galleryFolders = map[string]bool{
	"dates":    true,
	"trips":    true,
	"special":  true,
	"everyday": true,
}

// GalleryHandler handles gallery HTTP requests. Media files live at external
// URLs; only metadata is stored here.
type GalleryHandler struct {
	galleryRepo *repository.GalleryRepository
}

// NewGalleryHandler creates a new gallery handler
func NewGalleryHandler(galleryRepo *repository.GalleryRepository) *GalleryHandler {
	return &GalleryHandler{galleryRepo: galleryRepo}
}

// ListItems handles GET /api/v1/gallery
func (h *GalleryHandler) ListItems(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	coupleID := middleware.GetCoupleID(ctx)

	folder := r.URL.Query().Get("folder")
	if folder != "" && folder != "all" && !galleryFolders[folder] {
		respondError(w, "unknown folder", http.StatusBadRequest)
		return
	}

	items, err := h.galleryRepo.ListByCouple(ctx, coupleID, folder)
	if err != nil {
		log.Error().Err(err).Str("couple_id", coupleID).Msg("Failed to list gallery items")
		respondError(w, err.Error(), statusForError(err))
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{"items": items})
}

// CreateGalleryItemRequest is the body for registering a gallery item
type CreateGalleryItemRequest struct {
	URL    string `json:"url"`
	Type   string `json:"type"`
	Title  string `json:"title"`
	Folder string `json:"folder"`
}

// CreateItem handles POST /api/v1/gallery
func (h *GalleryHandler) CreateItem(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID := middleware.GetUserID(ctx)
	coupleID := middleware.GetCoupleID(ctx)

	var req CreateGalleryItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if req.URL == "" {
		respondError(w, "url is required", http.StatusBadRequest)
		return
	}
	if req.Type == "" {
		req.Type = "photo"
	}
	if req.Type != "photo" && req.Type != "video" {
		respondError(w, "type must be photo or video", http.StatusBadRequest)
		return
	}
	if req.Folder == "" {
		req.Folder = "everyday"
	}
	if !galleryFolders[req.Folder] {
		respondError(w, "unknown folder", http.StatusBadRequest)
		return
	}

	item := &models.GalleryItem{
		ID:         uuid.New().String(),
		CoupleID:   coupleID,
		URL:        req.URL,
		Type:       req.Type,
		Title:      req.Title,
		Folder:     req.Folder,
		UploadedBy: userID,
		CreatedAt:  time.Now(),
	}
	if err := h.galleryRepo.Create(ctx, item); err != nil {
		log.Error().Err(err).Str("couple_id", coupleID).Msg("Failed to create gallery item")
		respondError(w, err.Error(), statusForError(err))
		return
	}

	respondJSON(w, http.StatusCreated, item)
}

// FavoriteRequest toggles an item's favorite flag
type FavoriteRequest struct {
	Favorite bool `json:"favorite"`
}

// SetFavorite handles PATCH /api/v1/gallery/{id}
func (h *GalleryHandler) SetFavorite(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	coupleID := middleware.GetCoupleID(ctx)
	id, err := pathID(r)
	if err != nil {
		respondError(w, err.Error(), statusForError(err))
		return
	}

	var req FavoriteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.galleryRepo.SetFavorite(ctx, id, coupleID, req.Favorite); err != nil {
		log.Error().Err(err).Str("couple_id", coupleID).Str("item_id", id).Msg("Failed to update gallery item")
		respondError(w, err.Error(), statusForError(err))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// DeleteItem handles DELETE /api/v1/gallery/{id}
func (h *GalleryHandler) DeleteItem(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	coupleID := middleware.GetCoupleID(ctx)
	id, err := pathID(r)
	if err != nil {
		respondError(w, err.Error(), statusForError(err))
		return
	}

	if err := h.galleryRepo.Delete(ctx, id, coupleID); err != nil {
		log.Error().Err(err).Str("couple_id", coupleID).Str("item_id", id).Msg("Failed to delete gallery item")
		respondError(w, err.Error(), statusForError(err))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
