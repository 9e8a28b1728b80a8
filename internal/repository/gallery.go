package repository

import (
	"context"
	"fmt"

	"couple-space-backend/internal/models"

	"github.com/jackc/pgx/v5/pgxpool"
)

// GalleryRepository handles database operations for gallery items
type GalleryRepository struct {
	db *pgxpool.Pool
}

// NewGalleryRepository creates a new gallery repository
func NewGalleryRepository(db *pgxpool.Pool) *GalleryRepository {
	return &GalleryRepository{db: db}
}

// Create inserts a gallery item
func (r *GalleryRepository) Create(ctx context.Context, item *models.GalleryItem) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO gallery_items (id, couple_id, url, type, title, folder, is_favorite, uploaded_by, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`, item.ID, item.CoupleID, item.URL, item.Type, item.Title, item.Folder,
		item.IsFavorite, item.UploadedBy, item.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create gallery item: %w", err)
	}
	return nil
}

// ListByCouple retrieves a couple's gallery items, newest first. An empty or
// "all" folder means no folder filter.
func (r *GalleryRepository) ListByCouple(ctx context.Context, coupleID, folder string) ([]*models.GalleryItem, error) {
	query := `
		SELECT id, couple_id, url, type, title, folder, is_favorite, uploaded_by, created_at
		FROM gallery_items
		WHERE couple_id = $1
	`
	args := []any{coupleID}
	if folder != "" && folder != "all" {
		query += ` AND folder = $2`
		args = append(args, folder)
	}
	query += ` ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list gallery items: %w", err)
	}
	defer rows.Close()

	var items []*models.GalleryItem
	for rows.Next() {
		var item models.GalleryItem
		if err := rows.Scan(&item.ID, &item.CoupleID, &item.URL, &item.Type, &item.Title,
			&item.Folder, &item.IsFavorite, &item.UploadedBy, &item.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan gallery item: %w", err)
		}
		items = append(items, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating gallery items: %w", err)
	}
	return items, nil
}

// SetFavorite toggles an item's favorite flag
func (r *GalleryRepository) SetFavorite(ctx context.Context, id, coupleID string, favorite bool) error {
	result, err := r.db.Exec(ctx, `
		UPDATE gallery_items SET is_favorite = $1 WHERE id = $2 AND couple_id = $3
	`, favorite, id, coupleID)
	if err != nil {
		return fmt.Errorf("failed to update gallery item: %w", err)
	}
	if result.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes a gallery item scoped to a couple
func (r *GalleryRepository) Delete(ctx context.Context, id, coupleID string) error {
	result, err := r.db.Exec(ctx, `DELETE FROM gallery_items WHERE id = $1 AND couple_id = $2`, id, coupleID)
	if err != nil {
		return fmt.Errorf("failed to delete gallery item: %w", err)
	}
	if result.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
