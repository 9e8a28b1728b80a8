package repository

import (
	"context"
	"fmt"
	"time"

	"couple-space-backend/internal/models"

	"github.com/jackc/pgx/v5/pgxpool"
)

// WishlistRepository handles database operations for wishlist items
type WishlistRepository struct {
	db *pgxpool.Pool
}

// NewWishlistRepository creates a new wishlist repository
func NewWishlistRepository(db *pgxpool.Pool) *WishlistRepository {
	return &WishlistRepository{db: db}
}

// Create inserts a wishlist item
func (r *WishlistRepository) Create(ctx context.Context, item *models.WishlistItem) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO wishlist_items
			(id, couple_id, title, description, category, priority, estimated_cost, image_url, is_completed, added_by, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`, item.ID, item.CoupleID, item.Title, item.Description, item.Category, item.Priority,
		item.EstimatedCost, item.ImageURL, item.IsCompleted, item.AddedBy, item.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create wishlist item: %w", err)
	}
	return nil
}

// ListByCouple retrieves a couple's wishlist, newest first
func (r *WishlistRepository) ListByCouple(ctx context.Context, coupleID string) ([]*models.WishlistItem, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, couple_id, title, description, category, priority, estimated_cost,
		       image_url, is_completed, completed_at, added_by, created_at
		FROM wishlist_items
		WHERE couple_id = $1
		ORDER BY created_at DESC
	`, coupleID)
	if err != nil {
		return nil, fmt.Errorf("failed to list wishlist items: %w", err)
	}
	defer rows.Close()

	var items []*models.WishlistItem
	for rows.Next() {
		var item models.WishlistItem
		if err := rows.Scan(&item.ID, &item.CoupleID, &item.Title, &item.Description,
			&item.Category, &item.Priority, &item.EstimatedCost, &item.ImageURL,
			&item.IsCompleted, &item.CompletedAt, &item.AddedBy, &item.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan wishlist item: %w", err)
		}
		items = append(items, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating wishlist items: %w", err)
	}
	return items, nil
}

// SetCompleted toggles an item's completed flag
func (r *WishlistRepository) SetCompleted(ctx context.Context, id, coupleID string, completed bool) error {
	var completedAt *time.Time
	if completed {
		now := time.Now()
		completedAt = &now
	}
	result, err := r.db.Exec(ctx, `
		UPDATE wishlist_items SET is_completed = $1, completed_at = $2
		WHERE id = $3 AND couple_id = $4
	`, completed, completedAt, id, coupleID)
	if err != nil {
		return fmt.Errorf("failed to update wishlist item: %w", err)
	}
	if result.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes a wishlist item scoped to a couple
func (r *WishlistRepository) Delete(ctx context.Context, id, coupleID string) error {
	result, err := r.db.Exec(ctx, `DELETE FROM wishlist_items WHERE id = $1 AND couple_id = $2`, id, coupleID)
	if err != nil {
		return fmt.Errorf("failed to delete wishlist item: %w", err)
	}
	if result.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
