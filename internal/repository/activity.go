package repository

import (
	"context"
	"errors"
	"fmt"

	"couple-space-backend/internal/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ActivityRepository handles database operations for the activity catalog and
// per-couple activity records
type ActivityRepository struct {
	db *pgxpool.Pool
}

// NewActivityRepository creates a new activity repository
func NewActivityRepository(db *pgxpool.Pool) *ActivityRepository {
	return &ActivityRepository{db: db}
}

// List retrieves catalog activities, optionally restricted to one category.
// An empty category means all categories.
func (r *ActivityRepository) List(ctx context.Context, category string) ([]*models.Activity, error) {
	query := `
		SELECT id, title, description, category, difficulty, duration, is_surprise, created_at
		FROM activities
	`
	args := []any{}
	if category != "" {
		query += ` WHERE category = $1`
		args = append(args, category)
	}
	query += ` ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list activities: %w", err)
	}
	defer rows.Close()

	var activities []*models.Activity
	for rows.Next() {
		var a models.Activity
		if err := rows.Scan(&a.ID, &a.Title, &a.Description, &a.Category, &a.Difficulty,
			&a.Duration, &a.IsSurprise, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan activity: %w", err)
		}
		activities = append(activities, &a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating activities: %w", err)
	}
	return activities, nil
}

// Count counts catalog activities
func (r *ActivityRepository) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM activities`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count activities: %w", err)
	}
	return count, nil
}

// Create inserts a catalog activity
func (r *ActivityRepository) Create(ctx context.Context, a *models.Activity) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO activities (id, title, description, category, difficulty, duration, is_surprise, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`, a.ID, a.Title, a.Description, a.Category, a.Difficulty, a.Duration, a.IsSurprise, a.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create activity: %w", err)
	}
	return nil
}

// CompletedActivityIDs returns the ids of catalog activities the couple has
// marked completed
func (r *ActivityRepository) CompletedActivityIDs(ctx context.Context, coupleID string) ([]string, error) {
	rows, err := r.db.Query(ctx, `
		SELECT activity_id FROM couple_activities
		WHERE couple_id = $1 AND status = 'completed'
	`, coupleID)
	if err != nil {
		return nil, fmt.Errorf("failed to get completed activity ids: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan activity id: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating activity ids: %w", err)
	}
	return ids, nil
}

// CreateCoupleActivity inserts a couple activity record. Duplicates for the
// same catalog activity are allowed.
func (r *ActivityRepository) CreateCoupleActivity(ctx context.Context, ca *models.CoupleActivity) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO couple_activities (id, couple_id, activity_id, status, rating, notes, completed_at, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`, ca.ID, ca.CoupleID, ca.ActivityID, ca.Status, ca.Rating, ca.Notes, ca.CompletedAt, ca.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create couple activity: %w", err)
	}
	return nil
}

// GetCoupleActivity retrieves one couple activity scoped to a couple
func (r *ActivityRepository) GetCoupleActivity(ctx context.Context, id, coupleID string) (*models.CoupleActivity, error) {
	var ca models.CoupleActivity
	err := r.db.QueryRow(ctx, `
		SELECT id, couple_id, activity_id, status, rating, notes, completed_at, created_at
		FROM couple_activities
		WHERE id = $1 AND couple_id = $2
	`, id, coupleID).Scan(
		&ca.ID, &ca.CoupleID, &ca.ActivityID, &ca.Status, &ca.Rating,
		&ca.Notes, &ca.CompletedAt, &ca.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get couple activity: %w", err)
	}
	return &ca, nil
}

// UpdateCoupleActivity patches a couple activity in place
func (r *ActivityRepository) UpdateCoupleActivity(ctx context.Context, ca *models.CoupleActivity) error {
	result, err := r.db.Exec(ctx, `
		UPDATE couple_activities
		SET status = $1, rating = $2, notes = $3, completed_at = $4
		WHERE id = $5 AND couple_id = $6
	`, ca.Status, ca.Rating, ca.Notes, ca.CompletedAt, ca.ID, ca.CoupleID)
	if err != nil {
		return fmt.Errorf("failed to update couple activity: %w", err)
	}
	if result.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// ListCoupleActivities retrieves a couple's activity records with the catalog
// entry joined in, newest first
func (r *ActivityRepository) ListCoupleActivities(ctx context.Context, coupleID string) ([]*models.CoupleActivity, error) {
	rows, err := r.db.Query(ctx, `
		SELECT ca.id, ca.couple_id, ca.activity_id, ca.status, ca.rating, ca.notes, ca.completed_at, ca.created_at,
		       a.id, a.title, a.description, a.category, a.difficulty, a.duration, a.is_surprise, a.created_at
		FROM couple_activities ca
		JOIN activities a ON a.id = ca.activity_id
		WHERE ca.couple_id = $1
		ORDER BY ca.created_at DESC
	`, coupleID)
	if err != nil {
		return nil, fmt.Errorf("failed to list couple activities: %w", err)
	}
	defer rows.Close()

	var records []*models.CoupleActivity
	for rows.Next() {
		var ca models.CoupleActivity
		var a models.Activity
		if err := rows.Scan(
			&ca.ID, &ca.CoupleID, &ca.ActivityID, &ca.Status, &ca.Rating, &ca.Notes, &ca.CompletedAt, &ca.CreatedAt,
			&a.ID, &a.Title, &a.Description, &a.Category, &a.Difficulty, &a.Duration, &a.IsSurprise, &a.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan couple activity: %w", err)
		}
		ca.Activity = &a
		records = append(records, &ca)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating couple activities: %w", err)
	}
	return records, nil
}
