package repository

import (
	"context"
	"fmt"
	"time"

	"couple-space-backend/internal/models"

	"github.com/jackc/pgx/v5/pgxpool"
)

// ChallengeRepository handles database operations for weekly challenges
type ChallengeRepository struct {
	db *pgxpool.Pool
}

// NewChallengeRepository creates a new challenge repository
func NewChallengeRepository(db *pgxpool.Pool) *ChallengeRepository {
	return &ChallengeRepository{db: db}
}

// Create inserts a weekly challenge
func (r *ChallengeRepository) Create(ctx context.Context, c *models.WeeklyChallenge) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO weekly_challenges (id, couple_id, title, description, week_start, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`, c.ID, c.CoupleID, c.Title, c.Description, c.WeekStart, c.Status, c.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create weekly challenge: %w", err)
	}
	return nil
}

// ListByCouple retrieves a couple's challenges, newest week first
func (r *ChallengeRepository) ListByCouple(ctx context.Context, coupleID string) ([]*models.WeeklyChallenge, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, couple_id, title, description, week_start, status, completed_at, created_at
		FROM weekly_challenges
		WHERE couple_id = $1
		ORDER BY week_start DESC
	`, coupleID)
	if err != nil {
		return nil, fmt.Errorf("failed to list weekly challenges: %w", err)
	}
	defer rows.Close()

	var challenges []*models.WeeklyChallenge
	for rows.Next() {
		var c models.WeeklyChallenge
		if err := rows.Scan(&c.ID, &c.CoupleID, &c.Title, &c.Description, &c.WeekStart,
			&c.Status, &c.CompletedAt, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan weekly challenge: %w", err)
		}
		challenges = append(challenges, &c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating weekly challenges: %w", err)
	}
	return challenges, nil
}

// UpdateStatus sets a challenge's status, stamping completed_at for completed
func (r *ChallengeRepository) UpdateStatus(ctx context.Context, id, coupleID, status string) error {
	var completedAt *time.Time
	if status == "completed" {
		now := time.Now()
		completedAt = &now
	}
	result, err := r.db.Exec(ctx, `
		UPDATE weekly_challenges SET status = $1, completed_at = $2
		WHERE id = $3 AND couple_id = $4
	`, status, completedAt, id, coupleID)
	if err != nil {
		return fmt.Errorf("failed to update weekly challenge: %w", err)
	}
	if result.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
