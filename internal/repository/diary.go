package repository

import (
	"context"
	"fmt"

	"couple-space-backend/internal/models"

	"github.com/jackc/pgx/v5/pgxpool"
)

// DiaryRepository handles database operations for diary entries
type DiaryRepository struct {
	db *pgxpool.Pool
}

// NewDiaryRepository creates a new diary repository
func NewDiaryRepository(db *pgxpool.Pool) *DiaryRepository {
	return &DiaryRepository{db: db}
}

// Create inserts a diary entry
func (r *DiaryRepository) Create(ctx context.Context, e *models.DiaryEntry) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO diary_entries (id, couple_id, author_id, title, content, mood, photos, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`, e.ID, e.CoupleID, e.AuthorID, e.Title, e.Content, e.Mood, e.Photos, e.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create diary entry: %w", err)
	}
	return nil
}

// ListByCouple retrieves a couple's diary entries, newest first
func (r *DiaryRepository) ListByCouple(ctx context.Context, coupleID string, limit int) ([]*models.DiaryEntry, error) {
	rows, err := r.db.Query(ctx, `
		SELECT e.id, e.couple_id, e.author_id, e.title, e.content, e.mood, e.photos, e.created_at, p.display_name
		FROM diary_entries e
		JOIN user_profiles p ON p.id = e.author_id
		WHERE e.couple_id = $1
		ORDER BY e.created_at DESC
		LIMIT $2
	`, coupleID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list diary entries: %w", err)
	}
	defer rows.Close()

	var entries []*models.DiaryEntry
	for rows.Next() {
		var e models.DiaryEntry
		if err := rows.Scan(&e.ID, &e.CoupleID, &e.AuthorID, &e.Title, &e.Content, &e.Mood,
			&e.Photos, &e.CreatedAt, &e.AuthorName); err != nil {
			return nil, fmt.Errorf("failed to scan diary entry: %w", err)
		}
		entries = append(entries, &e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating diary entries: %w", err)
	}
	return entries, nil
}
