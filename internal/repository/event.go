package repository

import (
	"context"
	"fmt"

	"couple-space-backend/internal/models"

	"github.com/jackc/pgx/v5/pgxpool"
)

// EventRepository handles database operations for calendar events
type EventRepository struct {
	db *pgxpool.Pool
}

// NewEventRepository creates a new event repository
func NewEventRepository(db *pgxpool.Pool) *EventRepository {
	return &EventRepository{db: db}
}

// Create inserts an event
func (r *EventRepository) Create(ctx context.Context, e *models.Event) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO events (id, couple_id, title, description, date, type, created_by, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`, e.ID, e.CoupleID, e.Title, e.Description, e.Date, e.Type, e.CreatedBy, e.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create event: %w", err)
	}
	return nil
}

// ListByCouple retrieves a couple's events ordered by date ascending
func (r *EventRepository) ListByCouple(ctx context.Context, coupleID string) ([]*models.Event, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, couple_id, title, description, date, type, created_by, created_at
		FROM events
		WHERE couple_id = $1
		ORDER BY date ASC
	`, coupleID)
	if err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}
	defer rows.Close()

	var events []*models.Event
	for rows.Next() {
		var e models.Event
		if err := rows.Scan(&e.ID, &e.CoupleID, &e.Title, &e.Description, &e.Date,
			&e.Type, &e.CreatedBy, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan event: %w", err)
		}
		events = append(events, &e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating events: %w", err)
	}
	return events, nil
}

// Delete removes an event scoped to a couple
func (r *EventRepository) Delete(ctx context.Context, id, coupleID string) error {
	result, err := r.db.Exec(ctx, `DELETE FROM events WHERE id = $1 AND couple_id = $2`, id, coupleID)
	if err != nil {
		return fmt.Errorf("failed to delete event: %w", err)
	}
	if result.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
