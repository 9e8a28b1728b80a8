package repository

import (
	"context"
	"fmt"

	"couple-space-backend/internal/models"

	"github.com/jackc/pgx/v5/pgxpool"
)

// MessageRepository handles database operations for chat messages
type MessageRepository struct {
	db *pgxpool.Pool
}

// NewMessageRepository creates a new message repository
func NewMessageRepository(db *pgxpool.Pool) *MessageRepository {
	return &MessageRepository{db: db}
}

// Create inserts a message
func (r *MessageRepository) Create(ctx context.Context, m *models.Message) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO messages (id, couple_id, sender_id, content, message_type, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, m.ID, m.CoupleID, m.SenderID, m.Content, m.MessageType, m.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create message: %w", err)
	}
	return nil
}

// ListByCouple retrieves the latest messages for a couple, newest first
func (r *MessageRepository) ListByCouple(ctx context.Context, coupleID string, limit int) ([]*models.Message, error) {
	rows, err := r.db.Query(ctx, `
		SELECT m.id, m.couple_id, m.sender_id, m.content, m.message_type, m.created_at, p.display_name
		FROM messages m
		JOIN user_profiles p ON p.id = m.sender_id
		WHERE m.couple_id = $1
		ORDER BY m.created_at DESC
		LIMIT $2
	`, coupleID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list messages: %w", err)
	}
	defer rows.Close()

	var messages []*models.Message
	for rows.Next() {
		var m models.Message
		if err := rows.Scan(&m.ID, &m.CoupleID, &m.SenderID, &m.Content, &m.MessageType,
			&m.CreatedAt, &m.SenderName); err != nil {
			return nil, fmt.Errorf("failed to scan message: %w", err)
		}
		messages = append(messages, &m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating messages: %w", err)
	}
	return messages, nil
}
