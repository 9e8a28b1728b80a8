package repository

import (
	"context"
	"errors"
	"fmt"

	"couple-space-backend/internal/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// UserRepository handles database operations for user profiles
type UserRepository struct {
	db *pgxpool.Pool
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *pgxpool.Pool) *UserRepository {
	return &UserRepository{db: db}
}

// Create creates a new user profile
func (r *UserRepository) Create(ctx context.Context, user *models.UserProfile) error {
	query := `
		INSERT INTO user_profiles (id, email, display_name, couple_id, avatar_url, password_hash, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	_, err := r.db.Exec(ctx, query,
		user.ID, user.Email, user.DisplayName, user.CoupleID, user.AvatarURL,
		user.PasswordHash, user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrEmailTaken
		}
		return fmt.Errorf("failed to create user profile: %w", err)
	}
	return nil
}

// GetByID retrieves a user profile by ID
func (r *UserRepository) GetByID(ctx context.Context, id string) (*models.UserProfile, error) {
	return r.getOne(ctx, `WHERE id = $1`, id)
}

// GetByEmail retrieves a user profile by email
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*models.UserProfile, error) {
	return r.getOne(ctx, `WHERE email = $1`, email)
}

func (r *UserRepository) getOne(ctx context.Context, where string, arg any) (*models.UserProfile, error) {
	query := `
		SELECT id, email, display_name, couple_id, avatar_url, password_hash, created_at, updated_at
		FROM user_profiles ` + where
	var user models.UserProfile
	err := r.db.QueryRow(ctx, query, arg).Scan(
		&user.ID, &user.Email, &user.DisplayName, &user.CoupleID, &user.AvatarURL,
		&user.PasswordHash, &user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get user profile: %w", err)
	}
	return &user, nil
}

// UpdateProfile updates mutable profile fields
func (r *UserRepository) UpdateProfile(ctx context.Context, userID, displayName string, avatarURL *string) error {
	query := `
		UPDATE user_profiles
		SET display_name = $1, avatar_url = $2, updated_at = now()
		WHERE id = $3
	`
	result, err := r.db.Exec(ctx, query, displayName, avatarURL, userID)
	if err != nil {
		return fmt.Errorf("failed to update user profile: %w", err)
	}
	if result.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
