package repository

import (
	"context"
	"errors"
	"fmt"

	"couple-space-backend/internal/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// CoupleRepository handles database operations for couples and their members
type CoupleRepository struct {
	db *pgxpool.Pool
}

// NewCoupleRepository creates a new couple repository
func NewCoupleRepository(db *pgxpool.Pool) *CoupleRepository {
	return &CoupleRepository{db: db}
}

// CreateWithFounder creates the founder's profile, the couple, the couple_id
// link and the partner_1 member record in a single transaction. Nothing is
// left behind if any step fails.
func (r *CoupleRepository) CreateWithFounder(ctx context.Context, couple *models.Couple, founder *models.UserProfile, member *models.CoupleMember) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	_, err = tx.Exec(ctx, `
		INSERT INTO user_profiles (id, email, display_name, avatar_url, password_hash, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`, founder.ID, founder.Email, founder.DisplayName, founder.AvatarURL,
		founder.PasswordHash, founder.CreatedAt, founder.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrEmailTaken
		}
		return fmt.Errorf("failed to create founder profile: %w", err)
	}

	_, err = tx.Exec(ctx, `
		INSERT INTO couples (id, name, is_active, special_code, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, couple.ID, couple.Name, couple.IsActive, couple.SpecialCode, couple.CreatedAt, couple.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create couple: %w", err)
	}

	_, err = tx.Exec(ctx, `
		UPDATE user_profiles SET couple_id = $1, updated_at = now() WHERE id = $2
	`, couple.ID, founder.ID)
	if err != nil {
		return fmt.Errorf("failed to link founder profile: %w", err)
	}

	_, err = tx.Exec(ctx, `
		INSERT INTO couple_members (id, couple_id, user_id, name, role, avatar_url, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`, member.ID, member.CoupleID, member.UserID, member.Name, member.Role, member.AvatarURL, member.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create couple member: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit: %w", err)
	}
	return nil
}

// Join creates the joiner's profile and admits them as partner_2, all in one
// transaction. The member insert only lands while the couple has fewer than
// two members; the unique (couple_id, role) index backs this up, so two
// concurrent joins can never produce a third member.
func (r *CoupleRepository) Join(ctx context.Context, inviteCode string, joiner *models.UserProfile, member *models.CoupleMember) (*models.Couple, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	_, err = tx.Exec(ctx, `
		INSERT INTO user_profiles (id, email, display_name, avatar_url, password_hash, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`, joiner.ID, joiner.Email, joiner.DisplayName, joiner.AvatarURL,
		joiner.PasswordHash, joiner.CreatedAt, joiner.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrEmailTaken
		}
		return nil, fmt.Errorf("failed to create joiner profile: %w", err)
	}

	var couple models.Couple
	err = tx.QueryRow(ctx, `
		SELECT id, name, is_active, special_code, created_at, updated_at
		FROM couples
		WHERE id = $1 AND is_active
	`, inviteCode).Scan(
		&couple.ID, &couple.Name, &couple.IsActive, &couple.SpecialCode,
		&couple.CreatedAt, &couple.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to look up couple: %w", err)
	}

	var memberID string
	err = tx.QueryRow(ctx, `
		INSERT INTO couple_members (id, couple_id, user_id, name, role, avatar_url, created_at)
		SELECT $1, $2, $3, $4, $5, $6, $7
		WHERE (SELECT COUNT(*) FROM couple_members WHERE couple_id = $2) < 2
		RETURNING id
	`, member.ID, couple.ID, member.UserID, member.Name, member.Role, member.AvatarURL, member.CreatedAt).Scan(&memberID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) || isUniqueViolation(err) {
			return nil, ErrCoupleFull
		}
		return nil, fmt.Errorf("failed to create couple member: %w", err)
	}

	_, err = tx.Exec(ctx, `
		UPDATE user_profiles SET couple_id = $1, updated_at = now() WHERE id = $2
	`, couple.ID, joiner.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to link joiner profile: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit: %w", err)
	}
	return &couple, nil
}

// GetByID retrieves a couple by ID
func (r *CoupleRepository) GetByID(ctx context.Context, id string) (*models.Couple, error) {
	var couple models.Couple
	err := r.db.QueryRow(ctx, `
		SELECT id, name, is_active, special_code, created_at, updated_at
		FROM couples
		WHERE id = $1
	`, id).Scan(
		&couple.ID, &couple.Name, &couple.IsActive, &couple.SpecialCode,
		&couple.CreatedAt, &couple.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get couple: %w", err)
	}
	return &couple, nil
}

// GetMembers retrieves the member records for a couple, partner_1 first
func (r *CoupleRepository) GetMembers(ctx context.Context, coupleID string) ([]*models.CoupleMember, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, couple_id, user_id, name, role, avatar_url, created_at
		FROM couple_members
		WHERE couple_id = $1
		ORDER BY role
	`, coupleID)
	if err != nil {
		return nil, fmt.Errorf("failed to get couple members: %w", err)
	}
	defer rows.Close()

	var members []*models.CoupleMember
	for rows.Next() {
		var m models.CoupleMember
		if err := rows.Scan(&m.ID, &m.CoupleID, &m.UserID, &m.Name, &m.Role, &m.AvatarURL, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan couple member: %w", err)
		}
		members = append(members, &m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating couple members: %w", err)
	}
	return members, nil
}

// CountMembers counts the member records for a couple
func (r *CoupleRepository) CountMembers(ctx context.Context, coupleID string) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM couple_members WHERE couple_id = $1`, coupleID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count couple members: %w", err)
	}
	return count, nil
}

// UpdateName renames a couple
func (r *CoupleRepository) UpdateName(ctx context.Context, coupleID, name string) error {
	result, err := r.db.Exec(ctx, `
		UPDATE couples SET name = $1, updated_at = now() WHERE id = $2
	`, name, coupleID)
	if err != nil {
		return fmt.Errorf("failed to update couple: %w", err)
	}
	if result.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
