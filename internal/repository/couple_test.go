package repository

import (
	"context"
	"errors"
	"fmt"
	"os"
	"testing"
	"time"

	"couple-space-backend/internal/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

func setupTestPool(t *testing.T) (*pgxpool.Pool, func()) {
	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		t.Skip("DATABASE_URL not set")
	}
	ctx := context.Background()
	schema := fmt.Sprintf("test_%d", time.Now().UnixNano())
	config, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		t.Fatalf("parse config: %v", err)
	}
	config.AfterConnect = func(ctx context.Context, conn *pgx.Conn) error {
		_, err := conn.Exec(ctx, fmt.Sprintf("SET search_path TO %s", schema))
		return err
	}
	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		t.Fatalf("connect: %v", err)
	}
	_, err = pool.Exec(ctx, fmt.Sprintf("CREATE SCHEMA %s", schema))
	if err != nil {
		pool.Close()
		t.Fatalf("create schema: %v", err)
	}
	if err := createTestTables(ctx, pool); err != nil {
		pool.Close()
		t.Fatalf("create tables: %v", err)
	}
	return pool, func() {
		_, _ = pool.Exec(ctx, fmt.Sprintf("DROP SCHEMA %s CASCADE", schema))
		pool.Close()
	}
}

func createTestTables(ctx context.Context, pool *pgxpool.Pool) error {
	queries := []string{
		`CREATE TABLE couples (id uuid PRIMARY KEY, name text NOT NULL, is_active boolean DEFAULT true, special_code text, created_at timestamptz DEFAULT now(), updated_at timestamptz DEFAULT now())`,
		`CREATE TABLE user_profiles (id uuid PRIMARY KEY, email text NOT NULL UNIQUE, display_name text NOT NULL, couple_id uuid, avatar_url text, password_hash text NOT NULL, created_at timestamptz DEFAULT now(), updated_at timestamptz DEFAULT now())`,
		`CREATE TABLE couple_members (id uuid PRIMARY KEY, couple_id uuid NOT NULL, user_id uuid NOT NULL, name text NOT NULL, role text NOT NULL, avatar_url text, created_at timestamptz DEFAULT now(), UNIQUE (couple_id, role), UNIQUE (couple_id, user_id))`,
		`CREATE TABLE activities (id uuid PRIMARY KEY, title text NOT NULL, description text DEFAULT '', category text NOT NULL, difficulty text NOT NULL, duration text DEFAULT '', is_surprise boolean DEFAULT false, created_at timestamptz DEFAULT now())`,
		`CREATE TABLE couple_activities (id uuid PRIMARY KEY, couple_id uuid NOT NULL, activity_id uuid NOT NULL, status text NOT NULL, rating int, notes text DEFAULT '', completed_at timestamptz, created_at timestamptz DEFAULT now())`,
	}
	for _, query := range queries {
		if _, err := pool.Exec(ctx, query); err != nil {
			return err
		}
	}
	return nil
}

func newProfile(email string) *models.UserProfile {
	now := time.Now()
	return &models.UserProfile{
		ID:           uuid.New().String(),
		Email:        email,
		DisplayName:  "Test",
		PasswordHash: "x",
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

func newMember(coupleID, userID, role string) *models.CoupleMember {
	return &models.CoupleMember{
		ID:        uuid.New().String(),
		CoupleID:  coupleID,
		UserID:    userID,
		Name:      "Test",
		Role:      role,
		CreatedAt: time.Now(),
	}
}

func createCouple(t *testing.T, repo *CoupleRepository, founderEmail string) *models.Couple {
	t.Helper()
	now := time.Now()
	couple := &models.Couple{
		ID:        uuid.New().String(),
		Name:      "Test Couple",
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	founder := newProfile(founderEmail)
	member := newMember(couple.ID, founder.ID, models.RolePartner1)
	if err := repo.CreateWithFounder(context.Background(), couple, founder, member); err != nil {
		t.Fatalf("create couple: %v", err)
	}
	return couple
}

func TestCreateWithFounder(t *testing.T) {
	pool, cleanup := setupTestPool(t)
	defer cleanup()
	ctx := context.Background()
	repo := NewCoupleRepository(pool)

	couple := createCouple(t, repo, "founder@test.com")

	members, err := repo.GetMembers(ctx, couple.ID)
	if err != nil {
		t.Fatalf("get members: %v", err)
	}
	if len(members) != 1 || members[0].Role != models.RolePartner1 {
		t.Fatalf("expected single partner_1 member, got %+v", members)
	}

	var linkedCoupleID *string
	err = pool.QueryRow(ctx, `SELECT couple_id FROM user_profiles WHERE email = 'founder@test.com'`).Scan(&linkedCoupleID)
	if err != nil {
		t.Fatalf("read profile: %v", err)
	}
	if linkedCoupleID == nil || *linkedCoupleID != couple.ID {
		t.Fatalf("founder profile not linked to couple: %v", linkedCoupleID)
	}
}

func TestJoinAssignsPartner2(t *testing.T) {
	pool, cleanup := setupTestPool(t)
	defer cleanup()
	ctx := context.Background()
	repo := NewCoupleRepository(pool)

	couple := createCouple(t, repo, "founder@test.com")

	joiner := newProfile("joiner@test.com")
	joined, err := repo.Join(ctx, couple.ID, joiner, newMember(couple.ID, joiner.ID, models.RolePartner2))
	if err != nil {
		t.Fatalf("join: %v", err)
	}
	if joined.ID != couple.ID {
		t.Fatalf("joined wrong couple: %s", joined.ID)
	}

	members, err := repo.GetMembers(ctx, couple.ID)
	if err != nil {
		t.Fatalf("get members: %v", err)
	}
	if len(members) != 2 {
		t.Fatalf("expected 2 members, got %d", len(members))
	}
	if members[0].Role != models.RolePartner1 || members[1].Role != models.RolePartner2 {
		t.Fatalf("unexpected roles: %s, %s", members[0].Role, members[1].Role)
	}
}

func TestJoinUnknownInviteCode(t *testing.T) {
	pool, cleanup := setupTestPool(t)
	defer cleanup()
	ctx := context.Background()
	repo := NewCoupleRepository(pool)

	joiner := newProfile("joiner@test.com")
	unknown := uuid.New().String()
	_, err := repo.Join(ctx, unknown, joiner, newMember(unknown, joiner.ID, models.RolePartner2))
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	// The whole transaction rolls back: no orphan profile survives.
	var count int
	if err := pool.QueryRow(ctx, `SELECT COUNT(*) FROM user_profiles`).Scan(&count); err != nil {
		t.Fatalf("count profiles: %v", err)
	}
	if count != 0 {
		t.Fatalf("expected no profiles after failed join, got %d", count)
	}
}

func TestJoinFullCouple(t *testing.T) {
	pool, cleanup := setupTestPool(t)
	defer cleanup()
	ctx := context.Background()
	repo := NewCoupleRepository(pool)

	couple := createCouple(t, repo, "founder@test.com")

	second := newProfile("second@test.com")
	if _, err := repo.Join(ctx, couple.ID, second, newMember(couple.ID, second.ID, models.RolePartner2)); err != nil {
		t.Fatalf("second join: %v", err)
	}

	third := newProfile("third@test.com")
	_, err := repo.Join(ctx, couple.ID, third, newMember(couple.ID, third.ID, models.RolePartner2))
	if !errors.Is(err, ErrCoupleFull) {
		t.Fatalf("expected ErrCoupleFull, got %v", err)
	}

	count, err := repo.CountMembers(ctx, couple.ID)
	if err != nil {
		t.Fatalf("count members: %v", err)
	}
	if count != 2 {
		t.Fatalf("expected 2 members, got %d", count)
	}

	// The rejected joiner's profile rolls back with the member insert.
	var profiles int
	if err := pool.QueryRow(ctx, `SELECT COUNT(*) FROM user_profiles WHERE email = 'third@test.com'`).Scan(&profiles); err != nil {
		t.Fatalf("count profiles: %v", err)
	}
	if profiles != 0 {
		t.Fatalf("expected rejected joiner profile to roll back")
	}
}

func TestUpdateCoupleName(t *testing.T) {
	pool, cleanup := setupTestPool(t)
	defer cleanup()
	ctx := context.Background()
	repo := NewCoupleRepository(pool)

	couple := createCouple(t, repo, "founder@test.com")

	if err := repo.UpdateName(ctx, couple.ID, "Renamed"); err != nil {
		t.Fatalf("rename: %v", err)
	}
	saved, err := repo.GetByID(ctx, couple.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if saved.Name != "Renamed" {
		t.Fatalf("expected renamed couple, got %q", saved.Name)
	}

	if err := repo.UpdateName(ctx, uuid.New().String(), "Ghost"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for unknown couple, got %v", err)
	}
}

func TestJoinDuplicateEmail(t *testing.T) {
	pool, cleanup := setupTestPool(t)
	defer cleanup()
	ctx := context.Background()
	repo := NewCoupleRepository(pool)

	couple := createCouple(t, repo, "founder@test.com")

	joiner := newProfile("founder@test.com")
	_, err := repo.Join(ctx, couple.ID, joiner, newMember(couple.ID, joiner.ID, models.RolePartner2))
	if !errors.Is(err, ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
}
