package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
)

func TestUserCreateDuplicateEmail(t *testing.T) {
	pool, cleanup := setupTestPool(t)
	defer cleanup()
	ctx := context.Background()
	repo := NewUserRepository(pool)

	if err := repo.Create(ctx, newProfile("solo@test.com")); err != nil {
		t.Fatalf("first create: %v", err)
	}
	if err := repo.Create(ctx, newProfile("solo@test.com")); !errors.Is(err, ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
}

func TestUpdateProfile(t *testing.T) {
	pool, cleanup := setupTestPool(t)
	defer cleanup()
	ctx := context.Background()
	repo := NewUserRepository(pool)

	user := newProfile("solo@test.com")
	if err := repo.Create(ctx, user); err != nil {
		t.Fatalf("create: %v", err)
	}

	avatar := "https://example.com/a.png"
	if err := repo.UpdateProfile(ctx, user.ID, "New Name", &avatar); err != nil {
		t.Fatalf("update: %v", err)
	}

	saved, err := repo.GetByID(ctx, user.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if saved.DisplayName != "New Name" || saved.AvatarURL == nil || *saved.AvatarURL != avatar {
		t.Fatalf("profile not updated: %+v", saved)
	}
}

func TestUpdateProfileUnknownUser(t *testing.T) {
	pool, cleanup := setupTestPool(t)
	defer cleanup()
	repo := NewUserRepository(pool)

	err := repo.UpdateProfile(context.Background(), uuid.New().String(), "Name", nil)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
