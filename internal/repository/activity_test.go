package repository

import (
	"context"
	"testing"
	"time"

	"couple-space-backend/internal/models"

	"github.com/google/uuid"
)

func createActivity(t *testing.T, repo *ActivityRepository, category string) *models.Activity {
	t.Helper()
	a := &models.Activity{
		ID:         uuid.New().String(),
		Title:      "Test Activity",
		Category:   category,
		Difficulty: "easy",
		CreatedAt:  time.Now(),
	}
	if err := repo.Create(context.Background(), a); err != nil {
		t.Fatalf("create activity: %v", err)
	}
	return a
}

func TestDuplicateCoupleActivityAllowed(t *testing.T) {
	pool, cleanup := setupTestPool(t)
	defer cleanup()
	ctx := context.Background()
	coupleRepo := NewCoupleRepository(pool)
	repo := NewActivityRepository(pool)

	couple := createCouple(t, coupleRepo, "founder@test.com")
	activity := createActivity(t, repo, "fun")

	for i := 0; i < 2; i++ {
		err := repo.CreateCoupleActivity(ctx, &models.CoupleActivity{
			ID:         uuid.New().String(),
			CoupleID:   couple.ID,
			ActivityID: activity.ID,
			Status:     models.StatusPending,
			CreatedAt:  time.Now(),
		})
		if err != nil {
			t.Fatalf("accept %d: %v", i, err)
		}
	}

	records, err := repo.ListCoupleActivities(ctx, couple.ID)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 records for the same activity, got %d", len(records))
	}
}

func TestCompletedActivityIDs(t *testing.T) {
	pool, cleanup := setupTestPool(t)
	defer cleanup()
	ctx := context.Background()
	coupleRepo := NewCoupleRepository(pool)
	repo := NewActivityRepository(pool)

	couple := createCouple(t, coupleRepo, "founder@test.com")
	done := createActivity(t, repo, "fun")
	pending := createActivity(t, repo, "romantic")

	now := time.Now()
	err := repo.CreateCoupleActivity(ctx, &models.CoupleActivity{
		ID:          uuid.New().String(),
		CoupleID:    couple.ID,
		ActivityID:  done.ID,
		Status:      models.StatusCompleted,
		CompletedAt: &now,
		CreatedAt:   now,
	})
	if err != nil {
		t.Fatalf("completed record: %v", err)
	}
	err = repo.CreateCoupleActivity(ctx, &models.CoupleActivity{
		ID:         uuid.New().String(),
		CoupleID:   couple.ID,
		ActivityID: pending.ID,
		Status:     models.StatusPending,
		CreatedAt:  now,
	})
	if err != nil {
		t.Fatalf("pending record: %v", err)
	}

	ids, err := repo.CompletedActivityIDs(ctx, couple.ID)
	if err != nil {
		t.Fatalf("completed ids: %v", err)
	}
	if len(ids) != 1 || ids[0] != done.ID {
		t.Fatalf("expected only the completed activity id, got %v", ids)
	}
}

func TestListActivitiesByCategory(t *testing.T) {
	pool, cleanup := setupTestPool(t)
	defer cleanup()
	ctx := context.Background()
	repo := NewActivityRepository(pool)

	createActivity(t, repo, "fun")
	createActivity(t, repo, "romantic")
	createActivity(t, repo, "romantic")

	all, err := repo.List(ctx, "")
	if err != nil {
		t.Fatalf("list all: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("expected 3 activities, got %d", len(all))
	}

	romantic, err := repo.List(ctx, "romantic")
	if err != nil {
		t.Fatalf("list romantic: %v", err)
	}
	if len(romantic) != 2 {
		t.Fatalf("expected 2 romantic activities, got %d", len(romantic))
	}
}
