package services

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"couple-space-backend/internal/models"
	"couple-space-backend/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// activityCatalog is the read side of the activity store the roulette draws
// from.
type activityCatalog interface {
	List(ctx context.Context, category string) ([]*models.Activity, error)
	CompletedActivityIDs(ctx context.Context, coupleID string) ([]string, error)
}

// ActivityService owns the activity catalog and the roulette selection
type ActivityService struct {
	activityRepo *repository.ActivityRepository
	catalog      activityCatalog

	// intn picks an index in [0, n). Swappable so tests can fix the sequence.
	intn func(n int) int
}

// NewActivityService creates a new activity service
func NewActivityService(activityRepo *repository.ActivityRepository) *ActivityService {
	return &ActivityService{
		activityRepo: activityRepo,
		catalog:      activityRepo,
		intn:         rand.Intn,
	}
}

// GetActivities lists the catalog, optionally filtered by category
func (s *ActivityService) GetActivities(ctx context.Context, category string) ([]*models.Activity, error) {
	return s.catalog.List(ctx, category)
}

// GetRandomActivity returns one activity chosen uniformly at random from the
// catalog, optionally restricted to a category and excluding activities the
// couple has already completed. When every candidate is excluded the draw
// falls back to the full unfiltered catalog, so repeats become possible but
// the spin always lands somewhere.
func (s *ActivityService) GetRandomActivity(ctx context.Context, category string, excludeCompleted bool, coupleID string) (*models.Activity, error) {
	activities, err := s.catalog.List(ctx, category)
	if err != nil {
		return nil, err
	}

	var exclude map[string]struct{}
	if excludeCompleted && coupleID != "" {
		completedIDs, err := s.catalog.CompletedActivityIDs(ctx, coupleID)
		if err != nil {
			return nil, err
		}
		exclude = make(map[string]struct{}, len(completedIDs))
		for _, id := range completedIDs {
			exclude[id] = struct{}{}
		}
	}

	picked := selectActivity(activities, exclude, s.intn)
	if picked != nil {
		return picked, nil
	}

	// Everything matching is already completed: redraw from the whole
	// catalog, category filter dropped.
	all, err := s.catalog.List(ctx, "")
	if err != nil {
		return nil, err
	}
	if picked := selectActivity(all, nil, s.intn); picked != nil {
		return picked, nil
	}
	return nil, fmt.Errorf("activity catalog is empty")
}

// selectActivity filters candidates against the exclusion set and picks one
// uniformly at random via intn. Returns nil when nothing remains.
func selectActivity(candidates []*models.Activity, exclude map[string]struct{}, intn func(int) int) *models.Activity {
	var pool []*models.Activity
	if len(exclude) == 0 {
		pool = candidates
	} else {
		for _, a := range candidates {
			if _, done := exclude[a.ID]; !done {
				pool = append(pool, a)
			}
		}
	}
	if len(pool) == 0 {
		return nil
	}
	return pool[intn(len(pool))]
}

// AddActivityToCouple records that a couple accepted a catalog activity. No
// duplicate check: accepting the same activity twice yields two records.
func (s *ActivityService) AddActivityToCouple(ctx context.Context, coupleID, activityID string) (*models.CoupleActivity, error) {
	ca := &models.CoupleActivity{
		ID:         uuid.New().String(),
		CoupleID:   coupleID,
		ActivityID: activityID,
		Status:     models.StatusPending,
		Notes:      "",
		CreatedAt:  time.Now(),
	}
	if err := s.activityRepo.CreateCoupleActivity(ctx, ca); err != nil {
		return nil, err
	}
	return ca, nil
}

// CoupleActivityPatch carries the optional fields of an update
type CoupleActivityPatch struct {
	Status      *string    `json:"status"`
	Rating      *int       `json:"rating"`
	Notes       *string    `json:"notes"`
	CompletedAt *time.Time `json:"completed_at"`
}

// UpdateCoupleActivity applies a partial patch to a couple activity record.
// Status changes must follow the transition table; marking an activity
// completed stamps completed_at when the patch carries none.
func (s *ActivityService) UpdateCoupleActivity(ctx context.Context, id, coupleID string, patch CoupleActivityPatch) (*models.CoupleActivity, error) {
	ca, err := s.activityRepo.GetCoupleActivity(ctx, id, coupleID)
	if err != nil {
		return nil, err
	}

	if patch.Status != nil {
		if !models.ValidStatus(*patch.Status) || !models.CanTransition(ca.Status, *patch.Status) {
			return nil, fmt.Errorf("%w: %s -> %s", repository.ErrInvalidTransition, ca.Status, *patch.Status)
		}
		ca.Status = *patch.Status
		if ca.Status == models.StatusCompleted && patch.CompletedAt == nil && ca.CompletedAt == nil {
			now := time.Now()
			ca.CompletedAt = &now
		}
	}
	if patch.Rating != nil {
		ca.Rating = patch.Rating
	}
	if patch.Notes != nil {
		ca.Notes = *patch.Notes
	}
	if patch.CompletedAt != nil {
		ca.CompletedAt = patch.CompletedAt
	}

	if err := s.activityRepo.UpdateCoupleActivity(ctx, ca); err != nil {
		return nil, err
	}
	return ca, nil
}

// GetCoupleActivities lists a couple's activity records with catalog details
func (s *ActivityService) GetCoupleActivities(ctx context.Context, coupleID string) ([]*models.CoupleActivity, error) {
	return s.activityRepo.ListCoupleActivities(ctx, coupleID)
}

// EnsureDefaultCatalog seeds the catalog once when it is empty
func (s *ActivityService) EnsureDefaultCatalog(ctx context.Context) error {
	count, err := s.activityRepo.Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	for _, a := range defaultActivities() {
		if err := s.activityRepo.Create(ctx, a); err != nil {
			return err
		}
	}
	log.Info().Int("count", len(defaultActivities())).Msg("Seeded default activity catalog")
	return nil
}

func defaultActivities() []*models.Activity {
	now := time.Now()
	mk := func(title, description, category, difficulty, duration string, surprise bool) *models.Activity {
		return &models.Activity{
			ID:          uuid.New().String(),
			Title:       title,
			Description: description,
			Category:    category,
			Difficulty:  difficulty,
			Duration:    duration,
			IsSurprise:  surprise,
			CreatedAt:   now,
		}
	}
	return []*models.Activity{
		mk("Candlelit dinner", "Cook a romantic dinner at home with candles and soft music", "romantic", "easy", "2 hours", false),
		mk("Relaxing bath together", "Enjoy a bath with aromatic salts and rose petals", "romantic", "easy", "1 hour", false),
		mk("Movie marathon", "Watch your favorite movies with popcorn and snacks", "fun", "easy", "4 hours", false),
		mk("Home karaoke", "Sing your favorite songs together", "fun", "easy", "1 hour", false),
		mk("Mystery surprise", "One of you prepares a secret surprise for the other", "surprise", "medium", "2 hours", true),
		mk("24 hours phone-free", "Spend 24 hours without your phones, just enjoying each other", "challenge", "hard", "24 hours", false),
	}
}
