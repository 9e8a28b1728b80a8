package services

import (
	"context"
	"testing"

	"couple-space-backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeCatalog serves a fixed set of activities per category and records the
// categories it was asked for.
type fakeCatalog struct {
	activities []*models.Activity
	completed  []string
	listCalls  []string
}

func (f *fakeCatalog) List(ctx context.Context, category string) ([]*models.Activity, error) {
	f.listCalls = append(f.listCalls, category)
	if category == "" {
		return f.activities, nil
	}
	var filtered []*models.Activity
	for _, a := range f.activities {
		if a.Category == category {
			filtered = append(filtered, a)
		}
	}
	return filtered, nil
}

func (f *fakeCatalog) CompletedActivityIDs(ctx context.Context, coupleID string) ([]string, error) {
	return f.completed, nil
}

func rouletteService(catalog *fakeCatalog, indices ...int) *ActivityService {
	return &ActivityService{catalog: catalog, intn: fixedIntn(indices...)}
}

func catalogOf(ids ...string) []*models.Activity {
	activities := make([]*models.Activity, 0, len(ids))
	for _, id := range ids {
		activities = append(activities, &models.Activity{ID: id, Title: "Activity " + id})
	}
	return activities
}

// fixedIntn returns the given indices in order, so a draw is deterministic.
func fixedIntn(indices ...int) func(int) int {
	i := 0
	return func(n int) int {
		idx := indices[i%len(indices)]
		i++
		return idx % n
	}
}

func TestSelectActivityNeverReturnsExcluded(t *testing.T) {
	catalog := catalogOf("a", "b", "c", "d")
	exclude := map[string]struct{}{"a": {}, "c": {}}

	for seed := 0; seed < 10; seed++ {
		picked := selectActivity(catalog, exclude, fixedIntn(seed))
		require.NotNil(t, picked)
		_, done := exclude[picked.ID]
		assert.False(t, done, "picked excluded activity %s", picked.ID)
	}
}

func TestSelectActivityDeterministicWithFixedIndex(t *testing.T) {
	catalog := catalogOf("a", "b", "c")

	assert.Equal(t, "a", selectActivity(catalog, nil, fixedIntn(0)).ID)
	assert.Equal(t, "b", selectActivity(catalog, nil, fixedIntn(1)).ID)
	assert.Equal(t, "c", selectActivity(catalog, nil, fixedIntn(2)).ID)

	// Excluding "b" shifts "c" down to index 1.
	exclude := map[string]struct{}{"b": {}}
	assert.Equal(t, "c", selectActivity(catalog, exclude, fixedIntn(1)).ID)
}

func TestSelectActivityAllExcluded(t *testing.T) {
	catalog := catalogOf("a", "b")
	exclude := map[string]struct{}{"a": {}, "b": {}}

	assert.Nil(t, selectActivity(catalog, exclude, fixedIntn(0)))
}

func TestSelectActivityEmptyCatalog(t *testing.T) {
	assert.Nil(t, selectActivity(nil, nil, fixedIntn(0)))
}

func TestSelectActivitySingleCandidate(t *testing.T) {
	catalog := catalogOf("only")
	exclude := map[string]struct{}{"other": {}}

	picked := selectActivity(catalog, exclude, fixedIntn(7))
	require.NotNil(t, picked)
	assert.Equal(t, "only", picked.ID)
}

func rouletteCatalog() *fakeCatalog {
	return &fakeCatalog{
		activities: []*models.Activity{
			{ID: "r1", Category: "romantic"},
			{ID: "r2", Category: "romantic"},
			{ID: "f1", Category: "fun"},
		},
	}
}

func TestGetRandomActivitySkipsCompleted(t *testing.T) {
	catalog := rouletteCatalog()
	catalog.completed = []string{"r1"}
	svc := rouletteService(catalog, 0)

	// With r1 completed, index 0 within romantic lands on r2.
	picked, err := svc.GetRandomActivity(context.Background(), "romantic", true, "couple-1")
	require.NoError(t, err)
	assert.Equal(t, "r2", picked.ID)
	assert.Equal(t, []string{"romantic"}, catalog.listCalls)
}

func TestGetRandomActivityFallsBackToFullCatalog(t *testing.T) {
	catalog := rouletteCatalog()
	catalog.completed = []string{"r1", "r2"}
	svc := rouletteService(catalog, 0)

	// Every romantic activity is completed, so the draw refetches the whole
	// catalog without the category filter and repeats become possible.
	picked, err := svc.GetRandomActivity(context.Background(), "romantic", true, "couple-1")
	require.NoError(t, err)
	assert.Equal(t, "r1", picked.ID)
	assert.Equal(t, []string{"romantic", ""}, catalog.listCalls)
}

func TestGetRandomActivityFallbackMayCrossCategory(t *testing.T) {
	catalog := rouletteCatalog()
	catalog.completed = []string{"r1", "r2"}
	svc := rouletteService(catalog, 2)

	picked, err := svc.GetRandomActivity(context.Background(), "romantic", true, "couple-1")
	require.NoError(t, err)
	assert.Equal(t, "f1", picked.ID)
}

func TestGetRandomActivityWithoutExclusion(t *testing.T) {
	catalog := rouletteCatalog()
	catalog.completed = []string{"r1", "r2"}
	svc := rouletteService(catalog, 0)

	// exclude_completed off: completed activities stay in the pool and no
	// fallback refetch happens.
	picked, err := svc.GetRandomActivity(context.Background(), "romantic", false, "couple-1")
	require.NoError(t, err)
	assert.Equal(t, "r1", picked.ID)
	assert.Equal(t, []string{"romantic"}, catalog.listCalls)
}

func TestGetRandomActivityEmptyCatalog(t *testing.T) {
	svc := rouletteService(&fakeCatalog{}, 0)

	_, err := svc.GetRandomActivity(context.Background(), "", true, "couple-1")
	assert.Error(t, err)
}
