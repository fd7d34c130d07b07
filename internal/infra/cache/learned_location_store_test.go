package cache

import (
	"context"
	"sync"
	"testing"
	"time"

	"catermatch/internal/domain/entity"
	"catermatch/internal/domain/repository"
	"catermatch/internal/errors"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupStore(t *testing.T) (*learnedLocationStore, *miniredis.Miniredis) {
	t.Helper()

	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	store := newLearnedLocationStore(rdb, "test:")
	fixed := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return fixed }

	return store, mr
}

func TestLearnedLocationStore_TouchMiss(t *testing.T) {
	store, _ := setupStore(t)

	got, err := store.TouchLearnedLocation(context.Background(), "nowhere")

	assert.Nil(t, got)
	assert.True(t, errors.Is(err, repository.ErrLearnedLocationNotFound))
}

func TestLearnedLocationStore_UpsertInsertsAndTouchIncrements(t *testing.T) {
	ctx := context.Background()
	store, mr := setupStore(t)

	created, err := store.UpsertLearnedLocation(ctx, &entity.LearnedLocation{
		Alias:     "umhlanga rocks",
		City:      "Durban",
		Province:  "KwaZulu-Natal",
		Latitude:  -29.8587,
		Longitude: 31.0218,
		AddedBy:   entity.AddedBySystem,
	})
	require.NoError(t, err)

	assert.Equal(t, int64(1), created.UseCount)
	assert.Equal(t, "Durban", created.City)
	assert.InDelta(t, -29.8587, created.Latitude, 1e-9)
	assert.Equal(t, entity.AddedBySystem, created.AddedBy)
	assert.True(t, store.now().Equal(created.CreatedAt))

	hit, err := store.TouchLearnedLocation(ctx, "umhlanga rocks")
	require.NoError(t, err)
	assert.Equal(t, int64(2), hit.UseCount)

	assert.Equal(t, "2", mr.HGet("test:learned:umhlanga rocks", "use_count"))
	score, err := mr.ZScore("test:learned_index", "umhlanga rocks")
	require.NoError(t, err)
	assert.Equal(t, 2.0, score)
}

func TestLearnedLocationStore_SystemUpsertKeepsStoredPlace(t *testing.T) {
	ctx := context.Background()
	store, _ := setupStore(t)

	_, err := store.UpsertLearnedLocation(ctx, &entity.LearnedLocation{
		Alias: "the bay", City: "Gqeberha", Province: "Eastern Cape", AddedBy: entity.AddedByAdmin,
	})
	require.NoError(t, err)

	got, err := store.UpsertLearnedLocation(ctx, &entity.LearnedLocation{
		Alias: "the bay", City: "Durban", Province: "KwaZulu-Natal", AddedBy: entity.AddedBySystem,
	})
	require.NoError(t, err)

	assert.Equal(t, "Gqeberha", got.City)
	assert.Equal(t, entity.AddedByAdmin, got.AddedBy)
	assert.Equal(t, int64(2), got.UseCount)
}

func TestLearnedLocationStore_AdminUpsertOverrides(t *testing.T) {
	ctx := context.Background()
	store, _ := setupStore(t)

	_, err := store.UpsertLearnedLocation(ctx, &entity.LearnedLocation{
		Alias: "pmb", City: "Durban", AddedBy: entity.AddedBySystem,
	})
	require.NoError(t, err)

	got, err := store.UpsertLearnedLocation(ctx, &entity.LearnedLocation{
		Alias: "pmb", City: "Pietermaritzburg", Province: "KwaZulu-Natal",
		Latitude: -29.6006, Longitude: 30.3794, AddedBy: entity.AddedByAdmin,
	})
	require.NoError(t, err)

	assert.Equal(t, "Pietermaritzburg", got.City)
	assert.Equal(t, "KwaZulu-Natal", got.Province)
	assert.InDelta(t, 30.3794, got.Longitude, 1e-9)
	assert.Equal(t, entity.AddedByAdmin, got.AddedBy)
	assert.Equal(t, int64(2), got.UseCount)
}

func TestLearnedLocationStore_ConcurrentTouchesAreAtomic(t *testing.T) {
	ctx := context.Background()
	store, _ := setupStore(t)

	_, err := store.UpsertLearnedLocation(ctx, &entity.LearnedLocation{Alias: "soweto", City: "Johannesburg"})
	require.NoError(t, err)

	const workers = 20

	var wg sync.WaitGroup
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = store.TouchLearnedLocation(ctx, "soweto")
		}()
	}
	wg.Wait()

	got, err := store.TouchLearnedLocation(ctx, "soweto")
	require.NoError(t, err)
	assert.Equal(t, int64(workers+2), got.UseCount)
}

func TestLearnedLocationStore_List(t *testing.T) {
	ctx := context.Background()
	store, _ := setupStore(t)

	for _, alias := range []string{"alpha", "bravo", "charlie"} {
		_, err := store.UpsertLearnedLocation(ctx, &entity.LearnedLocation{Alias: alias, City: "Pretoria"})
		require.NoError(t, err)
	}

	_, err := store.TouchLearnedLocation(ctx, "charlie")
	require.NoError(t, err)

	list, err := store.ListLearnedLocations(ctx, 2)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "charlie", list[0].Alias)
	assert.Equal(t, int64(2), list[0].UseCount)
	assert.Equal(t, int64(1), list[1].UseCount)

	empty, err := newLearnedLocationStore(store.rdb, "other:").ListLearnedLocations(ctx, 5)
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestLearnedLocationStore_ListBreaksTiesByAliasAtTheLimit(t *testing.T) {
	ctx := context.Background()
	store, _ := setupStore(t)

	for _, alias := range []string{"delta", "alpha", "echo", "charlie", "bravo"} {
		_, err := store.UpsertLearnedLocation(ctx, &entity.LearnedLocation{Alias: alias, City: "Polokwane"})
		require.NoError(t, err)
	}

	_, err := store.TouchLearnedLocation(ctx, "echo")
	require.NoError(t, err)

	list, err := store.ListLearnedLocations(ctx, 3)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "echo", list[0].Alias)
	assert.Equal(t, "alpha", list[1].Alias)
	assert.Equal(t, "bravo", list[2].Alias)

	all, err := store.ListLearnedLocations(ctx, 10)
	require.NoError(t, err)
	require.Len(t, all, 5)
	assert.Equal(t, "delta", all[4].Alias)
}
