// Package memory provides process-local repository implementations for
// development and tests.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"catermatch/internal/domain/entity"
	"catermatch/internal/domain/repository"
)

// learnedLocationStore is a mutex-guarded map keyed by normalized alias.
type learnedLocationStore struct {
	mu    sync.Mutex
	items map[string]*entity.LearnedLocation
	now   func() time.Time
}

// NewLearnedLocationStore creates an empty in-memory learned location store.
func NewLearnedLocationStore() repository.LearnedLocationRepository {
	return &learnedLocationStore{
		items: make(map[string]*entity.LearnedLocation),
		now:   time.Now,
	}
}

func (s *learnedLocationStore) TouchLearnedLocation(_ context.Context, alias string) (*entity.LearnedLocation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	item, ok := s.items[alias]
	if !ok {
		return nil, repository.ErrLearnedLocationNotFound
	}

	item.UseCount++
	item.LastUsed = s.now()

	return clone(item), nil
}

func (s *learnedLocationStore) UpsertLearnedLocation(_ context.Context, location *entity.LearnedLocation) (*entity.LearnedLocation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()

	item, ok := s.items[location.Alias]
	if !ok {
		item = clone(location)
		item.UseCount = 1
		item.LastUsed = now
		item.CreatedAt = now
		s.items[location.Alias] = item

		return clone(item), nil
	}

	item.UseCount++
	item.LastUsed = now

	if location.AddedBy.Overrides() {
		item.City = location.City
		item.Province = location.Province
		item.Latitude = location.Latitude
		item.Longitude = location.Longitude
		item.AddedBy = location.AddedBy
	}

	return clone(item), nil
}

func (s *learnedLocationStore) ListLearnedLocations(_ context.Context, limit int) ([]*entity.LearnedLocation, error) {
	s.mu.Lock()
	out := make([]*entity.LearnedLocation, 0, len(s.items))
	for _, item := range s.items {
		out = append(out, clone(item))
	}
	s.mu.Unlock()

	sort.Slice(out, func(i, j int) bool {
		if out[i].UseCount != out[j].UseCount {
			return out[i].UseCount > out[j].UseCount
		}

		return out[i].Alias < out[j].Alias
	})

	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}

	return out, nil
}

func clone(l *entity.LearnedLocation) *entity.LearnedLocation {
	c := *l

	return &c
}
