package store

import (
	"context"
	"sort"
	"sync"

	"campuspulse/internal/review/models"
	"campuspulse/pkg/platform/sentinel"
)

// InMemory keeps reviews and categories in process memory. It backs unit
// tests and the terminal client's offline mode.
type InMemory struct {
	mu         sync.RWMutex
	reviews    []*models.Review
	categories map[int]*models.Category
}

// NewInMemory returns an empty in-memory store.
func NewInMemory() *InMemory {
	return &InMemory{
		categories: make(map[int]*models.Category),
	}
}

func (s *InMemory) SaveReview(_ context.Context, review *models.Review) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	copied := *review
	s.reviews = append(s.reviews, &copied)
	return nil
}

func (s *InMemory) LoadAllReviews(_ context.Context) ([]*models.Review, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*models.Review, len(s.reviews))
	for i, r := range s.reviews {
		copied := *r
		out[i] = &copied
	}
	// Newest first; insertion order breaks timestamp ties so repeat reads
	// stay identical.
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Timestamp.After(out[j].Timestamp)
	})
	return out, nil
}

func (s *InMemory) LoadCategories(_ context.Context) ([]*models.Category, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*models.Category, 0, len(s.categories))
	for _, c := range s.categories {
		copied := *c
		out = append(out, &copied)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *InMemory) IncrementHelpfulVotes(_ context.Context, reviewID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, r := range s.reviews {
		if r.ID == reviewID {
			r.HelpfulVotes++
			return nil
		}
	}
	return sentinel.ErrNotFound
}

func (s *InMemory) UpsertCategory(_ context.Context, category *models.Category) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	copied := *category
	s.categories[category.ID] = &copied
	return nil
}
