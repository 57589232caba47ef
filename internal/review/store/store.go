// Package store persists reviews and categories. The service layer depends
// only on the Gateway interface; the Postgres, in-memory and cached
// implementations are interchangeable.
package store

import (
	"context"

	"campuspulse/internal/review/models"
)

// Gateway is the storage contract the review service consumes.
//
// Reads return the full record sets in their canonical order: reviews newest
// first, categories by id ascending. Failures surface as wrapped sentinel
// errors; the service decides how to degrade.
type Gateway interface {
	// SaveReview persists one review. It never partially writes a record.
	SaveReview(ctx context.Context, review *models.Review) error

	// LoadAllReviews returns every stored review ordered by timestamp
	// descending.
	LoadAllReviews(ctx context.Context) ([]*models.Review, error)

	// LoadCategories returns the full category set ordered by id ascending.
	LoadCategories(ctx context.Context) ([]*models.Category, error)

	// IncrementHelpfulVotes atomically bumps one review's helpful_votes by 1.
	// Returns sentinel.ErrNotFound when no review has the given id.
	IncrementHelpfulVotes(ctx context.Context, reviewID string) error
}

// CategorySeeder is implemented by stores that can take the bootstrap
// category set.
type CategorySeeder interface {
	UpsertCategory(ctx context.Context, category *models.Category) error
}
