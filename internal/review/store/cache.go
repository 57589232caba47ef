package store

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"campuspulse/internal/review/models"
)

const (
	cacheKeyReviews    = "campuspulse:reviews:all"
	cacheKeyCategories = "campuspulse:categories"
)

// Cached is a read-through decorator over a Gateway. The full review list is
// served from Redis while fresh; any cache failure falls through to the inner
// store, so availability never depends on Redis.
type Cached struct {
	inner  Gateway
	client *redis.Client
	ttl    time.Duration
	logger *slog.Logger
}

// NewCached wraps gateway with a Redis read cache.
func NewCached(gateway Gateway, client *redis.Client, ttl time.Duration, logger *slog.Logger) *Cached {
	return &Cached{
		inner:  gateway,
		client: client,
		ttl:    ttl,
		logger: logger,
	}
}

func (c *Cached) SaveReview(ctx context.Context, review *models.Review) error {
	if err := c.inner.SaveReview(ctx, review); err != nil {
		return err
	}
	c.invalidate(ctx, cacheKeyReviews)
	return nil
}

func (c *Cached) LoadAllReviews(ctx context.Context) ([]*models.Review, error) {
	var cached []*models.Review
	if c.lookup(ctx, cacheKeyReviews, &cached) {
		return cached, nil
	}

	reviews, err := c.inner.LoadAllReviews(ctx)
	if err != nil {
		return nil, err
	}
	c.fill(ctx, cacheKeyReviews, reviews)
	return reviews, nil
}

func (c *Cached) LoadCategories(ctx context.Context) ([]*models.Category, error) {
	var cached []*models.Category
	if c.lookup(ctx, cacheKeyCategories, &cached) {
		return cached, nil
	}

	categories, err := c.inner.LoadCategories(ctx)
	if err != nil {
		return nil, err
	}
	c.fill(ctx, cacheKeyCategories, categories)
	return categories, nil
}

func (c *Cached) IncrementHelpfulVotes(ctx context.Context, reviewID string) error {
	if err := c.inner.IncrementHelpfulVotes(ctx, reviewID); err != nil {
		return err
	}
	c.invalidate(ctx, cacheKeyReviews)
	return nil
}

func (c *Cached) lookup(ctx context.Context, key string, dest any) bool {
	payload, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.logger.WarnContext(ctx, "cache read failed", "key", key, "error", err)
		}
		return false
	}
	if err := json.Unmarshal(payload, dest); err != nil {
		c.logger.WarnContext(ctx, "cache payload corrupt", "key", key, "error", err)
		c.invalidate(ctx, key)
		return false
	}
	return true
}

func (c *Cached) fill(ctx context.Context, key string, value any) {
	payload, err := json.Marshal(value)
	if err != nil {
		c.logger.WarnContext(ctx, "cache encode failed", "key", key, "error", err)
		return
	}
	if err := c.client.Set(ctx, key, payload, c.ttl).Err(); err != nil {
		c.logger.WarnContext(ctx, "cache write failed", "key", key, "error", err)
	}
}

func (c *Cached) invalidate(ctx context.Context, key string) {
	if err := c.client.Del(ctx, key).Err(); err != nil {
		c.logger.WarnContext(ctx, "cache invalidation failed", "key", key, "error", err)
	}
}
