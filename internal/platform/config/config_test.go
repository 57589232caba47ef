package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, ":8080", cfg.Addr)
	assert.Empty(t, cfg.PostgresDSN)
	assert.Equal(t, 30*time.Second, cfg.CacheTTL)

	assert.Equal(t, 10, cfg.Review.MinContentLength)
	assert.Equal(t, 500, cfg.Review.MaxContentLength)
	assert.Equal(t, 1, cfg.Review.MinRating)
	assert.Equal(t, 5, cfg.Review.MaxRating)
	assert.Equal(t, []int{1, 2, 3, 4}, cfg.Review.CategoryIDs)
	assert.Contains(t, cfg.Review.BannedWords, "spam")
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("CAMPUSPULSE_ADDR", ":9999")
	t.Setenv("REVIEW_MIN_LENGTH", "5")
	t.Setenv("REVIEW_MAX_LENGTH", "100")
	t.Setenv("REVIEW_CATEGORY_IDS", "10, 20, 30")
	t.Setenv("REVIEW_BANNED_WORDS", "foo, bar")
	t.Setenv("CACHE_TTL", "2m")

	cfg := Load()

	assert.Equal(t, ":9999", cfg.Addr)
	assert.Equal(t, 5, cfg.Review.MinContentLength)
	assert.Equal(t, 100, cfg.Review.MaxContentLength)
	assert.Equal(t, []int{10, 20, 30}, cfg.Review.CategoryIDs)
	assert.Equal(t, []string{"foo", "bar"}, cfg.Review.BannedWords)
	assert.Equal(t, 2*time.Minute, cfg.CacheTTL)
}

func TestLoadIgnoresMalformedValues(t *testing.T) {
	t.Setenv("REVIEW_MIN_RATING", "one")
	t.Setenv("REVIEW_CATEGORY_IDS", "1,banana")
	t.Setenv("CACHE_TTL", "soon")

	cfg := Load()

	assert.Equal(t, 1, cfg.Review.MinRating)
	assert.Equal(t, []int{1, 2, 3, 4}, cfg.Review.CategoryIDs)
	assert.Equal(t, 30*time.Second, cfg.CacheTTL)
}
