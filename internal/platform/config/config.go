package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all runtime configuration. Everything is overridable through
// environment variables so deployments never need code changes.
type Config struct {
	Addr        string
	PostgresDSN string
	RedisURL    string
	CacheTTL    time.Duration

	Review Review
}

// Review captures the domain validation knobs consumed by the validator and
// the review service.
type Review struct {
	MinContentLength int
	MaxContentLength int
	MinRating        int
	MaxRating        int
	CategoryIDs      []int
	BannedWords      []string
}

// DefaultReview returns the reference validation configuration: the four
// seeded categories and the stock content limits.
func DefaultReview() Review {
	return Review{
		MinContentLength: 10,
		MaxContentLength: 500,
		MinRating:        1,
		MaxRating:        5,
		CategoryIDs:      []int{1, 2, 3, 4},
		BannedWords:      []string{"spam", "inappropriate", "offensive"},
	}
}

// Load builds a Config from the environment so main stays lean. A .env file
// is honored when present so local development matches deployed behavior.
func Load() Config {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using system environment")
	}

	review := DefaultReview()
	review.MinContentLength = getEnvInt("REVIEW_MIN_LENGTH", review.MinContentLength)
	review.MaxContentLength = getEnvInt("REVIEW_MAX_LENGTH", review.MaxContentLength)
	review.MinRating = getEnvInt("REVIEW_MIN_RATING", review.MinRating)
	review.MaxRating = getEnvInt("REVIEW_MAX_RATING", review.MaxRating)
	review.CategoryIDs = getEnvInts("REVIEW_CATEGORY_IDS", review.CategoryIDs)
	review.BannedWords = getEnvList("REVIEW_BANNED_WORDS", review.BannedWords)

	return Config{
		Addr:        getEnv("CAMPUSPULSE_ADDR", ":8080"),
		PostgresDSN: getEnv("POSTGRES_DSN", ""),
		RedisURL:    getEnv("REDIS_URL", ""),
		CacheTTL:    getEnvDuration("CACHE_TTL", 30*time.Second),
		Review:      review,
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		log.Printf("invalid %s=%q, using default %d", key, value, fallback)
		return fallback
	}
	return n
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		log.Printf("invalid %s=%q, using default %s", key, value, fallback)
		return fallback
	}
	return d
}

func getEnvList(key string, fallback []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return fallback
	}
	return out
}

func getEnvInts(key string, fallback []int) []int {
	values := getEnvList(key, nil)
	if values == nil {
		return fallback
	}
	out := make([]int, 0, len(values))
	for _, v := range values {
		n, err := strconv.Atoi(v)
		if err != nil {
			log.Printf("invalid %s entry %q, using defaults", key, v)
			return fallback
		}
		out = append(out, n)
	}
	return out
}
