// Package service exposes the task-oriented review operations every other
// collaborator talks to. Storage and validation stay hidden behind it, and
// every backend failure is absorbed here: callers only ever see boolean or
// empty-result outcomes, never a propagated storage error.
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"sort"
	"strings"

	"campuspulse/internal/platform/config"
	"campuspulse/internal/platform/metrics"
	"campuspulse/internal/review/models"
	"campuspulse/internal/review/store"
	"campuspulse/internal/review/validate"
	"campuspulse/pkg/platform/sentinel"
)

// DefaultPopularLimit caps PopularItems when the caller passes no limit.
const DefaultPopularLimit = 5

type Service struct {
	store     store.Gateway
	validator *validate.Validator
	cfg       config.Review
	logger    *slog.Logger
	metrics   *metrics.Metrics
}

type Option func(*Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) {
		s.metrics = m
	}
}

func New(gateway store.Gateway, validator *validate.Validator, cfg config.Review, opts ...Option) (*Service, error) {
	if gateway == nil {
		return nil, fmt.Errorf("storage gateway is required")
	}
	if validator == nil {
		return nil, fmt.Errorf("validator is required")
	}

	svc := &Service{
		store:     gateway,
		validator: validator,
		cfg:       cfg,
		logger:    slog.Default(),
	}

	for _, opt := range opts {
		opt(svc)
	}

	return svc, nil
}

// Submit validates a raw submission and persists it. On rejection or storage
// failure it returns false plus a renderable reason; nothing is persisted
// unless validation passed.
func (s *Service) Submit(ctx context.Context, categoryID int, itemName string, rating int, content string) (bool, string) {
	ok, reason := s.validator.ValidateReview(categoryID, itemName, rating, content)
	if !ok {
		if s.metrics != nil {
			s.metrics.IncrementReviewsRejected()
		}
		s.logger.InfoContext(ctx, "review rejected", "reason", reason)
		return false, reason
	}

	review := models.NewReview(categoryID, itemName, rating, content)
	if err := s.store.SaveReview(ctx, review); err != nil {
		s.logger.ErrorContext(ctx, "save review failed", "review_id", review.ID, "error", err)
		return false, "failed to save review"
	}

	if s.metrics != nil {
		s.metrics.IncrementReviewsSubmitted()
	}
	s.logger.InfoContext(ctx, "review submitted",
		"review_id", review.ID,
		"category_id", review.CategoryID,
		"item", review.ItemName,
	)
	return true, ""
}

// All returns every review, newest first. Storage failures degrade to an
// empty result so the presentation layer always has something renderable.
func (s *Service) All(ctx context.Context) []*models.Review {
	reviews, err := s.store.LoadAllReviews(ctx)
	if err != nil {
		s.logger.ErrorContext(ctx, "load reviews failed", "error", err)
		return nil
	}
	return reviews
}

// ByCategory returns the reviews filed under one category, newest first.
func (s *Service) ByCategory(ctx context.Context, categoryID int) []*models.Review {
	var out []*models.Review
	for _, r := range s.All(ctx) {
		if r.CategoryID == categoryID {
			out = append(out, r)
		}
	}
	return out
}

// ByItem returns all reviews whose item name matches case-insensitively.
func (s *Service) ByItem(ctx context.Context, itemName string) []*models.Review {
	var out []*models.Review
	for _, r := range s.All(ctx) {
		if strings.EqualFold(r.ItemName, itemName) {
			out = append(out, r)
		}
	}
	return out
}

// Search matches term case-insensitively as a substring of the item name or
// the content. A categoryID > 0 restricts results to that category. Matches
// keep the underlying newest-first order.
func (s *Service) Search(ctx context.Context, term string, categoryID int) []*models.Review {
	if s.metrics != nil {
		s.metrics.IncrementSearches()
	}

	needle := strings.ToLower(strings.TrimSpace(term))
	var out []*models.Review
	for _, r := range s.All(ctx) {
		if categoryID > 0 && r.CategoryID != categoryID {
			continue
		}
		if strings.Contains(strings.ToLower(r.ItemName), needle) ||
			strings.Contains(strings.ToLower(r.Content), needle) {
			out = append(out, r)
		}
	}
	return out
}

// VoteHelpful bumps one review's helpful counter. Unknown ids and backend
// failures both report false; votes are never partially applied.
func (s *Service) VoteHelpful(ctx context.Context, reviewID string) bool {
	if err := s.store.IncrementHelpfulVotes(ctx, reviewID); err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			s.logger.WarnContext(ctx, "vote on unknown review", "review_id", reviewID)
		} else {
			s.logger.ErrorContext(ctx, "record vote failed", "review_id", reviewID, "error", err)
		}
		return false
	}
	if s.metrics != nil {
		s.metrics.IncrementHelpfulVotes()
	}
	return true
}

// Categories returns the category set, empty on storage failure.
func (s *Service) Categories(ctx context.Context) []*models.Category {
	categories, err := s.store.LoadCategories(ctx)
	if err != nil {
		s.logger.ErrorContext(ctx, "load categories failed", "error", err)
		return nil
	}
	return categories
}

// ItemStatistics aggregates every review matching the item name.
func (s *Service) ItemStatistics(ctx context.Context, itemName string) *models.ItemStatistics {
	return s.statsFor(s.All(ctx), itemName)
}

// PopularItems groups reviews by item name (case-insensitive), picks the
// limit most-reviewed items and returns each one's full statistics. Ties keep
// the order items were first encountered in the newest-first load.
func (s *Service) PopularItems(ctx context.Context, categoryID, limit int) []*models.ItemStatistics {
	if limit <= 0 {
		limit = DefaultPopularLimit
	}

	all := s.All(ctx)

	type group struct {
		displayName string
		count       int
	}
	counts := make(map[string]*group)
	var order []string
	for _, r := range all {
		if categoryID > 0 && r.CategoryID != categoryID {
			continue
		}
		key := strings.ToLower(r.ItemName)
		g, seen := counts[key]
		if !seen {
			g = &group{displayName: r.ItemName}
			counts[key] = g
			order = append(order, key)
		}
		g.count++
	}

	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]].count > counts[order[j]].count
	})
	if len(order) > limit {
		order = order[:limit]
	}

	out := make([]*models.ItemStatistics, 0, len(order))
	for _, key := range order {
		out = append(out, s.statsFor(all, counts[key].displayName))
	}
	return out
}

func (s *Service) statsFor(reviews []*models.Review, itemName string) *models.ItemStatistics {
	stats := &models.ItemStatistics{ItemName: itemName}
	var sum int
	var matched []*models.Review
	for _, r := range reviews {
		if strings.EqualFold(r.ItemName, itemName) {
			matched = append(matched, r)
			sum += r.Rating
		}
	}
	stats.TotalReviews = len(matched)
	if stats.TotalReviews == 0 {
		return stats
	}

	distribution := make(map[int]int, s.cfg.MaxRating-s.cfg.MinRating+1)
	for rating := s.cfg.MinRating; rating <= s.cfg.MaxRating; rating++ {
		distribution[rating] = 0
	}
	for _, r := range matched {
		distribution[r.Rating]++
		stats.TotalHelpfulVotes += r.HelpfulVotes
	}
	stats.RatingDistribution = distribution
	stats.AverageRating = math.Round(float64(sum)/float64(stats.TotalReviews)*10) / 10
	return stats
}

// ValidateSearchTerm exposes search-term validation for prompting layers.
func (s *Service) ValidateSearchTerm(term string) (bool, string) {
	return s.validator.ValidateSearchTerm(term)
}
