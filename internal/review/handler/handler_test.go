package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	"campuspulse/internal/platform/config"
	"campuspulse/internal/review/models"
	"campuspulse/internal/review/service"
	"campuspulse/internal/review/store"
	"campuspulse/internal/review/validate"
)

func newReviewRouter(t *testing.T) (http.Handler, *service.Service) {
	t.Helper()

	mem := store.NewInMemory()
	if err := store.SeedDefaultCategories(context.Background(), mem); err != nil {
		t.Fatalf("seed categories: %v", err)
	}

	cfg := config.DefaultReview()
	svc, err := service.New(mem, validate.New(cfg), cfg)
	if err != nil {
		t.Fatalf("service init: %v", err)
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	router := chi.NewRouter()
	New(svc, logger).Register(router)
	return router, svc
}

func submitBody(t *testing.T, categoryID int, item string, rating int, content string) *bytes.Reader {
	t.Helper()
	body, err := json.Marshal(map[string]any{
		"category_id": categoryID,
		"item_name":   item,
		"rating":      rating,
		"content":     content,
	})
	if err != nil {
		t.Fatalf("marshal body: %v", err)
	}
	return bytes.NewReader(body)
}

func TestSubmitReview(t *testing.T) {
	router, svc := newReviewRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/reviews",
		submitBody(t, 1, "Intro to Go", 5, "Hands down the most practical course this semester."))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201 submitting review, got %d", rec.Code)
	}
	if got := len(svc.All(context.Background())); got != 1 {
		t.Fatalf("expected 1 stored review, got %d", got)
	}
}

func TestSubmitReviewValidationFailure(t *testing.T) {
	router, svc := newReviewRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/reviews",
		submitBody(t, 1, "Intro to Go", 5, "too short"))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for invalid review, got %d", rec.Code)
	}

	var resp struct {
		Error string `json:"error"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode error response: %v", err)
	}
	if resp.Error == "" {
		t.Fatal("expected a rejection reason in the response")
	}
	if got := len(svc.All(context.Background())); got != 0 {
		t.Fatalf("expected nothing stored, got %d reviews", got)
	}
}

func TestSubmitReviewMalformedBody(t *testing.T) {
	router, _ := newReviewRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/reviews", bytes.NewReader([]byte("{not json")))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for malformed body, got %d", rec.Code)
	}
}

func TestListReviews(t *testing.T) {
	router, svc := newReviewRouter(t)
	ctx := context.Background()

	if ok, reason := svc.Submit(ctx, 1, "Intro to Go", 5, "Hands down the most practical course."); !ok {
		t.Fatalf("seed submit failed: %s", reason)
	}
	if ok, reason := svc.Submit(ctx, 2, "Dining Hall", 3, "Decent food but the queues are brutal."); !ok {
		t.Fatalf("seed submit failed: %s", reason)
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/reviews", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 listing reviews, got %d", rec.Code)
	}

	var all []*models.Review
	if err := json.NewDecoder(rec.Body).Decode(&all); err != nil {
		t.Fatalf("decode reviews: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("expected 2 reviews, got %d", len(all))
	}

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/reviews?category_id=2", nil))
	var filtered []*models.Review
	if err := json.NewDecoder(rec.Body).Decode(&filtered); err != nil {
		t.Fatalf("decode filtered reviews: %v", err)
	}
	if len(filtered) != 1 || filtered[0].ItemName != "Dining Hall" {
		t.Fatalf("expected only the Dining Hall review, got %+v", filtered)
	}
}

func TestListReviewsBadCategory(t *testing.T) {
	router, _ := newReviewRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/reviews?category_id=courses", nil))
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for non-numeric category_id, got %d", rec.Code)
	}
}

func TestVoteHelpful(t *testing.T) {
	router, svc := newReviewRouter(t)
	ctx := context.Background()

	if ok, reason := svc.Submit(ctx, 1, "Intro to Go", 5, "Hands down the most practical course."); !ok {
		t.Fatalf("seed submit failed: %s", reason)
	}
	reviewID := svc.All(ctx)[0].ID

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/reviews/"+reviewID+"/helpful", nil))
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204 voting on known review, got %d", rec.Code)
	}
	if got := svc.All(ctx)[0].HelpfulVotes; got != 1 {
		t.Fatalf("expected 1 helpful vote, got %d", got)
	}

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/reviews/no-such-id/helpful", nil))
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 voting on unknown review, got %d", rec.Code)
	}
}

func TestListCategories(t *testing.T) {
	router, _ := newReviewRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/categories", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 listing categories, got %d", rec.Code)
	}

	var categories []*models.Category
	if err := json.NewDecoder(rec.Body).Decode(&categories); err != nil {
		t.Fatalf("decode categories: %v", err)
	}
	if len(categories) != 4 || categories[0].Name != "Courses" {
		t.Fatalf("expected the 4 seeded categories, got %+v", categories)
	}
}

func TestSearch(t *testing.T) {
	router, svc := newReviewRouter(t)
	ctx := context.Background()

	if ok, reason := svc.Submit(ctx, 2, "Main Library", 5, "Open late which saves every exam season."); !ok {
		t.Fatalf("seed submit failed: %s", reason)
	}
	if ok, reason := svc.Submit(ctx, 3, "Study Spaces", 4, "I loved the library hours during finals."); !ok {
		t.Fatalf("seed submit failed: %s", reason)
	}
	if ok, reason := svc.Submit(ctx, 2, "Dining Hall", 2, "Queues get long around noon every day."); !ok {
		t.Fatalf("seed submit failed: %s", reason)
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/search?q=library", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 searching, got %d", rec.Code)
	}

	var results []*models.Review
	if err := json.NewDecoder(rec.Body).Decode(&results); err != nil {
		t.Fatalf("decode search results: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("expected 2 matches for 'library', got %d", len(results))
	}

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/search?q=library&category_id=3", nil))
	if err := json.NewDecoder(rec.Body).Decode(&results); err != nil {
		t.Fatalf("decode filtered search results: %v", err)
	}
	if len(results) != 1 || results[0].ItemName != "Study Spaces" {
		t.Fatalf("expected only the Study Spaces match, got %+v", results)
	}
}

func TestSearchTermTooShort(t *testing.T) {
	router, _ := newReviewRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/search?q=a", nil))
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for one-character term, got %d", rec.Code)
	}
}

func TestItemStatistics(t *testing.T) {
	router, svc := newReviewRouter(t)
	ctx := context.Background()

	for _, rating := range []int{5, 5, 4} {
		if ok, reason := svc.Submit(ctx, 2, "Main Library", rating, "Open late which saves every exam season."); !ok {
			t.Fatalf("seed submit failed: %s", reason)
		}
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/items/Main%20Library/statistics", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 for statistics, got %d", rec.Code)
	}

	var stats models.ItemStatistics
	if err := json.NewDecoder(rec.Body).Decode(&stats); err != nil {
		t.Fatalf("decode statistics: %v", err)
	}
	if stats.TotalReviews != 3 {
		t.Fatalf("expected 3 reviews, got %d", stats.TotalReviews)
	}
	if stats.AverageRating != 4.7 {
		t.Fatalf("expected average 4.7, got %v", stats.AverageRating)
	}
	if stats.RatingDistribution[5] != 2 || stats.RatingDistribution[4] != 1 || stats.RatingDistribution[1] != 0 {
		t.Fatalf("unexpected distribution: %+v", stats.RatingDistribution)
	}
}

func TestPopularItems(t *testing.T) {
	router, svc := newReviewRouter(t)
	ctx := context.Background()

	seed := map[string]int{"Item A": 3, "Item B": 1}
	for item, count := range seed {
		for i := 0; i < count; i++ {
			if ok, reason := svc.Submit(ctx, 1, item, 4, "Consistently solid, would recommend to anyone."); !ok {
				t.Fatalf("seed submit failed: %s", reason)
			}
		}
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/items/popular?limit=1", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 for popular items, got %d", rec.Code)
	}

	var popular []*models.ItemStatistics
	if err := json.NewDecoder(rec.Body).Decode(&popular); err != nil {
		t.Fatalf("decode popular items: %v", err)
	}
	if len(popular) != 1 || popular[0].ItemName != "Item A" {
		t.Fatalf("expected Item A on top, got %+v", popular)
	}
}
