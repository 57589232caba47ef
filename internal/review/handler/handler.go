package handler

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"campuspulse/internal/platform/middleware"
	"campuspulse/internal/review/models"
)

// Service defines the review operations the HTTP layer exposes.
type Service interface {
	Submit(ctx context.Context, categoryID int, itemName string, rating int, content string) (bool, string)
	All(ctx context.Context) []*models.Review
	ByCategory(ctx context.Context, categoryID int) []*models.Review
	Search(ctx context.Context, term string, categoryID int) []*models.Review
	VoteHelpful(ctx context.Context, reviewID string) bool
	Categories(ctx context.Context) []*models.Category
	ItemStatistics(ctx context.Context, itemName string) *models.ItemStatistics
	PopularItems(ctx context.Context, categoryID, limit int) []*models.ItemStatistics
	ValidateSearchTerm(term string) (bool, string)
}

// Handler is the thin HTTP layer. It delegates to the review service without
// embedding business logic so transport concerns remain isolated.
type Handler struct {
	logger  *slog.Logger
	reviews Service
}

// New creates a review Handler.
func New(reviews Service, logger *slog.Logger) *Handler {
	return &Handler{
		logger:  logger,
		reviews: reviews,
	}
}

// Register wires the review routes into the chi router.
func (h *Handler) Register(r chi.Router) {
	router := chi.NewRouter()
	router.Use(middleware.Recovery(h.logger))
	router.Use(middleware.RequestID)
	router.Use(middleware.Logger(h.logger))
	router.Use(middleware.ContentTypeJSON)

	router.Get("/reviews", h.handleListReviews)
	router.Post("/reviews", h.handleSubmitReview)
	router.Post("/reviews/{id}/helpful", h.handleVoteHelpful)
	router.Get("/categories", h.handleListCategories)
	router.Get("/search", h.handleSearch)
	router.Get("/items/popular", h.handlePopularItems)
	router.Get("/items/{name}/statistics", h.handleItemStatistics)

	r.Mount("/", router)
}

type submitRequest struct {
	CategoryID int    `json:"category_id"`
	ItemName   string `json:"item_name"`
	Rating     int    `json:"rating"`
	Content    string `json:"content"`
}

func (h *Handler) handleSubmitReview(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req submitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.WarnContext(ctx, "invalid submit request",
			"request_id", middleware.GetRequestID(ctx),
			"error", err.Error(),
		)
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	ok, reason := h.reviews.Submit(ctx, req.CategoryID, req.ItemName, req.Rating, req.Content)
	if !ok {
		status := http.StatusBadRequest
		if reason == "failed to save review" {
			status = http.StatusServiceUnavailable
		}
		writeJSON(w, status, map[string]string{"error": reason})
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{"status": "submitted"})
}

func (h *Handler) handleListReviews(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if raw := r.URL.Query().Get("category_id"); raw != "" {
		categoryID, err := strconv.Atoi(raw)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "category_id must be an integer"})
			return
		}
		writeJSON(w, http.StatusOK, reviewList(h.reviews.ByCategory(ctx, categoryID)))
		return
	}
	writeJSON(w, http.StatusOK, reviewList(h.reviews.All(ctx)))
}

func (h *Handler) handleVoteHelpful(w http.ResponseWriter, r *http.Request) {
	reviewID := chi.URLParam(r, "id")
	if !h.reviews.VoteHelpful(r.Context(), reviewID) {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "review not found"})
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) handleListCategories(w http.ResponseWriter, r *http.Request) {
	categories := h.reviews.Categories(r.Context())
	if categories == nil {
		categories = []*models.Category{}
	}
	writeJSON(w, http.StatusOK, categories)
}

func (h *Handler) handleSearch(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	term := r.URL.Query().Get("q")

	if ok, reason := h.reviews.ValidateSearchTerm(term); !ok {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": reason})
		return
	}

	categoryID := 0
	if raw := r.URL.Query().Get("category_id"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "category_id must be an integer"})
			return
		}
		categoryID = parsed
	}

	writeJSON(w, http.StatusOK, reviewList(h.reviews.Search(ctx, term, categoryID)))
}

func (h *Handler) handleItemStatistics(w http.ResponseWriter, r *http.Request) {
	itemName := chi.URLParam(r, "name")
	writeJSON(w, http.StatusOK, h.reviews.ItemStatistics(r.Context(), itemName))
}

func (h *Handler) handlePopularItems(w http.ResponseWriter, r *http.Request) {
	categoryID := 0
	if raw := r.URL.Query().Get("category_id"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "category_id must be an integer"})
			return
		}
		categoryID = parsed
	}

	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "limit must be an integer"})
			return
		}
		limit = parsed
	}

	stats := h.reviews.PopularItems(r.Context(), categoryID, limit)
	if stats == nil {
		stats = []*models.ItemStatistics{}
	}
	writeJSON(w, http.StatusOK, stats)
}

func reviewList(reviews []*models.Review) []*models.Review {
	if reviews == nil {
		return []*models.Review{}
	}
	return reviews
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
