package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/reviewlens/reviewlens/internal/api/response"
	"github.com/reviewlens/reviewlens/internal/store"
	"github.com/reviewlens/reviewlens/pkg/models"
)

// maxReviewLength bounds submitted review content.
const maxReviewLength = 1000

// ReviewStore defines the persistence operations the review handlers depend on.
type ReviewStore interface {
	CreateReview(ctx context.Context, content string, sentimentScore float64) (*models.Review, error)
	ListReviews(ctx context.Context, filter store.ReviewFilter) ([]models.Review, int, error)
	GetReview(ctx context.Context, id int64) (*models.Review, error)
}

// Scorer produces a compound sentiment score in [-1, 1] for a text.
type Scorer interface {
	Score(text string) float64
}

// NewCreateReviewHandler returns an http.HandlerFunc for POST /api/v1/reviews.
// The review is scored before it is stored, so every persisted review carries
// a sentiment score.
func NewCreateReviewHandler(st ReviewStore, scorer Scorer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Content string `json:"content"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			response.Error(w, http.StatusBadRequest, "INVALID_REQUEST", "Invalid JSON body", nil)
			return
		}

		content := strings.TrimSpace(req.Content)
		if content == "" {
			response.Error(w, http.StatusBadRequest, "REVIEW_EMPTY", "Review content is required", nil)
			return
		}
		if len(content) > maxReviewLength {
			response.Error(w, http.StatusBadRequest, "REVIEW_TOO_LONG",
				"Review content must be at most 1000 characters", nil)
			return
		}

		review, err := st.CreateReview(r.Context(), content, scorer.Score(content))
		if err != nil {
			response.Error(w, http.StatusInternalServerError, "INTERNAL_ERROR",
				"An unexpected error occurred", nil)
			return
		}

		response.Created(w, review)
	}
}

// NewListReviewsHandler returns an http.HandlerFunc for GET /api/v1/reviews.
// Supports optional label (Positive/Neutral/Negative), page and limit query
// parameters.
func NewListReviewsHandler(st ReviewStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filter := store.ReviewFilter{
			Label: r.URL.Query().Get("label"),
			Page:  queryInt(r, "page", 1),
			Limit: queryInt(r, "limit", 0),
		}

		reviews, total, err := st.ListReviews(r.Context(), filter)
		if err != nil {
			if errors.Is(err, store.ErrInvalidLabel) {
				response.Error(w, http.StatusBadRequest, "INVALID_LABEL",
					"label must be one of Positive, Neutral, Negative", nil)
				return
			}
			response.Error(w, http.StatusInternalServerError, "INTERNAL_ERROR",
				"An unexpected error occurred", nil)
			return
		}

		limit := filter.Limit
		if limit <= 0 {
			limit = store.DefaultPageLimit
		}
		page := filter.Page
		if page <= 0 {
			page = 1
		}

		response.Collection(w, reviews, response.PaginationMeta{
			Page:    page,
			Limit:   limit,
			Total:   total,
			HasNext: page*limit < total,
		})
	}
}

// NewGetReviewHandler returns an http.HandlerFunc for GET /api/v1/reviews/{reviewID}.
func NewGetReviewHandler(st ReviewStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.ParseInt(chi.URLParam(r, "reviewID"), 10, 64)
		if err != nil {
			response.Error(w, http.StatusBadRequest, "INVALID_REQUEST",
				"reviewID must be an integer", nil)
			return
		}

		review, err := st.GetReview(r.Context(), id)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				response.Error(w, http.StatusNotFound, "REVIEW_NOT_FOUND", "Review not found", nil)
				return
			}
			response.Error(w, http.StatusInternalServerError, "INTERNAL_ERROR",
				"An unexpected error occurred", nil)
			return
		}

		response.JSON(w, review)
	}
}

func queryInt(r *http.Request, key string, defaultVal int) int {
	v := r.URL.Query().Get(key)
	if v == "" {
		return defaultVal
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return defaultVal
	}
	return i
}
