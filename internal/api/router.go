package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	mw "github.com/reviewlens/reviewlens/internal/api/middleware"
	"github.com/reviewlens/reviewlens/internal/api/response"
)

// Dependencies holds all handler and middleware dependencies for the router.
type Dependencies struct {
	RateLimit *mw.RateLimit

	HealthHandler          http.HandlerFunc
	CreateReviewHandler    http.HandlerFunc
	ListReviewsHandler     http.HandlerFunc
	GetReviewHandler       http.HandlerFunc
	SeedHandler            http.HandlerFunc
	RecommendationsHandler http.HandlerFunc
	SentimentSummary       http.HandlerFunc
}

// NewRouter builds the Chi router with middleware stack and all routes.
func NewRouter(deps Dependencies) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(mw.RequestID)
	r.Use(mw.Logger)
	r.Use(mw.Recovery)

	// Public health check
	r.Get("/api/v1/health", orNotImplemented(deps.HealthHandler))

	// Rate-limited routes
	r.Group(func(r chi.Router) {
		r.Use(deps.RateLimit.Limit)

		r.Post("/api/v1/reviews", orNotImplemented(deps.CreateReviewHandler))
		r.Get("/api/v1/reviews", orNotImplemented(deps.ListReviewsHandler))
		r.Post("/api/v1/reviews/seed", orNotImplemented(deps.SeedHandler))
		r.Get("/api/v1/reviews/{reviewID}", orNotImplemented(deps.GetReviewHandler))

		r.Get("/api/v1/recommendations", orNotImplemented(deps.RecommendationsHandler))
		r.Get("/api/v1/sentiment/summary", orNotImplemented(deps.SentimentSummary))
	})

	return r
}

// orNotImplemented returns the handler if non-nil, or a 501 placeholder.
func orNotImplemented(h http.HandlerFunc) http.HandlerFunc {
	if h != nil {
		return h
	}
	return func(w http.ResponseWriter, r *http.Request) {
		response.Error(w, http.StatusNotImplemented, "NOT_IMPLEMENTED", "Endpoint not yet implemented", nil)
	}
}
