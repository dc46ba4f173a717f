package handler

import (
	"context"
	"net/http"

	"github.com/reviewlens/reviewlens/internal/api/response"
	"github.com/reviewlens/reviewlens/internal/recommend"
)

// Recommender defines the interface the recommendations handler depends on.
type Recommender interface {
	Recommendations(ctx context.Context) (recommend.Output, error)
}

// NewRecommendationsHandler returns an http.HandlerFunc for
// GET /api/v1/recommendations.
func NewRecommendationsHandler(svc Recommender) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		out, err := svc.Recommendations(r.Context())
		if err != nil {
			response.Error(w, http.StatusInternalServerError, "INTERNAL_ERROR",
				"An unexpected error occurred", nil)
			return
		}

		response.JSON(w, out)
	}
}
