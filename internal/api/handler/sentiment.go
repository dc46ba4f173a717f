package handler

import (
	"context"
	"net/http"

	"github.com/reviewlens/reviewlens/internal/api/response"
	"github.com/reviewlens/reviewlens/internal/sentiment"
)

// Summarizer defines the interface the sentiment summary handler depends on.
type Summarizer interface {
	SentimentSummary(ctx context.Context) (sentiment.Summary, error)
}

// NewSentimentSummaryHandler returns an http.HandlerFunc for
// GET /api/v1/sentiment/summary.
func NewSentimentSummaryHandler(svc Summarizer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		summary, err := svc.SentimentSummary(r.Context())
		if err != nil {
			response.Error(w, http.StatusInternalServerError, "INTERNAL_ERROR",
				"An unexpected error occurred", nil)
			return
		}

		response.JSON(w, summary)
	}
}
