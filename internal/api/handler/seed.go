package handler

import (
	"net/http"

	"github.com/reviewlens/reviewlens/internal/api/response"
	"github.com/reviewlens/reviewlens/pkg/models"
)

// demoTexts are the sample reviews inserted by the seed endpoint. They cover
// all three sentiment bands and enough tag co-occurrence for the miner to
// produce rules out of the box.
var demoTexts = []string{
	"Loved the burger and fries! Great taste and fast delivery.",
	"The delivery was late and packaging was bad. Not happy.",
	"Quality is amazing. The price is fair. Support team was helpful.",
	"I hate the new app design, it's confusing.",
	"Pizza was okay, sauce was great, combo is value for money.",
	"Refund process was smooth. Appreciate the quick response.",
}

// NewSeedHandler returns an http.HandlerFunc for POST /api/v1/reviews/seed.
// Each demo review is scored and stored like a user submission.
func NewSeedHandler(st ReviewStore, scorer Scorer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		seeded := make([]models.Review, 0, len(demoTexts))
		for _, text := range demoTexts {
			review, err := st.CreateReview(r.Context(), text, scorer.Score(text))
			if err != nil {
				response.Error(w, http.StatusInternalServerError, "INTERNAL_ERROR",
					"An unexpected error occurred", nil)
				return
			}
			seeded = append(seeded, *review)
		}

		response.Created(w, seeded)
	}
}
