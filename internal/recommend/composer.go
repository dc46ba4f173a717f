// Package recommend turns mined association rules and sentiment scores into
// customer-facing recommendations, and orchestrates the full analytics
// pipeline behind the recommendations endpoint.
package recommend

import (
	"math"
	"strings"

	"github.com/reviewlens/reviewlens/internal/basket"
	"github.com/reviewlens/reviewlens/internal/mining"
	"github.com/reviewlens/reviewlens/internal/sentiment"
	"github.com/reviewlens/reviewlens/pkg/models"
)

// Compose emits one Recommendation per (transaction, rule) pair where the
// rule's antecedent is a subset of the transaction's tags. Sentiment is
// joined by review ID.
//
// The sentiment split here is deliberately binary, matching the shipped
// behavior: a score above the positive threshold gets upsell phrasing and
// the "Positive" label; everything else, including the neutral band, gets
// improvement phrasing and the "Negative" label. The three-way labeling used
// for summaries does not apply to composed recommendations.
func Compose(transactions []basket.Transaction, scores map[int64]float64, rules []mining.Rule) []models.Recommendation {
	recommendations := []models.Recommendation{}
	for _, tx := range transactions {
		positive := scores[tx.ReviewID] > sentiment.PositiveThreshold
		for _, rule := range rules {
			if !tx.Contains(rule.Antecedent) {
				continue
			}
			consequent := strings.Join(rule.Consequent, ", ")
			rec := models.Recommendation{
				Rule:       strings.Join(rule.Antecedent, ", ") + " -> " + consequent,
				Support:    round3(rule.Support),
				Confidence: round3(rule.Confidence),
				Lift:       round3(rule.Lift),
			}
			if positive {
				rec.RecommendedProducts = consequent
				rec.Sentiment = "Positive"
			} else {
				rec.RecommendedProducts = "Consider improving " + consequent
				rec.Sentiment = "Negative"
			}
			recommendations = append(recommendations, rec)
		}
	}
	return recommendations
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}
