package models

// Recommendation is one rule match against one review's transaction. The
// phrasing of RecommendedProducts depends on the review's sentiment polarity:
// positive reviews get an upsell, everything else an improvement suggestion.
type Recommendation struct {
	Rule                string  `json:"rule"`
	RecommendedProducts string  `json:"recommended_products"`
	Support             float64 `json:"support"`
	Confidence          float64 `json:"confidence"`
	Lift                float64 `json:"lift"`
	Sentiment           string  `json:"sentiment"`
}
