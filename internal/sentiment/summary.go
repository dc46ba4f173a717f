package sentiment

// Summary holds review counts per sentiment label, in the fixed presentation
// order Positive, Neutral, Negative.
type Summary struct {
	Positive int `json:"Positive"`
	Neutral  int `json:"Neutral"`
	Negative int `json:"Negative"`
}

// Total returns the number of scores the summary was built from.
func (s Summary) Total() int {
	return s.Positive + s.Neutral + s.Negative
}

// Summarize labels each optional score with the three-way threshold rule and
// counts occurrences per label. Missing scores count as Neutral.
func Summarize(scores []*float64) Summary {
	var s Summary
	for _, score := range scores {
		switch LabelPtr(score) {
		case "Positive":
			s.Positive++
		case "Negative":
			s.Negative++
		default:
			s.Neutral++
		}
	}
	return s
}
