// Package sentiment performs lexicon-based sentiment scoring of review text.
//
// The analyzer tokenizes input, looks each token up in a valence lexicon,
// applies negation and booster adjustments, and normalizes the summed valence
// into a compound score in [-1, 1]. Scoring is deterministic and never fails:
// empty or fully unknown text scores 0.
//
// All methods are safe for concurrent use.
package sentiment

import "math"

// Label thresholds. A compound score above PositiveThreshold is Positive,
// below NegativeThreshold is Negative, anything between is Neutral.
const (
	PositiveThreshold = 0.05
	NegativeThreshold = -0.05
)

// normalizationAlpha dampens the summed valence so that a handful of strong
// words approaches, but never reaches, +/-1.
const normalizationAlpha = 15.0

// negationDamp is the factor applied to a word's valence when a negator
// precedes it ("not happy" scores as dampened negative happy).
const negationDamp = -0.74

// boosterIncrement is the absolute valence added when an intensifier
// ("very", "really") directly precedes a sentiment-bearing word.
const boosterIncrement = 0.293

// negationWindow is how many tokens back a negator still applies.
const negationWindow = 3

var negators = map[string]bool{
	"not": true, "no": true, "never": true, "neither": true, "nor": true,
	"cannot": true, "can't": true, "don't": true, "dont": true,
	"doesn't": true, "doesnt": true, "didn't": true, "didnt": true,
	"isn't": true, "isnt": true, "wasn't": true, "wasnt": true,
	"won't": true, "wont": true, "wouldn't": true, "wouldnt": true,
}

var boosters = map[string]bool{
	"very": true, "really": true, "extremely": true, "absolutely": true,
	"incredibly": true, "totally": true, "truly": true,
}

// Analyzer scores text against an immutable valence lexicon.
type Analyzer struct {
	lexicon map[string]float64
}

// NewAnalyzer returns an Analyzer backed by the embedded english lexicon.
func NewAnalyzer() *Analyzer {
	return &Analyzer{lexicon: defaultLexicon}
}

// NewAnalyzerWithLexicon returns an Analyzer with a custom lexicon. The map
// is copied so later mutation by the caller has no effect.
func NewAnalyzerWithLexicon(lexicon map[string]float64) *Analyzer {
	m := make(map[string]float64, len(lexicon))
	for k, v := range lexicon {
		m[k] = v
	}
	return &Analyzer{lexicon: m}
}

// Score returns the compound sentiment score of text in [-1, 1].
func (a *Analyzer) Score(text string) float64 {
	tokens := tokenize(text)
	if len(tokens) == 0 {
		return 0
	}

	var sum float64
	for i, tok := range tokens {
		valence, ok := a.lexicon[tok]
		if !ok || valence == 0 {
			continue
		}
		if i > 0 && boosters[tokens[i-1]] {
			if valence > 0 {
				valence += boosterIncrement
			} else {
				valence -= boosterIncrement
			}
		}
		if negated(tokens, i) {
			valence *= negationDamp
		}
		sum += valence
	}

	return normalize(sum)
}

// Label maps a compound score to its three-way sentiment label.
func Label(score float64) string {
	switch {
	case score > PositiveThreshold:
		return "Positive"
	case score < NegativeThreshold:
		return "Negative"
	default:
		return "Neutral"
	}
}

// LabelPtr labels an optional score. A missing score is Neutral.
func LabelPtr(score *float64) string {
	if score == nil {
		return "Neutral"
	}
	return Label(*score)
}

// negated reports whether a negator occurs within negationWindow tokens
// before position i.
func negated(tokens []string, i int) bool {
	start := i - negationWindow
	if start < 0 {
		start = 0
	}
	for j := start; j < i; j++ {
		if negators[tokens[j]] {
			return true
		}
	}
	return false
}

// normalize maps an unbounded valence sum into (-1, 1).
func normalize(sum float64) float64 {
	score := sum / math.Sqrt(sum*sum+normalizationAlpha)
	if score > 1 {
		return 1
	}
	if score < -1 {
		return -1
	}
	return score
}
