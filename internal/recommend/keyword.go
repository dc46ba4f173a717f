package recommend

import (
	"math/rand"
	"strings"
	"sync"
)

// FallbackMessage is returned for reviews matching none of the keyword lists.
const FallbackMessage = "Thank you for your feedback! We're always looking to improve."

// KeywordConfig holds the keyword lists and template pools for the simple
// recommendation composer. Treat as immutable once a composer is built.
type KeywordConfig struct {
	PositiveKeywords []string
	NegativeKeywords []string
	NeutralKeywords  []string

	PositiveTemplates []string
	NegativeTemplates []string
	NeutralTemplates  []string
}

// DefaultKeywordConfig returns the built-in keyword lists and template pools.
func DefaultKeywordConfig() KeywordConfig {
	return KeywordConfig{
		PositiveKeywords: []string{
			"good", "like", "love", "wonderful", "super", "amazing",
			"marvellous", "surprised", "great", "excellent", "fantastic",
			"awesome", "perfect",
		},
		NegativeKeywords: []string{
			"hate", "bad", "poor", "disgusting", "waste", "not happy",
			"don't like", "disappointed", "awful", "not satisfied", "horrible",
			"terrible", "worst",
		},
		NeutralKeywords: []string{
			"okay", "average", "fine", "moderate", "fair", "sufficient",
			"normal", "acceptable", "regular", "standard", "routine",
			"usual", "ordinary", "typical", "not sure", "perhaps", "maybe",
			"decent", "not bad", "satisfactory",
		},
		PositiveTemplates: []string{
			"It's great to see your positive experience! We recommend trying our new flavors as well; they're fantastic!",
			"Since you enjoyed this product, you might also like our complementary items that enhance the experience!",
			"We're glad you loved this! You should check out our loyalty deals for even better value!",
			"Glad to hear you're satisfied! Don't miss our upcoming promotions that might interest you.",
			"Based on your positive review, you might enjoy our subscription service for regular deliveries!",
		},
		NegativeTemplates: []string{
			"We appreciate your feedback! Please reach out to our customer service for immediate assistance.",
			"Thanks for sharing your experience. Our troubleshooting guide might offer a quick solution.",
			"Sorry to hear that! Check our FAQs for tips that can help resolve it quickly.",
			"Thanks for your honesty! Stay tuned — we're actively improving this area.",
			"We value your input. Our customer care can offer personalized support.",
			"We're sorry about the experience. Please try our latest update — we're continually improving.",
		},
		NeutralTemplates: []string{
			"Thanks for your balanced feedback! We're working on making things even better.",
			"We appreciate your input. Do check back soon — improvements are always ongoing.",
			"Your thoughts are valuable. Stay tuned for upcoming updates that may enhance your experience.",
			"Thanks for the fair review! We'd love to hear more details to help us improve.",
			"We're glad things were okay! We aim to make them great next time.",
		},
	}
}

// KeywordComposer classifies review texts by keyword lists and answers with a
// randomly chosen template for the matched class. Randomness is injected so
// tests can seed it; selection is random but always drawn from the class's
// fixed pool. Safe for concurrent use.
type KeywordComposer struct {
	cfg KeywordConfig

	mu  sync.Mutex
	rng *rand.Rand
}

// NewKeywordComposer builds a composer from cfg and a seeded random source.
func NewKeywordComposer(cfg KeywordConfig, rng *rand.Rand) *KeywordComposer {
	return &KeywordComposer{cfg: cfg, rng: rng}
}

// Compose returns one recommendation string per review text. Classification
// checks positive keywords first, then negative, then neutral; unmatched
// texts get the fixed fallback message.
func (c *KeywordComposer) Compose(texts []string) []string {
	out := make([]string, len(texts))
	for i, text := range texts {
		lowered := strings.ToLower(text)
		switch {
		case containsAny(lowered, c.cfg.PositiveKeywords):
			out[i] = c.pick(c.cfg.PositiveTemplates)
		case containsAny(lowered, c.cfg.NegativeKeywords):
			out[i] = c.pick(c.cfg.NegativeTemplates)
		case containsAny(lowered, c.cfg.NeutralKeywords):
			out[i] = c.pick(c.cfg.NeutralTemplates)
		default:
			out[i] = FallbackMessage
		}
	}
	return out
}

func (c *KeywordComposer) pick(pool []string) string {
	if len(pool) == 0 {
		return FallbackMessage
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	return pool[c.rng.Intn(len(pool))]
}

func containsAny(text string, keywords []string) bool {
	for _, keyword := range keywords {
		if strings.Contains(text, keyword) {
			return true
		}
	}
	return false
}
