// Package basket turns review text into market-basket transactions over a
// fixed product vocabulary.
package basket

import (
	"sort"
	"strings"
)

// DefaultVocabulary is the built-in set of product and attribute tags.
// Override via PRODUCT_VOCABULARY when the deployment covers a different
// catalog.
var DefaultVocabulary = []string{
	"delivery", "packaging", "taste", "quality", "price", "refund",
	"app", "support", "burger", "pizza", "fries", "sauce", "combo",
	"subscription", "drink", "beverage",
}

// Extractor matches a fixed, case-insensitive vocabulary of tags against
// free text. Safe for concurrent use once constructed.
type Extractor struct {
	vocabulary []string
}

// NewExtractor builds an Extractor over the given tags. Tags are lowercased
// and deduplicated; an empty slice falls back to DefaultVocabulary.
func NewExtractor(vocabulary []string) *Extractor {
	if len(vocabulary) == 0 {
		vocabulary = DefaultVocabulary
	}
	seen := make(map[string]bool, len(vocabulary))
	tags := make([]string, 0, len(vocabulary))
	for _, tag := range vocabulary {
		tag = strings.ToLower(strings.TrimSpace(tag))
		if tag == "" || seen[tag] {
			continue
		}
		seen[tag] = true
		tags = append(tags, tag)
	}
	sort.Strings(tags)
	return &Extractor{vocabulary: tags}
}

// Vocabulary returns the extractor's tags in sorted order.
func (e *Extractor) Vocabulary() []string {
	out := make([]string, len(e.vocabulary))
	copy(out, e.vocabulary)
	return out
}

// Extract returns the vocabulary tags occurring as substrings of the
// lowercased text, sorted and deduplicated. Texts matching nothing yield an
// empty (never nil) slice.
func (e *Extractor) Extract(text string) []string {
	lowered := strings.ToLower(text)
	found := make([]string, 0, 4)
	for _, tag := range e.vocabulary {
		if strings.Contains(lowered, tag) {
			found = append(found, tag)
		}
	}
	return found
}
