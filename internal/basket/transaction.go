package basket

import "github.com/reviewlens/reviewlens/pkg/models"

// Transaction is the tag set derived from one review. It carries the
// originating review's ID so sentiment can be joined by identity rather than
// by position; reviews dropped for matching no tags therefore never shift
// the alignment of the ones that remain.
type Transaction struct {
	ReviewID int64
	Items    []string
}

// Build derives one Transaction per review whose content matches at least one
// vocabulary tag, preserving review order. Reviews with no matches are
// dropped. Returns an empty (never nil) slice for empty input.
func Build(extractor *Extractor, reviews []models.Review) []Transaction {
	transactions := make([]Transaction, 0, len(reviews))
	for _, review := range reviews {
		items := extractor.Extract(review.Content)
		if len(items) == 0 {
			continue
		}
		transactions = append(transactions, Transaction{
			ReviewID: review.ID,
			Items:    items,
		})
	}
	return transactions
}

// Contains reports whether the transaction includes every item in subset.
func (t Transaction) Contains(subset []string) bool {
	if len(subset) == 0 {
		return false
	}
	set := make(map[string]bool, len(t.Items))
	for _, item := range t.Items {
		set[item] = true
	}
	for _, item := range subset {
		if !set[item] {
			return false
		}
	}
	return true
}
