// Package mining implements Apriori frequent-itemset mining and association
// rule derivation over tag transactions.
//
// Mining is a pure batch computation: the same transaction multiset and
// thresholds always produce the same itemsets and rules, regardless of input
// ordering. Empty inputs produce empty results, never errors.
package mining

import (
	"sort"
	"strings"
)

// Default thresholds, matching the product defaults: itemsets must appear in
// at least 10% of transactions, rules must have lift of at least 1.
const (
	DefaultMinSupport = 0.1
	DefaultMinLift    = 1.0
)

// Config holds mining thresholds. Zero values fall back to the defaults.
type Config struct {
	MinSupport float64
	MinLift    float64
}

// Itemset is a frequent set of tags with its support, the fraction of
// transactions containing every tag in the set.
type Itemset struct {
	Items   []string `json:"items"`
	Support float64  `json:"support"`
}

// Rule is an association rule between two disjoint, non-empty tag sets.
type Rule struct {
	Antecedent []string `json:"antecedent"`
	Consequent []string `json:"consequent"`
	Support    float64  `json:"support"`
	Confidence float64  `json:"confidence"`
	Lift       float64  `json:"lift"`
}

// Result holds one mining run's output. Itemsets are ordered by size then
// lexically; rules by descending lift, then antecedent, then consequent.
type Result struct {
	Itemsets []Itemset
	Rules    []Rule
}

// Miner runs Apriori with a fixed configuration. Safe for concurrent use.
type Miner struct {
	minSupport float64
	minLift    float64
}

// NewMiner creates a Miner. Non-positive thresholds fall back to defaults.
func NewMiner(cfg Config) *Miner {
	if cfg.MinSupport <= 0 {
		cfg.MinSupport = DefaultMinSupport
	}
	if cfg.MinLift <= 0 {
		cfg.MinLift = DefaultMinLift
	}
	return &Miner{minSupport: cfg.MinSupport, minLift: cfg.MinLift}
}

// Mine computes frequent itemsets over the transactions and derives the
// association rules whose lift clears the configured threshold.
func (m *Miner) Mine(transactions [][]string) Result {
	result := Result{Itemsets: []Itemset{}, Rules: []Rule{}}
	if len(transactions) == 0 {
		return result
	}

	sets := make([]map[string]bool, len(transactions))
	for i, tx := range transactions {
		set := make(map[string]bool, len(tx))
		for _, item := range tx {
			set[item] = true
		}
		sets[i] = set
	}
	total := float64(len(transactions))

	// L1: frequent single items.
	counts := make(map[string]int)
	for _, set := range sets {
		for item := range set {
			counts[item]++
		}
	}
	var level [][]string
	support := make(map[string]float64)
	for item, count := range counts {
		s := float64(count) / total
		if s >= m.minSupport {
			level = append(level, []string{item})
			support[key([]string{item})] = s
		}
	}
	sortItemsets(level)
	frequent := append([][]string{}, level...)

	// Higher levels: join, prune, count.
	for len(level) > 0 {
		candidates := generateCandidates(level)
		var next [][]string
		for _, candidate := range candidates {
			if !allSubsetsFrequent(candidate, support) {
				continue
			}
			count := 0
			for _, set := range sets {
				if containsAll(set, candidate) {
					count++
				}
			}
			s := float64(count) / total
			if s >= m.minSupport {
				next = append(next, candidate)
				support[key(candidate)] = s
			}
		}
		sortItemsets(next)
		frequent = append(frequent, next...)
		level = next
	}

	for _, items := range frequent {
		result.Itemsets = append(result.Itemsets, Itemset{
			Items:   items,
			Support: support[key(items)],
		})
	}

	result.Rules = m.deriveRules(frequent, support)
	return result
}

// deriveRules splits each frequent itemset of size two or more into every
// antecedent/consequent partition and keeps rules clearing the lift threshold.
func (m *Miner) deriveRules(frequent [][]string, support map[string]float64) []Rule {
	rules := []Rule{}
	for _, items := range frequent {
		n := len(items)
		if n < 2 {
			continue
		}
		itemsetSupport := support[key(items)]
		// Bitmask over items: each non-empty proper subset is an antecedent.
		for mask := 1; mask < (1<<n)-1; mask++ {
			var antecedent, consequent []string
			for i := 0; i < n; i++ {
				if mask&(1<<i) != 0 {
					antecedent = append(antecedent, items[i])
				} else {
					consequent = append(consequent, items[i])
				}
			}
			confidence := itemsetSupport / support[key(antecedent)]
			lift := confidence / support[key(consequent)]
			if lift < m.minLift {
				continue
			}
			rules = append(rules, Rule{
				Antecedent: antecedent,
				Consequent: consequent,
				Support:    itemsetSupport,
				Confidence: confidence,
				Lift:       lift,
			})
		}
	}

	sort.Slice(rules, func(i, j int) bool {
		if rules[i].Lift != rules[j].Lift {
			return rules[i].Lift > rules[j].Lift
		}
		ai, aj := key(rules[i].Antecedent), key(rules[j].Antecedent)
		if ai != aj {
			return ai < aj
		}
		return key(rules[i].Consequent) < key(rules[j].Consequent)
	})
	return rules
}

// generateCandidates joins k-itemsets sharing a (k-1)-prefix into (k+1)-item
// candidates. Input itemsets must be sorted, which sortItemsets guarantees.
func generateCandidates(level [][]string) [][]string {
	var candidates [][]string
	for i := 0; i < len(level); i++ {
		for j := i + 1; j < len(level); j++ {
			a, b := level[i], level[j]
			k := len(a)
			if !samePrefix(a, b, k-1) {
				continue
			}
			candidate := make([]string, k+1)
			copy(candidate, a)
			candidate[k] = b[k-1]
			if candidate[k-1] > candidate[k] {
				candidate[k-1], candidate[k] = candidate[k], candidate[k-1]
			}
			candidates = append(candidates, candidate)
		}
	}
	return candidates
}

// allSubsetsFrequent applies the Apriori pruning step: every (k-1)-subset of
// a candidate must itself be frequent.
func allSubsetsFrequent(candidate []string, support map[string]float64) bool {
	if len(candidate) <= 2 {
		return true
	}
	subset := make([]string, 0, len(candidate)-1)
	for skip := range candidate {
		subset = subset[:0]
		for i, item := range candidate {
			if i != skip {
				subset = append(subset, item)
			}
		}
		if _, ok := support[key(subset)]; !ok {
			return false
		}
	}
	return true
}

func containsAll(set map[string]bool, items []string) bool {
	for _, item := range items {
		if !set[item] {
			return false
		}
	}
	return true
}

func samePrefix(a, b []string, n int) bool {
	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// key canonicalizes an itemset for support lookups. Items inside stored
// itemsets are always sorted; antecedent/consequent slices from the bitmask
// split preserve that order.
func key(items []string) string {
	return strings.Join(items, "\x1f")
}

func sortItemsets(itemsets [][]string) {
	for _, items := range itemsets {
		sort.Strings(items)
	}
	sort.Slice(itemsets, func(i, j int) bool {
		return key(itemsets[i]) < key(itemsets[j])
	})
}
