package sentiment

import (
	_ "embed"
	"strconv"
	"strings"
)

//go:embed lexicon.txt
var rawLexicon string

// defaultLexicon maps lowercase words to valences in [-4, 4], built once at init.
var defaultLexicon map[string]float64

func init() {
	defaultLexicon = parseLexicon(rawLexicon)
}

// parseLexicon parses tab-separated "word\tvalence" lines. Blank lines and
// lines starting with '#' are skipped, as are malformed entries.
func parseLexicon(raw string) map[string]float64 {
	m := make(map[string]float64, 128)
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || line[0] == '#' {
			continue
		}
		parts := strings.SplitN(line, "\t", 2)
		if len(parts) != 2 {
			continue
		}
		word := strings.ToLower(strings.TrimSpace(parts[0]))
		valence, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
		if err != nil {
			continue
		}
		m[word] = valence
	}
	return m
}
