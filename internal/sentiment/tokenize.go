package sentiment

import (
	"strings"
	"unicode"
)

// tokenize lowercases text and splits it into word tokens. Apostrophes are
// kept inside words so contractions like "don't" survive as single tokens.
func tokenize(text string) []string {
	text = strings.ToLower(text)
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '\'' || r == '’' {
			if r == '’' {
				r = '\''
			}
			b.WriteRune(r)
		} else {
			b.WriteByte(' ')
		}
	}
	fields := strings.Fields(b.String())
	for i, f := range fields {
		fields[i] = strings.Trim(f, "'")
	}
	return fields
}
