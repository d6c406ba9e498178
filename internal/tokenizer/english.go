package tokenizer

import (
	"regexp"

	"github.com/kljensen/snowball"
)

// EnglishTokenizer scans for maximal runs of letters, digits and
// underscores. With stemming enabled, inflected forms fold into a shared
// stem before counting.
type EnglishTokenizer struct {
	pattern *regexp.Regexp
	stem    bool
}

// NewEnglish creates an EnglishTokenizer.
func NewEnglish(stem bool) *EnglishTokenizer {
	return &EnglishTokenizer{
		pattern: regexp.MustCompile(`[\p{L}\p{N}_]+`),
		stem:    stem,
	}
}

// Tokenize implements domain.Tokenizer.
func (t *EnglishTokenizer) Tokenize(text string) []string {
	words := t.pattern.FindAllString(text, -1)
	if !t.stem {
		return words
	}
	out := make([]string, 0, len(words))
	for _, w := range words {
		stemmed, err := snowball.Stem(w, "english", false)
		if err != nil || stemmed == "" {
			stemmed = w
		}
		out = append(out, stemmed)
	}
	return out
}
