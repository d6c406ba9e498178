package stopword

import "unicode/utf8"

// Filter drops stopwords, custom-filtered words and too-short tokens from a
// token stream while preserving the order of everything it keeps.
type Filter struct {
	stopwords Set
	custom    Set
	keep      Set
	minRunes  int
}

// NewChineseFilter builds the Chinese variant: single-character tokens are
// dropped unless listed in keep.
func NewChineseFilter(stopwords, custom, keep Set) *Filter {
	return &Filter{stopwords: stopwords, custom: custom, keep: keep, minRunes: 2}
}

// NewEnglishFilter builds the English variant, which keeps single-letter
// tokens unless they are stopwords.
func NewEnglishFilter(stopwords, custom Set) *Filter {
	return &Filter{stopwords: stopwords, custom: custom, keep: Set{}, minRunes: 1}
}

// Filter returns the tokens that survive all drop rules, in input order.
func (f *Filter) Filter(tokens []string) []string {
	out := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		if tok == "" {
			continue
		}
		if utf8.RuneCountInString(tok) < f.minRunes && !f.keep.Contains(tok) {
			continue
		}
		if f.stopwords.Contains(tok) || f.custom.Contains(tok) {
			continue
		}
		out = append(out, tok)
	}
	return out
}
