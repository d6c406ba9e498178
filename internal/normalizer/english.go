package normalizer

import "strings"

// EnglishNormalizer lowercases text so downstream matching is
// case-insensitive. Punctuation is left for the tokenizer to discard.
type EnglishNormalizer struct{}

// NewEnglish creates an EnglishNormalizer.
func NewEnglish() *EnglishNormalizer {
	return &EnglishNormalizer{}
}

// Normalize implements domain.Normalizer.
func (n *EnglishNormalizer) Normalize(text string) (string, error) {
	return strings.ToLower(text), nil
}
