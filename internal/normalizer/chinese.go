// Package normalizer prepares extracted text for tokenization.
package normalizer

import (
	"fmt"
	"strings"

	"golang.org/x/text/unicode/norm"

	"vocab/internal/domain"
)

// CJK Unified Ideographs block.
const (
	cjkFirst = 0x4E00
	cjkLast  = 0x9FFF
)

// ChineseNormalizer folds Unicode compatibility forms, converts Traditional
// characters to Simplified and blanks out everything that is not a CJK
// ideograph. Conversion runs before the range filter so Traditional-only
// characters are still mapped rather than dropped.
type ChineseNormalizer struct {
	converter domain.Converter
}

// NewChinese creates a ChineseNormalizer backed by the given converter.
func NewChinese(converter domain.Converter) *ChineseNormalizer {
	return &ChineseNormalizer{converter: converter}
}

// Normalize implements domain.Normalizer.
func (n *ChineseNormalizer) Normalize(text string) (string, error) {
	folded := norm.NFKC.String(text)
	simplified, err := n.converter.Convert(folded)
	if err != nil {
		return "", fmt.Errorf("convert traditional to simplified: %w", err)
	}
	var b strings.Builder
	b.Grow(len(simplified))
	for _, r := range simplified {
		if r >= cjkFirst && r <= cjkLast {
			b.WriteRune(r)
		} else {
			b.WriteByte(' ')
		}
	}
	return b.String(), nil
}
