// Package tokenizer splits normalized text into candidate tokens.
package tokenizer

import (
	"fmt"
	"strings"

	"github.com/go-ego/gse"
)

// ChineseTokenizer segments Chinese text with a dictionary-driven gse
// segmenter in accurate (non-exhaustive) mode.
type ChineseTokenizer struct {
	seg gse.Segmenter
}

// NewChinese loads the embedded Simplified Chinese dictionary plus any extra
// user dictionaries. Loading is the slow part, so build one tokenizer per
// run and reuse it.
func NewChinese(dictPaths ...string) (*ChineseTokenizer, error) {
	t := &ChineseTokenizer{}
	if err := t.seg.LoadDictEmbed("zh"); err != nil {
		return nil, fmt.Errorf("load embedded zh dictionary: %w", err)
	}
	if len(dictPaths) > 0 {
		if err := t.seg.LoadDict(dictPaths...); err != nil {
			return nil, fmt.Errorf("load user dictionaries: %w", err)
		}
	}
	return t, nil
}

// Tokenize implements domain.Tokenizer. Whitespace segments emitted by the
// segmenter are dropped.
func (t *ChineseTokenizer) Tokenize(text string) []string {
	segs := t.seg.Cut(text, true)
	out := make([]string, 0, len(segs))
	for _, s := range segs {
		if strings.TrimSpace(s) == "" {
			continue
		}
		out = append(out, s)
	}
	return out
}
