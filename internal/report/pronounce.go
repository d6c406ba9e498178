// Package report renders the enriched vocabulary ranking.
package report

import (
	"strings"

	"github.com/mozillazg/go-pinyin"

	"vocab/internal/domain"
)

// PinyinPronouncer renders numbered-tone pinyin for Chinese tokens, one
// syllable per character.
type PinyinPronouncer struct {
	args pinyin.Args
}

// NewPinyinPronouncer creates a PinyinPronouncer.
func NewPinyinPronouncer() *PinyinPronouncer {
	args := pinyin.NewArgs()
	args.Style = pinyin.Tone3
	return &PinyinPronouncer{args: args}
}

// Pronounce implements domain.Pronouncer. Pinyin is derived locally, so it
// works even when the dictionary had no entry.
func (p *PinyinPronouncer) Pronounce(token string, _ *domain.DefinitionRecord) string {
	syllables := pinyin.Pinyin(token, p.args)
	parts := make([]string, 0, len(syllables))
	for _, s := range syllables {
		if len(s) > 0 {
			parts = append(parts, s[0])
		}
	}
	return strings.Join(parts, " ")
}

// PhoneticPronouncer surfaces the phonetic transcription included in the
// dictionary record, when there is one.
type PhoneticPronouncer struct{}

// Pronounce implements domain.Pronouncer.
func (PhoneticPronouncer) Pronounce(_ string, rec *domain.DefinitionRecord) string {
	if rec == nil {
		return ""
	}
	return rec.Phonetic
}
