package dictionary

import (
	"encoding/json"

	"vocab/internal/domain"
)

// decodeEnglish parses the response shape used by dictionaryapi.dev: an
// array of entries, each with meanings grouped by part of speech. The first
// definition of every meaning is kept.
func decodeEnglish(body []byte) *domain.DefinitionRecord {
	var entries []struct {
		Phonetic string `json:"phonetic"`
		Meanings []struct {
			PartOfSpeech string `json:"partOfSpeech"`
			Definitions  []struct {
				Definition string `json:"definition"`
				Example    string `json:"example"`
			} `json:"definitions"`
		} `json:"meanings"`
	}
	if err := json.Unmarshal(body, &entries); err != nil || len(entries) == 0 {
		return nil
	}
	rec := &domain.DefinitionRecord{}
	for _, entry := range entries {
		if rec.Phonetic == "" {
			rec.Phonetic = entry.Phonetic
		}
		for _, m := range entry.Meanings {
			if len(m.Definitions) == 0 {
				continue
			}
			rec.Senses = append(rec.Senses, domain.Sense{
				PartOfSpeech: m.PartOfSpeech,
				Definition:   m.Definitions[0].Definition,
				Example:      m.Definitions[0].Example,
			})
		}
	}
	if len(rec.Senses) == 0 {
		return nil
	}
	return rec
}

// decodeChinese parses a CC-CEDICT style response: one object with a flat
// definitions list.
func decodeChinese(body []byte) *domain.DefinitionRecord {
	var entry struct {
		Definitions []struct {
			Definition string `json:"definition"`
			Example    string `json:"example"`
		} `json:"definitions"`
	}
	if err := json.Unmarshal(body, &entry); err != nil || len(entry.Definitions) == 0 {
		return nil
	}
	rec := &domain.DefinitionRecord{}
	for _, d := range entry.Definitions {
		rec.Senses = append(rec.Senses, domain.Sense{
			Definition: d.Definition,
			Example:    d.Example,
		})
	}
	return rec
}
