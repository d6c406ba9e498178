package domain

import "io"

// Language selects which pipeline variant is assembled at startup.
type Language string

const (
	Chinese Language = "chinese"
	English Language = "english"
)

// RankedEntry is one row of the frequency ranking.
type RankedEntry struct {
	Token string
	Count int
}

// Sense is a single dictionary meaning: part of speech, definition
// text and an optional usage example.
type Sense struct {
	PartOfSpeech string
	Definition   string
	Example      string
}

// DefinitionRecord holds the dictionary data returned for one token.
// A nil record means the dictionary had nothing for the token.
type DefinitionRecord struct {
	Phonetic string
	Senses   []Sense
}

// ReportEntry pairs a ranked token with its display pronunciation and
// dictionary record, ready for rendering.
type ReportEntry struct {
	RankedEntry
	Pronunciation string
	Record        *DefinitionRecord
}

// SkippedFile records a source file that was dropped from the run.
type SkippedFile struct {
	Path   string
	Reason string
}

// RunStats summarizes a batch run for the terminal report.
type RunStats struct {
	FilesProcessed int
	Skipped        []SkippedFile
	TokensKept     int
	DistinctTokens int
	LookupHits     int
	LookupMisses   int
}

// Extractor reads a source file and returns its raw text content.
type Extractor interface {
	Extract(path string) (string, error)
}

// Normalizer prepares raw text for tokenization.
type Normalizer interface {
	Normalize(text string) (string, error)
}

// Converter maps Traditional Chinese text to Simplified.
type Converter interface {
	Convert(text string) (string, error)
}

// Tokenizer splits normalized text into candidate tokens.
type Tokenizer interface {
	Tokenize(text string) []string
}

// TokenFilter drops noise and stopword tokens, preserving order.
type TokenFilter interface {
	Filter(tokens []string) []string
}

// Enricher fetches dictionary data for a token. A nil record means no
// definition was found; lookups never fail the run.
type Enricher interface {
	Lookup(token string) *DefinitionRecord
}

// Pronouncer derives a display pronunciation for a ranked token.
// rec may be nil when the dictionary had no entry.
type Pronouncer interface {
	Pronounce(token string, rec *DefinitionRecord) string
}

// ReportWriter renders the enriched ranking to w.
type ReportWriter interface {
	Write(w io.Writer, entries []ReportEntry) error
}
