package report

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"vocab/internal/domain"
)

// EnglishWriter renders the study-list format used for English vocabulary:
// the word with its count, its phonetic transcription when known and one
// block per part of speech.
type EnglishWriter struct{}

// NewEnglish creates an EnglishWriter.
func NewEnglish() *EnglishWriter {
	return &EnglishWriter{}
}

// Write implements domain.ReportWriter.
func (w *EnglishWriter) Write(out io.Writer, entries []domain.ReportEntry) error {
	bw := bufio.NewWriter(out)
	for _, e := range entries {
		fmt.Fprintf(bw, "\nWord: %s (Frequency: %d)\n", e.Token, e.Count)
		if e.Pronunciation != "" {
			fmt.Fprintf(bw, "Phonetic: %s\n", e.Pronunciation)
		}
		if e.Record == nil || len(e.Record.Senses) == 0 {
			fmt.Fprintln(bw, "No definition found")
		} else {
			for _, s := range e.Record.Senses {
				fmt.Fprintf(bw, "Part of Speech: %s\n", s.PartOfSpeech)
				fmt.Fprintf(bw, "Definition: %s\n", s.Definition)
				if s.Example != "" {
					fmt.Fprintf(bw, "Example: %s\n", s.Example)
				}
				fmt.Fprintln(bw)
			}
		}
		fmt.Fprintln(bw, strings.Repeat("-", 50))
	}
	return bw.Flush()
}
