package main

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"vocab/internal/service"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true)
	rankStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	countStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	pronStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
	warnStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	statsStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// printSummary shows the run outcome in the terminal: where the report
// went, the ten most frequent words and the counters collected on the way.
func printSummary(w io.Writer, outputPath string, result *service.Result) {
	fmt.Fprintln(w, titleStyle.Render("Vocabulary report written to "+outputPath))

	limit := len(result.Entries)
	if limit > 10 {
		limit = 10
	}
	for i := 0; i < limit; i++ {
		e := result.Entries[i]
		line := fmt.Sprintf("%s %s %s",
			rankStyle.Render(fmt.Sprintf("%2d.", i+1)),
			e.Token,
			countStyle.Render(fmt.Sprintf("(%d)", e.Count)),
		)
		if e.Pronunciation != "" {
			line += " " + pronStyle.Render(e.Pronunciation)
		}
		fmt.Fprintln(w, line)
	}

	s := result.Stats
	fmt.Fprintln(w, statsStyle.Render(fmt.Sprintf(
		"files: %d processed, %d skipped | tokens kept: %d | distinct: %d | definitions: %d found, %d missing",
		s.FilesProcessed, len(s.Skipped), s.TokensKept, s.DistinctTokens, s.LookupHits, s.LookupMisses)))
	for _, sk := range s.Skipped {
		fmt.Fprintln(w, warnStyle.Render(fmt.Sprintf("skipped %s: %s", sk.Path, sk.Reason)))
	}
}
