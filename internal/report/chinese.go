package report

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"vocab/internal/domain"
)

// maxChineseSenses caps how many definitions each entry shows.
const maxChineseSenses = 3

// ChineseWriter renders the study-list format used for Chinese vocabulary:
// the word with its count, numbered pinyin, up to three numbered definitions
// and their example sentences converted to Simplified.
type ChineseWriter struct {
	converter domain.Converter
}

// NewChinese creates a ChineseWriter. The converter simplifies example
// sentences, which dictionaries commonly return in Traditional script.
func NewChinese(converter domain.Converter) *ChineseWriter {
	return &ChineseWriter{converter: converter}
}

// Write implements domain.ReportWriter.
func (w *ChineseWriter) Write(out io.Writer, entries []domain.ReportEntry) error {
	bw := bufio.NewWriter(out)
	for _, e := range entries {
		fmt.Fprintf(bw, "\n汉字: %s (出现次数: %d)\n", e.Token, e.Count)
		fmt.Fprintf(bw, "拼音: %s\n", e.Pronunciation)
		if e.Record == nil || len(e.Record.Senses) == 0 {
			fmt.Fprintln(bw, "未找到词典定义")
		} else {
			senses := e.Record.Senses
			if len(senses) > maxChineseSenses {
				senses = senses[:maxChineseSenses]
			}
			for i, s := range senses {
				fmt.Fprintf(bw, "%d. %s\n", i+1, s.Definition)
				if s.Example == "" {
					continue
				}
				example := s.Example
				if converted, err := w.converter.Convert(example); err == nil {
					example = converted
				}
				fmt.Fprintf(bw, "   例句: %s\n", example)
			}
		}
		fmt.Fprintln(bw, strings.Repeat("-", 60))
	}
	return bw.Flush()
}
