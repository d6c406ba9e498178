// Package extractor turns source files into raw text.
package extractor

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/asticode/go-astisub"
)

// UnreadableFileError reports a source file that could not be read or
// parsed. The pipeline skips such files instead of aborting the run.
type UnreadableFileError struct {
	Path string
	Err  error
}

func (e *UnreadableFileError) Error() string {
	return fmt.Sprintf("unreadable file %s: %v", e.Path, e.Err)
}

func (e *UnreadableFileError) Unwrap() error {
	return e.Err
}

// FileExtractor reads text from plain-text files, SubRip subtitles and Word
// documents, dispatching on the file extension. Unknown extensions are
// treated as plain text.
type FileExtractor struct{}

// New creates a FileExtractor.
func New() *FileExtractor {
	return &FileExtractor{}
}

// Extract implements domain.Extractor.
func (e *FileExtractor) Extract(path string) (string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".srt":
		return e.extractSubtitles(path)
	case ".docx":
		return e.extractDocx(path)
	default:
		return e.extractPlain(path)
	}
}

func (e *FileExtractor) extractPlain(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", &UnreadableFileError{Path: path, Err: err}
	}
	if !utf8.Valid(data) {
		return "", &UnreadableFileError{Path: path, Err: errors.New("not valid UTF-8")}
	}
	return string(data), nil
}

// extractSubtitles pulls the cue text out of a subtitle file, one line per
// cue line. Timing and numbering are discarded.
func (e *FileExtractor) extractSubtitles(path string) (string, error) {
	subs, err := astisub.OpenFile(path)
	if err != nil {
		return "", &UnreadableFileError{Path: path, Err: err}
	}
	var b strings.Builder
	for _, item := range subs.Items {
		for _, line := range item.Lines {
			text := strings.TrimSpace(line.String())
			if text == "" {
				continue
			}
			if b.Len() > 0 {
				b.WriteByte('\n')
			}
			b.WriteString(text)
		}
	}
	return b.String(), nil
}
