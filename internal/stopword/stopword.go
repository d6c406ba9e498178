// Package stopword loads stopword lists and filters token streams with them.
package stopword

import (
	"bufio"
	"log/slog"
	"os"
	"strings"

	"vocab/internal/domain"
)

// Set is a lookup set of lowercased stopwords.
type Set map[string]struct{}

// NewSet builds a set from the given words. Words are lowercased so that
// English matching stays case-insensitive; CJK text is unaffected.
func NewSet(words ...string) Set {
	s := make(Set, len(words))
	for _, w := range words {
		w = strings.ToLower(strings.TrimSpace(w))
		if w == "" {
			continue
		}
		s[w] = struct{}{}
	}
	return s
}

// Contains reports whether the token is in the set.
func (s Set) Contains(token string) bool {
	_, ok := s[token]
	return ok
}

// Load reads a stopword file with one word per line. Blank lines and
// surrounding whitespace are ignored. A missing file is not an error: the
// run continues with an empty set and a warning.
func Load(path string) Set {
	f, err := os.Open(path)
	if err != nil {
		slog.Warn("stopword file not found, continuing without stopwords", "path", path, "err", err)
		return Set{}
	}
	defer f.Close()

	s := Set{}
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		w := strings.ToLower(strings.TrimSpace(scanner.Text()))
		if w == "" {
			continue
		}
		s[w] = struct{}{}
	}
	if err := scanner.Err(); err != nil {
		slog.Warn("stopword file read incompletely", "path", path, "err", err)
	}
	return s
}

// Builtin returns the built-in stopword list for a language, used when no
// stopword file is configured.
func Builtin(lang domain.Language) Set {
	switch lang {
	case domain.Chinese:
		return NewSet(
			"的", "了", "和", "着", "与", "是", "在", "有",
			"我们", "你们", "他们", "她们", "自己", "什么", "怎么",
			"一个", "没有", "因为", "所以", "如果", "但是", "就是",
			"还是", "或者", "已经", "现在", "时候", "这样", "那样",
		)
	case domain.English:
		return NewSet(
			"a", "an", "the", "and", "or", "but", "if", "then", "else", "for", "to", "of",
			"in", "on", "at", "by", "with", "as", "is", "are", "was", "were", "be", "been",
			"being", "it", "this", "that", "these", "those", "from", "up", "down", "over",
			"under", "again", "further", "than", "so", "such", "into", "about", "between",
			"through", "during", "before", "after", "above", "below", "out", "off", "own",
			"same", "too", "very", "can", "will", "just", "don", "should", "now",
		)
	default:
		return Set{}
	}
}
