package frequency

import (
	"sort"

	"vocab/internal/domain"
)

// Table accumulates token counts across any number of files. Ties in the
// final ranking are broken by which token was counted first, so repeated
// runs over the same input produce the same report.
type Table struct {
	counts map[string]int
	seq    map[string]int
	next   int
}

// NewTable creates an empty frequency table.
func NewTable() *Table {
	return &Table{
		counts: make(map[string]int),
		seq:    make(map[string]int),
	}
}

// Add counts every token in order.
func (t *Table) Add(tokens []string) {
	for _, tok := range tokens {
		if _, seen := t.counts[tok]; !seen {
			t.seq[tok] = t.next
			t.next++
		}
		t.counts[tok]++
	}
}

// Len returns the number of distinct tokens counted so far.
func (t *Table) Len() int {
	return len(t.counts)
}

// Count returns the current count for a token, zero if never counted.
func (t *Table) Count(token string) int {
	return t.counts[token]
}

// Top returns the n most frequent tokens, most frequent first. Tokens with
// equal counts keep their first-encountered order. n larger than the number
// of distinct tokens returns them all; n of zero or less returns nothing.
func (t *Table) Top(n int) []domain.RankedEntry {
	if n <= 0 || len(t.counts) == 0 {
		return nil
	}
	entries := make([]domain.RankedEntry, 0, len(t.counts))
	for tok, c := range t.counts {
		entries = append(entries, domain.RankedEntry{Token: tok, Count: c})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Count != entries[j].Count {
			return entries[i].Count > entries[j].Count
		}
		return t.seq[entries[i].Token] < t.seq[entries[j].Token]
	})
	if n < len(entries) {
		entries = entries[:n]
	}
	return entries
}
