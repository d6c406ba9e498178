package service

import (
	"errors"
	"log/slog"
	"path/filepath"

	"vocab/internal/domain"
	"vocab/internal/frequency"
)

// ErrNoInput is returned when a run starts without any input files.
var ErrNoInput = errors.New("no input files provided")

// Pipeline wires the extraction stages into a batch run over input files.
// The stages are language-specific; the loop is not.
type Pipeline struct {
	extractor  domain.Extractor
	normalizer domain.Normalizer
	tokenizer  domain.Tokenizer
	filter     domain.TokenFilter
	enricher   domain.Enricher
	pronouncer domain.Pronouncer
	topN       int
}

// NewPipeline assembles a pipeline from its stages.
func NewPipeline(extractor domain.Extractor, normalizer domain.Normalizer, tokenizer domain.Tokenizer, filter domain.TokenFilter, enricher domain.Enricher, pronouncer domain.Pronouncer, topN int) *Pipeline {
	return &Pipeline{
		extractor:  extractor,
		normalizer: normalizer,
		tokenizer:  tokenizer,
		filter:     filter,
		enricher:   enricher,
		pronouncer: pronouncer,
		topN:       topN,
	}
}

// Result carries the enriched ranking and the run statistics.
type Result struct {
	Entries []domain.ReportEntry
	Stats   domain.RunStats
}

// Run processes the files in order and returns the enriched top-N ranking.
// A file that cannot be read or parsed is logged and skipped, so one bad
// file never loses the counts from the others. Glob patterns the shell did
// not expand are expanded here.
func (p *Pipeline) Run(paths []string) (*Result, error) {
	files := expandPaths(paths)
	if len(files) == 0 {
		return nil, ErrNoInput
	}

	table := frequency.NewTable()
	var stats domain.RunStats
	for _, path := range files {
		slog.Info("processing file", "path", path)
		tokens, err := p.processFile(path)
		if err != nil {
			slog.Warn("skipping file", "path", path, "err", err)
			stats.Skipped = append(stats.Skipped, domain.SkippedFile{Path: path, Reason: err.Error()})
			continue
		}
		table.Add(tokens)
		stats.FilesProcessed++
		stats.TokensKept += len(tokens)
	}
	stats.DistinctTokens = table.Len()

	ranked := table.Top(p.topN)
	entries := make([]domain.ReportEntry, 0, len(ranked))
	for _, r := range ranked {
		rec := p.enricher.Lookup(r.Token)
		if rec != nil {
			stats.LookupHits++
		} else {
			stats.LookupMisses++
		}
		entries = append(entries, domain.ReportEntry{
			RankedEntry:   r,
			Pronunciation: p.pronouncer.Pronounce(r.Token, rec),
			Record:        rec,
		})
	}
	return &Result{Entries: entries, Stats: stats}, nil
}

func (p *Pipeline) processFile(path string) ([]string, error) {
	text, err := p.extractor.Extract(path)
	if err != nil {
		return nil, err
	}
	normalized, err := p.normalizer.Normalize(text)
	if err != nil {
		return nil, err
	}
	return p.filter.Filter(p.tokenizer.Tokenize(normalized)), nil
}

// expandPaths resolves glob patterns, leaving plain paths untouched so a
// missing file is still reported against the name the user typed.
func expandPaths(paths []string) []string {
	var out []string
	for _, p := range paths {
		matches, _ := filepath.Glob(p)
		if matches == nil {
			matches = []string{p}
		}
		out = append(out, matches...)
	}
	return out
}
