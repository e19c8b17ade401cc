package app

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/urbanniche/taxoparse/internal/csvout"
	"github.com/urbanniche/taxoparse/internal/extract"
	"github.com/urbanniche/taxoparse/internal/htmldoc"
	"github.com/urbanniche/taxoparse/internal/schema"
	"github.com/urbanniche/taxoparse/internal/segment"
)

// Mode selects how the taxonomic order column is resolved.
type Mode int

const (
	// ModeTaxonomy parses a single-family file; the order comes from the
	// filename stem, or from the Order override.
	ModeTaxonomy Mode = iota
	// ModeCorpus parses a multi-family file; each card's order comes from
	// its enclosing family section.
	ModeCorpus
)

// Config carries one run's settings.
type Config struct {
	InputPath string
	// OutputPath overrides the conventional output name
	// (<stem>_birds.csv for taxonomy runs, birds_corpus.csv for corpus
	// runs).
	OutputPath string
	// SchemaPath optionally points at a YAML column-layout override.
	SchemaPath string
	// Order overrides the filename heuristic in taxonomy mode.
	Order string
}

// Species is one extracted card, kept for the run summary.
type Species struct {
	Code   string
	Fields extract.Fields
}

// Result reports what a run produced.
type Result struct {
	Species    []Species
	OutputPath string
	Columns    int
}

// OrderCount is one taxonomic order's share of a run.
type OrderCount struct {
	Order string
	Count int
	// Samples holds the first few species of the order, in document
	// order.
	Samples []Species
}

// Run executes one load, segment, extract, assemble, write pass over a
// single input file. Cards with missing fields still produce rows; zero
// cards produce a header-only CSV. Only input and output I/O can fail.
func Run(ctx context.Context, mode Mode, cfg Config) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	sch := schema.Default()
	if cfg.SchemaPath != "" {
		var err error
		if sch, err = schema.LoadFile(cfg.SchemaPath); err != nil {
			return nil, err
		}
	}

	doc, err := htmldoc.Load(cfg.InputPath)
	if err != nil {
		return nil, err
	}

	contextOrder := ""
	if mode == ModeTaxonomy {
		contextOrder = cfg.Order
		if contextOrder == "" {
			contextOrder = extract.OrderFromFilename(cfg.InputPath)
		}
	}

	var (
		species []Species
		rows    [][]string
	)
	for card := range segment.Cards(doc) {
		f := extract.FromCard(card, contextOrder)
		log.Debug().
			Str("speciesCode", card.SpeciesCode).
			Str("scientific", f.Scientific).
			Str("common", f.Common).
			Str("order", f.Order).
			Str("status", f.Status).
			Msg("card extracted")
		species = append(species, Species{Code: card.SpeciesCode, Fields: f})
		rows = append(rows, sch.Row(f))
	}
	if len(species) == 0 {
		log.Warn().Str("input", cfg.InputPath).Msg("no species cards found; writing header-only CSV")
	}

	out := cfg.OutputPath
	if out == "" {
		out = defaultOutput(mode, cfg.InputPath)
	}
	if err := csvout.WriteFile(out, sch.Columns, rows); err != nil {
		return nil, err
	}

	log.Info().
		Int("species", len(species)).
		Str("input", cfg.InputPath).
		Str("output", out).
		Msg("run complete")
	return &Result{Species: species, OutputPath: out, Columns: len(sch.Columns)}, nil
}

// OrderBreakdown groups a run's species by taxonomic order, in
// first-seen document order, keeping up to sampleCap sample species per
// order.
func (r *Result) OrderBreakdown(sampleCap int) []OrderCount {
	index := make(map[string]int)
	var out []OrderCount
	for _, s := range r.Species {
		i, ok := index[s.Fields.Order]
		if !ok {
			i = len(out)
			index[s.Fields.Order] = i
			out = append(out, OrderCount{Order: s.Fields.Order})
		}
		out[i].Count++
		if len(out[i].Samples) < sampleCap {
			out[i].Samples = append(out[i].Samples, s)
		}
	}
	return out
}

func defaultOutput(mode Mode, inputPath string) string {
	if mode == ModeCorpus {
		return "birds_corpus.csv"
	}
	base := filepath.Base(inputPath)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	return stem + "_birds.csv"
}
