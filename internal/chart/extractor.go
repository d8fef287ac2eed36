package chart

import (
	"log/slog"

	"topchart/internal/logging"
)

// Extractor runs the extraction pipeline: sources in order until one yields
// entries, then year correlation, then backfill. It holds no mutable state
// and is safe for concurrent use.
type Extractor struct {
	sources    []Source
	correlator Correlator
	backfill   Backfill
	logger     *slog.Logger
}

// Option configures an Extractor.
type Option func(*Extractor)

// WithSources replaces the default source order.
func WithSources(sources ...Source) Option {
	return func(e *Extractor) {
		e.sources = append([]Source(nil), sources...)
	}
}

// WithCorrelator replaces the default positional correlator.
func WithCorrelator(c Correlator) Option {
	return func(e *Extractor) {
		if c != nil {
			e.correlator = c
		}
	}
}

// WithBackfill replaces the default known-title table.
func WithBackfill(b Backfill) Option {
	return func(e *Extractor) {
		e.backfill = b
	}
}

// WithLogger sets the logger used for debug diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Extractor) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// New builds an Extractor with the default sources, positional correlation and
// the default backfill table, then applies opts.
func New(opts ...Option) *Extractor {
	e := &Extractor{
		correlator: Positional{},
		backfill:   DefaultBackfill(),
		logger:     logging.NewNop(),
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.sources == nil {
		e.sources = []Source{StructuredData{Logger: e.logger}, Markup{}}
	}
	return e
}

// Titles returns up to max titles in rank order.
func (e *Extractor) Titles(html string, max int) []string {
	if max <= 0 {
		return []string{}
	}
	page, err := NewPage(html)
	if err != nil {
		e.logger.Debug("page parse failed", logging.Error(err))
		return []string{}
	}
	return Titles(e.collect(page, max))
}

// Records returns up to max records in rank order with years correlated and
// backfilled. Duplicate titles are kept; an empty result is not an error.
func (e *Extractor) Records(html string, max int) []Record {
	if max <= 0 {
		return []Record{}
	}
	page, err := NewPage(html)
	if err != nil {
		e.logger.Debug("page parse failed", logging.Error(err))
		return []Record{}
	}
	records := e.collect(page, max)
	if len(records) == 0 {
		return records
	}

	correlated := e.correlator.Correlate(page, records)
	patched := e.backfill.Apply(records)
	e.logger.Debug("records assembled",
		logging.Int("records", len(records)),
		logging.String(logging.FieldStrategy, e.correlator.Name()),
		logging.Int("correlated", correlated),
		logging.Int("backfilled", patched),
	)
	return records
}

func (e *Extractor) collect(page *Page, max int) []Record {
	for _, src := range e.sources {
		records := src.Extract(page, max)
		if len(records) == 0 {
			e.logger.Debug("source yielded no entries", logging.String(logging.FieldSource, src.Name()))
			continue
		}
		if len(records) > max {
			records = records[:max]
		}
		e.logger.Debug("source selected",
			logging.String(logging.FieldSource, src.Name()),
			logging.Int("entries", len(records)),
		)
		return records
	}
	return []Record{}
}
