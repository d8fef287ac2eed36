package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/gofrs/flock"
	"github.com/google/uuid"

	"topchart/internal/catalog"
	"topchart/internal/chart"
	"topchart/internal/config"
	"topchart/internal/fetch"
	"topchart/internal/logging"
)

var (
	// ErrNoTitles means the page yielded nothing, usually because the site
	// served a bot check instead of the chart.
	ErrNoTitles = errors.New("no titles found in page")
	// ErrLocked means another run holds the data directory lock.
	ErrLocked = errors.New("another topchart run is in progress")
)

// OriginRecords marks runs that reused the records file instead of a page.
const OriginRecords = "records"

// Options selects how a run sources its data.
type Options struct {
	// Fresh deletes the database before loading.
	Fresh bool
	// ReuseRecords loads the records file when it exists and skips extraction.
	ReuseRecords bool
	// Offline never touches the network.
	Offline bool
}

// Result summarizes a completed run.
type Result struct {
	RunID          string
	Origin         string
	Strategy       string
	Titles         []string
	Records        []chart.Record
	Movies         []catalog.Movie
	Series         []catalog.Series
	MoviesInserted int
	SeriesInserted int
	Duration       time.Duration
}

// Runner executes scrape runs for one configuration.
type Runner struct {
	cfg        *config.Config
	logger     *slog.Logger
	fetcher    fetch.Fetcher
	correlator chart.Correlator
	extractor  *chart.Extractor
	now        func() time.Time
}

// Option customizes a Runner.
type Option func(*Runner)

// WithLogger sets the logger; runs tag it with their run id.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Runner) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// WithFetcher replaces the HTTP client.
func WithFetcher(f fetch.Fetcher) Option {
	return func(r *Runner) {
		if f != nil {
			r.fetcher = f
		}
	}
}

// WithClock overrides time.Now for run timestamps.
func WithClock(now func() time.Time) Option {
	return func(r *Runner) {
		if now != nil {
			r.now = now
		}
	}
}

// New builds a Runner from cfg.
func New(cfg *config.Config, opts ...Option) (*Runner, error) {
	if cfg == nil {
		return nil, errors.New("pipeline requires a config")
	}
	correlator, err := chart.ParseCorrelation(cfg.Extraction.Correlation)
	if err != nil {
		return nil, err
	}

	r := &Runner{
		cfg:        cfg,
		logger:     logging.NewNop(),
		correlator: correlator,
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.fetcher == nil {
		r.fetcher = fetch.NewClient(fetch.Options{
			UserAgent:      cfg.Source.UserAgent,
			AcceptLanguage: cfg.Source.AcceptLanguage,
			Timeout:        time.Duration(cfg.Source.RequestTimeout) * time.Second,
			Logger:         logging.NewComponentLogger(r.logger, "fetch"),
		})
	}
	r.extractor = chart.New(
		chart.WithCorrelator(correlator),
		chart.WithLogger(logging.NewComponentLogger(r.logger, "chart")),
	)
	return r, nil
}

// Extractor exposes the configured engine for callers that only preview a page.
func (r *Runner) Extractor() *chart.Extractor {
	return r.extractor
}

// LoadPage returns the listing page from the page cache, downloading and
// caching it on a miss unless offline is set.
func (r *Runner) LoadPage(ctx context.Context, offline bool) (string, fetch.Origin, error) {
	loader := fetch.Loader{
		Cache:   fetch.PageCache{Path: r.cfg.Paths.PageCache},
		Fetcher: r.fetcher,
		Logger:  logging.WithContext(ctx, logging.NewComponentLogger(r.logger, "fetch")),
	}
	html, origin, err := loader.LoadOrFetch(ctx, r.cfg.Source.URL, offline)
	if err != nil {
		return "", "", fmt.Errorf("load page: %w", err)
	}
	return html, origin, nil
}

// Run performs one scrape and load.
func (r *Runner) Run(ctx context.Context, opts Options) (*Result, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	runID := uuid.NewString()
	ctx = logging.ContextWithRunID(ctx, runID)
	logger := logging.WithContext(ctx, logging.NewComponentLogger(r.logger, "pipeline"))

	if err := r.cfg.EnsureDirectories(); err != nil {
		return nil, err
	}
	lock := flock.New(r.cfg.LockPath())
	ok, err := lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("acquire lock: %w", err)
	}
	if !ok {
		return nil, fmt.Errorf("%w (lock %s)", ErrLocked, r.cfg.LockPath())
	}
	defer func() { _ = lock.Unlock() }()

	started := r.now()
	res := &Result{RunID: runID, Strategy: r.correlator.Name()}
	logger.Info("run started",
		logging.String("source_url", r.cfg.Source.URL),
		logging.Bool("fresh", opts.Fresh),
		logging.Bool("reuse_records", opts.ReuseRecords),
		logging.Bool("offline", opts.Offline),
	)

	if err := r.acquire(ctx, logger, opts, res); err != nil {
		return nil, err
	}
	if err := r.load(ctx, logger, opts, res, started); err != nil {
		return nil, err
	}

	res.Duration = r.now().Sub(started)
	logger.Info("run completed",
		logging.String("origin", res.Origin),
		logging.Int("titles", len(res.Titles)),
		logging.Int("records", len(res.Records)),
		logging.Int("movies_inserted", res.MoviesInserted),
		logging.Int("series_inserted", res.SeriesInserted),
		logging.Duration("duration", res.Duration),
	)
	return res, nil
}

// acquire fills the titles and records of res from the records file or the
// listing page.
func (r *Runner) acquire(ctx context.Context, logger *slog.Logger, opts Options, res *Result) error {
	recordsPath := r.cfg.Paths.RecordsFile
	if opts.ReuseRecords {
		records, ok, err := ReadRecords(recordsPath)
		if err != nil {
			return err
		}
		if ok {
			logger.Info("reusing records file", logging.String("path", recordsPath), logging.Int("records", len(records)))
			res.Origin = OriginRecords
			res.Records = records
			res.Titles = chart.Titles(records)
			return nil
		}
		logger.Debug("records file missing, extracting", logging.String("path", recordsPath))
	}

	html, origin, err := r.LoadPage(ctx, opts.Offline)
	if err != nil {
		return err
	}
	res.Origin = string(origin)

	limit := r.cfg.Source.MaxTitles
	res.Titles = r.extractor.Titles(html, limit)
	if len(res.Titles) == 0 {
		logging.WarnWithContext(logger, "no titles extracted", "no_titles",
			logging.String(logging.FieldErrorHint, "save the chart page from a browser to the page cache path and rerun"),
			logging.String(logging.FieldImpact, "run aborted"),
			logging.String("page_cache", r.cfg.Paths.PageCache),
		)
		return fmt.Errorf("%w: save the page manually as %s and run again", ErrNoTitles, r.cfg.Paths.PageCache)
	}
	res.Records = r.extractor.Records(html, limit)

	if err := WriteRecords(recordsPath, res.Records); err != nil {
		return err
	}
	logger.Info("records written", logging.String("path", recordsPath), logging.Int("records", len(res.Records)))
	return nil
}

// load writes the catalog and the run history entry.
func (r *Runner) load(ctx context.Context, logger *slog.Logger, opts Options, res *Result, started time.Time) error {
	open := catalog.Open
	if opts.Fresh {
		open = catalog.OpenFresh
	}
	store, err := open(r.cfg.Paths.Database)
	if err != nil {
		return err
	}
	defer store.Close()

	inserted, err := store.InsertMovies(ctx, res.Records)
	if err != nil {
		return err
	}
	res.MoviesInserted = inserted
	if skipped := len(res.Records) - len(catalog.MoviesFromRecords(res.Records)); skipped > 0 {
		logger.Debug("records without year or rating not stored", logging.Int("skipped", skipped))
	}

	for _, s := range SeriesFromConfig(r.cfg.Series) {
		ok, err := store.InsertSeries(ctx, s)
		if err != nil {
			return err
		}
		if ok {
			res.SeriesInserted++
		}
	}

	if res.Movies, err = store.Movies(ctx); err != nil {
		return err
	}
	if res.Series, err = store.Series(ctx); err != nil {
		return err
	}

	run := catalog.Run{
		ID:             res.RunID,
		StartedAt:      started,
		FinishedAt:     r.now(),
		SourceURL:      r.cfg.Source.URL,
		Origin:         res.Origin,
		Strategy:       res.Strategy,
		Titles:         len(res.Titles),
		Records:        len(res.Records),
		MoviesInserted: res.MoviesInserted,
		SeriesInserted: res.SeriesInserted,
	}
	return store.RecordRun(ctx, run)
}

// SeriesFromConfig converts configured series into catalog entries.
func SeriesFromConfig(entries []config.Series) []catalog.Series {
	out := make([]catalog.Series, 0, len(entries))
	for _, e := range entries {
		title := strings.TrimSpace(e.Title)
		if title == "" {
			continue
		}
		out = append(out, catalog.Series{
			Title:    title,
			Year:     e.Year,
			Seasons:  e.Seasons,
			Episodes: e.Episodes,
		})
	}
	return out
}
