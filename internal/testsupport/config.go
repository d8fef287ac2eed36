package testsupport

import (
	"path/filepath"
	"testing"

	"topchart/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*configBuilder)

type configBuilder struct {
	t       testing.TB
	baseDir string
	cfg     *config.Config
}

// NewConfig produces a config whose artifact paths all live in a unique temp
// directory per test. It applies any provided options.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfgVal := config.Default()
	cfgVal.Source.URL = "http://127.0.0.1:0/chart/top/"
	cfgVal.Paths.DataDir = base
	cfgVal.Paths.PageCache = filepath.Join(base, "imdb_top250.html")
	cfgVal.Paths.RecordsFile = filepath.Join(base, "records.json")
	cfgVal.Paths.Database = filepath.Join(base, "imdb.db")
	cfgVal.Paths.ExportDir = filepath.Join(base, "exports")
	cfgVal.Paths.LogDir = ""
	cfgVal.Logging.RetentionDays = 0

	builder := &configBuilder{
		t:       t,
		baseDir: base,
		cfg:     &cfgVal,
	}

	for _, opt := range opts {
		opt(builder)
	}

	return builder.cfg
}

// WithSourceURL points the config at a test server.
func WithSourceURL(url string) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Source.URL = url
	}
}

// WithCorrelation selects the year correlation strategy.
func WithCorrelation(name string) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Extraction.Correlation = name
	}
}

// WithSeries replaces the configured series list.
func WithSeries(series ...config.Series) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Series = append([]config.Series(nil), series...)
	}
}

// WithMaxTitles caps extraction.
func WithMaxTitles(n int) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Source.MaxTitles = n
	}
}

// BaseDir returns the root temp directory backing the generated config.
func BaseDir(cfg *config.Config) string {
	return cfg.Paths.DataDir
}
