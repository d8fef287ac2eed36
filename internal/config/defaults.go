package config

const (
	defaultConfigPath      = "~/.config/topchart/config.toml"
	projectConfigName      = "topchart.toml"
	defaultSourceURL       = "https://www.imdb.com/chart/top/"
	defaultMaxTitles       = 250
	defaultUserAgent       = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36"
	defaultAcceptLanguage  = "en-US,en;q=0.5"
	defaultRequestTimeout  = 30
	defaultDataDir         = "~/.local/share/topchart"
	defaultPageCache       = "imdb_top250.html"
	defaultRecordsFile     = "records.json"
	defaultDatabase        = "imdb.db"
	defaultExportDir       = "exports"
	defaultLogDir          = "logs"
	defaultCorrelation     = "positional"
	defaultRatingThreshold = 9.0
	defaultPreviewTitles   = 10
	defaultPreviewRecords  = 5
	defaultLogFormat       = "console"
	defaultLogLevel        = "info"
	defaultLogRetention    = 30
)

// Environment overrides applied during normalization.
const (
	EnvSourceURL = "TOPCHART_SOURCE_URL"
	EnvMaxTitles = "TOPCHART_MAX_TITLES"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Source: Source{
			URL:            defaultSourceURL,
			MaxTitles:      defaultMaxTitles,
			UserAgent:      defaultUserAgent,
			AcceptLanguage: defaultAcceptLanguage,
			RequestTimeout: defaultRequestTimeout,
		},
		Paths: Paths{
			DataDir:     defaultDataDir,
			PageCache:   defaultPageCache,
			RecordsFile: defaultRecordsFile,
			Database:    defaultDatabase,
			ExportDir:   defaultExportDir,
			LogDir:      defaultLogDir,
		},
		Extraction: Extraction{
			Correlation: defaultCorrelation,
		},
		Report: Report{
			RatingThreshold: defaultRatingThreshold,
			PreviewTitles:   defaultPreviewTitles,
			PreviewRecords:  defaultPreviewRecords,
		},
		Logging: Logging{
			Format:        defaultLogFormat,
			Level:         defaultLogLevel,
			RetentionDays: defaultLogRetention,
		},
		Series: defaultSeries(),
	}
}

func defaultSeries() []Series {
	return []Series{
		{Title: "Breaking Bad", Year: 2008, Seasons: 5, Episodes: 62},
		{Title: "Game of Thrones", Year: 2011, Seasons: 8, Episodes: 73},
		{Title: "The Wire", Year: 2002, Seasons: 5, Episodes: 60},
	}
}
