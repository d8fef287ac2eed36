package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizeSource(); err != nil {
		return err
	}
	if err := c.normalizePaths(); err != nil {
		return err
	}
	c.normalizeExtraction()
	c.normalizeReport()
	c.normalizeLogging()
	c.normalizeSeries()
	return nil
}

func (c *Config) normalizeSource() error {
	if value, ok := os.LookupEnv(EnvSourceURL); ok && strings.TrimSpace(value) != "" {
		c.Source.URL = value
	}
	if value, ok := os.LookupEnv(EnvMaxTitles); ok && strings.TrimSpace(value) != "" {
		n, err := strconv.Atoi(strings.TrimSpace(value))
		if err != nil {
			return fmt.Errorf("%s: %w", EnvMaxTitles, err)
		}
		c.Source.MaxTitles = n
	}
	c.Source.URL = strings.TrimSpace(c.Source.URL)
	if c.Source.URL == "" {
		c.Source.URL = defaultSourceURL
	}
	c.Source.UserAgent = strings.TrimSpace(c.Source.UserAgent)
	if c.Source.UserAgent == "" {
		c.Source.UserAgent = defaultUserAgent
	}
	c.Source.AcceptLanguage = strings.TrimSpace(c.Source.AcceptLanguage)
	if c.Source.AcceptLanguage == "" {
		c.Source.AcceptLanguage = defaultAcceptLanguage
	}
	if c.Source.RequestTimeout <= 0 {
		c.Source.RequestTimeout = defaultRequestTimeout
	}
	return nil
}

func (c *Config) normalizePaths() error {
	var err error
	if strings.TrimSpace(c.Paths.DataDir) == "" {
		c.Paths.DataDir = defaultDataDir
	}
	if c.Paths.DataDir, err = expandPath(strings.TrimSpace(c.Paths.DataDir)); err != nil {
		return fmt.Errorf("paths.data_dir: %w", err)
	}

	fields := []struct {
		key      string
		value    *string
		fallback string
	}{
		{"paths.page_cache", &c.Paths.PageCache, defaultPageCache},
		{"paths.records_file", &c.Paths.RecordsFile, defaultRecordsFile},
		{"paths.database", &c.Paths.Database, defaultDatabase},
		{"paths.export_dir", &c.Paths.ExportDir, defaultExportDir},
		{"paths.log_dir", &c.Paths.LogDir, defaultLogDir},
	}
	for _, f := range fields {
		if strings.TrimSpace(*f.value) == "" {
			*f.value = f.fallback
		}
		if *f.value, err = resolveUnder(c.Paths.DataDir, *f.value); err != nil {
			return fmt.Errorf("%s: %w", f.key, err)
		}
	}
	return nil
}

func (c *Config) normalizeExtraction() {
	c.Extraction.Correlation = strings.ToLower(strings.TrimSpace(c.Extraction.Correlation))
	if c.Extraction.Correlation == "" {
		c.Extraction.Correlation = defaultCorrelation
	}
}

func (c *Config) normalizeReport() {
	if c.Report.PreviewTitles <= 0 {
		c.Report.PreviewTitles = defaultPreviewTitles
	}
	if c.Report.PreviewRecords <= 0 {
		c.Report.PreviewRecords = defaultPreviewRecords
	}
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	switch c.Logging.Format {
	case "", "console":
		c.Logging.Format = "console"
	case "json":
	default:
		c.Logging.Format = "console"
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
	if c.Logging.RetentionDays < 0 {
		c.Logging.RetentionDays = 0
	}
}

func (c *Config) normalizeSeries() {
	for i := range c.Series {
		c.Series[i].Title = strings.TrimSpace(c.Series[i].Title)
	}
}
