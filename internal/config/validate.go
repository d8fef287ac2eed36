package config

import (
	"errors"
	"fmt"
	"net/url"
)

const (
	minSeriesYear = 1900
	maxSeriesYear = 2100
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateSource(); err != nil {
		return err
	}
	if err := c.validateExtraction(); err != nil {
		return err
	}
	if err := c.validateReport(); err != nil {
		return err
	}
	if err := c.validateLogging(); err != nil {
		return err
	}
	if err := c.validateSeries(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validateSource() error {
	parsed, err := url.Parse(c.Source.URL)
	if err != nil {
		return fmt.Errorf("source.url: %w", err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return fmt.Errorf("source.url must be an http(s) URL, got %q", c.Source.URL)
	}
	if parsed.Host == "" {
		return fmt.Errorf("source.url must include a host, got %q", c.Source.URL)
	}
	if c.Source.MaxTitles <= 0 {
		return errors.New("source.max_titles must be positive")
	}
	if c.Source.RequestTimeout <= 0 {
		return errors.New("source.request_timeout must be positive (seconds)")
	}
	return nil
}

func (c *Config) validateExtraction() error {
	switch c.Extraction.Correlation {
	case "positional", "structural":
		return nil
	default:
		return fmt.Errorf("extraction.correlation must be \"positional\" or \"structural\", got %q", c.Extraction.Correlation)
	}
}

func (c *Config) validateReport() error {
	if c.Report.RatingThreshold < 0 || c.Report.RatingThreshold > 10 {
		return errors.New("report.rating_threshold must be between 0 and 10")
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
		return nil
	default:
		return fmt.Errorf("logging.level must be one of debug, info, warn, error; got %q", c.Logging.Level)
	}
}

func (c *Config) validateSeries() error {
	seen := make(map[string]struct{}, len(c.Series))
	for i, s := range c.Series {
		key := fmt.Sprintf("series[%d]", i)
		if s.Title == "" {
			return fmt.Errorf("%s.title must be set", key)
		}
		if _, dup := seen[s.Title]; dup {
			return fmt.Errorf("%s.title %q is listed more than once", key, s.Title)
		}
		seen[s.Title] = struct{}{}
		if s.Year < minSeriesYear || s.Year > maxSeriesYear {
			return fmt.Errorf("%s.year must be between %d and %d", key, minSeriesYear, maxSeriesYear)
		}
		if err := ensurePositiveMap(map[string]int{
			key + ".seasons":  s.Seasons,
			key + ".episodes": s.Episodes,
		}); err != nil {
			return err
		}
		if s.Episodes < s.Seasons {
			return fmt.Errorf("%s.episodes must be at least %s.seasons", key, key)
		}
	}
	return nil
}

func ensurePositiveMap(values map[string]int) error {
	for key, value := range values {
		if value <= 0 {
			return fmt.Errorf("%s must be positive", key)
		}
	}
	return nil
}
