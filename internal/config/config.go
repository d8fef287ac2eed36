package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

//go:embed sample_config.toml
var sampleConfig string

// Source describes where the listing page is fetched from.
type Source struct {
	URL            string `toml:"url"`
	MaxTitles      int    `toml:"max_titles"`
	UserAgent      string `toml:"user_agent"`
	AcceptLanguage string `toml:"accept_language"`
	RequestTimeout int    `toml:"request_timeout"`
}

// Paths contains the locations of every artifact a run reads or writes.
// Relative artifact paths are resolved against DataDir.
type Paths struct {
	DataDir     string `toml:"data_dir"`
	PageCache   string `toml:"page_cache"`
	RecordsFile string `toml:"records_file"`
	Database    string `toml:"database"`
	ExportDir   string `toml:"export_dir"`
	LogDir      string `toml:"log_dir"`
}

// Extraction selects how years are attached to extracted titles.
type Extraction struct {
	Correlation string `toml:"correlation"`
}

// Report controls the analysis output.
type Report struct {
	RatingThreshold float64 `toml:"rating_threshold"`
	PreviewTitles   int     `toml:"preview_titles"`
	PreviewRecords  int     `toml:"preview_records"`
	CSVBOM          bool    `toml:"csv_bom"`
}

// Logging contains configuration for log output.
type Logging struct {
	Format        string `toml:"format"`
	Level         string `toml:"level"`
	RetentionDays int    `toml:"retention_days"`
}

// Series is a hand-maintained series entry stored next to the scraped movies.
type Series struct {
	Title    string `toml:"title"`
	Year     int    `toml:"year"`
	Seasons  int    `toml:"seasons"`
	Episodes int    `toml:"episodes"`
}

// Config encapsulates all configuration values for topchart.
type Config struct {
	Source     Source     `toml:"source"`
	Paths      Paths      `toml:"paths"`
	Extraction Extraction `toml:"extraction"`
	Report     Report     `toml:"report"`
	Logging    Logging    `toml:"logging"`
	Series     []Series   `toml:"series"`
}

// DefaultConfigPath returns the absolute path to the default configuration file location.
func DefaultConfigPath() (string, error) {
	return expandPath(defaultConfigPath)
}

// Load locates, parses, and validates a configuration file. The returned config has all
// path fields expanded and normalized.
func Load(path string) (*Config, string, bool, error) {
	cfg := Default()

	resolvedPath, exists, err := resolveConfigPath(path)
	if err != nil {
		return nil, "", false, err
	}

	if exists {
		file, err := os.Open(resolvedPath)
		if err != nil {
			return nil, "", false, fmt.Errorf("open config: %w", err)
		}
		defer file.Close()

		// A file that lists [[series]] replaces the default set entirely.
		cfg.Series = nil
		decoder := toml.NewDecoder(file)
		if err := decoder.Decode(&cfg); err != nil {
			return nil, "", false, fmt.Errorf("parse config: %w", err)
		}
		if cfg.Series == nil {
			cfg.Series = defaultSeries()
		}
	}

	if err := cfg.normalize(); err != nil {
		return nil, "", false, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, "", false, err
	}

	return &cfg, resolvedPath, exists, nil
}

func resolveConfigPath(path string) (string, bool, error) {
	if path != "" {
		expanded, err := expandPath(path)
		if err != nil {
			return "", false, err
		}
		_, err = os.Stat(expanded)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return expanded, false, nil
			}
			return "", false, fmt.Errorf("stat config: %w", err)
		}
		return expanded, true, nil
	}

	defaultPath, err := expandPath(defaultConfigPath)
	if err != nil {
		return "", false, err
	}

	projectPath, err := filepath.Abs(projectConfigName)
	if err != nil {
		return "", false, err
	}

	if info, err := os.Stat(defaultPath); err == nil && !info.IsDir() {
		return defaultPath, true, nil
	}
	if info, err := os.Stat(projectPath); err == nil && !info.IsDir() {
		return projectPath, true, nil
	}

	return defaultPath, false, nil
}

// EnsureDirectories creates the data, export, and log directories along with
// the parents of every artifact file.
func (c *Config) EnsureDirectories() error {
	dirs := []string{
		c.Paths.DataDir,
		c.Paths.ExportDir,
		c.Paths.LogDir,
		filepath.Dir(c.Paths.PageCache),
		filepath.Dir(c.Paths.RecordsFile),
		filepath.Dir(c.Paths.Database),
	}
	for _, dir := range dirs {
		if strings.TrimSpace(dir) == "" {
			continue
		}
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create directory %q: %w", dir, err)
		}
	}
	return nil
}

// LockPath is the run lock guarding the data directory.
func (c *Config) LockPath() string {
	return filepath.Join(c.Paths.DataDir, "topchart.lock")
}

func expandPath(pathValue string) (string, error) {
	if pathValue == "" {
		return pathValue, nil
	}
	if strings.HasPrefix(pathValue, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		if pathValue == "~" {
			pathValue = home
		} else if len(pathValue) > 1 && (pathValue[1] == '/' || pathValue[1] == '\\') {
			pathValue = filepath.Join(home, pathValue[2:])
		}
	}
	cleaned := filepath.Clean(pathValue)
	absolute, err := filepath.Abs(cleaned)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path for %q: %w", cleaned, err)
	}
	return absolute, nil
}

// ExpandPath exposes the repository path expansion rules for other packages.
func ExpandPath(pathValue string) (string, error) {
	return expandPath(pathValue)
}

// resolveUnder expands value and anchors relative paths at base.
func resolveUnder(base, value string) (string, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return "", nil
	}
	if !strings.HasPrefix(value, "~") && !filepath.IsAbs(value) {
		value = filepath.Join(base, value)
	}
	return expandPath(value)
}

// CreateSample writes a sample configuration file to the specified location.
func CreateSample(path string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create config directory: %w", err)
		}
	}

	if err := os.WriteFile(path, []byte(sampleConfig), 0o644); err != nil {
		return fmt.Errorf("write sample config: %w", err)
	}
	return nil
}

// SampleConfig returns the embedded sample configuration text.
func SampleConfig() string {
	return sampleConfig
}
