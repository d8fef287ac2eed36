package main

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"topchart/internal/catalog"
	"topchart/internal/chart"
	"topchart/internal/config"
	"topchart/internal/pipeline"
)

func (c *commandContext) newRunner() (*config.Config, *pipeline.Runner, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, nil, err
	}
	logger, err := c.ensureLogger()
	if err != nil {
		return nil, nil, err
	}
	runner, err := pipeline.New(cfg, pipeline.WithLogger(logger))
	if err != nil {
		return nil, nil, err
	}
	return cfg, runner, nil
}

func (c *commandContext) openStore() (*config.Config, *catalog.Store, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, nil, err
	}
	store, err := catalog.Open(cfg.Paths.Database)
	if err != nil {
		return nil, nil, err
	}
	return cfg, store, nil
}

// loadHTML reads file when given and otherwise resolves the chart page
// through the runner's page cache. The second value describes the origin.
func loadHTML(ctx context.Context, runner *pipeline.Runner, file string, offline bool) (string, string, error) {
	if file = strings.TrimSpace(file); file != "" {
		expanded, err := config.ExpandPath(file)
		if err != nil {
			return "", "", fmt.Errorf("resolve page path: %w", err)
		}
		data, err := os.ReadFile(expanded)
		if err != nil {
			return "", "", fmt.Errorf("read page: %w", err)
		}
		return string(data), expanded, nil
	}
	html, origin, err := runner.LoadPage(ctx, offline)
	if err != nil {
		return "", "", err
	}
	return html, string(origin), nil
}

func noTitlesError(source string, cfg *config.Config) error {
	return fmt.Errorf("%w (%s): save the page manually as %s and run again", pipeline.ErrNoTitles, source, cfg.Paths.PageCache)
}

// previewCount returns the --limit flag when set and fallback otherwise. A
// non-positive explicit limit means everything.
func previewCount(cmd *cobra.Command, limit, fallback, total int) int {
	n := fallback
	if cmd.Flags().Changed("limit") {
		n = limit
		if n <= 0 {
			n = total
		}
	}
	if n > total {
		n = total
	}
	return n
}

func formatYear(year *int) string {
	if year == nil {
		return "N/A"
	}
	return strconv.Itoa(*year)
}

func formatRating(rating *float64) string {
	if rating == nil {
		return "N/A"
	}
	return strconv.FormatFloat(*rating, 'f', 1, 64)
}

func recordRows(records []chart.Record) [][]string {
	rows := make([][]string, 0, len(records))
	for i, r := range records {
		rows = append(rows, []string{strconv.Itoa(i + 1), r.Title, formatYear(r.Year), formatRating(r.Rating)})
	}
	return rows
}

func movieRows(movies []catalog.Movie, ranked bool) [][]string {
	rows := make([][]string, 0, len(movies))
	for i, m := range movies {
		row := []string{m.Title, strconv.Itoa(m.Year), strconv.FormatFloat(m.Rating, 'f', 1, 64)}
		if ranked {
			row = append([]string{strconv.Itoa(i + 1)}, row...)
		}
		rows = append(rows, row)
	}
	return rows
}

func seriesRows(series []catalog.Series) [][]string {
	rows := make([][]string, 0, len(series))
	for _, s := range series {
		rows = append(rows, []string{s.Title, strconv.Itoa(s.Year), strconv.Itoa(s.Seasons), strconv.Itoa(s.Episodes)})
	}
	return rows
}
