package main

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"regexp"
	"testing"

	"topchart/internal/analysis"
	"topchart/internal/catalog"
	"topchart/internal/chart"
	"topchart/internal/pipeline"
	"topchart/internal/testsupport"
)

func TestTitlesFromFile(t *testing.T) {
	env := setupCLITestEnv(t, defaultChartPage())
	page := filepath.Join(env.baseDir, "saved.html")
	testsupport.WriteFile(t, page, defaultChartPage())

	out, _, err := runCLI(t, []string{"titles", "--file", page, "--limit", "2"}, env.configPath)
	if err != nil {
		t.Fatalf("titles: %v", err)
	}
	requireContains(t, out, "Found 3 titles")
	requireContains(t, out, "The Godfather")
	requireNotContains(t, out, "Pulp Fiction")
}

func TestTitlesDownloadsIntoCache(t *testing.T) {
	env := setupCLITestEnv(t, defaultChartPage())

	out, _, err := runCLI(t, []string{"titles"}, env.configPath)
	if err != nil {
		t.Fatalf("titles: %v", err)
	}
	requireContains(t, out, "Found 3 titles (network)")

	out, _, err = runCLI(t, []string{"titles", "--offline"}, env.configPath)
	if err != nil {
		t.Fatalf("titles --offline: %v", err)
	}
	requireContains(t, out, "Found 3 titles (cache)")
}

func TestExtractJSON(t *testing.T) {
	env := setupCLITestEnv(t, defaultChartPage())
	page := filepath.Join(env.baseDir, "saved.html")
	testsupport.WriteFile(t, page, defaultChartPage())

	out, _, err := runCLI(t, []string{"extract", "--file", page, "--json"}, env.configPath)
	if err != nil {
		t.Fatalf("extract: %v", err)
	}
	var records []chart.Record
	if err := json.Unmarshal([]byte(out), &records); err != nil {
		t.Fatalf("decode records: %v\n%s", err, out)
	}
	if len(records) != 3 {
		t.Fatalf("expected 3 records, got %d", len(records))
	}
	if records[1].Year == nil || *records[1].Year != 1972 || records[1].Rating == nil || *records[1].Rating != 9.2 {
		t.Fatalf("unexpected record %v", records[1])
	}
}

func TestExtractTablePreview(t *testing.T) {
	env := setupCLITestEnv(t, defaultChartPage())
	page := filepath.Join(env.baseDir, "saved.html")
	testsupport.WriteFile(t, page, defaultChartPage())

	out, _, err := runCLI(t, []string{"extract", "--file", page}, env.configPath)
	if err != nil {
		t.Fatalf("extract: %v", err)
	}
	requireContains(t, out, "Extracted 3 records")
	requireContains(t, out, "9.3")
	requireContains(t, out, "1994")
}

func TestTitlesNoTitles(t *testing.T) {
	env := setupCLITestEnv(t, "<html><body>blocked</body></html>")

	_, _, err := runCLI(t, []string{"titles"}, env.configPath)
	if !errors.Is(err, pipeline.ErrNoTitles) {
		t.Fatalf("expected ErrNoTitles, got %v", err)
	}
}

func TestRunReportListAndExport(t *testing.T) {
	env := setupCLITestEnv(t, defaultChartPage())

	out, _, err := runCLI(t, []string{"run", "--fresh"}, env.configPath)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	requireContains(t, out, "Movies inserted")
	requireContains(t, out, "Top 3 movies by rating")
	requireContains(t, out, "Movies per year and category")
	requireContains(t, out, "The Wire")
	if !regexp.MustCompile(`Pulp Fiction\s+│\s+8\.8\s+│\s+Excellent`).MatchString(out) {
		t.Fatalf("expected per-movie category row in %q", out)
	}

	out, _, err = runCLI(t, []string{"report", "--threshold", "9.25", "--export"}, env.configPath)
	if err != nil {
		t.Fatalf("report: %v", err)
	}
	requireContains(t, out, "Movies rated above 9.25")
	requireContains(t, out, "Masterpiece")
	exportDir := filepath.Join(env.dataDir, "exports")
	for _, name := range []string{analysis.MoviesCSV, analysis.SeriesCSV, analysis.MoviesJSON, analysis.SeriesJSON, analysis.ClassifiedJSON} {
		if _, err := os.Stat(filepath.Join(exportDir, name)); err != nil {
			t.Fatalf("expected export %s: %v", name, err)
		}
	}

	out, _, err = runCLI(t, []string{"list", "movies", "--json"}, env.configPath)
	if err != nil {
		t.Fatalf("list movies: %v", err)
	}
	var movies []catalog.Movie
	if err := json.Unmarshal([]byte(out), &movies); err != nil {
		t.Fatalf("decode movies: %v", err)
	}
	if len(movies) != 3 || movies[0].Title != "The Shawshank Redemption" {
		t.Fatalf("unexpected movies %+v", movies)
	}

	out, _, err = runCLI(t, []string{"list", "series"}, env.configPath)
	if err != nil {
		t.Fatalf("list series: %v", err)
	}
	requireContains(t, out, "The Wire")

	out, _, err = runCLI(t, []string{"runs", "--json"}, env.configPath)
	if err != nil {
		t.Fatalf("runs: %v", err)
	}
	var runs []catalog.Run
	if err := json.Unmarshal([]byte(out), &runs); err != nil {
		t.Fatalf("decode runs: %v", err)
	}
	if len(runs) != 1 || runs[0].MoviesInserted != 3 || runs[0].SeriesInserted != 1 {
		t.Fatalf("unexpected runs %+v", runs)
	}
}

func TestRunQuietReuse(t *testing.T) {
	env := setupCLITestEnv(t, defaultChartPage())

	if _, _, err := runCLI(t, []string{"run", "--quiet"}, env.configPath); err != nil {
		t.Fatalf("first run: %v", err)
	}
	out, _, err := runCLI(t, []string{"run", "--quiet", "--reuse"}, env.configPath)
	if err != nil {
		t.Fatalf("second run: %v", err)
	}
	requireContains(t, out, pipeline.OriginRecords)
	requireNotContains(t, out, "Rating categories")
}

func TestReportEmptyCatalog(t *testing.T) {
	env := setupCLITestEnv(t, defaultChartPage())

	out, _, err := runCLI(t, []string{"report"}, env.configPath)
	if err != nil {
		t.Fatalf("report: %v", err)
	}
	requireContains(t, out, "empty")
}
