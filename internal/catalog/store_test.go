package catalog_test

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	_ "modernc.org/sqlite"

	"topchart/internal/catalog"
	"topchart/internal/chart"
	"topchart/internal/testsupport"
)

func TestOpenCreatesSchema(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenStore(t, cfg)

	movies, err := store.Movies(context.Background())
	if err != nil {
		t.Fatalf("Movies failed: %v", err)
	}
	if len(movies) != 0 {
		t.Fatalf("expected empty catalog, got %v", movies)
	}
	if store.Path() != cfg.Paths.Database {
		t.Fatalf("unexpected path %q", store.Path())
	}
}

func TestInsertMovieSkipsDuplicates(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenStore(t, cfg)
	ctx := context.Background()

	movie := catalog.Movie{Title: "The Godfather", Year: 1972, Rating: 9.2}
	inserted, err := store.InsertMovie(ctx, movie)
	if err != nil || !inserted {
		t.Fatalf("first insert: inserted=%v err=%v", inserted, err)
	}
	inserted, err = store.InsertMovie(ctx, catalog.Movie{Title: "The Godfather", Year: 1999, Rating: 1})
	if err != nil {
		t.Fatalf("duplicate insert returned error: %v", err)
	}
	if inserted {
		t.Fatal("duplicate title should be skipped")
	}

	got, err := store.MovieByTitle(ctx, "The Godfather")
	if err != nil {
		t.Fatalf("MovieByTitle: %v", err)
	}
	if got == nil || got.Year != 1972 || got.Rating != 9.2 || got.ID == 0 {
		t.Fatalf("unexpected stored movie: %#v", got)
	}
	missing, err := store.MovieByTitle(ctx, "Nope")
	if err != nil || missing != nil {
		t.Fatalf("expected nil for missing title, got %#v err=%v", missing, err)
	}

	if _, err := store.InsertMovie(ctx, catalog.Movie{Title: "  "}); err == nil {
		t.Fatal("expected error for blank title")
	}
}

func TestInsertMoviesFromRecords(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenStore(t, cfg)
	ctx := context.Background()

	records := []chart.Record{
		{Title: "The Shawshank Redemption", Year: chart.IntPtr(1994), Rating: chart.FloatPtr(9.3)},
		{Title: "No Rating", Year: chart.IntPtr(2001)},
		{Title: "No Year", Rating: chart.FloatPtr(8.0)},
		{Title: "The Godfather", Year: chart.IntPtr(1972), Rating: chart.FloatPtr(9.2)},
		{Title: "The Godfather", Year: chart.IntPtr(1972), Rating: chart.FloatPtr(9.2)},
	}
	n, err := store.InsertMovies(ctx, records)
	if err != nil {
		t.Fatalf("InsertMovies: %v", err)
	}
	if n != 2 {
		t.Fatalf("inserted %d, want 2", n)
	}

	movies, err := store.Movies(ctx)
	if err != nil {
		t.Fatalf("Movies: %v", err)
	}
	want := []catalog.Movie{
		{Title: "The Shawshank Redemption", Year: 1994, Rating: 9.3},
		{Title: "The Godfather", Year: 1972, Rating: 9.2},
	}
	if diff := cmp.Diff(want, movies, cmpopts.IgnoreFields(catalog.Movie{}, "ID")); diff != "" {
		t.Fatalf("movies mismatch (-want +got):\n%s", diff)
	}
}

func TestInsertSeries(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenStore(t, cfg)
	ctx := context.Background()

	for _, s := range []catalog.Series{
		{Title: "Breaking Bad", Year: 2008, Seasons: 5, Episodes: 62},
		{Title: "The Wire", Year: 2002, Seasons: 5, Episodes: 60},
		{Title: "Breaking Bad", Year: 2008, Seasons: 5, Episodes: 62},
	} {
		if _, err := store.InsertSeries(ctx, s); err != nil {
			t.Fatalf("InsertSeries(%s): %v", s.Title, err)
		}
	}
	series, err := store.Series(ctx)
	if err != nil {
		t.Fatalf("Series: %v", err)
	}
	if len(series) != 2 || series[0].Title != "Breaking Bad" || series[1].Episodes != 60 {
		t.Fatalf("unexpected series: %+v", series)
	}
}

func TestRunsNewestFirst(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenStore(t, cfg)
	ctx := context.Background()

	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	runs := []catalog.Run{
		{ID: "run-a", StartedAt: base, FinishedAt: base.Add(2 * time.Second), Origin: "network", Strategy: "positional", Titles: 250, Records: 250, MoviesInserted: 240},
		{ID: "run-b", StartedAt: base.Add(time.Hour), FinishedAt: base.Add(time.Hour + 500*time.Millisecond), Origin: "cache", Strategy: "structural+positional", Titles: 250, Records: 250},
	}
	for _, r := range runs {
		if err := store.RecordRun(ctx, r); err != nil {
			t.Fatalf("RecordRun: %v", err)
		}
	}
	if err := store.RecordRun(ctx, catalog.Run{}); err == nil {
		t.Fatal("expected error for run without id")
	}

	got, err := store.Runs(ctx, 1)
	if err != nil {
		t.Fatalf("Runs: %v", err)
	}
	if len(got) != 1 || got[0].ID != "run-b" {
		t.Fatalf("unexpected runs: %+v", got)
	}
	if got[0].Duration() != 500*time.Millisecond {
		t.Fatalf("unexpected duration %s", got[0].Duration())
	}

	all, err := store.Runs(ctx, 0)
	if err != nil {
		t.Fatalf("Runs: %v", err)
	}
	if diff := cmp.Diff([]catalog.Run{runs[1], runs[0]}, all); diff != "" {
		t.Fatalf("runs mismatch (-want +got):\n%s", diff)
	}
}

func TestOpenFreshDiscardsPreviousCatalog(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	ctx := context.Background()

	store, err := catalog.Open(cfg.Paths.Database)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if _, err := store.InsertMovie(ctx, catalog.Movie{Title: "Old", Year: 1950, Rating: 8}); err != nil {
		t.Fatalf("InsertMovie: %v", err)
	}
	store.Close()

	fresh, err := catalog.OpenFresh(cfg.Paths.Database)
	if err != nil {
		t.Fatalf("OpenFresh: %v", err)
	}
	defer fresh.Close()
	movies, err := fresh.Movies(ctx)
	if err != nil {
		t.Fatalf("Movies: %v", err)
	}
	if len(movies) != 0 {
		t.Fatalf("expected empty catalog after fresh open, got %v", movies)
	}
}

func TestOpenRejectsSchemaMismatch(t *testing.T) {
	path := filepath.Join(t.TempDir(), "old.db")
	db, err := sql.Open("sqlite", path)
	if err != nil {
		t.Fatalf("sql.Open: %v", err)
	}
	for _, stmt := range []string{
		"CREATE TABLE schema_version (version INTEGER NOT NULL)",
		"INSERT INTO schema_version (version) VALUES (99)",
	} {
		if _, err := db.Exec(stmt); err != nil {
			t.Fatalf("exec %q: %v", stmt, err)
		}
	}
	db.Close()

	if _, err := catalog.Open(path); !errors.Is(err, catalog.ErrSchemaMismatch) {
		t.Fatalf("expected ErrSchemaMismatch, got %v", err)
	}
}
