package catalog

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
)

// Run records one completed scrape.
type Run struct {
	ID             string    `json:"id"`
	StartedAt      time.Time `json:"started_at"`
	FinishedAt     time.Time `json:"finished_at"`
	SourceURL      string    `json:"source_url"`
	Origin         string    `json:"origin"`
	Strategy       string    `json:"strategy"`
	Titles         int       `json:"titles"`
	Records        int       `json:"records"`
	MoviesInserted int       `json:"movies_inserted"`
	SeriesInserted int       `json:"series_inserted"`
}

// Duration is the wall time the run took.
func (r Run) Duration() time.Duration {
	if r.FinishedAt.Before(r.StartedAt) {
		return 0
	}
	return r.FinishedAt.Sub(r.StartedAt)
}

// timestampLayout keeps a fixed fraction width so stored values sort as text.
const timestampLayout = "2006-01-02T15:04:05.000000000Z07:00"

const runColumns = "id, started_at, finished_at, source_url, origin, strategy, titles, records, movies_inserted, series_inserted"

// RecordRun appends r to the run history.
func (s *Store) RecordRun(ctx context.Context, r Run) error {
	if strings.TrimSpace(r.ID) == "" {
		return errors.New("record run: id is required")
	}
	_, err := s.execWithRetry(ctx,
		`INSERT INTO scrape_runs (`+runColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		r.ID,
		r.StartedAt.UTC().Format(timestampLayout),
		r.FinishedAt.UTC().Format(timestampLayout),
		nullableString(r.SourceURL),
		nullableString(r.Origin),
		nullableString(r.Strategy),
		r.Titles,
		r.Records,
		r.MoviesInserted,
		r.SeriesInserted,
	)
	if err != nil {
		return fmt.Errorf("record run %s: %w", r.ID, err)
	}
	return nil
}

// Runs returns the most recent runs, newest first. A limit of 0 or less
// returns the full history.
func (s *Store) Runs(ctx context.Context, limit int) ([]Run, error) {
	ctx = ensureContext(ctx)
	query := "SELECT " + runColumns + " FROM scrape_runs ORDER BY started_at DESC"
	args := []any{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		r, err := scanRun(rows)
		if err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		runs = append(runs, r)
	}
	return runs, rows.Err()
}
