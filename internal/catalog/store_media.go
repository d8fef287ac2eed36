package catalog

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"topchart/internal/chart"
)

const (
	movieColumns  = "id, title, year, rating"
	seriesColumns = "id, title, year, seasons, episodes"
)

// InsertMovie stores m unless a movie with the same title already exists.
// A skipped duplicate reports inserted=false without an error.
func (s *Store) InsertMovie(ctx context.Context, m Movie) (bool, error) {
	if strings.TrimSpace(m.Title) == "" {
		return false, errors.New("insert movie: title is required")
	}
	res, err := s.execWithRetry(ctx,
		`INSERT INTO movies (title, year, rating) VALUES (?, ?, ?)
         ON CONFLICT(title) DO NOTHING`,
		m.Title, nullableInt(m.Year), m.Rating,
	)
	if err != nil {
		return false, fmt.Errorf("insert movie %q: %w", m.Title, err)
	}
	return affected(res)
}

// InsertSeries stores e unless a series with the same title already exists.
func (s *Store) InsertSeries(ctx context.Context, e Series) (bool, error) {
	if strings.TrimSpace(e.Title) == "" {
		return false, errors.New("insert series: title is required")
	}
	res, err := s.execWithRetry(ctx,
		`INSERT INTO series (title, year, seasons, episodes) VALUES (?, ?, ?, ?)
         ON CONFLICT(title) DO NOTHING`,
		e.Title, nullableInt(e.Year), e.Seasons, e.Episodes,
	)
	if err != nil {
		return false, fmt.Errorf("insert series %q: %w", e.Title, err)
	}
	return affected(res)
}

// InsertMovies stores every record that carries both a year and a rating in a
// single transaction and returns how many new rows were written.
func (s *Store) InsertMovies(ctx context.Context, records []chart.Record) (int, error) {
	ctx = ensureContext(ctx)
	movies := MoviesFromRecords(records)
	if len(movies) == 0 {
		return 0, nil
	}

	var inserted int
	err := retryOnBusy(ctx, func() error {
		inserted = 0
		tx, err := s.db.BeginTx(ctx, nil)
		if err != nil {
			return err
		}
		defer func() { _ = tx.Rollback() }()

		stmt, err := tx.PrepareContext(ctx,
			`INSERT INTO movies (title, year, rating) VALUES (?, ?, ?)
             ON CONFLICT(title) DO NOTHING`)
		if err != nil {
			return err
		}
		defer stmt.Close()

		for _, m := range movies {
			res, err := stmt.ExecContext(ctx, m.Title, nullableInt(m.Year), m.Rating)
			if err != nil {
				return err
			}
			ok, err := affected(res)
			if err != nil {
				return err
			}
			if ok {
				inserted++
			}
		}
		return tx.Commit()
	})
	if err != nil {
		return 0, fmt.Errorf("insert movies: %w", err)
	}
	return inserted, nil
}

// Movies returns every stored movie in insertion order.
func (s *Store) Movies(ctx context.Context) ([]Movie, error) {
	ctx = ensureContext(ctx)
	rows, err := s.db.QueryContext(ctx, "SELECT "+movieColumns+" FROM movies ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("query movies: %w", err)
	}
	defer rows.Close()

	var movies []Movie
	for rows.Next() {
		m, err := scanMovie(rows)
		if err != nil {
			return nil, fmt.Errorf("scan movie: %w", err)
		}
		movies = append(movies, m)
	}
	return movies, rows.Err()
}

// Series returns every stored series in insertion order.
func (s *Store) Series(ctx context.Context) ([]Series, error) {
	ctx = ensureContext(ctx)
	rows, err := s.db.QueryContext(ctx, "SELECT "+seriesColumns+" FROM series ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("query series: %w", err)
	}
	defer rows.Close()

	var out []Series
	for rows.Next() {
		e, err := scanSeries(rows)
		if err != nil {
			return nil, fmt.Errorf("scan series: %w", err)
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

// MovieByTitle looks up one movie by exact title.
func (s *Store) MovieByTitle(ctx context.Context, title string) (*Movie, error) {
	ctx = ensureContext(ctx)
	row := s.db.QueryRowContext(ctx, "SELECT "+movieColumns+" FROM movies WHERE title = ?", title)
	m, err := scanMovie(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query movie %q: %w", title, err)
	}
	return &m, nil
}
