package catalog

import (
	"database/sql"
	"time"
)

type rowScanner interface {
	Scan(dest ...any) error
}

func scanMovie(scanner rowScanner) (Movie, error) {
	var (
		m      Movie
		year   sql.NullInt64
		rating sql.NullFloat64
	)
	if err := scanner.Scan(&m.ID, &m.Title, &year, &rating); err != nil {
		return Movie{}, err
	}
	m.Year = int(year.Int64)
	m.Rating = rating.Float64
	return m, nil
}

func scanSeries(scanner rowScanner) (Series, error) {
	var (
		e        Series
		year     sql.NullInt64
		seasons  sql.NullInt64
		episodes sql.NullInt64
	)
	if err := scanner.Scan(&e.ID, &e.Title, &year, &seasons, &episodes); err != nil {
		return Series{}, err
	}
	e.Year = int(year.Int64)
	e.Seasons = int(seasons.Int64)
	e.Episodes = int(episodes.Int64)
	return e, nil
}

func scanRun(scanner rowScanner) (Run, error) {
	var (
		r           Run
		startedRaw  string
		finishedRaw string
		sourceURL   sql.NullString
		origin      sql.NullString
		strategy    sql.NullString
	)
	if err := scanner.Scan(
		&r.ID,
		&startedRaw,
		&finishedRaw,
		&sourceURL,
		&origin,
		&strategy,
		&r.Titles,
		&r.Records,
		&r.MoviesInserted,
		&r.SeriesInserted,
	); err != nil {
		return Run{}, err
	}
	r.StartedAt = parseTimestamp(startedRaw)
	r.FinishedAt = parseTimestamp(finishedRaw)
	r.SourceURL = sourceURL.String
	r.Origin = origin.String
	r.Strategy = strategy.String
	return r, nil
}

func parseTimestamp(raw string) time.Time {
	if raw == "" {
		return time.Time{}
	}
	ts, err := time.Parse(time.RFC3339Nano, raw)
	if err != nil {
		return time.Time{}
	}
	return ts
}

func nullableString(value string) any {
	if value == "" {
		return nil
	}
	return value
}

func nullableInt(value int) any {
	if value == 0 {
		return nil
	}
	return value
}

func affected(res sql.Result) (bool, error) {
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
