package catalog

import (
	"fmt"
	"strconv"

	"topchart/internal/chart"
)

// Entry kinds.
const (
	KindMovie  = "movie"
	KindSeries = "series"
)

// Entry is any titled catalog item.
type Entry interface {
	fmt.Stringer
	Kind() string
	Name() string
	ReleaseYear() int
}

// Movie is a ranked film with a resolved year and rating.
type Movie struct {
	ID     int64   `json:"id"`
	Title  string  `json:"title"`
	Year   int     `json:"year"`
	Rating float64 `json:"rating"`
}

func (m Movie) Kind() string     { return KindMovie }
func (m Movie) Name() string     { return m.Title }
func (m Movie) ReleaseYear() int { return m.Year }

func (m Movie) String() string {
	return fmt.Sprintf("%s (%d) - Rating: %s", m.Title, m.Year, strconv.FormatFloat(m.Rating, 'f', -1, 64))
}

// Series is a television series entry maintained by hand in configuration.
type Series struct {
	ID       int64  `json:"id"`
	Title    string `json:"title"`
	Year     int    `json:"year"`
	Seasons  int    `json:"seasons"`
	Episodes int    `json:"episodes"`
}

func (s Series) Kind() string     { return KindSeries }
func (s Series) Name() string     { return s.Title }
func (s Series) ReleaseYear() int { return s.Year }

func (s Series) String() string {
	return fmt.Sprintf("%s (%d) - Seasons: %d, Episodes: %d", s.Title, s.Year, s.Seasons, s.Episodes)
}

// MovieFromRecord converts an extracted record. Records missing a year or a
// rating cannot become movies.
func MovieFromRecord(r chart.Record) (Movie, bool) {
	if r.Title == "" || !r.HasYear() || !r.HasRating() {
		return Movie{}, false
	}
	return Movie{Title: r.Title, Year: *r.Year, Rating: *r.Rating}, true
}

// MoviesFromRecords converts every convertible record, preserving order.
func MoviesFromRecords(records []chart.Record) []Movie {
	out := make([]Movie, 0, len(records))
	for _, r := range records {
		if m, ok := MovieFromRecord(r); ok {
			out = append(out, m)
		}
	}
	return out
}
