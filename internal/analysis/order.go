package analysis

import (
	"slices"

	"topchart/internal/catalog"
)

// SortByRating returns a copy of movies ordered by rating, highest first.
// Movies with equal ratings keep their relative order.
func SortByRating(movies []catalog.Movie) []catalog.Movie {
	out := slices.Clone(movies)
	slices.SortStableFunc(out, func(a, b catalog.Movie) int {
		switch {
		case a.Rating > b.Rating:
			return -1
		case a.Rating < b.Rating:
			return 1
		default:
			return 0
		}
	})
	return out
}

// FilterAbove keeps the movies rated strictly above min.
func FilterAbove(movies []catalog.Movie, min float64) []catalog.Movie {
	out := make([]catalog.Movie, 0, len(movies))
	for _, m := range movies {
		if m.Rating > min {
			out = append(out, m)
		}
	}
	return out
}

// Head returns at most n leading elements.
func Head[T any](items []T, n int) []T {
	if n < 0 {
		n = 0
	}
	if len(items) <= n {
		return items
	}
	return items[:n]
}
