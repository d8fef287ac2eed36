package chart

import (
	"regexp"
	"strconv"
)

// Plausible release years for chart entries.
const (
	MinYear = 1900
	MaxYear = 2030
)

// yearToken matches a bare four-digit number closing a span, the way the chart
// renders release years in its metadata rows.
var yearToken = regexp.MustCompile(`>(\d{4})</span>`)

// ScanYears returns every plausible year token in html, in document order.
//
// The scan covers the whole document, so tokens that belong to unrelated page
// furniture are mixed in with the ranked entries' years.
func ScanYears(html string) []int {
	matches := yearToken.FindAllStringSubmatch(html, -1)
	years := make([]int, 0, len(matches))
	for _, m := range matches {
		year, err := strconv.Atoi(m[1])
		if err != nil || !PlausibleYear(year) {
			continue
		}
		years = append(years, year)
	}
	return years
}

// PlausibleYear reports whether year falls inside [MinYear, MaxYear].
func PlausibleYear(year int) bool {
	return year >= MinYear && year <= MaxYear
}
