package chart

import (
	"fmt"
	"strconv"
	"strings"
)

// Record is one ranked entry recovered from a listing page. Year and Rating are
// nil when the page did not provide a usable value.
type Record struct {
	Title  string   `json:"title"`
	Year   *int     `json:"year"`
	Rating *float64 `json:"rating"`
}

// String renders the record the way the CLI previews it.
func (r Record) String() string {
	year := "N/A"
	if r.Year != nil {
		year = strconv.Itoa(*r.Year)
	}
	rating := "N/A"
	if r.Rating != nil {
		rating = strconv.FormatFloat(*r.Rating, 'f', -1, 64)
	}
	return fmt.Sprintf("%s (%s) - Rating: %s", r.Title, year, rating)
}

// HasYear reports whether a year was resolved.
func (r Record) HasYear() bool { return r.Year != nil }

// HasRating reports whether a rating was recovered.
func (r Record) HasRating() bool { return r.Rating != nil }

// IntPtr and FloatPtr build optional values for records.
func IntPtr(v int) *int { return &v }

func FloatPtr(v float64) *float64 { return &v }

// titleEntities covers the escapes that survive JSON decoding of the chart's
// ld+json payload.
var titleEntities = strings.NewReplacer(
	"&apos;", "'",
	"&amp;", "&",
)

// CleanTitle applies the entity substitutions every extracted title receives.
func CleanTitle(raw string) string {
	return titleEntities.Replace(raw)
}

// Titles projects records onto their titles, preserving order.
func Titles(records []Record) []string {
	out := make([]string, 0, len(records))
	for _, r := range records {
		out = append(out, r.Title)
	}
	return out
}
