package analysis_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"topchart/internal/analysis"
	"topchart/internal/catalog"
)

func ratingPtr(v float64) *float64 { return &v }

func sampleMovies() []catalog.Movie {
	return []catalog.Movie{
		{ID: 1, Title: "Pulp Fiction", Year: 1994, Rating: 8.8},
		{ID: 2, Title: "The Shawshank Redemption", Year: 1994, Rating: 9.3},
		{ID: 3, Title: "Fight Club", Year: 1999, Rating: 8.8},
		{ID: 4, Title: "Some Comedy", Year: 2005, Rating: 6.4},
		{ID: 5, Title: "The Godfather", Year: 1972, Rating: 9.2},
		{ID: 6, Title: "Heat", Year: 1995, Rating: 7.0},
	}
}

func titles(movies []catalog.Movie) []string {
	out := make([]string, 0, len(movies))
	for _, m := range movies {
		out = append(out, m.Title)
	}
	return out
}

func TestCategoryOf(t *testing.T) {
	cases := []struct {
		rating *float64
		want   analysis.Category
	}{
		{ratingPtr(9.3), analysis.Masterpiece},
		{ratingPtr(9.0), analysis.Masterpiece},
		{ratingPtr(8.99), analysis.Excellent},
		{ratingPtr(8.0), analysis.Excellent},
		{ratingPtr(7.0), analysis.Good},
		{ratingPtr(6.9), analysis.Average},
		{ratingPtr(0), analysis.Average},
		{nil, analysis.Unclassified},
	}
	for _, tc := range cases {
		if got := analysis.CategoryOf(tc.rating); got != tc.want {
			t.Fatalf("CategoryOf(%v) = %q, want %q", tc.rating, got, tc.want)
		}
	}
}

func TestSortByRatingIsStableAndDescending(t *testing.T) {
	movies := sampleMovies()
	sorted := analysis.SortByRating(movies)

	want := []string{"The Shawshank Redemption", "The Godfather", "Pulp Fiction", "Fight Club", "Heat", "Some Comedy"}
	if diff := cmp.Diff(want, titles(sorted)); diff != "" {
		t.Fatalf("sort order mismatch (-want +got):\n%s", diff)
	}
	if movies[0].Title != "Pulp Fiction" {
		t.Fatalf("SortByRating mutated its input: %q first", movies[0].Title)
	}
}

func TestFilterAboveIsStrict(t *testing.T) {
	got := analysis.FilterAbove(sampleMovies(), 9.2)
	if diff := cmp.Diff([]string{"The Shawshank Redemption"}, titles(got)); diff != "" {
		t.Fatalf("filter mismatch (-want +got):\n%s", diff)
	}
	if got := analysis.FilterAbove(nil, 9.0); got == nil || len(got) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", got)
	}
}

func TestClassifyKeepsOrder(t *testing.T) {
	rows := analysis.Classify(sampleMovies())
	got := make([]analysis.Category, 0, len(rows))
	for _, r := range rows {
		got = append(got, r.Category)
	}
	want := []analysis.Category{
		analysis.Excellent, analysis.Masterpiece, analysis.Excellent,
		analysis.Average, analysis.Masterpiece, analysis.Good,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("categories mismatch (-want +got):\n%s", diff)
	}
}

func TestHead(t *testing.T) {
	items := []int{1, 2, 3}
	if got := analysis.Head(items, 2); len(got) != 2 {
		t.Fatalf("Head(2) = %v", got)
	}
	if got := analysis.Head(items, 10); len(got) != 3 {
		t.Fatalf("Head(10) = %v", got)
	}
	if got := analysis.Head(items, -1); len(got) != 0 {
		t.Fatalf("Head(-1) = %v", got)
	}
}

func TestCrosstab(t *testing.T) {
	movies := append(sampleMovies(), catalog.Movie{ID: 7, Title: "Undated", Rating: 9.5})
	ct := analysis.NewCrosstab(analysis.Classify(movies))

	if diff := cmp.Diff([]int{1972, 1994, 1995, 1999, 2005}, ct.Years); diff != "" {
		t.Fatalf("years mismatch (-want +got):\n%s", diff)
	}
	wantHeader := []string{"year", "Masterpiece", "Excellent", "Good", "Average", "Total"}
	if diff := cmp.Diff(wantHeader, ct.Header()); diff != "" {
		t.Fatalf("header mismatch (-want +got):\n%s", diff)
	}
	if ct.Total != 6 {
		t.Fatalf("expected undated movie excluded, total=%d", ct.Total)
	}
	if got := ct.Count(1994, analysis.Masterpiece); got != 1 {
		t.Fatalf("1994 masterpieces = %d, want 1", got)
	}
	if got := ct.YearTotal(1994); got != 2 {
		t.Fatalf("1994 total = %d, want 2", got)
	}
	if got := ct.CategoryTotal(analysis.Masterpiece); got != 2 {
		t.Fatalf("masterpiece total = %d, want 2", got)
	}

	rows := ct.Rows()
	wantRows := [][]string{
		{"1972", "1", "0", "0", "0", "1"},
		{"1994", "1", "1", "0", "0", "2"},
		{"1995", "0", "0", "1", "0", "1"},
		{"1999", "0", "1", "0", "0", "1"},
		{"2005", "0", "0", "0", "1", "1"},
		{"Total", "2", "2", "1", "1", "6"},
	}
	if diff := cmp.Diff(wantRows, rows); diff != "" {
		t.Fatalf("rows mismatch (-want +got):\n%s", diff)
	}
}

func TestCrosstabEmpty(t *testing.T) {
	ct := analysis.NewCrosstab(nil)
	if diff := cmp.Diff([]string{"year", "Total"}, ct.Header()); diff != "" {
		t.Fatalf("header mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([][]string{{"Total", "0"}}, ct.Rows()); diff != "" {
		t.Fatalf("rows mismatch (-want +got):\n%s", diff)
	}
}
