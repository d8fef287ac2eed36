package chart_test

import (
	"encoding/json"
	"testing"

	"topchart/internal/chart"
)

func TestRecordString(t *testing.T) {
	tests := []struct {
		rec  chart.Record
		want string
	}{
		{chart.Record{Title: "Movie A", Year: chart.IntPtr(1994), Rating: chart.FloatPtr(9.1)}, "Movie A (1994) - Rating: 9.1"},
		{chart.Record{Title: "Movie B"}, "Movie B (N/A) - Rating: N/A"},
	}
	for _, tt := range tests {
		if got := tt.rec.String(); got != tt.want {
			t.Fatalf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestRecordJSONUsesNullForMissing(t *testing.T) {
	data, err := json.Marshal(chart.Record{Title: "Movie B"})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if got, want := string(data), `{"title":"Movie B","year":null,"rating":null}`; got != want {
		t.Fatalf("json = %s, want %s", got, want)
	}
}

func TestCleanTitle(t *testing.T) {
	if got := chart.CleanTitle("Schindler&apos;s List &amp; More"); got != "Schindler's List & More" {
		t.Fatalf("CleanTitle = %q", got)
	}
}

func TestRecordPresence(t *testing.T) {
	cases := []struct {
		rec        chart.Record
		year, rate bool
	}{
		{chart.Record{Title: "A"}, false, false},
		{chart.Record{Title: "A", Year: chart.IntPtr(1994)}, true, false},
		{chart.Record{Title: "A", Rating: chart.FloatPtr(0)}, false, true},
	}
	for _, tc := range cases {
		if got := tc.rec.HasYear(); got != tc.year {
			t.Fatalf("%v HasYear = %v, want %v", tc.rec, got, tc.year)
		}
		if got := tc.rec.HasRating(); got != tc.rate {
			t.Fatalf("%v HasRating = %v, want %v", tc.rec, got, tc.rate)
		}
	}
}
