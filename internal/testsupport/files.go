package testsupport

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// ChartEntry is one ranked row of a generated chart page. Zero Year omits the
// year token and zero Rating omits the aggregate rating.
type ChartEntry struct {
	Title  string
	Year   int
	Rating float64
}

// ChartHTML renders a listing page carrying both the ld+json ItemList and the
// rendered summary list, in the shape the chart extractor reads.
func ChartHTML(entries ...ChartEntry) string {
	type rating struct {
		RatingValue float64 `json:"ratingValue"`
	}
	type item struct {
		Type            string  `json:"@type"`
		Name            string  `json:"name"`
		AggregateRating *rating `json:"aggregateRating,omitempty"`
	}
	type element struct {
		Type     string `json:"@type"`
		Position int    `json:"position"`
		Item     item   `json:"item"`
	}
	list := struct {
		Context  string    `json:"@context"`
		Type     string    `json:"@type"`
		Elements []element `json:"itemListElement"`
	}{Context: "https://schema.org", Type: "ItemList"}

	var rows strings.Builder
	for i, e := range entries {
		it := item{Type: "Movie", Name: e.Title}
		if e.Rating != 0 {
			it.AggregateRating = &rating{RatingValue: e.Rating}
		}
		list.Elements = append(list.Elements, element{Type: "ListItem", Position: i + 1, Item: it})

		fmt.Fprintf(&rows, `<li class="ipc-metadata-list-summary-item"><h3 class="ipc-title__text">%d. %s</h3>`, i+1, e.Title)
		if e.Year != 0 {
			fmt.Fprintf(&rows, `<span class="cli-title-metadata-item">%d</span>`, e.Year)
		}
		rows.WriteString("</li>\n")
	}
	payload, err := json.Marshal(list)
	if err != nil {
		panic(err)
	}

	return fmt.Sprintf(`<!DOCTYPE html>
<html lang="en"><head><title>Top Chart</title>
<script type="application/ld+json">%s</script>
</head><body><ul class="ipc-metadata-list">
%s</ul></body></html>`, payload, rows.String())
}

// WriteFile writes content to path, creating parent directories.
func WriteFile(t testing.TB, path, content string) {
	t.Helper()

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}
