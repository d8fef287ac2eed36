package analysis_test

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"topchart/internal/analysis"
	"topchart/internal/catalog"
)

func TestExportCSVWithBOM(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "out.csv")
	rows := [][]string{{"1", "Amélie, le film"}}
	if err := analysis.ExportCSV(path, []string{"id", "title"}, rows, true); err != nil {
		t.Fatalf("ExportCSV: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read export: %v", err)
	}
	bom := []byte{0xEF, 0xBB, 0xBF}
	if !bytes.HasPrefix(data, bom) {
		t.Fatalf("expected BOM prefix, got %q", data[:min(len(data), 8)])
	}
	want := "id,title\n1,\"Amélie, le film\"\n"
	if got := string(data[len(bom):]); got != want {
		t.Fatalf("csv body = %q, want %q", got, want)
	}
}

func TestExportCSVWithoutBOM(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")
	if err := analysis.ExportCSV(path, []string{"a"}, nil, false); err != nil {
		t.Fatalf("ExportCSV: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read export: %v", err)
	}
	if string(data) != "a\n" {
		t.Fatalf("csv = %q", data)
	}
}

func TestExportJSONPreservesText(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.json")
	movies := []catalog.Movie{{ID: 1, Title: "Léon & Mathilda <cut>", Year: 1994, Rating: 8.5}}
	if err := analysis.ExportJSON(path, movies); err != nil {
		t.Fatalf("ExportJSON: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read export: %v", err)
	}
	text := string(data)
	if !strings.Contains(text, "Léon & Mathilda <cut>") {
		t.Fatalf("expected unescaped title, got %s", text)
	}
	if !strings.Contains(text, "\n  {") {
		t.Fatalf("expected two-space indentation, got %s", text)
	}
}

func TestExportCatalog(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "exports")
	movies := []catalog.Movie{{ID: 1, Title: "The Godfather", Year: 1972, Rating: 9.2}}
	series := []catalog.Series{{ID: 1, Title: "The Wire", Year: 2002, Seasons: 5, Episodes: 60}}

	paths, err := analysis.ExportCatalog(dir, movies, series, false)
	if err != nil {
		t.Fatalf("ExportCatalog: %v", err)
	}
	want := []string{
		filepath.Join(dir, analysis.MoviesCSV),
		filepath.Join(dir, analysis.SeriesCSV),
		filepath.Join(dir, analysis.MoviesJSON),
		filepath.Join(dir, analysis.SeriesJSON),
		filepath.Join(dir, analysis.ClassifiedJSON),
	}
	if diff := cmp.Diff(want, paths); diff != "" {
		t.Fatalf("paths mismatch (-want +got):\n%s", diff)
	}

	csvData, err := os.ReadFile(paths[1])
	if err != nil {
		t.Fatalf("read series csv: %v", err)
	}
	if got := string(csvData); got != "id,title,year,seasons,episodes\n1,The Wire,2002,5,60\n" {
		t.Fatalf("series csv = %q", got)
	}

	jsonData, err := os.ReadFile(paths[2])
	if err != nil {
		t.Fatalf("read movies json: %v", err)
	}
	var decoded []catalog.Movie
	if err := json.Unmarshal(jsonData, &decoded); err != nil {
		t.Fatalf("decode movies json: %v", err)
	}
	if diff := cmp.Diff(movies, decoded); diff != "" {
		t.Fatalf("movies json mismatch (-want +got):\n%s", diff)
	}

	classifiedData, err := os.ReadFile(paths[4])
	if err != nil {
		t.Fatalf("read classified json: %v", err)
	}
	var classified []map[string]any
	if err := json.Unmarshal(classifiedData, &classified); err != nil {
		t.Fatalf("decode classified json: %v", err)
	}
	if len(classified) != 1 || classified[0]["title"] != "The Godfather" || classified[0]["category"] != string(analysis.Masterpiece) {
		t.Fatalf("unexpected classified export %v", classified)
	}
}

func TestExportCatalogEmptyWritesArrays(t *testing.T) {
	dir := t.TempDir()
	paths, err := analysis.ExportCatalog(dir, nil, nil, false)
	if err != nil {
		t.Fatalf("ExportCatalog: %v", err)
	}
	data, err := os.ReadFile(paths[3])
	if err != nil {
		t.Fatalf("read series json: %v", err)
	}
	if strings.TrimSpace(string(data)) != "[]" {
		t.Fatalf("series json = %q, want []", data)
	}
}
