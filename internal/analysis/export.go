package analysis

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"topchart/internal/catalog"
	"topchart/internal/fileutil"
)

// Export file names written by ExportCatalog.
const (
	MoviesCSV  = "movies.csv"
	SeriesCSV  = "series.csv"
	MoviesJSON = "movies.json"
	SeriesJSON = "series.json"
	// ClassifiedJSON holds every movie with its rating category.
	ClassifiedJSON = "movies_classified.json"
)

// ExportCSV writes header and rows as UTF-8 CSV, creating parent directories.
// With bom set the file starts with a byte order mark so spreadsheet tools
// detect the encoding.
func ExportCSV(path string, header []string, rows [][]string, bom bool) error {
	if err := ensureParent(path); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}

	var w io.Writer = f
	var enc io.WriteCloser
	if bom {
		enc = transform.NewWriter(f, unicode.UTF8BOM.NewEncoder())
		w = enc
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(header); err != nil {
		_ = f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := cw.WriteAll(rows); err != nil {
		_ = f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	if enc != nil {
		if err := enc.Close(); err != nil {
			_ = f.Close()
			return fmt.Errorf("flush %s: %w", path, err)
		}
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}
	return nil
}

// ExportJSON writes v as indented JSON, leaving non-ASCII text and HTML
// characters unescaped.
func ExportJSON(path string, v any) error {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}
	if err := fileutil.WriteAtomic(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// MovieTable renders movies as CSV-ready cells.
func MovieTable(movies []catalog.Movie) ([]string, [][]string) {
	rows := make([][]string, 0, len(movies))
	for _, m := range movies {
		rows = append(rows, []string{
			strconv.FormatInt(m.ID, 10),
			m.Title,
			strconv.Itoa(m.Year),
			strconv.FormatFloat(m.Rating, 'f', -1, 64),
		})
	}
	return []string{"id", "title", "year", "rating"}, rows
}

// SeriesTable renders series as CSV-ready cells.
func SeriesTable(series []catalog.Series) ([]string, [][]string) {
	rows := make([][]string, 0, len(series))
	for _, s := range series {
		rows = append(rows, []string{
			strconv.FormatInt(s.ID, 10),
			s.Title,
			strconv.Itoa(s.Year),
			strconv.Itoa(s.Seasons),
			strconv.Itoa(s.Episodes),
		})
	}
	return []string{"id", "title", "year", "seasons", "episodes"}, rows
}

// ExportCatalog writes the catalog exports into dir and returns their
// paths in a stable order.
func ExportCatalog(dir string, movies []catalog.Movie, series []catalog.Series, bom bool) ([]string, error) {
	if movies == nil {
		movies = []catalog.Movie{}
	}
	if series == nil {
		series = []catalog.Series{}
	}
	paths := []string{
		filepath.Join(dir, MoviesCSV),
		filepath.Join(dir, SeriesCSV),
		filepath.Join(dir, MoviesJSON),
		filepath.Join(dir, SeriesJSON),
		filepath.Join(dir, ClassifiedJSON),
	}

	header, rows := MovieTable(movies)
	if err := ExportCSV(paths[0], header, rows, bom); err != nil {
		return nil, err
	}
	header, rows = SeriesTable(series)
	if err := ExportCSV(paths[1], header, rows, bom); err != nil {
		return nil, err
	}
	if err := ExportJSON(paths[2], movies); err != nil {
		return nil, err
	}
	if err := ExportJSON(paths[3], series); err != nil {
		return nil, err
	}
	if err := ExportJSON(paths[4], Classify(movies)); err != nil {
		return nil, err
	}
	return paths, nil
}

func ensureParent(path string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create export directory: %w", err)
		}
	}
	return nil
}
