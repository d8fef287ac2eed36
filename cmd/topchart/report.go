package main

import (
	"fmt"
	"io"
	"strconv"

	"topchart/internal/analysis"
	"topchart/internal/catalog"
)

type reportOptions struct {
	Threshold float64
	Preview   int
	Colorize  bool
}

// renderReport prints the ranking, threshold, category and series sections.
func renderReport(w io.Writer, movies []catalog.Movie, series []catalog.Series, opts reportOptions) {
	sorted := analysis.SortByRating(movies)
	movieHeader := []string{"Title", "Year", "Rating"}
	movieAligns := []columnAlignment{alignLeft, alignRight, alignRight}

	writeSection(w, fmt.Sprintf("Top %d movies by rating", min(opts.Preview, len(sorted))), opts.Colorize)
	fmt.Fprintln(w, renderTable(
		append([]string{"#"}, movieHeader...),
		movieRows(analysis.Head(sorted, opts.Preview), true),
		append([]columnAlignment{alignRight}, movieAligns...),
	))
	fmt.Fprintln(w)

	threshold := strconv.FormatFloat(opts.Threshold, 'f', -1, 64)
	above := analysis.FilterAbove(sorted, opts.Threshold)
	writeSection(w, "Movies rated above "+threshold, opts.Colorize)
	if len(above) == 0 {
		fmt.Fprintln(w, statusIndent+"none")
	} else {
		fmt.Fprintln(w, renderTable(movieHeader, movieRows(above, false), movieAligns))
	}
	fmt.Fprintln(w)

	classified := analysis.Classify(sorted)
	ct := analysis.NewCrosstab(classified)
	writeSection(w, "Rating categories", opts.Colorize)
	byMovie := make([][]string, 0, opts.Preview)
	for _, c := range analysis.Head(classified, opts.Preview) {
		byMovie = append(byMovie, []string{c.Title, strconv.FormatFloat(c.Rating, 'f', 1, 64), string(c.Category)})
	}
	fmt.Fprintln(w, renderTable([]string{"Title", "Rating", "Category"}, byMovie, []columnAlignment{alignLeft, alignRight, alignLeft}))
	catRows := make([][]string, 0, len(ct.Categories))
	for _, c := range ct.Categories {
		catRows = append(catRows, []string{string(c), strconv.Itoa(ct.CategoryTotal(c))})
	}
	fmt.Fprintln(w, renderTable([]string{"Category", "Movies"}, catRows, rightAligned(2)))
	fmt.Fprintln(w)

	writeSection(w, "Movies per year and category", opts.Colorize)
	header := ct.Header()
	fmt.Fprintln(w, renderTable(header, ct.Rows(), rightAligned(len(header))))
	fmt.Fprintln(w)

	writeSection(w, "Series", opts.Colorize)
	if len(series) == 0 {
		fmt.Fprintln(w, statusIndent+"none")
		return
	}
	fmt.Fprintln(w, renderTable(
		[]string{"Title", "Year", "Seasons", "Episodes"},
		seriesRows(series),
		[]columnAlignment{alignLeft, alignRight, alignRight, alignRight},
	))
}

func writeExports(w io.Writer, dir string, movies []catalog.Movie, series []catalog.Series, bom, colorize bool) error {
	paths, err := analysis.ExportCatalog(dir, movies, series, bom)
	if err != nil {
		return err
	}
	for _, p := range paths {
		fmt.Fprintln(w, renderStatusLine("Exported", statusOK, p, colorize))
	}
	return nil
}
