package analysis

import (
	"slices"
	"strconv"
)

// TotalLabel names the margin row and column.
const TotalLabel = "Total"

// Crosstab counts movies per release year and category with margins.
type Crosstab struct {
	Years      []int
	Categories []Category
	counts     map[int]map[Category]int
	yearTotals map[int]int
	catTotals  map[Category]int
	Total      int
}

// NewCrosstab tabulates rows. Movies without a release year are left out, and
// only categories that occur become columns.
func NewCrosstab(rows []ClassifiedMovie) Crosstab {
	ct := Crosstab{
		counts:     make(map[int]map[Category]int),
		yearTotals: make(map[int]int),
		catTotals:  make(map[Category]int),
	}
	for _, r := range rows {
		if r.Year == 0 {
			continue
		}
		byCat, ok := ct.counts[r.Year]
		if !ok {
			byCat = make(map[Category]int)
			ct.counts[r.Year] = byCat
			ct.Years = append(ct.Years, r.Year)
		}
		byCat[r.Category]++
		ct.yearTotals[r.Year]++
		ct.catTotals[r.Category]++
		ct.Total++
	}
	slices.Sort(ct.Years)
	for _, c := range Categories {
		if ct.catTotals[c] > 0 {
			ct.Categories = append(ct.Categories, c)
		}
	}
	return ct
}

// Count returns the number of movies for one cell.
func (ct Crosstab) Count(year int, c Category) int {
	return ct.counts[year][c]
}

// YearTotal is the row margin for year.
func (ct Crosstab) YearTotal(year int) int { return ct.yearTotals[year] }

// CategoryTotal is the column margin for c.
func (ct Crosstab) CategoryTotal(c Category) int { return ct.catTotals[c] }

// Header returns the column labels: year, each category, then the margin.
func (ct Crosstab) Header() []string {
	header := make([]string, 0, len(ct.Categories)+2)
	header = append(header, "year")
	for _, c := range ct.Categories {
		header = append(header, string(c))
	}
	return append(header, TotalLabel)
}

// Rows renders one row per year followed by the margin row.
func (ct Crosstab) Rows() [][]string {
	rows := make([][]string, 0, len(ct.Years)+1)
	for _, y := range ct.Years {
		row := make([]string, 0, len(ct.Categories)+2)
		row = append(row, strconv.Itoa(y))
		for _, c := range ct.Categories {
			row = append(row, strconv.Itoa(ct.Count(y, c)))
		}
		rows = append(rows, append(row, strconv.Itoa(ct.YearTotal(y))))
	}
	total := make([]string, 0, len(ct.Categories)+2)
	total = append(total, TotalLabel)
	for _, c := range ct.Categories {
		total = append(total, strconv.Itoa(ct.CategoryTotal(c)))
	}
	return append(rows, append(total, strconv.Itoa(ct.Total)))
}
