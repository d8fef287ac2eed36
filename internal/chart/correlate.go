package chart

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Correlation strategy names accepted by ParseCorrelation.
const (
	CorrelationPositional = "positional"
	CorrelationStructural = "structural"
)

// Correlator attaches release years to extracted records in place. It only
// fills records whose Year is still nil and returns how many it resolved.
type Correlator interface {
	Name() string
	Correlate(p *Page, records []Record) int
}

// Positional pairs the Nth record with the Nth plausible year token of the
// whole document.
//
// Alignment is purely by extraction order. Extra year-like tokens earlier in
// the page shift every following year onto the wrong title, and records past
// the end of the token sequence stay unset.
type Positional struct{}

func (Positional) Name() string { return CorrelationPositional }

func (Positional) Correlate(p *Page, records []Record) int {
	if p == nil {
		return 0
	}
	years := ScanYears(p.HTML)
	resolved := 0
	for i := range records {
		if i >= len(years) {
			break
		}
		if records[i].Year != nil {
			continue
		}
		records[i].Year = IntPtr(years[i])
		resolved++
	}
	return resolved
}

// Structural scopes the year scan to each summary list item, pairing the
// item's own heading with the first plausible year token inside it. Records
// are matched to items by exact title; when several items share a title the
// first one wins.
type Structural struct{}

func (Structural) Name() string { return CorrelationStructural }

func (Structural) Correlate(p *Page, records []Record) int {
	if p == nil || len(records) == 0 {
		return 0
	}
	byTitle := make(map[string]int)
	p.doc.Find(summaryItemSelector).Each(func(_ int, item *goquery.Selection) {
		title := summaryTitle(item)
		if title == "" {
			return
		}
		if _, seen := byTitle[title]; seen {
			return
		}
		scoped, err := goquery.OuterHtml(item)
		if err != nil {
			return
		}
		if years := ScanYears(scoped); len(years) > 0 {
			byTitle[title] = years[0]
		}
	})

	resolved := 0
	for i := range records {
		if records[i].Year != nil {
			continue
		}
		if year, ok := byTitle[records[i].Title]; ok {
			records[i].Year = IntPtr(year)
			resolved++
		}
	}
	return resolved
}

type chain []Correlator

// Chain runs correlators in order; each later one sees only the records the
// earlier ones left unresolved.
func Chain(correlators ...Correlator) Correlator {
	out := make(chain, 0, len(correlators))
	for _, c := range correlators {
		if c != nil {
			out = append(out, c)
		}
	}
	return out
}

func (c chain) Name() string {
	names := make([]string, 0, len(c))
	for _, cr := range c {
		names = append(names, cr.Name())
	}
	return strings.Join(names, "+")
}

func (c chain) Correlate(p *Page, records []Record) int {
	resolved := 0
	for _, cr := range c {
		resolved += cr.Correlate(p, records)
	}
	return resolved
}

// ParseCorrelation maps a configured strategy name to a Correlator.
// "structural" scopes years to list items first and falls back to positional
// alignment for whatever it could not resolve.
func ParseCorrelation(name string) (Correlator, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", CorrelationPositional:
		return Positional{}, nil
	case CorrelationStructural:
		return Chain(Structural{}, Positional{}), nil
	default:
		return nil, fmt.Errorf("unknown correlation strategy %q", name)
	}
}
