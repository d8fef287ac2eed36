package chart

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Page is one listing document, parsed once and shared by every source and
// correlator during a single extraction.
type Page struct {
	HTML string
	doc  *goquery.Document
}

// NewPage parses html. The HTML parser is lenient, so an error here means the
// reader itself failed rather than the markup being malformed.
func NewPage(html string) (*Page, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, err
	}
	return &Page{HTML: html, doc: doc}, nil
}

// Document exposes the parsed tree for custom sources.
func (p *Page) Document() *goquery.Document {
	return p.doc
}
