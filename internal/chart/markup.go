package chart

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

const (
	summaryItemSelector  = "li.ipc-metadata-list-summary-item"
	summaryTitleSelector = "h3.ipc-title__text"
)

var rankPrefix = regexp.MustCompile(`^\d+\.\s*`)

// Markup reads titles from the rendered summary list. It carries no ratings.
type Markup struct{}

func (Markup) Name() string { return "markup" }

func (Markup) Extract(p *Page, max int) []Record {
	if p == nil || max <= 0 {
		return nil
	}
	var records []Record
	p.doc.Find(summaryItemSelector).EachWithBreak(func(_ int, item *goquery.Selection) bool {
		if title := summaryTitle(item); title != "" {
			records = append(records, Record{Title: title})
		}
		return len(records) < max
	})
	return records
}

// summaryTitle returns the heading of one summary item with its "12. " rank
// prefix removed, or "" when the item has no usable heading.
func summaryTitle(item *goquery.Selection) string {
	heading := item.Find(summaryTitleSelector).First()
	if heading.Length() == 0 {
		return ""
	}
	text := strings.TrimSpace(heading.Text())
	text = rankPrefix.ReplaceAllString(text, "")
	return CleanTitle(text)
}
