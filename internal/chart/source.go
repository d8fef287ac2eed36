package chart

// Source recovers ranked entries from a page. Sources return records with a
// title and, when the channel carries one, a rating; years are left to the
// Correlator. A source that finds nothing returns an empty slice.
type Source interface {
	Name() string
	Extract(p *Page, max int) []Record
}

// DefaultSources lists the strategies tried in order: the embedded ld+json
// ItemList first, the rendered summary list second.
func DefaultSources() []Source {
	return []Source{StructuredData{}, Markup{}}
}
