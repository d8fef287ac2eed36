// Package chart turns one ranked-listing HTML document into an ordered list of
// title/year/rating records.
//
// Listing pages expose the same entries through several channels that are each
// unreliable on their own: an embedded JSON-LD ItemList, the rendered summary
// list markup, and bare year tokens scattered across the document. The
// Extractor tries its title sources in order until one yields entries, lets a
// Correlator attach years, and finally patches still-missing years from a
// static Backfill table of well-known titles.
//
// The package performs no I/O. Callers hand it an already materialized
// document; acquisition lives in internal/fetch and persistence in
// internal/catalog. Extraction never fails on data-quality problems: malformed
// blocks are skipped and missing values stay unset.
package chart
