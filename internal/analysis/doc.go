// Package analysis turns the stored catalog into reports: rating categories,
// ordering and threshold filters, a year by category cross-tabulation, and
// CSV/JSON exports.
package analysis
