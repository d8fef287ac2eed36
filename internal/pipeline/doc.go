// Package pipeline runs one scrape end to end: it resolves the listing page,
// extracts records, writes the records file, and loads movies plus the
// configured series into the catalog database.
//
// Runs are serialized by a lock file in the data directory so two invocations
// never rebuild the same database concurrently.
package pipeline
