// Package catalog persists the scraped movie catalog in SQLite.
//
// It owns the media types (Movie, Series) shared by reporting and the CLI,
// the embedded schema with its version check, idempotent inserts keyed by
// title, and the scrape run history. Writes retry on SQLITE_BUSY with a short
// backoff so concurrent readers do not fail a run.
package catalog
