// Package fetch acquires the listing page: an HTTP client with browser-like
// headers and bounded retries, plus a local page cache that lets a run reuse a
// saved copy (or work entirely offline when the site blocks scripted clients).
package fetch
