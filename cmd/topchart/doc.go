// Package main hosts the topchart CLI entrypoint and command graph.
//
// The Cobra command tree previews what the extraction engine recovers from a
// chart page, runs the full scrape pipeline, and renders reports from the
// catalog database. Configuration resolution and logger setup live in the
// shared command context so subcommands only deal with presentation.
package main
