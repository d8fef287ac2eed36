// Package logging builds topchart's slog loggers.
//
// The CLI logs a console or JSON stream to stderr and, with a log directory
// configured, tees every record at debug level into a daily JSON file. Run
// IDs travel on the context and show up as run= on console lines.
package logging
