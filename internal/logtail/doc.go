// Package logtail reads the end of spread's log file for display in the
// console.
//
// # Reading
//
// Read returns the last N lines of a file in one pass over it, keeping only
// a ring buffer of N lines in memory. A missing file is not an error: the
// log is created lazily and may not exist yet.
//
// # Parsing
//
// The application log is written by the standard library logger with
// log.LstdFlags|log.Lmicroseconds, so every line starts with a timestamp
// such as
//
//	2026/10/15 14:32:15.123456 fullscreen request failed (enter=true): ...
//
// Parse splits that prefix from the message. Lines without it, such as
// continuation lines, keep their full text as the message and a zero time.
// Entry.Problem flags failures so the console can highlight them.
package logtail
