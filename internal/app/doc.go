// Package app provides the orchestration layer for spread.
//
// # Overview
//
// This package wires together configuration, logging, the document session,
// the viewer controller, the terminal fullscreen service and the console. It
// is the composition root where all dependencies are initialized and
// connected.
//
// # Startup
//
// Run performs these steps in order:
//
//  1. Load the config from ~/.config/spread/config.toml (or -config)
//  2. Open the log file at <log_dir>/spread.log
//  3. Load the PDF into a document.Session
//  4. Create the terminal fullscreen service and the viewer controller
//  5. Apply the configured view preferences through controller operations
//  6. Run the console, the fullscreen watcher and the optional reloader
//
// # Goroutines
//
//	┌───────────────────────────────────────────────┐
//	│ errgroup                                      │
//	│  ├─> ui.Run()              console (blocks)   │
//	│  ├─> WatchFullScreen()     platform -> state  │
//	│  └─> reloader.run()        file -> session    │
//	└───────────────────────────────────────────────┘
//
// Quitting the console cancels the shared context, which stops the other
// goroutines. A cancelled parent context (Ctrl-C, SIGTERM) stops all three.
//
// # Reloading
//
// With PollEvery set, the reloader stats the document at that interval. When
// the modification time or size changes it reloads the session and calls
// Controller.Refresh so the current page is revalidated against the new page
// count. Consecutive failures back off exponentially up to 30 seconds.
//
// # Error Handling
//
// Fatal errors (returned from Run):
//   - Configuration file unreadable or invalid
//   - Document missing or not a PDF
//   - Console failure
//
// Recoverable errors (logged):
//   - Fullscreen requests rejected by the terminal
//   - Reload failures while polling
//   - Unwritable log file (diagnostics are dropped)
//
// # Logging
//
// The console owns the terminal, so diagnostics go to a file opened with
// log.LstdFlags|log.Lmicroseconds and are never written to stderr.
package app
