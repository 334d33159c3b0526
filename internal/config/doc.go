// Package config loads spread's TOML configuration file.
//
// # Overview
//
// The configuration supplies the view preferences applied when a document is
// opened and the directory that receives the application log. Every field is
// optional.
//
// # Configuration Discovery
//
// Load follows this resolution order:
//
//  1. If a path is explicitly provided, use it
//  2. Otherwise, use ~/.config/spread/config.toml
//  3. If the file does not exist, return Default
//  4. If the file exists but a field is missing or blank, use its default
//
// # TOML Format
//
//	view_mode = "double-rtl"      # single | double-ltr | double-rtl
//	first_page_as_cover = true
//	zoom_mode = "fit-height"      # fit-width | fit-height | actual | custom
//	custom_zoom = 1.0
//	page_gap = 8
//	log_dir = "~/.local/state/spread"
//
// Mode names are matched case-insensitively. An unknown name fails the load.
// Numeric values are passed through unchanged; the viewer clamps them when
// they are applied.
//
// # Path Expansion
//
// The config path and log_dir accept absolute paths, paths starting with ~
// and relative paths, which are made absolute against the working directory.
//
// # Error Handling
//
// Load returns errors for:
//   - Path expansion failures (e.g., cannot determine home directory)
//   - File read errors (except os.ErrNotExist, which triggers defaults)
//   - TOML parsing errors and unknown mode names
//
// A missing config file is not an error.
package config
