// Package ui provides the terminal console for spread.
//
// # Architecture Overview
//
// The console is a Bubble Tea program over a viewer.Controller. It holds no
// navigation state of its own: every key press calls a controller operation
// and View renders from Controller.State. Changes that arrive from outside
// the event loop, such as the terminal leaving fullscreen, reach the program
// through a controller subscription that wakes a waiting command.
//
// # Package Structure
//
//   - app.go: Model, key handling, commands and Run
//   - keys.go: Key bindings shared with the help views
//   - spread.go: Header, footer and page card layout
//   - help.go, logs.go: Help and recent log overlays
//   - theme.go: Color palettes and Lipgloss styles
//
// # Page Cards
//
// Each displayed page is drawn as a bordered card in screen order, so a
// right-to-left spread puts the higher page on the left. Card size follows
// the zoom mode:
//
//   - fit-height: the card fills the content height
//   - fit-width: the spread fills the content width
//   - actual: 8 PDF points per column, 16 per row
//   - custom: actual size times the custom factor
//
// Cards keep the page aspect ratio until they reach the content area, where
// they are clipped. The page gap is drawn as one column per 4 points.
//
// # Fullscreen
//
// Fullscreen is the terminal's alternate screen. Toggling runs as a command
// because the platform service sends to the program while the toggle waits;
// calling it from Update would block the event loop. Esc asks the platform
// to leave fullscreen on its own, as a user would with a window manager.
//
// # Key Bindings
//
//   - →/l/space, ←/h: next and previous spread
//   - g/G: first and last page; ":" opens the go to page prompt
//   - v: cycle view mode; c: toggle cover page; [ and ]: page gap
//   - w/H/a: fit width, fit height, actual size; +/-: zoom; 0: reset view
//   - f: fullscreen; esc: leave fullscreen; L: recent log
//   - T: cycle theme (saved to prefs.toml); ?: help; q/ctrl+c: quit
package ui
