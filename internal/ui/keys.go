package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines all keyboard bindings for the console.
type keyMap struct {
	// Global
	Quit       key.Binding
	Help       key.Binding
	CycleTheme key.Binding
	Logs       key.Binding
	Release    key.Binding
	Fullscreen key.Binding

	// Navigation
	Next  key.Binding
	Prev  key.Binding
	First key.Binding
	Last  key.Binding
	GoTo  key.Binding

	// Layout
	CycleView   key.Binding
	ToggleCover key.Binding
	GapLess     key.Binding
	GapMore     key.Binding

	// Zoom
	FitWidth  key.Binding
	FitHeight key.Binding
	Actual    key.Binding
	ZoomIn    key.Binding
	ZoomOut   key.Binding
	Reset     key.Binding

	// Prompt
	Confirm key.Binding
	Cancel  key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() keyMap {
	return keyMap{
		// Global
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "Quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "Toggle help"),
		),
		CycleTheme: key.NewBinding(
			key.WithKeys("T"),
			key.WithHelp("T", "Cycle theme"),
		),
		Logs: key.NewBinding(
			key.WithKeys("L"),
			key.WithHelp("L", "Recent log"),
		),
		Release: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "Leave fullscreen"),
		),
		Fullscreen: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "Toggle fullscreen"),
		),

		// Navigation
		Next: key.NewBinding(
			key.WithKeys("right", "l", " "),
			key.WithHelp("→/l/space", "Next"),
		),
		Prev: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "Previous"),
		),
		First: key.NewBinding(
			key.WithKeys("g", "home"),
			key.WithHelp("g", "First page"),
		),
		Last: key.NewBinding(
			key.WithKeys("G", "end"),
			key.WithHelp("G", "Last page"),
		),
		GoTo: key.NewBinding(
			key.WithKeys(":"),
			key.WithHelp(":", "Go to page"),
		),

		// Layout
		CycleView: key.NewBinding(
			key.WithKeys("v"),
			key.WithHelp("v", "Cycle view mode"),
		),
		ToggleCover: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "Toggle cover page"),
		),
		GapLess: key.NewBinding(
			key.WithKeys("["),
			key.WithHelp("[", "Narrow gap"),
		),
		GapMore: key.NewBinding(
			key.WithKeys("]"),
			key.WithHelp("]", "Widen gap"),
		),

		// Zoom
		FitWidth: key.NewBinding(
			key.WithKeys("w"),
			key.WithHelp("w", "Fit width"),
		),
		FitHeight: key.NewBinding(
			key.WithKeys("H"),
			key.WithHelp("H", "Fit height"),
		),
		Actual: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "Actual size"),
		),
		ZoomIn: key.NewBinding(
			key.WithKeys("+", "="),
			key.WithHelp("+", "Zoom in"),
		),
		ZoomOut: key.NewBinding(
			key.WithKeys("-"),
			key.WithHelp("-", "Zoom out"),
		),
		Reset: key.NewBinding(
			key.WithKeys("0"),
			key.WithHelp("0", "Reset view"),
		),

		// Prompt
		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "Confirm"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "Cancel"),
		),
	}
}

// ShortHelp returns key bindings for the short help view.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Prev, k.GoTo, k.CycleView, k.Fullscreen, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		// Navigation
		{k.Next, k.Prev, k.First, k.Last, k.GoTo},
		// Layout
		{k.CycleView, k.ToggleCover, k.GapLess, k.GapMore},
		// Zoom
		{k.FitWidth, k.FitHeight, k.Actual, k.ZoomIn, k.ZoomOut, k.Reset},
		// General
		{k.Fullscreen, k.Release, k.Logs, k.CycleTheme, k.Help, k.Quit},
	}
}
