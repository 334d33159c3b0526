package viewer

import (
	"fmt"
	"strings"
)

// ViewMode selects single-page display or a two-page spread.
type ViewMode int

const (
	ViewSingle ViewMode = iota
	ViewDoubleLTR
	ViewDoubleRTL
)

var viewModeNames = [...]string{
	ViewSingle:    "single",
	ViewDoubleLTR: "double-ltr",
	ViewDoubleRTL: "double-rtl",
}

func (m ViewMode) String() string {
	if m < 0 || int(m) >= len(viewModeNames) {
		return fmt.Sprintf("ViewMode(%d)", int(m))
	}
	return viewModeNames[m]
}

// Double reports whether pages are shown in pairs.
func (m ViewMode) Double() bool {
	return m == ViewDoubleLTR || m == ViewDoubleRTL
}

// next returns the following mode in the fixed cycle
// single -> double-ltr -> double-rtl -> single.
func (m ViewMode) next() ViewMode {
	switch m {
	case ViewSingle:
		return ViewDoubleLTR
	case ViewDoubleLTR:
		return ViewDoubleRTL
	default:
		return ViewSingle
	}
}

// ParseViewMode accepts the names produced by String.
func ParseViewMode(s string) (ViewMode, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for i, n := range viewModeNames {
		if n == name {
			return ViewMode(i), nil
		}
	}
	return ViewSingle, fmt.Errorf("unknown view mode %q", s)
}

// MarshalText implements encoding.TextMarshaler.
func (m ViewMode) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *ViewMode) UnmarshalText(text []byte) error {
	parsed, err := ParseViewMode(string(text))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

// ZoomMode selects how pages are scaled into the viewport.
type ZoomMode int

const (
	ZoomFitWidth ZoomMode = iota
	ZoomFitHeight
	ZoomActual
	ZoomCustom
)

var zoomModeNames = [...]string{
	ZoomFitWidth:  "fit-width",
	ZoomFitHeight: "fit-height",
	ZoomActual:    "actual",
	ZoomCustom:    "custom",
}

func (m ZoomMode) String() string {
	if m < 0 || int(m) >= len(zoomModeNames) {
		return fmt.Sprintf("ZoomMode(%d)", int(m))
	}
	return zoomModeNames[m]
}

// ParseZoomMode accepts the names produced by String.
func ParseZoomMode(s string) (ZoomMode, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for i, n := range zoomModeNames {
		if n == name {
			return ZoomMode(i), nil
		}
	}
	return ZoomFitHeight, fmt.Errorf("unknown zoom mode %q", s)
}

// MarshalText implements encoding.TextMarshaler.
func (m ZoomMode) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *ZoomMode) UnmarshalText(text []byte) error {
	parsed, err := ParseZoomMode(string(text))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}
