package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// statusBar collects header segments drawn on one background. Words are
// styled one at a time and joined with filled spaces, since a reset between
// styled runs would otherwise punch holes in the bar.
type statusBar struct {
	fill     lipgloss.Style
	segments []string
}

func newStatusBar(bg string) *statusBar {
	return &statusBar{fill: lipgloss.NewStyle().Background(lipgloss.Color(bg))}
}

func (b *statusBar) add(text string, style lipgloss.Style) {
	words := strings.Fields(text)
	if len(words) == 0 {
		return
	}
	style = style.Background(b.fill.GetBackground())
	for i, w := range words {
		words[i] = style.Render(w)
	}
	b.segments = append(b.segments, strings.Join(words, b.fill.Render(" ")))
}

func (b *statusBar) addIf(ok bool, text string, style lipgloss.Style) {
	if ok {
		b.add(text, style)
	}
}

func (b *statusBar) render(width int, frame lipgloss.Style) string {
	return frame.Width(width).Render(strings.Join(b.segments, b.fill.Render("  ")))
}

// renderHeader renders the status bar: title, page position, layout and
// zoom, then cover and fullscreen flags when they apply.
func (m Model) renderHeader() string {
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	s := m.ctrl.State()

	title := m.title
	if title == "" {
		title = "untitled"
	}

	bar := newStatusBar(m.theme.Surface)
	bar.add("spread", styles.Logo)
	bar.add(truncateName(title, 40), styles.Text)
	bar.add(pageLabel(s), styles.AccentText)
	bar.add(s.ViewMode.String(), styles.MutedText)
	bar.add(zoomLabel(s), styles.MutedText)
	bar.addIf(s.ViewMode.Double() && s.FirstPageAsCover, "cover", styles.FaintText)
	bar.addIf(s.FullScreen, "fullscreen", styles.WarningText)
	return bar.render(m.width, styles.Header)
}
