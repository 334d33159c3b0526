package ui

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/spread/internal/document"
	"github.com/five82/spread/internal/viewer"
)

const (
	// pointsPerColumn is the actual-size scale: PDF points per terminal column.
	pointsPerColumn = 8.0
	// cellAspect is the height of a terminal cell relative to its width.
	cellAspect = 2.0
	// gapPointsPerColumn converts the page gap from points to columns.
	gapPointsPerColumn = 4
	// gapStep is the page gap change per key press, in points.
	gapStep = 2

	minCardCols = 5
	minCardRows = 3

	// chromeRows is the header plus the footer.
	chromeRows = 2
)

// cardSize is the outer size of a page card, borders included.
type cardSize struct {
	cols int
	rows int
}

// gapColumns converts a page gap in points to whole columns, rounding up.
func gapColumns(gap int) int {
	if gap <= 0 {
		return 0
	}
	return (gap + gapPointsPerColumn - 1) / gapPointsPerColumn
}

// layoutCards sizes one card per page for a width x height area. Cards keep
// the page aspect ratio until they hit the area bounds, where they are
// clipped.
func layoutCards(pages []document.Page, s viewer.State, width, height int) []cardSize {
	n := len(pages)
	if n == 0 {
		return nil
	}
	gap := gapColumns(s.PageGap) * (n - 1)
	slot := max((width-gap)/n, 0)

	out := make([]cardSize, n)
	for i, p := range pages {
		aspect := p.Aspect() * cellAspect
		var cols, rows float64
		switch s.ZoomMode {
		case viewer.ZoomFitWidth:
			cols = float64(slot)
			rows = cols / aspect
		case viewer.ZoomActual, viewer.ZoomCustom:
			scale := 1.0
			if s.ZoomMode == viewer.ZoomCustom {
				scale = s.CustomZoom
			}
			cols = p.Width / pointsPerColumn * scale
			rows = p.Height / (pointsPerColumn * cellAspect) * scale
		default: // fit-height
			rows = float64(height)
			cols = rows * aspect
		}
		out[i] = cardSize{
			cols: max(min(int(math.Round(cols)), slot), minCardCols),
			rows: max(min(int(math.Round(rows)), height), minCardRows),
		}
	}
	return out
}

// spreadPages returns the geometry of the displayed pages in screen order.
func (m Model) spreadPages(s viewer.State) []document.Page {
	order := s.VisualOrder()
	pages := make([]document.Page, len(order))
	for i, n := range order {
		pages[i] = m.page(n)
	}
	return pages
}

func (m Model) page(n int) document.Page {
	if m.pages != nil {
		if p, ok := m.pages.Page(n); ok {
			return p
		}
	}
	return document.Letter(n)
}

// renderSpread renders the current spread as page cards centered in the
// content area.
func (m Model) renderSpread() string {
	styles := m.theme.Styles()
	width := max(m.width, 0)
	height := max(m.height-chromeRows, minCardRows)
	s := m.ctrl.State()

	if s.TotalPages == 0 {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
			styles.MutedText.Render("No pages to display"))
	}

	pages := m.spreadPages(s)
	sizes := layoutCards(pages, s, width, height)
	spacer := strings.Repeat(" ", gapColumns(s.PageGap))

	parts := make([]string, 0, 2*len(pages)-1)
	for i, p := range pages {
		if i > 0 && spacer != "" {
			parts = append(parts, spacer)
		}
		style := styles.Page
		if p.Number == s.CurrentPage {
			style = styles.AnchorPage
		}
		// Width and Height exclude the border.
		card := style.
			Width(sizes[i].cols - 2).
			Height(sizes[i].rows - 2).
			Render(strconv.Itoa(p.Number))
		parts = append(parts, card)
	}

	row := lipgloss.JoinHorizontal(lipgloss.Center, parts...)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, row)
}

// renderFooter renders the goto prompt, a status message or the short help.
func (m Model) renderFooter() string {
	styles := m.theme.Styles()
	switch {
	case m.prompting:
		return m.prompt.View()
	case m.status != "":
		return styles.DangerText.Render(truncate(m.status, m.width))
	default:
		return m.help.ShortHelpView(m.keys.ShortHelp())
	}
}

func pageLabel(s viewer.State) string {
	if s.TotalPages == 0 {
		return "no pages"
	}
	pages := s.PagesToDisplay()
	if len(pages) == 1 {
		return fmt.Sprintf("p. %d / %d", pages[0], s.TotalPages)
	}
	return fmt.Sprintf("pp. %d-%d / %d", pages[0], pages[len(pages)-1], s.TotalPages)
}

func zoomLabel(s viewer.State) string {
	if s.ZoomMode == viewer.ZoomCustom {
		return fmt.Sprintf("%.0f%%", s.CustomZoom*100)
	}
	return s.ZoomMode.String()
}
