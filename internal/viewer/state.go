package viewer

import "slices"

// Zoom limits and defaults.
const (
	MinZoom     = 0.5
	MaxZoom     = 5.0
	ZoomStep    = 0.25
	DefaultZoom = 1.0

	DefaultPageGap = 8
)

// State is a read-only snapshot of the viewer. Callers receive copies; the
// Controller is the only writer.
type State struct {
	CurrentPage      int
	TotalPages       int
	FirstPageAsCover bool
	ViewMode         ViewMode
	ZoomMode         ZoomMode
	CustomZoom       float64
	FullScreen       bool
	PageGap          int
}

// DefaultState returns the state a freshly loaded document starts from.
func DefaultState() State {
	return State{
		CurrentPage:      1,
		FirstPageAsCover: true,
		ViewMode:         ViewDoubleRTL,
		ZoomMode:         ZoomFitHeight,
		CustomZoom:       DefaultZoom,
		PageGap:          DefaultPageGap,
	}
}

// lastPage is the highest valid page number. An empty document still has
// page 1 so that CurrentPage never drops below it.
func (s State) lastPage() int {
	return max(s.TotalPages, 1)
}

// spread returns the first and last page of the spread that contains page.
//
// Spreads are {1}, {2,3}, {4,5}, ... with the cover enabled and {1,2},
// {3,4}, ... without it. In single mode every page stands alone. The last
// spread is clipped to the document, so it may hold only one page.
func (s State) spread(page int) (first, last int) {
	page = clamp(page, 1, s.lastPage())
	switch {
	case !s.ViewMode.Double():
		first, last = page, page
	case s.FirstPageAsCover && page == 1:
		first, last = 1, 1
	case s.FirstPageAsCover:
		first = page - page%2
		last = first + 1
	default:
		first = page - (page+1)%2
		last = first + 1
	}
	return first, min(last, s.lastPage())
}

// anchor maps any requested page onto the page navigation is anchored on:
// the last page of its spread. With the cover enabled in a double mode this
// is the "even page moves to the next odd page, then re-clamp" rule.
func (s State) anchor(page int) int {
	_, last := s.spread(page)
	return last
}

// PagesToDisplay returns the visible pages in ascending page order.
func (s State) PagesToDisplay() []int {
	first, last := s.spread(s.CurrentPage)
	pages := make([]int, 0, 2)
	for p := first; p <= last; p++ {
		pages = append(pages, p)
	}
	return pages
}

// VisualOrder returns the visible pages as they appear on screen from left
// to right. Right-to-left spreads put the lower page on the right.
func (s State) VisualOrder() []int {
	pages := s.PagesToDisplay()
	if s.ViewMode == ViewDoubleRTL {
		slices.Reverse(pages)
	}
	return pages
}

func clamp[T int | float64](v, lo, hi T) T {
	return min(max(v, lo), hi)
}
