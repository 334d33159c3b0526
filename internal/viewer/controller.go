package viewer

import (
	"io"
	"log"
	"sync"
)

// PageCounter is the part of a document provider the controller consumes.
type PageCounter interface {
	PageCount() int
}

// Option configures a Controller.
type Option func(*Controller)

// WithLogger routes controller diagnostics to l.
func WithLogger(l *log.Logger) Option {
	return func(c *Controller) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithFullscreen installs the platform fullscreen service.
func WithFullscreen(f Fullscreen) Option {
	return func(c *Controller) {
		c.screen = f
	}
}

// Controller owns the navigation state for one document session. All
// mutations go through its methods, each of which leaves the state valid.
type Controller struct {
	mu       sync.RWMutex
	doc      PageCounter
	state    State
	screen   Fullscreen
	toggling bool
	logger   *log.Logger

	observers    map[int]func(State)
	nextObserver int
}

// New creates a controller with default state for doc. A nil doc behaves as
// an empty document.
func New(doc PageCounter, opts ...Option) *Controller {
	c := &Controller{
		doc:       doc,
		state:     DefaultState(),
		logger:    log.New(io.Discard, "", 0),
		observers: make(map[int]func(State)),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.state.TotalPages = c.pageCount()
	return c
}

// State returns a snapshot of the current state.
func (c *Controller) State() State {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.state
}

// PagesToDisplay returns the pages of the current spread in page order.
func (c *Controller) PagesToDisplay() []int {
	return c.State().PagesToDisplay()
}

// VisualOrder returns the pages of the current spread in screen order.
func (c *Controller) VisualOrder() []int {
	return c.State().VisualOrder()
}

// Subscribe registers fn to receive a snapshot after every change. The
// returned function removes the subscription.
func (c *Controller) Subscribe(fn func(State)) (cancel func()) {
	c.mu.Lock()
	id := c.nextObserver
	c.nextObserver++
	c.observers[id] = fn
	c.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			c.mu.Lock()
			delete(c.observers, id)
			c.mu.Unlock()
		})
	}
}

// GoToPage moves to target. Out-of-range targets are clamped and the result
// is realigned onto the anchor of its spread.
func (c *Controller) GoToPage(target int) {
	c.mutate(func(s *State) {
		s.CurrentPage = s.anchor(target)
	})
}

// NextPage advances by one spread.
func (c *Controller) NextPage() {
	c.mutate(func(s *State) {
		_, last := s.spread(s.CurrentPage)
		s.CurrentPage = s.anchor(last + 1)
	})
}

// PreviousPage goes back by one spread.
func (c *Controller) PreviousPage() {
	c.mutate(func(s *State) {
		first, _ := s.spread(s.CurrentPage)
		s.CurrentPage = s.anchor(first - 1)
	})
}

// SetFirstPageAsCover toggles cover handling and re-anchors the current page
// onto the new spread boundaries.
func (c *Controller) SetFirstPageAsCover(cover bool) {
	c.mutate(func(s *State) {
		s.FirstPageAsCover = cover
		s.CurrentPage = s.anchor(s.CurrentPage)
	})
}

// CycleViewMode rotates single -> double-ltr -> double-rtl -> single.
func (c *Controller) CycleViewMode() {
	c.mutate(func(s *State) {
		s.ViewMode = s.ViewMode.next()
		s.CurrentPage = s.anchor(s.CurrentPage)
	})
}

// SetViewMode switches directly to mode.
func (c *Controller) SetViewMode(mode ViewMode) {
	c.mutate(func(s *State) {
		s.ViewMode = mode
		s.CurrentPage = s.anchor(s.CurrentPage)
	})
}

// SetZoomMode selects a zoom mode without touching the custom factor.
func (c *Controller) SetZoomMode(mode ZoomMode) {
	c.mutate(func(s *State) {
		s.ZoomMode = mode
	})
}

// ZoomIn raises the custom factor by one step and switches to custom zoom.
func (c *Controller) ZoomIn() {
	c.mutate(func(s *State) {
		s.CustomZoom = clamp(s.CustomZoom+ZoomStep, MinZoom, MaxZoom)
		s.ZoomMode = ZoomCustom
	})
}

// ZoomOut lowers the custom factor by one step and switches to custom zoom.
func (c *Controller) ZoomOut() {
	c.mutate(func(s *State) {
		s.CustomZoom = clamp(s.CustomZoom-ZoomStep, MinZoom, MaxZoom)
		s.ZoomMode = ZoomCustom
	})
}

// SetCustomZoom sets the custom factor, clamped, and switches to custom zoom.
func (c *Controller) SetCustomZoom(factor float64) {
	c.mutate(func(s *State) {
		s.CustomZoom = clamp(factor, MinZoom, MaxZoom)
		s.ZoomMode = ZoomCustom
	})
}

// SetPageGap sets the spacing between paired pages. Negative gaps become 0.
func (c *Controller) SetPageGap(gap int) {
	c.mutate(func(s *State) {
		s.PageGap = max(gap, 0)
	})
}

// Reset restores the defaults. FullScreen is kept because it mirrors the
// platform rather than a viewer preference.
func (c *Controller) Reset() {
	c.mutate(func(s *State) {
		fullScreen := s.FullScreen
		total := s.TotalPages
		*s = DefaultState()
		s.TotalPages = total
		s.FullScreen = fullScreen
	})
}

// Refresh re-reads the page count from the document and revalidates the
// current page. Call it after the document behind the controller changed.
func (c *Controller) Refresh() {
	c.mutate(func(*State) {})
}

// mutate applies fn to the state under the lock after refreshing the page
// count, then notifies observers if anything changed.
func (c *Controller) mutate(fn func(s *State)) {
	c.mu.Lock()
	before := c.state
	c.state.TotalPages = c.pageCount()
	fn(&c.state)
	c.state.CurrentPage = c.state.anchor(c.state.CurrentPage)
	after := c.state
	c.mu.Unlock()

	if after != before {
		c.notify(after)
	}
}

func (c *Controller) notify(s State) {
	c.mu.RLock()
	fns := make([]func(State), 0, len(c.observers))
	for _, fn := range c.observers {
		fns = append(fns, fn)
	}
	c.mu.RUnlock()

	for _, fn := range fns {
		fn(s)
	}
}

func (c *Controller) pageCount() int {
	if c.doc == nil {
		return 0
	}
	return max(c.doc.PageCount(), 0)
}
