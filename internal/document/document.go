// Package document provides the page source for the viewer: a session
// around one open PDF file and a fixed-length stand-in for tests.
package document

// Default page size in PDF points, used when a page carries no usable
// media box.
const (
	letterWidth  = 612.0
	letterHeight = 792.0
)

// Page is a handle for one page of a loaded document.
type Page struct {
	Number int
	// Width and Height are the displayed size in PDF points, after
	// applying the page rotation.
	Width  float64
	Height float64
}

// Aspect returns width divided by height.
func (p Page) Aspect() float64 {
	if p.Height <= 0 {
		return letterWidth / letterHeight
	}
	return p.Width / p.Height
}

// Provider exposes the page count and page handles of a document.
type Provider interface {
	PageCount() int
	// Page returns the page with 1-based number n. The boolean is false when
	// n is out of range or no document is loaded.
	Page(n int) (Page, bool)
}

// Letter returns page n with US Letter size.
func Letter(n int) Page {
	return Page{Number: n, Width: letterWidth, Height: letterHeight}
}

// Static is a provider for a document of a fixed length whose pages all
// have US Letter size.
type Static int

// PageCount implements Provider.
func (s Static) PageCount() int {
	return max(int(s), 0)
}

// Page implements Provider.
func (s Static) Page(n int) (Page, bool) {
	if n < 1 || n > s.PageCount() {
		return Page{}, false
	}
	return Letter(n), true
}
