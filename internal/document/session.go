package document

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"path/filepath"
	"strconv"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/pagetree"
)

// ErrNotLoaded is returned when an operation needs an open document.
var ErrNotLoaded = errors.New("no document loaded")

const pageCacheTTL = 10 * time.Minute

// Info is a snapshot of a session's observable fields.
type Info struct {
	ID       string
	FileName string
	NumPages int
	Loading  bool
	Err      error
}

// Session holds at most one open PDF document.
type Session struct {
	mu       sync.RWMutex
	id       string
	fileName string
	numPages int
	loading  bool
	err      error
	reader   *pdf.Reader

	pages  *cache.Cache
	logger *log.Logger
}

// NewSession returns an empty session. A nil logger discards diagnostics.
func NewSession(logger *log.Logger) *Session {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Session{
		pages:  cache.New(pageCacheTTL, 0),
		logger: logger,
	}
}

// Load opens the PDF at path, replacing any previously loaded document. On
// failure the session is left empty and the error is also recorded in Info.
func (s *Session) Load(ctx context.Context, path string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.Clear()
	s.mu.Lock()
	s.loading = true
	s.fileName = filepath.Base(path)
	s.mu.Unlock()

	reader, count, err := openPDF(path)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = false
	if err != nil {
		s.err = err
		s.logger.Printf("document load failed: %s: %v", path, err)
		return err
	}
	if err := ctx.Err(); err != nil {
		_ = reader.Close()
		s.err = err
		return err
	}
	s.reader = reader
	s.numPages = count
	s.id = uuid.New().String()
	s.logger.Printf("document loaded: session=%s file=%s pages=%d", s.id, s.fileName, count)
	return nil
}

func openPDF(path string) (*pdf.Reader, int, error) {
	reader, err := pdf.Open(path, nil)
	if err != nil {
		return nil, 0, fmt.Errorf("open pdf: %w", err)
	}
	count, err := pagetree.NumPages(reader)
	if err != nil {
		_ = reader.Close()
		return nil, 0, fmt.Errorf("read page count: %w", err)
	}
	return reader, count, nil
}

// Clear closes the open document and resets the session.
func (s *Session) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.reader != nil {
		if err := s.reader.Close(); err != nil {
			s.logger.Printf("document close failed: %v", err)
		}
	}
	s.reader = nil
	s.id = ""
	s.fileName = ""
	s.numPages = 0
	s.err = nil
	s.pages.Flush()
}

// Info returns a snapshot of the session.
func (s *Session) Info() Info {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Info{
		ID:       s.id,
		FileName: s.fileName,
		NumPages: s.numPages,
		Loading:  s.loading,
		Err:      s.err,
	}
}

// PageCount implements Provider.
func (s *Session) PageCount() int {
	if s == nil {
		return 0
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.numPages
}

// Page implements Provider.
func (s *Session) Page(n int) (Page, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.reader == nil {
		s.logger.Printf("page %d requested: %v", n, ErrNotLoaded)
		return Page{}, false
	}
	if n < 1 || n > s.numPages {
		s.logger.Printf("page %d requested: valid pages are 1 to %d", n, s.numPages)
		return Page{}, false
	}

	key := strconv.Itoa(n)
	if cached, ok := s.pages.Get(key); ok {
		return cached.(Page), true
	}

	p, err := readPage(s.reader, n)
	if err != nil {
		s.logger.Printf("read page %d: %v", n, err)
		return Page{}, false
	}
	s.pages.SetDefault(key, p)
	return p, true
}

func readPage(r *pdf.Reader, n int) (Page, error) {
	_, dict, err := pagetree.GetPage(r, n-1)
	if err != nil {
		return Page{}, err
	}

	p := Letter(n)
	c := pdf.NewCursor(r)
	box, err := c.Rectangle(dict["MediaBox"])
	if err != nil {
		return Page{}, fmt.Errorf("media box: %w", err)
	}
	if box != nil && box.Dx() > 0 && box.Dy() > 0 {
		p.Width, p.Height = box.Dx(), box.Dy()
	}

	rotate, err := c.Integer(dict["Rotate"])
	if err == nil && (rotate%180+180)%180 == 90 {
		p.Width, p.Height = p.Height, p.Width
	}
	return p, nil
}
