package app

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/five82/spread/internal/document"
	"github.com/five82/spread/internal/viewer"
)

const (
	defaultPollInterval = 2 * time.Second
	maxBackoff          = 30 * time.Second
)

// fileStamp identifies one version of a file on disk.
type fileStamp struct {
	modTime time.Time
	size    int64
}

func (s fileStamp) equal(o fileStamp) bool {
	return s.size == o.size && s.modTime.Equal(o.modTime)
}

func statFile(path string) (fileStamp, error) {
	info, err := os.Stat(path)
	if err != nil {
		return fileStamp{}, fmt.Errorf("stat document: %w", err)
	}
	return fileStamp{modTime: info.ModTime(), size: info.Size()}, nil
}

// reloader reloads the document when the file behind it changes and lets
// the controller revalidate the current page.
type reloader struct {
	path     string
	session  *document.Session
	ctrl     *viewer.Controller
	logger   *log.Logger
	interval time.Duration
	last     fileStamp
	// resume is the page shown before a failed reload emptied the session.
	resume int
}

func newReloader(path string, session *document.Session, ctrl *viewer.Controller, logger *log.Logger, interval time.Duration) *reloader {
	if interval <= 0 {
		interval = defaultPollInterval
	}
	r := &reloader{
		path:     path,
		session:  session,
		ctrl:     ctrl,
		logger:   logger,
		interval: interval,
	}
	// A failed stat leaves last empty, so the first successful poll reloads.
	r.last, _ = statFile(path)
	return r
}

// run polls until ctx is done. Failures back off up to maxBackoff.
func (r *reloader) run(ctx context.Context) {
	failures := 0
	timer := time.NewTimer(r.interval)
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-timer.C:
		}

		if _, err := r.poll(ctx); err != nil {
			failures++
			r.logger.Printf("document reload failed (attempt %d): %v", failures, err)
		} else {
			failures = 0
		}
		timer.Reset(calculateBackoff(failures, r.interval))
	}
}

// poll reloads the document if the file changed since the last successful
// load. It reports whether a reload happened.
func (r *reloader) poll(ctx context.Context) (bool, error) {
	stamp, err := statFile(r.path)
	if err != nil {
		return false, err
	}
	if stamp.equal(r.last) {
		return false, nil
	}

	page := r.ctrl.State().CurrentPage
	hadPages := r.session.PageCount() > 0

	err = r.session.Load(ctx, r.path)
	r.ctrl.Refresh()
	if err != nil {
		if hadPages {
			r.resume = page
		}
		return false, err
	}
	r.last = stamp
	if r.resume > 0 {
		r.ctrl.GoToPage(r.resume)
		r.resume = 0
	}
	r.logger.Printf("document reloaded: %s (%d pages)", r.path, r.session.PageCount())
	return true, nil
}

// calculateBackoff doubles the interval per consecutive failure, capped at
// maxBackoff.
func calculateBackoff(failures int, interval time.Duration) time.Duration {
	if failures <= 0 {
		return interval
	}
	backoff := interval
	for range failures {
		backoff *= 2
		if backoff >= maxBackoff {
			return maxBackoff
		}
	}
	return backoff
}
