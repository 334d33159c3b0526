package app

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/five82/spread/internal/config"
	"github.com/five82/spread/internal/document"
	"github.com/five82/spread/internal/platform"
	"github.com/five82/spread/internal/prefs"
	"github.com/five82/spread/internal/ui"
	"github.com/five82/spread/internal/viewer"
)

// Options configure the spread application.
type Options struct {
	ConfigPath   string
	LogDir       string // overrides log_dir from the config
	PrefsPath    string // empty uses default ~/.config/spread/prefs.toml
	DocumentPath string
	PollEvery    int // seconds; zero disables reloading
}

// Run opens the document and runs the console until the user quits or the
// context is cancelled.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if opts.LogDir != "" {
		dir, err := config.ExpandPath(opts.LogDir)
		if err != nil {
			return fmt.Errorf("resolve log dir: %w", err)
		}
		cfg.LogDir = dir
	}

	logger, closeLog := configureLogger(cfg.LogPath())
	defer closeLog()

	session := document.NewSession(logger)
	if err := session.Load(ctx, opts.DocumentPath); err != nil {
		return fmt.Errorf("load document: %w", err)
	}
	defer session.Clear()

	screen := platform.NewTerminal(os.Stdout)
	ctrl := viewer.New(session, viewer.WithLogger(logger), viewer.WithFullscreen(screen))
	applyConfig(ctrl, cfg)

	userPrefs := prefs.Load(opts.PrefsPath)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		// Quitting the console ends the background work too.
		defer cancel()
		return ui.Run(gctx, ui.Options{
			Controller: ctrl,
			Pages:      session,
			Title:      filepath.Base(opts.DocumentPath),
			Screen:     screen,
			ThemeName:  userPrefs.Theme,
			PrefsPath:  opts.PrefsPath,
			LogPath:    cfg.LogPath(),
			Logger:     logger,
		})
	})
	g.Go(func() error {
		ctrl.WatchFullScreen(gctx, screen.Changes())
		return nil
	})
	if opts.PollEvery > 0 {
		r := newReloader(opts.DocumentPath, session, ctrl, logger, time.Duration(opts.PollEvery)*time.Second)
		g.Go(func() error {
			r.run(gctx)
			return nil
		})
	}

	return g.Wait()
}

// applyConfig applies the configured view preferences through the
// controller, which clamps any out-of-range values.
func applyConfig(ctrl *viewer.Controller, cfg config.Config) {
	ctrl.SetViewMode(cfg.ViewMode)
	ctrl.SetFirstPageAsCover(cfg.FirstPageAsCover)
	// SetCustomZoom selects custom zoom, so the configured mode goes last.
	ctrl.SetCustomZoom(cfg.CustomZoom)
	ctrl.SetZoomMode(cfg.ZoomMode)
	ctrl.SetPageGap(cfg.PageGap)
}
