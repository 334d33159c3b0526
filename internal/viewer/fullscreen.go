package viewer

import "context"

// Fullscreen is the platform service that enters and leaves fullscreen.
type Fullscreen interface {
	// Interactive reports whether there is a display that can go fullscreen
	// at all.
	Interactive() bool
	Enter(ctx context.Context) error
	Exit(ctx context.Context) error
}

// ToggleFullScreen asks the platform to enter fullscreen, or to leave it
// when already active, and records the new state once the platform has
// acknowledged.
//
// Without an interactive display, or while an earlier toggle is still in
// flight, the call returns immediately. Platform failures are logged and
// leave FullScreen unchanged.
func (c *Controller) ToggleFullScreen(ctx context.Context) {
	if c.screen == nil || !c.screen.Interactive() {
		return
	}

	c.mu.Lock()
	if c.toggling {
		c.mu.Unlock()
		c.logger.Printf("fullscreen toggle ignored: request already in flight")
		return
	}
	c.toggling = true
	enter := !c.state.FullScreen
	c.mu.Unlock()

	var err error
	if enter {
		err = c.screen.Enter(ctx)
	} else {
		err = c.screen.Exit(ctx)
	}

	c.mu.Lock()
	c.toggling = false
	if err != nil {
		c.mu.Unlock()
		c.logger.Printf("fullscreen request failed (enter=%t): %v", enter, err)
		return
	}
	changed := c.state.FullScreen != enter
	c.state.FullScreen = enter
	snap := c.state
	c.mu.Unlock()

	if changed {
		c.notify(snap)
	}
}

// SyncFullScreen records a fullscreen change reported by the platform, such
// as the user leaving fullscreen with a hardware key. Repeated reports of
// the same state are harmless.
func (c *Controller) SyncFullScreen(active bool) {
	c.mu.Lock()
	changed := c.state.FullScreen != active
	c.state.FullScreen = active
	snap := c.state
	c.mu.Unlock()

	if changed {
		c.notify(snap)
	}
}

// WatchFullScreen feeds platform notifications from changes into
// SyncFullScreen. It blocks until ctx is done or changes is closed.
func (c *Controller) WatchFullScreen(ctx context.Context, changes <-chan bool) {
	for {
		select {
		case <-ctx.Done():
			return
		case active, ok := <-changes:
			if !ok {
				return
			}
			c.SyncFullScreen(active)
		}
	}
}
