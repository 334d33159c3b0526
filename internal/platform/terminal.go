// Package platform adapts the terminal to the viewer's fullscreen service.
//
// Fullscreen in a terminal is the alternate screen buffer. Terminal switches
// it through the running Bubble Tea program and reports every transition on
// a notification channel so the viewer state can follow changes it did not
// initiate.
package platform

import (
	"context"
	"errors"
	"os"
	"sync"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"
)

// ErrNotAttached is returned when no program has been attached yet.
var ErrNotAttached = errors.New("no terminal program attached")

// ErrNotInteractive is returned when output is not a terminal.
var ErrNotInteractive = errors.New("output is not an interactive terminal")

// Sender delivers messages to a running program. *tea.Program satisfies it.
type Sender interface {
	Send(msg tea.Msg)
}

// Terminal is a fullscreen service backed by the alternate screen.
type Terminal struct {
	fd         int
	isTerminal func(fd int) bool

	mu      sync.Mutex
	program Sender
	active  bool
	changes chan bool
}

// NewTerminal returns a service for the terminal behind out.
func NewTerminal(out *os.File) *Terminal {
	return &Terminal{
		fd:         int(out.Fd()),
		isTerminal: term.IsTerminal,
		changes:    make(chan bool, 1),
	}
}

// Attach sets the program that owns the screen.
func (t *Terminal) Attach(p Sender) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.program = p
}

// Interactive reports whether output is a terminal.
func (t *Terminal) Interactive() bool {
	return t.isTerminal(t.fd)
}

// Enter switches to the alternate screen.
func (t *Terminal) Enter(ctx context.Context) error {
	return t.set(ctx, true)
}

// Exit returns to the normal screen.
func (t *Terminal) Exit(ctx context.Context) error {
	return t.set(ctx, false)
}

// Release leaves fullscreen on behalf of the user, outside any viewer
// request, and reports the change on Changes. It sends to the program, so it
// must not be called from inside the program's Update.
func (t *Terminal) Release() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if !t.active || t.program == nil {
		return
	}
	t.program.Send(tea.ExitAltScreen())
	t.active = false
	t.publish(false)
}

// Changes delivers the fullscreen state after each transition. Only the
// latest state is buffered.
func (t *Terminal) Changes() <-chan bool {
	return t.changes
}

func (t *Terminal) set(ctx context.Context, active bool) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if !t.Interactive() {
		return ErrNotInteractive
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	if t.program == nil {
		return ErrNotAttached
	}
	if active {
		t.program.Send(tea.EnterAltScreen())
	} else {
		t.program.Send(tea.ExitAltScreen())
	}
	if t.active != active {
		t.active = active
		t.publish(active)
	}
	return nil
}

// publish replaces any undelivered state with the new one. Callers hold mu.
func (t *Terminal) publish(active bool) {
	select {
	case <-t.changes:
	default:
	}
	t.changes <- active
}
