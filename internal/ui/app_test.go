package ui

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/spread/internal/document"
	"github.com/five82/spread/internal/platform"
	"github.com/five82/spread/internal/prefs"
	"github.com/five82/spread/internal/viewer"
)

type fakeScreen struct {
	mu       sync.Mutex
	active   bool
	released int
}

func (f *fakeScreen) Interactive() bool { return true }

func (f *fakeScreen) Enter(context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.active = true
	return nil
}

func (f *fakeScreen) Exit(context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.active = false
	return nil
}

func (f *fakeScreen) Attach(platform.Sender) {}

func (f *fakeScreen) Release() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.released++
}

func newTestModel(t *testing.T, pages int) (Model, *viewer.Controller) {
	t.Helper()
	screen := &fakeScreen{}
	ctrl := viewer.New(document.Static(pages), viewer.WithFullscreen(screen))
	m := New(Options{
		Controller: ctrl,
		Pages:      document.Static(pages),
		Title:      "atlas.pdf",
		Screen:     screen,
		PrefsPath:  filepath.Join(t.TempDir(), "prefs.toml"),
	})
	t.Cleanup(m.Close)
	next, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	return next.(Model), ctrl
}

func keyMsg(k string) tea.KeyMsg {
	switch k {
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "space":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
	}
}

func press(m Model, keys ...string) (Model, tea.Cmd) {
	var cmd tea.Cmd
	for _, k := range keys {
		var next tea.Model
		next, cmd = m.Update(keyMsg(k))
		m = next.(Model)
	}
	return m, cmd
}

func TestKeys_Navigation(t *testing.T) {
	m, ctrl := newTestModel(t, 10)

	cases := []struct {
		key  string
		want int
	}{
		{"right", 3},
		{"l", 5},
		{"space", 7},
		{"left", 5},
		{"h", 3},
		{"G", 10},
		{"g", 1},
	}
	for _, tc := range cases {
		m, _ = press(m, tc.key)
		if got := ctrl.State().CurrentPage; got != tc.want {
			t.Fatalf("after %q CurrentPage = %d, want %d", tc.key, got, tc.want)
		}
	}
}

func TestKeys_LayoutAndZoom(t *testing.T) {
	m, ctrl := newTestModel(t, 10)

	m, _ = press(m, "v")
	if got := ctrl.State().ViewMode; got != viewer.ViewSingle {
		t.Fatalf("ViewMode after v = %v, want single", got)
	}
	m, _ = press(m, "v", "c")
	s := ctrl.State()
	if s.ViewMode != viewer.ViewDoubleLTR || s.FirstPageAsCover {
		t.Fatalf("state after v c = %v cover=%t, want double-ltr without cover", s.ViewMode, s.FirstPageAsCover)
	}
	if s.CurrentPage != 2 {
		t.Fatalf("CurrentPage after cover off = %d, want 2", s.CurrentPage)
	}

	m, _ = press(m, "w")
	if got := ctrl.State().ZoomMode; got != viewer.ZoomFitWidth {
		t.Fatalf("ZoomMode after w = %v, want fit-width", got)
	}
	m, _ = press(m, "+", "+")
	s = ctrl.State()
	if s.ZoomMode != viewer.ZoomCustom || s.CustomZoom != 1.5 {
		t.Fatalf("zoom after ++ = %v %v, want custom 1.5", s.ZoomMode, s.CustomZoom)
	}
	m, _ = press(m, "-", "a")
	s = ctrl.State()
	if s.ZoomMode != viewer.ZoomActual || s.CustomZoom != 1.25 {
		t.Fatalf("zoom after - a = %v %v, want actual 1.25", s.ZoomMode, s.CustomZoom)
	}

	m, _ = press(m, "]", "]")
	if got := ctrl.State().PageGap; got != 12 {
		t.Fatalf("PageGap after ]] = %d, want 12", got)
	}
	press(m, "0")
	if s := ctrl.State(); s.PageGap != 8 || s.ViewMode != viewer.ViewDoubleRTL || s.CurrentPage != 1 {
		t.Fatalf("state after reset = %+v, want defaults", s)
	}
}

func TestKeys_GotoPrompt(t *testing.T) {
	m, ctrl := newTestModel(t, 10)

	m, _ = press(m, ":")
	if !m.prompting {
		t.Fatalf("prompting = false after :")
	}
	// Navigation keys are typed into the prompt, not applied.
	m, _ = press(m, "4", "l", "enter")
	if m.prompting {
		t.Fatalf("prompting = true after enter")
	}
	if got := ctrl.State().CurrentPage; got != 1 {
		t.Fatalf("CurrentPage = %d, want 1 after invalid input", got)
	}
	if !strings.Contains(m.status, "not a page number") {
		t.Fatalf("status = %q, want parse error", m.status)
	}

	m, _ = press(m, ":", "6", "enter")
	if got := ctrl.State().CurrentPage; got != 7 {
		t.Fatalf("CurrentPage after goto 6 = %d, want 7", got)
	}
	if m.status != "" {
		t.Fatalf("status = %q, want cleared", m.status)
	}

	m, _ = press(m, ":", "2", "esc")
	if m.prompting || ctrl.State().CurrentPage != 7 {
		t.Fatalf("esc did not cancel the prompt: prompting=%t page=%d", m.prompting, ctrl.State().CurrentPage)
	}
}

func TestKeys_FullscreenRunsAsCommand(t *testing.T) {
	m, ctrl := newTestModel(t, 4)

	m, cmd := press(m, "f")
	if cmd == nil {
		t.Fatalf("f returned no command")
	}
	if ctrl.State().FullScreen {
		t.Fatalf("FullScreen toggled before the command ran")
	}
	cmd()
	if !ctrl.State().FullScreen {
		t.Fatalf("FullScreen = false after toggle command")
	}

	screen := m.screen.(*fakeScreen)
	_, cmd = press(m, "esc")
	if cmd == nil {
		t.Fatalf("esc returned no command")
	}
	cmd()
	if screen.released != 1 {
		t.Fatalf("released = %d, want 1", screen.released)
	}
}

func TestKeys_Quit(t *testing.T) {
	m, _ := newTestModel(t, 4)
	for _, k := range []string{"q", "ctrl+c"} {
		_, cmd := press(m, k)
		if cmd == nil {
			t.Fatalf("%s returned no command", k)
		}
		if _, ok := cmd().(tea.QuitMsg); !ok {
			t.Fatalf("%s did not quit", k)
		}
	}
}

func TestKeys_HelpClosesOnAnyKey(t *testing.T) {
	m, ctrl := newTestModel(t, 10)
	m, _ = press(m, "?")
	if !m.showHelp {
		t.Fatalf("showHelp = false after ?")
	}
	if !strings.Contains(m.View(), "Keyboard Shortcuts") {
		t.Fatalf("help view missing title")
	}
	m, _ = press(m, "l")
	if m.showHelp {
		t.Fatalf("showHelp = true after a key")
	}
	if got := ctrl.State().CurrentPage; got != 1 {
		t.Fatalf("closing help moved the page to %d", got)
	}
}

func TestKeys_LogOverlay(t *testing.T) {
	m, ctrl := newTestModel(t, 10)
	m.logPath = filepath.Join(t.TempDir(), "spread.log")
	body := "2026/10/15 09:00:01.000002 fullscreen request failed (enter=true): not attached\n"
	if err := os.WriteFile(m.logPath, []byte(body), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	m, cmd := press(m, "L")
	if !m.showLogs || cmd == nil {
		t.Fatalf("L did not open the log overlay")
	}
	next, _ := m.Update(cmd())
	m = next.(Model)

	view := m.View()
	if !strings.Contains(view, "Recent log") || !strings.Contains(view, "09:00:01 fullscreen request failed") {
		t.Fatalf("log overlay = %q", view)
	}

	m, _ = press(m, "l")
	if m.showLogs || ctrl.State().CurrentPage != 1 {
		t.Fatalf("closing the overlay: showLogs=%t page=%d", m.showLogs, ctrl.State().CurrentPage)
	}
}

func TestCycleTheme_SavesPrefs(t *testing.T) {
	m, _ := newTestModel(t, 2)

	m, _ = press(m, "T")
	if m.theme.Name != "Kanagawa" {
		t.Fatalf("theme = %q, want Kanagawa", m.theme.Name)
	}
	if got := prefs.Load(m.prefsPath).Theme; got != "Kanagawa" {
		t.Fatalf("saved theme = %q, want Kanagawa", got)
	}
}

func TestCycleTheme_DefaultPrefsPath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	ctrl := viewer.New(document.Static(3))
	m := New(Options{Controller: ctrl, Pages: document.Static(3)})
	t.Cleanup(m.Close)

	m.cycleTheme()
	path := filepath.Join(home, ".config", "spread", "prefs.toml")
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("theme not saved to %s: %v", path, err)
	}
	if got := prefs.Load(path).Theme; got != m.theme.Name {
		t.Fatalf("saved theme = %q, want %q", got, m.theme.Name)
	}
}

func TestInit_WaitsForControllerChanges(t *testing.T) {
	m, ctrl := newTestModel(t, 4)
	cmd := m.Init()

	ctrl.SyncFullScreen(true)
	if _, ok := cmd().(stateMsg); !ok {
		t.Fatalf("Init command did not report the state change")
	}

	_, next := m.Update(stateMsg{})
	if next == nil {
		t.Fatalf("stateMsg did not schedule another wait")
	}
}

func TestInit_StopsWhenContextEnds(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	m := New(Options{Context: ctx, Pages: document.Static(3)})
	defer m.Close()

	cmd := m.Init()
	cancel()
	if msg := cmd(); msg != nil {
		t.Fatalf("wait returned %#v after cancel, want nil", msg)
	}
}

func TestView_RendersSpread(t *testing.T) {
	m, _ := newTestModel(t, 10)
	m, _ = press(m, "l")

	view := m.View()
	for _, want := range []string{"spread", "atlas.pdf", "pp. 2-3 / 10", "double-rtl", "fit-height", "cover"} {
		if !strings.Contains(view, want) {
			t.Fatalf("view missing %q:\n%s", want, view)
		}
	}
}

func TestView_EmptyDocument(t *testing.T) {
	m, _ := newTestModel(t, 0)
	view := m.View()
	if !strings.Contains(view, "No pages to display") || !strings.Contains(view, "no pages") {
		t.Fatalf("empty view = %q", view)
	}
}

func TestView_LoadingBeforeSize(t *testing.T) {
	m := New(Options{Pages: document.Static(1)})
	defer m.Close()
	if got := m.View(); got != "Loading..." {
		t.Fatalf("View() = %q, want Loading...", got)
	}
}
