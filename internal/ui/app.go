package ui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/spread/internal/document"
	"github.com/five82/spread/internal/logtail"
	"github.com/five82/spread/internal/platform"
	"github.com/five82/spread/internal/prefs"
	"github.com/five82/spread/internal/viewer"
)

// Screen is the platform fullscreen service as seen by the console.
type Screen interface {
	Attach(p platform.Sender)
	Release()
}

// Options configures the console.
type Options struct {
	Context    context.Context
	Controller *viewer.Controller
	Pages      document.Provider
	Title      string
	Screen     Screen
	ThemeName  string
	PrefsPath  string
	LogPath    string
	Logger     *log.Logger
}

// Model is the root application state for Bubble Tea.
type Model struct {
	// Configuration
	ctx       context.Context
	ctrl      *viewer.Controller
	pages     document.Provider
	title     string
	screen    Screen
	prefsPath string
	logPath   string
	logger    *log.Logger

	// UI state
	keys   keyMap
	help   help.Model
	theme  Theme
	width  int
	height int
	ready  bool

	// Overlays
	showHelp   bool
	showLogs   bool
	logEntries []logtail.Entry
	logErr     error

	// Goto prompt
	prompt    textinput.Model
	prompting bool
	status    string

	// Controller change notifications
	changed     chan struct{}
	unsubscribe func()
}

// New creates a new Bubble Tea model and subscribes it to the controller.
// Call Close when the program has finished.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}

	ctrl := opts.Controller
	if ctrl == nil {
		ctrl = viewer.New(opts.Pages, viewer.WithLogger(logger))
	}

	themeName := opts.ThemeName
	if themeName == "" {
		themeName = "Nightfox"
	}
	theme := GetTheme(themeName)

	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}

	h := help.New()
	h.Styles = theme.HelpStyles()

	prompt := textinput.New()
	prompt.Prompt = "go to page: "
	prompt.CharLimit = 7

	changed := make(chan struct{}, 1)
	unsubscribe := ctrl.Subscribe(func(viewer.State) {
		select {
		case changed <- struct{}{}:
		default:
		}
	})

	return Model{
		ctx:         ctx,
		ctrl:        ctrl,
		pages:       opts.Pages,
		title:       opts.Title,
		screen:      opts.Screen,
		prefsPath:   prefsPath,
		logPath:     opts.LogPath,
		logger:      logger,
		keys:        DefaultKeyMap(),
		help:        h,
		theme:       theme,
		prompt:      prompt,
		changed:     changed,
		unsubscribe: unsubscribe,
	}
}

// Close detaches the model from the controller.
func (m Model) Close() {
	if m.unsubscribe != nil {
		m.unsubscribe()
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return waitForChange(m.ctx, m.changed)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.prompt.Width = max(msg.Width-len(m.prompt.Prompt)-2, 1)
		m.ready = true
		return m, nil

	case logsMsg:
		m.logEntries = msg.entries
		m.logErr = msg.err
		return m, nil

	case stateMsg:
		// The view reads the controller directly; this only schedules a
		// redraw and waits for the next change.
		return m, waitForChange(m.ctx, m.changed)
	}

	if m.prompting {
		var cmd tea.Cmd
		m.prompt, cmd = m.prompt.Update(msg)
		return m, cmd
	}
	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	if m.showHelp {
		return m.renderHelp()
	}

	if m.showLogs {
		return m.renderLogs()
	}

	return m.renderMain()
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Any key closes an overlay
	if m.showHelp || m.showLogs {
		m.showHelp = false
		m.showLogs = false
		return m, nil
	}

	if m.prompting {
		return m.handlePromptKey(msg)
	}

	m.status = ""

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true

	case key.Matches(msg, m.keys.Logs):
		m.showLogs = true
		return m, loadLogsCmd(m.logPath, max(m.height-logChromeRows, 1))

	case key.Matches(msg, m.keys.CycleTheme):
		m.cycleTheme()

	case key.Matches(msg, m.keys.Fullscreen):
		return m, toggleFullScreenCmd(m.ctx, m.ctrl)

	case key.Matches(msg, m.keys.Release):
		if m.screen != nil {
			return m, releaseCmd(m.screen)
		}

	case key.Matches(msg, m.keys.Next):
		m.ctrl.NextPage()
	case key.Matches(msg, m.keys.Prev):
		m.ctrl.PreviousPage()
	case key.Matches(msg, m.keys.First):
		m.ctrl.GoToPage(1)
	case key.Matches(msg, m.keys.Last):
		m.ctrl.GoToPage(m.ctrl.State().TotalPages)
	case key.Matches(msg, m.keys.GoTo):
		m.prompting = true
		m.prompt.Reset()
		m.prompt.Placeholder = fmt.Sprintf("1-%d", max(m.ctrl.State().TotalPages, 1))
		return m, m.prompt.Focus()

	case key.Matches(msg, m.keys.CycleView):
		m.ctrl.CycleViewMode()
	case key.Matches(msg, m.keys.ToggleCover):
		m.ctrl.SetFirstPageAsCover(!m.ctrl.State().FirstPageAsCover)
	case key.Matches(msg, m.keys.GapLess):
		m.ctrl.SetPageGap(m.ctrl.State().PageGap - gapStep)
	case key.Matches(msg, m.keys.GapMore):
		m.ctrl.SetPageGap(m.ctrl.State().PageGap + gapStep)

	case key.Matches(msg, m.keys.FitWidth):
		m.ctrl.SetZoomMode(viewer.ZoomFitWidth)
	case key.Matches(msg, m.keys.FitHeight):
		m.ctrl.SetZoomMode(viewer.ZoomFitHeight)
	case key.Matches(msg, m.keys.Actual):
		m.ctrl.SetZoomMode(viewer.ZoomActual)
	case key.Matches(msg, m.keys.ZoomIn):
		m.ctrl.ZoomIn()
	case key.Matches(msg, m.keys.ZoomOut):
		m.ctrl.ZoomOut()
	case key.Matches(msg, m.keys.Reset):
		m.ctrl.Reset()
	}

	return m, nil
}

// handlePromptKey processes input while the goto prompt is open.
func (m Model) handlePromptKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.Type == tea.KeyCtrlC:
		return m, tea.Quit

	case key.Matches(msg, m.keys.Cancel):
		m.closePrompt()
		return m, nil

	case key.Matches(msg, m.keys.Confirm):
		value := strings.TrimSpace(m.prompt.Value())
		m.closePrompt()
		page, err := strconv.Atoi(value)
		if err != nil {
			m.status = fmt.Sprintf("not a page number: %q", value)
			return m, nil
		}
		m.ctrl.GoToPage(page)
		return m, nil
	}

	var cmd tea.Cmd
	m.prompt, cmd = m.prompt.Update(msg)
	return m, cmd
}

func (m *Model) closePrompt() {
	m.prompting = false
	m.prompt.Blur()
	m.prompt.Reset()
}

// cycleTheme switches to the next theme and remembers the choice.
func (m *Model) cycleTheme() {
	m.theme = GetTheme(NextTheme(m.theme.Name))
	m.help.Styles = m.theme.HelpStyles()
	if err := prefs.Save(m.prefsPath, prefs.Prefs{Theme: m.theme.Name}); err != nil {
		m.logger.Printf("save prefs: %v", err)
	}
}

// renderMain renders header, spread and footer.
func (m Model) renderMain() string {
	var b strings.Builder

	b.WriteString(m.renderHeader())
	b.WriteString("\n")

	b.WriteString(m.renderSpread())
	b.WriteString("\n")

	b.WriteString(m.renderFooter())

	return b.String()
}

// Messages

// stateMsg reports that the controller state changed.
type stateMsg struct{}

type logsMsg struct {
	entries []logtail.Entry
	err     error
}

// Commands

func waitForChange(ctx context.Context, changed <-chan struct{}) tea.Cmd {
	return func() tea.Msg {
		select {
		case <-changed:
			return stateMsg{}
		case <-ctx.Done():
			return nil
		}
	}
}

// toggleFullScreenCmd runs the toggle off the event loop: the platform
// service talks back to the program while it waits.
func toggleFullScreenCmd(ctx context.Context, ctrl *viewer.Controller) tea.Cmd {
	return func() tea.Msg {
		ctrl.ToggleFullScreen(ctx)
		return nil
	}
}

func loadLogsCmd(path string, lines int) tea.Cmd {
	return func() tea.Msg {
		if path == "" {
			return logsMsg{}
		}
		entries, err := logtail.Tail(path, lines)
		return logsMsg{entries: entries, err: err}
	}
}

func releaseCmd(screen Screen) tea.Cmd {
	return func() tea.Msg {
		screen.Release()
		return nil
	}
}

// Run starts the Bubble Tea program and blocks until it quits or ctx ends.
func Run(ctx context.Context, opts Options, programOpts ...tea.ProgramOption) error {
	opts.Context = ctx
	m := New(opts)
	defer m.Close()

	p := tea.NewProgram(m, append([]tea.ProgramOption{tea.WithContext(ctx)}, programOpts...)...)
	if opts.Screen != nil {
		opts.Screen.Attach(p)
	}

	_, err := p.Run()
	if err != nil && ctx.Err() != nil && errors.Is(err, ctx.Err()) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("run console: %w", err)
	}
	return nil
}
