package ui

import (
	"io"
	"log/slog"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/eqdisplay/internal/display"
	"github.com/five82/eqdisplay/internal/prefs"
	"github.com/five82/eqdisplay/internal/state"
	"github.com/five82/eqdisplay/internal/surface"
)

// Options configures the UI.
type Options struct {
	Queue     *display.Queue
	Store     *state.Store
	Sizer     *surface.Sizer
	Reload    func() // re-read the state file; nil disables the key
	Logger    *slog.Logger
	ThemeName string
	PrefsPath string
	Page      display.Page // page shown before the first frame arrives
}

// FrameMsg carries a finished frame from the display loop to the program.
type FrameMsg struct {
	Grid     surface.Grid
	Page     display.Page
	Selected int
}

// Model is the Bubble Tea side of the display. It owns no page state: keys
// become queue events and frames arrive from the display loop as FrameMsg.
type Model struct {
	queue     *display.Queue
	store     *state.Store
	sizer     *surface.Sizer
	reload    func()
	logger    *slog.Logger
	prefsPath string
	keys      keyMap

	theme   Theme
	palette surface.Palette

	grid     surface.Grid
	page     display.Page
	selected int
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	sizer := opts.Sizer
	if sizer == nil {
		sizer = &surface.Sizer{}
	}
	page := opts.Page
	if page == "" {
		page = display.PageEvents
	}
	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}
	theme := GetTheme(opts.ThemeName)

	return Model{
		queue:     opts.Queue,
		store:     opts.Store,
		sizer:     sizer,
		reload:    opts.Reload,
		logger:    logger.With("component", "ui"),
		prefsPath: prefsPath,
		keys:      DefaultKeyMap(),
		theme:     theme,
		palette:   theme.Palette(),
		page:      page,
	}
}

// NewProgram wraps the model in a full-screen program.
func NewProgram(opts Options, extra ...tea.ProgramOption) *tea.Program {
	programOpts := append([]tea.ProgramOption{tea.WithAltScreen()}, extra...)
	return tea.NewProgram(New(opts), programOpts...)
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.sizer.Set(msg.Width, msg.Height)
		m.push(display.NewRedraw())
		return m, nil

	case FrameMsg:
		m.grid = msg.Grid
		m.page = msg.Page
		m.selected = msg.Selected
		return m, nil
	}

	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if m.grid.Rows == 0 {
		return ""
	}
	return m.grid.Render(m.palette)
}

// handleKey turns keyboard input into display events.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Reload):
		if m.reload != nil {
			m.reload()
		}
		return m, nil

	case key.Matches(msg, m.keys.CycleTheme):
		m.theme = GetTheme(NextTheme(m.theme.Name))
		m.palette = m.theme.Palette()
		m.savePrefs()
		return m, nil

	case key.Matches(msg, m.keys.ViewEvents):
		return m.showPage(display.PageEvents), nil
	case key.Matches(msg, m.keys.ViewState):
		return m.showPage(display.PageState), nil
	case key.Matches(msg, m.keys.ViewSettings):
		return m.showPage(display.PageSettings), nil
	case key.Matches(msg, m.keys.ViewHelp):
		return m.showPage(display.PageHelp), nil
	}

	switch m.page {
	case display.PageEvents:
		m.handleEventsKey(msg)
	case display.PageSettings:
		m.handleSettingsKey(msg)
	}
	return m, nil
}

func (m Model) handleEventsKey(msg tea.KeyMsg) {
	switch {
	case key.Matches(msg, m.keys.Clear):
		m.push(display.NewClear())
	case key.Matches(msg, m.keys.ToggleRaid):
		m.toggle(func(s *state.Snapshot) { s.Raid = !s.Raid })
	case key.Matches(msg, m.keys.ToggleDebug):
		m.toggle(func(s *state.Snapshot) { s.Debug = !s.Debug })
	case key.Matches(msg, m.keys.ToggleMute):
		m.toggle(func(s *state.Snapshot) { s.Mute = !s.Mute })
	}
}

// The roster is drawn highest index first, so up moves to a larger index.
func (m Model) handleSettingsKey(msg tea.KeyMsg) {
	switch {
	case key.Matches(msg, m.keys.Up):
		m.push(display.NewUpdate(display.TargetSelectedChar, m.selected+1))
	case key.Matches(msg, m.keys.Down):
		m.push(display.NewUpdate(display.TargetSelectedChar, m.selected-1))
	case key.Matches(msg, m.keys.SelectOn):
		m.push(display.NewUpdate(display.TargetSetting, display.SettingCharacter))
	case key.Matches(msg, m.keys.SelectOff):
		m.push(display.NewUpdate(display.TargetSetting, ""))
	case key.Matches(msg, m.keys.Cycle):
		m.push(display.NewUpdate(display.TargetSelectChar, m.selected))
	}
}

func (m Model) showPage(page display.Page) Model {
	m.page = page
	m.push(display.NewDraw(page))
	m.savePrefs()
	return m
}

func (m Model) toggle(fn func(*state.Snapshot)) {
	if m.store == nil {
		return
	}
	m.store.Update(fn)
	m.push(display.NewRedraw())
}

// push hands ev to the display loop without blocking the program.
func (m Model) push(ev display.Event) {
	if m.queue == nil {
		return
	}
	if err := m.queue.TryPush(ev); err != nil {
		m.logger.Warn("dropped input event", "kind", ev.Kind, "target", ev.Target, "err", err)
	}
}

func (m Model) savePrefs() {
	if m.prefsPath == "" {
		return
	}
	p := prefs.Prefs{Theme: m.theme.Name, Page: string(m.page)}
	if err := prefs.Save(m.prefsPath, p); err != nil {
		m.logger.Warn("save prefs failed", "path", m.prefsPath, "err", err)
	}
}
