package ui

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/five82/panesplit/internal/config"
	"github.com/five82/panesplit/internal/content"
	"github.com/five82/panesplit/internal/pane"
	"github.com/five82/panesplit/internal/pointer"
	"github.com/five82/panesplit/internal/prefs"
	"github.com/five82/panesplit/internal/splitter"
)

// Options configures the UI.
type Options struct {
	Config    config.Config
	Store     *content.Store
	Refresh   time.Duration
	ThemeName string
	PrefsPath string
	Logger    *log.Logger
}

// resizeState collects splitter callbacks. It is shared by pointer so the
// callbacks stay valid across Bubble Tea's value-typed model copies.
type resizeState struct {
	last []float64
	ends int
}

// Model is the root application state for Bubble Tea.
type Model struct {
	cfg       config.Config
	store     *content.Store
	logger    *log.Logger
	prefsPath string
	refresh   time.Duration

	theme    Theme
	keys     keyMap
	help     help.Model
	showHelp bool

	hub       *pointer.Hub
	split     *splitter.Splitter
	direction pane.Direction
	panes     []config.PaneConfig
	added     int
	resize    *resizeState

	snapshot content.Snapshot
	width    int
	height   int
	ready    bool
}

// New creates the root model and its splitter.
func New(opts Options) Model {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	refresh := opts.Refresh
	if refresh <= 0 {
		refresh = time.Duration(opts.Config.RefreshSeconds) * time.Second
	}
	if refresh <= 0 {
		refresh = 2 * time.Second
	}
	themeName := opts.ThemeName
	if themeName == "" {
		themeName = prefs.DefaultTheme()
	}
	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}

	panes := make([]config.PaneConfig, len(opts.Config.Panes))
	copy(panes, opts.Config.Panes)

	m := Model{
		cfg:       opts.Config,
		store:     opts.Store,
		logger:    logger,
		prefsPath: prefsPath,
		refresh:   refresh,
		theme:     GetTheme(themeName),
		help:      help.New(),
		hub:       pointer.NewHub(),
		direction: opts.Config.Direction,
		panes:     panes,
		resize:    &resizeState{},
	}
	m.help.Styles = m.theme.HelpStyles()
	m.split = m.newSplitter(opts.Config.Sizes)
	m.keys = DefaultKeyMap(m.split.Keys())
	return m
}

func (m Model) newSplitter(controlled []float64) *splitter.Splitter {
	styles := m.theme.SplitterStyles()
	return splitter.New(m.paneSet(), splitter.Options{
		Direction: m.direction,
		Sizes:     controlled,
		OnResize: func(sizes []float64) {
			m.resize.last = sizes
		},
		OnResizeEnd: func(sizes []float64) {
			m.resize.last = sizes
			m.resize.ends++
			m.logger.Debug("resize committed", "sizes", sizes)
		},
		Disabled:     m.cfg.Disabled,
		ItemMinSize:  m.cfg.ItemMinSize,
		ItemMaxSize:  m.cfg.ItemMaxSize,
		KeyboardStep: m.cfg.KeyboardStep,
		Window:       m.hub,
		Styles:       &styles,
		Logger:       m.logger,
	})
}

func (m Model) paneSet() []pane.Pane {
	return config.Config{Panes: m.panes}.PaneSet()
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{tickCmd(m.refresh)}
	if m.store != nil {
		cmds = append(cmds, fetchSnapshotCmd(m.store))
	}
	return tea.Batch(cmds...)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		m.handleMouse(msg)
		return m, nil

	case tea.BlurMsg:
		m.hub.Dispatch(pointer.Event{Kind: pointer.Cancel})
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.ready = true
		m.layout()
		return m, nil

	case tickMsg:
		cmds := []tea.Cmd{tickCmd(m.refresh)}
		if m.store != nil {
			cmds = append(cmds, fetchSnapshotCmd(m.store))
		}
		return m, tea.Batch(cmds...)

	case snapshotMsg:
		m.snapshot = content.Snapshot(msg)
		return m, nil
	}
	return m, nil
}

// handleMouse routes presses to the splitter and everything else to the
// shared hub, where an active drag is listening.
func (m *Model) handleMouse(msg tea.MouseMsg) {
	ev, ok := pointer.FromMouse(msg)
	if !ok {
		return
	}
	if ev.Kind == pointer.Down {
		m.split.Update(msg)
		return
	}
	m.hub.Dispatch(ev)
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.showHelp {
		m.showHelp = false
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.split.Close()
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil

	case key.Matches(msg, m.keys.CycleTheme):
		m.theme = GetTheme(NextTheme(m.theme.Name))
		m.help.Styles = m.theme.HelpStyles()
		m.split.SetStyles(m.theme.SplitterStyles())
		if err := prefs.Save(m.prefsPath, prefs.Prefs{Theme: m.theme.Name}); err != nil {
			m.logger.Warn("save prefs failed", "path", m.prefsPath, "error", err)
		}
		return m, nil

	case key.Matches(msg, m.keys.NextDivider):
		m.split.FocusNext()
		return m, nil

	case key.Matches(msg, m.keys.PrevDivider):
		m.split.FocusPrev()
		return m, nil

	case key.Matches(msg, m.keys.AddPane):
		m.added++
		k := fmt.Sprintf("extra-%d", m.added)
		m.panes = append(m.panes, config.PaneConfig{Key: k, Title: fmt.Sprintf("Extra %d", m.added)})
		m.split.SetPanes(m.paneSet(), nil)
		return m, nil

	case key.Matches(msg, m.keys.RemovePane):
		if len(m.panes) > 1 {
			m.panes = m.panes[:len(m.panes)-1]
			m.split.SetPanes(m.paneSet(), nil)
		}
		return m, nil

	case key.Matches(msg, m.keys.Flip):
		m.split.Close()
		m.direction = m.direction.Flip()
		m.split = m.newSplitter(nil)
		m.keys.Resize = m.split.Keys()
		m.layout()
		return m, nil
	}

	m.split.Update(msg)
	return m, nil
}

// layout gives the splitter everything between the header and footer rows.
func (m *Model) layout() {
	if !m.ready {
		return
	}
	h := m.height - 2
	if h < 0 {
		h = 0
	}
	m.split.SetRect(splitter.Rect{X: 0, Y: 1, Width: m.width, Height: h})
}

// Close releases the splitter's pointer listeners.
func (m Model) Close() {
	m.split.Close()
}

// Messages

type tickMsg time.Time

type snapshotMsg content.Snapshot

// Commands

func tickCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func fetchSnapshotCmd(store *content.Store) tea.Cmd {
	return func() tea.Msg {
		return snapshotMsg(store.Snapshot())
	}
}

// Run starts the Bubble Tea program and blocks until it exits or ctx is
// cancelled.
func Run(ctx context.Context, opts Options) error {
	m := New(opts)
	p := tea.NewProgram(m,
		tea.WithContext(ctx),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithReportFocus(),
	)
	final, err := p.Run()
	if fm, ok := final.(Model); ok {
		fm.Close()
	} else {
		m.Close()
	}
	return err
}
