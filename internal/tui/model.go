package tui

import (
	"log"
	"time"

	"github.com/Mr-Dark-debug/countdown/internal/config"
	"github.com/Mr-Dark-debug/countdown/internal/countdown"
	"github.com/Mr-Dark-debug/countdown/internal/tabs"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ────────────────────────────────────────────────────────────
// Model
// ────────────────────────────────────────────────────────────

// Model is the root BubbleTea model for the countdown dashboard.
// The surface and document are shared pointers, so copies of the
// model made by BubbleTea all see the same display state.
type Model struct {
	cfg config.Config

	// Display state written by the renderers and the tab controller
	surface *countdown.MapSurface
	doc     *tabDocument

	home  *countdown.HomeRenderer
	fixed *countdown.FixedRenderer
	tabs  *tabs.Controller

	// UI state
	keys   KeyMap
	help   help.Model
	width  int
	height int
}

// NewModel creates a dashboard for the given configuration using the
// wall clock.
func NewModel(cfg config.Config) Model {
	return newModel(cfg, countdown.RealClock{})
}

func newModel(cfg config.Config, clock countdown.Clock) Model {
	surface := countdown.NewMapSurface(append([]string{countdown.FieldHome}, countdown.FixedFields...)...)
	doc := newTabDocument(cfg.Tabs)

	m := Model{
		cfg:     cfg,
		surface: surface,
		doc:     doc,
		home:    &countdown.HomeRenderer{Target: cfg.HomeTarget, Clock: clock, Surface: surface},
		fixed:   &countdown.FixedRenderer{Target: cfg.FixedTarget, Clock: clock, Surface: surface},
		tabs:    tabs.NewController(doc),
		keys:    DefaultKeyMap(),
		help:    help.New(),
	}

	m.home.Render()
	m.fixed.Render()
	return m
}

// ────────────────────────────────────────────────────────────
// Messages
// ────────────────────────────────────────────────────────────

// The two countdowns tick independently.
type homeTickMsg time.Time
type fixedTickMsg time.Time

func (m Model) homeTick() tea.Cmd {
	return tea.Tick(m.interval(), func(t time.Time) tea.Msg { return homeTickMsg(t) })
}

func (m Model) fixedTick() tea.Cmd {
	return tea.Tick(m.interval(), func(t time.Time) tea.Msg { return fixedTickMsg(t) })
}

func (m Model) interval() time.Duration {
	if m.cfg.Interval <= 0 {
		return countdown.DefaultInterval
	}
	return m.cfg.Interval
}

// ────────────────────────────────────────────────────────────
// Init
// ────────────────────────────────────────────────────────────

func (m Model) Init() tea.Cmd {
	log.Printf("countdown: home target %s, fixed target %s",
		m.cfg.HomeTarget.Format(time.RFC3339), m.cfg.FixedTarget.Format(time.RFC3339))
	return tea.Batch(m.homeTick(), m.fixedTick())
}

// ────────────────────────────────────────────────────────────
// Update
// ────────────────────────────────────────────────────────────

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case homeTickMsg:
		m.home.Render()
		return m, m.homeTick()

	case fixedTickMsg:
		m.fixed.Render()
		return m, m.fixedTick()

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)
	}

	return m, nil
}

// handleKey routes keyboard input. Navigation keys go to the tab
// controller as if pressed on the focused tab.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil

	case key.Matches(msg, m.keys.Jump):
		if i := int(msg.String()[0] - '1'); i < m.tabs.Len() {
			m.tabs.Click(i)
		}
		return m, nil
	}

	if k, ok := m.keys.tabKey(msg); ok {
		m.tabs.KeyDown(m.tabs.Focused(), k)
	}
	return m, nil
}

// handleMouse activates the tab under a left click on the tab bar.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}
	if i, ok := m.tabAt(msg.X, msg.Y); ok {
		m.tabs.Click(i)
	}
	return m, nil
}

// ────────────────────────────────────────────────────────────
// View
// ────────────────────────────────────────────────────────────

func (m Model) View() string {
	if m.width == 0 {
		return "Initializing..."
	}

	header := renderHeader(&m)
	footer := renderFooter(&m)

	bodyHeight := m.height - lipgloss.Height(header) - lipgloss.Height(footer)
	body := renderPanel(&m, m.width, maxInt(bodyHeight, 1))

	return lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
}
