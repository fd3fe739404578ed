package tui

import (
	"strings"
	"testing"
	"time"

	"github.com/Mr-Dark-debug/countdown/internal/config"
	"github.com/Mr-Dark-debug/countdown/internal/countdown"
	"github.com/Mr-Dark-debug/countdown/pkg/timeutil"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

type stubClock struct{ t *time.Time }

func (c stubClock) Now() time.Time { return *c.t }

func testModel(t *testing.T) (Model, *time.Time) {
	t.Helper()
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	cfg := config.Default()
	cfg.HomeTarget = now.Add(40 * timeutil.Day)
	cfg.FixedTarget = now.Add(66*timeutil.Day + 7*time.Hour)

	m := newModel(cfg, stubClock{&now})
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 30})
	return updated.(Model), &now
}

func send(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	updated, cmd := m.Update(msg)
	return updated.(Model), cmd
}

func activeKey(t *testing.T, m Model) string {
	t.Helper()
	i, ok := m.tabs.Active()
	if !ok {
		t.Fatal("no active tab")
	}
	return m.doc.buttons[i].key
}

func TestInitialRender(t *testing.T) {
	m, _ := testModel(t)

	if got := m.surface.Text(countdown.FieldHome); got != "1 month, 9 days" {
		t.Errorf("home field = %q", got)
	}
	if got := m.surface.Text(countdown.FieldMonths); got != "02" {
		t.Errorf("months field = %q", got)
	}
	if activeKey(t, m) != "home" {
		t.Errorf("initial tab = %q, want home", activeKey(t, m))
	}
	if id, _ := m.doc.visiblePanel(); id != "panel-home" {
		t.Errorf("visible panel = %q", id)
	}
}

func TestKeyboardNavigation(t *testing.T) {
	m, _ := testModel(t)

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyRight})
	if got := activeKey(t, m); got != "crv" {
		t.Errorf("after right: %q, want crv", got)
	}

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyEnd})
	if got := activeKey(t, m); got != "about" {
		t.Errorf("after end: %q, want about", got)
	}
	if id, _ := m.doc.visiblePanel(); id != "panel-about" {
		t.Errorf("visible panel = %q, want panel-about", id)
	}

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyDown})
	if got := activeKey(t, m); got != "home" {
		t.Errorf("down from last: %q, want home (wrap)", got)
	}

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyUp})
	if got := activeKey(t, m); got != "about" {
		t.Errorf("up from first: %q, want about (wrap)", got)
	}

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyHome})
	if got := activeKey(t, m); got != "home" {
		t.Errorf("after home: %q, want home", got)
	}

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}})
	if got := activeKey(t, m); got != "home" {
		t.Errorf("unhandled key changed tab to %q", got)
	}
}

func TestNumberKeys(t *testing.T) {
	m, _ := testModel(t)

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'2'}})
	if got := activeKey(t, m); got != "crv" {
		t.Errorf("after 2: %q, want crv", got)
	}

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'9'}})
	if got := activeKey(t, m); got != "crv" {
		t.Errorf("out-of-range number changed tab to %q", got)
	}
}

func TestMouseClickOnTab(t *testing.T) {
	m, _ := testModel(t)
	spans := tabSpans(&m)

	click := tea.MouseMsg{
		X:      spans[2].start + 1,
		Y:      0,
		Action: tea.MouseActionPress,
		Button: tea.MouseButtonLeft,
	}
	m, _ = send(t, m, click)
	if got := activeKey(t, m); got != "about" {
		t.Errorf("after click: %q, want about", got)
	}

	click.X = spans[1].start
	click.Y = 5
	m, _ = send(t, m, click)
	if got := activeKey(t, m); got != "about" {
		t.Errorf("click outside the tab bar changed tab to %q", got)
	}

	click.Y = 0
	click.Action = tea.MouseActionRelease
	m, _ = send(t, m, click)
	if got := activeKey(t, m); got != "about" {
		t.Errorf("mouse release changed tab to %q", got)
	}
}

func TestTicksRerender(t *testing.T) {
	m, now := testModel(t)

	*now = m.cfg.HomeTarget
	m, cmd := send(t, m, homeTickMsg(*now))
	if cmd == nil {
		t.Error("home tick did not re-arm")
	}
	if got := m.surface.Text(countdown.FieldHome); got != timeutil.Expired {
		t.Errorf("home field = %q, want %q", got, timeutil.Expired)
	}
	// The fixed countdown has its own timer.
	if got := m.surface.Text(countdown.FieldMonths); got != "02" {
		t.Errorf("months field changed on home tick: %q", got)
	}

	*now = m.cfg.FixedTarget
	m, cmd = send(t, m, fixedTickMsg(*now))
	if cmd == nil {
		t.Error("fixed tick did not re-arm")
	}
	for _, id := range countdown.FixedFields {
		if got := m.surface.Text(id); got != "0" {
			t.Errorf("%s = %q, want 0", id, got)
		}
	}
}

func TestQuit(t *testing.T) {
	m, _ := testModel(t)

	_, cmd := send(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if cmd == nil {
		t.Fatal("q returned no command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("q did not quit")
	}
}

func TestView(t *testing.T) {
	m, _ := testModel(t)

	if v := m.View(); !strings.Contains(v, "1 month, 9 days") {
		t.Errorf("home view missing countdown:\n%s", v)
	}

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyRight})
	v := m.View()
	for _, want := range []string{"02", "05", "07", "Months", "Hours"} {
		if !strings.Contains(v, want) {
			t.Errorf("CR-V view missing %q", want)
		}
	}
}

func TestViewBeforeSize(t *testing.T) {
	m := newModel(config.Default(), countdown.RealClock{})
	if got := m.View(); got != "Initializing..." {
		t.Errorf("View() = %q", got)
	}
}

func TestClickMovesFocus(t *testing.T) {
	m, _ := testModel(t)
	spans := tabSpans(&m)

	m, _ = send(t, m, tea.MouseMsg{
		X:      spans[2].start,
		Y:      0,
		Action: tea.MouseActionPress,
		Button: tea.MouseButtonLeft,
	})
	if m.doc.focus != "about" || m.tabs.Focused() != 2 {
		t.Errorf("after click: doc focus %q, controller focus %d; want about, 2", m.doc.focus, m.tabs.Focused())
	}

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'2'}})
	if m.doc.focus != "crv" || m.tabs.Focused() != 1 {
		t.Errorf("after 2: doc focus %q, controller focus %d; want crv, 1", m.doc.focus, m.tabs.Focused())
	}

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyRight})
	if m.doc.focus != "about" || activeKey(t, m) != "about" {
		t.Errorf("right after 2: doc focus %q, active %q; want about", m.doc.focus, activeKey(t, m))
	}
}

func TestReboundNavigationKeys(t *testing.T) {
	m, _ := testModel(t)
	m.keys.Next = key.NewBinding(key.WithKeys("n"))
	m.keys.Prev = key.NewBinding(key.WithKeys("p"))

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'n'}})
	if got := activeKey(t, m); got != "crv" {
		t.Errorf("after n: %q, want crv", got)
	}

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyRight})
	if got := activeKey(t, m); got != "crv" {
		t.Errorf("right after rebinding changed tab to %q", got)
	}

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'p'}})
	if got := activeKey(t, m); got != "home" {
		t.Errorf("after p: %q, want home", got)
	}
}
