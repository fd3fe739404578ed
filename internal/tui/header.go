package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const headerBrand = "COUNTDOWN"

// tabSpan is the horizontal extent of one tab on the header row.
type tabSpan struct {
	start, width int
}

// tabSpans lays out the tab bar the same way renderHeader draws it:
// bar padding, brand, separator, then tabs one column apart.
func tabSpans(m *Model) []tabSpan {
	x := headerBarStyle.GetPaddingLeft() +
		lipgloss.Width(headerBrand) +
		lipgloss.Width(headerSepStyle.Render(" │ "))

	spans := make([]tabSpan, 0, len(m.doc.buttons))
	for _, b := range m.doc.buttons {
		w := lipgloss.Width(tabStyle.Render(b.title))
		spans = append(spans, tabSpan{start: x, width: w})
		x += w + 1
	}
	return spans
}

// tabAt returns the tab under the given cell, if any.
func (m Model) tabAt(x, y int) (int, bool) {
	if y != 0 {
		return 0, false
	}
	for i, s := range tabSpans(&m) {
		if x >= s.start && x < s.start+s.width {
			return i, true
		}
	}
	return 0, false
}

// renderHeader produces the top bar:
//
//	COUNTDOWN │  Home  CR-V 2028  About
func renderHeader(m *Model) string {
	brand := headerBrandStyle.Render(headerBrand)
	sep := headerSepStyle.Render(" │ ")

	var parts []string
	for _, b := range m.doc.buttons {
		style := tabStyle
		if b.active {
			style = tabActiveStyle
		}
		if b.key == m.doc.focus {
			style = style.Underline(true)
		}
		parts = append(parts, style.Render(b.title))
	}

	content := brand + sep + strings.Join(parts, " ")
	return headerBarStyle.Width(m.width).Render(content)
}

// renderFooter produces the bottom status bar with keyboard hints.
func renderFooter(m *Model) string {
	left := statusStyle.Render(m.statusLine())
	right := m.help.View(m.keys)

	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 0 {
		gap = 0
	}

	bar := left + strings.Repeat(" ", gap) + right
	return lipgloss.NewStyle().
		Background(colorBgSurface).
		Width(m.width).
		Render(bar)
}

// statusLine names the active tab.
func (m Model) statusLine() string {
	i, ok := m.tabs.Active()
	if !ok {
		return "No tab selected"
	}
	return m.doc.buttons[i].title
}
