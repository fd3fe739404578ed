package tui

import (
	"strings"

	"github.com/Mr-Dark-debug/countdown/internal/countdown"
	"github.com/Mr-Dark-debug/countdown/internal/tabs"
	"github.com/Mr-Dark-debug/countdown/pkg/timeutil"

	"github.com/charmbracelet/lipgloss"
)

var (
	panelHome  = tabs.PanelID("home")
	panelFixed = tabs.PanelID("crv")
	panelAbout = tabs.PanelID("about")
)

// renderPanel draws whichever panel the document currently shows.
func renderPanel(m *Model, width, height int) string {
	id, ok := m.doc.visiblePanel()
	if !ok {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
			emptyStateStyle.Render("Nothing to show."))
	}

	var body string
	switch id {
	case panelHome:
		body = renderHomePanel(m)
	case panelFixed:
		body = renderFixedPanel(m)
	case panelAbout:
		body = renderAboutPanel()
	default:
		body = emptyStateStyle.Render("Panel " + id + " has no content.")
	}

	return panelStyle.Width(width).Height(maxInt(height-1, 0)).Render(body)
}

func renderHomePanel(m *Model) string {
	text := m.surface.Text(countdown.FieldHome)
	style := homeValueStyle
	if text == timeutil.Expired {
		style = homeExpiredStyle
	}

	lines := []string{
		panelTitleStyle.Render("Home"),
		"",
		style.Render(text),
		"",
		panelDimStyle.Render("until " + timeutil.FormatTimestampFull(m.cfg.HomeTarget)),
	}
	return strings.Join(lines, "\n")
}

func renderFixedPanel(m *Model) string {
	var tiles []string
	for _, id := range countdown.FixedFields {
		value := tileValueStyle.Render(m.surface.Text(id))
		label := tileLabelStyle.Render(m.surface.Label(id))
		tiles = append(tiles, tileStyle.Render(value+"\n"+label))
	}

	lines := []string{
		panelTitleStyle.Render("CR-V 2028"),
		"",
		lipgloss.JoinHorizontal(lipgloss.Top, tiles...),
		"",
		panelDimStyle.Render("until " + timeutil.FormatTimestampFull(m.cfg.FixedTarget)),
	}
	return strings.Join(lines, "\n")
}

func renderAboutPanel() string {
	lines := []string{
		panelTitleStyle.Render("About"),
		"",
		"Two live countdowns, refreshed every second.",
		panelDimStyle.Render("Years are 365.25 days and months 30.44 days;"),
		panelDimStyle.Render("the breakdown is approximate, not calendar exact."),
	}
	return strings.Join(lines, "\n")
}
