package tui

import (
	"github.com/Mr-Dark-debug/countdown/internal/config"
	"github.com/Mr-Dark-debug/countdown/internal/tabs"
)

// tabButton is one entry of the tab bar.
type tabButton struct {
	doc      *tabDocument
	key      string
	title    string
	active   bool
	selected bool
}

func (b *tabButton) Key() string        { return b.key }
func (b *tabButton) SetActive(v bool)   { b.active = v }
func (b *tabButton) SetSelected(v bool) { b.selected = v }
func (b *tabButton) Selected() bool     { return b.selected }
func (b *tabButton) Focus()             { b.doc.focus = b.key }

// tabPanel is the body shown for one tab.
type tabPanel struct {
	id     string
	active bool
	hidden bool
}

func (p *tabPanel) ID() string       { return p.id }
func (p *tabPanel) SetActive(v bool) { p.active = v }
func (p *tabPanel) SetHidden(v bool) { p.hidden = v }

// tabDocument is the in-memory markup the tab controller drives. The
// first tab starts active.
type tabDocument struct {
	buttons []*tabButton
	panels  []*tabPanel
	focus   string
}

func newTabDocument(specs []config.TabSpec) *tabDocument {
	d := &tabDocument{}
	for i, s := range specs {
		on := i == 0
		d.buttons = append(d.buttons, &tabButton{
			doc: d, key: s.Key, title: s.Title, active: on, selected: on,
		})
		d.panels = append(d.panels, &tabPanel{
			id: tabs.PanelID(s.Key), active: on, hidden: !on,
		})
	}
	if len(d.buttons) > 0 {
		d.focus = d.buttons[0].key
	}
	return d
}

func (d *tabDocument) Buttons() []tabs.Button {
	out := make([]tabs.Button, len(d.buttons))
	for i, b := range d.buttons {
		out[i] = b
	}
	return out
}

func (d *tabDocument) Panels() []tabs.Panel {
	out := make([]tabs.Panel, len(d.panels))
	for i, p := range d.panels {
		out[i] = p
	}
	return out
}

// visiblePanel returns the id of the panel currently shown, if any.
func (d *tabDocument) visiblePanel() (string, bool) {
	for _, p := range d.panels {
		if p.active && !p.hidden {
			return p.id, true
		}
	}
	return "", false
}
