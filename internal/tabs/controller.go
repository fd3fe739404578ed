// Package tabs implements an accessible tab/panel switcher.
//
// Exactly one button and its panel are active at a time. Button i with
// data key "x" owns the panel with id "panel-x". The controller never
// sets an initial selection; whatever the document marks active on
// load stays active until the user picks another tab.
package tabs

// Key is a keyboard key name as reported by the host.
type Key string

const (
	KeyArrowRight Key = "ArrowRight"
	KeyArrowDown  Key = "ArrowDown"
	KeyArrowLeft  Key = "ArrowLeft"
	KeyArrowUp    Key = "ArrowUp"
	KeyHome       Key = "Home"
	KeyEnd        Key = "End"
)

// Button is a tab control in the host document.
type Button interface {
	// Key is the tab's data key.
	Key() string
	// SetActive toggles the visual "active" class.
	SetActive(bool)
	// SetSelected sets the accessibility "selected" attribute.
	SetSelected(bool)
	// Selected reports the current "selected" attribute.
	Selected() bool
	// Focus moves input focus to the button.
	Focus()
}

// Panel is a content panel in the host document.
type Panel interface {
	ID() string
	SetActive(bool)
	SetHidden(bool)
}

// Document is the host the controller drives.
type Document interface {
	Buttons() []Button
	Panels() []Panel
}

// PanelID returns the panel id owned by the tab with the given key.
func PanelID(key string) string {
	return "panel-" + key
}

// Controller switches tabs in response to pointer and keyboard input.
type Controller struct {
	buttons []Button
	panels  []Panel
	focused int
}

// NewController binds to the buttons and panels present in doc. The set
// is fixed from here on.
func NewController(doc Document) *Controller {
	c := &Controller{
		buttons: doc.Buttons(),
		panels:  doc.Panels(),
	}
	if i, ok := c.Active(); ok {
		c.focused = i
	}
	return c
}

// Len returns the number of tabs.
func (c *Controller) Len() int { return len(c.buttons) }

// Focused returns the index of the tab that has keyboard focus.
func (c *Controller) Focused() int { return c.focused }

// Active returns the index of the selected tab, if any.
func (c *Controller) Active() (int, bool) {
	for i, b := range c.buttons {
		if b != nil && b.Selected() {
			return i, true
		}
	}
	return 0, false
}

// Activate makes tab i and its panel the only active pair. An index out
// of range is ignored.
func (c *Controller) Activate(i int) {
	if i < 0 || i >= len(c.buttons) || c.buttons[i] == nil {
		return
	}
	target := c.buttons[i]

	for _, b := range c.buttons {
		if b == nil {
			continue
		}
		b.SetActive(false)
		b.SetSelected(false)
	}
	target.SetActive(true)
	target.SetSelected(true)

	want := PanelID(target.Key())
	for _, p := range c.panels {
		if p == nil {
			continue
		}
		on := p.ID() == want
		p.SetActive(on)
		p.SetHidden(!on)
	}
}

// Click handles pointer activation of tab i. The clicked tab also takes
// focus.
func (c *Controller) Click(i int) {
	if i < 0 || i >= len(c.buttons) {
		return
	}
	if b := c.buttons[i]; b != nil {
		b.Focus()
	}
	c.focused = i
	c.Activate(i)
}

// KeyDown handles a key press while tab i has focus. Arrow keys move to
// the adjacent tab and wrap around; Home and End jump to the ends. The
// newly focused tab is activated. It reports whether the key was
// consumed; unhandled keys leave everything unchanged.
func (c *Controller) KeyDown(i int, k Key) bool {
	n := len(c.buttons)
	if n == 0 || i < 0 || i >= n {
		return false
	}

	var target int
	switch k {
	case KeyArrowRight, KeyArrowDown:
		target = (i + 1) % n
	case KeyArrowLeft, KeyArrowUp:
		target = (i - 1 + n) % n
	case KeyHome:
		target = 0
	case KeyEnd:
		target = n - 1
	default:
		return false
	}

	c.Click(target)
	return true
}
