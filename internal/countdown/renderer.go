package countdown

import (
	"time"

	"github.com/Mr-Dark-debug/countdown/pkg/timeutil"
)

// Renderer writes one countdown onto a Surface. Render is idempotent
// and derives everything from the target and the clock.
type Renderer interface {
	Render()
}

// HomeRenderer writes the tiered Home phrase into FieldHome.
type HomeRenderer struct {
	Target  time.Time
	Clock   Clock
	Surface Surface
}

// NewHomeRenderer creates a Home renderer using the wall clock.
func NewHomeRenderer(target time.Time, s Surface) *HomeRenderer {
	return &HomeRenderer{Target: target, Clock: RealClock{}, Surface: s}
}

func (r *HomeRenderer) Render() {
	r.Surface.SetText(FieldHome, timeutil.FormatHome(r.Target, r.Clock.Now()))
}

// FixedRenderer writes the years/months/days/hours tiles.
type FixedRenderer struct {
	Target  time.Time
	Clock   Clock
	Surface Surface
}

// NewFixedRenderer creates a fixed-unit renderer using the wall clock.
func NewFixedRenderer(target time.Time, s Surface) *FixedRenderer {
	return &FixedRenderer{Target: target, Clock: RealClock{}, Surface: s}
}

type unitNames struct {
	singular, plural string
}

var fixedUnits = map[string]unitNames{
	FieldYears:  {"Year", "Years"},
	FieldMonths: {"Month", "Months"},
	FieldDays:   {"Day", "Days"},
	FieldHours:  {"Hour", "Hours"},
}

// Render fills the four numeric fields and their unit labels. Once the
// target has passed every field reads "0" and the labels keep whatever
// they last showed.
func (r *FixedRenderer) Render() {
	b := timeutil.Decompose(r.Target, r.Clock.Now())
	if b.Elapsed {
		for _, id := range FixedFields {
			r.Surface.SetText(id, "0")
		}
		return
	}

	values := map[string]int{
		FieldYears:  b.Years,
		FieldMonths: b.Months,
		FieldDays:   b.Days,
		FieldHours:  b.Hours,
	}

	for _, id := range FixedFields {
		r.Surface.SetText(id, timeutil.PadTwo(values[id]))
	}
	for _, id := range FixedFields {
		u := fixedUnits[id]
		r.Surface.SetLabel(id, timeutil.Pluralize(values[id], u.singular, u.plural))
	}
}
