// Package countdown renders the Home and fixed-unit countdowns onto an
// injected display surface and schedules their once-per-second refresh.
package countdown

import (
	"fmt"
	"io"
	"sync"
	"time"
)

// Field ids written by the renderers.
const (
	FieldHome   = "countdown-home"
	FieldYears  = "crv-years"
	FieldMonths = "crv-months"
	FieldDays   = "crv-days"
	FieldHours  = "crv-hours"
)

// FixedFields lists the fixed-unit numeric fields in display order.
var FixedFields = []string{FieldYears, FieldMonths, FieldDays, FieldHours}

// Surface is the rendering port. Both methods report whether the target
// element exists; a missing element is not an error and callers move on.
type Surface interface {
	// SetText replaces the text of the field with the given id.
	SetText(id, text string) bool
	// SetLabel replaces the text of the unit label that sits next to
	// the field with the given id.
	SetLabel(id, text string) bool
}

// Clock provides the current time.
type Clock interface {
	Now() time.Time
}

// RealClock returns the wall-clock time.
type RealClock struct{}

func (RealClock) Now() time.Time { return time.Now() }

// MapSurface is an in-memory Surface. Only fields registered with
// NewMapSurface exist; writes to any other id are dropped.
type MapSurface struct {
	mu     sync.Mutex
	text   map[string]string
	labels map[string]string
}

// NewMapSurface creates a surface with the given fields. Every field
// also gets a unit label slot.
func NewMapSurface(ids ...string) *MapSurface {
	s := &MapSurface{
		text:   make(map[string]string, len(ids)),
		labels: make(map[string]string, len(ids)),
	}
	for _, id := range ids {
		s.text[id] = ""
		s.labels[id] = ""
	}
	return s
}

func (s *MapSurface) SetText(id, text string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.text[id]; !ok {
		return false
	}
	s.text[id] = text
	return true
}

func (s *MapSurface) SetLabel(id, text string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.labels[id]; !ok {
		return false
	}
	s.labels[id] = text
	return true
}

// Text returns the current text of a field.
func (s *MapSurface) Text(id string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.text[id]
}

// Label returns the current unit label of a field.
func (s *MapSurface) Label(id string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.labels[id]
}

// WriterSurface wraps a MapSurface and writes one "id=text" line to w
// every time a field or label changes value. Labels are written as
// "id.label=text".
type WriterSurface struct {
	*MapSurface

	mu sync.Mutex
	w  io.Writer
}

// NewWriterSurface creates a line-oriented surface with the given fields.
func NewWriterSurface(w io.Writer, ids ...string) *WriterSurface {
	return &WriterSurface{MapSurface: NewMapSurface(ids...), w: w}
}

func (s *WriterSurface) SetText(id, text string) bool {
	if prev, ok := s.lookup(id, false); !ok || prev == text {
		return ok
	}
	s.MapSurface.SetText(id, text)
	s.emit(id, text)
	return true
}

func (s *WriterSurface) SetLabel(id, text string) bool {
	if prev, ok := s.lookup(id, true); !ok || prev == text {
		return ok
	}
	s.MapSurface.SetLabel(id, text)
	s.emit(id+".label", text)
	return true
}

func (s *WriterSurface) lookup(id string, label bool) (string, bool) {
	s.MapSurface.mu.Lock()
	defer s.MapSurface.mu.Unlock()
	if label {
		v, ok := s.labels[id]
		return v, ok
	}
	v, ok := s.text[id]
	return v, ok
}

func (s *WriterSurface) emit(key, text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fmt.Fprintf(s.w, "%s=%s\n", key, text)
}
