// Package scroll turns raw scroll offsets and element geometry into
// normalized progress values.
package scroll

import "math"

// Rect is the vertical extent of an element in viewport coordinates.
type Rect struct {
	Top    float64 `json:"top"`
	Bottom float64 `json:"bottom"`
}

// Height returns the element height, never negative.
func (r Rect) Height() float64 {
	if r.Bottom < r.Top {
		return 0
	}
	return r.Bottom - r.Top
}

// Contains reports whether the horizontal line y crosses the rect, edges included.
func (r Rect) Contains(y float64) bool {
	return r.Top <= y && r.Bottom >= y
}

// Metrics are the document-level scroll measurements.
type Metrics struct {
	ScrollY        float64 `json:"scrollY"`
	DocumentHeight float64 `json:"documentHeight"`
	ViewportHeight float64 `json:"viewportHeight"`
}

// Layout answers the geometry queries a tracker needs. Rect reports false
// when the element is not in the document yet.
type Layout interface {
	Metrics() Metrics
	Rect(id string) (Rect, bool)
}

// TransformFree is implemented by layouts that can report an element's
// rect from document flow, ignoring CSS transforms applied to it. The
// tracker prefers it so an element animated from its own progress does
// not feed its transform back into that progress.
type TransformFree interface {
	LayoutRect(id string) (Rect, bool)
}

// State is the pair of progress values derived from one measurement.
// Both fields are always in [0,1].
type State struct {
	Global  float64 `json:"globalProgress"`
	Section float64 `json:"sectionProgress"`
}

// Clamp limits v to [0,1]. NaN maps to 0.
func Clamp(v float64) float64 {
	switch {
	case math.IsNaN(v), v < 0:
		return 0
	case v > 1:
		return 1
	}
	return v
}

// GlobalProgress is the document scroll offset over the scrollable range.
// A document no taller than the viewport has no range and yields 0.
func GlobalProgress(m Metrics) float64 {
	span := m.DocumentHeight - m.ViewportHeight
	if span <= 0 || math.IsNaN(span) || math.IsInf(span, 0) {
		return 0
	}
	return Clamp(m.ScrollY / span)
}

// SectionProgress tracks an element from the moment its top reaches the
// viewport top (0) until its bottom does (1).
func SectionProgress(r Rect, ok bool) float64 {
	h := r.Height()
	if !ok || h == 0 {
		return 0
	}
	return Clamp(-r.Top / h)
}

// Tracker measures global progress and the progress of one target element.
type Tracker struct {
	Target string
}

// Measure reads the layout once and returns the clamped state.
func (t Tracker) Measure(l Layout) State {
	if l == nil {
		return State{}
	}
	var s State
	s.Global = GlobalProgress(l.Metrics())
	if t.Target != "" {
		if tf, ok := l.(TransformFree); ok {
			s.Section = SectionProgress(tf.LayoutRect(t.Target))
		} else {
			s.Section = SectionProgress(l.Rect(t.Target))
		}
	}
	return s
}
