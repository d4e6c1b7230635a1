package section

import "github.com/tharindu1999/portfolio/internal/scroll"

// DefaultReferenceY is the viewport line, in px from the top, that a
// section must cross to become active.
const DefaultReferenceY = 100

// Rects looks up the live rectangle of a section element.
type Rects interface {
	Rect(id string) (scroll.Rect, bool)
}

// Detector picks the first section, in document order, whose rectangle
// crosses ReferenceY.
type Detector struct {
	ReferenceY float64
	Sections   []ID
}

// NewDetector builds a detector over all sections.
func NewDetector(referenceY float64) *Detector {
	return &Detector{ReferenceY: referenceY, Sections: All()}
}

// Detect returns the matching section, or current when nothing matches or
// no geometry is available.
func (d *Detector) Detect(current ID, rects Rects) ID {
	if rects == nil {
		return current
	}
	sections := d.Sections
	if sections == nil {
		sections = order
	}
	for _, id := range sections {
		r, ok := rects.Rect(string(id))
		if ok && r.Contains(d.ReferenceY) {
			return id
		}
	}
	return current
}

// Update runs Detect against the state and stores the result. It reports
// whether the active section changed.
func (d *Detector) Update(s *State, rects Rects) (ID, bool) {
	next := d.Detect(s.Active(), rects)
	return next, s.set(next)
}
