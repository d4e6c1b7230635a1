package section

// Reveal remembers which sections have entered the viewport. A section is
// revealed the first time any part of it is on screen and stays revealed.
type Reveal struct {
	sections []ID
	seen     map[ID]bool
}

// NewReveal watches ids, or every section below the hero when none are given.
func NewReveal(ids ...ID) *Reveal {
	if len(ids) == 0 {
		ids = All()[1:]
	}
	watch := make([]ID, len(ids))
	copy(watch, ids)
	return &Reveal{sections: watch, seen: make(map[ID]bool, len(watch))}
}

// Observe checks the watched sections against a viewport of the given
// height and returns the ones revealed by this call, in watch order.
func (r *Reveal) Observe(rects Rects, viewportHeight float64) []ID {
	if rects == nil || viewportHeight <= 0 {
		return nil
	}
	var fresh []ID
	for _, id := range r.sections {
		if r.seen[id] {
			continue
		}
		rect, ok := rects.Rect(string(id))
		if ok && rect.Bottom > 0 && rect.Top < viewportHeight {
			r.seen[id] = true
			fresh = append(fresh, id)
		}
	}
	return fresh
}

// Has reports whether id has been revealed.
func (r *Reveal) Has(id ID) bool { return r.seen[id] }

// Revealed lists the revealed sections in watch order.
func (r *Reveal) Revealed() []ID {
	out := make([]ID, 0, len(r.seen))
	for _, id := range r.sections {
		if r.seen[id] {
			out = append(out, id)
		}
	}
	return out
}
