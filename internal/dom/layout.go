package dom

import (
	"strconv"

	"github.com/tharindu1999/portfolio/internal/scroll"
	"github.com/tharindu1999/portfolio/internal/section"
)

// Box is an element's untransformed layout box.
type Box interface {
	OffsetTop() float64
	OffsetHeight() float64
	OffsetParent() (Box, bool)
}

// LayoutRect places b in viewport coordinates from its offset chain. CSS
// transforms on b or its ancestors do not move the result.
func LayoutRect(b Box, scrollY float64) scroll.Rect {
	var top float64
	for p, ok := b, true; ok && p != nil; p, ok = p.OffsetParent() {
		top += p.OffsetTop()
	}
	top -= scrollY
	return scroll.Rect{Top: top, Bottom: top + b.OffsetHeight()}
}

// BoundingRect converts getBoundingClientRect edges.
func BoundingRect(top, bottom float64) scroll.Rect {
	return scroll.Rect{Top: top, Bottom: bottom}
}

// Click handles a click on a navigation element targeting id. The default
// jump is cancelled only when nav took the scroll over.
func Click(nav func(section.ID) bool, id string, preventDefault func()) bool {
	if nav == nil || !nav(section.ID(id)) {
		return false
	}
	if preventDefault != nil {
		preventDefault()
	}
	return true
}

// Settings are the page's data-* knobs on <body>.
type Settings struct {
	LogLevel   string
	ReferenceY float64
	Hero       section.ID
}

// ReadSettings parses the body dataset. Bad values fall back to defaults
// and are returned as problems for the caller to log.
func ReadSettings(data func(key string) string) (Settings, []string) {
	s := Settings{
		LogLevel:   data("logLevel"),
		ReferenceY: section.DefaultReferenceY,
		Hero:       section.Home,
	}
	var problems []string
	if v := data("referenceY"); v != "" {
		if y, err := strconv.ParseFloat(v, 64); err == nil && y >= 0 {
			s.ReferenceY = y
		} else {
			problems = append(problems, "referenceY="+v)
		}
	}
	if v := data("hero"); v != "" {
		if id, err := section.Parse(v); err == nil {
			s.Hero = id
		} else {
			problems = append(problems, "hero="+v)
		}
	}
	return s, problems
}
