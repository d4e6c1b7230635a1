// Package dom binds the view to a real browser page. The syscall/js glue
// lives in the js/wasm build; everything it feeds is plain Go.
package dom

import (
	"fmt"
	"strconv"

	"github.com/tharindu1999/portfolio/internal/section"
	"github.com/tharindu1999/portfolio/internal/view"
)

// Class names the page stylesheet keys off.
const (
	ClassMotion   = "motion"
	ClassActive   = "active"
	ClassRevealed = "revealed"
)

// Element is the slice of a DOM element the renderer writes to.
type Element interface {
	SetStyle(prop, value string)
	SetClass(name string, on bool)
	Data(key string) string
}

// Document looks elements up.
type Document interface {
	ByID(id string) (Element, bool)
	First(selector string) (Element, bool)
	All(selector string) []Element
	Root() Element
}

// Renderer writes frames to inline styles and classes.
type Renderer struct {
	hero     Element
	bar      Element
	stars    []Element
	links    []Element
	sections map[section.ID]Element
	revealed map[section.ID]bool
	active   section.ID
	painted  bool
}

// NewRenderer caches the animated elements of the page and marks the root
// so reveal styles apply. Missing elements are skipped when rendering.
func NewRenderer(doc Document, hero section.ID) *Renderer {
	r := &Renderer{
		sections: make(map[section.ID]Element),
		revealed: make(map[section.ID]bool),
	}
	if el, ok := doc.ByID(string(hero)); ok {
		r.hero = el
	}
	if el, ok := doc.First(".progress-bar"); ok {
		r.bar = el
	}
	r.stars = doc.All(".stars, .stars2, .stars3")
	r.links = doc.All(".nav-links a[data-section]")
	for _, id := range section.All() {
		if el, ok := doc.ByID(string(id)); ok {
			r.sections[id] = el
		}
	}
	if root := doc.Root(); root != nil {
		root.SetClass(ClassMotion, true)
	}
	return r
}

// Render implements view.Renderer.
func (r *Renderer) Render(f view.Frame) {
	if r.hero != nil {
		r.hero.SetStyle("opacity", Opacity(f.Motion.Hero.Opacity))
		r.hero.SetStyle("transform", TranslateY(f.Motion.Hero.TranslateY))
	}
	for _, s := range r.stars {
		s.SetStyle("opacity", Opacity(f.Motion.Stars.Opacity))
		s.SetStyle("transform", Scale(f.Motion.Stars.Scale))
	}
	if r.bar != nil {
		r.bar.SetStyle("transform", ScaleX(f.ProgressBar))
	}
	for _, id := range f.Revealed {
		if r.revealed[id] {
			continue
		}
		r.revealed[id] = true
		if el, ok := r.sections[id]; ok {
			el.SetClass(ClassRevealed, true)
		}
	}
	if r.painted && f.Active == r.active {
		return
	}
	r.active, r.painted = f.Active, true
	for _, a := range r.links {
		a.SetClass(ClassActive, section.ID(a.Data("section")) == f.Active)
	}
}

func num(f float64) string { return strconv.FormatFloat(f, 'f', 4, 64) }

// Opacity formats an opacity value.
func Opacity(v float64) string { return num(v) }

// TranslateY formats a vertical shift in pixels.
func TranslateY(px float64) string { return fmt.Sprintf("translateY(%spx)", num(px)) }

// Scale formats a uniform scale.
func Scale(v float64) string { return fmt.Sprintf("scale(%s)", num(v)) }

// ScaleX formats a horizontal scale.
func ScaleX(v float64) string { return fmt.Sprintf("scaleX(%s)", num(v)) }
