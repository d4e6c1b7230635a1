package dom

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/tharindu1999/portfolio/internal/motion"
	"github.com/tharindu1999/portfolio/internal/scroll"
	"github.com/tharindu1999/portfolio/internal/section"
	"github.com/tharindu1999/portfolio/internal/view"
)

type fakeElement struct {
	style   map[string]string
	classes map[string]bool
	data    map[string]string
	writes  int
}

func newElement(data map[string]string) *fakeElement {
	return &fakeElement{style: map[string]string{}, classes: map[string]bool{}, data: data}
}

func (e *fakeElement) SetStyle(prop, value string) { e.style[prop] = value }

func (e *fakeElement) SetClass(name string, on bool) {
	e.writes++
	e.classes[name] = on
}

func (e *fakeElement) Data(key string) string { return e.data[key] }

type fakeDocument struct {
	ids       map[string]*fakeElement
	selectors map[string][]*fakeElement
	root      *fakeElement
}

func (d *fakeDocument) ByID(id string) (Element, bool) {
	el, ok := d.ids[id]
	if !ok {
		return nil, false
	}
	return el, true
}

func (d *fakeDocument) First(selector string) (Element, bool) {
	els := d.selectors[selector]
	if len(els) == 0 {
		return nil, false
	}
	return els[0], true
}

func (d *fakeDocument) All(selector string) []Element {
	var out []Element
	for _, el := range d.selectors[selector] {
		out = append(out, el)
	}
	return out
}

func (d *fakeDocument) Root() Element { return d.root }

func newPage() *fakeDocument {
	d := &fakeDocument{
		ids:       map[string]*fakeElement{},
		selectors: map[string][]*fakeElement{},
		root:      newElement(nil),
	}
	for _, id := range section.All() {
		d.ids[string(id)] = newElement(nil)
	}
	d.selectors[".progress-bar"] = []*fakeElement{newElement(nil)}
	d.selectors[".stars, .stars2, .stars3"] = []*fakeElement{newElement(nil), newElement(nil)}
	for _, id := range section.All() {
		d.selectors[".nav-links a[data-section]"] = append(d.selectors[".nav-links a[data-section]"],
			newElement(map[string]string{"section": string(id)}))
	}
	return d
}

func (d *fakeDocument) link(id section.ID) *fakeElement {
	for _, el := range d.selectors[".nav-links a[data-section]"] {
		if el.data["section"] == string(id) {
			return el
		}
	}
	return nil
}

func TestStyleStrings(t *testing.T) {
	Convey("Style values are formatted with fixed precision", t, func() {
		So(Opacity(0.48), ShouldEqual, "0.4800")
		So(TranslateY(-210), ShouldEqual, "translateY(-210.0000px)")
		So(Scale(1.25), ShouldEqual, "scale(1.2500)")
		So(ScaleX(0), ShouldEqual, "scaleX(0.0000)")
	})
}

func TestRenderer(t *testing.T) {
	Convey("Given a renderer over a full page", t, func() {
		doc := newPage()
		r := NewRenderer(doc, section.Home)

		Convey("Then the root is marked for motion styles", func() {
			So(doc.root.classes[ClassMotion], ShouldBeTrue)
		})

		Convey("When a frame is rendered", func() {
			f := view.Frame{
				Scroll:      scroll.State{Global: 0.14, Section: 0.7},
				Motion:      motion.Map(scroll.State{Global: 0.14, Section: 0.7}),
				ProgressBar: 0.14,
				Active:      section.Home,
				Revealed:    []section.ID{section.About},
			}
			r.Render(f)

			Convey("Then the hero, stars and progress bar carry the frame", func() {
				hero := doc.ids["home"]
				So(hero.style["opacity"], ShouldEqual, "0.4800")
				So(hero.style["transform"], ShouldEqual, "translateY(-210.0000px)")
				for _, s := range doc.selectors[".stars, .stars2, .stars3"] {
					So(s.style["opacity"], ShouldEqual, Opacity(f.Motion.Stars.Opacity))
					So(s.style["transform"], ShouldEqual, Scale(f.Motion.Stars.Scale))
				}
				So(doc.selectors[".progress-bar"][0].style["transform"], ShouldEqual, "scaleX(0.1400)")
			})

			Convey("Then only the active link is highlighted", func() {
				So(doc.link(section.Home).classes[ClassActive], ShouldBeTrue)
				So(doc.link(section.About).classes[ClassActive], ShouldBeFalse)
			})

			Convey("Then revealed sections get the revealed class", func() {
				So(doc.ids["about"].classes[ClassRevealed], ShouldBeTrue)
				So(doc.ids["skills"].classes[ClassRevealed], ShouldBeFalse)
			})

			Convey("When the active section changes", func() {
				f.Active = section.About
				r.Render(f)
				So(doc.link(section.Home).classes[ClassActive], ShouldBeFalse)
				So(doc.link(section.About).classes[ClassActive], ShouldBeTrue)
			})

			Convey("When the same frame is rendered again", func() {
				link := doc.link(section.Home)
				about := doc.ids["about"]
				before, aboutBefore := link.writes, about.writes
				r.Render(f)
				So(link.writes, ShouldEqual, before)
				So(about.writes, ShouldEqual, aboutBefore)
			})
		})
	})

	Convey("Given a page without animated elements", t, func() {
		doc := &fakeDocument{ids: map[string]*fakeElement{}, selectors: map[string][]*fakeElement{}, root: newElement(nil)}
		r := NewRenderer(doc, section.Home)
		So(func() {
			r.Render(view.Frame{Active: section.About, Revealed: []section.ID{section.Contact}})
		}, ShouldNotPanic)
	})
}

type box struct {
	top, height float64
	parent      *box
}

func (b *box) OffsetTop() float64    { return b.top }
func (b *box) OffsetHeight() float64 { return b.height }

func (b *box) OffsetParent() (Box, bool) {
	if b.parent == nil {
		return nil, false
	}
	return b.parent, true
}

func TestLayoutRect(t *testing.T) {
	Convey("Layout rects sum the offset chain and subtract the scroll", t, func() {
		wrapper := &box{top: 64}
		hero := &box{top: 0, height: 1000, parent: wrapper}
		So(LayoutRect(hero, 0), ShouldResemble, scroll.Rect{Top: 64, Bottom: 1064})
		So(LayoutRect(hero, 764), ShouldResemble, scroll.Rect{Top: -700, Bottom: 300})
	})

	Convey("Bounding rects keep the rendered edges", t, func() {
		So(BoundingRect(-910, 90), ShouldResemble, scroll.Rect{Top: -910, Bottom: 90})
	})
}

func TestClick(t *testing.T) {
	Convey("Given a navigation click", t, func() {
		var prevented int
		prevent := func() { prevented++ }

		Convey("When nav scrolls to the section", func() {
			var got section.ID
			ok := Click(func(id section.ID) bool { got = id; return true }, "about", prevent)
			So(ok, ShouldBeTrue)
			So(got, ShouldEqual, section.About)
			So(prevented, ShouldEqual, 1)
		})

		Convey("When nav declines", func() {
			ok := Click(func(section.ID) bool { return false }, "nowhere", prevent)
			So(ok, ShouldBeFalse)
			So(prevented, ShouldEqual, 0)
		})

		Convey("When there is no nav", func() {
			So(Click(nil, "about", prevent), ShouldBeFalse)
			So(prevented, ShouldEqual, 0)
		})
	})
}

func TestReadSettings(t *testing.T) {
	dataset := func(m map[string]string) func(string) string {
		return func(k string) string { return m[k] }
	}

	Convey("An empty dataset yields defaults", t, func() {
		s, problems := ReadSettings(dataset(nil))
		So(problems, ShouldBeEmpty)
		So(s.ReferenceY, ShouldEqual, float64(section.DefaultReferenceY))
		So(s.Hero, ShouldEqual, section.Home)
	})

	Convey("Valid values are used", t, func() {
		s, problems := ReadSettings(dataset(map[string]string{"logLevel": "debug", "referenceY": "150", "hero": "About"}))
		So(problems, ShouldBeEmpty)
		So(s.LogLevel, ShouldEqual, "debug")
		So(s.ReferenceY, ShouldEqual, 150.0)
		So(s.Hero, ShouldEqual, section.About)
	})

	Convey("Bad values fall back and are reported", t, func() {
		s, problems := ReadSettings(dataset(map[string]string{"referenceY": "lots", "hero": "footer"}))
		So(problems, ShouldResemble, []string{"referenceY=lots", "hero=footer"})
		So(s.ReferenceY, ShouldEqual, float64(section.DefaultReferenceY))
		So(s.Hero, ShouldEqual, section.Home)
	})
}
