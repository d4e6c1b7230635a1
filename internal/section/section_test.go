package section

import (
	"errors"
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/tharindu1999/portfolio/internal/scroll"
)

type rectMap map[string]scroll.Rect

func (m rectMap) Rect(id string) (scroll.Rect, bool) {
	r, ok := m[id]
	return r, ok
}

func TestIDs(t *testing.T) {
	Convey("Given the section set", t, func() {
		So(All(), ShouldResemble, []ID{Home, About, Skills, Experience, Education, Research, Contact})

		Convey("Then All returns a copy", func() {
			ids := All()
			ids[0] = Contact
			So(All()[0], ShouldEqual, Home)
		})

		Convey("Then labels and anchors follow the id", func() {
			So(Experience.Label(), ShouldEqual, "Experience")
			So(Experience.Anchor(), ShouldEqual, "#experience")
		})

		Convey("Then Parse accepts known names in any case", func() {
			id, err := Parse(" Skills ")
			So(err, ShouldBeNil)
			So(id, ShouldEqual, Skills)
		})

		Convey("Then Parse rejects unknown names", func() {
			_, err := Parse("blog")
			So(errors.Is(err, ErrUnknownSection), ShouldBeTrue)
		})
	})
}

func TestDetector(t *testing.T) {
	Convey("Given four stacked sections and a 100px reference line", t, func() {
		d := &Detector{ReferenceY: DefaultReferenceY, Sections: []ID{Home, About, Skills, Experience}}
		rects := rectMap{
			"home":       {Top: -900, Bottom: 200},
			"about":      {Top: 200, Bottom: 900},
			"skills":     {Top: 900, Bottom: 1600},
			"experience": {Top: 1600, Bottom: 2600},
		}

		Convey("When the line falls inside the hero", func() {
			So(d.Detect(About, rects), ShouldEqual, Home)
		})

		Convey("When the page scrolls so about spans the line", func() {
			shifted := rectMap{
				"home":       {Top: -1150, Bottom: -150},
				"about":      {Top: -150, Bottom: 550},
				"skills":     {Top: 550, Bottom: 1250},
				"experience": {Top: 1250, Bottom: 2250},
			}
			So(d.Detect(Home, shifted), ShouldEqual, About)
		})

		Convey("When the line sits exactly on an edge", func() {
			edge := rectMap{
				"home":  {Top: -900, Bottom: 100},
				"about": {Top: 100, Bottom: 800},
			}
			Convey("Then the first match in document order wins", func() {
				So(d.Detect(Skills, edge), ShouldEqual, Home)
			})
		})

		Convey("When no section crosses the line", func() {
			gap := rectMap{
				"home":  {Top: -1000, Bottom: 0},
				"about": {Top: 150, Bottom: 800},
			}
			Convey("Then the previous section is kept", func() {
				So(d.Detect(Skills, gap), ShouldEqual, Skills)
			})
		})

		Convey("When no elements exist yet", func() {
			So(d.Detect(Home, rectMap{}), ShouldEqual, Home)
			So(d.Detect(About, nil), ShouldEqual, About)
		})

		Convey("When rectangles overlap", func() {
			overlap := rectMap{
				"skills":     {Top: 0, Bottom: 500},
				"experience": {Top: 50, Bottom: 600},
			}
			So(d.Detect(Home, overlap), ShouldEqual, Skills)
		})
	})
}

func TestZeroState(t *testing.T) {
	Convey("Given a zero State", t, func() {
		var s State
		So(s.Active(), ShouldEqual, Home)

		Convey("When nothing matches it stays at Home without a change", func() {
			id, changed := NewDetector(DefaultReferenceY).Update(&s, rectMap{})
			So(id, ShouldEqual, Home)
			So(changed, ShouldBeFalse)
		})
	})
}

func TestDetectorUpdate(t *testing.T) {
	Convey("Given a fresh state", t, func() {
		s := NewState()
		d := NewDetector(DefaultReferenceY)
		So(s.Active(), ShouldEqual, Home)

		rects := rectMap{"experience": {Top: -20, Bottom: 800}}

		Convey("When updated twice with the same rectangles", func() {
			first, changed1 := d.Update(s, rects)
			second, changed2 := d.Update(s, rects)

			Convey("Then the result is the same both times", func() {
				So(first, ShouldEqual, Experience)
				So(second, ShouldEqual, Experience)
				So(changed1, ShouldBeTrue)
				So(changed2, ShouldBeFalse)
				So(s.Active(), ShouldEqual, Experience)
			})
		})

		Convey("When nothing matches", func() {
			id, changed := d.Update(s, rectMap{})
			So(id, ShouldEqual, Home)
			So(changed, ShouldBeFalse)
		})

		Convey("When the reference line is moved lower", func() {
			d.ReferenceY = 400
			id, _ := d.Update(s, rectMap{"about": {Top: 300, Bottom: 900}})
			So(id, ShouldEqual, About)
		})
	})
}
