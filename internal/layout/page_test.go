package layout

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/tharindu1999/portfolio/internal/scroll"
)

func TestPage(t *testing.T) {
	Convey("Given a 5000px page in a 1000px viewport", t, func() {
		p := NewPage(1000,
			Block{ID: "home", Height: 1000},
			Block{ID: "about", Height: 1500},
			Block{ID: "skills", Height: -20},
			Block{ID: "experience", Height: 2500},
		)

		Convey("Then blocks stack in document order", func() {
			off, ok := p.Offset("experience")
			So(ok, ShouldBeTrue)
			So(off, ShouldEqual, 2500)
			So(p.Metrics().DocumentHeight, ShouldEqual, 5000)
			So(p.MaxScroll(), ShouldEqual, 4000)
		})

		Convey("When scrolled to 2000px", func() {
			p.ScrollTo(2000)

			Convey("Then rectangles move up by the offset", func() {
				r, ok := p.Rect("about")
				So(ok, ShouldBeTrue)
				So(r, ShouldResemble, scroll.Rect{Top: -1000, Bottom: 500})
			})

			Convey("Then global progress is half way", func() {
				So(scroll.GlobalProgress(p.Metrics()), ShouldEqual, 0.5)
			})
		})

		Convey("When scrolling past either end", func() {
			p.ScrollTo(-10)
			So(p.ScrollY(), ShouldEqual, 0)
			p.ScrollTo(99999)
			So(p.ScrollY(), ShouldEqual, 4000)
		})

		Convey("Then unknown ids are reported missing", func() {
			_, ok := p.Rect("contact")
			So(ok, ShouldBeFalse)
		})

		Convey("Then Blocks is a copy", func() {
			b := p.Blocks()
			b[0].Height = 1
			So(p.Blocks()[0].Height, ShouldEqual, 1000)
		})
	})
}
