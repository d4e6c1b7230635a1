package section

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/tharindu1999/portfolio/internal/scroll"
)

func TestReveal(t *testing.T) {
	Convey("Given a reveal set over the default sections", t, func() {
		r := NewReveal()
		So(r.Revealed(), ShouldBeEmpty)

		Convey("When only the top of about peeks into a 1000px viewport", func() {
			fresh := r.Observe(rectMap{
				"home":  {Top: 0, Bottom: 1000},
				"about": {Top: 999, Bottom: 1800},
			}, 1000)
			So(fresh, ShouldResemble, []ID{About})
			So(r.Has(Home), ShouldBeFalse)

			Convey("Then observing again reports nothing new", func() {
				So(r.Observe(rectMap{"about": {Top: 500, Bottom: 1300}}, 1000), ShouldBeEmpty)
				So(r.Revealed(), ShouldResemble, []ID{About})
			})

			Convey("Then scrolling back above it keeps it revealed", func() {
				r.Observe(rectMap{"about": {Top: 1500, Bottom: 2300}}, 1000)
				So(r.Has(About), ShouldBeTrue)
			})
		})

		Convey("When a section sits exactly below the fold", func() {
			So(r.Observe(rectMap{"skills": {Top: 1000, Bottom: 1900}}, 1000), ShouldBeEmpty)
		})

		Convey("When a section is already scrolled past", func() {
			So(r.Observe(rectMap{"skills": {Top: -900, Bottom: 0}}, 1000), ShouldBeEmpty)
		})

		Convey("When geometry is missing", func() {
			So(r.Observe(nil, 1000), ShouldBeEmpty)
			So(r.Observe(rectMap{"about": {Top: 0, Bottom: 10}}, 0), ShouldBeEmpty)
		})
	})

	Convey("Given an explicit watch list", t, func() {
		r := NewReveal(Contact, Skills)
		fresh := r.Observe(rectMap{
			"skills":  scroll.Rect{Top: 0, Bottom: 100},
			"contact": scroll.Rect{Top: 200, Bottom: 300},
			"about":   scroll.Rect{Top: 0, Bottom: 100},
		}, 1000)
		So(fresh, ShouldResemble, []ID{Contact, Skills})
		So(r.Has(About), ShouldBeFalse)
	})
}
