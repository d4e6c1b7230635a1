//go:build js && wasm

package dom

import (
	"time"

	"syscall/js"

	"github.com/tharindu1999/portfolio/internal/scroll"
	"github.com/tharindu1999/portfolio/internal/section"
	"github.com/tharindu1999/portfolio/internal/view"
)

// Window is the browser Platform and Document for the current tab.
type Window struct {
	win js.Value
	doc js.Value
}

// NewWindow binds to the global window and document.
func NewWindow() *Window {
	w := js.Global()
	return &Window{win: w, doc: w.Get("document")}
}

func (w *Window) element(id string) (js.Value, bool) {
	el := w.doc.Call("getElementById", id)
	if !el.Truthy() {
		return js.Value{}, false
	}
	return el, true
}

// Metrics reads the document scroll offset and sizes.
func (w *Window) Metrics() scroll.Metrics {
	root := w.doc.Get("documentElement")
	return scroll.Metrics{
		ScrollY:        w.win.Get("scrollY").Float(),
		DocumentHeight: root.Get("scrollHeight").Float(),
		ViewportHeight: w.win.Get("innerHeight").Float(),
	}
}

// Rect returns the element's rendered box in viewport coordinates.
func (w *Window) Rect(id string) (scroll.Rect, bool) {
	el, ok := w.element(id)
	if !ok {
		return scroll.Rect{}, false
	}
	r := el.Call("getBoundingClientRect")
	return BoundingRect(r.Get("top").Float(), r.Get("bottom").Float()), true
}

// LayoutRect returns the element's box before transforms, so progress
// read from an animated element does not feed back into itself.
func (w *Window) LayoutRect(id string) (scroll.Rect, bool) {
	el, ok := w.element(id)
	if !ok {
		return scroll.Rect{}, false
	}
	return LayoutRect(jsBox{el}, w.win.Get("scrollY").Float()), true
}

// RequestFrame runs fn on the next animation frame.
func (w *Window) RequestFrame(fn func(now time.Duration)) {
	var cb js.Func
	cb = js.FuncOf(func(_ js.Value, args []js.Value) any {
		defer cb.Release()
		var now time.Duration
		if len(args) > 0 {
			now = time.Duration(args[0].Float() * float64(time.Millisecond))
		}
		fn(now)
		return nil
	})
	w.win.Call("requestAnimationFrame", cb)
}

// AddScrollListener registers a passive scroll listener.
func (w *Window) AddScrollListener(fn func()) func() {
	cb := js.FuncOf(func(js.Value, []js.Value) any {
		fn()
		return nil
	})
	opts := map[string]any{"passive": true}
	w.win.Call("addEventListener", "scroll", cb, opts)
	return func() {
		w.win.Call("removeEventListener", "scroll", cb, opts)
		cb.Release()
	}
}

// ScrollIntoView uses the browser's own smooth scrolling.
func (w *Window) ScrollIntoView(id string, behavior view.Behavior) bool {
	el, ok := w.element(id)
	if !ok {
		return false
	}
	el.Call("scrollIntoView", map[string]any{"behavior": string(behavior)})
	return true
}

// Dataset reads a data-* attribute from <body>.
func (w *Window) Dataset(key string) string {
	return jsElement{w.doc.Get("body")}.Data(key)
}

// BindNavigation routes clicks on [data-scroll-to] elements through nav.
// The returned function removes the handlers.
func (w *Window) BindNavigation(nav func(section.ID) bool) func() {
	nodes := w.doc.Call("querySelectorAll", "[data-scroll-to]")
	var releases []func()
	for i := 0; i < nodes.Length(); i++ {
		el := nodes.Index(i)
		id := jsElement{el}.Data("scrollTo")
		cb := js.FuncOf(func(_ js.Value, args []js.Value) any {
			Click(nav, id, func() {
				if len(args) > 0 {
					args[0].Call("preventDefault")
				}
			})
			return nil
		})
		el.Call("addEventListener", "click", cb)
		releases = append(releases, func() {
			el.Call("removeEventListener", "click", cb)
			cb.Release()
		})
	}
	return func() {
		for _, r := range releases {
			r()
		}
	}
}

// ByID implements Document.
func (w *Window) ByID(id string) (Element, bool) {
	el, ok := w.element(id)
	if !ok {
		return nil, false
	}
	return jsElement{el}, true
}

// First implements Document.
func (w *Window) First(selector string) (Element, bool) {
	el := w.doc.Call("querySelector", selector)
	if !el.Truthy() {
		return nil, false
	}
	return jsElement{el}, true
}

// All implements Document.
func (w *Window) All(selector string) []Element {
	nodes := w.doc.Call("querySelectorAll", selector)
	out := make([]Element, nodes.Length())
	for i := range out {
		out[i] = jsElement{nodes.Index(i)}
	}
	return out
}

// Root implements Document.
func (w *Window) Root() Element { return jsElement{w.doc.Get("documentElement")} }

type jsElement struct{ v js.Value }

func (e jsElement) SetStyle(prop, value string) { e.v.Get("style").Set(prop, value) }

func (e jsElement) SetClass(name string, on bool) {
	e.v.Get("classList").Call("toggle", name, on)
}

func (e jsElement) Data(key string) string {
	v := e.v.Get("dataset").Get(key)
	if !v.Truthy() {
		return ""
	}
	return v.String()
}

type jsBox struct{ v js.Value }

func (b jsBox) OffsetTop() float64    { return b.v.Get("offsetTop").Float() }
func (b jsBox) OffsetHeight() float64 { return b.v.Get("offsetHeight").Float() }

func (b jsBox) OffsetParent() (Box, bool) {
	p := b.v.Get("offsetParent")
	if !p.Truthy() {
		return nil, false
	}
	return jsBox{p}, true
}
