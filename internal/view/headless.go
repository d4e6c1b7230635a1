package view

import (
	"time"

	"github.com/tharindu1999/portfolio/internal/layout"
)

// Headless is a Platform over a simulated page. Frames run only when Tick
// is called, and smooth scrolling jumps straight to the target.
type Headless struct {
	*layout.Page

	// FrameInterval is the clock advance per Tick.
	FrameInterval time.Duration

	listeners map[int]func()
	next      int
	queue     []func(time.Duration)
	now       time.Duration
}

// NewHeadless wraps a page with a 60 Hz frame clock.
func NewHeadless(p *layout.Page) *Headless {
	return &Headless{
		Page:          p,
		FrameInterval: time.Second / 60,
		listeners:     make(map[int]func()),
	}
}

func (h *Headless) AddScrollListener(fn func()) func() {
	id := h.next
	h.next++
	h.listeners[id] = fn
	return func() { delete(h.listeners, id) }
}

func (h *Headless) RequestFrame(fn func(time.Duration)) {
	h.queue = append(h.queue, fn)
}

func (h *Headless) ScrollIntoView(id string, _ Behavior) bool {
	off, ok := h.Offset(id)
	if !ok {
		return false
	}
	h.Scroll(off)
	return true
}

// Listeners is the number of attached scroll listeners.
func (h *Headless) Listeners() int { return len(h.listeners) }

// Scroll moves the page and dispatches one scroll event.
func (h *Headless) Scroll(y float64) {
	h.ScrollTo(y)
	for _, fn := range h.listeners {
		fn()
	}
}

// Tick runs the frame callbacks queued so far and returns how many ran.
func (h *Headless) Tick() int {
	h.now += h.FrameInterval
	queued := h.queue
	h.queue = nil
	for _, fn := range queued {
		fn(h.now)
	}
	return len(queued)
}

// Settle ticks until no frame is queued or max ticks have run.
func (h *Headless) Settle(max int) int {
	n := 0
	for n < max && len(h.queue) > 0 {
		h.Tick()
		n++
	}
	return n
}
