package scroll

import "time"

// Scheduler defers a callback to the next rendered frame. The callback
// receives the frame timestamp.
type Scheduler interface {
	RequestFrame(fn func(now time.Duration))
}

// Coalescer collapses any number of Request calls between two frames into a
// single invocation of its callback. It is driven from one UI loop and is
// not safe for concurrent use.
type Coalescer struct {
	sched   Scheduler
	fn      func(now time.Duration)
	pending bool
}

// NewCoalescer returns a coalescer that runs fn at most once per frame.
func NewCoalescer(s Scheduler, fn func(now time.Duration)) *Coalescer {
	return &Coalescer{sched: s, fn: fn}
}

// Request schedules fn for the next frame unless it is already scheduled.
func (c *Coalescer) Request() {
	if c.pending || c.sched == nil {
		return
	}
	c.pending = true
	c.sched.RequestFrame(c.run)
}

// Pending reports whether a frame is scheduled and has not run yet.
func (c *Coalescer) Pending() bool { return c.pending }

// Cancel drops a scheduled run; the frame callback becomes a no-op.
func (c *Coalescer) Cancel() { c.pending = false }

func (c *Coalescer) run(now time.Duration) {
	if !c.pending {
		return
	}
	c.pending = false
	if c.fn != nil {
		c.fn(now)
	}
}
