// Package view is the top-level page controller. It owns the active
// section, listens to scrolling while mounted, and pushes one computed
// frame per rendered browser frame to a Renderer.
package view

import (
	"context"
	"sync"
	"time"

	"github.com/tharindu1999/portfolio/internal/logger"
	"github.com/tharindu1999/portfolio/internal/motion"
	"github.com/tharindu1999/portfolio/internal/scroll"
	"github.com/tharindu1999/portfolio/internal/section"
)

// Behavior is the scroll-into-view animation mode.
type Behavior string

const (
	Smooth  Behavior = "smooth"
	Instant Behavior = "instant"
)

// Platform is the hosting browsing context.
type Platform interface {
	scroll.Layout
	scroll.Scheduler

	// AddScrollListener registers fn for scroll events and returns the
	// function that removes it.
	AddScrollListener(fn func()) (remove func())

	// ScrollIntoView aligns the element's top with the viewport top. It
	// reports false when the element does not exist.
	ScrollIntoView(id string, behavior Behavior) bool
}

// Frame is everything a renderer needs for one paint.
type Frame struct {
	Scroll      scroll.State `json:"scroll"`
	Motion      motion.Frame `json:"motion"`
	ProgressBar float64      `json:"progressBar"`
	Active      section.ID   `json:"active"`
	// Revealed lists the sections that have entered the viewport so far.
	Revealed    []section.ID `json:"revealed"`
}

// Renderer applies frames to the screen.
type Renderer interface {
	Render(f Frame)
}

// RendererFunc adapts a function to Renderer.
type RendererFunc func(Frame)

func (f RendererFunc) Render(fr Frame) { f(fr) }

// Option configures a View.
type Option func(*View)

// WithReferenceY moves the active-section reference line.
func WithReferenceY(y float64) Option {
	return func(v *View) { v.detector.ReferenceY = y }
}

// WithHero picks the element whose progress drives the hero animation.
func WithHero(id section.ID) Option {
	return func(v *View) { v.tracker.Target = string(id) }
}

// WithReveal sets the sections that animate in on first appearance.
func WithReveal(ids ...section.ID) Option {
	return func(v *View) { v.reveal = section.NewReveal(ids...) }
}

// WithLogger sets the logger.
func WithLogger(l logger.Logger) Option {
	return func(v *View) { v.log = l }
}

// WithSpring replaces the progress bar spring.
func WithSpring(s *motion.Spring) Option {
	return func(v *View) { v.spring = s }
}

// View wires the tracker, detector and mapper to a platform.
type View struct {
	platform Platform
	renderer Renderer
	tracker  scroll.Tracker
	detector *section.Detector
	state    *section.State
	spring   *motion.Spring
	reveal   *section.Reveal
	log      logger.Logger

	mu      sync.Mutex
	ctx     context.Context
	gen     int
	release func()
	stop    func() bool
	frames  *scroll.Coalescer

	lastFrame time.Duration
	haveFrame bool
}

// New returns an unmounted view.
func New(p Platform, r Renderer, opts ...Option) *View {
	v := &View{
		platform: p,
		renderer: r,
		tracker:  scroll.Tracker{Target: string(section.Home)},
		detector: section.NewDetector(section.DefaultReferenceY),
		state:    section.NewState(),
		spring:   motion.NewSpring(),
		reveal:   section.NewReveal(),
		log:      logger.Nop(),
		ctx:      context.Background(),
	}
	for _, o := range opts {
		o(v)
	}
	if v.renderer == nil {
		v.renderer = RendererFunc(func(Frame) {})
	}
	return v
}

// Reader exposes the active section without a way to change it.
func (v *View) Reader() section.Reader { return readOnly{v.state} }

// Active is the current section.
func (v *View) Active() section.ID { return v.state.Active() }

// Mounted reports whether the scroll listener is attached.
func (v *View) Mounted() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.release != nil
}

// Mount attaches the scroll listener and schedules the first frame. A
// mounted view is remounted. The listener is detached by Unmount, by the
// returned function, or when ctx is done, whichever happens first.
func (v *View) Mount(ctx context.Context) (unmount func()) {
	if ctx == nil {
		ctx = context.Background()
	}
	v.Unmount()

	v.mu.Lock()
	v.gen++
	gen := v.gen
	v.ctx = ctx
	v.haveFrame = false
	v.frames = scroll.NewCoalescer(v.platform, func(now time.Duration) { v.renderFrame(gen, now) })
	v.mu.Unlock()

	remove := v.platform.AddScrollListener(func() { v.handleScroll(gen) })

	v.mu.Lock()
	if gen != v.gen {
		v.mu.Unlock()
		remove()
		return v.Unmount
	}
	v.release = remove
	v.stop = context.AfterFunc(ctx, v.Unmount)
	v.mu.Unlock()

	v.log.Debug(ctx, "view mounted", logger.Float64("reference_y", v.detector.ReferenceY))
	v.handleScroll(gen)
	return v.Unmount
}

// Unmount detaches the scroll listener. It is safe to call repeatedly.
func (v *View) Unmount() {
	v.mu.Lock()
	release, stop, ctx := v.release, v.stop, v.ctx
	v.release, v.stop = nil, nil
	v.gen++
	v.mu.Unlock()

	if stop != nil {
		stop()
	}
	if release != nil {
		release()
		v.log.Debug(ctx, "view unmounted")
	}
}

// ScrollTo asks the platform to smooth-scroll to a section. Active section
// updates follow from the scroll events the platform emits.
func (v *View) ScrollTo(id section.ID) bool {
	if !id.Valid() {
		return false
	}
	ok := v.platform.ScrollIntoView(string(id), Smooth)
	if !ok {
		v.log.Debug(v.context(), "scroll target missing", logger.String("section", string(id)))
	}
	return ok
}

func (v *View) current(gen int) (*scroll.Coalescer, bool) {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.frames, gen == v.gen && v.release != nil
}

func (v *View) context() context.Context {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.ctx
}

func (v *View) handleScroll(gen int) {
	frames, live := v.current(gen)
	if !live {
		return
	}
	if id, changed := v.detector.Update(v.state, v.platform); changed {
		v.log.Debug(v.context(), "active section changed", logger.String("section", string(id)))
	}
	frames.Request()
}

func (v *View) renderFrame(gen int, now time.Duration) {
	frames, live := v.current(gen)
	if !live {
		return
	}
	var dt time.Duration
	if v.haveFrame && now > v.lastFrame {
		dt = now - v.lastFrame
	}
	v.lastFrame, v.haveFrame = now, true

	s := v.tracker.Measure(v.platform)
	bar, rest := v.spring.Step(s.Global, dt)
	for _, id := range v.reveal.Observe(v.platform, v.platform.Metrics().ViewportHeight) {
		v.log.Debug(v.context(), "section revealed", logger.String("section", string(id)))
	}
	v.renderer.Render(Frame{
		Scroll:      s,
		Motion:      motion.Map(s),
		ProgressBar: bar,
		Active:      v.state.Active(),
		Revealed:    v.reveal.Revealed(),
	})
	if !rest {
		frames.Request()
	}
}

type readOnly struct{ s *section.State }

func (r readOnly) Active() section.ID { return r.s.Active() }
