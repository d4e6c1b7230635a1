package motion

import (
	"math"
	"time"
)

const (
	maxSpringStep  = time.Millisecond
	maxSpringFrame = 100 * time.Millisecond
)

// Spring eases a value toward a moving target. The zero value is not
// usable; start from NewSpring.
type Spring struct {
	Stiffness float64
	Damping   float64
	Mass      float64
	RestDelta float64
	RestSpeed float64

	value    float64
	velocity float64
}

// NewSpring returns the progress-bar spring: stiffness 100, damping 30.
func NewSpring() *Spring {
	return &Spring{
		Stiffness: 100,
		Damping:   30,
		Mass:      1,
		RestDelta: 0.001,
		RestSpeed: 0.01,
	}
}

// Value is the current position.
func (s *Spring) Value() float64 { return s.value }

// Jump moves the spring to v and stops it.
func (s *Spring) Jump(v float64) {
	s.value = v
	s.velocity = 0
}

// Step advances the spring by dt toward target and reports whether it has
// come to rest. A resting spring snaps to the target. Gaps longer than
// 100ms, such as a backgrounded tab, advance it by 100ms only.
func (s *Spring) Step(target float64, dt time.Duration) (float64, bool) {
	mass := s.Mass
	if mass <= 0 {
		mass = 1
	}
	if dt > maxSpringFrame {
		dt = maxSpringFrame
	}
	for dt > 0 {
		h := dt
		if h > maxSpringStep {
			h = maxSpringStep
		}
		dt -= h
		sec := h.Seconds()
		force := -s.Stiffness*(s.value-target) - s.Damping*s.velocity
		s.velocity += force / mass * sec
		s.value += s.velocity * sec
	}
	if math.Abs(target-s.value) <= s.RestDelta && math.Abs(s.velocity) <= s.RestSpeed {
		s.Jump(target)
		return s.value, true
	}
	return s.value, false
}
