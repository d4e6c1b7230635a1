// Package motion maps scroll progress to visual parameters using
// piecewise-linear keyframe curves.
package motion

import (
	"errors"
	"fmt"
	"sort"

	"github.com/tharindu1999/portfolio/internal/scroll"
)

var (
	ErrTooFewKeyframes    = errors.New("curve needs at least two keyframes")
	ErrUnorderedKeyframes = errors.New("keyframes must be strictly increasing in progress")
)

// Keyframe pins Value at progress At.
type Keyframe struct {
	At    float64 `json:"at"`
	Value float64 `json:"value"`
}

// Curve is an ordered keyframe table.
type Curve []Keyframe

// NewCurve validates and returns a curve. Breakpoints must lie in [0,1].
func NewCurve(frames ...Keyframe) (Curve, error) {
	if len(frames) < 2 {
		return nil, ErrTooFewKeyframes
	}
	for i, f := range frames {
		if f.At < 0 || f.At > 1 {
			return nil, fmt.Errorf("%w: breakpoint %v outside [0,1]", ErrUnorderedKeyframes, f.At)
		}
		if i > 0 && f.At <= frames[i-1].At {
			return nil, fmt.Errorf("%w: %v after %v", ErrUnorderedKeyframes, f.At, frames[i-1].At)
		}
	}
	c := make(Curve, len(frames))
	copy(c, frames)
	return c, nil
}

// MustCurve is NewCurve for package-level tables.
func MustCurve(frames ...Keyframe) Curve {
	c, err := NewCurve(frames...)
	if err != nil {
		panic(err)
	}
	return c
}

// At interpolates the curve at progress. Progress is clamped to [0,1]
// first and the ends of the curve hold their values, so nothing is
// extrapolated.
func (c Curve) At(progress float64) float64 {
	switch len(c) {
	case 0:
		return 0
	case 1:
		return c[0].Value
	}
	p := scroll.Clamp(progress)
	if p <= c[0].At {
		return c[0].Value
	}
	last := c[len(c)-1]
	if p >= last.At {
		return last.Value
	}
	// first breakpoint strictly after p
	i := sort.Search(len(c), func(i int) bool { return c[i].At > p })
	lo, hi := c[i-1], c[i]
	t := (p - lo.At) / (hi.At - lo.At)
	return lo.Value + t*(hi.Value-lo.Value)
}
