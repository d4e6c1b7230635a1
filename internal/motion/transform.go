package motion

import "github.com/tharindu1999/portfolio/internal/scroll"

// Curves driven by the hero section progress.
var (
	HeroOpacity  = MustCurve(Keyframe{0, 1}, Keyframe{0.5, 0.8}, Keyframe{1, 0})
	HeroLift     = MustCurve(Keyframe{0, 0}, Keyframe{1, -300})
	StarsOpacity = MustCurve(Keyframe{0, 1}, Keyframe{0.7, 0.5}, Keyframe{1, 0})
	StarsScale   = MustCurve(Keyframe{0, 1}, Keyframe{1, 1.5})
)

// Params are the style values applied to one element.
type Params struct {
	Opacity    float64 `json:"opacity"`
	TranslateY float64 `json:"translateY"`
	Scale      float64 `json:"scale"`
}

// Identity leaves an element untouched.
var Identity = Params{Opacity: 1, Scale: 1}

// Frame is the full set of parameters for one rendered frame.
type Frame struct {
	Hero  Params `json:"hero"`
	Stars Params `json:"stars"`
}

// Map derives the frame for a scroll state. It is pure.
func Map(s scroll.State) Frame {
	p := scroll.Clamp(s.Section)
	return Frame{
		Hero: Params{
			Opacity:    HeroOpacity.At(p),
			TranslateY: HeroLift.At(p),
			Scale:      1,
		},
		Stars: Params{
			Opacity: StarsOpacity.At(p),
			Scale:   StarsScale.At(p),
		},
	}
}

// Tables lists the named curves, for clients that animate on their own.
func Tables() map[string]Curve {
	return map[string]Curve{
		"heroOpacity":  HeroOpacity,
		"heroY":        HeroLift,
		"starsOpacity": StarsOpacity,
		"starsScale":   StarsScale,
	}
}
