package animation

import (
	"math"

	"github.com/charmbracelet/harmonica"

	"github.com/llehouerou/smartpack/internal/layout"
)

// Spring parameters for settling rendered widths: slightly under-damped so a
// released drag handle eases into place.
const (
	settleFrequency = 8.0
	settleDamping   = 0.9
	settleEpsilon   = 0.5
)

// Settle eases rendered column widths toward their target values, one
// frame at a time.
type Settle struct {
	spring harmonica.Spring
	pos    layout.Widths
	vel    layout.Widths
	primed bool
}

// NewSettle returns a Settle stepping at fps frames per second.
func NewSettle(fps int) *Settle {
	return &Settle{spring: harmonica.NewSpring(harmonica.FPS(fps), settleFrequency, settleDamping)}
}

// Snap jumps straight to target.
func (s *Settle) Snap(target layout.Widths) layout.Widths {
	s.pos = target
	s.vel = layout.Widths{}
	s.primed = true
	return s.pos
}

// Current returns the last rendered widths.
func (s *Settle) Current() layout.Widths {
	return s.pos
}

// Step advances one frame toward target and returns the new widths. The
// first call snaps.
func (s *Settle) Step(target layout.Widths) layout.Widths {
	if !s.primed {
		return s.Snap(target)
	}
	for _, c := range layout.AllColumns {
		p, v := s.spring.Update(s.pos.Get(c), s.vel.Get(c), target.Get(c))
		s.pos = s.pos.With(c, p)
		s.vel = s.vel.With(c, v)
	}
	if s.Settled(target) {
		return s.Snap(target)
	}
	return s.pos
}

// Settled reports whether every width is within half a unit of target and
// practically at rest.
func (s *Settle) Settled(target layout.Widths) bool {
	for _, c := range layout.AllColumns {
		if math.Abs(s.pos.Get(c)-target.Get(c)) > settleEpsilon || math.Abs(s.vel.Get(c)) > settleEpsilon {
			return false
		}
	}
	return true
}
