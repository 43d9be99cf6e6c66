package engine

import "github.com/charmbracelet/harmonica"

// offsetSpring converges one scalar toward a moving target using a damped
// harmonic oscillator. The spring coefficients are precomputed for the
// configured frame rate, so every tick advances the same fraction of the
// spring's motion regardless of wall-clock jitter between frames. That
// constant per-tick step is the intended behavior, not an approximation
// error: offsets only need to look smooth, and a fixed step makes
// convergence exactly reproducible in tests.
type offsetSpring struct {
	spring harmonica.Spring
	pos    float64
	vel    float64
	target float64
}

// newOffsetSpring creates a spring stepped at the given frame rate.
// Stiffness is the angular frequency in rad/s; damping is the damping
// ratio, with 1.0 critically damped.
func newOffsetSpring(fps int, stiffness, damping float64) offsetSpring {
	return offsetSpring{spring: harmonica.NewSpring(harmonica.FPS(fps), stiffness, damping)}
}

// reset snaps the spring to a resting position with zero velocity.
func (s *offsetSpring) reset(v float64) {
	s.pos, s.vel, s.target = v, 0, v
}

// setTarget moves the equilibrium. The position is unaffected until the
// next tick.
func (s *offsetSpring) setTarget(v float64) {
	s.target = v
}

// tick advances the spring one fixed step and returns the new position.
func (s *offsetSpring) tick() float64 {
	s.pos, s.vel = s.spring.Update(s.pos, s.vel, s.target)
	return s.pos
}
