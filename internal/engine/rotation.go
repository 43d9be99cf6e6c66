package engine

import (
	"math"
	"math/rand"
)

const (
	// baseRotationRate is the unweighted rotation rate in degrees per
	// second; per-blob targets scale it by position weight, base speed
	// and the configured multiplier.
	baseRotationRate = 42.0

	// weightExponent shapes the falloff of positionWeight so blobs later
	// in the field turn visibly slower.
	weightExponent = 1.4

	// minTargetSpeed keeps every blob drifting even with no scroll
	// activity. It is applied to targets rather than current speeds so a
	// direction reversal can still swing speed through zero smoothly.
	minTargetSpeed = 2.5

	// speedDamping is the damping constant of the exponential approach
	// from current speed to target speed.
	speedDamping = 12.0
)

// blob is one independently rotating background shape. baseSpeed is
// assigned once at construction and never reassigned.
type blob struct {
	baseSpeed float64
	speed     float64
	target    float64
	angle     float64
}

// rotationField owns the angle and speed state of a fixed set of blobs.
type rotationField struct {
	blobs []blob
	cfg   SpeedConfig
}

func newRotationField(n int, cfg SpeedConfig, rng *rand.Rand) *rotationField {
	f := &rotationField{blobs: make([]blob, n), cfg: cfg}
	for i := range f.blobs {
		f.blobs[i].baseSpeed = cfg.Min + rng.Float64()*(cfg.Max-cfg.Min)
	}
	// Blobs drift forward before the first scroll event arrives.
	f.retarget(1)
	return f
}

// scrollDirection maps a progress change to a rotation direction.
// Scrolling down (progress increasing) drives negative rotation; this
// matches the long-standing visual behavior and must not be "fixed".
func scrollDirection(previous, latest float64) float64 {
	if latest > previous {
		return -1
	}
	return 1
}

// positionWeight decreases with index so each blob gets its own speed
// profile.
func positionWeight(index, count int) float64 {
	return float64(count-index) / float64(count)
}

// retarget recomputes every blob's target speed for a new direction.
func (f *rotationField) retarget(direction float64) {
	n := len(f.blobs)
	if n == 0 {
		return
	}
	for i := range f.blobs {
		b := &f.blobs[i]
		w := math.Pow(positionWeight(i, n), weightExponent)
		t := f.cfg.Multiplier * baseRotationRate * w * b.baseSpeed * direction
		if math.Abs(t) < minTargetSpeed {
			t = math.Copysign(minTargetSpeed, direction)
		}
		b.target = t
	}
}

// tick converges each blob's speed toward its target with a time-based
// exponential approach, then integrates the angle. Angles stay in
// [0,360) after any sequence of ticks.
func (f *rotationField) tick(dt float64) {
	if len(f.blobs) == 0 || dt <= 0 {
		return
	}
	interp := 1 - math.Pow(1-1/speedDamping, dt)
	for i := range f.blobs {
		b := &f.blobs[i]
		b.speed = lerp(b.speed, b.target, interp)
		b.angle = math.Mod(b.angle+b.speed*dt, 360)
		if b.angle < 0 {
			b.angle += 360
		}
	}
}

// rotations appends the current angles to dst and returns it.
func (f *rotationField) rotations(dst []float64) []float64 {
	for i := range f.blobs {
		dst = append(dst, f.blobs[i].angle)
	}
	return dst
}
