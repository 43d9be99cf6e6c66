package engine

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// HSL is a color in HSL space: hue in [0,360), saturation and lightness
// in [0,100].
type HSL struct {
	H float64
	S float64
	L float64
}

// Hex returns the color as a "#rrggbb" string.
func (c HSL) Hex() string {
	return colorful.Hsl(c.H, c.S/100, c.L/100).Hex()
}

// Stop is one pair of boundary colors along the progress axis.
type Stop [2]HSL

// Gradient interpolates between an ordered list of color stops. Stop
// positions are implied by index and spaced uniformly over [0,1].
type Gradient struct {
	stops []Stop
}

// NewGradient builds a gradient from at least one stop.
func NewGradient(stops []Stop) (Gradient, error) {
	if len(stops) == 0 {
		return Gradient{}, configErr("stops", "at least one color stop required")
	}
	return Gradient{stops: stops}, nil
}

// Stops returns the number of stops.
func (g Gradient) Stops() int {
	return len(g.stops)
}

// At returns the boundary color pair for the given progress. Progress
// outside [0,1] (including NaN and ±Inf) clamps to the nearest stop.
// A single-stop gradient returns its stop unchanged.
func (g Gradient) At(progress float64) Stop {
	n := len(g.stops)
	if n == 1 {
		return g.stops[0]
	}

	p := clamp01(progress) * float64(n-1)
	segment := int(p)
	if segment > n-2 {
		segment = n - 2
	}
	t := p - float64(segment)

	a, b := g.stops[segment], g.stops[segment+1]
	var out Stop
	for slot := range out {
		out[slot] = HSL{
			H: lerpHue(a[slot].H, b[slot].H, t),
			S: lerp(a[slot].S, b[slot].S, t),
			L: lerp(a[slot].L, b[slot].L, t),
		}
	}
	return out
}

// lerpHue interpolates along the shorter arc of the hue circle, so a
// 350°→10° transition sweeps through 0°, not 180°.
func lerpHue(h1, h2, t float64) float64 {
	delta := math.Mod(h2-h1+540, 360) - 180
	return math.Mod(h1+t*delta+360, 360)
}

func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

func clamp01(v float64) float64 {
	if math.IsNaN(v) {
		return 0
	}
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
