package ui

import (
	"fmt"
	"strings"
)

var demoSections = []struct {
	title string
	body  string
}{
	{"What you are looking at", `The band at the top of the screen is driven by the driftbg engine.
Each glyph is one blob: its shape encodes the current rotation angle,
its color comes from the interpolated gradient pair, and the whole band
shifts with the spring-damped vertical offset.`},
	{"Scroll to drive it", `The scroll position of this text is the only input the engine receives.
Scrolling down pushes the gradient toward its later stops and reverses
the rotation direction; scrolling up reverses it again. Speeds converge
smoothly toward their new targets instead of snapping.`},
	{"Irregular time steps", `The engine integrates against measured wall-clock deltas, so stalls and
bursts of scroll events do not accumulate drift. However fast or slow
the frames arrive, angles stay within a full turn and offsets converge
to the same resting positions.`},
	{"Always in motion", `Leave the text alone for a while: the blobs keep drifting. A minimum
target speed guarantees the background never freezes, no matter how
long the scroll position stays put.`},
}

// demoContent builds the scrollable filler text. It repeats the sections
// enough times to give the viewport a meaningful scroll range.
func demoContent() string {
	var b strings.Builder
	b.WriteString("\n")
	for pass := 0; pass < 6; pass++ {
		for i, s := range demoSections {
			fmt.Fprintf(&b, "  %d.%d %s\n\n", pass+1, i+1, s.title)
			for _, line := range strings.Split(s.body, "\n") {
				b.WriteString("  " + line + "\n")
			}
			b.WriteString("\n")
		}
	}
	b.WriteString("  — end —\n")
	return b.String()
}
