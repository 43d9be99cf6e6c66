package ui

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"

	"driftbg/internal/engine"
)

// blobGlyphs encode a blob's rotation angle in 90° buckets.
var blobGlyphs = []rune{'◐', '◓', '◑', '◒'}

func toColorful(c engine.HSL) colorful.Color {
	return colorful.Hsl(c.H, c.S/100, c.L/100)
}

// blobColor blends the snapshot's boundary pair across the blob field so
// neighboring blobs shade into each other.
func blobColor(colors engine.Stop, index, count int) string {
	t := 0.5
	if count > 1 {
		t = float64(index) / float64(count-1)
	}
	a, b := toColorful(colors[0]), toColorful(colors[1])
	return a.BlendHcl(b, t).Clamped().Hex()
}

// renderBand paints the animated background strip: one glyph per blob,
// vertically displaced by the spring offset, over a blended gradient bar.
func renderBand(snap engine.Snapshot, width int) string {
	if width < 10 {
		width = 10
	}
	n := len(snap.Rotations)

	type mark struct {
		row, col int
		style    lipgloss.Style
		glyph    rune
	}
	marks := make([]mark, 0, n)
	for i, angle := range snap.Rotations {
		col := (i+1)*width/(n+1) + int(math.Round(snap.XOffset))
		if col < 0 || col >= width {
			continue
		}
		// YOffset is negative when scrolled down; lift the blob row.
		row := (bandHeight - 2) + int(math.Round(snap.YOffset/3))
		if row < 0 {
			row = 0
		}
		if row > bandHeight-2 {
			row = bandHeight - 2
		}
		marks = append(marks, mark{
			row:   row,
			col:   col,
			style: lipgloss.NewStyle().Foreground(lipgloss.Color(blobColor(snap.Colors, i, n))),
			glyph: blobGlyphs[int(angle/90)%len(blobGlyphs)],
		})
	}

	var b strings.Builder
	for row := 0; row < bandHeight-1; row++ {
		col := 0
		for _, mk := range marks {
			if mk.row != row {
				continue
			}
			if mk.col > col {
				b.WriteString(strings.Repeat(" ", mk.col-col))
			}
			b.WriteString(mk.style.Render(string(mk.glyph)))
			col = mk.col + 1
		}
		b.WriteByte('\n')
	}
	b.WriteString(gradientBar(snap.Colors, width))
	return b.String()
}

// gradientBar blends the current color pair across the full width.
func gradientBar(colors engine.Stop, width int) string {
	a, b := toColorful(colors[0]), toColorful(colors[1])
	var sb strings.Builder
	for col := 0; col < width; col++ {
		t := float64(col) / float64(max(1, width-1))
		hex := a.BlendHcl(b, t).Clamped().Hex()
		sb.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(hex)).Render("▄"))
	}
	return sb.String()
}
