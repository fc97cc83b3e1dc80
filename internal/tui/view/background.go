package view

import (
	"strings"

	"github.com/Iron-Ham/archives/internal/tui/styles"
)

const particleCount = 7

// renderBackground draws the decorative strip above the hero: a grid row,
// the radar rings and a row of drifting particles, closed by a scanline.
// Particles drift one column per frame.
func renderBackground(c *canvas, width, frame int) {
	c.add(styles.Grid.Render(gridRow(width)))
	c.add(radarRow(width))
	c.add(styles.Particle.Render(particleRow(width, frame)))
	c.add(styles.Scanline.Render(scanline(width, frame)))
}

func gridRow(width int) string {
	var b strings.Builder
	for i := range width {
		if i%8 == 0 {
			b.WriteRune('┼')
		} else {
			b.WriteRune('─')
		}
	}
	return b.String()
}

// radarRow places the rings glyph near the right edge, as on the page.
func radarRow(width int) string {
	const rings = "◎"
	pos := max(width-6, 0)
	return strings.Repeat(" ", pos) + styles.Accent.Render(rings)
}

func particleRow(width, frame int) string {
	row := []rune(strings.Repeat(" ", width))
	if width == 0 {
		return ""
	}
	step := max(width/particleCount, 1)
	for i := range particleCount {
		// each particle drifts at its own rate
		pos := (i*step + frame*(1+i%3)) % width
		row[pos] = '·'
	}
	return string(row)
}

// scanline is a faint rule with a brighter segment sweeping across.
func scanline(width, frame int) string {
	if width == 0 {
		return ""
	}
	row := []rune(strings.Repeat("╌", width))
	head := (frame * 2) % width
	for i := range min(6, width) {
		row[(head+i)%width] = '━'
	}
	return string(row)
}
