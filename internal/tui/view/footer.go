package view

import (
	"strings"

	"github.com/Iron-Ham/archives/internal/tui/styles"
)

// renderFooter draws the closing block of the dossier.
func renderFooter(c *canvas, f Footer, width int) {
	c.add(styles.Divider.Render(strings.Repeat("─", width)))
	c.blank(1)
	c.add(centered(width, styles.Gold.Bold(true).Render(f.Logo))...)
	for _, l := range f.Lines {
		c.add(centered(width, styles.Footer.Render(l))...)
	}
	c.blank(1)
	c.add(centered(width, styles.Accent.Render(f.Classification))...)
	c.blank(1)
}
