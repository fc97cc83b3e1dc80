package view

import (
	"strings"
	"time"

	"github.com/Iron-Ham/archives/internal/tui/motion"
	"github.com/Iron-Ham/archives/internal/tui/styles"
)

var sectionCue = motion.Cue{Duration: 600 * time.Millisecond}

// renderSectionHeader draws the "Aircraft Dossiers" heading. It is revealed
// once, the first time it scrolls into view.
func renderSectionHeader(c *canvas, width int, state RenderState) {
	top := c.top()
	f := fade(0)
	if flag := state.flag(SectionKey); flag.Entered() {
		f = fade(sectionCue.Opacity(state.Now - flag.EnteredAt()))
	}
	c.add(centered(width,
		f.render(styles.SectionHeader, strings.ToUpper(sectionTitle)),
		f.render(styles.Divider, strings.Repeat("━", min(24, width))),
	)...)
	c.mark(SectionKey, top, 2)
}
