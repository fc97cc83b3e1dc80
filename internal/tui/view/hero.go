package view

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Iron-Ham/archives/internal/tui/motion"
	"github.com/Iron-Ham/archives/internal/tui/styles"
)

// heroSpan is how many lines of scrolling fade the hero out completely.
const heroSpan = 16

// renderHero draws the hero banner between targeting corners. Its parts
// appear in timed order after the dossier shows, and the whole banner fades
// as it scrolls away.
func renderHero(c *canvas, h Hero, width int, state RenderState) {
	scroll := fade(motion.ScrollFade(state.Offset, heroSpan))

	c.add(cornerLine(width, true, scroll))
	c.add(centered(width, renderStamp(h.Stamp, scroll.times(motion.HeroStamp.Opacity(state.Since)))...)...)
	c.blank(1)

	title := scroll.times(motion.HeroTitle.Opacity(state.Since))
	words := make([]string, len(h.Title))
	for i, w := range h.Title {
		style := styles.HeroTitle
		if w.Accent {
			style = style.Foreground(styles.AccentColor)
		}
		words[i] = title.render(style, strings.ToUpper(w.Text))
	}
	c.add(centered(width, strings.Join(words, " "))...)

	subtitle := scroll.times(motion.HeroSubtitle.Opacity(state.Since))
	c.add(centered(width, subtitle.render(styles.HeroTagline, h.Subtitle))...)
	c.blank(1)

	desig := scroll.times(motion.HeroDesignations.Opacity(state.Since))
	for _, d := range h.Designations {
		line := desig.render(styles.Designation, d.Code) + "  " + desig.render(styles.Muted, d.Label)
		c.add(centered(width, line)...)
	}
	c.blank(1)

	ind := scroll.times(motion.HeroIndicator.Opacity(state.Since))
	c.add(centered(width, ind.render(styles.Muted, h.Indicator), ind.render(styles.Accent, "↓"))...)
	c.add(cornerLine(width, false, scroll))
}

// renderStamp draws the boxed classification stamp. A stamp that has not
// appeared yet keeps its box size with a hidden border.
func renderStamp(text string, f fade) []string {
	style := styles.Stamp
	if f <= 0 {
		style = style.BorderStyle(lipgloss.HiddenBorder())
		text = strings.Repeat(" ", lipgloss.Width(text))
	} else {
		style = styles.Fade(style, float64(f))
	}
	return strings.Split(style.Render(text), "\n")
}
