package view

import (
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/Iron-Ham/archives/internal/config"
	"github.com/Iron-Ham/archives/internal/reveal"
	"github.com/Iron-Ham/archives/internal/tabs"
	"github.com/Iron-Ham/archives/internal/tui/styles"
	"github.com/Iron-Ham/archives/internal/util"
)

// Layout bounds of the dossier column.
const (
	MinWidth = 40
	MaxWidth = 96
)

// Reveals reports the reveal flag of an observed element.
// *reveal.Observer satisfies it.
type Reveals interface {
	Flag(key string) reveal.Flag
}

// Timing holds the entrance animation timings.
type Timing struct {
	CardStagger  time.Duration
	CardDuration time.Duration
	BarStagger   time.Duration
	BarDuration  time.Duration
}

// DefaultTiming returns the stock entrance timings.
func DefaultTiming() Timing {
	return TimingFrom(config.Default().Reveal)
}

// TimingFrom converts the reveal configuration section.
func TimingFrom(cfg config.RevealConfig) Timing {
	return Timing{
		CardStagger:  cfg.CardStagger(),
		CardDuration: cfg.CardDuration(),
		BarStagger:   cfg.BarStagger(),
		BarDuration:  cfg.BarDuration(),
	}
}

// PanelState is the tab state of one card at render time.
type PanelState struct {
	Active    tabs.Tab
	Displayed tabs.Tab
	Opacity   float64
	Shown     time.Duration
	Selected  bool
}

// PanelFrom snapshots a tab controller.
func PanelFrom(c *tabs.Controller) PanelState {
	return PanelState{
		Active:    c.Active(),
		Displayed: c.Displayed(),
		Opacity:   c.Opacity(),
		Shown:     c.Shown(),
		Selected:  c.Selections() > 0,
	}
}

// RenderState holds everything that changes between frames.
type RenderState struct {
	// Width is the terminal width. The dossier column is clamped to
	// [MinWidth, MaxWidth] and centered.
	Width int

	// Now is the application clock, on the same scale as reveal flags.
	Now time.Duration

	// Since is how long the dossier has been on screen; drives the hero intro.
	Since time.Duration

	// Offset is the scroll offset; the hero fades out as it scrolls away.
	Offset int

	// Frame counts animation frames for the background decoration.
	Frame int

	Reveals Reveals

	// Panels holds one entry per card. Missing entries render the default tab.
	Panels []PanelState

	// Focus is the index of the focused card, or -1.
	Focus int

	Timing Timing
}

func (s RenderState) flag(key string) reveal.Flag {
	if s.Reveals == nil {
		return reveal.Flag{}
	}
	return s.Reveals.Flag(key)
}

func (s RenderState) panel(i int) PanelState {
	if i < len(s.Panels) {
		return s.Panels[i]
	}
	return PanelState{Opacity: 1}
}

// columnWidth is the width of the dossier column for a terminal width.
func columnWidth(width int) int {
	return max(MinWidth, min(width, MaxWidth))
}

// Placement is the document region of one observed element.
type Placement struct {
	Key    string
	Region reveal.Region
}

// Document is a rendered dossier.
type Document struct {
	Lines      []string
	Placements []Placement
	// Cards holds the region of each card, in page order.
	Cards []reveal.Region
	// HeroHeight is the number of lines above the section header.
	HeroHeight int
}

// Region returns the placement of key.
func (d Document) Region(key string) (reveal.Region, bool) {
	for _, p := range d.Placements {
		if p.Key == key {
			return p.Region, true
		}
	}
	return reveal.Region{}, false
}

// Height is the number of lines in the document.
func (d Document) Height() int {
	return len(d.Lines)
}

// String joins the document lines.
func (d Document) String() string {
	return strings.Join(d.Lines, "\n")
}

// canvas accumulates lines and the placements inside them.
type canvas struct {
	lines      []string
	placements []Placement
}

func (c *canvas) add(lines ...string) {
	c.lines = append(c.lines, lines...)
}

func (c *canvas) blank(n int) {
	for range n {
		c.lines = append(c.lines, "")
	}
}

func (c *canvas) top() int {
	return len(c.lines)
}

func (c *canvas) mark(key string, top, height int) {
	c.placements = append(c.placements, Placement{Key: key, Region: reveal.Region{Top: top, Height: height}})
}

// embed appends a block rendered elsewhere, shifting its placements by
// offset lines into the block.
func (c *canvas) embed(block *canvas, offset int, lines []string) {
	base := c.top() + offset
	for _, p := range block.placements {
		p.Region.Top += base
		c.placements = append(c.placements, p)
	}
	c.add(lines...)
}

// fade renders text in a style at an opacity. Fully transparent text keeps
// its width as blank space.
type fade float64

func (f fade) render(s lipgloss.Style, text string) string {
	if f <= 0 {
		return strings.Repeat(" ", ansi.StringWidth(text))
	}
	return styles.Fade(s, float64(f)).Render(text)
}

func (f fade) times(g float64) fade {
	return fade(float64(f) * g)
}

// Render lays out page for state.
func Render(page Page, state RenderState) Document {
	width := columnWidth(state.Width)
	c := &canvas{}

	renderBackground(c, width, state.Frame)
	renderHero(c, page.Hero, width, state)
	heroHeight := c.top()

	renderSectionHeader(c, width, state)

	cards := make([]reveal.Region, 0, len(page.Cards))
	for i, card := range page.Cards {
		c.blank(1)
		top := c.top()
		renderCard(c, card, width, state, i == state.Focus)
		cards = append(cards, reveal.Region{Top: top, Height: c.top() - top})
	}

	c.blank(1)
	renderFooter(c, page.Footer, width)

	margin := 0
	if state.Width > width {
		margin = (state.Width - width) / 2
	}
	if margin > 0 {
		pad := strings.Repeat(" ", margin)
		for i, l := range c.lines {
			if l != "" {
				c.lines[i] = pad + l
			}
		}
	}

	return Document{Lines: c.lines, Placements: c.placements, Cards: cards, HeroHeight: heroHeight}
}

// centered centers each line in width columns.
func centered(width int, lines ...string) []string {
	out := make([]string, len(lines))
	for i, l := range lines {
		out[i] = util.Center(l, width)
	}
	return out
}

// cornerLine draws the top or bottom pair of targeting corners across
// width columns.
func cornerLine(width int, top bool, f fade) string {
	left, right := "└─", "─┘"
	if top {
		left, right = "┌─", "─┐"
	}
	return spread(f.render(styles.Accent, left), f.render(styles.Accent, right), width)
}

// spread places left and right at the two edges of width columns.
func spread(left, right string, width int) string {
	gap := width - ansi.StringWidth(left) - ansi.StringWidth(right)
	if gap < 1 {
		return util.TruncateANSI(left+" "+right, width)
	}
	return left + strings.Repeat(" ", gap) + right
}
