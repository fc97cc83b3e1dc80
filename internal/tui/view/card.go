package view

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Iron-Ham/archives/internal/assets"
	"github.com/Iron-Ham/archives/internal/reveal"
	"github.com/Iron-Ham/archives/internal/tui/motion"
	"github.com/Iron-Ham/archives/internal/tui/styles"
	"github.com/Iron-Ham/archives/internal/util"
)

// Card box: rounded border plus two columns of padding on each side.
const cardChrome = 6

// revealed returns the fade of an element gated by its reveal flag, running
// cue from the moment the flag flipped.
func revealed(state RenderState, key string, cue motion.Cue) fade {
	flag := state.flag(key)
	if !flag.Entered() {
		return 0
	}
	return fade(cue.Opacity(state.Now - flag.EnteredAt()))
}

// renderCard draws one aircraft card and records the placements of the
// card and its observed parts.
func renderCard(c *canvas, card Card, width int, state RenderState, focused bool) {
	inner := width - cardChrome
	id := card.Entry.ID

	cardFade := revealed(state, CardKey(id),
		motion.Stagger(card.Index, state.Timing.CardStagger, state.Timing.CardDuration))

	body := &canvas{}

	// Header
	name := cardFade.render(styles.CardName, card.Entry.Name)
	year := cardFade.render(styles.Gold, card.Entry.Year)
	body.add(spread(name, year, inner))
	body.add(cardFade.render(styles.CardMeta, "NATO: "+card.Entry.Designation))
	body.add(cardFade.render(styles.Divider, strings.Repeat("─", inner)))

	// Image
	if card.Image.Visible {
		imgFade := revealed(state, ImageKey(id), motion.CardImage)
		lines := imageBlock(card.Image, card.Entry.Name, inner, cardFade.times(float64(imgFade)))
		body.mark(ImageKey(id), body.top(), len(lines))
		body.add(lines...)
	}

	// Description
	descFade := revealed(state, DescriptionKey(id), motion.CardDescription)
	descFade = cardFade.times(float64(descFade))
	desc := util.Wrap(card.Entry.Description, inner)
	body.mark(DescriptionKey(id), body.top(), len(desc))
	for _, l := range desc {
		body.add(descFade.render(styles.Description, l))
	}
	body.blank(1)

	// Stat bars
	for _, b := range card.Bars {
		key := BarKey(id, b.Key)
		fill := 0.0
		f := fade(0)
		if flag := state.flag(key); flag.Entered() {
			f = cardFade
			fill = barFillAt(b, state.Timing, state.Now-flag.EnteredAt())
		}
		lines := barLines(b, inner, fill, f)
		body.mark(key, body.top(), len(lines))
		body.add(lines...)
	}
	body.blank(1)

	// Tabs
	panel := state.panel(card.Index)
	body.add(tabHeader(card.Tabs, panel, inner, cardFade))
	body.add(cardFade.render(styles.Divider, strings.Repeat("─", inner)))
	body.add(panelLines(card, panel, inner, state, cardFade)...)

	style := styles.Card
	if focused {
		style = styles.CardFocused
	}
	switch {
	case cardFade <= 0:
		style = style.BorderStyle(lipgloss.HiddenBorder())
	case cardFade < 1:
		style = style.BorderForeground(styles.DimColor)
	}

	for i, l := range body.lines {
		body.lines[i] = util.TruncateANSI(l, inner)
	}
	boxed := strings.Split(style.Width(width-2).Render(strings.Join(body.lines, "\n")), "\n")

	top := c.top()
	// one border line above the body
	c.embed(body, 1, boxed)
	c.mark(CardKey(id), top, len(boxed))
}

// imageBlock draws a placeholder describing an image, framed by side rules
// and corner marks. The caller only calls it for visible images.
func imageBlock(img assets.Image, caption string, width int, f fade) []string {
	meta := strings.ToUpper(img.Format)
	if img.Width > 0 && img.Height > 0 {
		meta = fmt.Sprintf("%d×%d %s", img.Width, img.Height, meta)
	}
	content := []string{
		f.render(styles.Accent, "▣ ") + f.render(styles.Text, caption),
		f.render(styles.Muted, img.Ref+"  "+meta),
	}
	for i, l := range content {
		content[i] = util.TruncateANSI(l, width-4)
	}
	style := styles.ImageFrame.BorderTop(false).BorderBottom(false)
	if f <= 0 {
		style = style.BorderStyle(lipgloss.HiddenBorder())
	}
	body := strings.Split(style.Width(width-2).Render(strings.Join(content, "\n")), "\n")

	lines := make([]string, 0, len(body)+2)
	lines = append(lines, cornerLine(width, true, f))
	lines = append(lines, body...)
	return append(lines, cornerLine(width, false, f))
}

// CardRegion returns the region of the card at index, for focus navigation.
func (d Document) CardRegion(index int) (reveal.Region, bool) {
	if index < 0 || index >= len(d.Cards) {
		return reveal.Region{}, false
	}
	return d.Cards[index], true
}
