package view

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/x/ansi"

	"github.com/Iron-Ham/archives/internal/catalog"
	"github.com/Iron-Ham/archives/internal/tabs"
	"github.com/Iron-Ham/archives/internal/tui/motion"
	"github.com/Iron-Ham/archives/internal/tui/styles"
	"github.com/Iron-Ham/archives/internal/util"
)

// tabHeader draws the two tab buttons with the active one highlighted.
func tabHeader(headers []TabHeader, panel PanelState, width int, f fade) string {
	buttons := make([]string, 0, len(headers))
	for i, h := range headers {
		style := styles.TabInactive
		if h.Tab == panel.Active {
			style = styles.TabActive
		}
		buttons = append(buttons, f.render(style, fmt.Sprintf("%d %s", i+1, h.Title)))
	}
	return util.TruncateANSI(strings.Join(buttons, " "), width)
}

// panelLines draws the panel currently displayed by the card's tab
// controller, faded by the transition.
func panelLines(card Card, panel PanelState, width int, state RenderState, cardFade fade) []string {
	f := cardFade.times(panel.Opacity)
	if panel.Displayed == tabs.TabProfile {
		return profileLines(card, width, f)
	}

	// Rows stagger in from the moment the panel entered. Before any tab
	// switch that is the card's own entrance.
	clock := panel.Shown
	if !panel.Selected {
		if flag := state.flag(CardKey(card.Entry.ID)); flag.Entered() {
			clock = state.Now - flag.EnteredAt()
		}
	}
	return specLines(card.Rows(), width, f, clock)
}

// specLines draws the specification sheet as label/value rows in sheet
// order. The first value is highlighted.
func specLines(rows []catalog.SpecRow, width int, f fade, clock time.Duration) []string {
	labelWidth := 0
	for _, r := range rows {
		labelWidth = max(labelWidth, ansi.StringWidth(r.Label))
	}
	labelWidth = min(labelWidth+2, width/2)

	lines := make([]string, 0, len(rows))
	for i, r := range rows {
		rf := f.times(motion.Stagger(i, motion.SpecRowStep, motion.SpecRowDuration).Opacity(clock))
		valueStyle := styles.SpecValue
		if i == 0 {
			valueStyle = styles.SpecHighlight
		}
		label := util.PadRight(util.TruncateANSI(r.Label, labelWidth-1), labelWidth)
		line := rf.render(styles.SpecLabel, label) + rf.render(valueStyle, r.Value)
		lines = append(lines, util.TruncateANSI(line, width))
	}
	return lines
}

// profileLines draws the secondary profile: battle rating header, general
// facts and the three lists, then the profile image when present.
func profileLines(card Card, width int, f fade) []string {
	p := card.Entry.Profile
	var lines []string

	heading := f.render(styles.TabActive, "WT") + " " + f.render(styles.PanelHeading, profileHeading)
	lines = append(lines, spread(heading, f.render(styles.SpecHighlight, battleRatingPrefix+p.BattleRating), width))
	lines = append(lines, "")

	section := func(title string, items []string, marker string, style func(string) string) {
		lines = append(lines, f.render(styles.PanelHeading, strings.ToUpper(title)))
		for _, item := range items {
			lines = append(lines, util.TruncateANSI("  "+style(marker+item), width))
		}
	}
	plain := func(s string) string { return f.render(styles.Text, s) }

	section("General", []string{
		"Nation: " + p.Nation,
		"Rank: " + p.Rank,
		"Role: " + p.Role,
	}, "", plain)
	section("Armament", p.Armament, "• ", plain)
	section("Advantages", p.Advantages, "+ ", func(s string) string { return f.render(styles.Advantage, s) })
	section("Disadvantages", p.Disadvantages, "− ", func(s string) string { return f.render(styles.Disadvantage, s) })

	if card.ProfileImage.Visible {
		lines = append(lines, "")
		lines = append(lines, imageBlock(card.ProfileImage, profileHeading, width, f)...)
	}
	return lines
}
