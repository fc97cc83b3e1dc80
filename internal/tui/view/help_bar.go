package view

import (
	"fmt"
	"strings"

	"github.com/Iron-Ham/archives/internal/tabs"
	"github.com/Iron-Ham/archives/internal/tui/keymap"
	"github.com/Iron-Ham/archives/internal/tui/styles"
	"github.com/Iron-Ham/archives/internal/util"
)

// HelpBarState holds the state needed to render the help bar.
type HelpBarState struct {
	// Mode is the current input mode
	Mode keymap.Mode

	// Card is the name of the focused aircraft, if any
	Card string

	// Tab is the active tab of the focused card
	Tab tabs.Tab

	// Percent is how far through the dossier the viewport is
	Percent int

	// Width is the available width
	Width int
}

// HelpBarView renders the bottom status line and the help overlay.
type HelpBarView struct {
	keymap *keymap.Keymap
}

// NewHelpBarView creates a HelpBarView that lists keys from km.
func NewHelpBarView(km *keymap.Keymap) *HelpBarView {
	if km == nil {
		km = keymap.DefaultKeymap()
	}
	return &HelpBarView{keymap: km}
}

func (v *HelpBarView) key(cmd keymap.Command, mode keymap.Mode) string {
	return styles.HelpKey.Render("[" + v.keymap.KeysFor(cmd, mode) + "]")
}

// RenderHelp renders the help bar for the current mode.
func (v *HelpBarView) RenderHelp(state *HelpBarState) string {
	if state == nil {
		return ""
	}

	var parts []string
	switch state.Mode {
	case keymap.ModeLoading:
		parts = []string{
			styles.LoadingStatus.Render("RETRIEVING FILES"),
			v.key(keymap.CmdQuit, keymap.ModeLoading) + " quit",
		}
	case keymap.ModeHelp:
		parts = []string{
			styles.Gold.Bold(true).Render("HELP"),
			v.key(keymap.CmdCloseHelp, keymap.ModeHelp) + " close",
		}
	default:
		parts = []string{
			styles.HelpKey.Render("[j/k]") + " scroll",
			styles.HelpKey.Render("[n/p]") + " aircraft",
			styles.HelpKey.Render("[1/2]") + " tabs",
			v.key(keymap.CmdToggleHelp, keymap.ModeBrowse) + " help",
			styles.HelpKey.Render("[q]") + " quit",
		}
		if state.Card != "" {
			parts = append([]string{
				styles.CardName.Render(state.Card) + " " + styles.Muted.Render("· "+state.Tab.Title()),
			}, parts...)
		}
		parts = append(parts, styles.Muted.Render(fmt.Sprintf("%3d%%", state.Percent)))
	}

	line := strings.Join(parts, "  ")
	if state.Width > 0 {
		line = util.TruncateANSI(line, state.Width)
	}
	return styles.HelpBar.Render(line)
}

// RenderOverlay renders the full key reference for the browse mode,
// grouped by category.
func (v *HelpBarView) RenderOverlay(width int) string {
	var b strings.Builder
	b.WriteString(styles.SectionHeader.Render("KEYBOARD REFERENCE"))
	b.WriteString("\n\n")

	grouped := v.keymap.GetBindingsByCategory(keymap.ModeBrowse)
	for _, cat := range v.keymap.GetCategories(keymap.ModeBrowse) {
		b.WriteString(styles.PanelHeading.Render("▸ " + cat))
		b.WriteString("\n")

		seen := make(map[keymap.Command]bool)
		for _, binding := range grouped[cat] {
			if seen[binding.Command] {
				continue
			}
			seen[binding.Command] = true
			keys := v.keymap.KeysFor(binding.Command, keymap.ModeBrowse)
			line := "   " + styles.HelpKey.Render(util.PadRight(keys, 16)) + styles.Text.Render(binding.Description)
			b.WriteString(util.TruncateANSI(line, max(width-4, 10)))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}
	b.WriteString(styles.Muted.Render("Press ? or esc to return to the dossier"))

	return styles.LoadingFrame.Render(b.String())
}
