// Package styles holds the lipgloss styles used by the showcase views.
//
// The package-level variables always reflect the active theme; call
// SetActiveTheme before rendering to switch palettes.
package styles

import "github.com/charmbracelet/lipgloss"

var (
	// Colors
	AccentColor  lipgloss.Color
	GoldColor    lipgloss.Color
	TextColor    lipgloss.Color
	MutedColor   lipgloss.Color
	DimColor     lipgloss.Color
	SurfaceColor lipgloss.Color
	BorderColor  lipgloss.Color

	// Convenience styles for colors
	Accent lipgloss.Style
	Gold   lipgloss.Style
	Text   lipgloss.Style
	Muted  lipgloss.Style
	Dim    lipgloss.Style

	// Loading screen
	LoadingTitle  lipgloss.Style
	LoadingStatus lipgloss.Style
	LoadingFrame  lipgloss.Style

	// Hero
	Stamp       lipgloss.Style
	HeroTitle   lipgloss.Style
	HeroTagline lipgloss.Style
	Designation lipgloss.Style

	// Sections
	SectionHeader lipgloss.Style
	Divider       lipgloss.Style

	// Cards
	Card        lipgloss.Style
	CardFocused lipgloss.Style
	CardName    lipgloss.Style
	CardMeta    lipgloss.Style
	Description lipgloss.Style
	ImageFrame  lipgloss.Style

	// Stat bars
	BarLabel lipgloss.Style
	BarValue lipgloss.Style
	BarFill  lipgloss.Style
	BarTrack lipgloss.Style

	// Tabs
	TabActive   lipgloss.Style
	TabInactive lipgloss.Style

	// Panels
	SpecLabel     lipgloss.Style
	SpecValue     lipgloss.Style
	SpecHighlight lipgloss.Style
	PanelHeading  lipgloss.Style
	Advantage     lipgloss.Style
	Disadvantage  lipgloss.Style

	// Decoration
	Grid     lipgloss.Style
	Scanline lipgloss.Style
	Particle lipgloss.Style

	// Footer and help
	Footer  lipgloss.Style
	HelpBar lipgloss.Style
	HelpKey lipgloss.Style
)

// Fade dims s for a panel or element part-way through a fade. Fully
// transparent content is rendered by callers as blank space.
func Fade(s lipgloss.Style, opacity float64) lipgloss.Style {
	if opacity < 0.6 {
		return s.Faint(true)
	}
	return s
}
