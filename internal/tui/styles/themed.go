package styles

import "github.com/charmbracelet/lipgloss"

// ThemedStyles contains all the lipgloss styles built from a color palette.
// This allows styles to be regenerated when the theme changes.
type ThemedStyles struct {
	Palette *ColorPalette

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
}

// NewThemedStyles creates a ThemedStyles from the given color palette.
func NewThemedStyles(p *ColorPalette) *ThemedStyles {
	s := &ThemedStyles{Palette: p}

	s.Accent = lipgloss.NewStyle().Foreground(p.Accent)
	s.Gold = lipgloss.NewStyle().Foreground(p.Gold)
	s.Text = lipgloss.NewStyle().Foreground(p.Text)
	s.Muted = lipgloss.NewStyle().Foreground(p.Muted)
	s.Dim = lipgloss.NewStyle().Foreground(p.Dim)

	s.LoadingTitle = lipgloss.NewStyle().
		Bold(true).
		Foreground(p.Accent)
	s.LoadingStatus = lipgloss.NewStyle().
		Foreground(p.Gold)
	s.LoadingFrame = lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(p.Border).
		Padding(1, 3)

	s.Stamp = lipgloss.NewStyle().
		Bold(true).
		Foreground(p.Accent).
		Border(lipgloss.ThickBorder()).
		BorderForeground(p.Accent).
		Padding(0, 2)
	s.HeroTitle = lipgloss.NewStyle().
		Bold(true).
		Foreground(p.Gold)
	s.HeroTagline = lipgloss.NewStyle().
		Foreground(p.Muted).
		Italic(true)
	s.Designation = lipgloss.NewStyle().
		Foreground(p.Accent)

	s.SectionHeader = lipgloss.NewStyle().
		Bold(true).
		Foreground(p.Gold)
	s.Divider = lipgloss.NewStyle().
		Foreground(p.Accent)

	s.Card = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(p.Border).
		Padding(0, 2)
	s.CardFocused = s.Card.
		BorderForeground(p.Accent)
	s.CardName = lipgloss.NewStyle().
		Bold(true).
		Foreground(p.Gold)
	s.CardMeta = lipgloss.NewStyle().
		Foreground(p.Muted)
	s.Description = lipgloss.NewStyle().
		Foreground(p.Text)
	s.ImageFrame = lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(p.Border).
		Foreground(p.Muted).
		Padding(0, 1)

	s.BarLabel = lipgloss.NewStyle().
		Foreground(p.Muted)
	s.BarValue = lipgloss.NewStyle().
		Bold(true).
		Foreground(p.Gold)
	s.BarFill = lipgloss.NewStyle().
		Foreground(p.Accent)
	s.BarTrack = lipgloss.NewStyle().
		Foreground(p.Dim)

	s.TabActive = lipgloss.NewStyle().
		Bold(true).
		Foreground(p.Surface).
		Background(p.Gold).
		Padding(0, 1)
	s.TabInactive = lipgloss.NewStyle().
		Foreground(p.Muted).
		Padding(0, 1)

	s.SpecLabel = lipgloss.NewStyle().
		Foreground(p.Muted)
	s.SpecValue = lipgloss.NewStyle().
		Foreground(p.Text)
	s.SpecHighlight = lipgloss.NewStyle().
		Bold(true).
		Foreground(p.Gold)
	s.PanelHeading = lipgloss.NewStyle().
		Bold(true).
		Foreground(p.Accent)
	s.Advantage = lipgloss.NewStyle().
		Foreground(p.Positive)
	s.Disadvantage = lipgloss.NewStyle().
		Foreground(p.Negative)

	s.Grid = lipgloss.NewStyle().
		Foreground(p.Dim)
	s.Scanline = lipgloss.NewStyle().
		Foreground(p.Border)
	s.Particle = lipgloss.NewStyle().
		Foreground(p.Accent).
		Faint(true)

	s.Footer = lipgloss.NewStyle().
		Foreground(p.Muted)
	s.HelpBar = lipgloss.NewStyle().
		Foreground(p.Muted)
	s.HelpKey = lipgloss.NewStyle().
		Bold(true).
		Foreground(p.Gold)

	return s
}

var activeTheme *ThemedStyles

func init() {
	activeTheme = NewThemedStyles(ArchivePalette())
	syncGlobalStyles()
}

// SetActiveTheme updates the active theme to the specified theme name.
// This updates all the global style variables to use the new theme colors.
//
// Note: This function is not thread-safe. It is designed to be called
// before the program starts or from the Bubble Tea event loop.
func SetActiveTheme(name ThemeName) {
	activeTheme = NewThemedStyles(GetPalette(name))
	syncGlobalStyles()
}

// GetActiveTheme returns the currently active themed styles.
func GetActiveTheme() *ThemedStyles {
	return activeTheme
}

// syncGlobalStyles updates the package-level style variables to match the
// active theme.
func syncGlobalStyles() {
	p := activeTheme.Palette
	AccentColor = p.Accent
	GoldColor = p.Gold
	TextColor = p.Text
	MutedColor = p.Muted
	DimColor = p.Dim
	SurfaceColor = p.Surface
	BorderColor = p.Border

	Accent = activeTheme.Accent
	Gold = activeTheme.Gold
	Text = activeTheme.Text
	Muted = activeTheme.Muted
	Dim = activeTheme.Dim

	LoadingTitle = activeTheme.LoadingTitle
	LoadingStatus = activeTheme.LoadingStatus
	LoadingFrame = activeTheme.LoadingFrame

	Stamp = activeTheme.Stamp
	HeroTitle = activeTheme.HeroTitle
	HeroTagline = activeTheme.HeroTagline
	Designation = activeTheme.Designation

	SectionHeader = activeTheme.SectionHeader
	Divider = activeTheme.Divider

	Card = activeTheme.Card
	CardFocused = activeTheme.CardFocused
	CardName = activeTheme.CardName
	CardMeta = activeTheme.CardMeta
	Description = activeTheme.Description
	ImageFrame = activeTheme.ImageFrame

	BarLabel = activeTheme.BarLabel
	BarValue = activeTheme.BarValue
	BarFill = activeTheme.BarFill
	BarTrack = activeTheme.BarTrack

	TabActive = activeTheme.TabActive
	TabInactive = activeTheme.TabInactive

	SpecLabel = activeTheme.SpecLabel
	SpecValue = activeTheme.SpecValue
	SpecHighlight = activeTheme.SpecHighlight
	PanelHeading = activeTheme.PanelHeading
	Advantage = activeTheme.Advantage
	Disadvantage = activeTheme.Disadvantage

	Grid = activeTheme.Grid
	Scanline = activeTheme.Scanline
	Particle = activeTheme.Particle

	Footer = activeTheme.Footer
	HelpBar = activeTheme.HelpBar
	HelpKey = activeTheme.HelpKey
}
