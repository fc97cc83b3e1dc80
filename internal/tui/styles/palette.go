package styles

import (
	"slices"

	"github.com/charmbracelet/lipgloss"
)

// ThemeName represents a named color theme.
type ThemeName string

// Available theme names.
const (
	ThemeArchive   ThemeName = "archive"   // Red and gold on near-black (default)
	ThemePhosphor  ThemeName = "phosphor"  // Green CRT terminal
	ThemeBlueprint ThemeName = "blueprint" // White and cyan on drafting blue
	ThemeMono      ThemeName = "mono"      // Grayscale, for limited terminals
)

// BuiltinThemes returns all built-in theme names.
func BuiltinThemes() []string {
	return []string{
		string(ThemeArchive),
		string(ThemePhosphor),
		string(ThemeBlueprint),
		string(ThemeMono),
	}
}

// ValidThemes returns all valid theme names (built-in + custom).
func ValidThemes() []string {
	themes := BuiltinThemes()
	themes = append(themes, CustomThemeNames()...)
	return themes
}

// IsValidTheme checks if a theme name is valid (built-in or custom).
func IsValidTheme(name string) bool {
	if slices.Contains(BuiltinThemes(), name) {
		return true
	}
	return IsCustomTheme(name)
}

// ColorPalette defines the color scheme for a theme.
type ColorPalette struct {
	// Accent is the dominant color: stamps, borders of focused cards, bar fills
	Accent lipgloss.Color
	// Gold marks titles, highlighted values and the active tab
	Gold lipgloss.Color
	// Text is body copy
	Text lipgloss.Color
	// Muted is secondary copy and labels
	Muted lipgloss.Color
	// Dim is decoration: grid, particles, bar tracks
	Dim lipgloss.Color
	// Surface is the card background
	Surface lipgloss.Color
	// Border frames cards and image blocks
	Border lipgloss.Color
	// Positive and Negative color advantage and disadvantage lists
	Positive lipgloss.Color
	Negative lipgloss.Color
}

// ArchivePalette returns the default red/gold palette.
func ArchivePalette() *ColorPalette {
	return &ColorPalette{
		Accent:   lipgloss.Color("#DC2626"), // red-600
		Gold:     lipgloss.Color("#EAB308"), // yellow-500
		Text:     lipgloss.Color("#E5E7EB"), // gray-200
		Muted:    lipgloss.Color("#9CA3AF"), // gray-400
		Dim:      lipgloss.Color("#4B5563"), // gray-600
		Surface:  lipgloss.Color("#111827"), // gray-900
		Border:   lipgloss.Color("#7F1D1D"), // red-900
		Positive: lipgloss.Color("#22C55E"),
		Negative: lipgloss.Color("#EF4444"),
	}
}

// PhosphorPalette returns a green-screen palette.
func PhosphorPalette() *ColorPalette {
	return &ColorPalette{
		Accent:   lipgloss.Color("#33FF66"),
		Gold:     lipgloss.Color("#B6FF9E"),
		Text:     lipgloss.Color("#A7F3B8"),
		Muted:    lipgloss.Color("#4ADE80"),
		Dim:      lipgloss.Color("#166534"),
		Surface:  lipgloss.Color("#04140A"),
		Border:   lipgloss.Color("#15803D"),
		Positive: lipgloss.Color("#86EFAC"),
		Negative: lipgloss.Color("#FDE047"),
	}
}

// BlueprintPalette returns a drafting-table palette.
func BlueprintPalette() *ColorPalette {
	return &ColorPalette{
		Accent:   lipgloss.Color("#38BDF8"),
		Gold:     lipgloss.Color("#F8FAFC"),
		Text:     lipgloss.Color("#E0F2FE"),
		Muted:    lipgloss.Color("#7DD3FC"),
		Dim:      lipgloss.Color("#1E3A8A"),
		Surface:  lipgloss.Color("#0B1E4A"),
		Border:   lipgloss.Color("#60A5FA"),
		Positive: lipgloss.Color("#A5F3FC"),
		Negative: lipgloss.Color("#FCA5A5"),
	}
}

// MonoPalette returns a grayscale palette.
func MonoPalette() *ColorPalette {
	return &ColorPalette{
		Accent:   lipgloss.Color("#FFFFFF"),
		Gold:     lipgloss.Color("#F3F4F6"),
		Text:     lipgloss.Color("#D1D5DB"),
		Muted:    lipgloss.Color("#9CA3AF"),
		Dim:      lipgloss.Color("#4B5563"),
		Surface:  lipgloss.Color("#000000"),
		Border:   lipgloss.Color("#6B7280"),
		Positive: lipgloss.Color("#E5E7EB"),
		Negative: lipgloss.Color("#9CA3AF"),
	}
}

// GetPalette returns the color palette for the given theme name.
// Checks custom themes first, then falls back to built-in themes.
// Returns the archive palette for unknown theme names.
func GetPalette(name ThemeName) *ColorPalette {
	if custom := GetCustomTheme(name); custom != nil {
		return custom.ToPalette()
	}

	switch name {
	case ThemePhosphor:
		return PhosphorPalette()
	case ThemeBlueprint:
		return BlueprintPalette()
	case ThemeMono:
		return MonoPalette()
	default:
		return ArchivePalette()
	}
}
