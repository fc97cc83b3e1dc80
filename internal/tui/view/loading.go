package view

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Iron-Ham/archives/internal/loading"
	"github.com/Iron-Ham/archives/internal/tui/styles"
)

// loadingBarWidth is the width of the progress bar on the loading screen.
const loadingBarWidth = 40

// LoadingView renders the full-screen loading sequence.
type LoadingView struct{}

// NewLoadingView creates a LoadingView.
func NewLoadingView() *LoadingView {
	return &LoadingView{}
}

// Render draws the loading screen for snap, centered in a width×height
// terminal. A zero size renders the box alone.
func (v *LoadingView) Render(snap loading.Snapshot, width, height int) string {
	barWidth := loadingBarWidth
	if width > 0 {
		barWidth = max(10, min(loadingBarWidth, width-10))
	}

	filled := int(math.Round(float64(barWidth) * snap.Progress / loading.MaxProgress))
	filled = max(0, min(barWidth, filled))
	bar := styles.BarFill.Render(strings.Repeat(barFill, filled)) +
		styles.BarTrack.Render(strings.Repeat(barTrack, barWidth-filled))

	content := strings.Join([]string{
		lipgloss.PlaceHorizontal(barWidth, lipgloss.Center, styles.LoadingTitle.Render(loadingTitle)),
		"",
		bar,
		lipgloss.PlaceHorizontal(barWidth, lipgloss.Right, styles.Muted.Render(fmt.Sprintf("%3.0f%%", snap.Progress))),
		lipgloss.PlaceHorizontal(barWidth, lipgloss.Center, StatusLine(snap)),
	}, "\n")

	box := styles.LoadingFrame.Render(content)
	if width <= 0 || height <= 0 {
		return box
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, box)
}

// StatusLine is the phase label followed by animated dots. The dots cycle
// with the engine's tick count.
func StatusLine(snap loading.Snapshot) string {
	dots := strings.Repeat(".", snap.Ticks%4)
	return styles.LoadingStatus.Render(snap.Phase.String()) + styles.Muted.Render(fmt.Sprintf("%-3s", dots))
}
