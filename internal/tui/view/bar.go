package view

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/Iron-Ham/archives/internal/tui/motion"
	"github.com/Iron-Ham/archives/internal/tui/styles"
)

// Stat bar glyphs.
const (
	barFill  = "█"
	barTrack = "░"
)

// barLines renders a rating bar as a label line and a track line. fill is
// the eased fill progress in [0,1]; the bar reaches Value percent of width
// at fill 1.
func barLines(b Bar, width int, fill float64, f fade) []string {
	value := fmt.Sprintf("%d%%", b.Value)
	header := spread(f.render(styles.BarLabel, b.Label), f.render(styles.BarValue, value), width)

	filled := FilledCells(b.Value, width, fill)
	track := f.render(styles.BarFill, strings.Repeat(barFill, filled)) +
		f.render(styles.BarTrack, strings.Repeat(barTrack, width-filled))
	return []string{header, track}
}

// FilledCells is how many of width cells a bar with value shows at fill.
func FilledCells(value, width int, fill float64) int {
	if width <= 0 {
		return 0
	}
	v := math.Max(0, math.Min(100, float64(value)))
	fill = math.Max(0, math.Min(1, fill))
	return int(math.Round(float64(width) * v / 100 * fill))
}

// barFillAt is the fill progress of a bar elapsed after it was revealed.
// Bars of a card fill one after another.
func barFillAt(b Bar, timing Timing, elapsed time.Duration) float64 {
	return motion.Stagger(b.Index, timing.BarStagger, timing.BarDuration).Eased(elapsed)
}
