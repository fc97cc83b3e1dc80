// Package tabs implements the per-card tab selection with a wait-for-exit
// transition: the outgoing panel fades out completely before the incoming
// panel fades in.
package tabs

import (
	"fmt"
	"strings"
	"time"

	"github.com/Iron-Ham/archives/internal/errors"
)

// Tab identifies one of a card's two panels.
type Tab int

const (
	// TabSpecs is the primary panel and the default selection.
	TabSpecs Tab = iota
	// TabProfile is the secondary panel.
	TabProfile
)

// All returns the tabs in display order.
func All() []Tab {
	return []Tab{TabSpecs, TabProfile}
}

// String returns the short name used in flags and logs.
func (t Tab) String() string {
	switch t {
	case TabSpecs:
		return "specs"
	case TabProfile:
		return "profile"
	default:
		return fmt.Sprintf("tab(%d)", int(t))
	}
}

// Title returns the label shown on the tab header.
func (t Tab) Title() string {
	switch t {
	case TabProfile:
		return "War Thunder Stats"
	default:
		return "Technical Specifications"
	}
}

// Other returns the opposite tab.
func (t Tab) Other() Tab {
	if t == TabSpecs {
		return TabProfile
	}
	return TabSpecs
}

// ParseTab accepts "specs"/"primary" and "profile"/"secondary"/"stats".
func ParseTab(s string) (Tab, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "specs", "primary":
		return TabSpecs, nil
	case "profile", "secondary", "stats":
		return TabProfile, nil
	default:
		return TabSpecs, errors.NewValidationError("unknown tab (use specs or profile)").
			WithField("tab").WithValue(s)
	}
}

// Transition is the animation state of a Controller.
type Transition int

const (
	// Idle shows the active panel at full opacity.
	Idle Transition = iota
	// Exiting fades the displayed panel out.
	Exiting
	// Entering fades the newly displayed panel in.
	Entering
)

func (t Transition) String() string {
	switch t {
	case Exiting:
		return "exiting"
	case Entering:
		return "entering"
	default:
		return "idle"
	}
}

// Controller owns one card's tab selection.
type Controller struct {
	active     Tab
	displayed  Tab
	transition Transition
	elapsed    time.Duration
	duration   time.Duration
	shown      time.Duration
	selections int
}

// NewController creates a controller showing TabSpecs. duration is the
// length of each half of a switch; zero switches instantly.
func NewController(duration time.Duration) *Controller {
	return NewControllerAt(TabSpecs, duration)
}

// NewControllerAt creates a controller initially showing tab.
func NewControllerAt(tab Tab, duration time.Duration) *Controller {
	if tab != TabProfile {
		tab = TabSpecs
	}
	if duration < 0 {
		duration = 0
	}
	return &Controller{
		active:    tab,
		displayed: tab,
		duration:  duration,
	}
}

// Active returns the selected tab. It changes immediately on Select.
func (c *Controller) Active() Tab {
	return c.active
}

// Displayed returns the tab whose panel is rendered right now, which lags
// Active while the previous panel is exiting.
func (c *Controller) Displayed() Tab {
	return c.displayed
}

// Transition returns the current animation state.
func (c *Controller) Transition() Transition {
	return c.transition
}

// Selections counts Select calls, including reselecting the active tab.
func (c *Controller) Selections() int {
	return c.selections
}

// Select makes tab active and starts the exit of the displayed panel.
// Reselecting the active tab replays the transition. Selecting during an
// entrance reverses it from the current opacity.
func (c *Controller) Select(tab Tab) {
	if tab != TabProfile {
		tab = TabSpecs
	}
	c.active = tab
	c.selections++

	if c.duration == 0 {
		c.displayed = tab
		c.transition = Idle
		c.elapsed = 0
		c.shown = 0
		return
	}

	switch c.transition {
	case Idle:
		c.transition = Exiting
		c.elapsed = 0
	case Entering:
		c.transition = Exiting
		c.elapsed = c.duration - c.elapsed
	case Exiting:
		// The outgoing panel keeps fading; the new target enters after it.
	}
}

// Toggle selects the tab that is not active.
func (c *Controller) Toggle() {
	c.Select(c.active.Other())
}

// Advance moves the transition forward by dt.
func (c *Controller) Advance(dt time.Duration) {
	if dt <= 0 {
		return
	}
	if c.transition != Exiting {
		c.shown += dt
	}
	for dt > 0 && c.transition != Idle {
		step := min(dt, c.duration-c.elapsed)
		c.elapsed += step
		dt -= step
		if c.elapsed < c.duration {
			break
		}
		switch c.transition {
		case Exiting:
			c.displayed = c.active
			c.transition = Entering
			c.elapsed = 0
			c.shown = dt
		case Entering:
			c.transition = Idle
			c.elapsed = 0
		}
	}
}

// Animating reports whether a transition is in progress.
func (c *Controller) Animating() bool {
	return c.transition != Idle
}

// Opacity returns the displayed panel's fade level in [0,1].
func (c *Controller) Opacity() float64 {
	if c.duration == 0 {
		return 1
	}
	f := float64(c.elapsed) / float64(c.duration)
	switch c.transition {
	case Exiting:
		return 1 - f
	case Entering:
		return f
	default:
		return 1
	}
}

// Shown returns how long the displayed panel has been entering or visible.
// Used to stagger the appearance of panel rows.
func (c *Controller) Shown() time.Duration {
	return c.shown
}
