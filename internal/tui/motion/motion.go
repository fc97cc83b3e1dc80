// Package motion turns elapsed time into animation progress for the views.
//
// Every animation is described by a Cue: a delay after its trigger and a
// duration. Views ask a cue how far along it is and render accordingly;
// nothing here keeps state.
package motion

import (
	"math"
	"time"
)

// Fraction reports linear progress in [0,1] of an animation that starts
// delay after its trigger and runs for duration, elapsed after the trigger.
// A non-positive duration jumps straight to 1 once the delay has passed.
func Fraction(elapsed, delay, duration time.Duration) float64 {
	t := elapsed - delay
	if t < 0 {
		return 0
	}
	if duration <= 0 || t >= duration {
		return 1
	}
	return float64(t) / float64(duration)
}

// EaseOut is a cubic ease-out curve.
func EaseOut(t float64) float64 {
	t = clamp(t)
	return 1 - math.Pow(1-t, 3)
}

// Progress is Fraction passed through EaseOut.
func Progress(elapsed, delay, duration time.Duration) float64 {
	return EaseOut(Fraction(elapsed, delay, duration))
}

// Done reports whether the animation has finished at elapsed.
func Done(elapsed, delay, duration time.Duration) bool {
	return elapsed >= delay+duration
}

// Cue is a delayed, timed animation.
type Cue struct {
	Delay    time.Duration
	Duration time.Duration
}

// Opacity is the linear fade-in level at elapsed.
func (c Cue) Opacity(elapsed time.Duration) float64 {
	return Fraction(elapsed, c.Delay, c.Duration)
}

// Eased is the ease-out progress at elapsed.
func (c Cue) Eased(elapsed time.Duration) float64 {
	return Progress(elapsed, c.Delay, c.Duration)
}

// Started reports whether the delay has passed.
func (c Cue) Started(elapsed time.Duration) bool {
	return elapsed > c.Delay
}

// Done reports whether the cue has finished.
func (c Cue) Done(elapsed time.Duration) bool {
	return Done(elapsed, c.Delay, c.Duration)
}

// End is the instant, relative to the trigger, at which the cue finishes.
func (c Cue) End() time.Duration {
	return c.Delay + c.Duration
}

// Stagger returns the cue for the index-th item of a staggered group.
func Stagger(index int, step, duration time.Duration) Cue {
	return Cue{Delay: time.Duration(index) * step, Duration: duration}
}

// Hero intro timeline, measured from the moment the dossier appears.
var (
	HeroStamp        = Cue{Delay: 200 * time.Millisecond, Duration: 500 * time.Millisecond}
	HeroTitle        = Cue{Delay: 400 * time.Millisecond, Duration: 800 * time.Millisecond}
	HeroSubtitle     = Cue{Delay: 800 * time.Millisecond, Duration: 500 * time.Millisecond}
	HeroDesignations = Cue{Delay: time.Second, Duration: 600 * time.Millisecond}
	HeroIndicator    = Cue{Delay: 1500 * time.Millisecond, Duration: 500 * time.Millisecond}
)

// HeroIntroEnd is when the last hero cue finishes.
func HeroIntroEnd() time.Duration {
	return HeroIndicator.End()
}

// Within a card, the image slides in after 0.3s and the description after
// 0.4s, both counted from the card's own entrance.
var (
	CardImage       = Cue{Delay: 300 * time.Millisecond, Duration: 800 * time.Millisecond}
	CardDescription = Cue{Delay: 400 * time.Millisecond, Duration: 800 * time.Millisecond}
)

// SpecRowStep staggers the rows of a specs panel after it enters.
const (
	SpecRowStep     = 100 * time.Millisecond
	SpecRowDuration = 300 * time.Millisecond
)

// ScrollFade maps a scroll offset to the opacity of a block that fades out
// over span lines.
func ScrollFade(offset, span int) float64 {
	if span <= 0 {
		return 1
	}
	return clamp(1 - float64(offset)/float64(span))
}

func clamp(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}
