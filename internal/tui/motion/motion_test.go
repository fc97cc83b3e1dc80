package motion

import (
	"math"
	"testing"
	"time"
)

const ms = time.Millisecond

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestFraction(t *testing.T) {
	tests := []struct {
		name                     string
		elapsed, delay, duration time.Duration
		want                     float64
	}{
		{"before delay", 50 * ms, 100 * ms, time.Second, 0},
		{"at delay", 100 * ms, 100 * ms, time.Second, 0},
		{"halfway", 600 * ms, 100 * ms, time.Second, 0.5},
		{"finished", 1100 * ms, 100 * ms, time.Second, 1},
		{"long after", time.Hour, 100 * ms, time.Second, 1},
		{"zero duration after delay", 100 * ms, 100 * ms, 0, 1},
		{"zero duration before delay", 99 * ms, 100 * ms, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Fraction(tt.elapsed, tt.delay, tt.duration); !approx(got, tt.want) {
				t.Errorf("Fraction() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestEaseOut(t *testing.T) {
	if EaseOut(0) != 0 || EaseOut(1) != 1 {
		t.Errorf("EaseOut endpoints = %v, %v", EaseOut(0), EaseOut(1))
	}
	if !approx(EaseOut(0.5), 0.875) {
		t.Errorf("EaseOut(0.5) = %v, want 0.875", EaseOut(0.5))
	}
	if EaseOut(-1) != 0 || EaseOut(2) != 1 {
		t.Error("EaseOut should clamp its input")
	}
	prev := 0.0
	for i := 1; i <= 100; i++ {
		v := EaseOut(float64(i) / 100)
		if v < prev {
			t.Fatalf("EaseOut not monotonic at %d", i)
		}
		if v < float64(i)/100 {
			t.Fatalf("ease-out should lead linear progress at %d", i)
		}
		prev = v
	}
}

func TestStagger(t *testing.T) {
	c := Stagger(3, 100*ms, time.Second)
	if c.Delay != 300*ms || c.Duration != time.Second {
		t.Errorf("Stagger(3) = %+v", c)
	}
	if c.End() != 1300*ms {
		t.Errorf("End() = %v", c.End())
	}
	if c.Started(300*ms) || !c.Started(301*ms) {
		t.Error("Started should flip just after the delay")
	}
	if c.Done(1299*ms) || !c.Done(1300*ms) {
		t.Error("Done should flip at the end")
	}
}

func TestHeroTimelineOrder(t *testing.T) {
	cues := []Cue{HeroStamp, HeroTitle, HeroSubtitle, HeroDesignations, HeroIndicator}
	for i := 1; i < len(cues); i++ {
		if cues[i].Delay <= cues[i-1].Delay {
			t.Errorf("cue %d starts before cue %d", i, i-1)
		}
	}
	if HeroIntroEnd() != 2*time.Second {
		t.Errorf("HeroIntroEnd() = %v", HeroIntroEnd())
	}
}

func TestScrollFade(t *testing.T) {
	tests := []struct {
		offset, span int
		want         float64
	}{
		{0, 20, 1},
		{10, 20, 0.5},
		{20, 20, 0},
		{40, 20, 0},
		{5, 0, 1},
	}
	for _, tt := range tests {
		if got := ScrollFade(tt.offset, tt.span); !approx(got, tt.want) {
			t.Errorf("ScrollFade(%d, %d) = %v, want %v", tt.offset, tt.span, got, tt.want)
		}
	}
}
