package reveal

import (
	"strings"
	"testing"
	"time"
)

func TestFlag_OneShot(t *testing.T) {
	var f Flag
	if f.Entered() {
		t.Fatal("zero Flag should not be entered")
	}
	if !f.Set(time.Second) {
		t.Fatal("first Set should report a transition")
	}
	if f.Set(2 * time.Second) {
		t.Error("second Set should not report a transition")
	}
	if !f.Entered() || f.EnteredAt() != time.Second {
		t.Errorf("Entered=%v EnteredAt=%v", f.Entered(), f.EnteredAt())
	}
}

func TestEffectiveMargin(t *testing.T) {
	tests := []struct {
		margin, height, want int
	}{
		{3, 40, 3},
		{3, 7, 3},
		{3, 6, 2},
		{3, 3, 1},
		{3, 1, 0},
		{3, 0, 0},
		{0, 10, 0},
		{-2, 10, 0},
	}
	for _, tt := range tests {
		if got := EffectiveMargin(tt.margin, tt.height); got != tt.want {
			t.Errorf("EffectiveMargin(%d, %d) = %d, want %d", tt.margin, tt.height, got, tt.want)
		}
	}
}

func TestViewport_Intersects(t *testing.T) {
	v := Viewport{Offset: 10, Height: 20} // inset with margin 3: [13, 27)

	tests := []struct {
		name   string
		region Region
		want   bool
	}{
		{"fully inside", Region{Top: 15, Height: 4}, true},
		{"touching top edge only", Region{Top: 8, Height: 3}, false},
		{"inside top margin", Region{Top: 10, Height: 3}, false},
		{"crossing into inset", Region{Top: 10, Height: 4}, true},
		{"inside bottom margin", Region{Top: 27, Height: 5}, false},
		{"last inset line", Region{Top: 26, Height: 1}, true},
		{"below", Region{Top: 40, Height: 2}, false},
		{"zero height inside", Region{Top: 20}, true},
		{"spanning whole viewport", Region{Top: 0, Height: 100}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := v.Intersects(tt.region, 3); got != tt.want {
				t.Errorf("Intersects(%+v) = %v, want %v", tt.region, got, tt.want)
			}
		})
	}

	if (Viewport{Offset: 0, Height: 0}).Intersects(Region{Top: 0, Height: 5}, 0) {
		t.Error("empty viewport should intersect nothing")
	}
}

// Entering, leaving and re-entering the viewport yields exactly one
// transition.
func TestObserver_EnterLeaveReenter(t *testing.T) {
	o := NewObserver(3)
	o.Observe("bar", Region{Top: 50, Height: 1})

	transitions := 0
	for i, offset := range []int{0, 40, 0, 40, 45, 0} {
		flipped := o.Check(Viewport{Offset: offset, Height: 20}, time.Duration(i)*time.Second)
		transitions += len(flipped)
	}

	if transitions != 1 {
		t.Errorf("transitions = %d, want 1", transitions)
	}
	if !o.Entered("bar") {
		t.Error("bar should have entered")
	}
	if o.Flag("bar").EnteredAt() != time.Second {
		t.Errorf("EnteredAt = %v, want 1s", o.Flag("bar").EnteredAt())
	}
	if o.Observing() != 0 {
		t.Errorf("Observing() = %d, want 0", o.Observing())
	}
}

func TestObserver_IndependentFlags(t *testing.T) {
	o := NewObserver(0)
	o.Observe("card/a", Region{Top: 0, Height: 10})
	o.Observe("card/b", Region{Top: 30, Height: 10})
	o.Observe("card/c", Region{Top: 12, Height: 2})

	got := o.Check(Viewport{Offset: 0, Height: 15}, 0)
	if strings.Join(got, ",") != "card/a,card/c" {
		t.Errorf("flipped = %v", got)
	}
	if o.Entered("card/b") {
		t.Error("card/b should not have entered")
	}
	if o.Observing() != 1 {
		t.Errorf("Observing() = %d, want 1", o.Observing())
	}
}

func TestObserver_UpdateKeepsFlags(t *testing.T) {
	o := NewObserver(0)
	o.Observe("a", Region{Top: 0, Height: 1})
	o.Observe("b", Region{Top: 100, Height: 1})
	o.Check(Viewport{Offset: 0, Height: 10}, 0)

	o.Update("a", Region{Top: 500, Height: 1})
	o.Update("b", Region{Top: 5, Height: 1})
	o.Update("missing", Region{})
	o.Observe("a", Region{Top: 600, Height: 1})

	got := o.Check(Viewport{Offset: 0, Height: 10}, time.Second)
	if strings.Join(got, ",") != "b" {
		t.Errorf("flipped = %v, want [b]", got)
	}
	if !o.Entered("a") {
		t.Error("re-layout reset flag a")
	}
}

func TestObserver_Unobserve(t *testing.T) {
	o := NewObserver(0)
	o.Observe("img", Region{Top: 0, Height: 5})
	o.Unobserve("img")

	if got := o.Check(Viewport{Offset: 0, Height: 10}, 0); len(got) != 0 {
		t.Errorf("unobserved element flipped: %v", got)
	}
	if o.Entered("img") {
		t.Error("unknown key should report not entered")
	}
}

func TestObserver_ShortViewportShrinksMargin(t *testing.T) {
	o := NewObserver(3)
	o.Observe("x", Region{Top: 2, Height: 1})

	// A 5-line viewport with margin 3 would have no inset; margin becomes 2.
	got := o.Check(Viewport{Offset: 0, Height: 5}, 0)
	if len(got) != 1 {
		t.Errorf("element in the only inset line did not flip")
	}
}

func TestObserver_RevealAll(t *testing.T) {
	o := NewObserver(3)
	o.Observe("a", Region{Top: 5})
	o.Observe("b", Region{Top: 1000})
	o.Check(Viewport{Offset: 0, Height: 10}, 0)

	got := o.RevealAll(time.Second)
	if strings.Join(got, ",") != "b" {
		t.Errorf("RevealAll() = %v, want [b]", got)
	}
	if o.Flag("a").EnteredAt() != 0 {
		t.Error("RevealAll changed an existing flag")
	}
}
