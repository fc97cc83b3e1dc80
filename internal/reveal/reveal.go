// Package reveal tracks which document elements have scrolled into view.
//
// Each observed element owns a one-shot Flag that flips the first time the
// element intersects the viewport shrunk by a margin, after which the
// element is no longer observed. Scrolling away and back never flips a flag
// again.
package reveal

import (
	"sort"
	"time"
)

// Flag records whether an element has entered the viewport.
// The zero value has not entered.
type Flag struct {
	entered bool
	at      time.Duration
}

// Set flips the flag at time at. It returns true only on the first call.
func (f *Flag) Set(at time.Duration) bool {
	if f.entered {
		return false
	}
	f.entered = true
	f.at = at
	return true
}

// Entered reports whether the flag has flipped.
func (f Flag) Entered() bool {
	return f.entered
}

// EnteredAt returns the time passed to the flipping Set call.
func (f Flag) EnteredAt() time.Duration {
	return f.at
}

// Region is a span of document lines.
type Region struct {
	Top    int
	Height int
}

// Bottom returns the first line after the region. Empty regions count as
// one line so they can still be observed.
func (r Region) Bottom() int {
	return r.Top + max(r.Height, 1)
}

// Viewport is the visible window onto the document.
type Viewport struct {
	Offset int
	Height int
}

// Inset returns the viewport lines [top, bottom) left after applying
// margin on both edges.
func (v Viewport) Inset(margin int) (top, bottom int) {
	m := EffectiveMargin(margin, v.Height)
	return v.Offset + m, v.Offset + v.Height - m
}

// EffectiveMargin shrinks margin so a viewport of the given height keeps
// at least one line after insetting both edges.
func EffectiveMargin(margin, height int) int {
	if margin <= 0 {
		return 0
	}
	if height-2*margin < 1 {
		return max((height-1)/2, 0)
	}
	return margin
}

// Intersects reports whether r overlaps the inset viewport.
func (v Viewport) Intersects(r Region, margin int) bool {
	if v.Height <= 0 {
		return false
	}
	top, bottom := v.Inset(margin)
	return r.Top < bottom && r.Bottom() > top
}

type element struct {
	region    Region
	flag      Flag
	observing bool
}

// Observer watches a set of keyed elements. It is not safe for concurrent
// use; the TUI drives it from its update loop.
type Observer struct {
	margin int
	elems  map[string]*element
}

// NewObserver creates an Observer with the given line margin.
func NewObserver(margin int) *Observer {
	return &Observer{
		margin: max(margin, 0),
		elems:  make(map[string]*element),
	}
}

// Margin returns the configured margin.
func (o *Observer) Margin() int {
	return o.margin
}

// Observe starts watching key at region. Observing a key again only
// updates its region; an element that already entered stays entered and
// is not watched again.
func (o *Observer) Observe(key string, r Region) {
	if e, ok := o.elems[key]; ok {
		e.region = r
		return
	}
	o.elems[key] = &element{region: r, observing: true}
}

// Update moves key to a new region after re-layout. Unknown keys are
// ignored.
func (o *Observer) Update(key string, r Region) {
	if e, ok := o.elems[key]; ok {
		e.region = r
	}
}

// Unobserve forgets key entirely, including its flag.
func (o *Observer) Unobserve(key string) {
	delete(o.elems, key)
}

// Flag returns the flag for key.
func (o *Observer) Flag(key string) Flag {
	if e, ok := o.elems[key]; ok {
		return e.flag
	}
	return Flag{}
}

// Entered reports whether key has entered the viewport.
func (o *Observer) Entered(key string) bool {
	return o.Flag(key).Entered()
}

// Observing returns the number of elements still being watched.
func (o *Observer) Observing() int {
	n := 0
	for _, e := range o.elems {
		if e.observing {
			n++
		}
	}
	return n
}

// Check flips the flag of every watched element intersecting the inset
// viewport and stops watching it. It returns the keys flipped by this
// call, sorted.
func (o *Observer) Check(v Viewport, now time.Duration) []string {
	var flipped []string
	for key, e := range o.elems {
		if !e.observing || !v.Intersects(e.region, o.margin) {
			continue
		}
		if e.flag.Set(now) {
			flipped = append(flipped, key)
		}
		e.observing = false
	}
	sort.Strings(flipped)
	return flipped
}

// RevealAll flips every remaining flag. Used when output is not scrolled,
// such as the plain renderer.
func (o *Observer) RevealAll(now time.Duration) []string {
	var flipped []string
	for key, e := range o.elems {
		if e.flag.Set(now) {
			flipped = append(flipped, key)
		}
		e.observing = false
	}
	sort.Strings(flipped)
	return flipped
}
