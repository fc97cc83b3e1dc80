package loading

import (
	"sync"
	"sync/atomic"
	"time"
)

// Task is a scheduled callback that can be cancelled. Cancel is idempotent
// and guarantees the callback does not start afterwards.
type Task interface {
	Cancel()
}

// Scheduler runs callbacks after a delay or on a fixed period.
type Scheduler interface {
	Every(period time.Duration, fn func()) Task
	After(delay time.Duration, fn func()) Task
}

// TimerScheduler schedules callbacks on real timers. Each due callback is
// handed to a dispatch function, which decides where it runs; the TUI
// forwards it into the Bubble Tea event loop so state is only touched from
// one goroutine. A nil dispatch runs callbacks on the timer goroutine.
type TimerScheduler struct {
	dispatch func(func())
}

// NewTimerScheduler creates a TimerScheduler using dispatch.
func NewTimerScheduler(dispatch func(func())) *TimerScheduler {
	if dispatch == nil {
		dispatch = func(fn func()) { fn() }
	}
	return &TimerScheduler{dispatch: dispatch}
}

type timerTask struct {
	cancelled atomic.Bool
	stopOnce  sync.Once
	stop      func()
}

func (t *timerTask) Cancel() {
	t.cancelled.Store(true)
	t.stopOnce.Do(func() {
		if t.stop != nil {
			t.stop()
		}
	})
}

// guard wraps fn so a callback already queued in the dispatcher is dropped
// if the task was cancelled in the meantime.
func (t *timerTask) guard(fn func()) func() {
	return func() {
		if !t.cancelled.Load() {
			fn()
		}
	}
}

// Every runs fn once per period until the returned task is cancelled.
func (s *TimerScheduler) Every(period time.Duration, fn func()) Task {
	t := &timerTask{}
	ticker := time.NewTicker(period)
	done := make(chan struct{})
	t.stop = func() {
		ticker.Stop()
		close(done)
	}

	go func() {
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				if t.cancelled.Load() {
					return
				}
				s.dispatch(t.guard(fn))
			}
		}
	}()
	return t
}

// After runs fn once after delay unless the returned task is cancelled first.
func (s *TimerScheduler) After(delay time.Duration, fn func()) Task {
	t := &timerTask{}
	timer := time.AfterFunc(delay, func() {
		s.dispatch(t.guard(fn))
	})
	t.stop = func() { timer.Stop() }
	return t
}
