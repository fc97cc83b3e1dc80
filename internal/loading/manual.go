package loading

import (
	"sort"
	"sync"
	"time"
)

// ManualClock is a Scheduler whose time only moves when told to. Callbacks
// run synchronously inside Advance, in due order. It backs --instant and
// deterministic tests.
type ManualClock struct {
	mu    sync.Mutex
	now   time.Duration
	seq   int
	tasks []*manualTask
}

type manualTask struct {
	clock     *ManualClock
	due       time.Duration
	period    time.Duration
	seq       int
	fn        func()
	cancelled bool
}

func (t *manualTask) Cancel() {
	t.clock.mu.Lock()
	defer t.clock.mu.Unlock()
	t.cancelled = true
}

// NewManualClock creates a ManualClock at time zero.
func NewManualClock() *ManualClock {
	return &ManualClock{}
}

// Now returns the elapsed simulated time.
func (c *ManualClock) Now() time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

// Every schedules fn at now+period, now+2*period, ... A non-positive
// period is treated as one nanosecond.
func (c *ManualClock) Every(period time.Duration, fn func()) Task {
	if period <= 0 {
		period = 1
	}
	return c.add(period, period, fn)
}

// After schedules fn once at now+delay.
func (c *ManualClock) After(delay time.Duration, fn func()) Task {
	if delay < 0 {
		delay = 0
	}
	return c.add(delay, 0, fn)
}

func (c *ManualClock) add(delay, period time.Duration, fn func()) Task {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.seq++
	t := &manualTask{
		clock:  c,
		due:    c.now + delay,
		period: period,
		seq:    c.seq,
		fn:     fn,
	}
	c.tasks = append(c.tasks, t)
	return t
}

// Pending returns the number of live tasks.
func (c *ManualClock) Pending() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.prune()
	return len(c.tasks)
}

// Advance moves time forward by d, running every callback that comes due,
// including ones scheduled by callbacks during the advance.
func (c *ManualClock) Advance(d time.Duration) {
	c.mu.Lock()
	target := c.now + d
	c.mu.Unlock()

	for {
		fn := c.next(target)
		if fn == nil {
			break
		}
		fn()
	}

	c.mu.Lock()
	if target > c.now {
		c.now = target
	}
	c.mu.Unlock()
}

// RunUntilIdle keeps jumping to the next due callback until none remain
// or limit callbacks have run. It returns the number of callbacks run.
func (c *ManualClock) RunUntilIdle(limit int) int {
	ran := 0
	for ran < limit {
		fn := c.next(-1)
		if fn == nil {
			break
		}
		fn()
		ran++
	}
	return ran
}

// RunUntil keeps jumping to the next due callback until done reports true
// or no callback remains. It returns the number of callbacks run.
func (c *ManualClock) RunUntil(done func() bool) int {
	ran := 0
	for !done() {
		fn := c.next(-1)
		if fn == nil {
			break
		}
		fn()
		ran++
	}
	return ran
}

// next pops the earliest live task due at or before target (any task when
// target is negative), moves the clock to its due time and reschedules it
// if periodic. The caller runs the returned callback without the lock held.
func (c *ManualClock) next(target time.Duration) func() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.prune()
	if len(c.tasks) == 0 {
		return nil
	}
	sort.SliceStable(c.tasks, func(i, j int) bool {
		if c.tasks[i].due != c.tasks[j].due {
			return c.tasks[i].due < c.tasks[j].due
		}
		return c.tasks[i].seq < c.tasks[j].seq
	})

	t := c.tasks[0]
	if target >= 0 && t.due > target {
		return nil
	}
	if t.due > c.now {
		c.now = t.due
	}

	if t.period > 0 {
		t.due += t.period
	} else {
		c.tasks = c.tasks[1:]
	}

	return t.fn
}

func (c *ManualClock) prune() {
	live := c.tasks[:0]
	for _, t := range c.tasks {
		if !t.cancelled {
			live = append(live, t)
		}
	}
	c.tasks = live
}
