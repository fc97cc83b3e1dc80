// Package loading drives the simulated loading sequence shown before the
// showcase opens: a progress value climbing from 0 to 100 on a repeating
// tick, a status label derived from it, and a one-shot completion signal.
package loading

import (
	"math/rand/v2"
	"sync"
	"time"

	"github.com/Iron-Ham/archives/internal/config"
	"github.com/Iron-Ham/archives/internal/errors"
	"github.com/Iron-Ham/archives/internal/logging"
)

// Stage is the lifecycle position of an Engine.
type Stage int

const (
	// StageIdle is an engine that has not been started.
	StageIdle Stage = iota
	// StageRunning ticks until progress reaches 100.
	StageRunning
	// StageSettling has stopped ticking and waits out the settle delay.
	StageSettling
	// StageComplete has fired the completion callback. Terminal.
	StageComplete
)

// String returns the stage name.
func (s Stage) String() string {
	switch s {
	case StageIdle:
		return "idle"
	case StageRunning:
		return "running"
	case StageSettling:
		return "settling"
	case StageComplete:
		return "complete"
	default:
		return "unknown"
	}
}

// MaxProgress is the value at which ticking stops.
const MaxProgress = 100.0

// Snapshot is a point-in-time copy of engine state.
type Snapshot struct {
	Progress float64
	Phase    Phase
	Stage    Stage
	Ticks    int
	Disposed bool
}

// Options configures an Engine.
type Options struct {
	Interval     time.Duration
	Settle       time.Duration
	MinIncrement float64
	MaxIncrement float64

	// Rand returns values in [0,1). Defaults to math/rand/v2.Float64.
	Rand func() float64
	// Observer, if set, receives a snapshot after every state change.
	Observer func(Snapshot)
	Logger   *logging.Logger
}

// DefaultOptions returns the timings of the original loading screen.
func DefaultOptions() Options {
	return OptionsFrom(config.Default().Loading)
}

// OptionsFrom builds Options from the loading configuration section.
func OptionsFrom(cfg config.LoadingConfig) Options {
	return Options{
		Interval:     cfg.Interval(),
		Settle:       cfg.Settle(),
		MinIncrement: cfg.MinIncrement,
		MaxIncrement: cfg.MaxIncrement,
	}
}

// Engine runs one loading session: RUNNING -> SETTLING -> COMPLETE.
// It is safe for concurrent use, but callbacks are expected to arrive
// serialized through the Scheduler.
type Engine struct {
	mu sync.Mutex

	sched      Scheduler
	opts       Options
	onComplete func()
	logger     *logging.Logger

	progress float64
	phase    Phase
	stage    Stage
	ticks    int
	disposed bool

	ticker Task
	settle Task
}

// New creates an idle Engine. onComplete is invoked exactly once, after
// progress reaches 100 and the settle delay elapses, unless the engine is
// disposed first.
func New(sched Scheduler, opts Options, onComplete func()) *Engine {
	if opts.Rand == nil {
		opts.Rand = rand.Float64
	}
	if opts.MinIncrement < config.MinIncrementFloor {
		opts.MinIncrement = config.MinIncrementFloor
	}
	if opts.MaxIncrement < opts.MinIncrement {
		opts.MaxIncrement = opts.MinIncrement
	}
	logger := opts.Logger
	if logger == nil {
		logger = logging.NopLogger()
	}
	return &Engine{
		sched:      sched,
		opts:       opts,
		onComplete: onComplete,
		logger:     logger.WithComponent("loading"),
	}
}

// Start begins ticking. An engine runs a single session; starting it again
// returns ErrAlreadyStarted, and starting a disposed engine ErrDisposed.
func (e *Engine) Start() error {
	e.mu.Lock()
	if e.disposed {
		e.mu.Unlock()
		return errors.ErrDisposed
	}
	if e.stage != StageIdle {
		e.mu.Unlock()
		return errors.ErrAlreadyStarted
	}
	e.stage = StageRunning
	e.ticker = e.sched.Every(e.opts.Interval, e.tick)
	snap := e.snapshotLocked()
	e.mu.Unlock()

	e.logger.Info("loading started",
		"interval_ms", e.opts.Interval.Milliseconds(),
		"settle_ms", e.opts.Settle.Milliseconds())
	e.notify(snap)
	return nil
}

func (e *Engine) tick() {
	e.mu.Lock()
	if e.disposed || e.stage != StageRunning {
		e.mu.Unlock()
		return
	}

	inc := e.opts.MinIncrement + e.opts.Rand()*(e.opts.MaxIncrement-e.opts.MinIncrement)
	e.progress = min(e.progress+inc, MaxProgress)
	e.ticks++

	prev := e.phase
	e.phase = PhaseFor(e.progress)

	if e.progress >= MaxProgress {
		e.stage = StageSettling
		e.ticker.Cancel()
		e.ticker = nil
		e.settle = e.sched.After(e.opts.Settle, e.finish)
	}
	snap := e.snapshotLocked()
	e.mu.Unlock()

	if snap.Phase != prev {
		e.logger.Info("phase changed", "phase", snap.Phase.String(), "progress", snap.Progress)
	}
	e.notify(snap)
}

func (e *Engine) finish() {
	e.mu.Lock()
	if e.disposed || e.stage != StageSettling {
		e.mu.Unlock()
		return
	}
	e.stage = StageComplete
	e.settle = nil
	snap := e.snapshotLocked()
	e.mu.Unlock()

	e.logger.Info("loading complete", "ticks", snap.Ticks)
	e.notify(snap)
	if e.onComplete != nil {
		e.onComplete()
	}
}

// Dispose cancels any pending tick or settle callback. After Dispose the
// engine never changes state and never calls back. Safe to call repeatedly.
func (e *Engine) Dispose() {
	e.mu.Lock()
	if e.disposed {
		e.mu.Unlock()
		return
	}
	e.disposed = true
	if e.ticker != nil {
		e.ticker.Cancel()
		e.ticker = nil
	}
	if e.settle != nil {
		e.settle.Cancel()
		e.settle = nil
	}
	stage, progress := e.stage, e.progress
	e.mu.Unlock()

	if stage != StageComplete {
		e.logger.Debug("loading disposed", "stage", stage.String(), "progress", progress)
	}
}

// FastForward drives clock, which must be the engine's scheduler, until the
// engine completes or is disposed. It returns the number of callbacks run.
// Every tick adds at least config.MinIncrementFloor, so a started engine
// always completes.
func (e *Engine) FastForward(clock *ManualClock) int {
	return clock.RunUntil(func() bool {
		s := e.Snapshot()
		return s.Stage == StageComplete || s.Disposed
	})
}

// Snapshot returns the current state.
func (e *Engine) Snapshot() Snapshot {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.snapshotLocked()
}

func (e *Engine) snapshotLocked() Snapshot {
	return Snapshot{
		Progress: e.progress,
		Phase:    e.phase,
		Stage:    e.stage,
		Ticks:    e.ticks,
		Disposed: e.disposed,
	}
}

func (e *Engine) notify(s Snapshot) {
	if e.opts.Observer != nil {
		e.opts.Observer(s)
	}
}
