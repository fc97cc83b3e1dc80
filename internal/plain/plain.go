// Package plain renders the showcase without a terminal UI. It drives the
// same loading engine, reports its progress with a progress bar, and then
// prints the dossier with every element revealed and every animation
// finished. It is used when stdout is not a terminal or when the user asks
// for plain output.
package plain

import (
	"context"
	"io"
	"time"

	"github.com/schollz/progressbar/v3"

	"github.com/Iron-Ham/archives/internal/catalog"
	"github.com/Iron-Ham/archives/internal/config"
	"github.com/Iron-Ham/archives/internal/errors"
	"github.com/Iron-Ham/archives/internal/loading"
	"github.com/Iron-Ham/archives/internal/logging"
	"github.com/Iron-Ham/archives/internal/reveal"
	"github.com/Iron-Ham/archives/internal/tabs"
	"github.com/Iron-Ham/archives/internal/tui/view"
)

// DefaultWidth is the output width when none is given.
const DefaultWidth = 80

// settledAt is a clock reading past the end of every entrance animation.
const settledAt = time.Hour

// Options configures a plain run.
type Options struct {
	Config  *config.Config
	Entries []catalog.Entry
	// Images resolves card image references. Nil hides all images.
	Images view.ImageSource
	Logger *logging.Logger
	// Tab is the panel shown on every card.
	Tab tabs.Tab
	// Width is the output width. Zero means DefaultWidth.
	Width int
	// Instant skips the loading delays.
	Instant bool

	// Out receives the dossier.
	Out io.Writer
	// Progress receives the loading bar. Nil hides it.
	Progress io.Writer
}

// Run plays the loading sequence and writes the dossier to opts.Out. It
// returns ctx.Err() if the context ends before loading completes.
func Run(ctx context.Context, opts Options) error {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Default()
	}
	logger := opts.Logger
	if logger == nil {
		logger = logging.NopLogger()
	}
	logger = logger.WithComponent("plain")

	bar := newProgressBar(opts.Progress)
	engineOpts := loading.OptionsFrom(cfg.Loading)
	engineOpts.Logger = logger
	engineOpts.Observer = bar.update

	var err error
	if opts.Instant {
		err = loadInstant(engineOpts)
	} else {
		err = load(ctx, engineOpts)
	}
	if err != nil {
		return err
	}
	bar.finish()

	doc := Document(opts.Entries, opts.Images, opts.Tab, opts.Width, view.TimingFrom(cfg.Reveal))
	logger.Info("dossier written", "cards", len(opts.Entries), "lines", doc.Height())
	_, err = io.WriteString(opts.Out, doc.String()+"\n")
	return err
}

// load runs the engine on real timers. Callbacks are funneled into this
// goroutine so the engine sees them serialized.
func load(ctx context.Context, opts loading.Options) error {
	calls := make(chan func())
	stop := make(chan struct{})
	defer close(stop)

	sched := loading.NewTimerScheduler(func(fn func()) {
		select {
		case calls <- fn:
		case <-stop:
		}
	})

	done := make(chan struct{})
	engine := loading.New(sched, opts, func() { close(done) })
	defer engine.Dispose()
	if err := engine.Start(); err != nil {
		return errors.Wrap(err, "start loading")
	}

	for {
		select {
		case fn := <-calls:
			fn()
		case <-done:
			return nil
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

// loadInstant fast-forwards the engine on a manual clock.
func loadInstant(opts loading.Options) error {
	clock := loading.NewManualClock()
	completed := false
	engine := loading.New(clock, opts, func() { completed = true })
	defer engine.Dispose()
	if err := engine.Start(); err != nil {
		return errors.Wrap(err, "start loading")
	}
	engine.FastForward(clock)
	if !completed {
		return errors.New("loading did not complete")
	}
	return nil
}

// Document renders the dossier fully revealed, with every card on tab.
func Document(entries []catalog.Entry, images view.ImageSource, tab tabs.Tab, width int, timing view.Timing) view.Document {
	if width <= 0 {
		width = DefaultWidth
	}
	page := view.BuildPage(entries, images)

	panels := make([]view.PanelState, len(page.Cards))
	for i := range panels {
		panels[i] = view.PanelFrom(tabs.NewControllerAt(tab, 0))
	}

	observer := reveal.NewObserver(0)
	state := view.RenderState{
		Width:   width,
		Now:     settledAt,
		Since:   settledAt,
		Reveals: observer,
		Panels:  panels,
		Focus:   -1,
		Timing:  timing,
	}

	// The first pass only discovers what there is to reveal.
	for _, p := range view.Render(page, state).Placements {
		observer.Observe(p.Key, p.Region)
	}
	observer.RevealAll(0)
	return view.Render(page, state)
}

// progressBar reports engine snapshots on a progress bar.
type progressBar struct {
	bar *progressbar.ProgressBar
}

func newProgressBar(w io.Writer) *progressBar {
	if w == nil {
		return &progressBar{}
	}
	return &progressBar{
		bar: progressbar.NewOptions(int(loading.MaxProgress),
			progressbar.OptionSetWriter(w),
			progressbar.OptionSetDescription(loading.PhaseFor(0).String()),
			progressbar.OptionSetWidth(40),
			progressbar.OptionSetPredictTime(false),
			progressbar.OptionShowCount(),
			progressbar.OptionClearOnFinish(),
		),
	}
}

func (p *progressBar) update(s loading.Snapshot) {
	if p.bar == nil {
		return
	}
	p.bar.Describe(s.Phase.String())
	_ = p.bar.Set(int(s.Progress))
}

func (p *progressBar) finish() {
	if p.bar != nil {
		_ = p.bar.Finish()
	}
}
