package tui

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/Iron-Ham/archives/internal/catalog"
	"github.com/Iron-Ham/archives/internal/errors"
	"github.com/Iron-Ham/archives/internal/loading"
	"github.com/Iron-Ham/archives/internal/tui/msg"
	tea "github.com/charmbracelet/bubbletea"
)

// App wraps the Bubbletea program
type App struct {
	program *tea.Program
	model   *Model
	opts    Options
}

// New creates a new TUI application
func New(opts Options) *App {
	return &App{
		model: NewModel(opts),
		opts:  opts,
	}
}

// Model returns the application model.
func (a *App) Model() *Model {
	return a.model
}

// Run starts the TUI application and blocks until it exits.
func (a *App) Run() error {
	// Loading callbacks must not outlive the program
	defer a.model.Dispose()

	programOpts := []tea.ProgramOption{tea.WithAltScreen()}
	if a.model.cfg.TUI.Mouse {
		programOpts = append(programOpts, tea.WithMouseCellMotion())
	}
	a.program = tea.NewProgram(a.model, programOpts...)

	if a.opts.Instant {
		a.model.AttachScheduler(loading.NewManualClock())
	} else {
		a.model.AttachScheduler(loading.NewTimerScheduler(msg.Dispatcher(a.program.Send)))
	}

	if a.opts.WatchPath != "" {
		w, err := catalog.Watch(a.opts.WatchPath, 0, func(c *catalog.Catalog, err error) {
			if err == nil {
				c, err = c.Filter(a.opts.Only)
			}
			a.program.Send(msg.CatalogReloaded(c, err))
		})
		if err != nil {
			return errors.Wrap(err, "watch catalog")
		}
		defer w.Stop()
	}

	stopSignals := relaySignals(a.program.Send, syscall.SIGINT, syscall.SIGTERM, syscall.SIGHUP)
	_, err := a.program.Run()
	stopSignals()

	return err
}

// relaySignals quits the program through send when one of sigs arrives.
// The returned func unregisters the signals and waits for the relay
// goroutine to exit.
func relaySignals(send func(tea.Msg), sigs ...os.Signal) (stop func()) {
	ctx, cancel := signal.NotifyContext(context.Background(), sigs...)
	stopped := make(chan struct{})
	done := make(chan struct{})

	go func() {
		defer close(done)
		select {
		case <-ctx.Done():
			send(tea.Quit())
		case <-stopped:
		}
	}()

	return func() {
		close(stopped)
		<-done
		cancel()
	}
}
