package msg

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Iron-Ham/archives/internal/catalog"
)

// Frame returns a command that sends a FrameMsg after interval.
func Frame(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return FrameMsg(t)
	})
}

// Dispatcher returns a dispatch function suitable for
// loading.NewTimerScheduler. Each callback is wrapped in a DispatchMsg and
// handed to send (normally tea.Program.Send).
func Dispatcher(send func(tea.Msg)) func(func()) {
	return func(fn func()) {
		send(DispatchMsg{Fn: fn})
	}
}

// LoadingComplete returns a command that reports the end of the loading
// sequence.
func LoadingComplete() tea.Cmd {
	return func() tea.Msg {
		return LoadingCompleteMsg{}
	}
}

// CatalogReloaded builds the message for a catalog watcher callback.
func CatalogReloaded(c *catalog.Catalog, err error) tea.Msg {
	if err != nil {
		return CatalogReloadedMsg{Err: err}
	}
	return CatalogReloadedMsg{Entries: c.Entries(), Source: c.Source()}
}
