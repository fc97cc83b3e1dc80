package msg

import (
	"time"

	"github.com/Iron-Ham/archives/internal/catalog"
)

// FrameMsg is sent on every animation frame while something is animating.
type FrameMsg time.Time

// DispatchMsg carries a scheduler callback onto the event loop so the
// loading engine is only ever mutated from the Update goroutine.
type DispatchMsg struct {
	Fn func()
}

// LoadingCompleteMsg signals that the loading sequence finished settling.
type LoadingCompleteMsg struct{}

// ErrMsg wraps an error to be displayed in the UI.
type ErrMsg struct {
	Err error
}

// CatalogReloadedMsg carries a catalog that changed on disk. Err is set
// when the new contents could not be used; the current dossier stays.
type CatalogReloadedMsg struct {
	Entries []catalog.Entry
	Source  string
	Err     error
}
