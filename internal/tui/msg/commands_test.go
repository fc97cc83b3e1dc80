package msg

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Iron-Ham/archives/internal/catalog"
)

func TestDispatcher(t *testing.T) {
	var sent []tea.Msg
	dispatch := Dispatcher(func(m tea.Msg) { sent = append(sent, m) })

	ran := false
	dispatch(func() { ran = true })

	if ran {
		t.Fatal("callback ran before the event loop delivered it")
	}
	if len(sent) != 1 {
		t.Fatalf("sent %d messages, want 1", len(sent))
	}
	d, ok := sent[0].(DispatchMsg)
	if !ok {
		t.Fatalf("sent %T, want DispatchMsg", sent[0])
	}
	d.Fn()
	if !ran {
		t.Error("DispatchMsg.Fn did not run the callback")
	}
}

func TestLoadingComplete(t *testing.T) {
	if _, ok := LoadingComplete()().(LoadingCompleteMsg); !ok {
		t.Error("LoadingComplete did not produce LoadingCompleteMsg")
	}
}

func TestFrame(t *testing.T) {
	if Frame(0) == nil {
		t.Error("Frame returned nil command")
	}
}

func TestCatalogReloaded(t *testing.T) {
	got, ok := CatalogReloaded(catalog.Default(), nil).(CatalogReloadedMsg)
	if !ok {
		t.Fatal("CatalogReloaded did not produce CatalogReloadedMsg")
	}
	if len(got.Entries) != catalog.Default().Len() || got.Source != "builtin" || got.Err != nil {
		t.Errorf("got %d entries from %q, err %v", len(got.Entries), got.Source, got.Err)
	}

	failed := CatalogReloaded(nil, errors.New("boom")).(CatalogReloadedMsg)
	if failed.Err == nil || failed.Entries != nil {
		t.Errorf("failed reload = %+v", failed)
	}
}
