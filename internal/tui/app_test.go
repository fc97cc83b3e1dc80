package tui

import (
	"sync"
	"syscall"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

type sentMsgs struct {
	mu   sync.Mutex
	msgs []tea.Msg
}

func (s *sentMsgs) send(m tea.Msg) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.msgs = append(s.msgs, m)
}

func (s *sentMsgs) len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.msgs)
}

func TestRelaySignals_StopEndsRelay(t *testing.T) {
	var sent sentMsgs
	stop := relaySignals(sent.send, syscall.SIGHUP)

	finished := make(chan struct{})
	go func() {
		stop()
		close(finished)
	}()
	select {
	case <-finished:
	case <-time.After(5 * time.Second):
		t.Fatal("stop did not return; relay goroutine still blocked")
	}
	if sent.len() != 0 {
		t.Errorf("sent %d messages without a signal, want 0", sent.len())
	}
}

func TestNew_KeepsModel(t *testing.T) {
	app := New(Options{Instant: true})
	if app.Model() == nil {
		t.Fatal("Model() = nil")
	}
	if app.Model().Mode() != "loading" {
		t.Errorf("mode = %q, want loading", app.Model().Mode())
	}
}
