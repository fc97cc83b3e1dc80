//go:build unix

package tui

import (
	"syscall"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

func TestRelaySignals_QuitsOnSignal(t *testing.T) {
	got := make(chan tea.Msg, 1)
	stop := relaySignals(func(m tea.Msg) { got <- m }, syscall.SIGUSR1)
	defer stop()

	if err := syscall.Kill(syscall.Getpid(), syscall.SIGUSR1); err != nil {
		t.Fatalf("Kill() error = %v", err)
	}
	select {
	case m := <-got:
		if _, ok := m.(tea.QuitMsg); !ok {
			t.Errorf("sent %T, want tea.QuitMsg", m)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("no quit message after the signal")
	}
}
