// Package msg defines the message types used by the TUI's Bubbletea event loop.
//
// This package contains the [tea.Msg] types the showcase model receives:
// animation frames, scheduler callbacks marshalled from timer goroutines,
// and the end of the loading sequence. Command factories that produce them
// live alongside the types.
package msg
