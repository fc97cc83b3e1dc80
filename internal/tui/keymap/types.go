// Package keymap provides key binding definitions and lookup for the TUI.
// Bindings are declared per mode so the model's Update method only has to
// translate a key into a Command and act on it.
package keymap

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// Mode represents the current input mode of the TUI.
// Different modes have different key bindings active.
type Mode string

const (
	ModeLoading Mode = "loading" // Progress simulation is running
	ModeBrowse  Mode = "browse"  // Scrolling the dossier
	ModeHelp    Mode = "help"    // Help overlay is open
)

// Command represents a named action that can be triggered by a key binding.
type Command string

// Scrolling
const (
	CmdScrollDown       Command = "scroll_down"
	CmdScrollUp         Command = "scroll_up"
	CmdScrollHalfPageDn Command = "scroll_half_page_down"
	CmdScrollHalfPageUp Command = "scroll_half_page_up"
	CmdScrollPageDown   Command = "scroll_page_down"
	CmdScrollPageUp     Command = "scroll_page_up"
	CmdScrollToTop      Command = "scroll_to_top"
	CmdScrollToBottom   Command = "scroll_to_bottom"
)

// Cards and tabs
const (
	CmdNextCard      Command = "next_card"
	CmdPrevCard      Command = "prev_card"
	CmdSelectSpecs   Command = "select_specs"
	CmdSelectProfile Command = "select_profile"
	CmdToggleTab     Command = "toggle_tab"
)

// Application
const (
	CmdToggleHelp Command = "toggle_help"
	CmdCloseHelp  Command = "close_help"
	CmdQuit       Command = "quit"
)

// Modifier represents keyboard modifiers (Ctrl, Alt, Shift).
type Modifier uint8

const (
	ModNone  Modifier = 0
	ModCtrl  Modifier = 1 << iota
	ModAlt
	ModShift
)

// String returns a human-readable representation of modifiers.
func (m Modifier) String() string {
	if m == ModNone {
		return ""
	}
	var b strings.Builder
	if m&ModCtrl != 0 {
		b.WriteString("ctrl+")
	}
	if m&ModAlt != 0 {
		b.WriteString("alt+")
	}
	if m&ModShift != 0 {
		b.WriteString("shift+")
	}
	return b.String()
}

// KeyBinding represents a single key binding configuration.
type KeyBinding struct {
	// KeyType is the key. Rune keys use tea.KeyRunes together with Rune.
	KeyType tea.KeyType

	// Rune is the character for rune-based keys (when KeyType is tea.KeyRunes).
	Rune rune

	// Modifiers contains the modifier keys that must be pressed.
	Modifiers Modifier

	// Command is the action to execute when this binding is triggered.
	Command Command

	// Description is a human-readable description for help display.
	Description string

	// Category groups related bindings together in help display.
	Category string
}

// Matches checks if a tea.KeyMsg matches this binding.
func (kb KeyBinding) Matches(msg tea.KeyMsg) bool {
	wantAlt := kb.Modifiers&ModAlt != 0
	if msg.Alt != wantAlt {
		return false
	}

	if kb.KeyType != tea.KeyRunes {
		return msg.Type == kb.KeyType
	}

	if msg.Type != tea.KeyRunes || len(msg.Runes) == 0 {
		return false
	}
	return msg.Runes[0] == kb.Rune
}

// String returns a human-readable representation of the key binding.
func (kb KeyBinding) String() string {
	prefix := kb.Modifiers.String()

	if kb.KeyType != tea.KeyRunes {
		return prefix + kb.KeyType.String()
	}
	if kb.Rune == ' ' {
		return prefix + "space"
	}
	return prefix + string(kb.Rune)
}

// ModeBindings holds all key bindings for a specific mode.
type ModeBindings struct {
	Mode     Mode
	Bindings []KeyBinding
}

// GetBinding looks up a command for a key in this mode.
func (mb *ModeBindings) GetBinding(msg tea.KeyMsg) (Command, bool) {
	for _, binding := range mb.Bindings {
		if binding.Matches(msg) {
			return binding.Command, true
		}
	}
	return "", false
}

// Keymap contains all key bindings organized by mode.
type Keymap struct {
	Name  string
	Modes map[Mode]*ModeBindings
}

// GetBinding looks up a command for a key in a specific mode.
// Returns the command and true if found, or empty command and false if not.
func (km *Keymap) GetBinding(msg tea.KeyMsg, mode Mode) (Command, bool) {
	mb, ok := km.Modes[mode]
	if !ok {
		return "", false
	}
	return mb.GetBinding(msg)
}

// GetModeBindings returns all bindings for a specific mode.
func (km *Keymap) GetModeBindings(mode Mode) []KeyBinding {
	mb, ok := km.Modes[mode]
	if !ok {
		return nil
	}
	return mb.Bindings
}

// GetBindingsForCommand returns all bindings that trigger a specific command.
func (km *Keymap) GetBindingsForCommand(cmd Command, mode Mode) []KeyBinding {
	var result []KeyBinding
	for _, binding := range km.GetModeBindings(mode) {
		if binding.Command == cmd {
			result = append(result, binding)
		}
	}
	return result
}

// KeysFor joins the keys bound to cmd, e.g. "j/down".
func (km *Keymap) KeysFor(cmd Command, mode Mode) string {
	bindings := km.GetBindingsForCommand(cmd, mode)
	keys := make([]string, 0, len(bindings))
	for _, b := range bindings {
		keys = append(keys, b.String())
	}
	return strings.Join(keys, "/")
}

// GetCategories returns all unique categories in a mode's bindings, in
// declaration order.
func (km *Keymap) GetCategories(mode Mode) []string {
	seen := make(map[string]bool)
	var categories []string

	for _, binding := range km.GetModeBindings(mode) {
		if binding.Category != "" && !seen[binding.Category] {
			seen[binding.Category] = true
			categories = append(categories, binding.Category)
		}
	}
	return categories
}

// GetBindingsByCategory returns bindings grouped by category for a mode.
func (km *Keymap) GetBindingsByCategory(mode Mode) map[string][]KeyBinding {
	mb, ok := km.Modes[mode]
	if !ok {
		return nil
	}

	result := make(map[string][]KeyBinding)
	for _, binding := range mb.Bindings {
		cat := binding.Category
		if cat == "" {
			cat = "Other"
		}
		result[cat] = append(result[cat], binding)
	}
	return result
}

var namedKeys = map[string]tea.KeyType{
	"enter":    tea.KeyEnter,
	"tab":      tea.KeyTab,
	"esc":      tea.KeyEsc,
	"escape":   tea.KeyEsc,
	"space":    tea.KeySpace,
	"up":       tea.KeyUp,
	"down":     tea.KeyDown,
	"left":     tea.KeyLeft,
	"right":    tea.KeyRight,
	"home":     tea.KeyHome,
	"end":      tea.KeyEnd,
	"pgup":     tea.KeyPgUp,
	"pageup":   tea.KeyPgUp,
	"pgdown":   tea.KeyPgDown,
	"pagedown": tea.KeyPgDown,
}

// ParseKeySpec parses a key specification string into KeyType, Rune, and Modifiers.
// Examples: "ctrl+d", "shift+tab", "j", "enter", "alt+left".
func ParseKeySpec(spec string) (keyType tea.KeyType, r rune, mods Modifier, err error) {
	remaining := spec
	for {
		if rest, ok := strings.CutPrefix(remaining, "ctrl+"); ok && rest != "" {
			mods |= ModCtrl
			remaining = rest
		} else if rest, ok := strings.CutPrefix(remaining, "alt+"); ok && rest != "" {
			mods |= ModAlt
			remaining = rest
		} else if rest, ok := strings.CutPrefix(remaining, "shift+"); ok && rest != "" {
			mods |= ModShift
			remaining = rest
		} else {
			break
		}
	}

	if remaining == "tab" && mods&ModShift != 0 {
		return tea.KeyShiftTab, 0, mods &^ ModShift, nil
	}
	if kt, ok := namedKeys[remaining]; ok {
		return kt, 0, mods, nil
	}

	runes := []rune(remaining)
	if len(runes) != 1 {
		return 0, 0, 0, fmt.Errorf("unrecognized key spec: %s", spec)
	}

	// ctrl+letter is its own key type in bubbletea
	if mods&ModCtrl != 0 {
		ch := runes[0]
		if ch < 'a' || ch > 'z' {
			return 0, 0, 0, fmt.Errorf("unrecognized key spec: %s", spec)
		}
		return tea.KeyCtrlA + tea.KeyType(ch-'a'), 0, mods &^ ModCtrl, nil
	}

	return tea.KeyRunes, runes[0], mods, nil
}
