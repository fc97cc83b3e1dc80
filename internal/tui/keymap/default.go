package keymap

// DefaultKeymap returns the key bindings of the showcase.
func DefaultKeymap() *Keymap {
	return &Keymap{
		Name: "default",
		Modes: map[Mode]*ModeBindings{
			ModeLoading: defaultLoadingBindings(),
			ModeBrowse:  defaultBrowseBindings(),
			ModeHelp:    defaultHelpBindings(),
		},
	}
}

// bind builds a binding from a key spec. The specs below are constants, so
// a parse failure is a programming error.
func bind(spec string, cmd Command, desc, category string) KeyBinding {
	kt, r, mods, err := ParseKeySpec(spec)
	if err != nil {
		panic(err)
	}
	return KeyBinding{KeyType: kt, Rune: r, Modifiers: mods, Command: cmd, Description: desc, Category: category}
}

// The loading sequence always runs to completion; the only way out is to quit.
func defaultLoadingBindings() *ModeBindings {
	return &ModeBindings{
		Mode: ModeLoading,
		Bindings: []KeyBinding{
			bind("q", CmdQuit, "Quit", "Application"),
			bind("ctrl+c", CmdQuit, "Quit", "Application"),
		},
	}
}

func defaultBrowseBindings() *ModeBindings {
	return &ModeBindings{
		Mode: ModeBrowse,
		Bindings: []KeyBinding{
			// Scrolling
			bind("j", CmdScrollDown, "Scroll down", "Scrolling"),
			bind("down", CmdScrollDown, "Scroll down", "Scrolling"),
			bind("k", CmdScrollUp, "Scroll up", "Scrolling"),
			bind("up", CmdScrollUp, "Scroll up", "Scrolling"),
			bind("ctrl+d", CmdScrollHalfPageDn, "Half page down", "Scrolling"),
			bind("ctrl+u", CmdScrollHalfPageUp, "Half page up", "Scrolling"),
			bind("pgdown", CmdScrollPageDown, "Page down", "Scrolling"),
			bind("ctrl+f", CmdScrollPageDown, "Page down", "Scrolling"),
			bind("pgup", CmdScrollPageUp, "Page up", "Scrolling"),
			bind("ctrl+b", CmdScrollPageUp, "Page up", "Scrolling"),
			bind("g", CmdScrollToTop, "Go to top", "Scrolling"),
			bind("home", CmdScrollToTop, "Go to top", "Scrolling"),
			bind("G", CmdScrollToBottom, "Go to bottom", "Scrolling"),
			bind("end", CmdScrollToBottom, "Go to bottom", "Scrolling"),

			// Dossiers
			bind("n", CmdNextCard, "Next aircraft", "Dossiers"),
			bind("p", CmdPrevCard, "Previous aircraft", "Dossiers"),
			bind("1", CmdSelectSpecs, "Technical specifications", "Dossiers"),
			bind("2", CmdSelectProfile, "War Thunder stats", "Dossiers"),
			bind("tab", CmdToggleTab, "Switch tab", "Dossiers"),

			// Application
			bind("?", CmdToggleHelp, "Toggle help", "Application"),
			bind("q", CmdQuit, "Quit", "Application"),
			bind("ctrl+c", CmdQuit, "Quit", "Application"),
		},
	}
}

func defaultHelpBindings() *ModeBindings {
	return &ModeBindings{
		Mode: ModeHelp,
		Bindings: []KeyBinding{
			bind("?", CmdCloseHelp, "Close help", "Application"),
			bind("esc", CmdCloseHelp, "Close help", "Application"),
			bind("q", CmdCloseHelp, "Close help", "Application"),
			bind("ctrl+c", CmdQuit, "Quit", "Application"),
		},
	}
}
