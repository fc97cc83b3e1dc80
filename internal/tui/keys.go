package tui

import (
	"github.com/Iron-Ham/archives/internal/tabs"
	"github.com/Iron-Ham/archives/internal/tui/keymap"
	tea "github.com/charmbracelet/bubbletea"
)

// Lines scrolled per mouse wheel notch.
const wheelStep = 3

// handleKey translates a key into a command for the current mode and runs it.
func (m *Model) handleKey(k tea.KeyMsg) tea.Cmd {
	cmd, ok := m.keymap.GetBinding(k, m.mode)
	if !ok {
		return nil
	}
	return m.execute(cmd)
}

func (m *Model) execute(cmd keymap.Command) tea.Cmd {
	half := max(m.viewport.Height/2, 1)
	page := max(m.viewport.Height, 1)

	switch cmd {
	case keymap.CmdQuit:
		m.quitting = true
		m.Dispose()
		m.logger.Info("quit", "mode", string(m.mode))
		return tea.Quit

	case keymap.CmdToggleHelp:
		m.mode = keymap.ModeHelp
		return nil
	case keymap.CmdCloseHelp:
		m.mode = keymap.ModeBrowse
		return nil

	case keymap.CmdScrollDown:
		return m.scroll(1)
	case keymap.CmdScrollUp:
		return m.scroll(-1)
	case keymap.CmdScrollHalfPageDn:
		return m.scroll(half)
	case keymap.CmdScrollHalfPageUp:
		return m.scroll(-half)
	case keymap.CmdScrollPageDown:
		return m.scroll(page)
	case keymap.CmdScrollPageUp:
		return m.scroll(-page)
	case keymap.CmdScrollToTop:
		m.focus = -1
		return m.scrollTo(0)
	case keymap.CmdScrollToBottom:
		m.focus = -1
		return m.scrollTo(m.maxOffset())

	case keymap.CmdNextCard:
		return m.focusCard(m.currentCard() + 1)
	case keymap.CmdPrevCard:
		cur := m.currentCard()
		if cur < 0 {
			cur = 1
		}
		return m.focusCard(cur - 1)

	case keymap.CmdSelectSpecs:
		return m.selectTab(func(c *tabs.Controller) { c.Select(tabs.TabSpecs) })
	case keymap.CmdSelectProfile:
		return m.selectTab(func(c *tabs.Controller) { c.Select(tabs.TabProfile) })
	case keymap.CmdToggleTab:
		return m.selectTab((*tabs.Controller).Toggle)
	}
	return nil
}

// scroll moves the viewport by delta lines. Manual scrolling drops the
// explicit focus; the card under the middle of the viewport takes over.
func (m *Model) scroll(delta int) tea.Cmd {
	m.focus = -1
	return m.scrollBy(delta)
}

// selectTab applies fn to the current card's tab controller.
func (m *Model) selectTab(fn func(*tabs.Controller)) tea.Cmd {
	i := m.currentCard()
	if i < 0 {
		return nil
	}
	c := m.panels[i]
	fn(c)
	m.focus = i
	m.logger.Debug("tab selected", "card", m.entries[i].ID, "tab", c.Active().String())

	rows := len(m.page.Cards[i].Rows())
	m.extendAnimation(2*m.cfg.Tabs.Transition() + rowWindow(rows))
	m.layout()
	return tea.Batch(m.checkReveal(), m.startFrames())
}

func (m *Model) handleMouse(mm tea.MouseMsg) tea.Cmd {
	if m.mode != keymap.ModeBrowse {
		return nil
	}
	switch mm.Button {
	case tea.MouseButtonWheelDown:
		return m.scroll(wheelStep)
	case tea.MouseButtonWheelUp:
		return m.scroll(-wheelStep)
	}
	return nil
}
