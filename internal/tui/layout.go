package tui

import (
	"time"

	"github.com/Iron-Ham/archives/internal/reveal"
	"github.com/Iron-Ham/archives/internal/tui/keymap"
	"github.com/Iron-Ham/archives/internal/tui/motion"
	"github.com/Iron-Ham/archives/internal/tui/msg"
	"github.com/Iron-Ham/archives/internal/tui/view"
	tea "github.com/charmbracelet/bubbletea"
)

// renderState collects the frame-dependent inputs of the dossier.
func (m *Model) renderState() view.RenderState {
	panels := make([]view.PanelState, len(m.panels))
	for i, c := range m.panels {
		panels[i] = view.PanelFrom(c)
	}
	return view.RenderState{
		Width:   m.width,
		Now:     m.now,
		Since:   m.now - m.browseAt,
		Offset:  m.viewport.YOffset,
		Frame:   m.frame,
		Reveals: m.observer,
		Panels:  panels,
		Focus:   m.focus,
		Timing:  m.timing,
	}
}

// layout re-renders the dossier into the viewport and moves every observed
// element to its new region. Content that shrank clamps the scroll offset.
func (m *Model) layout() {
	m.doc = view.Render(m.page, m.renderState())
	m.viewport.SetContent(m.doc.String())
	for _, p := range m.doc.Placements {
		m.observer.Observe(p.Key, p.Region)
	}
}

func (m *Model) visible() reveal.Viewport {
	return reveal.Viewport{Offset: m.viewport.YOffset, Height: m.viewport.Height}
}

// checkReveal flips every element that has entered the viewport and keeps
// frames running for their entrance.
func (m *Model) checkReveal() tea.Cmd {
	if m.mode == keymap.ModeLoading {
		return nil
	}
	flipped := m.observer.Check(m.visible(), m.now)
	if len(flipped) == 0 {
		return nil
	}
	m.logger.Debug("elements revealed", "count", len(flipped), "offset", m.viewport.YOffset)
	m.extendAnimation(m.revealWindow())
	m.layout()
	return m.startFrames()
}

// revealWindow is how long the entrance of a freshly revealed batch lasts.
func (m *Model) revealWindow() time.Duration {
	bars := time.Duration(0)
	rows := 0
	for _, card := range m.page.Cards {
		bars = max(bars, m.timing.BarStagger*time.Duration(len(card.Bars)))
		rows = max(rows, len(card.Rows()))
	}
	cards := m.timing.CardStagger*time.Duration(len(m.page.Cards)) + m.timing.CardDuration
	return max(cards, motion.CardDescription.End(), bars+m.timing.BarDuration, rowWindow(rows))
}

func rowWindow(rows int) time.Duration {
	return motion.SpecRowStep*time.Duration(rows) + motion.SpecRowDuration
}

func (m *Model) extendAnimation(d time.Duration) {
	m.animUntil = max(m.animUntil, m.now+d)
}

// animating reports whether anything on screen still changes with time.
func (m *Model) animating() bool {
	if m.mode == keymap.ModeLoading {
		return false
	}
	if m.now-m.browseAt < motion.HeroIntroEnd() || m.now < m.animUntil {
		return true
	}
	for _, c := range m.panels {
		if c.Animating() {
			return true
		}
	}
	return false
}

// startFrames starts the frame loop unless it is already running or there
// is nothing to animate.
func (m *Model) startFrames() tea.Cmd {
	if m.framing || !m.animating() {
		return nil
	}
	m.framing = true
	m.lastFrame = time.Time{}
	return msg.Frame(m.cfg.TUI.Frame())
}

func (m *Model) handleFrame(t time.Time) tea.Cmd {
	dt := m.cfg.TUI.Frame()
	if !m.lastFrame.IsZero() {
		dt = t.Sub(m.lastFrame)
	}
	m.lastFrame = t
	m.advance(min(max(dt, 0), maxFrameStep))

	cmd := m.checkReveal()
	if !m.animating() {
		m.framing = false
		return cmd
	}
	return tea.Batch(cmd, msg.Frame(m.cfg.TUI.Frame()))
}

// advance moves the animation clock and every tab transition by dt.
func (m *Model) advance(dt time.Duration) {
	m.now += dt
	m.frame++
	for _, c := range m.panels {
		c.Advance(dt)
	}
	if m.mode != keymap.ModeLoading {
		m.layout()
	}
}

// scrollTo moves the viewport and re-renders, since the hero fades with
// the scroll offset.
func (m *Model) scrollTo(offset int) tea.Cmd {
	m.viewport.SetYOffset(offset)
	m.layout()
	return m.checkReveal()
}

func (m *Model) scrollBy(delta int) tea.Cmd {
	return m.scrollTo(m.viewport.YOffset + delta)
}

func (m *Model) maxOffset() int {
	return max(m.doc.Height()-m.viewport.Height, 0)
}

// currentCard is the focused card, or else the card under the middle of
// the viewport, or -1.
func (m *Model) currentCard() int {
	if m.focus >= 0 {
		return m.focus
	}
	if m.mode == keymap.ModeLoading {
		return -1
	}
	return m.cardAt(m.viewport.YOffset + m.viewport.Height/2)
}

func (m *Model) cardAt(line int) int {
	for i, r := range m.doc.Cards {
		if line >= r.Top && line < r.Bottom() {
			return i
		}
	}
	return -1
}

// focusCard focuses card i and scrolls it to the top of the viewport.
func (m *Model) focusCard(i int) tea.Cmd {
	if len(m.page.Cards) == 0 {
		return nil
	}
	i = max(0, min(i, len(m.page.Cards)-1))
	m.focus = i
	m.layout()
	r, ok := m.doc.CardRegion(i)
	if !ok {
		return nil
	}
	m.logger.Debug("card focused", "card", m.entries[i].ID)
	return m.scrollTo(r.Top - 1)
}
