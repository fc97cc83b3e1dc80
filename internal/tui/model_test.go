package tui

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/Iron-Ham/archives/internal/catalog"
	"github.com/Iron-Ham/archives/internal/config"
	"github.com/Iron-Ham/archives/internal/loading"
	"github.com/Iron-Ham/archives/internal/tabs"
	"github.com/Iron-Ham/archives/internal/tui/keymap"
	"github.com/Iron-Ham/archives/internal/tui/msg"
	"github.com/Iron-Ham/archives/internal/tui/view"
	tea "github.com/charmbracelet/bubbletea"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

// newBrowseModel returns an instant model that has finished loading and is
// sized width x height.
func newBrowseModel(t *testing.T, width, height int) *Model {
	t.Helper()
	m := NewModel(Options{Entries: catalog.Default().Entries(), Instant: true})
	m.Update(tea.WindowSizeMsg{Width: width, Height: height})

	cmd := m.Init()
	if cmd == nil {
		t.Fatal("instant Init did not report completion")
	}
	if _, ok := cmd().(msg.LoadingCompleteMsg); !ok {
		t.Fatal("Init command did not produce LoadingCompleteMsg")
	}
	m.Update(msg.LoadingCompleteMsg{})
	if m.Mode() != keymap.ModeBrowse {
		t.Fatalf("mode = %q after loading, want browse", m.Mode())
	}
	return m
}

// frames feeds n animation frames 50ms apart.
func frames(m *Model, n int) {
	at := m.lastFrame
	if at.IsZero() {
		at = time.Unix(1_700_000_000, 0)
	}
	for range n {
		at = at.Add(50 * time.Millisecond)
		m.Update(msg.FrameMsg(at))
	}
}

func TestModel_InstantLoading(t *testing.T) {
	m := newBrowseModel(t, 100, 30)
	snap := m.Snapshot()
	if snap.Stage != loading.StageComplete {
		t.Errorf("stage = %v, want complete", snap.Stage)
	}
	if snap.Progress != loading.MaxProgress {
		t.Errorf("progress = %v, want %v", snap.Progress, loading.MaxProgress)
	}
	if m.Document().Height() == 0 {
		t.Error("dossier not rendered after loading")
	}
}

func TestModel_InstantLoadingSmallIncrements(t *testing.T) {
	cfg := config.Default()
	cfg.Loading.MinIncrement = 0.01
	cfg.Loading.MaxIncrement = 0.02
	if errs := cfg.Validate(); len(errs) != 0 {
		t.Fatalf("Validate() = %v, want a valid config", errs)
	}

	m := NewModel(Options{Config: cfg, Entries: catalog.Default().Entries(), Instant: true})
	cmd := m.Init()
	if cmd == nil {
		t.Fatalf("Init did not report completion: %+v", m.Snapshot())
	}
	if _, ok := cmd().(msg.LoadingCompleteMsg); !ok {
		t.Fatal("Init command did not produce LoadingCompleteMsg")
	}
	if s := m.Snapshot(); s.Stage != loading.StageComplete || s.Ticks <= 1000 {
		t.Errorf("stage = %v after %d ticks, want complete after more than 1000", s.Stage, s.Ticks)
	}
}

func TestModel_LoadingScreen(t *testing.T) {
	clock := loading.NewManualClock()
	m := NewModel(Options{Entries: catalog.Default().Entries()})
	m.AttachScheduler(clock)

	if cmd := m.Init(); cmd != nil {
		t.Fatal("Init reported completion before any tick")
	}
	clock.Advance(400 * time.Millisecond)

	if got := m.View(); !strings.Contains(got, "SOVIET ARCHIVES") {
		t.Errorf("loading view missing title:\n%s", got)
	}
	if cmd := m.handleKey(runeKey('j')); cmd != nil {
		t.Error("scroll key acted during loading")
	}
	if m.Mode() != keymap.ModeLoading {
		t.Errorf("mode = %q, want loading", m.Mode())
	}
}

func TestModel_CompletesThroughDispatch(t *testing.T) {
	clock := loading.NewManualClock()
	m := NewModel(Options{Entries: catalog.Default().Entries()})
	m.AttachScheduler(clock)
	m.Init()

	clock.RunUntilIdle(1000)
	_, cmd := m.Update(msg.DispatchMsg{Fn: func() {}})
	if cmd == nil {
		t.Fatal("no completion command after the engine finished")
	}
	m.Update(cmd())
	if m.Mode() != keymap.ModeBrowse {
		t.Errorf("mode = %q, want browse", m.Mode())
	}

	// A second completion is ignored.
	m.Update(msg.LoadingCompleteMsg{})
	if m.Mode() != keymap.ModeBrowse {
		t.Errorf("mode = %q after duplicate completion", m.Mode())
	}
}

func TestModel_QuitDuringLoadingDisposes(t *testing.T) {
	clock := loading.NewManualClock()
	m := NewModel(Options{Entries: catalog.Default().Entries()})
	m.AttachScheduler(clock)
	m.Init()
	clock.Advance(200 * time.Millisecond)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	if cmd == nil {
		t.Fatal("quit returned no command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("quit command did not produce tea.QuitMsg")
	}
	if !m.Snapshot().Disposed {
		t.Error("engine not disposed on quit")
	}

	clock.RunUntilIdle(1000)
	if m.loaded {
		t.Error("completion fired after dispose")
	}
	if m.View() != "" {
		t.Error("View should be empty once quitting")
	}
}

func TestModel_ScrollRevealsAndStaysRevealed(t *testing.T) {
	m := newBrowseModel(t, 100, 20)
	entries := catalog.Default().Entries()
	last := view.CardKey(entries[len(entries)-1].ID)

	if m.Revealed(last) {
		t.Fatal("last card revealed before scrolling")
	}

	m.Update(runeKey('G'))
	if m.Offset() != m.maxOffset() {
		t.Errorf("offset = %d, want bottom %d", m.Offset(), m.maxOffset())
	}
	if !m.Revealed(last) {
		t.Fatal("last card not revealed at the bottom")
	}

	m.Update(runeKey('g'))
	if m.Offset() != 0 {
		t.Errorf("offset = %d after g, want 0", m.Offset())
	}
	if !m.Revealed(last) {
		t.Error("reveal reverted after scrolling away")
	}
	if !m.Revealed(view.SectionKey) {
		t.Error("section header passed on the way down was not revealed")
	}
}

func TestModel_ScrollKeys(t *testing.T) {
	m := newBrowseModel(t, 100, 21)
	half := m.viewport.Height / 2

	tests := []struct {
		name string
		key  tea.KeyMsg
		want int
	}{
		{"j", runeKey('j'), 1},
		{"down", tea.KeyMsg{Type: tea.KeyDown}, 2},
		{"k", runeKey('k'), 1},
		{"ctrl+d", tea.KeyMsg{Type: tea.KeyCtrlD}, 1 + half},
		{"ctrl+u", tea.KeyMsg{Type: tea.KeyCtrlU}, 1},
		{"pgdown", tea.KeyMsg{Type: tea.KeyPgDown}, 1 + m.viewport.Height},
		{"home", tea.KeyMsg{Type: tea.KeyHome}, 0},
		{"up at top", runeKey('k'), 0},
	}
	for _, tt := range tests {
		m.Update(tt.key)
		if m.Offset() != tt.want {
			t.Errorf("%s: offset = %d, want %d", tt.name, m.Offset(), tt.want)
		}
	}
}

func TestModel_MouseWheel(t *testing.T) {
	m := newBrowseModel(t, 100, 20)
	m.Update(tea.MouseMsg{Button: tea.MouseButtonWheelDown, Action: tea.MouseActionPress})
	if m.Offset() != wheelStep {
		t.Errorf("offset = %d after wheel down, want %d", m.Offset(), wheelStep)
	}
	m.Update(tea.MouseMsg{Button: tea.MouseButtonWheelUp, Action: tea.MouseActionPress})
	if m.Offset() != 0 {
		t.Errorf("offset = %d after wheel up, want 0", m.Offset())
	}
}

func TestModel_CardNavigation(t *testing.T) {
	m := newBrowseModel(t, 100, 20)

	m.Update(runeKey('n'))
	if m.Focus() != 0 {
		t.Fatalf("focus = %d after n, want 0", m.Focus())
	}
	r, _ := m.Document().CardRegion(0)
	if want := min(r.Top-1, m.maxOffset()); m.Offset() != want {
		t.Errorf("offset = %d, want card top %d", m.Offset(), want)
	}
	if !m.Revealed(view.CardKey(catalog.Default().Entries()[0].ID)) {
		t.Error("focused card not revealed")
	}

	m.Update(runeKey('n'))
	if m.Focus() != 1 {
		t.Errorf("focus = %d after second n, want 1", m.Focus())
	}
	m.Update(runeKey('n'))
	if m.Focus() != 1 {
		t.Errorf("focus = %d past the last card, want 1", m.Focus())
	}
	m.Update(runeKey('p'))
	if m.Focus() != 0 {
		t.Errorf("focus = %d after p, want 0", m.Focus())
	}

	m.Update(runeKey('j'))
	if m.Focus() != -1 {
		t.Errorf("focus = %d after manual scroll, want -1", m.Focus())
	}
}

func TestModel_TabSelection(t *testing.T) {
	m := newBrowseModel(t, 100, 30)
	m.Update(runeKey('n'))

	m.Update(runeKey('2'))
	c := m.Panel(0)
	if c.Active() != tabs.TabProfile {
		t.Fatalf("active = %v, want profile", c.Active())
	}
	if c.Displayed() != tabs.TabSpecs {
		t.Error("panel switched before the exit transition ran")
	}
	if m.Panel(1).Active() != tabs.TabSpecs {
		t.Error("selection leaked into another card")
	}

	frames(m, 20)
	if c.Displayed() != tabs.TabProfile || c.Animating() {
		t.Errorf("after 1s displayed = %v animating = %v", c.Displayed(), c.Animating())
	}
	if !strings.Contains(m.Document().String(), "ARMAMENT") {
		t.Error("profile panel not rendered")
	}

	m.Update(tea.KeyMsg{Type: tea.KeyTab})
	if c.Active() != tabs.TabSpecs {
		t.Errorf("tab toggle: active = %v, want specs", c.Active())
	}
}

func TestModel_InitialTab(t *testing.T) {
	m := NewModel(Options{Entries: catalog.Default().Entries(), Tab: tabs.TabProfile})
	for i := range m.panels {
		if m.Panel(i).Displayed() != tabs.TabProfile {
			t.Errorf("card %d starts on %v, want profile", i, m.Panel(i).Displayed())
		}
	}
}

func TestModel_FramesStopWhenIdle(t *testing.T) {
	m := newBrowseModel(t, 100, 30)
	if !m.framing {
		t.Fatal("hero intro did not start frames")
	}

	frames(m, 200)
	if m.animating() {
		t.Error("still animating after 10s")
	}
	if m.framing {
		t.Error("frame loop still running while idle")
	}
	if m.startFrames() != nil {
		t.Error("startFrames scheduled a frame with nothing to animate")
	}

	m.Update(runeKey('n'))
	m.Update(runeKey('2'))
	if !m.framing {
		t.Error("tab switch did not restart frames")
	}
}

func TestModel_FrameStepClamped(t *testing.T) {
	m := newBrowseModel(t, 100, 30)
	before := m.now
	at := time.Unix(1_700_000_000, 0)
	m.Update(msg.FrameMsg(at))
	m.Update(msg.FrameMsg(at.Add(time.Hour)))
	if got := m.now - before; got > 2*maxFrameStep {
		t.Errorf("clock advanced %v across a stall, want at most %v", got, 2*maxFrameStep)
	}
}

func TestModel_Help(t *testing.T) {
	m := newBrowseModel(t, 100, 30)

	m.Update(runeKey('?'))
	if m.Mode() != keymap.ModeHelp {
		t.Fatalf("mode = %q, want help", m.Mode())
	}
	if !strings.Contains(m.View(), "Scrolling") {
		t.Error("help overlay missing categories")
	}

	_, cmd := m.Update(runeKey('q'))
	if cmd != nil {
		t.Error("q in help should close help, not quit")
	}
	if m.Mode() != keymap.ModeBrowse {
		t.Errorf("mode = %q, want browse", m.Mode())
	}
}

func TestModel_Resize(t *testing.T) {
	m := newBrowseModel(t, 100, 30)
	m.Update(tea.WindowSizeMsg{Width: 60, Height: 12})

	if m.viewport.Width != 60 || m.viewport.Height != 11 {
		t.Errorf("viewport = %dx%d, want 60x11", m.viewport.Width, m.viewport.Height)
	}
	lines := strings.Split(m.View(), "\n")
	if len(lines) > 12 {
		t.Errorf("view has %d lines, want at most 12", len(lines))
	}
}

func TestModel_CatalogReload(t *testing.T) {
	m := newBrowseModel(t, 100, 20)
	m.Update(runeKey('n'))
	m.Update(runeKey('2'))
	first := m.Panel(0)

	all := catalog.Default().Entries()
	m.Update(msg.CatalogReloadedMsg{Entries: all[:1], Source: "test"})

	if got := len(m.Document().Cards); got != 1 {
		t.Fatalf("cards = %d after reload, want 1", got)
	}
	if m.Panel(0) != first || first.Active() != tabs.TabProfile {
		t.Error("surviving card lost its tab state")
	}
	if m.Revealed(view.CardKey(all[1].ID)) {
		t.Error("removed card still tracked")
	}

	m.Update(msg.CatalogReloadedMsg{Entries: all, Source: "test"})
	if got := len(m.Document().Cards); got != 2 {
		t.Fatalf("cards = %d after second reload, want 2", got)
	}
	if m.Panel(1).Active() != tabs.TabSpecs {
		t.Errorf("new card starts on %v, want specs", m.Panel(1).Active())
	}
}

func TestModel_CatalogReloadError(t *testing.T) {
	m := newBrowseModel(t, 100, 20)
	before := len(m.Document().Cards)

	_, cmd := m.Update(msg.CatalogReloadedMsg{Err: errors.New("malformed")})
	if cmd != nil {
		t.Error("failed reload returned a command")
	}
	if len(m.Document().Cards) != before {
		t.Error("failed reload replaced the dossier")
	}
}
