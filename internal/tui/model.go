package tui

import (
	"time"

	"github.com/Iron-Ham/archives/internal/catalog"
	"github.com/Iron-Ham/archives/internal/config"
	"github.com/Iron-Ham/archives/internal/loading"
	"github.com/Iron-Ham/archives/internal/logging"
	"github.com/Iron-Ham/archives/internal/reveal"
	"github.com/Iron-Ham/archives/internal/tabs"
	"github.com/Iron-Ham/archives/internal/tui/keymap"
	"github.com/Iron-Ham/archives/internal/tui/msg"
	"github.com/Iron-Ham/archives/internal/tui/view"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Terminal size assumed until the first WindowSizeMsg arrives.
const (
	defaultWidth  = 80
	defaultHeight = 24
)

// maxFrameStep caps the clock advance of a single frame, so a stalled
// terminal does not skip whole animations.
const maxFrameStep = 250 * time.Millisecond

// Options configures a Model.
type Options struct {
	Config  *config.Config
	Entries []catalog.Entry
	// Images resolves card image references. Nil hides all images.
	Images  view.ImageSource
	Logger  *logging.Logger
	// Tab is the tab every card starts on.
	Tab     tabs.Tab
	// Instant fast-forwards the loading sequence.
	Instant bool
	Keymap  *keymap.Keymap

	// WatchPath, when set, is a catalog file reloaded into the dossier
	// whenever it changes. Only narrows reloaded entries by ID glob.
	WatchPath string
	Only      string
}

// Model is the Bubble Tea model of the showcase.
type Model struct {
	cfg     *config.Config
	logger  *logging.Logger
	keymap  *keymap.Keymap
	instant bool

	// Loading
	engine *loading.Engine
	clock  *loading.ManualClock
	loaded bool

	// Dossier
	entries  []catalog.Entry
	page     view.Page
	doc      view.Document
	observer *reveal.Observer
	panels   []*tabs.Controller
	timing   view.Timing
	focus    int
	tab      tabs.Tab
	images   view.ImageSource

	// Presentation
	mode     keymap.Mode
	viewport viewport.Model
	width    int
	height   int

	// Animation clock. now advances only while frames run.
	now       time.Duration
	browseAt  time.Duration
	animUntil time.Duration
	frame     int
	framing   bool
	lastFrame time.Time

	quitting bool

	loadingView *view.LoadingView
	helpBar     *view.HelpBarView
}

// NewModel creates a model in loading mode. A scheduler must be attached
// with AttachScheduler before the program starts.
func NewModel(opts Options) *Model {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Default()
	}
	logger := opts.Logger
	if logger == nil {
		logger = logging.NopLogger()
	}
	km := opts.Keymap
	if km == nil {
		km = keymap.DefaultKeymap()
	}

	panels := make([]*tabs.Controller, len(opts.Entries))
	for i := range panels {
		panels[i] = tabs.NewControllerAt(opts.Tab, cfg.Tabs.Transition())
	}

	m := &Model{
		cfg:         cfg,
		logger:      logger.WithComponent("tui"),
		keymap:      km,
		instant:     opts.Instant,
		entries:     opts.Entries,
		page:        view.BuildPage(opts.Entries, opts.Images),
		observer:    reveal.NewObserver(cfg.Reveal.MarginLines),
		panels:      panels,
		timing:      view.TimingFrom(cfg.Reveal),
		focus:       -1,
		tab:         opts.Tab,
		images:      opts.Images,
		mode:        keymap.ModeLoading,
		viewport:    viewport.New(defaultWidth, defaultHeight-1),
		width:       defaultWidth,
		height:      defaultHeight,
		loadingView: view.NewLoadingView(),
		helpBar:     view.NewHelpBarView(km),
	}
	m.viewport.MouseWheelEnabled = false
	return m
}

// AttachScheduler creates the loading engine on sched. A ManualClock is
// driven by the model itself when the model is instant.
func (m *Model) AttachScheduler(sched loading.Scheduler) {
	if clock, ok := sched.(*loading.ManualClock); ok {
		m.clock = clock
	}
	opts := loading.OptionsFrom(m.cfg.Loading)
	opts.Logger = m.logger
	m.engine = loading.New(sched, opts, func() { m.loaded = true })
}

// Dispose stops the loading engine. Safe to call more than once.
func (m *Model) Dispose() {
	if m.engine != nil {
		m.engine.Dispose()
	}
}

// Init starts the loading sequence.
func (m *Model) Init() tea.Cmd {
	if m.engine == nil {
		m.AttachScheduler(loading.NewManualClock())
		m.instant = true
	}
	if err := m.engine.Start(); err != nil {
		m.logger.Error("failed to start loading", "error", err)
	}
	if m.instant && m.clock != nil {
		m.engine.FastForward(m.clock)
	}
	return m.afterCallbacks()
}

// afterCallbacks reports completion once the engine has called back.
func (m *Model) afterCallbacks() tea.Cmd {
	if m.loaded && m.mode == keymap.ModeLoading {
		return msg.LoadingComplete()
	}
	return nil
}

// Update handles messages and updates the model.
func (m *Model) Update(message tea.Msg) (tea.Model, tea.Cmd) {
	switch message := message.(type) {
	case tea.WindowSizeMsg:
		return m, m.resize(message.Width, message.Height)

	case tea.KeyMsg:
		return m, m.handleKey(message)

	case tea.MouseMsg:
		return m, m.handleMouse(message)

	case msg.DispatchMsg:
		if message.Fn != nil {
			message.Fn()
		}
		return m, m.afterCallbacks()

	case msg.LoadingCompleteMsg:
		return m, m.enterBrowse()

	case msg.FrameMsg:
		return m, m.handleFrame(time.Time(message))

	case msg.CatalogReloadedMsg:
		return m, m.reload(message)

	case msg.ErrMsg:
		m.logger.Error("command failed", "error", message.Err)
		return m, nil
	}
	return m, nil
}

// enterBrowse leaves the loading screen for the dossier.
func (m *Model) enterBrowse() tea.Cmd {
	if m.mode != keymap.ModeLoading {
		return nil
	}
	m.mode = keymap.ModeBrowse
	m.browseAt = m.now
	m.logger.Info("dossier opened", "cards", len(m.page.Cards))
	m.layout()
	return tea.Batch(m.checkReveal(), m.startFrames())
}

// reload swaps in a catalog that changed on disk. Cards that survive keep
// their tab and reveal state; new cards start hidden.
func (m *Model) reload(r msg.CatalogReloadedMsg) tea.Cmd {
	if r.Err != nil {
		m.logger.Warn("catalog reload failed", "error", r.Err)
		return nil
	}

	byID := make(map[string]*tabs.Controller, len(m.entries))
	for i, e := range m.entries {
		byID[e.ID] = m.panels[i]
	}
	panels := make([]*tabs.Controller, len(r.Entries))
	for i, e := range r.Entries {
		if c, ok := byID[e.ID]; ok {
			panels[i] = c
			continue
		}
		panels[i] = tabs.NewControllerAt(m.tab, m.cfg.Tabs.Transition())
	}

	stale := make(map[string]bool, len(m.doc.Placements))
	for _, p := range m.doc.Placements {
		stale[p.Key] = true
	}

	m.entries = r.Entries
	m.panels = panels
	m.page = view.BuildPage(r.Entries, m.images)
	if m.focus >= len(m.entries) {
		m.focus = -1
	}
	m.logger.Info("catalog reloaded", "source", r.Source, "cards", len(m.entries))

	if m.mode == keymap.ModeLoading {
		return nil
	}
	m.layout()
	for _, p := range m.doc.Placements {
		delete(stale, p.Key)
	}
	for key := range stale {
		m.observer.Unobserve(key)
	}
	m.viewport.SetYOffset(min(m.viewport.YOffset, m.maxOffset()))
	return tea.Batch(m.checkReveal(), m.startFrames())
}

func (m *Model) resize(width, height int) tea.Cmd {
	m.width = width
	m.height = height
	m.viewport.Width = width
	m.viewport.Height = max(height-1, 1)
	if m.mode == keymap.ModeLoading {
		return nil
	}
	m.layout()
	return m.checkReveal()
}

// View renders the current mode.
func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	var body string
	switch m.mode {
	case keymap.ModeLoading:
		body = m.loadingView.Render(m.engine.Snapshot(), m.width, m.height-1)
	case keymap.ModeHelp:
		body = lipgloss.Place(m.width, m.height-1, lipgloss.Center, lipgloss.Center,
			m.helpBar.RenderOverlay(m.width))
	default:
		body = m.viewport.View()
	}
	return body + "\n" + m.helpBar.RenderHelp(m.helpState())
}

func (m *Model) helpState() *view.HelpBarState {
	state := &view.HelpBarState{
		Mode:    m.mode,
		Width:   m.width,
		Percent: int(m.viewport.ScrollPercent() * 100),
	}
	if i := m.currentCard(); i >= 0 {
		state.Card = m.entries[i].Name
		state.Tab = m.panels[i].Active()
	}
	return state
}

// Mode returns the current input mode.
func (m *Model) Mode() keymap.Mode { return m.mode }

// Focus returns the index of the focused card, or -1.
func (m *Model) Focus() int { return m.focus }

// Offset returns the scroll offset of the viewport.
func (m *Model) Offset() int { return m.viewport.YOffset }

// Document returns the last rendered document.
func (m *Model) Document() view.Document { return m.doc }

// Panel returns the tab controller of card i.
func (m *Model) Panel(i int) *tabs.Controller { return m.panels[i] }

// Revealed reports whether the element under key has entered the viewport.
func (m *Model) Revealed(key string) bool { return m.observer.Entered(key) }

// Snapshot returns the loading engine state.
func (m *Model) Snapshot() loading.Snapshot { return m.engine.Snapshot() }
