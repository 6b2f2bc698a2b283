package tui

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Veraticus/finance-dashboard/internal/common"
	"github.com/Veraticus/finance-dashboard/internal/tui/components"
	"github.com/Veraticus/finance-dashboard/internal/tui/themes"
	"github.com/Veraticus/finance-dashboard/internal/tui/viewmodel"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// ErrMissingSource is returned when the dashboard has nothing to read from.
var ErrMissingSource = errors.New("feed source is required")

// ErrMissingFormatter is returned when no formatter was configured.
var ErrMissingFormatter = errors.New("formatter is required")

// Model holds the dashboard state.
type Model struct {
	theme      themes.Theme
	ctx        context.Context
	loadedAt   time.Time
	source     FeedSource
	formatter  viewmodel.Formatter
	err        error
	cancel     context.CancelFunc
	loadCancel context.CancelFunc
	now        func() time.Time
	keymap     KeyMap
	help       help.Model
	config     Config
	view       viewmodel.DashboardView
	status     components.StatusModel
	table      components.TransactionTableModel
	cards      components.SummaryCardsModel
	generation int
	width      int
	height     int
	state      viewmodel.LoadState
	quitting   bool
}

// New creates a dashboard model. Its fetches are bound to ctx; cancelling ctx
// or quitting the dashboard abandons any fetch in flight.
func New(ctx context.Context, opts ...Option) (Model, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.Source == nil {
		return Model{}, ErrMissingSource
	}
	if cfg.Formatter == nil {
		return Model{}, ErrMissingFormatter
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}

	return newModel(ctx, cfg), nil
}

// newModel creates a new model with the given configuration.
func newModel(ctx context.Context, cfg Config) Model {
	lifetime, cancel := context.WithCancel(ctx)

	m := Model{
		state:     viewmodel.StateIdle,
		config:    cfg,
		keymap:    DefaultKeyMap(),
		help:      help.New(),
		theme:     cfg.Theme,
		source:    cfg.Source,
		formatter: cfg.Formatter,
		now:       cfg.Now,
		ctx:       lifetime,
		cancel:    cancel,
		cards:     components.NewSummaryCards(cfg.Theme),
		table:     components.NewTransactionTable(cfg.Theme),
		status:    components.NewStatus(cfg.Theme),
		width:     cfg.Width,
		height:    cfg.Height,
	}
	m.handleResize()

	return m
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return requestLoad
}

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if handled, cmd := m.handleGlobalKeys(msg); handled {
			return m, cmd
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.handleResize()

	case loadRequestMsg:
		return m, m.startLoad()

	case feedLoadedMsg:
		if !m.isCurrent(msg.generation) {
			return m, nil
		}
		m.handleFeedLoaded(msg)
		return m, nil

	case feedFailedMsg:
		if !m.isCurrent(msg.generation) {
			return m, nil
		}
		m.handleFeedFailed(msg)
		return m, nil
	}

	if m.state == viewmodel.StateLoading {
		var cmd tea.Cmd
		m.status, cmd = m.status.Update(msg)
		cmds = append(cmds, cmd)
	}

	if m.state == viewmodel.StateLoaded {
		var cmd tea.Cmd
		m.table, cmd = m.table.Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

// State reports the current load state.
func (m Model) State() viewmodel.LoadState {
	return m.state
}

// Err returns the error behind StateFailed.
func (m Model) Err() error {
	return m.err
}

// Dashboard returns the last successfully loaded view.
func (m Model) Dashboard() viewmodel.DashboardView {
	return m.view
}

// Close cancels the model's lifetime, abandoning any fetch in flight.
func (m Model) Close() {
	m.cancel()
}

// handleGlobalKeys handles keys that work in any state.
func (m *Model) handleGlobalKeys(msg tea.KeyMsg) (bool, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keymap.ForceQuit), key.Matches(msg, m.keymap.Quit):
		m.quitting = true
		m.cancel()
		return true, tea.Quit
	case key.Matches(msg, m.keymap.Refresh):
		return true, m.startLoad()
	case key.Matches(msg, m.keymap.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.handleResize()
		return true, nil
	case key.Matches(msg, m.keymap.ClearScreen):
		return true, tea.ClearScreen
	}
	return false, nil
}

// startLoad moves to StateLoading and issues a fetch. A fetch already in
// flight is cancelled and its result will be ignored.
func (m *Model) startLoad() tea.Cmd {
	if m.quitting {
		return nil
	}
	if m.loadCancel != nil {
		m.loadCancel()
	}

	m.generation++
	m.state = viewmodel.StateLoading
	m.err = nil

	ctx, cancel := context.WithCancel(m.ctx)
	m.loadCancel = cancel

	common.LogDebug("Loading transactions feed", common.Fields{
		"generation": m.generation,
		"source":     m.config.SourceLabel,
	})

	return tea.Batch(
		fetchFeed(ctx, m.source, m.formatter, m.now, m.generation),
		m.status.Tick(),
	)
}

// isCurrent reports whether a fetch result belongs to the latest load of a
// live dashboard.
func (m Model) isCurrent(generation int) bool {
	return !m.quitting && m.ctx.Err() == nil && generation == m.generation
}

func (m *Model) handleFeedLoaded(msg feedLoadedMsg) {
	m.finishLoad()

	m.state = viewmodel.StateLoaded
	m.view = msg.view
	m.loadedAt = msg.loadedAt
	m.cards.SetBalance(msg.view.Balance)
	m.table.SetRows(msg.view.Rows)

	income, outcome := msg.view.Counts()
	common.LogInfo("Transactions feed loaded", common.Fields{
		"transactions": len(msg.view.Rows),
		"income":       income,
		"outcome":      outcome,
		"duration":     msg.duration.String(),
	})
}

func (m *Model) handleFeedFailed(msg feedFailedMsg) {
	m.finishLoad()

	m.state = viewmodel.StateFailed
	m.err = msg.err

	common.LogError(msg.err, "Transactions feed failed", common.Fields{
		"generation": msg.generation,
		"source":     m.config.SourceLabel,
	})
}

func (m *Model) finishLoad() {
	if m.loadCancel != nil {
		m.loadCancel()
		m.loadCancel = nil
	}
}

// handleResize adjusts component sizes when the terminal resizes.
func (m *Model) handleResize() {
	m.cards.Resize(m.width)
	m.help.Width = m.width

	// header + cards (4) + spacing (2) + footer
	reserved := 1 + 4 + 2
	if m.config.ShowHelp {
		reserved += m.helpHeight()
	}
	m.table.Resize(m.width, m.height-reserved)
}

func (m Model) helpHeight() int {
	if m.help.ShowAll {
		return 5
	}
	return 1
}

// errorMessage is the text shown for StateFailed.
func (m Model) errorMessage() string {
	if m.err == nil {
		return "Could not load transactions"
	}
	return common.UserMessage(m.err)
}

// String implements fmt.Stringer for debugging.
func (m Model) String() string {
	return fmt.Sprintf("dashboard(state=%s, rows=%d, generation=%d)", m.state, len(m.view.Rows), m.generation)
}
