// Package tui provides the Bubble Tea drill interface.
package tui

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/verte-zerg/verbdrill/internal/model"
	"github.com/verte-zerg/verbdrill/internal/session"
	"github.com/verte-zerg/verbdrill/internal/verbs"
)

// History stores finished drills. A nil History disables saving.
type History interface {
	InsertDrill(ctx context.Context, rec model.DrillRecord, mistakes []model.Mistake) (string, error)
	ListDrills(ctx context.Context, cfg model.StatsConfig) ([]model.DrillAggregate, error)
}

// slot is one answer position on the practice card. The auxiliary slot
// has no text input.
type slot struct {
	field model.Field
	aux   bool
	input textinput.Model
}

// Model implements the Bubble Tea drill UI.
type Model struct {
	ctrl    *session.Controller
	catalog *verbs.Catalog
	opts    session.Options
	history History
	logger  *slog.Logger
	now     func() time.Time

	width  int
	height int

	startedAt time.Time

	// practice
	slots      []slot
	focus      int
	aux        int
	auxChoices [2]string
	verdict    *verdictView

	// memorize
	revealed map[model.Field]bool

	// meanings
	choice *session.ChoiceResult

	summary *session.Summary
	notice  string

	lastPct    float64
	hasLast    bool
	allScore   int
	allTotal   int
	allHasData bool
}

// NewModel starts a drill and returns the UI for it.
func NewModel(ctrl *session.Controller, catalog *verbs.Catalog, opts session.Options, history History, logger *slog.Logger) (*Model, error) {
	if logger == nil {
		return nil, errors.New("logger is required")
	}
	m := &Model{
		ctrl:    ctrl,
		catalog: catalog,
		opts:    opts,
		history: history,
		logger:  logger,
		now:     time.Now,
	}
	if err := m.start(); err != nil {
		return nil, err
	}
	m.loadFooterStats()
	return m, nil
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		if m.ctrl.State() == session.StateSummary {
			return m.updateSummary(msg)
		}
		switch m.opts.Mode {
		case session.ModeMemorize:
			return m.updateMemorize(msg)
		case session.ModeMeanings:
			return m.updateMeanings(msg)
		default:
			return m.updatePractice(msg)
		}
	default:
		if m.opts.Mode == session.ModePractice && m.ctrl.State() == session.StateActive {
			return m.updateFocusedInput(msg)
		}
		return m, nil
	}
}

func (m *Model) updateSummary(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "esc":
		return m, tea.Quit
	case "r":
		if err := m.start(); err != nil {
			m.logger.Error("failed to restart drill", "err", err)
			return m, tea.Quit
		}
		return m, textinput.Blink
	}
	return m, nil
}

func (m *Model) start() error {
	if err := m.ctrl.Start(m.catalog, m.opts); err != nil {
		return err
	}
	m.startedAt = m.now()
	m.summary = nil
	m.notice = ""
	m.prepareItem()
	m.logger.Debug("drill started", "mode", m.opts.Mode, "tense", m.opts.Tense, "subject", m.opts.Subject)
	return nil
}

// advance moves the controller forward and either prepares the next item
// or finishes the drill.
func (m *Model) advance() tea.Cmd {
	if err := m.ctrl.Advance(); err != nil {
		m.logger.Warn("advance failed", "err", err)
		return nil
	}
	if m.ctrl.State() == session.StateSummary {
		m.finish()
		return nil
	}
	return m.prepareItem()
}

func (m *Model) prepareItem() tea.Cmd {
	m.verdict = nil
	m.choice = nil
	m.revealed = map[model.Field]bool{}
	if m.opts.Mode == session.ModePractice {
		return m.resetSlots()
	}
	return nil
}
