package tui

import (
	"strconv"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/verte-zerg/verbdrill/internal/model"
)

func (m *Model) updateMemorize(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	fields := m.opts.Tense.Fields()
	switch key := msg.String(); key {
	case "esc", "q":
		return m, tea.Quit
	case " ":
		all := m.allRevealed()
		for _, f := range fields {
			m.revealed[f] = !all
		}
	case "enter", "n", "right":
		return m, m.advance()
	default:
		if idx, err := strconv.Atoi(key); err == nil && idx >= 1 && idx <= len(fields) {
			f := fields[idx-1]
			m.revealed[f] = !m.revealed[f]
		}
	}
	return m, nil
}

func (m *Model) allRevealed() bool {
	for _, f := range m.opts.Tense.Fields() {
		if !m.revealed[f] {
			return false
		}
	}
	return true
}

func (m *Model) updateMeanings(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key := msg.String(); key {
	case "esc", "q":
		return m, tea.Quit
	case "enter", "n", "right":
		if m.choice != nil {
			return m, m.advance()
		}
	default:
		if m.choice != nil {
			return m, nil
		}
		idx, err := strconv.Atoi(key)
		if err != nil {
			return m, nil
		}
		res, err := m.ctrl.Choose(idx - 1)
		if err != nil {
			m.logger.Debug("choice rejected", "key", key, "err", err)
			return m, nil
		}
		m.choice = &res
	}
	return m, nil
}

// memorizeFields lists the fields shown on a flashcard.
func (m *Model) memorizeFields() []model.Field {
	return m.opts.Tense.Fields()
}
