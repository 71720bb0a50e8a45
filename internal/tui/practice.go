package tui

import (
	"errors"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/verte-zerg/verbdrill/internal/grade"
	"github.com/verte-zerg/verbdrill/internal/model"
	"github.com/verte-zerg/verbdrill/internal/session"
	"github.com/verte-zerg/verbdrill/internal/verbs"
)

type verdictView struct {
	passed bool
	points int
	fields map[model.Field]model.FieldResult
}

func newVerdictView(v grade.Verdict) *verdictView {
	out := &verdictView{passed: v.Passed, points: v.Points, fields: map[model.Field]model.FieldResult{}}
	for _, f := range v.Fields {
		out.fields[f.Field] = f
	}
	return out
}

func newAnswerInput(placeholder string) textinput.Model {
	input := textinput.New()
	input.Prompt = ""
	input.Placeholder = placeholder
	input.CharLimit = 64
	input.Width = 24
	return input
}

func (m *Model) resetSlots() tea.Cmd {
	m.slots = m.slots[:0]
	for _, f := range m.opts.Tense.Fields() {
		if f == model.FieldPerfekt {
			m.slots = append(m.slots, slot{field: f, aux: true})
			m.slots = append(m.slots, slot{field: f, input: newAnswerInput("Partizip")})
			continue
		}
		m.slots = append(m.slots, slot{field: f, input: newAnswerInput(f.Label())})
	}
	m.aux = -1
	m.auxChoices[0], m.auxChoices[1] = verbs.AuxiliaryChoices(m.opts.Subject)
	return m.setFocus(0)
}

func (m *Model) setFocus(idx int) tea.Cmd {
	count := len(m.slots)
	if count == 0 {
		return nil
	}
	if idx < 0 {
		idx = count - 1
	}
	if idx >= count {
		idx = 0
	}
	m.focus = idx
	var cmd tea.Cmd
	for i := range m.slots {
		if i == m.focus && !m.slots[i].aux {
			cmd = m.slots[i].input.Focus()
		} else {
			m.slots[i].input.Blur()
		}
	}
	return cmd
}

func (m *Model) updatePractice(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		return m, tea.Quit
	case tea.KeyEnter:
		if m.ctrl.Answered() {
			return m, m.advance()
		}
		m.submit()
		return m, nil
	case tea.KeyTab, tea.KeyDown:
		return m, m.setFocus(m.focus + 1)
	case tea.KeyShiftTab, tea.KeyUp:
		return m, m.setFocus(m.focus - 1)
	}
	if m.ctrl.Answered() {
		return m, nil
	}
	if len(m.slots) > 0 && m.slots[m.focus].aux {
		switch msg.String() {
		case "left", "h", "1":
			m.aux = 0
		case "right", "l", "2":
			m.aux = 1
		case " ":
			m.aux = (m.aux + 1) % 2
		}
		return m, nil
	}
	return m.updateFocusedInput(msg)
}

func (m *Model) updateFocusedInput(msg tea.Msg) (tea.Model, tea.Cmd) {
	if len(m.slots) == 0 || m.slots[m.focus].aux || m.ctrl.Answered() {
		return m, nil
	}
	var cmd tea.Cmd
	m.slots[m.focus].input, cmd = m.slots[m.focus].input.Update(msg)
	return m, cmd
}

func (m *Model) submission() grade.Submission {
	var sub grade.Submission
	for _, s := range m.slots {
		if s.aux {
			continue
		}
		switch s.field {
		case model.FieldPraesens:
			sub.Praesens = s.input.Value()
		case model.FieldPraeteritum:
			sub.Praeteritum = s.input.Value()
		case model.FieldPerfekt:
			sub.Participle = s.input.Value()
		}
	}
	if m.aux >= 0 {
		sub.Auxiliary = m.auxChoices[m.aux]
	}
	return sub
}

func (m *Model) submit() {
	v, err := m.ctrl.Submit(m.submission())
	if err != nil {
		if !errors.Is(err, session.ErrAlreadySubmitted) {
			m.logger.Warn("submit failed", "err", err)
		}
		return
	}
	m.verdict = newVerdictView(v)
	for i := range m.slots {
		m.slots[i].input.Blur()
	}
	m.logger.Debug("answer graded", "passed", v.Passed, "points", v.Points)
}
