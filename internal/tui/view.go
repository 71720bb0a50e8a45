package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/verbdrill/internal/model"
	"github.com/verte-zerg/verbdrill/internal/session"
	"github.com/verte-zerg/verbdrill/internal/verbs"
)

const labelWidth = 12

var (
	titleStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0")).Bold(true)
	subtleStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C"))
	correctStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#52C41A"))
	incorrectStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F"))
	accentStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A"))
	selectedStyle  = accentStyle.Bold(true)
	focusStyle     = accentStyle.Underline(true)
	footerStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
)

// View implements tea.Model.
func (m *Model) View() string {
	var content, help string
	switch {
	case m.ctrl.State() == session.StateSummary:
		content = m.renderSummary()
		help = "r restart · q quit"
	case m.opts.Mode == session.ModeMemorize:
		content = m.renderMemorize()
		help = "1-3 reveal · space all · enter next · q quit"
	case m.opts.Mode == session.ModeMeanings:
		content = m.renderMeanings()
		help = "1-4 choose · enter next · q quit"
	default:
		content = m.renderPractice()
		help = "tab field · ←/→ auxiliary · enter submit/next · esc quit"
	}
	if m.width == 0 || m.height == 0 {
		return content + "\n\n" + m.renderFooter() + "\n" + footerStyle.Render(help)
	}
	contentWidth := m.contentWidth()
	content = lipgloss.NewStyle().Width(contentWidth).Render(content)
	if m.height < 4 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
	}
	body := lipgloss.Place(m.width, m.height-2, lipgloss.Center, lipgloss.Center, content)
	footer := lipgloss.Place(m.width, 1, lipgloss.Center, lipgloss.Center, m.renderFooter())
	helpLine := lipgloss.Place(m.width, 1, lipgloss.Center, lipgloss.Center, footerStyle.Render(help))
	return body + "\n" + footer + "\n" + helpLine
}

func (m *Model) contentWidth() int {
	if m.width <= 0 {
		return 60
	}
	return max(20, int(float64(m.width)*0.70))
}

func (m *Model) renderHeader(v verbs.Verb) string {
	title := titleStyle.Render(v.Infinitive) + subtleStyle.Render("  "+v.Translation)
	kind := "regular"
	if v.Irregular {
		kind = "irregular"
	}
	return title + "\n" + subtleStyle.Render(fmt.Sprintf("%s · %s · %s", m.opts.Subject, tenseLabel(m.opts.Tense), kind))
}

func (m *Model) renderPractice() string {
	v, ok := m.ctrl.Current()
	if !ok {
		return ""
	}
	lines := []string{m.renderHeader(v), ""}
	for i := 0; i < len(m.slots); i++ {
		s := m.slots[i]
		label := padRight(s.field.Label(), labelWidth)
		if s.field != model.FieldPerfekt {
			lines = append(lines, label+s.input.View()+m.renderMark(s.field))
			continue
		}
		row := label + m.renderAux(i == m.focus && s.aux)
		if i+1 < len(m.slots) && m.slots[i+1].field == model.FieldPerfekt {
			i++
			row += "  " + m.slots[i].input.View()
		}
		lines = append(lines, row+m.renderMark(model.FieldPerfekt))
	}
	if m.verdict != nil {
		lines = append(lines, "")
		if m.verdict.passed {
			lines = append(lines, correctStyle.Render("Correct!"))
		} else {
			lines = append(lines, incorrectStyle.Render(fmt.Sprintf("%d of %d correct", m.verdict.points, len(m.opts.Tense.Fields()))))
		}
	}
	return strings.Join(lines, "\n")
}

func (m *Model) renderAux(focused bool) string {
	parts := make([]string, 2)
	for i, choice := range m.auxChoices {
		if i == m.aux {
			parts[i] = selectedStyle.Render("[" + choice + "]")
		} else {
			parts[i] = subtleStyle.Render(" " + choice + " ")
		}
	}
	prefix := " "
	if focused {
		prefix = focusStyle.Render("›")
	}
	return prefix + parts[0] + "/" + parts[1]
}

func (m *Model) renderMark(f model.Field) string {
	if m.verdict == nil {
		return ""
	}
	res, ok := m.verdict.fields[f]
	if !ok {
		return ""
	}
	if res.Correct {
		return "  " + correctStyle.Render("✓")
	}
	return "  " + incorrectStyle.Render("✗ "+res.Expected)
}

func (m *Model) renderMemorize() string {
	v, ok := m.ctrl.Current()
	if !ok {
		return ""
	}
	lines := []string{m.renderHeader(v), ""}
	for i, f := range m.memorizeFields() {
		answer := subtleStyle.Render("···")
		if m.revealed[f] {
			answer = accentStyle.Render(v.Template(f, m.opts.Subject))
		}
		lines = append(lines, fmt.Sprintf("%d %s%s", i+1, padRight(f.Label(), labelWidth+4), answer))
	}
	return strings.Join(lines, "\n")
}

func (m *Model) renderMeanings() string {
	r, err := m.ctrl.Round()
	if err != nil {
		return ""
	}
	lines := []string{
		subtleStyle.Render(r.Direction.Label()),
		titleStyle.Render(r.Prompt),
		"",
	}
	for i, choice := range r.Choices {
		text := fmt.Sprintf("%d) %s", i+1, choice)
		if m.choice != nil {
			switch {
			case i == r.Correct:
				text = correctStyle.Render(text)
			case i == m.choice.Chosen:
				text = incorrectStyle.Render(text)
			default:
				text = subtleStyle.Render(text)
			}
		}
		lines = append(lines, text)
	}
	if m.choice != nil {
		lines = append(lines, "")
		if m.choice.Correct {
			lines = append(lines, correctStyle.Render("Correct!"))
		} else {
			lines = append(lines, incorrectStyle.Render("Answer: "+m.choice.Answer))
		}
	}
	return strings.Join(lines, "\n")
}

func (m *Model) renderSummary() string {
	if m.summary == nil {
		return ""
	}
	s := m.summary
	lines := []string{titleStyle.Render("Drill complete"), ""}
	if s.Mode == session.ModeMemorize {
		lines = append(lines, fmt.Sprintf("Reviewed %d verbs", s.Items))
	} else {
		lines = append(lines, fmt.Sprintf("Score %d/%d (%d%%)", s.Score, s.Total, s.Percentage))
	}
	if len(s.Mistakes) > 0 {
		lines = append(lines, "", accentStyle.Render("Review"))
		lines = append(lines, mistakeLines(s.Mistakes, m.contentWidth())...)
	} else if s.Mode != session.ModeMemorize {
		lines = append(lines, correctStyle.Render("No mistakes."))
	}
	if m.notice != "" {
		lines = append(lines, "", incorrectStyle.Render(m.notice))
	}
	return strings.Join(lines, "\n")
}

func (m *Model) renderFooter() string {
	pos, total := m.ctrl.Progress()
	segments := []string{fmt.Sprintf("Verb %d/%d", pos, total)}
	if m.opts.Mode != session.ModeMemorize {
		segments = append(segments, fmt.Sprintf("Score %d", m.ctrl.Score()))
	}
	if m.hasLast {
		segments = append(segments, fmt.Sprintf("Last %.1f%%", m.lastPct))
	}
	if m.allHasData && m.allTotal > 0 {
		segments = append(segments, fmt.Sprintf("All-time %.1f%%", float64(m.allScore)/float64(m.allTotal)*100))
	}
	return footerStyle.Render(strings.Join(segments, "  "))
}

func tenseLabel(t verbs.Tense) string {
	if t == verbs.TenseAll {
		return "all tenses"
	}
	fields := t.Fields()
	if len(fields) == 1 {
		return fields[0].Label()
	}
	return string(t)
}

func padRight(s string, width int) string {
	if w := lipgloss.Width(s); w < width {
		return s + strings.Repeat(" ", width-w)
	}
	return s + " "
}
