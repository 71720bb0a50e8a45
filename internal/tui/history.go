package tui

import (
	"context"

	"github.com/verte-zerg/verbdrill/internal/model"
	"github.com/verte-zerg/verbdrill/internal/session"
	"github.com/verte-zerg/verbdrill/internal/stats"
)

func (m *Model) finish() {
	sum, err := m.ctrl.Summary()
	if err != nil {
		m.logger.Error("failed to build summary", "err", err)
		return
	}
	m.summary = &sum
	if m.history == nil {
		return
	}

	endedAt := m.now()
	rec := model.DrillRecord{
		StartedAt:  m.startedAt,
		EndedAt:    endedAt,
		Mode:       string(m.opts.Mode),
		Subject:    string(m.opts.Subject),
		VerbType:   string(m.opts.Type),
		Items:      sum.Items,
		Score:      sum.Score,
		Total:      sum.Total,
		DurationMs: endedAt.Sub(m.startedAt).Milliseconds(),
	}
	if m.opts.Mode == session.ModeMeanings {
		rec.Direction = string(m.opts.Direction)
		rec.Subject = ""
	} else {
		rec.Tense = string(m.opts.Tense)
	}

	id, err := m.history.InsertDrill(context.Background(), rec, sum.Mistakes)
	if err != nil {
		m.logger.Warn("failed to save drill", "err", err)
		m.notice = "History not saved."
		return
	}
	m.logger.Debug("drill saved", "id", id, "score", sum.Score, "total", sum.Total)
	if pct, ok := stats.Accuracy(sum.Score, sum.Total); ok {
		m.lastPct = pct
		m.hasLast = true
		m.allScore += sum.Score
		m.allTotal += sum.Total
		m.allHasData = true
	}
}

func (m *Model) loadFooterStats() {
	if m.history == nil {
		return
	}
	drills, err := m.history.ListDrills(context.Background(), model.StatsConfig{Mode: string(m.opts.Mode)})
	if err != nil {
		m.logger.Warn("failed to load drill history", "err", err)
		return
	}
	for _, d := range drills {
		pct, ok := stats.Accuracy(d.Score, d.Total)
		if !ok {
			continue
		}
		m.lastPct = pct
		m.hasLast = true
		m.allScore += d.Score
		m.allTotal += d.Total
		m.allHasData = true
	}
}
