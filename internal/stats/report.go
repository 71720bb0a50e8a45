package stats

import (
	"context"
	"io"

	"github.com/verte-zerg/verbdrill/internal/model"
	"github.com/verte-zerg/verbdrill/internal/store"
)

// Report contains precomputed data for stats rendering.
type Report struct {
	Drills         []model.DrillAggregate
	WindowDrillIDs []string
	MissedAll      []model.VerbAggregate
	MissedWindow   []model.VerbAggregate
}

// BuildReport loads and prepares data for stats rendering.
func BuildReport(ctx context.Context, st *store.Store, cfg model.StatsConfig) (Report, error) {
	drills, err := st.ListDrills(ctx, cfg)
	if err != nil {
		return Report{}, err
	}

	allIDs := drillIDs(drills)
	windowIDs := lastDrillIDs(drills, cfg.CurveWindow)
	missedAll, err := st.ListMissedVerbs(ctx, allIDs)
	if err != nil {
		return Report{}, err
	}
	missedWindow, err := st.ListMissedVerbs(ctx, windowIDs)
	if err != nil {
		return Report{}, err
	}

	return Report{
		Drills:         drills,
		WindowDrillIDs: windowIDs,
		MissedAll:      TopMissed(missedAll, topOrAll(cfg.TopMissed, len(missedAll))),
		MissedWindow:   TopMissed(missedWindow, topOrAll(cfg.TopMissed, len(missedWindow))),
	}, nil
}

// Render writes the plain-text report.
func (r Report) Render(w io.Writer, window int) error {
	if err := RenderSummary(w, r.Drills); err != nil {
		return err
	}
	if err := RenderCurve(w, r.Drills, window); err != nil {
		return err
	}
	if err := RenderDrillTable(w, r.Drills); err != nil {
		return err
	}
	if len(r.Drills) == 0 {
		return nil
	}
	return RenderMissedTable(w, r.MissedAll)
}

func topOrAll(top, n int) int {
	if top <= 0 {
		return n
	}
	return top
}

func drillIDs(drills []model.DrillAggregate) []string {
	ids := make([]string, len(drills))
	for i, d := range drills {
		ids[i] = d.DrillID
	}
	return ids
}

func lastDrillIDs(drills []model.DrillAggregate, window int) []string {
	if window <= 0 || len(drills) <= window {
		return drillIDs(drills)
	}
	return drillIDs(drills[len(drills)-window:])
}
