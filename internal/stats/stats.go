// Package stats contains statistics calculations and reporting.
package stats

import (
	"fmt"
	"io"
	"math"
	"strings"
	"time"

	"github.com/verte-zerg/verbdrill/internal/model"
)

const sparkChars = " .:-=+*#%@"

// Accuracy returns score/total as a percentage. Ungraded drills report
// ok=false.
func Accuracy(score, total int) (pct float64, ok bool) {
	if total <= 0 {
		return 0, false
	}
	return float64(score) / float64(total) * 100, true
}

// MovingAverage computes a rolling mean over the provided window size.
func MovingAverage(values []float64, window int) []float64 {
	if window <= 1 || len(values) == 0 {
		out := make([]float64, len(values))
		copy(out, values)
		return out
	}
	out := make([]float64, len(values))
	var sum float64
	for i := 0; i < len(values); i++ {
		sum += values[i]
		if i >= window {
			sum -= values[i-window]
		}
		den := float64(i + 1)
		if i >= window {
			den = float64(window)
		}
		out[i] = sum / den
	}
	return out
}

// Sparkline renders a single-line ASCII sparkline for the values.
func Sparkline(values []float64) string {
	if len(values) == 0 {
		return ""
	}
	minVal := values[0]
	maxVal := values[0]
	for _, v := range values[1:] {
		minVal = math.Min(minVal, v)
		maxVal = math.Max(maxVal, v)
	}
	if math.Abs(maxVal-minVal) < 1e-9 {
		return strings.Repeat(string(sparkChars[len(sparkChars)/2]), len(values))
	}
	var b strings.Builder
	for _, v := range values {
		pos := (v - minVal) / (maxVal - minVal)
		idx := int(math.Round(pos * float64(len(sparkChars)-1)))
		idx = max(0, min(idx, len(sparkChars)-1))
		b.WriteByte(sparkChars[idx])
	}
	return b.String()
}

// AccuracySeries returns per-drill accuracy for graded drills only.
func AccuracySeries(drills []model.DrillAggregate) []float64 {
	out := make([]float64, 0, len(drills))
	for _, d := range drills {
		if pct, ok := Accuracy(d.Score, d.Total); ok {
			out = append(out, pct)
		}
	}
	return out
}

// Totals summarizes a list of drills.
type Totals struct {
	Drills      int
	Graded      int
	Items       int
	AvgAccuracy float64
	BestDrill   float64
	Time        time.Duration
}

// Summarize computes Totals for drills.
func Summarize(drills []model.DrillAggregate) Totals {
	t := Totals{Drills: len(drills)}
	var accSum float64
	for _, d := range drills {
		t.Items += d.Items
		t.Time += time.Duration(d.DurationMs) * time.Millisecond
		if pct, ok := Accuracy(d.Score, d.Total); ok {
			t.Graded++
			accSum += pct
			t.BestDrill = math.Max(t.BestDrill, pct)
		}
	}
	if t.Graded > 0 {
		t.AvgAccuracy = accSum / float64(t.Graded)
	}
	return t
}

// RenderSummary prints a summary block for drills.
func RenderSummary(w io.Writer, drills []model.DrillAggregate) error {
	if len(drills) == 0 {
		_, err := fmt.Fprintln(w, "No drills found.")
		return err
	}
	t := Summarize(drills)
	if _, err := fmt.Fprintln(w, "Summary"); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Drills: %d (%d graded)\n", t.Drills, t.Graded); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Verbs drilled: %d\n", t.Items); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Avg Accuracy: %.2f%%\n", t.AvgAccuracy); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Best Drill: %.2f%%\n", t.BestDrill); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Time: %s\n", t.Time.Round(time.Second)); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, ""); err != nil {
		return err
	}
	return nil
}

// RenderCurve prints the moving-average accuracy as a sparkline.
func RenderCurve(w io.Writer, drills []model.DrillAggregate, window int) error {
	series := MovingAverage(AccuracySeries(drills), window)
	if len(series) == 0 {
		return nil
	}
	if _, err := fmt.Fprintf(w, "Accuracy Curve (window %d)\n", max(window, 1)); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "%5.1f%% |%s| %5.1f%%\n", series[0], Sparkline(series), series[len(series)-1]); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, ""); err != nil {
		return err
	}
	return nil
}

// RenderDrillTable prints one row per drill, newest first.
func RenderDrillTable(w io.Writer, drills []model.DrillAggregate) error {
	if len(drills) == 0 {
		return nil
	}
	headers := []string{"Ended", "Mode", "Tense", "Verbs", "Score", "Accuracy"}
	rows := make([][]string, 0, len(drills))
	for i := len(drills) - 1; i >= 0; i-- {
		rows = append(rows, DrillRow(drills[i]))
	}
	if _, err := fmt.Fprintln(w, "Drills"); err != nil {
		return err
	}
	for _, line := range formatTable(headers, rows, map[int]bool{3: true, 4: true, 5: true}) {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w, "")
	return err
}

// DrillRow formats a drill for table output.
func DrillRow(d model.DrillAggregate) []string {
	score, acc := "-", "-"
	if pct, ok := Accuracy(d.Score, d.Total); ok {
		score = fmt.Sprintf("%d/%d", d.Score, d.Total)
		acc = fmt.Sprintf("%.0f%%", pct)
	}
	tense := d.Tense
	if tense == "" {
		tense = "-"
	}
	return []string{
		d.EndedAt.Local().Format("2006-01-02 15:04"),
		d.Mode,
		tense,
		fmt.Sprintf("%d", d.Items),
		score,
		acc,
	}
}

// RenderMissedTable prints the most missed verbs.
func RenderMissedTable(w io.Writer, aggs []model.VerbAggregate) error {
	if len(aggs) == 0 {
		_, err := fmt.Fprintln(w, "No missed verbs.")
		return err
	}
	if _, err := fmt.Fprintln(w, "Most Missed Verbs"); err != nil {
		return err
	}
	headers, rows := MissedRows(aggs)
	for _, line := range formatTable(headers, rows, map[int]bool{2: true, 3: true, 4: true, 5: true, 6: true}) {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	if field, misses := WeakestField(aggs); misses > 0 {
		if _, err := fmt.Fprintf(w, "Weakest form: %s (%d misses)\n", field.Label(), misses); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w, "")
	return err
}

// MissedRows formats missed-verb aggregates as table rows.
func MissedRows(aggs []model.VerbAggregate) ([]string, [][]string) {
	headers := []string{"Verb", "Meaning", "Misses", "Präs", "Prät", "Perf", "Mean"}
	rows := make([][]string, 0, len(aggs))
	for _, a := range aggs {
		rows = append(rows, []string{
			a.Infinitive,
			a.Translation,
			fmt.Sprintf("%d", a.Misses),
			fmt.Sprintf("%d", a.Praesens),
			fmt.Sprintf("%d", a.Praeteritum),
			fmt.Sprintf("%d", a.Perfekt),
			fmt.Sprintf("%d", a.Meaning),
		})
	}
	return headers, rows
}
