// Package statsui provides the Bubble Tea stats interface.
package statsui

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/verbdrill/internal/model"
	"github.com/verte-zerg/verbdrill/internal/session"
	"github.com/verte-zerg/verbdrill/internal/stats"
	"github.com/verte-zerg/verbdrill/internal/store"
)

const dateLayout = "2006-01-02"

const (
	tabOverview = iota
	tabDrills
	tabMissed
)

var (
	activeNavStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F0F0F0")).
			Bold(true).
			Padding(0, 1).
			Border(lipgloss.RoundedBorder(), true).
			BorderForeground(lipgloss.Color("#C89A3A"))
	inactiveNavStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#B0B0B0")).
				Padding(0, 1).
				Border(lipgloss.RoundedBorder(), true).
				BorderForeground(lipgloss.Color("#4A4A4A"))
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F"))
	cardStyle   = lipgloss.NewStyle().
			Padding(0, 1).
			Border(lipgloss.RoundedBorder(), true).
			BorderForeground(lipgloss.Color("#4A4A4A"))
	cardTitleStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C"))
	cardValueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0")).Bold(true)
	tableMutedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#B8B8B8"))
)

// Model implements the Bubble Tea stats UI.
type Model struct {
	store *store.Store
	cfg   model.StatsConfig

	report stats.Report
	errMsg string

	tabs      []string
	activeTab int
	overview  viewport.Model
	tables    map[int]*table.Model

	width  int
	height int

	filterMode   bool
	filterInputs []textinput.Model
	filterIndex  int
	filterError  string
}

// NewModel constructs a stats UI model.
func NewModel(st *store.Store, cfg model.StatsConfig) *Model {
	m := &Model{
		store:    st,
		cfg:      cfg,
		tabs:     []string{"Overview", "Drills", "Missed Verbs"},
		overview: viewport.New(0, 0),
	}
	drills := newTable(drillColumns())
	missed := newTable(missedColumns())
	m.tables = map[int]*table.Model{tabDrills: &drills, tabMissed: &missed}
	m.initInputs()
	m.refreshReport()
	return m
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateLayout()
		m.renderOverview()
		return m, nil
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		if m.filterMode {
			return m.updateFilter(msg)
		}
		switch msg.String() {
		case "q":
			return m, tea.Quit
		case "left", "h":
			m.moveTab(-1)
			return m, tea.ClearScreen
		case "right", "l":
			m.moveTab(1)
			return m, tea.ClearScreen
		case "=":
			m.cfg.CurveWindow = nextCurveWindow(m.cfg.CurveWindow)
			m.refreshReport()
			return m, nil
		case "-":
			m.cfg.CurveWindow = prevCurveWindow(m.cfg.CurveWindow)
			m.refreshReport()
			return m, nil
		case "/":
			return m.startFilter()
		case "g", "home":
			if t, ok := m.tables[m.activeTab]; ok {
				t.GotoTop()
			} else {
				m.overview.GotoTop()
			}
			return m, nil
		case "G", "end":
			if t, ok := m.tables[m.activeTab]; ok {
				t.GotoBottom()
			} else {
				m.overview.GotoBottom()
			}
			return m, nil
		}
		var cmd tea.Cmd
		if t, ok := m.tables[m.activeTab]; ok {
			*t, cmd = t.Update(msg)
			return m, cmd
		}
		m.overview, cmd = m.overview.Update(msg)
		return m, cmd
	}
	return m, nil
}

// View implements tea.Model.
func (m *Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	headerHeight, bodyHeight, footerHeight := m.layoutHeights()
	header := fitLines(m.renderHeader(), m.width, headerHeight)
	body := fitLines(m.renderBody(bodyHeight), m.width, bodyHeight)
	footer := fitLines(m.renderFooter(), m.width, footerHeight)
	return strings.Join([]string{header, body, footer}, "\n")
}

func newTable(cols []table.Column) table.Model {
	t := table.New(table.WithColumns(cols), table.WithHeight(1))
	t.SetStyles(tableStyles())
	return t
}

func drillColumns() []table.Column {
	return []table.Column{
		{Title: "Ended", Width: 16},
		{Title: "Mode", Width: 9},
		{Title: "Tense", Width: 10},
		{Title: "Verbs", Width: 5},
		{Title: "Score", Width: 7},
		{Title: "Accuracy", Width: 8},
	}
}

func missedColumns() []table.Column {
	return []table.Column{
		{Title: "Verb", Width: 12},
		{Title: "Meaning", Width: 18},
		{Title: "Misses", Width: 6},
		{Title: "Präs", Width: 4},
		{Title: "Prät", Width: 4},
		{Title: "Perf", Width: 4},
		{Title: "Mean", Width: 4},
	}
}

func tableStyles() table.Styles {
	styles := table.DefaultStyles()
	styles.Header = styles.Header.
		Border(lipgloss.NormalBorder(), false, false, true, false).
		BorderForeground(lipgloss.Color("#4A4A4A")).
		Foreground(lipgloss.Color("#C0C0C0")).
		Bold(true).
		Padding(0, 1).
		PaddingLeft(0)
	styles.Cell = styles.Cell.
		Padding(0, 1).
		PaddingLeft(0)
	styles.Selected = styles.Cell.
		Foreground(lipgloss.Color("#F0F0F0")).
		Bold(true)
	return styles
}

// filterField binds one settings prompt to the stats config field it edits.
type filterField struct {
	prompt string
	show   func(model.StatsConfig) string
	apply  func(*model.StatsConfig, string) error
}

var filterFields = []filterField{
	{
		prompt: "Mode: ",
		show:   func(c model.StatsConfig) string { return c.Mode },
		apply: func(c *model.StatsConfig, v string) error {
			c.Mode = ""
			if v == "" {
				return nil
			}
			mode, err := session.ParseMode(v)
			if err != nil {
				return err
			}
			c.Mode = string(mode)
			return nil
		},
	},
	{
		prompt: "Since (YYYY-MM-DD): ",
		show: func(c model.StatsConfig) string {
			if c.Since == nil {
				return ""
			}
			return c.Since.Format(dateLayout)
		},
		apply: func(c *model.StatsConfig, v string) error {
			c.Since = nil
			if v == "" {
				return nil
			}
			parsed, err := time.ParseInLocation(dateLayout, v, time.Local)
			if err != nil {
				return fmt.Errorf("invalid since date (expected YYYY-MM-DD)")
			}
			c.Since = &parsed
			return nil
		},
	},
	{
		prompt: "Last drills: ",
		show: func(c model.StatsConfig) string {
			if c.Last <= 0 {
				return ""
			}
			return strconv.Itoa(c.Last)
		},
		apply: func(c *model.StatsConfig, v string) error {
			c.Last = 0
			if v == "" {
				return nil
			}
			n, err := strconv.Atoi(v)
			if err != nil || n < 0 {
				return fmt.Errorf("invalid last value (use 0 or a positive integer)")
			}
			c.Last = n
			return nil
		},
	},
	{
		prompt: "Curve window: ",
		show:   func(c model.StatsConfig) string { return strconv.Itoa(c.CurveWindow) },
		apply: func(c *model.StatsConfig, v string) error {
			if v == "" {
				return nil
			}
			n, err := strconv.Atoi(v)
			if err != nil || n < 1 {
				return fmt.Errorf("invalid curve window (use an integer >= 1)")
			}
			c.CurveWindow = n
			return nil
		},
	},
}

func (m *Model) initInputs() {
	m.filterInputs = make([]textinput.Model, len(filterFields))
	for i, f := range filterFields {
		input := textinput.New()
		input.Prompt = f.prompt
		input.Cursor.SetMode(cursor.CursorBlink)
		m.filterInputs[i] = input
	}
	m.loadInputs()
}

func (m *Model) loadInputs() {
	for i, f := range filterFields {
		m.filterInputs[i].SetValue(f.show(m.cfg))
	}
}

func (m *Model) layoutHeights() (headerHeight, bodyHeight, footerHeight int) {
	tabsHeight := max(1, lipgloss.Height(activeNavStyle.Render("X")))
	headerHeight = tabsHeight + 1
	footerHeight = 1
	if !m.filterMode && m.errMsg != "" {
		footerHeight++
	}
	bodyHeight = max(1, m.height-headerHeight-footerHeight)
	return headerHeight, bodyHeight, footerHeight
}

func (m *Model) updateLayout() {
	if m.width <= 0 || m.height <= 0 {
		return
	}
	_, bodyHeight, _ := m.layoutHeights()
	m.overview.Width = m.width
	m.overview.Height = bodyHeight
	for _, t := range m.tables {
		t.SetWidth(m.width)
		t.SetHeight(max(1, bodyHeight-1))
	}
	for i := range m.filterInputs {
		promptWidth := lipgloss.Width(m.filterInputs[i].Prompt)
		m.filterInputs[i].Width = max(10, m.width-promptWidth-2)
	}
}

func (m *Model) moveTab(delta int) {
	count := len(m.tabs)
	m.activeTab = (m.activeTab + delta + count) % count
	for tab, t := range m.tables {
		if tab == m.activeTab {
			t.Focus()
		} else {
			t.Blur()
		}
	}
}

func (m *Model) refreshReport() {
	report, err := stats.BuildReport(context.Background(), m.store, m.cfg)
	if err != nil {
		m.errMsg = err.Error()
		m.overview.SetContent("Failed to load stats.")
		return
	}
	m.errMsg = ""
	m.report = report

	drillRows := make([]table.Row, 0, len(report.Drills))
	for i := len(report.Drills) - 1; i >= 0; i-- {
		drillRows = append(drillRows, table.Row(stats.DrillRow(report.Drills[i])))
	}
	m.tables[tabDrills].SetRows(drillRows)

	_, missed := stats.MissedRows(report.MissedAll)
	missedRows := make([]table.Row, 0, len(missed))
	for _, row := range missed {
		missedRows = append(missedRows, table.Row(row))
	}
	m.tables[tabMissed].SetRows(missedRows)

	m.updateLayout()
	m.renderOverview()
}

func (m *Model) renderOverview() {
	if m.errMsg != "" {
		return
	}
	width := m.width
	if width <= 0 {
		width = 80
	}
	m.overview.SetContent(renderOverview(m.report, m.cfg.CurveWindow, width))
}

func renderOverview(report stats.Report, window, width int) string {
	if len(report.Drills) == 0 {
		return "No drills found."
	}
	t := stats.Summarize(report.Drills)
	cards := []string{
		metricCard("Drills", fmt.Sprintf("%d", t.Drills)),
		metricCard("Verbs", fmt.Sprintf("%d", t.Items)),
		metricCard("Avg Acc", fmt.Sprintf("%.1f%%", t.AvgAccuracy)),
		metricCard("Best", fmt.Sprintf("%.1f%%", t.BestDrill)),
		metricCard("Time", t.Time.Round(time.Second).String()),
	}
	var summary string
	if width < 80 {
		summary = strings.Join(cards, "\n")
	} else {
		summary = lipgloss.JoinHorizontal(lipgloss.Top, cards...)
	}

	lines := []string{summary, ""}
	series := stats.MovingAverage(stats.AccuracySeries(report.Drills), window)
	if len(series) > 0 {
		spark := stats.Sparkline(resample(series, max(10, width-20)))
		lines = append(lines,
			headerStyle.Render(fmt.Sprintf("Accuracy (window %d)", max(window, 1))),
			fmt.Sprintf("%5.1f%% %s %5.1f%%", series[0], spark, series[len(series)-1]),
			"",
		)
	}
	if field, misses := stats.WeakestField(report.MissedWindow); misses > 0 {
		lines = append(lines, fmt.Sprintf("Weakest form (recent): %s, %d misses", field.Label(), misses))
	}
	if top := stats.TopMissed(report.MissedWindow, 5); len(top) > 0 {
		names := make([]string, len(top))
		for i, v := range top {
			names[i] = fmt.Sprintf("%s (%d)", v.Infinitive, v.Misses)
		}
		lines = append(lines, "Most missed (recent): "+strings.Join(names, ", "))
	}
	return strings.TrimRight(strings.Join(lines, "\n"), "\n")
}

// resample shrinks values to at most width points by averaging buckets.
func resample(values []float64, width int) []float64 {
	if width <= 0 || len(values) <= width {
		return values
	}
	out := make([]float64, width)
	for i := range out {
		start := i * len(values) / width
		end := max(start+1, (i+1)*len(values)/width)
		var sum float64
		for _, v := range values[start:end] {
			sum += v
		}
		out[i] = sum / float64(end-start)
	}
	return out
}

func metricCard(label, value string) string {
	content := fmt.Sprintf("%s\n%s", cardTitleStyle.Render(label), cardValueStyle.Render(value))
	return cardStyle.Render(content)
}

func (m *Model) renderTabs() string {
	parts := make([]string, 0, len(m.tabs))
	for i, tab := range m.tabs {
		if i == m.activeTab {
			parts = append(parts, activeNavStyle.Render(tab))
		} else {
			parts = append(parts, inactiveNavStyle.Render(tab))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

func (m *Model) renderHeader() string {
	mode := m.cfg.Mode
	if mode == "" {
		mode = "any"
	}
	since := "any"
	if m.cfg.Since != nil {
		since = m.cfg.Since.Format(dateLayout)
	}
	last := "all"
	if m.cfg.Last > 0 {
		last = strconv.Itoa(m.cfg.Last)
	}
	summary := fmt.Sprintf("Settings: mode=%s  since=%s  last=%s  window=%d", mode, since, last, m.cfg.CurveWindow)
	return m.renderTabs() + "\n" + headerStyle.Render(truncateLine(summary, m.width))
}

func (m *Model) renderFooter() string {
	if m.filterMode {
		return headerStyle.Render("tab/shift+tab: next field  enter: apply  esc: cancel")
	}
	help := headerStyle.Render("Nav: left/right  Scroll: up/down/pgup/pgdn  Window: -/=  Settings: /  Quit: q")
	if m.errMsg != "" {
		return help + "\n" + errorStyle.Render(m.errMsg)
	}
	return help
}

func (m *Model) renderBody(height int) string {
	if m.filterMode {
		lines := []string{"Settings (enter to apply, esc to cancel)"}
		for _, input := range m.filterInputs {
			lines = append(lines, input.View())
		}
		if m.filterError != "" {
			lines = append(lines, errorStyle.Render(m.filterError))
		}
		return fitLines(strings.Join(lines, "\n"), m.width, height)
	}
	switch m.activeTab {
	case tabDrills:
		if len(m.report.Drills) == 0 {
			return fitLines("No drills found.", m.width, height)
		}
		return fitLines(tableMutedStyle.Render(m.tables[tabDrills].View()), m.width, height)
	case tabMissed:
		if len(m.report.MissedAll) == 0 {
			return fitLines("No missed verbs.", m.width, height)
		}
		return fitLines(tableMutedStyle.Render(m.tables[tabMissed].View()), m.width, height)
	default:
		return fitLines(m.overview.View(), m.width, height)
	}
}

func (m *Model) startFilter() (tea.Model, tea.Cmd) {
	m.filterMode = true
	m.filterError = ""
	m.loadInputs()
	return m, m.setFilterIndex(0)
}

func (m *Model) updateFilter(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.filterMode = false
		m.filterError = ""
		return m, nil
	case tea.KeyEnter:
		cfg, err := parseFilter(m.filterInputs, m.cfg)
		if err != nil {
			m.filterError = err.Error()
			return m, nil
		}
		m.cfg = cfg
		m.filterMode = false
		m.filterError = ""
		m.refreshReport()
		return m, nil
	case tea.KeyTab:
		return m, m.setFilterIndex(m.filterIndex + 1)
	case tea.KeyShiftTab:
		return m, m.setFilterIndex(m.filterIndex - 1)
	}
	var cmd tea.Cmd
	m.filterInputs[m.filterIndex], cmd = m.filterInputs[m.filterIndex].Update(msg)
	return m, cmd
}

func (m *Model) setFilterIndex(idx int) tea.Cmd {
	count := len(m.filterInputs)
	m.filterIndex = (idx + count) % count
	var cmd tea.Cmd
	for i := range m.filterInputs {
		if i == m.filterIndex {
			cmd = m.filterInputs[i].Focus()
		} else {
			m.filterInputs[i].Blur()
		}
	}
	return cmd
}

// parseFilter applies the settings form to prev. On error prev is returned
// unchanged.
func parseFilter(inputs []textinput.Model, prev model.StatsConfig) (model.StatsConfig, error) {
	cfg := prev
	for i, f := range filterFields {
		if i >= len(inputs) {
			break
		}
		if err := f.apply(&cfg, strings.TrimSpace(inputs[i].Value())); err != nil {
			return prev, err
		}
	}
	return cfg, nil
}

func nextCurveWindow(n int) int {
	if n < 5 {
		return 5
	}
	return (n/5 + 1) * 5
}

func prevCurveWindow(n int) int {
	if n <= 5 {
		return 1
	}
	if n%5 == 0 {
		return n - 5
	}
	return (n / 5) * 5
}

func fitLines(s string, width, height int) string {
	if width <= 0 || height <= 0 {
		return s
	}
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		if w := lipgloss.Width(line); w < width {
			lines[i] = line + strings.Repeat(" ", width-w)
		}
	}
	if len(lines) > height {
		lines = lines[:height]
	}
	for len(lines) < height {
		lines = append(lines, strings.Repeat(" ", width))
	}
	return strings.Join(lines, "\n")
}

func truncateLine(s string, width int) string {
	if width <= 0 {
		return s
	}
	runes := []rune(s)
	if len(runes) <= width {
		return s
	}
	if width <= 3 {
		return string(runes[:width])
	}
	return string(runes[:width-3]) + "..."
}
