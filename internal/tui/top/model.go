// Package top implements the live terminal view: the classification pipeline
// rerun on a tick, rendered full-screen.
package top

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/muesli/reflow/truncate"

	"github.com/iCrack3x/agent-monitor/internal/health"
	"github.com/iCrack3x/agent-monitor/internal/openclaw"
	"github.com/iCrack3x/agent-monitor/internal/tui/theme"
)

// Config configures the live view.
type Config struct {
	Source  openclaw.Source
	Refresh time.Duration
}

type model struct {
	cfg Config

	width  int
	height int

	spin    spinner.Model
	loading bool

	report     health.Report
	haveReport bool
	err        error
	lastUpdate time.Time
}

type tickMsg time.Time

// reportMsg carries the result of one pipeline pass. Err and report are
// mutually exclusive; a failed fetch keeps the previous report on screen.
type reportMsg struct {
	report health.Report
	err    error
	at     time.Time
}

// New creates the live view model.
func New(cfg Config) tea.Model {
	if cfg.Refresh <= 0 {
		cfg.Refresh = 5 * time.Second
	}
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = theme.Dim
	return model{cfg: cfg, spin: sp, loading: true}
}

func (m model) Init() tea.Cmd {
	return tea.Batch(m.spin.Tick, m.refreshCmd(), tickCmd(m.cfg.Refresh))
}

func tickCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg { return tickMsg(t) })
}

// refreshCmd runs one fetch+classify pass off the update loop.
func (m model) refreshCmd() tea.Cmd {
	src := m.cfg.Source
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		at := time.Now()
		records, err := src.Sessions(ctx)
		if err != nil {
			return reportMsg{err: err, at: at}
		}
		return reportMsg{report: health.BuildReport(records, at.UnixMilli()), at: at}
	}
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		case "r":
			m.loading = true
			return m, m.refreshCmd()
		}
		return m, nil

	case tickMsg:
		m.loading = true
		return m, tea.Batch(m.refreshCmd(), tickCmd(m.cfg.Refresh))

	case reportMsg:
		m.loading = false
		m.lastUpdate = msg.at
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.err = nil
		m.report = msg.report
		m.haveReport = true
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m model) View() string {
	var b strings.Builder

	header := theme.Title.Render("Agent Health Monitor")
	if m.loading {
		header += "  " + m.spin.View()
	} else if !m.lastUpdate.IsZero() {
		header += "  " + theme.Dim.Render("updated "+m.lastUpdate.Format("15:04:05"))
	}
	b.WriteString(m.fit(header) + "\n")

	if m.err != nil {
		b.WriteString(m.fit(theme.StatusStyle(health.StatusStuck).Render("source unavailable: "+m.err.Error())) + "\n")
	}

	if !m.haveReport {
		b.WriteString(theme.Dim.Render("loading sessions...") + "\n")
		return b.String()
	}

	r := m.report
	b.WriteString(m.fit(fmt.Sprintf("%d tracked: %s active, %s completed, %s stuck, %d idle",
		r.Total,
		theme.StatusStyle(health.StatusActive).Render(fmt.Sprintf("%d", len(r.Active))),
		theme.StatusStyle(health.StatusCompleted).Render(fmt.Sprintf("%d", len(r.Completed))),
		theme.StatusStyle(health.StatusStuck).Render(fmt.Sprintf("%d", len(r.Stuck))),
		r.IdleCount())) + "\n")

	if r.Total == 0 {
		b.WriteString("\n" + theme.Dim.Render("No agents found. Run some sub-agents to see them here.") + "\n")
	} else {
		m.writeBucket(&b, "ACTIVE", health.StatusActive, r.Active, 0)
		m.writeBucket(&b, "COMPLETED", health.StatusCompleted, r.CompletedShown(), r.CompletedOverflow())
		m.writeBucket(&b, "STUCK", health.StatusStuck, r.Stuck, 0)
	}

	b.WriteString("\n" + theme.Dim.Render("q quit · r refresh") + "\n")
	return b.String()
}

func (m model) writeBucket(b *strings.Builder, name string, status health.Status, sessions []health.ClassifiedSession, overflow int) {
	if len(sessions) == 0 {
		return
	}
	b.WriteString("\n" + theme.StatusStyle(status).Render(name) + "\n")
	for _, s := range sessions {
		line := fmt.Sprintf("  %-24s %-10s %-16s idle %-6s %s tokens",
			s.Label, s.Kind, s.Model, s.IdleDisplay(), s.TokensDisplay())
		b.WriteString(m.fit(line) + "\n")
	}
	if overflow > 0 {
		b.WriteString(theme.Dim.Render(fmt.Sprintf("  ... and %d more", overflow)) + "\n")
	}
}

// fit clips a line to the terminal width, keeping styles intact.
func (m model) fit(s string) string {
	if m.width <= 0 {
		return s
	}
	return truncate.StringWithTail(s, uint(m.width), "…")
}
