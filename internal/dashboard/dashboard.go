// Package dashboard renders the static HTML health dashboard from a
// classification report.
package dashboard

import (
	"bytes"
	"fmt"
	"html/template"
	"time"

	"github.com/iCrack3x/agent-monitor/internal/health"
	"github.com/iCrack3x/agent-monitor/internal/util"
)

var tmpl = template.Must(template.New("dashboard").Parse(dashboardTmpl))

// page is the fully derived view model; the template applies no further
// logic beyond iteration and emptiness checks.
type page struct {
	GeneratedAt string
	Total       int

	Active    []card
	Completed []card // truncated to the display limit
	Stuck     []card

	CompletedTotal    int
	CompletedOverflow int
}

// card carries presentation-ready strings for one session.
type card struct {
	Icon   string
	Label  string
	Kind   string
	Model  string
	Idle   string
	Tokens string
	Status health.Status
}

// StatusIcon returns the dashboard glyph for a status.
func StatusIcon(s health.Status) string {
	switch s {
	case health.StatusActive:
		return "🟢"
	case health.StatusCompleted:
		return "✅"
	case health.StatusStuck:
		return "⚠️"
	default:
		return "⚪"
	}
}

func toCards(sessions []health.ClassifiedSession) []card {
	cards := make([]card, 0, len(sessions))
	for _, s := range sessions {
		cards = append(cards, card{
			Icon:   StatusIcon(s.Status),
			Label:  s.Label,
			Kind:   s.Kind,
			Model:  s.Model,
			Idle:   s.IdleDisplay(),
			Tokens: s.TokensDisplay(),
			Status: s.Status,
		})
	}
	return cards
}

// Render produces the dashboard HTML for a report.
func Render(r health.Report) ([]byte, error) {
	p := page{
		GeneratedAt:       time.UnixMilli(r.GeneratedAt).Format("2006-01-02 15:04:05"),
		Total:             r.Total,
		Active:            toCards(r.Active),
		Completed:         toCards(r.CompletedShown()),
		Stuck:             toCards(r.Stuck),
		CompletedTotal:    len(r.Completed),
		CompletedOverflow: r.CompletedOverflow(),
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, p); err != nil {
		return nil, fmt.Errorf("rendering dashboard: %w", err)
	}
	return buf.Bytes(), nil
}

// WriteFile renders the report and writes it to path atomically.
func WriteFile(path string, r health.Report) error {
	html, err := Render(r)
	if err != nil {
		return err
	}
	return util.AtomicWriteFile(path, html, 0644)
}
