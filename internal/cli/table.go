package cli

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/iCrack3x/agent-monitor/internal/tui/theme"
)

// StyledTable renders a terminal table with box-drawing borders. Column
// widths track the widest cell, measured in display cells, not bytes.
type StyledTable struct {
	headers []string
	rows    [][]string
	widths  []int
	title   string
	footer  string
	style   lipgloss.Style
}

// NewStyledTable creates a table with the given headers.
func NewStyledTable(headers ...string) *StyledTable {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = runewidth.StringWidth(h)
	}
	return &StyledTable{headers: headers, widths: widths, style: theme.Border}
}

// WithTitle sets a title line above the table.
func (t *StyledTable) WithTitle(title string) *StyledTable {
	t.title = title
	return t
}

// WithFooter sets a footer line below the table.
func (t *StyledTable) WithFooter(footer string) *StyledTable {
	t.footer = footer
	return t
}

// AddRow appends a row, padding or dropping cells to the header count.
func (t *StyledTable) AddRow(cells ...string) *StyledTable {
	row := make([]string, len(t.headers))
	for i := range row {
		if i < len(cells) {
			row[i] = cells[i]
		}
		if w := runewidth.StringWidth(stripANSI(row[i])); w > t.widths[i] {
			t.widths[i] = w
		}
	}
	t.rows = append(t.rows, row)
	return t
}

// stripANSI removes escape sequences so styled cells measure correctly.
func stripANSI(s string) string {
	var b strings.Builder
	inSeq := false
	for _, r := range s {
		switch {
		case inSeq:
			if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') {
				inSeq = false
			}
		case r == '\x1b':
			inSeq = true
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

func (t *StyledTable) pad(s string, width int) string {
	gap := width - runewidth.StringWidth(stripANSI(s))
	if gap <= 0 {
		return s
	}
	return s + strings.Repeat(" ", gap)
}

func (t *StyledTable) rule(left, mid, right string) string {
	parts := make([]string, len(t.widths))
	for i, w := range t.widths {
		parts[i] = strings.Repeat("─", w+2)
	}
	return t.style.Render(left + strings.Join(parts, mid) + right)
}

func (t *StyledTable) line(cells []string) string {
	sep := t.style.Render("│")
	var b strings.Builder
	b.WriteString(sep)
	for i, c := range cells {
		b.WriteString(" " + t.pad(c, t.widths[i]) + " ")
		b.WriteString(sep)
	}
	return b.String()
}

// Render produces the full table as a string.
func (t *StyledTable) Render() string {
	var lines []string
	if t.title != "" {
		lines = append(lines, theme.Title.Render(t.title))
	}
	lines = append(lines, t.rule("╭", "┬", "╮"))

	styledHeaders := make([]string, len(t.headers))
	for i, h := range t.headers {
		styledHeaders[i] = theme.Title.Render(h)
	}
	lines = append(lines, t.line(styledHeaders))
	lines = append(lines, t.rule("├", "┼", "┤"))

	for _, row := range t.rows {
		lines = append(lines, t.line(row))
	}
	lines = append(lines, t.rule("╰", "┴", "╯"))

	if t.footer != "" {
		lines = append(lines, theme.Dim.Render(t.footer))
	}
	return strings.Join(lines, "\n")
}
