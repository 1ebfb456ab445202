// Package theme centralizes terminal colors and styles so the status table
// and live view match the HTML dashboard palette.
package theme

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"

	"github.com/iCrack3x/agent-monitor/internal/health"
)

// EnvNoColor disables colored output when set.
const EnvNoColor = "AGENT_MONITOR_NO_COLOR"

// Bucket palette, kept in sync with the dashboard CSS.
const (
	ColorActive    = "#3fb950"
	ColorCompleted = "#58a6ff"
	ColorStuck     = "#f85149"
	ColorIdle      = "#8b949e"
)

var (
	Title  = lipgloss.NewStyle().Bold(true)
	Dim    = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorIdle))
	Border = lipgloss.NewStyle().Foreground(lipgloss.Color("#30363d"))

	active    = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorActive))
	completed = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorCompleted))
	stuck     = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorStuck)).Bold(true)
	idle      = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorIdle))
	plain     = lipgloss.NewStyle()
)

// ColorEnabled reports whether styled output should be produced: stdout must
// be a terminal with some color capability, and neither NO_COLOR nor the
// monitor's own disable flag may be set.
func ColorEnabled() bool {
	if os.Getenv(EnvNoColor) != "" || os.Getenv("NO_COLOR") != "" {
		return false
	}
	if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		return false
	}
	return termenv.ColorProfile() != termenv.Ascii
}

// StatusStyle returns the style for a status tag.
func StatusStyle(s health.Status) lipgloss.Style {
	if !ColorEnabled() {
		return plain
	}
	switch s {
	case health.StatusActive:
		return active
	case health.StatusCompleted:
		return completed
	case health.StatusStuck:
		return stuck
	default:
		return idle
	}
}
