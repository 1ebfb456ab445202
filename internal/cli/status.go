package cli

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/iCrack3x/agent-monitor/internal/health"
	"github.com/iCrack3x/agent-monitor/internal/robot"
	"github.com/iCrack3x/agent-monitor/internal/tui/theme"
	"github.com/iCrack3x/agent-monitor/internal/util"
)

func newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "status",
		Aliases: []string{"st"},
		Short:   "Print the session health report to the terminal",
		Long: `Classify all sessions and print the three-bucket report.

With --json, emits the machine-readable envelope instead of tables.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			records := fetchRecords(cmd.Context(), newSource(), cmd.ErrOrStderr())
			report := health.BuildReport(records, time.Now().UnixMilli())

			if jsonOutput {
				return robot.PrintJSON(robot.NewStatusOutput(report))
			}
			printReport(cmd.OutOrStdout(), report)
			return nil
		},
	}
}

// labelWidth bounds the label column so one chatty session name cannot blow
// up the table on narrow terminals.
func labelWidth() int {
	width := 100
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
		width = w
	}
	w := width / 3
	if w < 12 {
		w = 12
	}
	return w
}

func printReport(w io.Writer, r health.Report) {
	fmt.Fprintf(w, "%s  %s\n\n",
		theme.Title.Render("Agent Health Monitor"),
		theme.Dim.Render(time.UnixMilli(r.GeneratedAt).Format("2006-01-02 15:04:05")))

	if r.Total == 0 {
		fmt.Fprintln(w, "No sessions found.")
		return
	}

	fmt.Fprintf(w, "%d tracked: %s active, %s completed, %s stuck, %d idle\n",
		r.Total,
		theme.StatusStyle(health.StatusActive).Render(fmt.Sprintf("%d", len(r.Active))),
		theme.StatusStyle(health.StatusCompleted).Render(fmt.Sprintf("%d", len(r.Completed))),
		theme.StatusStyle(health.StatusStuck).Render(fmt.Sprintf("%d", len(r.Stuck))),
		r.IdleCount())

	printBucket(w, "Active", health.StatusActive, r.Active, "")
	footer := ""
	if n := r.CompletedOverflow(); n > 0 {
		footer = fmt.Sprintf("... and %d more", n)
	}
	printBucket(w, "Completed", health.StatusCompleted, r.CompletedShown(), footer)
	printBucket(w, "Stuck", health.StatusStuck, r.Stuck, "")
}

func printBucket(w io.Writer, name string, status health.Status, sessions []health.ClassifiedSession, footer string) {
	if len(sessions) == 0 {
		return
	}

	maxLabel := labelWidth()
	table := NewStyledTable("Session", "Kind", "Model", "Idle", "Tokens").
		WithTitle(theme.StatusStyle(status).Render(name))
	for _, s := range sessions {
		table.AddRow(
			util.Truncate(s.Label, maxLabel),
			s.Kind,
			s.Model,
			s.IdleDisplay(),
			s.TokensDisplay(),
		)
	}
	if footer != "" {
		table.WithFooter(footer)
	}
	fmt.Fprintf(w, "\n%s\n", table.Render())
}
