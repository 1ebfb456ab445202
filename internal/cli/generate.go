package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/iCrack3x/agent-monitor/internal/dashboard"
	"github.com/iCrack3x/agent-monitor/internal/health"
	"github.com/iCrack3x/agent-monitor/internal/openclaw"
)

func newGenerateCmd() *cobra.Command {
	var outputPath string

	cmd := &cobra.Command{
		Use:     "generate",
		Aliases: []string{"gen"},
		Short:   "Generate the HTML dashboard once",
		Long: `Fetch sessions from the OpenClaw registry, classify them, and write
the HTML dashboard. One pass, no state: fetch, classify, render, write.

Examples:
  agent-monitor generate
  agent-monitor generate -o /var/www/agents/index.html`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := outputPath
			if path == "" {
				path = cfg.OutputPath
			}
			return runGenerate(cmd.Context(), newSource(), path, cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}

	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "dashboard output path (default from config)")
	return cmd
}

// runGenerate executes one full pipeline pass. Source failures degrade to an
// empty dashboard; render and write failures are returned to the caller.
func runGenerate(ctx context.Context, src openclaw.Source, path string, out, errW io.Writer) error {
	fmt.Fprintln(out, "Fetching agent sessions...")
	records := fetchRecords(ctx, src, errW)
	fmt.Fprintf(out, "Found %d sessions\n", len(records))

	report := health.BuildReport(records, time.Now().UnixMilli())

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("creating output directory: %w", err)
		}
	}
	if err := dashboard.WriteFile(path, report); err != nil {
		return err
	}

	fmt.Fprintf(out, "Dashboard generated: %s\n", path)
	fmt.Fprintf(out, "Stats: %d active, %d completed, %d stuck, %d idle\n",
		len(report.Active), len(report.Completed), len(report.Stuck), report.IdleCount())
	return nil
}
