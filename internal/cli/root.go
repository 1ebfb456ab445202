// Package cli implements the agent-monitor command tree.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/iCrack3x/agent-monitor/internal/config"
	"github.com/iCrack3x/agent-monitor/internal/health"
	"github.com/iCrack3x/agent-monitor/internal/openclaw"
	"github.com/iCrack3x/agent-monitor/internal/tui/theme"
)

var (
	cfgFile string
	cfg     *config.Config

	// Global output flags, inherited by all subcommands.
	jsonOutput bool
	noColor    bool

	// Build information - set via ldflags.
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// sourceTimeout bounds one fetch from the session registry.
const sourceTimeout = 30 * time.Second

var rootCmd = &cobra.Command{
	Use:   "agent-monitor",
	Short: "Health dashboard for OpenClaw sub-agents",
	Long: `agent-monitor polls the OpenClaw session registry, classifies each
session as active, completed, stuck, or idle, and renders a dashboard.

Quick Start:
  agent-monitor generate          # Write the HTML dashboard once
  agent-monitor status            # Print the report to the terminal
  agent-monitor watch             # Regenerate on an interval
  agent-monitor serve             # Serve the dashboard over HTTP
  agent-monitor top               # Live terminal view`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if noColor {
			os.Setenv(theme.EnvNoColor, "1")
		}
		var err error
		cfg, err = config.Load(cfgFile)
		return err
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default "+config.DefaultPath()+")")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "machine-readable JSON output")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colors")

	rootCmd.AddCommand(
		newGenerateCmd(),
		newStatusCmd(),
		newWatchCmd(),
		newServeCmd(),
		newTopCmd(),
		newVersionCmd(),
	)
}

// Execute runs the command tree.
func Execute() error {
	err := rootCmd.Execute()
	if err != nil && !jsonOutput {
		fmt.Fprintln(os.Stderr, "Error:", err)
	}
	return err
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintf(cmd.OutOrStdout(), "agent-monitor %s (commit %s, built %s)\n", Version, Commit, Date)
			return nil
		},
	}
}

// newSource picks the configured session source: the OpenClaw store file when
// one is set, the openclaw CLI otherwise.
func newSource() openclaw.Source {
	if cfg.SessionsFile != "" {
		return &openclaw.FileSource{Path: cfg.SessionsFile}
	}
	return &openclaw.CLISource{
		Bin:           cfg.OpenClawBin,
		ActiveMinutes: cfg.ActiveMinutes,
		Limit:         cfg.SessionLimit,
	}
}

// fetchRecords pulls sessions from the source. An unreachable source is not
// fatal: it degrades to an empty report with a warning on errW.
func fetchRecords(ctx context.Context, src openclaw.Source, errW io.Writer) []health.SessionRecord {
	ctx, cancel := context.WithTimeout(ctx, sourceTimeout)
	defer cancel()

	records, err := src.Sessions(ctx)
	if err != nil {
		fmt.Fprintf(errW, "Warning: session source unavailable: %v\n", err)
		return nil
	}
	return records
}
