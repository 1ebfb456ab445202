package cli

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/iCrack3x/agent-monitor/internal/tui/top"
)

func newTopCmd() *cobra.Command {
	var refresh time.Duration

	cmd := &cobra.Command{
		Use:   "top",
		Short: "Live terminal view of agent health",
		Long: `Full-screen terminal view of the session buckets, refreshed on an
interval. Same classification pass as generate, rendered live.

Keys: q quit, r refresh now.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			m := top.New(top.Config{Source: newSource(), Refresh: refresh})
			p := tea.NewProgram(m, tea.WithAltScreen())
			if _, err := p.Run(); err != nil {
				return fmt.Errorf("running live view: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().DurationVar(&refresh, "refresh", 5*time.Second, "refresh interval")
	return cmd
}
