package cli

import (
	"context"
	"fmt"
	"io"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
)

func newWatchCmd() *cobra.Command {
	var (
		outputPath   string
		pollInterval string
	)

	cmd := &cobra.Command{
		Use:     "watch",
		Aliases: []string{"w"},
		Short:   "Regenerate the dashboard continuously",
		Long: `Rerun the full generate pipeline on a schedule until interrupted.

Each pass is independent: fetch, classify, render, write, with no state
carried between runs. When the config points at a sessions_file, changes to
the store trigger a regenerate immediately; otherwise the poll interval
drives the loop.

Examples:
  agent-monitor watch
  agent-monitor watch --interval 10s`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			interval, err := cfg.WatchInterval()
			if err != nil {
				return err
			}
			if pollInterval != "" {
				interval, err = time.ParseDuration(pollInterval)
				if err != nil {
					return fmt.Errorf("parsing --interval: %w", err)
				}
				if interval <= 0 {
					return fmt.Errorf("--interval must be positive, got %s", interval)
				}
			}

			path := outputPath
			if path == "" {
				path = cfg.OutputPath
			}
			return runWatch(cmd.Context(), path, interval, cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}

	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "dashboard output path (default from config)")
	cmd.Flags().StringVar(&pollInterval, "interval", "", "poll interval (e.g. 10s; default from config)")
	return cmd
}

func runWatch(ctx context.Context, path string, interval time.Duration, out, errW io.Writer) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	regenerate := func() {
		if err := runGenerate(ctx, newSource(), path, io.Discard, errW); err != nil {
			fmt.Fprintf(errW, "Regenerate failed: %v\n", err)
			return
		}
		fmt.Fprintf(out, "[%s] dashboard updated: %s\n", time.Now().Format("15:04:05"), path)
	}

	fmt.Fprintf(out, "Watching sessions, writing %s every %s (Ctrl-C to stop)\n", path, interval)
	regenerate()

	// A store file gets an fsnotify trigger on top of the ticker, so edits
	// show up without waiting out the interval.
	var storeEvents <-chan fsnotify.Event
	if cfg.SessionsFile != "" {
		watcher, err := fsnotify.NewWatcher()
		if err != nil {
			fmt.Fprintf(errW, "Warning: file watching unavailable: %v\n", err)
		} else {
			defer watcher.Close()
			// Watch the directory: stores are typically replaced by rename,
			// which drops a watch set on the file itself.
			if err := watcher.Add(filepath.Dir(cfg.SessionsFile)); err != nil {
				fmt.Fprintf(errW, "Warning: cannot watch %s: %v\n", cfg.SessionsFile, err)
			} else {
				storeEvents = watcher.Events
			}
		}
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	// Debounce store events: editors and the OpenClaw daemon produce bursts.
	var pending *time.Timer
	var pendingC <-chan time.Time

	for {
		select {
		case <-ctx.Done():
			fmt.Fprintln(out, "Watch stopping...")
			return nil
		case <-ticker.C:
			regenerate()
		case ev := <-storeEvents:
			if filepath.Clean(ev.Name) != filepath.Clean(cfg.SessionsFile) {
				continue
			}
			if pending == nil {
				pending = time.NewTimer(500 * time.Millisecond)
				pendingC = pending.C
			} else {
				pending.Reset(500 * time.Millisecond)
			}
		case <-pendingC:
			pending = nil
			pendingC = nil
			regenerate()
		}
	}
}
