package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/spf13/cobra"

	"github.com/iCrack3x/agent-monitor/internal/dashboard"
	"github.com/iCrack3x/agent-monitor/internal/health"
	"github.com/iCrack3x/agent-monitor/internal/openclaw"
	"github.com/iCrack3x/agent-monitor/internal/robot"
)

func newServeCmd() *cobra.Command {
	var (
		host string
		port int
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the dashboard over HTTP",
		Long: `Serve the health dashboard. Every request runs a fresh classification
pass; there is no cache and no state between requests.

Endpoints:
  GET /              HTML dashboard
  GET /api/v1/report classification report as JSON
  GET /healthz       liveness probe`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if host == "" {
				host = cfg.Serve.Host
			}
			if port == 0 {
				port = cfg.Serve.Port
			}
			return runServe(cmd.Context(), newSource(), host, port, cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}

	cmd.Flags().StringVar(&host, "host", "", "bind address (default from config)")
	cmd.Flags().IntVar(&port, "port", 0, "listen port (default from config)")
	return cmd
}

func runServe(ctx context.Context, src openclaw.Source, host string, port int, out, errW io.Writer) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	server := &http.Server{
		Addr:              net.JoinHostPort(host, strconv.Itoa(port)),
		Handler:           newServeRouter(src, errW),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		fmt.Fprintf(out, "Serving dashboard on http://%s\n", server.Addr)
		errCh <- server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	case <-ctx.Done():
		fmt.Fprintln(out, "Server stopping...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	}
}

func newServeRouter(src openclaw.Source, errW io.Writer) http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.Recoverer)

	buildReport := func(ctx context.Context) health.Report {
		records := fetchRecords(ctx, src, errW)
		return health.BuildReport(records, time.Now().UnixMilli())
	}

	r.Get("/", func(w http.ResponseWriter, req *http.Request) {
		html, err := dashboard.Render(buildReport(req.Context()))
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write(html)
	})

	r.Get("/api/v1/report", func(w http.ResponseWriter, req *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		writeJSON(w, robot.NewStatusOutput(buildReport(req.Context())))
	})

	r.Get("/healthz", func(w http.ResponseWriter, req *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		fmt.Fprintln(w, "ok")
	})

	return r
}

func writeJSON(w http.ResponseWriter, v any) {
	data, err := robot.MarshalIndent(v)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Write(data)
}
