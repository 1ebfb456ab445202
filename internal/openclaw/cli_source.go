package openclaw

import (
	"context"
	"encoding/json"
	"fmt"
	"os/exec"
	"strconv"

	"github.com/iCrack3x/agent-monitor/internal/health"
)

// Defaults for the sessions query, matching what the dashboard has always
// asked the registry for.
const (
	DefaultActiveMinutes = 360
	DefaultLimit         = 20
)

// CLISource fetches sessions by running `openclaw sessions list --json`.
type CLISource struct {
	// Bin is the openclaw executable, "openclaw" if empty.
	Bin string
	// ActiveMinutes restricts the query to recently touched sessions.
	ActiveMinutes int
	// Limit caps how many sessions the registry returns.
	Limit int
}

// sessionJSON is the wire shape of one session in the CLI output. Absent
// fields decode to zero values; the core treats those via defaults.
type sessionJSON struct {
	Key         string `json:"key"`
	Label       string `json:"label"`
	Kind        string `json:"kind"`
	Model       string `json:"model"`
	TotalTokens int64  `json:"totalTokens"`
	UpdatedAt   int64  `json:"updatedAt"`
}

// Sessions runs the openclaw CLI and parses its JSON output. The context
// bounds the subprocess; a dead or missing binary surfaces as an error for
// the caller to degrade on.
func (s *CLISource) Sessions(ctx context.Context) ([]health.SessionRecord, error) {
	bin := s.Bin
	if bin == "" {
		bin = "openclaw"
	}
	activeMinutes := s.ActiveMinutes
	if activeMinutes <= 0 {
		activeMinutes = DefaultActiveMinutes
	}
	limit := s.Limit
	if limit <= 0 {
		limit = DefaultLimit
	}

	cmd := exec.CommandContext(ctx, bin,
		"sessions", "list",
		"--active-minutes", strconv.Itoa(activeMinutes),
		"--limit", strconv.Itoa(limit),
		"--json",
	)
	out, err := cmd.Output()
	if err != nil {
		return nil, fmt.Errorf("running %s sessions list: %w", bin, err)
	}
	return parseSessions(out)
}

// parseSessions decodes the `{"sessions": [...]}` envelope the CLI emits.
func parseSessions(data []byte) ([]health.SessionRecord, error) {
	var envelope struct {
		Sessions []sessionJSON `json:"sessions"`
	}
	if err := json.Unmarshal(data, &envelope); err != nil {
		return nil, fmt.Errorf("parsing sessions output: %w", err)
	}

	records := make([]health.SessionRecord, 0, len(envelope.Sessions))
	for _, s := range envelope.Sessions {
		records = append(records, health.SessionRecord{
			Key:         s.Key,
			Label:       s.Label,
			Kind:        s.Kind,
			Model:       s.Model,
			TotalTokens: s.TotalTokens,
			UpdatedAt:   s.UpdatedAt,
		})
	}
	return records, nil
}
