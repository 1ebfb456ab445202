// Package robot provides machine-readable JSON output for scripts and AI
// agents driving the monitor. Every response carries success and a UTC
// timestamp; arrays consumers iterate are always present, never null.
package robot

import (
	"encoding/json"
	"os"
	"time"

	"github.com/iCrack3x/agent-monitor/internal/health"
)

// Response is the common envelope embedded by every robot output type.
type Response struct {
	Success   bool   `json:"success"`
	Timestamp string `json:"timestamp"`
	Error     string `json:"error,omitempty"`
}

// NewResponse creates a success envelope stamped with the current time.
func NewResponse(success bool) Response {
	return Response{Success: success, Timestamp: FormatTimestamp(time.Now())}
}

// ErrorResponse creates a failure envelope carrying the error message.
func ErrorResponse(err error) Response {
	r := NewResponse(false)
	if err != nil {
		r.Error = err.Error()
	}
	return r
}

// FormatTimestamp renders a timestamp as RFC3339 UTC.
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

// SessionInfo is one classified session in robot output.
type SessionInfo struct {
	Key           string `json:"key,omitempty"`
	Label         string `json:"label"`
	Kind          string `json:"kind"`
	Model         string `json:"model"`
	Status        string `json:"status"`
	TotalTokens   int64  `json:"total_tokens"`
	TokensDisplay string `json:"tokens_display"`
	IdleDisplay   string `json:"idle_display"`
	UpdatedAt     int64  `json:"updated_at"`
}

// BucketCounts summarizes the report partition.
type BucketCounts struct {
	Active    int `json:"active"`
	Completed int `json:"completed"`
	Stuck     int `json:"stuck"`
	Idle      int `json:"idle"`
}

// StatusOutput is the response for `agent-monitor status --json`.
type StatusOutput struct {
	Response

	GeneratedAt       int64         `json:"generated_at"`
	Total             int           `json:"total"`
	Counts            BucketCounts  `json:"counts"`
	Active            []SessionInfo `json:"active"`
	Completed         []SessionInfo `json:"completed"`
	CompletedOverflow int           `json:"completed_overflow"`
	Stuck             []SessionInfo `json:"stuck"`
}

// NewStatusOutput builds the robot view of a report. Completed sessions are
// subject to the same display cut as the dashboard; the overflow count covers
// the rest.
func NewStatusOutput(r health.Report) StatusOutput {
	return StatusOutput{
		Response:    NewResponse(true),
		GeneratedAt: r.GeneratedAt,
		Total:       r.Total,
		Counts: BucketCounts{
			Active:    len(r.Active),
			Completed: len(r.Completed),
			Stuck:     len(r.Stuck),
			Idle:      r.IdleCount(),
		},
		Active:            toInfos(r.Active),
		Completed:         toInfos(r.CompletedShown()),
		CompletedOverflow: r.CompletedOverflow(),
		Stuck:             toInfos(r.Stuck),
	}
}

func toInfos(sessions []health.ClassifiedSession) []SessionInfo {
	infos := make([]SessionInfo, 0, len(sessions))
	for _, s := range sessions {
		infos = append(infos, SessionInfo{
			Key:           s.Key,
			Label:         s.Label,
			Kind:          s.Kind,
			Model:         s.Model,
			Status:        string(s.Status),
			TotalTokens:   s.TotalTokens,
			TokensDisplay: s.TokensDisplay(),
			IdleDisplay:   s.IdleDisplay(),
			UpdatedAt:     s.UpdatedAt,
		})
	}
	return infos
}

// PrintJSON writes v to stdout as indented JSON.
func PrintJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// MarshalIndent renders v as indented JSON.
func MarshalIndent(v any) ([]byte, error) {
	return json.MarshalIndent(v, "", "  ")
}
