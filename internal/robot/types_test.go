package robot

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/iCrack3x/agent-monitor/internal/health"
)

func TestNewStatusOutput(t *testing.T) {
	now := time.Now().UnixMilli()
	records := []health.SessionRecord{
		{Key: "a", Label: "worker", TotalTokens: 1500, UpdatedAt: now - 3*60*1000}, // completed
		{Key: "b", TotalTokens: 0, UpdatedAt: now - 10*60*1000},                    // stuck
		{Key: "c", TotalTokens: 0, UpdatedAt: now - 3*60*1000},                     // idle
	}

	out := NewStatusOutput(health.BuildReport(records, now))

	if !out.Success {
		t.Error("Success = false")
	}
	if out.Total != 3 {
		t.Errorf("Total = %d, want 3", out.Total)
	}
	if out.Counts.Completed != 1 || out.Counts.Stuck != 1 || out.Counts.Idle != 1 || out.Counts.Active != 0 {
		t.Errorf("Counts = %+v", out.Counts)
	}

	if out.Completed[0].TokensDisplay != "1.5k" {
		t.Errorf("TokensDisplay = %q", out.Completed[0].TokensDisplay)
	}
	if out.Stuck[0].Label != "unnamed" {
		t.Errorf("Stuck[0].Label = %q, want default", out.Stuck[0].Label)
	}
}

func TestStatusOutputArraysNeverNull(t *testing.T) {
	out := NewStatusOutput(health.BuildReport(nil, time.Now().UnixMilli()))

	data, err := json.Marshal(out)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	for _, field := range []string{`"active":[]`, `"completed":[]`, `"stuck":[]`} {
		if !strings.Contains(string(data), field) {
			t.Errorf("output missing empty array %s in %s", field, data)
		}
	}
}

func TestErrorResponse(t *testing.T) {
	r := ErrorResponse(nil)
	if r.Success || r.Error != "" {
		t.Errorf("ErrorResponse(nil) = %+v", r)
	}
	if _, err := time.Parse(time.RFC3339, r.Timestamp); err != nil {
		t.Errorf("Timestamp %q not RFC3339: %v", r.Timestamp, err)
	}
}
