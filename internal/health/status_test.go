package health

import (
	"testing"
	"time"
)

func msAgo(now int64, d time.Duration) int64 {
	return now - d.Milliseconds()
}

func TestClassify(t *testing.T) {
	now := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC).UnixMilli()

	tests := []struct {
		name      string
		tokens    int64
		updatedAt int64
		want      Status
	}{
		{
			name:      "no output quiet over five minutes is stuck",
			tokens:    0,
			updatedAt: msAgo(now, 10*time.Minute),
			want:      StatusStuck,
		},
		{
			name:      "recent touch is active regardless of tokens",
			tokens:    0,
			updatedAt: msAgo(now, 1*time.Minute),
			want:      StatusActive,
		},
		{
			name:      "recent touch with output is active not completed",
			tokens:    12000,
			updatedAt: msAgo(now, 30*time.Second),
			want:      StatusActive,
		},
		{
			name:      "output and quiet is completed",
			tokens:    500,
			updatedAt: msAgo(now, 3*time.Minute),
			want:      StatusCompleted,
		},
		{
			name:      "output and very quiet is still completed",
			tokens:    500,
			updatedAt: msAgo(now, 2*time.Hour),
			want:      StatusCompleted,
		},
		{
			name:      "no output quiet three minutes is idle",
			tokens:    0,
			updatedAt: msAgo(now, 3*time.Minute),
			want:      StatusIdle,
		},
		{
			name:      "missing timestamp with no tokens is stuck",
			tokens:    0,
			updatedAt: 0,
			want:      StatusStuck,
		},
		{
			name:      "missing timestamp with tokens is completed",
			tokens:    42,
			updatedAt: 0,
			want:      StatusCompleted,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := SessionRecord{TotalTokens: tt.tokens, UpdatedAt: tt.updatedAt}
			if got := Classify(rec, now); got != tt.want {
				t.Errorf("Classify(tokens=%d, idle=%v) = %q, want %q",
					tt.tokens, IdleMinutes(rec, now), got, tt.want)
			}
		})
	}
}

func TestClassifyBoundaries(t *testing.T) {
	now := int64(1_760_000_000_000)

	// Exactly 5 minutes idle with no tokens: not > 5, so not stuck.
	rec := SessionRecord{TotalTokens: 0, UpdatedAt: msAgo(now, 5*time.Minute)}
	if got := Classify(rec, now); got != StatusIdle {
		t.Errorf("idle exactly 5m with no tokens = %q, want %q", got, StatusIdle)
	}

	// Just over 5 minutes: stuck. The comparison must not round.
	rec.UpdatedAt = msAgo(now, 5*time.Minute+time.Second)
	if got := Classify(rec, now); got != StatusStuck {
		t.Errorf("idle 5m1s with no tokens = %q, want %q", got, StatusStuck)
	}

	// Exactly 2 minutes idle: not < 2, so not active.
	rec = SessionRecord{TotalTokens: 100, UpdatedAt: msAgo(now, 2*time.Minute)}
	if got := Classify(rec, now); got != StatusCompleted {
		t.Errorf("idle exactly 2m with tokens = %q, want %q", got, StatusCompleted)
	}

	// Just under 2 minutes: active.
	rec.UpdatedAt = msAgo(now, 2*time.Minute-time.Second)
	if got := Classify(rec, now); got != StatusActive {
		t.Errorf("idle 1m59s with tokens = %q, want %q", got, StatusActive)
	}
}

func TestClassifyPrecedence(t *testing.T) {
	now := int64(1_760_000_000_000)

	// tokens=0 and idle=1m matches the active rule only because the stuck
	// rule fails first; the order of evaluation is load-bearing.
	rec := SessionRecord{TotalTokens: 0, UpdatedAt: msAgo(now, 1*time.Minute)}
	if got := Classify(rec, now); got != StatusActive {
		t.Errorf("tokens=0 idle=1m = %q, want %q", got, StatusActive)
	}
}

func TestNormalized(t *testing.T) {
	got := SessionRecord{}.Normalized()
	if got.Label != "unnamed" || got.Kind != "unknown" || got.Model != "unknown" {
		t.Errorf("Normalized() defaults = %+v", got)
	}

	rec := SessionRecord{Key: "agent:main", Label: "scraper", Kind: "subagent", Model: "claude", TotalTokens: 7, UpdatedAt: 3}
	if got := rec.Normalized(); got != rec {
		t.Errorf("Normalized() changed populated record: %+v", got)
	}
}
