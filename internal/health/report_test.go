package health

import (
	"fmt"
	"reflect"
	"testing"
	"time"
)

func TestBuildReportPartition(t *testing.T) {
	now := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC).UnixMilli()

	records := []SessionRecord{
		{Key: "a", Label: "alpha", TotalTokens: 0, UpdatedAt: msAgo(now, 10*time.Minute)},   // stuck
		{Key: "b", Label: "bravo", TotalTokens: 900, UpdatedAt: msAgo(now, 1*time.Minute)},  // active
		{Key: "c", Label: "charlie", TotalTokens: 0, UpdatedAt: msAgo(now, 3*time.Minute)},  // idle
		{Key: "d", Label: "delta", TotalTokens: 1500, UpdatedAt: msAgo(now, 4*time.Minute)}, // completed
		{Key: "e", Label: "echo", TotalTokens: 0, UpdatedAt: msAgo(now, 30*time.Second)},    // active
	}

	r := BuildReport(records, now)

	if r.Total != 5 {
		t.Errorf("Total = %d, want 5", r.Total)
	}
	if r.GeneratedAt != now {
		t.Errorf("GeneratedAt = %d, want %d", r.GeneratedAt, now)
	}

	keys := func(ss []ClassifiedSession) []string {
		out := make([]string, 0, len(ss))
		for _, s := range ss {
			out = append(out, s.Key)
		}
		return out
	}

	if got, want := keys(r.Active), []string{"b", "e"}; !reflect.DeepEqual(got, want) {
		t.Errorf("Active = %v, want %v", got, want)
	}
	if got, want := keys(r.Completed), []string{"d"}; !reflect.DeepEqual(got, want) {
		t.Errorf("Completed = %v, want %v", got, want)
	}
	if got, want := keys(r.Stuck), []string{"a"}; !reflect.DeepEqual(got, want) {
		t.Errorf("Stuck = %v, want %v", got, want)
	}

	// The idle session appears in no bucket but counts toward the total.
	if r.IdleCount() != 1 {
		t.Errorf("IdleCount = %d, want 1", r.IdleCount())
	}
	if got := len(r.Active) + len(r.Completed) + len(r.Stuck) + r.IdleCount(); got != r.Total {
		t.Errorf("buckets + idle = %d, want total %d", got, r.Total)
	}
}

func TestBuildReportOrderIsStable(t *testing.T) {
	now := int64(1_760_000_000_000)

	// Completed sessions deliberately not sorted by recency; the bucket must
	// keep source order, not re-sort.
	var records []SessionRecord
	for _, m := range []int{4, 3, 2, 5, 3} {
		records = append(records, SessionRecord{
			Key:         fmt.Sprintf("s%d", len(records)),
			TotalTokens: 100,
			UpdatedAt:   msAgo(now, time.Duration(m)*time.Minute),
		})
	}

	r := BuildReport(records, now)
	for i, s := range r.Completed {
		if want := fmt.Sprintf("s%d", i); s.Key != want {
			t.Fatalf("Completed[%d].Key = %q, want %q", i, s.Key, want)
		}
	}
}

func TestBuildReportIdempotent(t *testing.T) {
	now := int64(1_760_000_000_000)
	records := []SessionRecord{
		{Key: "a", TotalTokens: 0, UpdatedAt: msAgo(now, 10*time.Minute)},
		{Key: "b", TotalTokens: 500, UpdatedAt: msAgo(now, 3*time.Minute)},
		{Key: "c", TotalTokens: 0, UpdatedAt: msAgo(now, 3*time.Minute)},
	}

	first := BuildReport(records, now)
	second := BuildReport(records, now)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("repeated BuildReport differs:\nfirst:  %+v\nsecond: %+v", first, second)
	}
}

func TestBuildReportEmpty(t *testing.T) {
	r := BuildReport(nil, 1)
	if r.Total != 0 {
		t.Errorf("Total = %d, want 0", r.Total)
	}
	// Buckets are empty slices, not nil, so renderers and JSON encoders can
	// iterate without null checks.
	if r.Active == nil || r.Completed == nil || r.Stuck == nil {
		t.Error("empty report has nil buckets")
	}
}

func TestCompletedTruncation(t *testing.T) {
	now := int64(1_760_000_000_000)

	var records []SessionRecord
	for i := 0; i < 14; i++ {
		records = append(records, SessionRecord{
			Key:         fmt.Sprintf("c%02d", i),
			TotalTokens: 100,
			UpdatedAt:   msAgo(now, 3*time.Minute),
		})
	}
	// Stuck bucket must not truncate, only completed does.
	for i := 0; i < 12; i++ {
		records = append(records, SessionRecord{
			Key:       fmt.Sprintf("x%02d", i),
			UpdatedAt: msAgo(now, 10*time.Minute),
		})
	}

	r := BuildReport(records, now)

	shown := r.CompletedShown()
	if len(shown) != CompletedDisplayLimit {
		t.Fatalf("CompletedShown has %d entries, want %d", len(shown), CompletedDisplayLimit)
	}
	if shown[0].Key != "c00" || shown[9].Key != "c09" {
		t.Errorf("CompletedShown is not the first %d in order: %q..%q",
			CompletedDisplayLimit, shown[0].Key, shown[9].Key)
	}
	if r.CompletedOverflow() != 4 {
		t.Errorf("CompletedOverflow = %d, want 4", r.CompletedOverflow())
	}
	if len(r.Stuck) != 12 {
		t.Errorf("Stuck = %d entries, want all 12", len(r.Stuck))
	}
}

func TestCompletedTruncationUnderLimit(t *testing.T) {
	now := int64(1_760_000_000_000)
	records := []SessionRecord{
		{Key: "only", TotalTokens: 5, UpdatedAt: msAgo(now, 3*time.Minute)},
	}

	r := BuildReport(records, now)
	if len(r.CompletedShown()) != 1 {
		t.Errorf("CompletedShown = %d entries, want 1", len(r.CompletedShown()))
	}
	if r.CompletedOverflow() != 0 {
		t.Errorf("CompletedOverflow = %d, want 0", r.CompletedOverflow())
	}
}
