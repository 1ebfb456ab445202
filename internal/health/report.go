package health

// CompletedDisplayLimit is the number of completed sessions shown in full;
// the remainder is reported only as a count. Completed is expected to be the
// largest and least actionable bucket, so it is the only one truncated.
const CompletedDisplayLimit = 10

// Report is the aggregated result of one classification pass. Bucket slices
// preserve the source order of the input; an idle session appears in no
// bucket but still counts toward Total.
type Report struct {
	// GeneratedAt is the instant (epoch milliseconds) the pass ran against.
	GeneratedAt int64
	// Total is the length of the full input sequence, idle sessions included.
	Total int

	Active    []ClassifiedSession
	Completed []ClassifiedSession
	Stuck     []ClassifiedSession
}

// BuildReport classifies every record against now and partitions the results.
// It is a pure function of (records, now): identical inputs yield identical
// reports.
func BuildReport(records []SessionRecord, now int64) Report {
	r := Report{
		GeneratedAt: now,
		Total:       len(records),
		Active:      []ClassifiedSession{},
		Completed:   []ClassifiedSession{},
		Stuck:       []ClassifiedSession{},
	}
	for _, rec := range records {
		cs := ClassifiedSession{
			SessionRecord: rec.Normalized(),
			Status:        Classify(rec, now),
			IdleMinutes:   IdleMinutes(rec, now),
		}
		switch cs.Status {
		case StatusActive:
			r.Active = append(r.Active, cs)
		case StatusCompleted:
			r.Completed = append(r.Completed, cs)
		case StatusStuck:
			r.Stuck = append(r.Stuck, cs)
		}
	}
	return r
}

// CompletedShown returns the completed sessions intended for full display,
// capped at CompletedDisplayLimit.
func (r Report) CompletedShown() []ClassifiedSession {
	if len(r.Completed) <= CompletedDisplayLimit {
		return r.Completed
	}
	return r.Completed[:CompletedDisplayLimit]
}

// CompletedOverflow returns how many completed sessions are summarized
// rather than enumerated.
func (r Report) CompletedOverflow() int {
	if n := len(r.Completed) - CompletedDisplayLimit; n > 0 {
		return n
	}
	return 0
}

// IdleCount returns how many sessions fell into no bucket.
func (r Report) IdleCount() int {
	return r.Total - len(r.Active) - len(r.Completed) - len(r.Stuck)
}
