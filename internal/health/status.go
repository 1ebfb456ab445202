package health

// Status is the health tag assigned to a session.
type Status string

const (
	// StatusActive marks a session touched within the last two minutes.
	StatusActive Status = "active"
	// StatusCompleted marks a session with output that has gone quiet.
	StatusCompleted Status = "completed"
	// StatusStuck marks a session with no output that has been quiet for
	// over five minutes.
	StatusStuck Status = "stuck"
	// StatusIdle marks the ambiguous remainder: no output, quiet between
	// two and five minutes. Idle sessions are counted but not bucketed.
	StatusIdle Status = "idle"
)

// Classification thresholds, in minutes.
const (
	stuckAfterMinutes   = 5.0
	activeWithinMinutes = 2.0
)

// IdleMinutes computes elapsed minutes since the record's last update as a
// real number. A zero UpdatedAt yields a very large value.
func IdleMinutes(rec SessionRecord, now int64) float64 {
	return float64(now-rec.UpdatedAt) / 60000.0
}

// Classify assigns exactly one status to a session record, evaluated against
// the instant now (epoch milliseconds). The rules are ordered; the stuck and
// active predicates overlap, so the first match wins:
//
//  1. no tokens and idle > 5m        -> stuck
//  2. idle < 2m                      -> active
//  3. any tokens                     -> completed
//  4. otherwise                      -> idle
//
// Missing fields are covered by the record's zero values; Classify never
// fails.
func Classify(rec SessionRecord, now int64) Status {
	idle := IdleMinutes(rec, now)
	switch {
	case rec.TotalTokens == 0 && idle > stuckAfterMinutes:
		return StatusStuck
	case idle < activeWithinMinutes:
		return StatusActive
	case rec.TotalTokens > 0:
		return StatusCompleted
	default:
		return StatusIdle
	}
}
