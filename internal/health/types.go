// Package health implements the session classification core: it tags each
// agent session with a status and partitions the tagged sessions into the
// buckets the dashboard renders.
package health

// SessionRecord is one tracked unit of agent activity as reported by the
// session source. Fields the source omits carry their zero value; Normalized
// fills the display defaults.
type SessionRecord struct {
	Key         string
	Label       string
	Kind        string
	Model       string
	TotalTokens int64
	UpdatedAt   int64 // epoch milliseconds of last activity, 0 if unknown
}

// Normalized returns a copy with display defaults applied to absent string
// fields. Token and timestamp fields are left as-is; their zero values are
// meaningful to the classifier.
func (r SessionRecord) Normalized() SessionRecord {
	if r.Label == "" {
		r.Label = "unnamed"
	}
	if r.Kind == "" {
		r.Kind = "unknown"
	}
	if r.Model == "" {
		r.Model = "unknown"
	}
	return r
}

// ClassifiedSession annotates a SessionRecord with its status and the idle
// time computed at classification. The record fields are unchanged.
type ClassifiedSession struct {
	SessionRecord

	Status Status
	// IdleMinutes is (now - UpdatedAt) in minutes as a real number. It is
	// truncated to an integer only for display.
	IdleMinutes float64
}

// IdleDisplay renders the idle time for this session. A missing UpdatedAt
// still produces a (large) value; this field never shows "N/A".
func (c ClassifiedSession) IdleDisplay() string {
	return FormatIdleMinutes(c.IdleMinutes)
}

// TokensDisplay renders the abbreviated token count.
func (c ClassifiedSession) TokensDisplay() string {
	return FormatTokens(c.TotalTokens)
}
