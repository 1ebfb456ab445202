package health

import (
	"fmt"
	"strconv"
)

// FormatTokens abbreviates a token count for display: values below 1000 are
// rendered as-is, 1000 and above as thousands with one decimal ("1.5k").
// Zero or absent counts render as "0".
func FormatTokens(tokens int64) string {
	if tokens <= 0 {
		return "0"
	}
	if tokens >= 1000 {
		return fmt.Sprintf("%.1fk", float64(tokens)/1000)
	}
	return strconv.FormatInt(tokens, 10)
}

// FormatDuration renders a millisecond duration as whole minutes, switching
// to "<h>h <m>m" at an hour. Zero or absent durations render as "N/A".
//
// This is intentionally different from FormatIdleMinutes, which never shows
// "N/A"; the two conventions are kept separate.
func FormatDuration(ms int64) string {
	if ms <= 0 {
		return "N/A"
	}
	minutes := ms / 60000
	if hours := minutes / 60; hours > 0 {
		return fmt.Sprintf("%dh %dm", hours, minutes%60)
	}
	return fmt.Sprintf("%dm", minutes)
}

// FormatIdleMinutes renders idle time truncated toward zero with an "m"
// suffix. A session with no recorded update still gets a value (a large
// one), never "N/A".
func FormatIdleMinutes(idle float64) string {
	return fmt.Sprintf("%dm", int64(idle))
}
