package util

// Truncate shortens a string to at most n bytes, appending "..." when content
// was cut. Cuts land on rune boundaries.
func Truncate(s string, n int) string {
	if n <= 0 {
		return ""
	}
	if len(s) <= n {
		return s
	}
	if n <= 3 {
		last := 0
		for i := range s {
			if i > n {
				break
			}
			last = i
		}
		return s[:last]
	}
	target := n - 3
	prev := 0
	for i := range s {
		if i > target {
			return s[:prev] + "..."
		}
		prev = i
	}
	return s[:prev] + "..."
}
