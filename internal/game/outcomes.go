package game

import "strings"

// CleanOutcomeLine strips surrounding whitespace and leading bullet markers.
func CleanOutcomeLine(line string) string {
	return strings.TrimSpace(strings.TrimLeft(strings.TrimSpace(line), "-•"))
}

// ReconcileOutcomes turns raw model text into exactly n outcomes: one per
// non-empty line in order, padded with OutcomeSentinel or truncated.
func ReconcileOutcomes(raw string, n int) []string {
	if n < 0 {
		n = 0
	}
	out := make([]string, 0, n)
	for _, line := range strings.Split(raw, "\n") {
		if len(out) == n {
			break
		}
		if cleaned := CleanOutcomeLine(line); cleaned != "" {
			out = append(out, cleaned)
		}
	}
	for len(out) < n {
		out = append(out, OutcomeSentinel)
	}
	return out
}
