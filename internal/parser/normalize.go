package parser

import "strings"

// normalizeLines splits a block of extracted statement text into trimmed,
// non-empty lines in their original order. Blank input yields an empty
// slice; there is no failure mode.
func normalizeLines(text string) []string {
	raw := strings.Split(text, "\n")
	lines := make([]string, 0, len(raw))
	for _, l := range raw {
		l = strings.TrimSpace(l)
		if l == "" {
			continue
		}
		lines = append(lines, l)
	}
	return lines
}
