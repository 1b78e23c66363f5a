// Package parsing turns the plain text of a resume into a structured types.Resume using
// positional and lexical heuristics.
//
// The engine never fails: sections it cannot find come back empty, and the assembler
// back-fills list sections with one placeholder entry so an editor always has a row.
// All functions are pure and safe for concurrent use.
package parsing

import "strings"

// SplitLines splits raw text into trimmed, non-empty lines in document order.
func SplitLines(text string) []string {
	raw := strings.Split(text, "\n")
	lines := make([]string, 0, len(raw))
	for _, line := range raw {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	return lines
}
