// Package textutil formats help text for terminals.
package textutil

import "strings"

// Wrap splits s into lines of at most width bytes, breaking at whitespace. A word longer than
// width gets a line of its own. Wrap always returns at least one line, which is empty when s
// holds no words.
func Wrap(s string, width int) []string {
	words := strings.Fields(s)
	if len(words) == 0 {
		return []string{""}
	}
	var (
		lines []string
		line  strings.Builder
	)
	for _, w := range words {
		if line.Len() > 0 && line.Len()+1+len(w) > width {
			lines = append(lines, line.String())
			line.Reset()
		}
		if line.Len() > 0 {
			line.WriteByte(' ')
		}
		line.WriteString(w)
	}
	return append(lines, line.String())
}
