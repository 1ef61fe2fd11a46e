// Package suggest finds likely intended spellings for mistyped names.
package suggest

import (
	"cmp"
	"slices"
	"strings"

	"github.com/xrash/smetrics"
)

// FindSimilar returns up to max candidates that are within a small edit distance of target,
// closest first. Ties are broken by Jaro-Winkler similarity, then alphabetically. Comparison is
// case-insensitive and an exact match is never suggested.
func FindSimilar(target string, candidates []string, max int) []string {
	if target == "" || max <= 0 {
		return nil
	}
	t := strings.ToLower(target)
	bound := maxDistance(t)

	type match struct {
		name  string
		dist  int
		score float64
	}
	var matches []match
	for _, c := range candidates {
		lc := strings.ToLower(c)
		if lc == t {
			continue
		}
		d := smetrics.WagnerFischer(t, lc, 1, 1, 1)
		if d > bound {
			continue
		}
		matches = append(matches, match{
			name:  c,
			dist:  d,
			score: smetrics.JaroWinkler(t, lc, 0.7, 4),
		})
	}
	slices.SortFunc(matches, func(a, b match) int {
		if c := cmp.Compare(a.dist, b.dist); c != 0 {
			return c
		}
		if c := cmp.Compare(b.score, a.score); c != 0 {
			return c
		}
		return cmp.Compare(a.name, b.name)
	})

	var out []string
	for _, m := range matches {
		if len(out) == max {
			break
		}
		if !slices.Contains(out, m.name) {
			out = append(out, m.name)
		}
	}
	return out
}

// maxDistance allows roughly one edit per three characters, and at least one.
func maxDistance(s string) int {
	return max(1, len(s)/3)
}
