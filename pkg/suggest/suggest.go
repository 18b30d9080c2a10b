// Package suggest finds likely intended names for mistyped commands.
package suggest

import (
	"slices"
	"strings"
)

// MaxDistance is the largest edit distance at which a candidate is still considered a typo of the
// target.
const MaxDistance = 3

type match struct {
	name     string
	distance int
}

// FindSimilar returns up to maxResults candidates that look like typos of target, closest first.
// Candidates that start with target always qualify. Comparison is case-insensitive; ties are
// ordered by name.
func FindSimilar(target string, candidates []string, maxResults int) []string {
	if target == "" || maxResults <= 0 {
		return []string{}
	}
	lower := strings.ToLower(target)

	var matches []match
	for _, name := range candidates {
		c := strings.ToLower(name)
		d := Distance(lower, c)
		if strings.HasPrefix(c, lower) {
			d = min(d, 1)
		}
		if d <= MaxDistance && d < max(len(lower), len(c)) {
			matches = append(matches, match{name: name, distance: d})
		}
	}
	slices.SortStableFunc(matches, func(a, b match) int {
		if a.distance != b.distance {
			return a.distance - b.distance
		}
		return strings.Compare(a.name, b.name)
	})

	result := make([]string, 0, min(len(matches), maxResults))
	for _, m := range matches[:min(len(matches), maxResults)] {
		result = append(result, m.name)
	}
	return result
}

// Closest returns the single best suggestion for target, if any.
func Closest(target string, candidates []string) (string, bool) {
	found := FindSimilar(target, candidates, 1)
	if len(found) == 0 {
		return "", false
	}
	return found[0], true
}

// Distance is the Levenshtein edit distance between a and b, computed over bytes.
func Distance(a, b string) int {
	if len(a) == 0 {
		return len(b)
	}
	if len(b) == 0 {
		return len(a)
	}
	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)
	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= len(a); i++ {
		curr[0] = i
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			curr[j] = min(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}
	return prev[len(b)]
}
