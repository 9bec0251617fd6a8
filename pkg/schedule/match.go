package schedule

import (
	"strings"

	"github.com/agnivade/levenshtein"
)

// ratio is a normalized Levenshtein similarity in [0, 1]: 1 minus the edit
// distance divided by the length of the longer string, counted in runes.
func ratio(a, b string) float64 {
	la := len([]rune(a))
	lb := len([]rune(b))
	m := max(la, lb)
	if m == 0 {
		return 1
	}
	return 1 - float64(levenshtein.ComputeDistance(a, b))/float64(m)
}

// foldRatio compares case-insensitively.
func foldRatio(a, b string) float64 {
	return ratio(strings.ToLower(a), strings.ToLower(b))
}
