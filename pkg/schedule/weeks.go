package schedule

import (
	"regexp"
	"sort"
	"strconv"
	"strings"
)

var digitRun = regexp.MustCompile(`[0-9]+`)

// ParseWeeks converts a free-text week expression into the sorted set of week
// numbers it denotes. Maximal digit runs are the numbers; the non-digit runs
// between them are separators. A separator containing a hyphen makes the next
// number close an inclusive range from the previous one, so "2-5" means
// 2,3,4,5 and "14-л17" means 14..17 (noise letters never suppress hyphen
// detection). A leading or trailing separator is inert: "-12 14, 15 -" means
// 12, 14, 15. Input with no digit runs yields an empty set.
//
// A reversed range like "15-12" is computed literally and contributes
// nothing; numeric ordering errors in the source are not corrected.
func ParseWeeks(text string) []int {
	nums := digitRun.FindAllString(text, -1)
	if len(nums) == 0 {
		return nil
	}
	// seps[i+1] is the separator following number i.
	seps := digitRun.Split(text, -1)

	set := make(map[int]struct{}, len(nums))
	pending := false
	prev := 0
	for i, ns := range nums {
		n, err := strconv.Atoi(ns)
		if err != nil {
			continue // digit run too long for int, skip
		}
		if pending {
			for w := prev; w <= n; w++ {
				set[w] = struct{}{}
			}
		} else {
			set[n] = struct{}{}
		}
		pending = strings.Contains(seps[i+1], "-")
		prev = n
	}

	weeks := make([]int, 0, len(set))
	for w := range set {
		weeks = append(weeks, w)
	}
	sort.Ints(weeks)
	return weeks
}

// FormatWeeks renders a week set in the canonical "a,b-c" form, collapsing
// consecutive runs into ranges. ParseWeeks(FormatWeeks(ws)) reproduces ws.
func FormatWeeks(weeks []int) string {
	if len(weeks) == 0 {
		return ""
	}
	ws := append([]int(nil), weeks...)
	sort.Ints(ws)

	var parts []string
	start, end := ws[0], ws[0]
	flush := func() {
		if end > start {
			parts = append(parts, strconv.Itoa(start)+"-"+strconv.Itoa(end))
		} else {
			parts = append(parts, strconv.Itoa(start))
		}
	}
	for _, w := range ws[1:] {
		if w == end || w == end+1 {
			end = w
			continue
		}
		flush()
		start, end = w, w
	}
	flush()
	return strings.Join(parts, ",")
}
