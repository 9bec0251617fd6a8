package schedule

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Weekdays is an ordered list of canonical weekday names, Monday first.
// Injected into the pipeline so the vocabulary can be swapped out in tests.
type Weekdays []string

// UkrainianWeekdays is the default canonical weekday set.
var UkrainianWeekdays = Weekdays{
	"Понеділок",
	"Вівторок",
	"Середа",
	"Четвер",
	"П'ятниця",
	"Субота",
	"Неділя",
}

var titleCaser = cases.Title(language.Ukrainian)

// Index returns the 0-based index of the canonical weekday closest to raw.
// The raw name is capitalized first, then compared by similarity ratio
// against every canonical name. There is no similarity floor: source
// documents are historically inconsistent about capitalization and
// apostrophes, so the nearest match is always returned. Ties resolve to the
// lowest index.
func (w Weekdays) Index(raw string) int {
	cand := titleCaser.String(strings.TrimSpace(raw))
	best := 0
	bestRatio := -1.0
	for i, day := range w {
		if r := ratio(cand, day); r > bestRatio {
			best, bestRatio = i, r
		}
	}
	return best
}

// Normalize returns the canonical name closest to raw.
func (w Weekdays) Normalize(raw string) string {
	return w[w.Index(raw)]
}

// Contains reports whether raw, once capitalized, is exactly one of the
// canonical names. Readers use this to locate the schedule block.
func (w Weekdays) Contains(raw string) bool {
	cand := titleCaser.String(strings.TrimSpace(raw))
	for _, day := range w {
		if day == cand {
			return true
		}
	}
	return false
}
