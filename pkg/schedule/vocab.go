package schedule

import (
	"sort"
	"strings"
)

// Vocabulary is an immutable mapping from specialization names (full program
// names plus self-mapped abbreviations) to short codes. The set of distinct
// codes is the "cut set": the only values accepted as a filtering target.
type Vocabulary struct {
	codes  map[string]string
	names  []string // sorted; gives Match a deterministic tie-break order
	cut    []string // sorted distinct codes
	cutSet map[string]struct{}
}

// NewVocabulary builds a vocabulary from name→code entries.
func NewVocabulary(entries map[string]string) *Vocabulary {
	v := &Vocabulary{
		codes:  make(map[string]string, len(entries)),
		cutSet: make(map[string]struct{}),
	}
	for name, code := range entries {
		v.codes[name] = code
		v.names = append(v.names, name)
		if _, ok := v.cutSet[code]; !ok {
			v.cutSet[code] = struct{}{}
			v.cut = append(v.cut, code)
		}
	}
	sort.Strings(v.names)
	sort.Strings(v.cut)
	return v
}

// FEN is the default vocabulary: the specializations of the economics
// faculty, as they appear in group labels and course annotations.
var FEN = NewVocabulary(map[string]string{
	"менеджмент": "мен",
	"фінанси":    "фін",
	"економіка":  "екон",
	"маркетинг":  "мар",
	"розвиток":   "рб",
	"рб":         "рб",
})

// Codes returns the cut set in sorted order.
func (v *Vocabulary) Codes() []string {
	return append([]string(nil), v.cut...)
}

// Valid reports whether code is in the cut set.
func (v *Vocabulary) Valid(code string) bool {
	_, ok := v.cutSet[code]
	return ok
}

// matchThreshold is the similarity a token must exceed to resolve to a code.
const matchThreshold = 0.6

// Match fuzzy-matches a single word against the vocabulary. Every entry at
// least as long as the word competes with its prefix truncated to the word's
// length, so a short abbreviation is compared against equally short slices of
// the full names. The entry with the strictly highest ratio above the
// threshold wins; because entries are iterated in sorted order and only a
// strictly higher ratio replaces the current best, ties resolve
// alphabetically.
func (v *Vocabulary) Match(word string) (string, bool) {
	wr := []rune(strings.ToLower(word))
	if len(wr) == 0 {
		return "", false
	}
	var bestName string
	bestRatio := matchThreshold
	for _, name := range v.names {
		nr := []rune(strings.ToLower(name))
		if len(nr) < len(wr) {
			continue
		}
		if r := ratio(string(nr[:len(wr)]), string(wr)); r > bestRatio {
			bestName, bestRatio = name, r
		}
	}
	if bestName == "" {
		return "", false
	}
	return v.codes[bestName], true
}
