package schedule

import "strings"

// Punctuation that delimits group lists. Hyphen is deliberately absent so
// compound codes like "11-1" survive as one token.
const groupDelims = "!\"#$%&'()*+,./:;<=>?@[\\]^_`{|}~"

// TokenizeGroups splits a compound group cell into individual group tokens:
// every delimiter becomes a space, then the cell is split on whitespace with
// empties dropped and left-to-right order preserved. Already-clean single
// tokens pass through unchanged.
func TokenizeGroups(raw string) []string {
	mapped := strings.Map(func(r rune) rune {
		if strings.ContainsRune(groupDelims, r) {
			return ' '
		}
		return r
	}, raw)
	return strings.Fields(mapped)
}
