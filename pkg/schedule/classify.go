package schedule

import (
	"regexp"
	"strings"
	"unicode"
)

// Classifier decides whether a canonical record belongs to a requested
// specialization, using the vocabulary over group tokens and bracketed
// course annotations.
type Classifier struct {
	vocab *Vocabulary
}

// NewClassifier returns a classifier over the given vocabulary.
func NewClassifier(v *Vocabulary) *Classifier {
	return &Classifier{vocab: v}
}

var bracketClause = regexp.MustCompile(`\(([^()]*)\)`)

// alphaRuns splits s into maximal runs of letters, so "11е" yields "е" and
// "мен, фін" yields "мен", "фін".
func alphaRuns(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool { return !unicode.IsLetter(r) })
}

type verdict int

const (
	verdictNone verdict = iota
	verdictAccept
	verdictReject
)

// Accepts reports whether rec belongs to the specialization code.
//
// The group token is authoritative: its first alphabetic run that resolves to
// a code decides the record outright, accept on the requested code and reject
// on any other. Only when the group yields no decision is the course and
// lecturer text consulted: a parenthesized clause whose words all resolve to
// codes decides by membership of the requested code, partially-resolving
// clauses are skipped. Annotations may trail the lecturer name, so both
// fields are scanned. With no decisive evidence anywhere the record is
// rejected.
func (c *Classifier) Accepts(rec Record, code string) bool {
	switch c.groupVerdict(rec.Group, code) {
	case verdictAccept:
		return true
	case verdictReject:
		return false
	}
	return c.annotationVerdict(rec.Course+" "+rec.Lecturer, code)
}

func (c *Classifier) groupVerdict(group, code string) verdict {
	for _, run := range alphaRuns(group) {
		matched, ok := c.vocab.Match(run)
		if !ok {
			continue
		}
		if matched == code {
			return verdictAccept
		}
		return verdictReject
	}
	return verdictNone
}

func (c *Classifier) annotationVerdict(text, code string) bool {
	for _, clause := range bracketClause.FindAllStringSubmatch(text, -1) {
		words := alphaRuns(clause[1])
		if len(words) == 0 {
			continue
		}
		resolved := make(map[string]struct{}, len(words))
		full := true
		for _, w := range words {
			matched, ok := c.vocab.Match(w)
			if !ok {
				full = false
				break
			}
			resolved[matched] = struct{}{}
		}
		if !full {
			continue
		}
		_, ok := resolved[code]
		return ok
	}
	return false
}
