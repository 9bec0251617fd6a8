package schedule

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/charmbracelet/log"
)

// DayShape selects how the day field is represented in serialized output.
type DayShape int

const (
	// DayName keys the day by its canonical name.
	DayName DayShape = iota
	// DayIndex keys the day by its 0-based index, Monday = 0.
	DayIndex
)

// Options configure a pipeline run.
type Options struct {
	// FENMode enables specialization filtering; Spec must then be a member
	// of the vocabulary's cut set.
	FENMode bool
	Spec    string

	DayShape DayShape

	// Vocabulary and Weekdays default to FEN and UkrainianWeekdays.
	Vocabulary *Vocabulary
	Weekdays   Weekdays
}

// InvalidSpecCodeError reports a FEN-mode request with a specialization code
// outside the cut set. It is raised before any filtering runs.
type InvalidSpecCodeError struct {
	Code  string
	Valid []string
}

func (e *InvalidSpecCodeError) Error() string {
	return fmt.Sprintf("invalid specialization %q: must be one of %s",
		e.Code, strings.Join(e.Valid, ", "))
}

// Pipeline turns raw reader rows into canonical records.
type Pipeline struct {
	opts       Options
	classifier *Classifier
}

// New validates the options and builds a pipeline. An out-of-vocabulary
// specialization code fails here, before any data is touched.
func New(opts Options) (*Pipeline, error) {
	if opts.Vocabulary == nil {
		opts.Vocabulary = FEN
	}
	if opts.Weekdays == nil {
		opts.Weekdays = UkrainianWeekdays
	}
	if opts.FENMode && !opts.Vocabulary.Valid(opts.Spec) {
		return nil, &InvalidSpecCodeError{Code: opts.Spec, Valid: opts.Vocabulary.Codes()}
	}
	return &Pipeline{opts: opts, classifier: NewClassifier(opts.Vocabulary)}, nil
}

// Column titles as they appear in source documents. Readers cannot always
// tell header rows from data, so rows fuzzy-matching one of these are
// dropped here.
var headerTitles = []string{
	"День",
	"Час",
	"Дисципліна, викладач",
	"Група",
	"Тижні",
	"Аудиторія",
}

const headerThreshold = 0.8

// lecturerMarker opens the lecturer part of the combined course cell.
var lecturerMarker = regexp.MustCompile(`викл\.|доц\.|ст\.|проф\.|ас\.`)

// lessonStarts holds the start hour of each lesson slot, in slot order.
var lessonStarts = []string{"8", "10", "11", "13", "15", "16", "18", "19"}

// Run executes the full normalization pass: drop rows without a course,
// blank-fill whitespace cells, drop header rows, normalize the day, parse the
// week expression, split course from lecturer, then tokenize the group cell
// and fan the row out into one record per group token. In FEN mode the
// records are then filtered by the requested specialization.
//
// Data-quality problems are absorbed, not raised: a week expression without
// digits yields an empty set, an unmatched token is simply inconclusive.
func (p *Pipeline) Run(rows []RawRow) []Record {
	records := make([]Record, 0, len(rows))
	for i, row := range rows {
		if strings.TrimSpace(row.Course) == "" {
			log.Debug("dropping row without course", "row", i)
			continue
		}
		row = blankFill(row)
		if isHeaderRow(row) {
			log.Debug("dropping header row", "row", i)
			continue
		}

		dayIdx := p.opts.Weekdays.Index(row.Day)
		weeks := ParseWeeks(row.Weeks)
		if len(weeks) == 0 {
			log.Warn("no week numbers in expression", "row", i, "weeks", row.Weeks)
		}
		course, lecturer := splitCourseLecturer(row.Course)

		base := Record{
			Day:      p.opts.Weekdays[dayIdx],
			DayIndex: dayIdx,
			Time:     row.Time,
			Lesson:   lessonNumber(row.Time),
			Course:   course,
			Lecturer: lecturer,
			Weeks:    weeks,
			Hall:     row.Hall,
		}

		groups := TokenizeGroups(row.Group)
		if len(groups) == 0 {
			log.Debug("dropping row without groups", "row", i, "course", course)
			continue
		}
		for _, group := range groups {
			rec := base
			rec.Weeks = append([]int(nil), base.Weeks...)
			rec.Group = group
			records = append(records, rec)
		}
	}

	if p.opts.FENMode {
		filtered := make([]Record, 0, len(records))
		for _, rec := range records {
			if p.classifier.Accepts(rec, p.opts.Spec) {
				filtered = append(filtered, rec)
			}
		}
		log.Debug("specialization filter applied",
			"spec", p.opts.Spec, "in", len(records), "kept", len(filtered))
		records = filtered
	}
	return records
}

// blankFill replaces whitespace-only cells with an explicit empty value.
func blankFill(row RawRow) RawRow {
	norm := func(s string) string {
		if strings.TrimSpace(s) == "" {
			return ""
		}
		return s
	}
	row.Day = norm(row.Day)
	row.Time = norm(row.Time)
	row.Course = norm(row.Course)
	row.Group = norm(row.Group)
	row.Weeks = norm(row.Weeks)
	row.Hall = norm(row.Hall)
	return row
}

func isHeaderRow(row RawRow) bool {
	for _, cell := range []string{row.Day, row.Time, row.Course, row.Group, row.Weeks, row.Hall} {
		if cell == "" {
			continue
		}
		for _, title := range headerTitles {
			if foldRatio(cell, title) > headerThreshold {
				return true
			}
		}
	}
	return false
}

// splitCourseLecturer cuts the combined cell at the first lecturer title
// marker. The marker stays with the lecturer part; a cell without markers is
// all course.
func splitCourseLecturer(s string) (course, lecturer string) {
	loc := lecturerMarker.FindStringIndex(s)
	if loc == nil {
		return strings.TrimSpace(s), ""
	}
	course = strings.TrimRight(strings.TrimSpace(s[:loc[0]]), ",")
	return course, strings.TrimSpace(s[loc[0]:])
}

// lessonNumber maps a time-range cell to its 1-based lesson slot by the start
// hour, 0 when the time matches no known slot.
func lessonNumber(timeText string) int {
	t := strings.TrimSpace(timeText)
	for i, start := range lessonStarts {
		if strings.HasPrefix(t, start) {
			return i + 1
		}
	}
	return 0
}
