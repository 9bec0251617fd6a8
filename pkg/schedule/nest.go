package schedule

import (
	"fmt"
	"strconv"
)

// Field names usable in Nest key paths and leaf projections.
const (
	FieldCourse   = "course"
	FieldGroup    = "group"
	FieldDay      = "day"
	FieldTime     = "time"
	FieldLecturer = "lecturer"
	FieldWeeks    = "weeks"
	FieldHall     = "hall"
	FieldLesson   = "lesson"
)

// Nest groups records into a nested mapping keyed by the field path, e.g.
// course → group → day. The leaves are lists of {output key: field value}
// projections, one per matching record, preserving input order. Keys compare
// by exact value; the day key respects the configured shape.
func Nest(records []Record, path []string, leaves map[string]string, shape DayShape) any {
	if len(path) == 0 {
		out := make([]map[string]any, 0, len(records))
		for _, rec := range records {
			leaf := make(map[string]any, len(leaves))
			for key, field := range leaves {
				leaf[key] = fieldValue(rec, field, shape)
			}
			out = append(out, leaf)
		}
		return out
	}

	buckets := make(map[string][]Record)
	for _, rec := range records {
		k := keyString(fieldValue(rec, path[0], shape))
		buckets[k] = append(buckets[k], rec)
	}
	out := make(map[string]any, len(buckets))
	for k, group := range buckets {
		out[k] = Nest(group, path[1:], leaves, shape)
	}
	return out
}

func fieldValue(rec Record, field string, shape DayShape) any {
	switch field {
	case FieldCourse:
		return rec.Course
	case FieldGroup:
		return rec.Group
	case FieldDay:
		if shape == DayIndex {
			return rec.DayIndex
		}
		return rec.Day
	case FieldTime:
		return rec.Time
	case FieldLecturer:
		return rec.Lecturer
	case FieldWeeks:
		return rec.Weeks
	case FieldHall:
		return rec.Hall
	case FieldLesson:
		return rec.Lesson
	}
	return ""
}

func keyString(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case int:
		return strconv.Itoa(t)
	}
	return fmt.Sprint(v)
}
