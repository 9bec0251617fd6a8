package exporter

import (
	"fmt"
	"io"
	"strings"
	"time"

	ics "github.com/arran4/golang-ical"

	"rozkladctl/pkg/schedule"
)

// GenerateICS creates an ICS calendar from canonical records and writes it to
// w. semesterStart must be the Monday of week 1; each record produces one
// event per active week, placed on its weekday at the record's time range.
// Records with an unparseable time range are skipped.
func GenerateICS(records []schedule.Record, semesterStart time.Time, w io.Writer) error {
	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)

	loc, err := time.LoadLocation("Europe/Kyiv")
	if err != nil {
		return fmt.Errorf("could not load timezone: %w", err)
	}

	layout := "2006-01-02 15:04"
	for i, rec := range records {
		startClock, endClock, ok := splitTimeRange(rec.Time)
		if !ok {
			continue // no usable time range
		}
		for _, week := range rec.Weeks {
			day := semesterStart.AddDate(0, 0, (week-1)*7+rec.DayIndex)
			date := day.Format("2006-01-02")

			start, err := time.ParseInLocation(layout, date+" "+startClock, loc)
			if err != nil {
				continue
			}
			end, err := time.ParseInLocation(layout, date+" "+endClock, loc)
			if err != nil {
				continue
			}

			event := cal.AddEvent(fmt.Sprintf("%s-%d-%d", start.Format("20060102T150405"), i, week))
			event.SetCreatedTime(time.Now())
			event.SetDtStampTime(time.Now())
			event.SetModifiedAt(time.Now())
			event.SetStartAt(start)
			event.SetEndAt(end)
			event.SetSummary(rec.Course)
			event.SetLocation(rec.Hall)

			description := fmt.Sprintf("Група: %s\nТижні: %s", rec.Group, schedule.FormatWeeks(rec.Weeks))
			if rec.Lecturer != "" {
				description = rec.Lecturer + "\n" + description
			}
			event.SetDescription(description)
		}
	}

	return cal.SerializeTo(w)
}

// splitTimeRange splits "9:00-10:30" into zero-padded clock parts suitable
// for the 15:04 layout. Dots are accepted as minute separators.
func splitTimeRange(s string) (start, end string, ok bool) {
	parts := strings.SplitN(strings.TrimSpace(s), "-", 2)
	if len(parts) != 2 {
		return "", "", false
	}
	start = padClock(parts[0])
	end = padClock(parts[1])
	if !strings.Contains(start, ":") || !strings.Contains(end, ":") {
		return "", "", false
	}
	return start, end, true
}

func padClock(s string) string {
	s = strings.ReplaceAll(strings.TrimSpace(s), ".", ":")
	if i := strings.Index(s, ":"); i == 1 {
		return "0" + s
	}
	return s
}
