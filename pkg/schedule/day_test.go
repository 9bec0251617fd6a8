package schedule

import "testing"

func TestWeekdaysNormalize(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Понеділок", "Понеділок"},
		{"понеділок", "Понеділок"},
		{"ВІВТОРОК", "Вівторок"},
		{"середа", "Середа"},
		// missing apostrophe
		{"пятниця", "П'ятниця"},
		// typos still land on the nearest canonical name
		{"четверг", "Четвер"},
		{"субта", "Субота"},
		{" неділя ", "Неділя"},
	}
	for _, tc := range cases {
		if got := UkrainianWeekdays.Normalize(tc.in); got != tc.want {
			t.Errorf("Normalize(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestWeekdaysIndex(t *testing.T) {
	for i, day := range UkrainianWeekdays {
		if got := UkrainianWeekdays.Index(day); got != i {
			t.Errorf("Index(%q) = %d, want %d", day, got, i)
		}
	}
	if got := UkrainianWeekdays.Index("вiвторок"); got != 1 {
		t.Errorf("Index(\"вiвторок\") = %d, want 1", got)
	}
}

func TestWeekdaysNoFloor(t *testing.T) {
	// wildly different input still gets a best-effort nearest match
	got := UkrainianWeekdays.Index("???")
	if got < 0 || got > 6 {
		t.Errorf("Index(\"???\") = %d, want a valid weekday index", got)
	}
}

func TestWeekdaysContains(t *testing.T) {
	if !UkrainianWeekdays.Contains("понеділок") {
		t.Error("expected Contains to capitalize before comparing")
	}
	if UkrainianWeekdays.Contains("понеділк") {
		t.Error("Contains must be exact, not fuzzy")
	}
}
