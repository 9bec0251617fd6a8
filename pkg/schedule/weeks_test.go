package schedule

import (
	"reflect"
	"testing"
)

func TestParseWeeks(t *testing.T) {
	cases := []struct {
		in   string
		want []int
	}{
		{"12,15", []int{12, 15}},
		{"3 7", []int{3, 7}},
		{"2-5", []int{2, 3, 4, 5}},
		{"12-15", []int{12, 13, 14, 15}},
		{"8-10, 13, 15", []int{8, 9, 10, 13, 15}},
		{"3, 5, 7, 10-15", []int{3, 5, 7, 10, 11, 12, 13, 14, 15}},
		// noise letters inside separators must not suppress hyphen detection
		{"3 6-8 f16, 18", []int{3, 6, 7, 8, 16, 18}},
		{"3 6-8 у16, 18", []int{3, 6, 7, 8, 16, 18}},
		{"-12 14-л17 -", []int{12, 14, 15, 16, 17}},
		// leading and trailing hyphens are inert
		{"-12 14, 15 -", []int{12, 14, 15}},
		// overlapping ranges collapse via set semantics
		{"7-10a-13, 5", []int{5, 7, 8, 9, 10, 11, 12, 13}},
		{"6-9, 7 8 11", []int{6, 7, 8, 9, 11}},
	}

	for _, tc := range cases {
		got := ParseWeeks(tc.in)
		if !reflect.DeepEqual(got, tc.want) {
			t.Errorf("ParseWeeks(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestParseWeeksEmpty(t *testing.T) {
	for _, in := range []string{"", "   ", "abc", "-", ", -"} {
		if got := ParseWeeks(in); len(got) != 0 {
			t.Errorf("ParseWeeks(%q) = %v, want empty set", in, got)
		}
	}
}

func TestParseWeeksReversedRange(t *testing.T) {
	// a literally computed reversed range contributes nothing
	got := ParseWeeks("15-12, 3")
	want := []int{3, 15}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ParseWeeks(\"15-12, 3\") = %v, want %v", got, want)
	}
}

func TestFormatWeeks(t *testing.T) {
	cases := []struct {
		in   []int
		want string
	}{
		{nil, ""},
		{[]int{7}, "7"},
		{[]int{2, 3, 4, 5}, "2-5"},
		{[]int{8, 9, 10, 13, 15}, "8-10,13,15"},
		{[]int{15, 12, 14}, "12,14-15"},
	}
	for _, tc := range cases {
		if got := FormatWeeks(tc.in); got != tc.want {
			t.Errorf("FormatWeeks(%v) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestWeeksRoundTrip(t *testing.T) {
	// re-parsing the canonical rendering must reproduce the set
	exprs := []string{"12,15", "2-5", "8-10, 13, 15", "3 6-8 f16, 18", "-12 14-л17 -"}
	for _, expr := range exprs {
		weeks := ParseWeeks(expr)
		again := ParseWeeks(FormatWeeks(weeks))
		if !reflect.DeepEqual(weeks, again) {
			t.Errorf("round trip of %q: %v != %v", expr, weeks, again)
		}
	}
}
