package schedule

import (
	"reflect"
	"testing"
)

func TestTokenizeGroups(t *testing.T) {
	cases := []struct {
		in   string
		want []string
	}{
		{"ФІ-101, ФІ-102", []string{"ФІ-101", "ФІ-102"}},
		{"1/2/3", []string{"1", "2", "3"}},
		{"мен;фін", []string{"мен", "фін"}},
		// hyphenated codes stay intact
		{"11-1", []string{"11-1"}},
		{"11-1, 11-2", []string{"11-1", "11-2"}},
	}
	for _, tc := range cases {
		got := TokenizeGroups(tc.in)
		if !reflect.DeepEqual(got, tc.want) {
			t.Errorf("TokenizeGroups(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}

	for _, in := range []string{"", "  ", ",;"} {
		if got := TokenizeGroups(in); len(got) != 0 {
			t.Errorf("TokenizeGroups(%q) = %v, want no tokens", in, got)
		}
	}
}

func TestTokenizeGroupsIdempotent(t *testing.T) {
	for _, tok := range []string{"ФІ-101", "11-1", "екон", "БП2"} {
		got := TokenizeGroups(tok)
		if len(got) != 1 || got[0] != tok {
			t.Errorf("TokenizeGroups(%q) = %v, want the token unchanged", tok, got)
		}
	}
}
