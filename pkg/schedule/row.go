package schedule

// RawRow is a single unnormalized table row as produced by a document reader.
// The column order is fixed across every supported source format: day, time,
// combined course-and-lecturer text, group text, week expression, hall.
// Readers are expected to have already filled merged/blank day and time cells
// with the nearest non-empty value above.
type RawRow struct {
	Day    string
	Time   string
	Course string
	Group  string
	Weeks  string
	Hall   string
}

// Record is a fully normalized schedule entry: exactly one group token, a
// canonical weekday (carried both as name and 0-based index) and a concrete
// set of active week numbers.
type Record struct {
	Day      string `json:"day"`
	DayIndex int    `json:"day_index"`
	Time     string `json:"time"`
	Lesson   int    `json:"lesson,omitempty"`
	Course   string `json:"course"`
	Lecturer string `json:"lecturer,omitempty"`
	Group    string `json:"group"`
	Weeks    []int  `json:"weeks"`
	Hall     string `json:"hall"`
}
