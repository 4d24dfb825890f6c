package punch

import "time"

// Event is a single raw time-clock punch. Events arrive unordered and an
// employee usually produces several per day.
type Event struct {
	EmpCode   string    `json:"emp_code"`
	Timestamp time.Time `json:"timestamp"`
}

// DayKey identifies one employee-day bucket.
type DayKey struct {
	EmpCode string
	Date    time.Time // midnight UTC, date component only
}

// DayPunch holds the earliest and latest punch of one employee-day. In and
// Out are equal when the day has exactly one event; that is a legitimate
// single-punch day, not an error.
type DayPunch struct {
	In  time.Time
	Out time.Time
}
