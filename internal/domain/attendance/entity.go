package attendance

import "time"

// Status is the classification of one employee-day.
type Status string

const (
	StatusPresent Status = "P"
	StatusHalfDay Status = "HD"
	StatusAbsent  Status = "A"
	StatusDayOff  Status = "OFF"
)

// DailyAttendance is one row of the dense employee-day grid. Exactly one row
// exists per (emp_code, date) pair in roster x window. ClockIn and ClockOut
// are both nil iff the employee produced no punch event that day; WorkedHours
// is nil iff either punch is nil.
type DailyAttendance struct {
	EmpCode     string     `json:"emp_code"`
	Date        time.Time  `json:"date"`
	ClockIn     *time.Time `json:"punch_in"`
	ClockOut    *time.Time `json:"punch_out"`
	WorkedHours *float64   `json:"worked_hours"`
	Status      Status     `json:"status"`
}

// EmployeeSummary aggregates one employee's month. The three counts partition
// the employee's non-OFF days; TotalHours is the sum of non-nil worked hours
// rounded to two decimals.
type EmployeeSummary struct {
	EmpCode      string  `json:"emp_code"`
	EmpName      string  `json:"emp_name"`
	DeptName     string  `json:"dept_name"`
	PresentCount int     `json:"present_count"`
	HalfDayCount int     `json:"half_day_count"`
	AbsentCount  int     `json:"absent_count"`
	TotalHours   float64 `json:"total_hours"`
}

// Window is the inclusive date range one report run covers. Both endpoints
// are midnight UTC dates.
type Window struct {
	Start time.Time `json:"start_date"`
	End   time.Time `json:"end_date"`
}

// Days returns the number of calendar dates in the window.
func (w Window) Days() int {
	return int(w.End.Sub(w.Start).Hours()/24) + 1
}

// Dates returns every calendar date in the window, ascending.
func (w Window) Dates() []time.Time {
	dates := make([]time.Time, 0, w.Days())
	for d := w.Start; !d.After(w.End); d = d.AddDate(0, 0, 1) {
		dates = append(dates, d)
	}
	return dates
}
