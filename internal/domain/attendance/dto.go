package attendance

import (
	"time"

	"github.com/supremeauto/attendance-report-go/internal/domain/employee"
)

// Report is the fully reconciled output of one run: the dense per-employee
// day listings plus the roster-wide summary. Everything in it is re-derived
// from the two sources on every run; nothing persists between runs.
type Report struct {
	RunID       string    `json:"run_id"`
	Window      Window    `json:"window"`
	GeneratedAt time.Time `json:"generated_at"`

	// DroppedPunches counts punch events whose emp_code was absent from the
	// roster. They do not affect classification; the count is surfaced so a
	// stale roster is visible instead of silent.
	DroppedPunches int `json:"dropped_punches"`

	Employees []EmployeeReport `json:"employees"`
}

// EmployeeReport is one employee's detail listing, days ascending by date,
// plus the monthly summary.
type EmployeeReport struct {
	employee.Record
	Days    []DailyAttendance `json:"days"`
	Summary EmployeeSummary   `json:"summary"`
}
