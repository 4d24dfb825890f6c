package attendance

import (
	"context"
	"log/slog"
	"math"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/supremeauto/attendance-report-go/internal/domain/attendance"
	"github.com/supremeauto/attendance-report-go/internal/domain/employee"
	"github.com/supremeauto/attendance-report-go/internal/domain/punch"
)

type AttendanceServiceImpl struct {
	punchSource  punch.Source
	rosterSource employee.Source
	policy       attendance.Policy
	clock        Clock
}

func NewAttendanceService(punchSource punch.Source, rosterSource employee.Source, policy attendance.Policy, clock Clock) attendance.Service {
	if clock == nil {
		clock = time.Now
	}
	return &AttendanceServiceImpl{
		punchSource:  punchSource,
		rosterSource: rosterSource,
		policy:       policy,
		clock:        clock,
	}
}

// BuildReport implements attendance.Service. Source failures degrade rather
// than abort: a missing roster yields a report with no employees, missing
// punches yield a grid of absences. Everything is re-derived on every call.
func (s *AttendanceServiceImpl) BuildReport(ctx context.Context, asOf time.Time) (attendance.Report, error) {
	if asOf.IsZero() {
		asOf = s.clock()
	}
	window := WindowFrom(asOf)

	roster, err := s.rosterSource.Roster(ctx)
	if err != nil {
		slog.Error("roster source unavailable", "error", err)
	}
	roster = dedupeRoster(roster)

	events, err := s.punchSource.Events(ctx, window.Start, endOfDay(window.End))
	if err != nil {
		// Whatever was fetched before the failure still counts; days without
		// punches classify as absent.
		slog.Error("punch source unavailable", "error", err, "fetched", len(events))
	}

	punches, dropped := aggregate(events, roster)
	if dropped > 0 {
		slog.Warn("dropped punch events with no roster match", "count", dropped)
	}

	report := attendance.Report{
		RunID:          uuid.NewString(),
		Window:         window,
		GeneratedAt:    time.Now(),
		DroppedPunches: dropped,
		Employees:      make([]attendance.EmployeeReport, 0, len(roster)),
	}
	for _, rec := range roster {
		days := s.expand(rec.EmpCode, window, punches)
		report.Employees = append(report.Employees, attendance.EmployeeReport{
			Record:  rec,
			Days:    days,
			Summary: s.summarize(rec, days),
		})
	}
	return report, nil
}

// aggregate reduces raw events to the earliest/latest punch per employee-day.
// Events whose emp_code is missing from the roster are dropped and counted;
// the count surfaces on the report instead of disappearing.
func aggregate(events []punch.Event, roster []employee.Record) (map[punch.DayKey]punch.DayPunch, int) {
	known := make(map[string]struct{}, len(roster))
	for _, rec := range roster {
		known[rec.EmpCode] = struct{}{}
	}

	punches := make(map[punch.DayKey]punch.DayPunch)
	dropped := 0
	for _, ev := range events {
		if _, ok := known[ev.EmpCode]; !ok {
			dropped++
			continue
		}
		key := punch.DayKey{EmpCode: ev.EmpCode, Date: dateOf(ev.Timestamp)}
		dp, ok := punches[key]
		if !ok {
			punches[key] = punch.DayPunch{In: ev.Timestamp, Out: ev.Timestamp}
			continue
		}
		if ev.Timestamp.Before(dp.In) {
			dp.In = ev.Timestamp
		}
		if ev.Timestamp.After(dp.Out) {
			dp.Out = ev.Timestamp
		}
		punches[key] = dp
	}
	return punches, dropped
}

// workedHours computes elapsed hours for one punch pair, with the flat lunch
// deduction when the interval overlaps the lunch window. The result can be
// negative when the pair is reversed; judging data anomalies is the caller's
// job, so nothing is clamped.
func workedHours(p attendance.Policy, in, out time.Time) float64 {
	total := out.Sub(in).Hours()

	midnight := time.Date(in.Year(), in.Month(), in.Day(), 0, 0, 0, 0, in.Location())
	lunchStart := midnight.Add(p.LunchStart)
	lunchEnd := lunchStart.Add(p.LunchDuration)
	if out.After(lunchStart) && in.Before(lunchEnd) {
		total -= p.LunchDuration.Hours()
	}
	return round2(total)
}

// classify maps one grid row to its status. Rules run in order; first match
// wins.
func classify(p attendance.Policy, row attendance.DailyAttendance) attendance.Status {
	if row.Date.Weekday() == p.DayOff {
		return attendance.StatusDayOff
	}
	if row.ClockIn == nil && row.ClockOut == nil {
		return attendance.StatusAbsent
	}
	if row.WorkedHours != nil && *row.WorkedHours >= p.FullDayHours {
		return attendance.StatusPresent
	}
	if row.ClockIn != nil {
		if row.ClockIn.IsZero() {
			// A source hands over a zero clock-in when the raw punch value was
			// unreadable: the day had activity but nothing usable.
			slog.Warn("unreadable clock-in treated as absent",
				"emp_code", row.EmpCode, "date", row.Date.Format("2006-01-02"))
			return attendance.StatusAbsent
		}
		if timeOfDay(*row.ClockIn) > p.LateCutoff {
			// Redundant while the full-day rule above runs first; kept so the
			// late branch stays correct if rule order ever changes.
			if row.WorkedHours != nil && *row.WorkedHours >= p.FullDayHours {
				return attendance.StatusPresent
			}
			return attendance.StatusHalfDay
		}
		return attendance.StatusPresent
	}
	return attendance.StatusAbsent
}

// expand produces exactly one classified row per window date for one
// employee, left-joining whatever punch data exists. Days with no punches
// still get a row.
func (s *AttendanceServiceImpl) expand(empCode string, window attendance.Window, punches map[punch.DayKey]punch.DayPunch) []attendance.DailyAttendance {
	dates := window.Dates()
	days := make([]attendance.DailyAttendance, 0, len(dates))
	for _, date := range dates {
		row := attendance.DailyAttendance{EmpCode: empCode, Date: date}
		if dp, ok := punches[punch.DayKey{EmpCode: empCode, Date: date}]; ok {
			in, out := dp.In, dp.Out
			hours := workedHours(s.policy, in, out)
			row.ClockIn, row.ClockOut, row.WorkedHours = &in, &out, &hours
		}
		row.Status = classify(s.policy, row)
		days = append(days, row)
	}
	return days
}

// summarize counts statuses and sums worked hours for one employee. OFF days
// are excluded from all three counts.
func (s *AttendanceServiceImpl) summarize(rec employee.Record, days []attendance.DailyAttendance) attendance.EmployeeSummary {
	sum := attendance.EmployeeSummary{
		EmpCode:  rec.EmpCode,
		EmpName:  rec.EmpName,
		DeptName: deptOrNA(rec.DeptName),
	}
	var hours float64
	for _, d := range days {
		switch d.Status {
		case attendance.StatusPresent:
			sum.PresentCount++
		case attendance.StatusHalfDay:
			sum.HalfDayCount++
		case attendance.StatusAbsent:
			sum.AbsentCount++
		}
		if d.WorkedHours != nil {
			hours += *d.WorkedHours
		}
	}
	sum.TotalHours = round2(hours)
	return sum
}

// dedupeRoster keeps the first record per emp_code and orders the roster
// ascending by emp_code, the order employees appear in the rendered reports.
func dedupeRoster(roster []employee.Record) []employee.Record {
	seen := make(map[string]struct{}, len(roster))
	out := make([]employee.Record, 0, len(roster))
	for _, rec := range roster {
		if _, ok := seen[rec.EmpCode]; ok {
			slog.Warn("duplicate emp_code in roster, keeping first", "emp_code", rec.EmpCode)
			continue
		}
		seen[rec.EmpCode] = struct{}{}
		out = append(out, rec)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].EmpCode < out[j].EmpCode })
	return out
}

func deptOrNA(dept *string) string {
	if dept == nil || *dept == "" {
		return "N/A"
	}
	return *dept
}

// timeOfDay returns the offset from midnight on t's day.
func timeOfDay(t time.Time) time.Duration {
	return time.Duration(t.Hour())*time.Hour +
		time.Duration(t.Minute())*time.Minute +
		time.Duration(t.Second())*time.Second +
		time.Duration(t.Nanosecond())
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
