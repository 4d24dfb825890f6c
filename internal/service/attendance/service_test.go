package attendance

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/supremeauto/attendance-report-go/internal/domain/attendance"
	"github.com/supremeauto/attendance-report-go/internal/domain/employee"
	"github.com/supremeauto/attendance-report-go/internal/domain/punch"
)

type stubPunchSource struct {
	events []punch.Event
	err    error
}

func (s stubPunchSource) Events(ctx context.Context, start, end time.Time) ([]punch.Event, error) {
	return s.events, s.err
}

type stubRosterSource struct {
	roster []employee.Record
	err    error
}

func (s stubRosterSource) Roster(ctx context.Context) ([]employee.Record, error) {
	return s.roster, s.err
}

func ts(t *testing.T, value string) time.Time {
	t.Helper()
	parsed, err := time.Parse("2006-01-02 15:04:05", value)
	require.NoError(t, err)
	return parsed
}

func fixedClock(t *testing.T, value string) Clock {
	now := ts(t, value)
	return func() time.Time { return now }
}

func fptr(v float64) *float64 { return &v }

func tptr(v time.Time) *time.Time { return &v }

// ===== WINDOW =====

func TestWindowFrom_MidMonth(t *testing.T) {
	t.Parallel()

	window := WindowFrom(ts(t, "2025-08-28 10:30:00"))

	assert.Equal(t, time.Date(2025, time.July, 26, 0, 0, 0, 0, time.UTC), window.Start)
	assert.Equal(t, time.Date(2025, time.August, 28, 0, 0, 0, 0, time.UTC), window.End)
	assert.Equal(t, 34, window.Days())
}

func TestWindowFrom_JanuaryRollsToDecember(t *testing.T) {
	t.Parallel()

	window := WindowFrom(ts(t, "2026-01-15 08:00:00"))

	assert.Equal(t, time.Date(2025, time.December, 26, 0, 0, 0, 0, time.UTC), window.Start)
	assert.Equal(t, time.Date(2026, time.January, 15, 0, 0, 0, 0, time.UTC), window.End)
}

func TestWindowDates_ContiguousInclusive(t *testing.T) {
	t.Parallel()

	window := attendance.Window{
		Start: time.Date(2025, time.June, 2, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2025, time.June, 8, 0, 0, 0, 0, time.UTC),
	}

	dates := window.Dates()

	require.Len(t, dates, 7)
	assert.Equal(t, window.Start, dates[0])
	assert.Equal(t, window.End, dates[6])
	for i := 1; i < len(dates); i++ {
		assert.Equal(t, dates[i-1].AddDate(0, 0, 1), dates[i])
	}
}

// ===== WORKED HOURS =====

func TestWorkedHours(t *testing.T) {
	t.Parallel()
	policy := attendance.DefaultPolicy()

	cases := []struct {
		name string
		in   string
		out  string
		want float64
	}{
		{"full day overlapping lunch", "2025-06-02 08:00:00", "2025-06-02 17:00:00", 8.25},
		{"morning only, no lunch overlap", "2025-06-02 08:00:00", "2025-06-02 12:30:00", 4.5},
		{"out exactly at lunch start, no deduction", "2025-06-02 08:00:00", "2025-06-02 13:00:00", 5.0},
		{"in exactly at lunch end, no deduction", "2025-06-02 13:45:00", "2025-06-02 18:00:00", 4.25},
		{"entirely inside lunch, flat deduction", "2025-06-02 13:00:00", "2025-06-02 13:30:00", -0.25},
		{"reversed pair stays negative", "2025-06-02 17:00:00", "2025-06-02 09:00:00", -8.0},
		{"single punch", "2025-06-02 09:00:00", "2025-06-02 09:00:00", 0.0},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := workedHours(policy, ts(t, c.in), ts(t, c.out))
			assert.InDelta(t, c.want, got, 1e-9)
			// pure: identical inputs always produce identical output
			assert.Equal(t, got, workedHours(policy, ts(t, c.in), ts(t, c.out)))
		})
	}
}

// ===== PUNCH AGGREGATION =====

func TestAggregate_FirstAndLastPunchPerDay(t *testing.T) {
	t.Parallel()
	roster := []employee.Record{{EmpCode: "E1", EmpName: "Alice"}}

	// Deliberately unordered.
	events := []punch.Event{
		{EmpCode: "E1", Timestamp: ts(t, "2025-06-02 12:00:00")},
		{EmpCode: "E1", Timestamp: ts(t, "2025-06-02 18:02:00")},
		{EmpCode: "E1", Timestamp: ts(t, "2025-06-02 09:12:00")},
		{EmpCode: "E1", Timestamp: ts(t, "2025-06-03 08:45:00")},
	}

	punches, dropped := aggregate(events, roster)

	assert.Zero(t, dropped)
	require.Len(t, punches, 2)

	day1 := punches[punch.DayKey{EmpCode: "E1", Date: time.Date(2025, time.June, 2, 0, 0, 0, 0, time.UTC)}]
	assert.Equal(t, ts(t, "2025-06-02 09:12:00"), day1.In)
	assert.Equal(t, ts(t, "2025-06-02 18:02:00"), day1.Out)

	// A single event is a legitimate single-punch day: in == out.
	day2 := punches[punch.DayKey{EmpCode: "E1", Date: time.Date(2025, time.June, 3, 0, 0, 0, 0, time.UTC)}]
	assert.Equal(t, day2.In, day2.Out)
}

func TestAggregate_UnknownEmployeeDroppedAndCounted(t *testing.T) {
	t.Parallel()
	roster := []employee.Record{{EmpCode: "E1", EmpName: "Alice"}}

	events := []punch.Event{
		{EmpCode: "E1", Timestamp: ts(t, "2025-06-02 09:00:00")},
		{EmpCode: "GHOST", Timestamp: ts(t, "2025-06-02 09:00:00")},
		{EmpCode: "GHOST", Timestamp: ts(t, "2025-06-02 17:00:00")},
	}

	punches, dropped := aggregate(events, roster)

	assert.Equal(t, 2, dropped)
	assert.Len(t, punches, 1)
}

// ===== CLASSIFICATION =====

func TestClassify(t *testing.T) {
	t.Parallel()
	policy := attendance.DefaultPolicy()

	monday := time.Date(2025, time.June, 2, 0, 0, 0, 0, time.UTC)
	sunday := time.Date(2025, time.June, 8, 0, 0, 0, 0, time.UTC)

	cases := []struct {
		name string
		row  attendance.DailyAttendance
		want attendance.Status
	}{
		{
			"sunday is off even with a full day of punches",
			attendance.DailyAttendance{
				Date:        sunday,
				ClockIn:     tptr(ts(t, "2025-06-08 08:00:00")),
				ClockOut:    tptr(ts(t, "2025-06-08 17:30:00")),
				WorkedHours: fptr(8.75),
			},
			attendance.StatusDayOff,
		},
		{
			"no punches on a weekday",
			attendance.DailyAttendance{Date: monday},
			attendance.StatusAbsent,
		},
		{
			"full hours present regardless of arrival",
			attendance.DailyAttendance{
				Date:        monday,
				ClockIn:     tptr(ts(t, "2025-06-02 10:00:00")),
				ClockOut:    tptr(ts(t, "2025-06-02 19:00:00")),
				WorkedHours: fptr(8.25),
			},
			attendance.StatusPresent,
		},
		{
			"late arrival with short hours",
			attendance.DailyAttendance{
				Date:        monday,
				ClockIn:     tptr(ts(t, "2025-06-02 09:16:00")),
				ClockOut:    tptr(ts(t, "2025-06-02 15:00:00")),
				WorkedHours: fptr(4.99),
			},
			attendance.StatusHalfDay,
		},
		{
			"late arrival with no computable hours",
			attendance.DailyAttendance{
				Date:    monday,
				ClockIn: tptr(ts(t, "2025-06-02 09:16:00")),
			},
			attendance.StatusHalfDay,
		},
		{
			"arrival at exactly the cutoff is on time",
			attendance.DailyAttendance{
				Date:        monday,
				ClockIn:     tptr(ts(t, "2025-06-02 09:15:00")),
				ClockOut:    tptr(ts(t, "2025-06-02 14:00:00")),
				WorkedHours: fptr(4.0),
			},
			attendance.StatusPresent,
		},
		{
			"one second past the cutoff is late",
			attendance.DailyAttendance{
				Date:        monday,
				ClockIn:     tptr(ts(t, "2025-06-02 09:15:01")),
				ClockOut:    tptr(ts(t, "2025-06-02 14:00:00")),
				WorkedHours: fptr(3.99),
			},
			attendance.StatusHalfDay,
		},
		{
			"early arrival short day is still present",
			attendance.DailyAttendance{
				Date:        monday,
				ClockIn:     tptr(ts(t, "2025-06-02 08:00:00")),
				ClockOut:    tptr(ts(t, "2025-06-02 12:00:00")),
				WorkedHours: fptr(4.0),
			},
			attendance.StatusPresent,
		},
		{
			"unreadable clock-in falls back to absent",
			attendance.DailyAttendance{
				Date:    monday,
				EmpCode: "E1",
				ClockIn: &time.Time{},
			},
			attendance.StatusAbsent,
		},
		{
			"clock-out without clock-in falls back to absent",
			attendance.DailyAttendance{
				Date:     monday,
				ClockOut: tptr(ts(t, "2025-06-02 17:00:00")),
			},
			attendance.StatusAbsent,
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, classify(policy, c.row))
		})
	}
}

// ===== GRID EXPANSION + SUMMARY =====

// One employee, one week ending on a Sunday: punches on five weekdays
// (08:55 in, 18:40 out => 9.00 worked), nothing on the Saturday.
func TestExpandAndSummarize_OneWeekScenario(t *testing.T) {
	t.Parallel()

	svc := &AttendanceServiceImpl{policy: attendance.DefaultPolicy()}
	window := attendance.Window{
		Start: time.Date(2025, time.June, 2, 0, 0, 0, 0, time.UTC), // Monday
		End:   time.Date(2025, time.June, 8, 0, 0, 0, 0, time.UTC), // Sunday
	}
	rec := employee.Record{EmpCode: "E1", EmpName: "Alice"}

	var events []punch.Event
	for day := 2; day <= 6; day++ {
		date := time.Date(2025, time.June, day, 0, 0, 0, 0, time.UTC)
		events = append(events,
			punch.Event{EmpCode: "E1", Timestamp: date.Add(8*time.Hour + 55*time.Minute)},
			punch.Event{EmpCode: "E1", Timestamp: date.Add(18*time.Hour + 40*time.Minute)},
		)
	}
	punches, _ := aggregate(events, []employee.Record{rec})

	days := svc.expand("E1", window, punches)

	require.Len(t, days, 7)
	want := []attendance.Status{
		attendance.StatusPresent, attendance.StatusPresent, attendance.StatusPresent,
		attendance.StatusPresent, attendance.StatusPresent,
		attendance.StatusAbsent, attendance.StatusDayOff,
	}
	for i, day := range days {
		assert.Equal(t, want[i], day.Status, "day %s", day.Date.Format("2006-01-02"))
	}
	for _, day := range days[:5] {
		require.NotNil(t, day.WorkedHours)
		assert.InDelta(t, 9.0, *day.WorkedHours, 1e-9)
	}

	sum := svc.summarize(rec, days)
	assert.Equal(t, 5, sum.PresentCount)
	assert.Equal(t, 0, sum.HalfDayCount)
	assert.Equal(t, 1, sum.AbsentCount)
	assert.InDelta(t, 45.0, sum.TotalHours, 1e-9)
	assert.Equal(t, "N/A", sum.DeptName)
}

// ===== FULL REPORT =====

func TestBuildReport_DenseGrid(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	roster := []employee.Record{
		{EmpCode: "E1", EmpName: "Alice"},
		{EmpCode: "E2", EmpName: "Bob"},
		{EmpCode: "E3", EmpName: "Carol"},
	}
	events := []punch.Event{
		{EmpCode: "E2", Timestamp: ts(t, "2025-08-04 08:30:00")},
		{EmpCode: "E2", Timestamp: ts(t, "2025-08-04 17:45:00")},
	}

	svc := NewAttendanceService(
		stubPunchSource{events: events},
		stubRosterSource{roster: roster},
		attendance.DefaultPolicy(),
		fixedClock(t, "2025-08-28 09:00:00"),
	)

	report, err := svc.BuildReport(ctx, time.Time{})

	require.NoError(t, err)
	require.Len(t, report.Employees, 3)
	for _, emp := range report.Employees {
		require.Len(t, emp.Days, report.Window.Days())
		seen := make(map[string]bool)
		for i, day := range emp.Days {
			assert.Equal(t, emp.EmpCode, day.EmpCode)
			assert.False(t, seen[day.Date.Format("2006-01-02")], "duplicate date")
			seen[day.Date.Format("2006-01-02")] = true
			if i > 0 {
				assert.Equal(t, emp.Days[i-1].Date.AddDate(0, 0, 1), day.Date)
			}
		}
	}
	assert.NotEmpty(t, report.RunID)
}

func TestBuildReport_ZeroPunchEmployee(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	svc := NewAttendanceService(
		stubPunchSource{},
		stubRosterSource{roster: []employee.Record{{EmpCode: "E1", EmpName: "Alice"}}},
		attendance.DefaultPolicy(),
		fixedClock(t, "2025-08-28 09:00:00"),
	)

	report, err := svc.BuildReport(ctx, time.Time{})

	require.NoError(t, err)
	require.Len(t, report.Employees, 1)
	emp := report.Employees[0]
	for _, day := range emp.Days {
		if day.Date.Weekday() == time.Sunday {
			assert.Equal(t, attendance.StatusDayOff, day.Status)
		} else {
			assert.Equal(t, attendance.StatusAbsent, day.Status)
		}
		assert.Nil(t, day.ClockIn)
		assert.Nil(t, day.ClockOut)
		assert.Nil(t, day.WorkedHours)
	}
	assert.Zero(t, emp.Summary.TotalHours)
	assert.Zero(t, emp.Summary.PresentCount)
}

// Counts plus OFF days partition the window exactly.
func TestBuildReport_StatusCountsPartitionWindow(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	roster := []employee.Record{
		{EmpCode: "E1", EmpName: "Alice"},
		{EmpCode: "E2", EmpName: "Bob"},
	}
	events := []punch.Event{
		{EmpCode: "E1", Timestamp: ts(t, "2025-08-04 08:30:00")},
		{EmpCode: "E1", Timestamp: ts(t, "2025-08-04 17:45:00")},
		{EmpCode: "E1", Timestamp: ts(t, "2025-08-05 09:40:00")},
		{EmpCode: "E1", Timestamp: ts(t, "2025-08-05 13:00:00")},
		{EmpCode: "E2", Timestamp: ts(t, "2025-08-06 10:00:00")},
	}

	svc := NewAttendanceService(
		stubPunchSource{events: events},
		stubRosterSource{roster: roster},
		attendance.DefaultPolicy(),
		fixedClock(t, "2025-08-28 09:00:00"),
	)

	report, err := svc.BuildReport(ctx, time.Time{})

	require.NoError(t, err)
	for _, emp := range report.Employees {
		off := 0
		for _, day := range emp.Days {
			if day.Status == attendance.StatusDayOff {
				off++
			}
		}
		total := emp.Summary.PresentCount + emp.Summary.HalfDayCount + emp.Summary.AbsentCount + off
		assert.Equal(t, report.Window.Days(), total, "emp %s", emp.EmpCode)
	}
}

func TestBuildReport_UnmatchedPunchesSurfaced(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	svc := NewAttendanceService(
		stubPunchSource{events: []punch.Event{
			{EmpCode: "GHOST", Timestamp: ts(t, "2025-08-04 09:00:00")},
		}},
		stubRosterSource{roster: []employee.Record{{EmpCode: "E1", EmpName: "Alice"}}},
		attendance.DefaultPolicy(),
		fixedClock(t, "2025-08-28 09:00:00"),
	)

	report, err := svc.BuildReport(ctx, time.Time{})

	require.NoError(t, err)
	assert.Equal(t, 1, report.DroppedPunches)
	require.Len(t, report.Employees, 1)
}

func TestBuildReport_EmptyRosterDegradesGracefully(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	svc := NewAttendanceService(
		stubPunchSource{events: []punch.Event{
			{EmpCode: "E1", Timestamp: ts(t, "2025-08-04 09:00:00")},
		}},
		stubRosterSource{err: assert.AnError},
		attendance.DefaultPolicy(),
		fixedClock(t, "2025-08-28 09:00:00"),
	)

	report, err := svc.BuildReport(ctx, time.Time{})

	require.NoError(t, err)
	assert.Empty(t, report.Employees)
}

func TestBuildReport_PunchSourceFailureYieldsAbsences(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	svc := NewAttendanceService(
		stubPunchSource{err: assert.AnError},
		stubRosterSource{roster: []employee.Record{{EmpCode: "E1", EmpName: "Alice"}}},
		attendance.DefaultPolicy(),
		fixedClock(t, "2025-08-28 09:00:00"),
	)

	report, err := svc.BuildReport(ctx, time.Time{})

	require.NoError(t, err)
	require.Len(t, report.Employees, 1)
	require.Len(t, report.Employees[0].Days, report.Window.Days())
	for _, day := range report.Employees[0].Days {
		assert.Contains(t, []attendance.Status{attendance.StatusAbsent, attendance.StatusDayOff}, day.Status)
	}
}

func TestBuildReport_EmployeesOrderedByEmpCode(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	roster := []employee.Record{
		{EmpCode: "E3", EmpName: "Carol"},
		{EmpCode: "E1", EmpName: "Alice"},
		{EmpCode: "E1", EmpName: "Duplicate Alice"}, // dropped, first wins
		{EmpCode: "E2", EmpName: "Bob"},
	}

	svc := NewAttendanceService(
		stubPunchSource{},
		stubRosterSource{roster: roster},
		attendance.DefaultPolicy(),
		fixedClock(t, "2025-08-28 09:00:00"),
	)

	report, err := svc.BuildReport(ctx, time.Time{})

	require.NoError(t, err)
	require.Len(t, report.Employees, 3)
	assert.Equal(t, "E1", report.Employees[0].EmpCode)
	assert.Equal(t, "Alice", report.Employees[0].EmpName)
	assert.Equal(t, "E2", report.Employees[1].EmpCode)
	assert.Equal(t, "E3", report.Employees[2].EmpCode)
}

func TestBuildReport_AsOfOverridesClock(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	svc := NewAttendanceService(
		stubPunchSource{},
		stubRosterSource{},
		attendance.DefaultPolicy(),
		fixedClock(t, "2025-08-28 09:00:00"),
	)

	report, err := svc.BuildReport(ctx, ts(t, "2026-01-10 00:00:00"))

	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, time.December, 26, 0, 0, 0, 0, time.UTC), report.Window.Start)
	assert.Equal(t, time.Date(2026, time.January, 10, 0, 0, 0, 0, time.UTC), report.Window.End)
}
