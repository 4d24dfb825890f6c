package attendance

import (
	"time"

	"github.com/supremeauto/attendance-report-go/internal/domain/attendance"
)

// Clock supplies "now" for window computation, injectable so tests can pin it.
type Clock func() time.Time

// WindowFrom computes the payroll reporting window for the given instant:
// the 26th of the previous month (December 26 of the prior year when the
// instant falls in January) through the instant's date, both inclusive.
func WindowFrom(now time.Time) attendance.Window {
	today := dateOf(now)
	var start time.Time
	if today.Month() == time.January {
		start = time.Date(today.Year()-1, time.December, 26, 0, 0, 0, 0, time.UTC)
	} else {
		start = time.Date(today.Year(), today.Month()-1, 26, 0, 0, 0, 0, time.UTC)
	}
	return attendance.Window{Start: start, End: today}
}

// dateOf strips the time component, normalizing to midnight UTC so grid dates
// and punch-day keys compare equal.
func dateOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// endOfDay returns 23:59:59 on the given date, the upper bound handed to the
// punch source.
func endOfDay(d time.Time) time.Time {
	return d.Add(24*time.Hour - time.Second)
}
