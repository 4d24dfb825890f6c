package attendance

import "time"

// Policy is the immutable classification policy shared by the worked-hours
// calculator and the status classifier. Durations for LateCutoff and
// LunchStart are offsets from midnight on the punch day.
type Policy struct {
	// LateCutoff is the clock-in time-of-day after which an arrival counts
	// as late. The boundary itself is on time: an arrival at exactly the
	// cutoff is not late.
	LateCutoff time.Duration

	// LunchStart and LunchDuration define the midday window. A punch
	// interval overlapping [LunchStart, LunchStart+LunchDuration) gets a
	// flat LunchDuration deduction, never pro-rated.
	LunchStart    time.Duration
	LunchDuration time.Duration

	// FullDayHours is the worked-hours threshold for a present day.
	FullDayHours float64

	// DayOff is the fixed weekly day off.
	DayOff time.Weekday
}

// DefaultPolicy returns the company policy: 09:15 late cutoff, 45-minute
// lunch from 13:00, 8-hour full day, Sundays off.
func DefaultPolicy() Policy {
	return Policy{
		LateCutoff:    9*time.Hour + 15*time.Minute,
		LunchStart:    13 * time.Hour,
		LunchDuration: 45 * time.Minute,
		FullDayHours:  8,
		DayOff:        time.Sunday,
	}
}
