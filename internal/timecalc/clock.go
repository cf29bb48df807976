package timecalc

import (
	"fmt"
	"time"
)

// Sentinel values accepted by ResolveClock.
const (
	ClockNow  = "NOW"
	DateToday = "TODAY"
)

// ResolveClock turns a wall-clock time and date given on the command line into
// a UTC instant.
//
// clock is either ClockNow or "HH:MM"; date is either DateToday or
// "YYYY-MM-DD". The HH:MM value is interpreted in loc, so the active UTC offset
// (DST included) is applied. A result later than now is assumed to belong to the
// previous day and moved back 24 hours.
func ResolveClock(now time.Time, clock, date string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.Local
	}
	utcNow := now.UTC()
	if clock == ClockNow {
		if date != DateToday {
			return time.Time{}, fmt.Errorf("a date can only be given together with a time")
		}
		return utcNow, nil
	}

	hm, err := time.Parse("15:04", clock)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid time %q, expected HH:MM", clock)
	}

	var day Date
	if date == DateToday {
		day = DateOf(now.In(loc))
	} else {
		day, err = ParseDate(date)
		if err != nil {
			return time.Time{}, err
		}
	}

	t := time.Date(day.Year, day.Month, day.Day, hm.Hour(), hm.Minute(), 0, 0, loc).UTC()
	if t.After(utcNow) {
		t = t.Add(-24 * time.Hour)
	}
	return t, nil
}
