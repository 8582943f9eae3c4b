package domain

import (
	"time"

	"cloud.google.com/go/civil"
)

// DayKey is the calendar day t falls on as seen from loc. A nil loc means
// the zone t already carries.
func DayKey(t time.Time, loc *time.Location) civil.Date {
	if loc != nil {
		t = t.In(loc)
	}

	return civil.DateOf(t)
}

// TrailingDays lists the n calendar days ending on today, oldest first.
func TrailingDays(today civil.Date, n int) []civil.Date {
	if n <= 0 {
		return nil
	}

	days := make([]civil.Date, n)
	for i := range n {
		days[i] = today.AddDays(i - n + 1)
	}

	return days
}

// DayLabel renders a day as "Mon 12".
func DayLabel(d civil.Date) string {
	return d.In(time.UTC).Format("Mon 2")
}
