package domain

import (
	"slices"
	"time"

	"cloud.google.com/go/civil"
)

type StreakResult struct {
	Current int
	Longest int
}

type StreakCalculator struct{}

func NewStreakCalculator() *StreakCalculator {
	return &StreakCalculator{}
}

// Compute derives streaks from completion instants. Every instant is keyed
// to a day in now's zone, including ones recorded under another zone. The
// current streak survives until the end of the day after its last day.
func (c *StreakCalculator) Compute(timestamps []time.Time, now time.Time) StreakResult {
	loc := now.Location()

	days := make([]civil.Date, 0, len(timestamps))
	for _, ts := range timestamps {
		days = append(days, DayKey(ts, loc))
	}

	return c.ComputeDays(days, civil.DateOf(now))
}

// ComputeDays is Compute over day keys that are already resolved.
func (c *StreakCalculator) ComputeDays(days []civil.Date, today civil.Date) StreakResult {
	if len(days) == 0 {
		return StreakResult{}
	}

	sorted := slices.Clone(days)
	slices.SortFunc(sorted, compareDates)
	sorted = slices.Compact(sorted)

	longest := 1
	run := 1

	for i := 1; i < len(sorted); i++ {
		if sorted[i].DaysSince(sorted[i-1]) == 1 {
			run++
		} else {
			run = 1
		}

		longest = max(longest, run)
	}

	current := 0
	if last := sorted[len(sorted)-1]; last == today || last == today.AddDays(-1) {
		current = run
	}

	return StreakResult{Current: current, Longest: longest}
}

func compareDates(a, b civil.Date) int {
	switch {
	case a.Before(b):
		return -1
	case a.After(b):
		return 1
	default:
		return 0
	}
}
