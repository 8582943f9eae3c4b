package domain_test

import (
	"testing"
	"time"
	_ "time/tzdata"

	"cloud.google.com/go/civil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KasumiMercury/primind-habit-remind/internal/domain"
)

func at(loc *time.Location, year int, month time.Month, day, hour int) time.Time {
	return time.Date(year, month, day, hour, 0, 0, 0, loc)
}

func TestStreakCalculator_Compute(t *testing.T) {
	calc := domain.NewStreakCalculator()
	loc := time.FixedZone("JST", 9*60*60)
	now := at(loc, 2025, time.March, 10, 15)

	tests := []struct {
		name       string
		timestamps []time.Time
		expected   domain.StreakResult
	}{
		{
			name:       "no completions",
			timestamps: nil,
			expected:   domain.StreakResult{},
		},
		{
			name:       "single completion today",
			timestamps: []time.Time{at(loc, 2025, time.March, 10, 8)},
			expected:   domain.StreakResult{Current: 1, Longest: 1},
		},
		{
			name:       "single completion yesterday",
			timestamps: []time.Time{at(loc, 2025, time.March, 9, 23)},
			expected:   domain.StreakResult{Current: 1, Longest: 1},
		},
		{
			name:       "single completion two days ago",
			timestamps: []time.Time{at(loc, 2025, time.March, 8, 12)},
			expected:   domain.StreakResult{Current: 0, Longest: 1},
		},
		{
			name: "three consecutive days ending yesterday",
			timestamps: []time.Time{
				at(loc, 2025, time.March, 9, 7),
				at(loc, 2025, time.March, 7, 7),
				at(loc, 2025, time.March, 8, 7),
			},
			expected: domain.StreakResult{Current: 3, Longest: 3},
		},
		{
			name: "gap breaks the run",
			timestamps: []time.Time{
				at(loc, 2025, time.March, 1, 7),
				at(loc, 2025, time.March, 3, 7),
			},
			expected: domain.StreakResult{Current: 0, Longest: 1},
		},
		{
			name: "duplicates on the same day count once",
			timestamps: []time.Time{
				at(loc, 2025, time.March, 10, 6),
				at(loc, 2025, time.March, 10, 9),
				at(loc, 2025, time.March, 10, 21),
			},
			expected: domain.StreakResult{Current: 1, Longest: 1},
		},
		{
			name: "older run longer than current",
			timestamps: []time.Time{
				at(loc, 2025, time.February, 1, 7),
				at(loc, 2025, time.February, 2, 7),
				at(loc, 2025, time.February, 3, 7),
				at(loc, 2025, time.February, 4, 7),
				at(loc, 2025, time.March, 9, 7),
				at(loc, 2025, time.March, 10, 7),
			},
			expected: domain.StreakResult{Current: 2, Longest: 4},
		},
		{
			name: "run across a month boundary",
			timestamps: []time.Time{
				at(loc, 2025, time.February, 28, 7),
				at(loc, 2025, time.March, 1, 7),
			},
			expected: domain.StreakResult{Current: 0, Longest: 2},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, calc.Compute(tt.timestamps, now))
		})
	}
}

func TestStreakCalculator_UsesObserverZone(t *testing.T) {
	calc := domain.NewStreakCalculator()

	// 2025-03-09T23:30Z is still the 9th in UTC but already the 10th in Tokyo.
	ts := time.Date(2025, time.March, 9, 23, 30, 0, 0, time.UTC)
	tokyo := time.FixedZone("JST", 9*60*60)

	nowUTC := time.Date(2025, time.March, 11, 12, 0, 0, 0, time.UTC)
	assert.Equal(t, domain.StreakResult{Current: 0, Longest: 1}, calc.Compute([]time.Time{ts}, nowUTC))

	nowTokyo := nowUTC.In(tokyo)
	assert.Equal(t, domain.StreakResult{Current: 1, Longest: 1}, calc.Compute([]time.Time{ts}, nowTokyo))
}

func TestStreakCalculator_AcrossDST(t *testing.T) {
	calc := domain.NewStreakCalculator()

	ny, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	// Spring forward happens on 2025-03-09; that day is 23 hours long.
	timestamps := []time.Time{
		time.Date(2025, time.March, 8, 0, 30, 0, 0, ny),
		time.Date(2025, time.March, 9, 0, 30, 0, 0, ny),
		time.Date(2025, time.March, 10, 23, 30, 0, 0, ny),
	}
	now := time.Date(2025, time.March, 10, 23, 45, 0, 0, ny)

	assert.Equal(t, domain.StreakResult{Current: 3, Longest: 3}, calc.Compute(timestamps, now))
}

func TestStreakCalculator_ComputeDays(t *testing.T) {
	calc := domain.NewStreakCalculator()
	today := civil.Date{Year: 2024, Month: time.December, Day: 31}

	days := []civil.Date{
		{Year: 2024, Month: time.December, Day: 30},
		{Year: 2024, Month: time.December, Day: 31},
		{Year: 2024, Month: time.December, Day: 29},
	}

	assert.Equal(t, domain.StreakResult{Current: 3, Longest: 3}, calc.ComputeDays(days, today))
	assert.Equal(t, []civil.Date{
		{Year: 2024, Month: time.December, Day: 30},
		{Year: 2024, Month: time.December, Day: 31},
		{Year: 2024, Month: time.December, Day: 29},
	}, days, "input must not be reordered")
}
