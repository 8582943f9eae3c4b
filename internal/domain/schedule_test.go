package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KasumiMercury/primind-habit-remind/internal/domain"
)

func TestNewIntervalSchedule(t *testing.T) {
	tests := []struct {
		name     string
		value    int
		unit     string
		expected domain.IntervalSchedule
	}{
		{name: "minutes", value: 45, unit: "minutes", expected: domain.IntervalSchedule{Value: 45, Unit: domain.IntervalUnitMinutes}},
		{name: "hours", value: 2, unit: "hours", expected: domain.IntervalSchedule{Value: 2, Unit: domain.IntervalUnitHours}},
		{name: "zero clamps to one", value: 0, unit: "hours", expected: domain.IntervalSchedule{Value: 1, Unit: domain.IntervalUnitHours}},
		{name: "negative clamps to one", value: -5, unit: "minutes", expected: domain.IntervalSchedule{Value: 1, Unit: domain.IntervalUnitMinutes}},
		{name: "empty unit means minutes", value: 30, unit: "", expected: domain.IntervalSchedule{Value: 30, Unit: domain.IntervalUnitMinutes}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := domain.NewIntervalSchedule(tt.value, tt.unit)

			require.NoError(t, err)
			assert.Equal(t, tt.expected, s)
		})
	}
}

func TestNewIntervalScheduleUnknownUnit(t *testing.T) {
	_, err := domain.NewIntervalSchedule(3, "days")

	assert.ErrorIs(t, err, domain.ErrInvalidIntervalUnit)
}

func TestNewDailySchedule(t *testing.T) {
	tests := []struct {
		name     string
		times    []string
		expected []string
	}{
		{name: "already normalized", times: []string{"08:00", "20:30"}, expected: []string{"08:00", "20:30"}},
		{name: "single digit components", times: []string{"9:00", " 7:5 "}, expected: []string{"09:00", "07:05"}},
		{name: "out of range is clamped", times: []string{"25:99"}, expected: []string{"23:59"}},
		{name: "blank entries dropped", times: []string{"", "  ", "18:00"}, expected: []string{"18:00"}},
		{name: "nil defaults to nine", times: nil, expected: []string{domain.DefaultClockTime}},
		{name: "only blanks default to nine", times: []string{" "}, expected: []string{domain.DefaultClockTime}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, domain.NewDailySchedule(tt.times).Times)
		})
	}
}

func TestNewWeeklyScheduleSuccess(t *testing.T) {
	weekdays := []int{4, 2}
	s, err := domain.NewWeeklySchedule(weekdays, []string{"7:00"})

	require.NoError(t, err)
	assert.Equal(t, []int{4, 2}, s.Weekdays)
	assert.Equal(t, []string{"07:00"}, s.Times)

	weekdays[0] = 7
	assert.Equal(t, 4, s.Weekdays[0], "schedule must not alias the caller's slice")
}

func TestNewWeeklyScheduleDefaults(t *testing.T) {
	s, err := domain.NewWeeklySchedule(nil, nil)

	require.NoError(t, err)
	assert.Equal(t, []int{1}, s.Weekdays)
	assert.Equal(t, []string{domain.DefaultClockTime}, s.Times)
}

func TestNewWeeklyScheduleError(t *testing.T) {
	for _, weekdays := range [][]int{{0}, {1, 8}} {
		_, err := domain.NewWeeklySchedule(weekdays, []string{"07:00"})

		assert.ErrorIs(t, err, domain.ErrInvalidWeekday)
	}
}

func TestDefaultSchedule(t *testing.T) {
	assert.Equal(t, domain.IntervalSchedule{Value: 60, Unit: domain.IntervalUnitMinutes}, domain.DefaultSchedule())
}

func TestScheduleLabel(t *testing.T) {
	tests := []struct {
		name     string
		schedule domain.Schedule
		expected string
	}{
		{
			name:     "minutes",
			schedule: domain.IntervalSchedule{Value: 30, Unit: domain.IntervalUnitMinutes},
			expected: "Every 30 min",
		},
		{
			name:     "one hour",
			schedule: domain.IntervalSchedule{Value: 1, Unit: domain.IntervalUnitHours},
			expected: "Every 1 hour",
		},
		{
			name:     "hours",
			schedule: domain.IntervalSchedule{Value: 4, Unit: domain.IntervalUnitHours},
			expected: "Every 4 hours",
		},
		{
			name:     "daily",
			schedule: domain.DailySchedule{Times: []string{"08:00", "20:00"}},
			expected: "Daily at 08:00, 20:00",
		},
		{
			name:     "weekly sorts weekdays",
			schedule: domain.WeeklySchedule{Weekdays: []int{4, 1}, Times: []string{"08:00"}},
			expected: "Sun, Wed at 08:00",
		},
		{
			name:     "unknown",
			schedule: nil,
			expected: "Scheduled",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, domain.ScheduleLabel(tt.schedule))
		})
	}
}

func TestTriggerString(t *testing.T) {
	assert.Equal(t, "every 60s", domain.TimeIntervalTrigger{Seconds: 60, Repeats: true}.String())
	assert.Equal(t, "once in 300s", domain.TimeIntervalTrigger{Seconds: 300}.String())
	assert.Equal(t, "daily at 07:05", domain.DailyTrigger{Hour: 7, Minute: 5}.String())
	assert.Equal(t, "weekly on Sat at 22:00", domain.WeeklyTrigger{Weekday: 7, Hour: 22}.String())
}
