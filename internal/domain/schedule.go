package domain

import (
	"fmt"
	"strings"
)

type ScheduleKind string

const (
	ScheduleKindInterval ScheduleKind = "interval"
	ScheduleKindDaily    ScheduleKind = "daily"
	ScheduleKindWeekly   ScheduleKind = "weekly"
)

type IntervalUnit string

const (
	IntervalUnitMinutes IntervalUnit = "minutes"
	IntervalUnitHours   IntervalUnit = "hours"
)

func NewIntervalUnit(u string) (IntervalUnit, error) {
	switch u {
	case string(IntervalUnitMinutes), string(IntervalUnitHours):
		return IntervalUnit(u), nil
	default:
		return "", fmt.Errorf("%w: %s", ErrInvalidIntervalUnit, u)
	}
}

// Schedule is the declarative recurrence of a reminder. The concrete types
// are IntervalSchedule, DailySchedule and WeeklySchedule.
type Schedule interface {
	Kind() ScheduleKind
}

// IntervalSchedule fires every Value units, indefinitely.
type IntervalSchedule struct {
	Value int
	Unit  IntervalUnit
}

// DailySchedule fires every day at each "HH:mm" in Times.
type DailySchedule struct {
	Times []string
}

// WeeklySchedule fires at every Weekdays x Times pair. Weekdays run from
// 1 (Sunday) to 7 (Saturday).
type WeeklySchedule struct {
	Weekdays []int
	Times    []string
}

func (IntervalSchedule) Kind() ScheduleKind { return ScheduleKindInterval }
func (DailySchedule) Kind() ScheduleKind    { return ScheduleKindDaily }
func (WeeklySchedule) Kind() ScheduleKind   { return ScheduleKindWeekly }

// DefaultIntervalMinutes is the interval a schedule of unknown kind falls
// back to.
const DefaultIntervalMinutes = 60

// DefaultSchedule is what an unknown or missing schedule kind becomes.
func DefaultSchedule() IntervalSchedule {
	return IntervalSchedule{Value: DefaultIntervalMinutes, Unit: IntervalUnitMinutes}
}

// NewIntervalSchedule clamps value to at least 1. An empty unit means
// minutes; any other unknown unit is rejected.
func NewIntervalSchedule(value int, unit string) (IntervalSchedule, error) {
	u := IntervalUnitMinutes

	if unit != "" {
		var err error

		u, err = NewIntervalUnit(unit)
		if err != nil {
			return IntervalSchedule{}, err
		}
	}

	return IntervalSchedule{Value: max(1, value), Unit: u}, nil
}

// NewDailySchedule never fails: blank times are dropped, the rest are
// normalized to "HH:mm", and an empty list becomes 09:00.
func NewDailySchedule(times []string) DailySchedule {
	return DailySchedule{Times: normalizeTimes(times)}
}

// NewWeeklySchedule normalizes times like NewDailySchedule and defaults
// empty weekdays to Sunday. A weekday outside 1..7 is rejected.
func NewWeeklySchedule(weekdays []int, times []string) (WeeklySchedule, error) {
	for _, d := range weekdays {
		if d < 1 || d > 7 {
			return WeeklySchedule{}, fmt.Errorf("%w: %d", ErrInvalidWeekday, d)
		}
	}

	days := []int{1}
	if len(weekdays) > 0 {
		days = make([]int, len(weekdays))
		copy(days, weekdays)
	}

	return WeeklySchedule{Weekdays: days, Times: normalizeTimes(times)}, nil
}

func normalizeTimes(times []string) []string {
	out := make([]string, 0, len(times))

	for _, t := range times {
		if strings.TrimSpace(t) == "" {
			continue
		}

		out = append(out, ParseClockTime(t).String())
	}

	if len(out) == 0 {
		return []string{DefaultClockTime}
	}

	return out
}
