package domain

import (
	"math"
	"strconv"
)

const (
	MinIntervalSeconds      = 60
	FallbackIntervalSeconds = 3600

	DefaultWeekday = 1
)

type ScheduleCompiler struct{}

func NewScheduleCompiler() *ScheduleCompiler {
	return &ScheduleCompiler{}
}

// Compile expands a schedule into the triggers to register. It never fails:
//
// 1. Interval: one repeating trigger of Value minutes or hours, at least
// 60 seconds.
//
// 2. Daily: one trigger per time, in input order.
//
// 3. Weekly: weekdays (input order) x times (input order), suffix is the
// flattened index.
//
// 4. Anything else: a repeating 1 hour trigger.
//
// Empty times default to 09:00 and empty weekdays to Sunday.
func (c *ScheduleCompiler) Compile(schedule Schedule) []TriggerSpec {
	switch s := schedule.(type) {
	case IntervalSchedule:
		return []TriggerSpec{{
			IdentifierSuffix: "0",
			Trigger: TimeIntervalTrigger{
				Seconds: intervalSeconds(s),
				Repeats: true,
			},
		}}

	case DailySchedule:
		times := timesOrDefault(s.Times)
		specs := make([]TriggerSpec, 0, len(times))

		for i, t := range times {
			ct := ParseClockTime(t)
			specs = append(specs, TriggerSpec{
				IdentifierSuffix: strconv.Itoa(i),
				Trigger:          DailyTrigger{Hour: ct.Hour, Minute: ct.Minute},
			})
		}

		return specs

	case WeeklySchedule:
		weekdays := s.Weekdays
		if len(weekdays) == 0 {
			weekdays = []int{DefaultWeekday}
		}

		times := timesOrDefault(s.Times)
		specs := make([]TriggerSpec, 0, len(weekdays)*len(times))

		for _, weekday := range weekdays {
			for _, t := range times {
				ct := ParseClockTime(t)
				specs = append(specs, TriggerSpec{
					IdentifierSuffix: strconv.Itoa(len(specs)),
					Trigger: WeeklyTrigger{
						Weekday: weekday,
						Hour:    ct.Hour,
						Minute:  ct.Minute,
					},
				})
			}
		}

		return specs

	default:
		return []TriggerSpec{{
			IdentifierSuffix: "0",
			Trigger: TimeIntervalTrigger{
				Seconds: FallbackIntervalSeconds,
				Repeats: true,
			},
		}}
	}
}

func intervalSeconds(s IntervalSchedule) int {
	perUnit := 60
	if s.Unit == IntervalUnitHours {
		perUnit = 3600
	}

	if s.Value > math.MaxInt/perUnit {
		return math.MaxInt
	}

	return max(MinIntervalSeconds, s.Value*perUnit)
}

func timesOrDefault(times []string) []string {
	if len(times) == 0 {
		return []string{DefaultClockTime}
	}

	return times
}
