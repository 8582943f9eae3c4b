// Package recurrence previews when compiled triggers fire next.
package recurrence

import (
	"fmt"
	"slices"
	"time"

	"github.com/teambition/rrule-go"

	"github.com/KasumiMercury/primind-habit-remind/internal/domain"
)

// MaxPreview bounds how many fire times one call returns.
const MaxPreview = 50

var weekdays = []rrule.Weekday{rrule.SU, rrule.MO, rrule.TU, rrule.WE, rrule.TH, rrule.FR, rrule.SA}

// NextFireTimes merges the upcoming fire times of every trigger, strictly
// after after, in loc. Interval triggers are anchored at after.
func NextFireTimes(specs []domain.TriggerSpec, after time.Time, loc *time.Location, count int) ([]time.Time, error) {
	if count <= 0 {
		return []time.Time{}, nil
	}

	count = min(count, MaxPreview)

	if loc == nil {
		loc = time.Local
	}

	after = after.In(loc).Truncate(time.Second)

	var out []time.Time

	for _, spec := range specs {
		rule, err := ruleFor(spec.Trigger, after)
		if err != nil {
			return nil, fmt.Errorf("trigger %s: %w", spec.IdentifierSuffix, err)
		}

		out = append(out, take(rule, after, count)...)
	}

	slices.SortFunc(out, func(a, b time.Time) int { return a.Compare(b) })
	out = slices.CompactFunc(out, func(a, b time.Time) bool { return a.Equal(b) })

	if len(out) > count {
		out = out[:count]
	}

	return out, nil
}

func ruleFor(trigger domain.Trigger, after time.Time) (*rrule.RRule, error) {
	startOfDay := time.Date(after.Year(), after.Month(), after.Day(), 0, 0, 0, 0, after.Location())

	switch t := trigger.(type) {
	case domain.TimeIntervalTrigger:
		if t.Seconds < 1 {
			return nil, fmt.Errorf("interval must be at least 1s, got %d", t.Seconds)
		}

		opt := rrule.ROption{
			Freq:     rrule.SECONDLY,
			Interval: t.Seconds,
			Dtstart:  after,
		}
		if !t.Repeats {
			opt.Dtstart = after.Add(time.Duration(t.Seconds) * time.Second)
			opt.Count = 1
		}

		return rrule.NewRRule(opt)

	case domain.DailyTrigger:
		return rrule.NewRRule(rrule.ROption{
			Freq:     rrule.DAILY,
			Dtstart:  startOfDay,
			Byhour:   []int{t.Hour},
			Byminute: []int{t.Minute},
			Bysecond: []int{0},
		})

	case domain.WeeklyTrigger:
		if t.Weekday < 1 || t.Weekday > 7 {
			return nil, fmt.Errorf("%w: %d", domain.ErrInvalidWeekday, t.Weekday)
		}

		return rrule.NewRRule(rrule.ROption{
			Freq:      rrule.WEEKLY,
			Dtstart:   startOfDay,
			Byweekday: []rrule.Weekday{weekdays[t.Weekday-1]},
			Byhour:    []int{t.Hour},
			Byminute:  []int{t.Minute},
			Bysecond:  []int{0},
		})

	default:
		return nil, fmt.Errorf("unsupported trigger type %T", trigger)
	}
}

func take(rule *rrule.RRule, after time.Time, count int) []time.Time {
	out := make([]time.Time, 0, count)
	next := rule.Iterator()

	for len(out) < count {
		t, ok := next()
		if !ok {
			break
		}

		if t.After(after) {
			out = append(out, t)
		}
	}

	return out
}
