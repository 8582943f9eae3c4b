package domain

import (
	"fmt"
	"slices"
	"strings"
)

var weekdayNames = []string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}

// WeekdayName maps 1 (Sunday) .. 7 (Saturday) to a short name.
func WeekdayName(weekday int) string {
	if weekday < 1 || weekday > len(weekdayNames) {
		return ""
	}

	return weekdayNames[weekday-1]
}

// ScheduleLabel renders a schedule for humans, e.g. "Every 30 min" or
// "Sun, Wed at 08:00, 20:00". Weekdays are listed in calendar order.
func ScheduleLabel(schedule Schedule) string {
	switch s := schedule.(type) {
	case IntervalSchedule:
		if s.Unit == IntervalUnitHours {
			if s.Value == 1 {
				return "Every 1 hour"
			}

			return fmt.Sprintf("Every %d hours", s.Value)
		}

		if s.Value == 1 {
			return "Every 1 minute"
		}

		return fmt.Sprintf("Every %d min", s.Value)

	case DailySchedule:
		if len(s.Times) == 0 {
			return "Daily"
		}

		return "Daily at " + strings.Join(s.Times, ", ")

	case WeeklySchedule:
		label := "Weekly"

		if len(s.Weekdays) > 0 {
			days := slices.Clone(s.Weekdays)
			slices.Sort(days)

			names := make([]string, 0, len(days))
			for _, d := range days {
				names = append(names, WeekdayName(d))
			}

			label = strings.Join(names, ", ")
		}

		if len(s.Times) > 0 {
			label += " at " + strings.Join(s.Times, ", ")
		}

		return label

	default:
		return "Scheduled"
	}
}
