package app

import (
	"github.com/KasumiMercury/primind-habit-remind/internal/domain"
)

type ScheduleInput struct {
	Kind     string
	Value    int
	Unit     string
	Times    []string
	Weekdays []int
}

type AlertInput struct {
	Ringtone  string
	Vibration string
}

type CreateReminderInput struct {
	Title      string
	Schedule   ScheduleInput
	Alert      AlertInput
	CategoryID string
	// Enabled defaults to true when nil.
	Enabled *bool
}

type UpdateReminderInput struct {
	ID         string
	Title      string
	Schedule   ScheduleInput
	Alert      AlertInput
	CategoryID string
}

type SetEnabledInput struct {
	ID      string
	Enabled bool
}

type GetReminderInput struct {
	ID string
}

type DeleteReminderInput struct {
	ID string
}

type GetUpcomingInput struct {
	ID    string
	Count int
}

// ImportRemindersInput carries raw stored reminder documents, current or
// legacy shape.
type ImportRemindersInput struct {
	Records [][]byte
}

// toSchedule normalizes rather than rejects: an unknown kind becomes the
// default interval and missing values take their defaults. Only an unknown
// interval unit or a weekday outside 1..7 is a validation error.
func (in ScheduleInput) toSchedule() (domain.Schedule, error) {
	switch domain.ScheduleKind(in.Kind) {
	case domain.ScheduleKindInterval:
		schedule, err := domain.NewIntervalSchedule(in.Value, in.Unit)
		if err != nil {
			return nil, NewValidationError("schedule.unit", err.Error())
		}

		return schedule, nil

	case domain.ScheduleKindDaily:
		return domain.NewDailySchedule(in.Times), nil

	case domain.ScheduleKindWeekly:
		schedule, err := domain.NewWeeklySchedule(in.Weekdays, in.Times)
		if err != nil {
			return nil, NewValidationError("schedule.weekdays", err.Error())
		}

		return schedule, nil

	default:
		return domain.DefaultSchedule(), nil
	}
}

func (in AlertInput) toAlert() (domain.AlertConfig, error) {
	alert, err := domain.NewAlertConfig(in.Ringtone, in.Vibration)
	if err != nil {
		return domain.AlertConfig{}, NewValidationError("alert.vibration", err.Error())
	}

	return alert, nil
}

func parseCategoryID(s string) (domain.CategoryID, error) {
	if s == "" {
		return domain.CategoryID{}, nil
	}

	id, err := domain.CategoryIDFromString(s)
	if err != nil {
		return domain.CategoryID{}, NewValidationError("category_id", err.Error())
	}

	return id, nil
}

func parseReminderID(s string) (domain.ReminderID, error) {
	id, err := domain.ReminderIDFromString(s)
	if err != nil {
		return domain.ReminderID{}, NewValidationError("id", err.Error())
	}

	return id, nil
}
