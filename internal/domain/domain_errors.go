package domain

import "errors"

var (
	ErrReminderNotFound = errors.New("reminder not found")
	ErrCategoryNotFound = errors.New("category not found")

	ErrInvalidReminderID   = errors.New("invalid reminder ID")
	ErrInvalidCompletionID = errors.New("invalid completion ID")
	ErrInvalidCategoryID   = errors.New("invalid category ID")

	ErrEmptyReminderTitle = errors.New("reminder title cannot be empty")
	ErrEmptyCategoryName  = errors.New("category name cannot be empty")
	ErrMissingSchedule    = errors.New("reminder schedule is required")

	ErrInvalidIntervalUnit = errors.New("invalid interval unit")
	ErrInvalidClockTime    = errors.New("invalid time: expected HH:mm")
	ErrInvalidWeekday      = errors.New("invalid weekday: must be between 1 (Sunday) and 7 (Saturday)")

	ErrInvalidCompletionSource = errors.New("invalid completion source")
	ErrInvalidVibrationPattern = errors.New("invalid vibration pattern")
)
