package app

import "time"

type RecordCompletionInput struct {
	ReminderID string
	Source     string
	// CompletedAt defaults to now.
	CompletedAt *time.Time
}

type ListCompletionsInput struct {
	ReminderID string
}

type GetStreakInput struct {
	ReminderID string
}
