package app

import (
	"context"
	"time"
)

type ActionKind string

const (
	ActionKindMarkDone ActionKind = "mark_done"
	ActionKindSnooze   ActionKind = "snooze"
	// ActionKindOpen is any other response, including a plain tap.
	ActionKindOpen ActionKind = "open"
)

type SnoozeInput struct {
	ReminderID      string
	DurationMinutes int
}

type SnoozeOutput struct {
	ReminderID string
	Identifier string
	Seconds    int
	FireAt     time.Time
	Scheduled  bool
}

type HandleActionInput struct {
	ReminderID string
	ActionID   string
}

type ActionOutput struct {
	Kind       ActionKind
	ReminderID string
	// Completion is set for mark_done, Snooze for snooze actions.
	Completion *CompletionOutput
	Snooze     *SnoozeOutput
}

type NotificationUseCase interface {
	Snooze(ctx context.Context, input SnoozeInput) (SnoozeOutput, error)
	HandleAction(ctx context.Context, input HandleActionInput) (ActionOutput, error)
}
