package app

import (
	"context"
)

type ReminderUseCase interface {
	CreateReminder(ctx context.Context, input CreateReminderInput) (ReminderOutput, error)
	UpdateReminder(ctx context.Context, input UpdateReminderInput) (ReminderOutput, error)
	SetEnabled(ctx context.Context, input SetEnabledInput) (ReminderOutput, error)
	DeleteReminder(ctx context.Context, input DeleteReminderInput) error
	GetReminder(ctx context.Context, input GetReminderInput) (ReminderOutput, error)
	ListReminders(ctx context.Context) (RemindersOutput, error)
	GetUpcoming(ctx context.Context, input GetUpcomingInput) (UpcomingOutput, error)
	ImportReminders(ctx context.Context, input ImportRemindersInput) (ImportOutput, error)
	// Rehydrate re-registers every stored reminder, e.g. at startup.
	Rehydrate(ctx context.Context) (NotificationSyncOutput, error)
}
