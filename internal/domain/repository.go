package domain

import "context"

type ReminderRepository interface {
	Save(ctx context.Context, reminder *Reminder) error
	FindByID(ctx context.Context, id ReminderID) (*Reminder, error)
	FindAll(ctx context.Context) ([]*Reminder, error)
	Update(ctx context.Context, reminder *Reminder) error
	Delete(ctx context.Context, id ReminderID) error
	WithTx(ctx context.Context, fn func(reminders ReminderRepository, completions CompletionRepository) error) error
}

type CompletionRepository interface {
	Save(ctx context.Context, completion *Completion) error
	FindByReminderID(ctx context.Context, reminderID ReminderID) ([]*Completion, error)
	FindAll(ctx context.Context) ([]*Completion, error)
	DeleteByReminderID(ctx context.Context, reminderID ReminderID) (int64, error)
}

type CategoryRepository interface {
	Save(ctx context.Context, category *Category) error
	FindAll(ctx context.Context) ([]*Category, error)
}
