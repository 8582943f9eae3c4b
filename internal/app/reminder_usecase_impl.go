package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/KasumiMercury/primind-habit-remind/internal/domain"
	"github.com/KasumiMercury/primind-habit-remind/internal/infra/record"
	"github.com/KasumiMercury/primind-habit-remind/internal/infra/recurrence"
)

const DefaultUpcomingCount = 5

type reminderUseCaseImpl struct {
	reminders  domain.ReminderRepository
	reconciler *NotificationReconciler
	compiler   *domain.ScheduleCompiler
	clock      Clock
}

func NewReminderUseCase(
	reminders domain.ReminderRepository,
	reconciler *NotificationReconciler,
	clock Clock,
) ReminderUseCase {
	return &reminderUseCaseImpl{
		reminders:  reminders,
		reconciler: reconciler,
		compiler:   domain.NewScheduleCompiler(),
		clock:      clock,
	}
}

func (uc *reminderUseCaseImpl) CreateReminder(ctx context.Context, input CreateReminderInput) (ReminderOutput, error) {
	slog.DebugContext(ctx, "creating reminder",
		"title", input.Title,
		"schedule_kind", input.Schedule.Kind,
	)

	schedule, err := input.Schedule.toSchedule()
	if err != nil {
		return ReminderOutput{}, err
	}

	alert, err := input.Alert.toAlert()
	if err != nil {
		return ReminderOutput{}, err
	}

	categoryID, err := parseCategoryID(input.CategoryID)
	if err != nil {
		return ReminderOutput{}, err
	}

	now := uc.clock()

	reminder, err := domain.NewReminder(input.Title, schedule, alert, categoryID, now)
	if err != nil {
		return ReminderOutput{}, NewValidationError("title", err.Error())
	}

	if input.Enabled != nil {
		reminder.SetEnabled(*input.Enabled, now)
	}

	if err := uc.reminders.Save(ctx, reminder); err != nil {
		slog.ErrorContext(ctx, "failed to save reminder",
			"reminder_id", reminder.ID().String(),
			"error", err,
		)

		return ReminderOutput{}, fmt.Errorf("%w: %v", ErrInternalError, err)
	}

	result := uc.reconciler.Reconcile(ctx, reminder)

	slog.InfoContext(ctx, "reminder created",
		"reminder_id", reminder.ID().String(),
		"scheduled", len(result.Scheduled),
	)

	out := FromReminder(reminder)
	out.Notifications = fromReconcile(result)

	return out, nil
}

func (uc *reminderUseCaseImpl) UpdateReminder(ctx context.Context, input UpdateReminderInput) (ReminderOutput, error) {
	slog.DebugContext(ctx, "updating reminder",
		"reminder_id", input.ID,
	)

	reminder, err := uc.find(ctx, input.ID)
	if err != nil {
		return ReminderOutput{}, err
	}

	schedule, err := input.Schedule.toSchedule()
	if err != nil {
		return ReminderOutput{}, err
	}

	alert, err := input.Alert.toAlert()
	if err != nil {
		return ReminderOutput{}, err
	}

	categoryID, err := parseCategoryID(input.CategoryID)
	if err != nil {
		return ReminderOutput{}, err
	}

	if err := reminder.Update(input.Title, schedule, alert, categoryID, uc.clock()); err != nil {
		return ReminderOutput{}, NewValidationError("title", err.Error())
	}

	if err := uc.reminders.Update(ctx, reminder); err != nil {
		slog.ErrorContext(ctx, "failed to update reminder",
			"reminder_id", input.ID,
			"error", err,
		)

		return ReminderOutput{}, fmt.Errorf("%w: %v", ErrInternalError, err)
	}

	out := FromReminder(reminder)
	out.Notifications = fromReconcile(uc.reconciler.Reconcile(ctx, reminder))

	return out, nil
}

func (uc *reminderUseCaseImpl) SetEnabled(ctx context.Context, input SetEnabledInput) (ReminderOutput, error) {
	slog.DebugContext(ctx, "setting reminder enabled",
		"reminder_id", input.ID,
		"enabled", input.Enabled,
	)

	reminder, err := uc.find(ctx, input.ID)
	if err != nil {
		return ReminderOutput{}, err
	}

	reminder.SetEnabled(input.Enabled, uc.clock())

	if err := uc.reminders.Update(ctx, reminder); err != nil {
		slog.ErrorContext(ctx, "failed to update reminder",
			"reminder_id", input.ID,
			"error", err,
		)

		return ReminderOutput{}, fmt.Errorf("%w: %v", ErrInternalError, err)
	}

	// reconciles even when the flag did not change
	out := FromReminder(reminder)
	out.Notifications = fromReconcile(uc.reconciler.Reconcile(ctx, reminder))

	return out, nil
}

// DeleteReminder cancels the reminder's notifications, snoozes included,
// then deletes it together with its completions.
func (uc *reminderUseCaseImpl) DeleteReminder(ctx context.Context, input DeleteReminderInput) error {
	slog.DebugContext(ctx, "deleting reminder",
		"reminder_id", input.ID,
	)

	reminder, err := uc.find(ctx, input.ID)
	if err != nil {
		return err
	}

	uc.reconciler.CancelReminder(ctx, reminder.ID())

	var removedCompletions int64

	if err := uc.reminders.WithTx(ctx, func(reminders domain.ReminderRepository, completions domain.CompletionRepository) error {
		n, err := completions.DeleteByReminderID(ctx, reminder.ID())
		if err != nil {
			return err
		}

		removedCompletions = n

		return reminders.Delete(ctx, reminder.ID())
	}); err != nil {
		if errors.Is(err, domain.ErrReminderNotFound) {
			return fmt.Errorf("%w: %v", ErrNotFound, err)
		}

		slog.ErrorContext(ctx, "failed to delete reminder",
			"reminder_id", input.ID,
			"error", err,
		)

		return fmt.Errorf("%w: %v", ErrInternalError, err)
	}

	slog.InfoContext(ctx, "reminder deleted",
		"reminder_id", input.ID,
		"completions_deleted", removedCompletions,
	)

	return nil
}

func (uc *reminderUseCaseImpl) GetReminder(ctx context.Context, input GetReminderInput) (ReminderOutput, error) {
	reminder, err := uc.find(ctx, input.ID)
	if err != nil {
		return ReminderOutput{}, err
	}

	return FromReminder(reminder), nil
}

func (uc *reminderUseCaseImpl) ListReminders(ctx context.Context) (RemindersOutput, error) {
	reminders, err := uc.reminders.FindAll(ctx)
	if err != nil {
		slog.ErrorContext(ctx, "failed to list reminders",
			"error", err,
		)

		return RemindersOutput{}, fmt.Errorf("%w: %v", ErrInternalError, err)
	}

	return FromReminders(reminders), nil
}

// GetUpcoming previews fire times. A disabled reminder has none.
func (uc *reminderUseCaseImpl) GetUpcoming(ctx context.Context, input GetUpcomingInput) (UpcomingOutput, error) {
	count := input.Count
	if count == 0 {
		count = DefaultUpcomingCount
	}

	if count < 0 || count > recurrence.MaxPreview {
		return UpcomingOutput{}, NewValidationError("count", fmt.Sprintf("must be between 1 and %d", recurrence.MaxPreview))
	}

	reminder, err := uc.find(ctx, input.ID)
	if err != nil {
		return UpcomingOutput{}, err
	}

	out := UpcomingOutput{
		ReminderID: reminder.ID().String(),
		Enabled:    reminder.Enabled(),
		FireTimes:  []time.Time{},
	}

	if !reminder.Enabled() {
		return out, nil
	}

	now := uc.clock()

	fireTimes, err := recurrence.NextFireTimes(uc.compiler.Compile(reminder.Schedule()), now, now.Location(), count)
	if err != nil {
		slog.WarnContext(ctx, "failed to preview fire times",
			"reminder_id", input.ID,
			"error", err,
		)

		return UpcomingOutput{}, fmt.Errorf("%w: %v", ErrInternalError, err)
	}

	out.FireTimes = fireTimes

	return out, nil
}

// ImportReminders stores every record a known schema accepts, replacing a
// reminder with the same id, and reports the rest without failing.
func (uc *reminderUseCaseImpl) ImportReminders(ctx context.Context, input ImportRemindersInput) (ImportOutput, error) {
	out := ImportOutput{
		Imported:     []ImportedRecord{},
		Unrecognized: []UnrecognizedRecord{},
	}

	decoded := make([]*domain.Reminder, 0, len(input.Records))

	for i, raw := range input.Records {
		switch res := record.DecodeReminder(raw).(type) {
		case record.Decoded:
			decoded = append(decoded, res.Reminder)
			out.Imported = append(out.Imported, ImportedRecord{
				Index:   i,
				ID:      res.Reminder.ID().String(),
				Version: res.Version,
			})

		case record.Unrecognized:
			slog.WarnContext(ctx, "unrecognized reminder record",
				"index", i,
				"reason", res.Reason,
			)

			out.Unrecognized = append(out.Unrecognized, UnrecognizedRecord{Index: i, Reason: res.Reason})
		}
	}

	if err := uc.reminders.WithTx(ctx, func(reminders domain.ReminderRepository, _ domain.CompletionRepository) error {
		for i, reminder := range decoded {
			created, err := upsertReminder(ctx, reminders, reminder)
			if err != nil {
				return fmt.Errorf("record %d: %w", out.Imported[i].Index, err)
			}

			out.Imported[i].Created = created
		}

		return nil
	}); err != nil {
		slog.ErrorContext(ctx, "failed to import reminders",
			"error", err,
		)

		return ImportOutput{}, fmt.Errorf("%w: %v", ErrInternalError, err)
	}

	for _, reminder := range decoded {
		uc.reconciler.Reconcile(ctx, reminder)
	}

	slog.InfoContext(ctx, "reminders imported",
		"imported", len(out.Imported),
		"unrecognized", len(out.Unrecognized),
	)

	return out, nil
}

func (uc *reminderUseCaseImpl) Rehydrate(ctx context.Context) (NotificationSyncOutput, error) {
	reminders, err := uc.reminders.FindAll(ctx)
	if err != nil {
		slog.ErrorContext(ctx, "failed to load reminders for rehydration",
			"error", err,
		)

		return NotificationSyncOutput{}, fmt.Errorf("%w: %v", ErrInternalError, err)
	}

	return *fromReconcile(uc.reconciler.Resync(ctx, reminders)), nil
}

func (uc *reminderUseCaseImpl) find(ctx context.Context, id string) (*domain.Reminder, error) {
	return findReminder(ctx, uc.reminders, id)
}

func findReminder(ctx context.Context, repo domain.ReminderRepository, id string) (*domain.Reminder, error) {
	reminderID, err := parseReminderID(id)
	if err != nil {
		return nil, err
	}

	reminder, err := repo.FindByID(ctx, reminderID)
	if err != nil {
		if errors.Is(err, domain.ErrReminderNotFound) {
			slog.DebugContext(ctx, "reminder not found",
				"reminder_id", id,
			)

			return nil, fmt.Errorf("%w: %v", ErrNotFound, err)
		}

		slog.ErrorContext(ctx, "failed to find reminder",
			"reminder_id", id,
			"error", err,
		)

		return nil, fmt.Errorf("%w: %v", ErrInternalError, err)
	}

	return reminder, nil
}

func upsertReminder(ctx context.Context, repo domain.ReminderRepository, reminder *domain.Reminder) (bool, error) {
	_, err := repo.FindByID(ctx, reminder.ID())

	switch {
	case errors.Is(err, domain.ErrReminderNotFound):
		return true, repo.Save(ctx, reminder)
	case err != nil:
		return false, err
	default:
		return false, repo.Update(ctx, reminder)
	}
}
