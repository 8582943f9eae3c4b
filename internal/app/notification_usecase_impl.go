package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/KasumiMercury/primind-habit-remind/internal/domain"
)

type notificationUseCaseImpl struct {
	reminders   domain.ReminderRepository
	completions domain.CompletionRepository
	snoozer     *SnoozeScheduler
	clock       Clock
}

func NewNotificationUseCase(
	reminders domain.ReminderRepository,
	completions domain.CompletionRepository,
	snoozer *SnoozeScheduler,
	clock Clock,
) NotificationUseCase {
	return &notificationUseCaseImpl{
		reminders:   reminders,
		completions: completions,
		snoozer:     snoozer,
		clock:       clock,
	}
}

func (uc *notificationUseCaseImpl) Snooze(ctx context.Context, input SnoozeInput) (SnoozeOutput, error) {
	reminder, err := findReminder(ctx, uc.reminders, input.ReminderID)
	if err != nil {
		return SnoozeOutput{}, err
	}

	return uc.snooze(ctx, reminder, input.DurationMinutes)
}

// HandleAction routes a notification response: mark_done records a
// completion from the notification, snooze_<m> snoozes for m minutes and
// anything else is reported as an open.
func (uc *notificationUseCaseImpl) HandleAction(ctx context.Context, input HandleActionInput) (ActionOutput, error) {
	reminder, err := findReminder(ctx, uc.reminders, input.ReminderID)
	if err != nil {
		return ActionOutput{}, err
	}

	out := ActionOutput{ReminderID: reminder.ID().String()}

	if input.ActionID == domain.ActionMarkDone {
		now := uc.clock()

		completion, err := recordCompletion(ctx, uc.completions, reminder, domain.CompletionSourceNotification, now, now.Location())
		if err != nil {
			return ActionOutput{}, err
		}

		c := FromCompletion(completion)
		out.Kind = ActionKindMarkDone
		out.Completion = &c

		return out, nil
	}

	if minutes, ok := domain.ParseSnoozeAction(input.ActionID); ok {
		snoozed, err := uc.snooze(ctx, reminder, minutes)
		if err != nil {
			return ActionOutput{}, err
		}

		out.Kind = ActionKindSnooze
		out.Snooze = &snoozed

		return out, nil
	}

	slog.DebugContext(ctx, "notification opened",
		"reminder_id", input.ReminderID,
		"action_id", input.ActionID,
	)

	out.Kind = ActionKindOpen

	return out, nil
}

func (uc *notificationUseCaseImpl) snooze(ctx context.Context, reminder *domain.Reminder, minutes int) (SnoozeOutput, error) {
	alert := reminder.Alert()

	result, err := uc.snoozer.Snooze(ctx, SnoozeRequest{
		ReminderID:      reminder.ID(),
		Title:           reminder.Title(),
		DurationMinutes: minutes,
		Alert:           &alert,
	})
	if err != nil {
		return SnoozeOutput{}, fmt.Errorf("%w: %v", ErrInternalError, err)
	}

	return SnoozeOutput{
		ReminderID: reminder.ID().String(),
		Identifier: result.Identifier,
		Seconds:    result.Seconds,
		FireAt:     result.FireAt,
		Scheduled:  result.Scheduled,
	}, nil
}
