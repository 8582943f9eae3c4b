package app

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"cloud.google.com/go/civil"

	"github.com/KasumiMercury/primind-habit-remind/internal/domain"
)

type completionUseCaseImpl struct {
	reminders   domain.ReminderRepository
	completions domain.CompletionRepository
	streaks     *domain.StreakCalculator
	clock       Clock
}

func NewCompletionUseCase(
	reminders domain.ReminderRepository,
	completions domain.CompletionRepository,
	clock Clock,
) CompletionUseCase {
	return &completionUseCaseImpl{
		reminders:   reminders,
		completions: completions,
		streaks:     domain.NewStreakCalculator(),
		clock:       clock,
	}
}

func (uc *completionUseCaseImpl) RecordCompletion(ctx context.Context, input RecordCompletionInput) (CompletionOutput, error) {
	source, err := domain.NewCompletionSource(input.Source)
	if err != nil {
		return CompletionOutput{}, NewValidationError("source", err.Error())
	}

	reminder, err := findReminder(ctx, uc.reminders, input.ReminderID)
	if err != nil {
		return CompletionOutput{}, err
	}

	now := uc.clock()

	completedAt := now
	if input.CompletedAt != nil {
		if input.CompletedAt.After(now) {
			return CompletionOutput{}, NewValidationError("completed_at", "cannot be in the future")
		}

		completedAt = *input.CompletedAt
	}

	completion, err := recordCompletion(ctx, uc.completions, reminder, source, completedAt, now.Location())
	if err != nil {
		return CompletionOutput{}, err
	}

	return FromCompletion(completion), nil
}

func (uc *completionUseCaseImpl) ListCompletions(ctx context.Context, input ListCompletionsInput) (CompletionsOutput, error) {
	reminder, err := findReminder(ctx, uc.reminders, input.ReminderID)
	if err != nil {
		return CompletionsOutput{}, err
	}

	completions, err := uc.completions.FindByReminderID(ctx, reminder.ID())
	if err != nil {
		slog.ErrorContext(ctx, "failed to list completions",
			"reminder_id", input.ReminderID,
			"error", err,
		)

		return CompletionsOutput{}, fmt.Errorf("%w: %v", ErrInternalError, err)
	}

	return FromCompletions(completions), nil
}

// GetStreak keys days by each completion's stored occurrence date and
// falls back to completedAt in the clock's zone.
func (uc *completionUseCaseImpl) GetStreak(ctx context.Context, input GetStreakInput) (StreakOutput, error) {
	reminder, err := findReminder(ctx, uc.reminders, input.ReminderID)
	if err != nil {
		return StreakOutput{}, err
	}

	completions, err := uc.completions.FindByReminderID(ctx, reminder.ID())
	if err != nil {
		slog.ErrorContext(ctx, "failed to load completions for streak",
			"reminder_id", input.ReminderID,
			"error", err,
		)

		return StreakOutput{}, fmt.Errorf("%w: %v", ErrInternalError, err)
	}

	now := uc.clock()
	loc := now.Location()

	days := make([]civil.Date, 0, len(completions))
	for _, c := range completions {
		days = append(days, c.DayKey(loc))
	}

	streak := uc.streaks.ComputeDays(days, domain.DayKey(now, loc))

	return StreakOutput{
		ReminderID: reminder.ID().String(),
		Current:    streak.Current,
		Longest:    streak.Longest,
	}, nil
}

func recordCompletion(
	ctx context.Context,
	repo domain.CompletionRepository,
	reminder *domain.Reminder,
	source domain.CompletionSource,
	completedAt time.Time,
	loc *time.Location,
) (*domain.Completion, error) {
	completion, err := domain.NewCompletion(reminder.ID(), completedAt, source, loc)
	if err != nil {
		return nil, NewValidationError("reminder_id", err.Error())
	}

	if err := repo.Save(ctx, completion); err != nil {
		slog.ErrorContext(ctx, "failed to save completion",
			"reminder_id", reminder.ID().String(),
			"error", err,
		)

		return nil, fmt.Errorf("%w: %v", ErrInternalError, err)
	}

	slog.InfoContext(ctx, "completion recorded",
		"reminder_id", reminder.ID().String(),
		"completion_id", completion.ID().String(),
		"source", string(source),
	)

	return completion, nil
}
