package repository

import (
	"context"
	"log/slog"

	"gorm.io/gorm"

	"github.com/KasumiMercury/primind-habit-remind/internal/domain"
)

type completionRepositoryImpl struct {
	db *gorm.DB
}

func NewCompletionRepository(db *gorm.DB) domain.CompletionRepository {
	return &completionRepositoryImpl{
		db: db,
	}
}

func (r *completionRepositoryImpl) Save(ctx context.Context, completion *domain.Completion) error {
	if err := r.db.WithContext(ctx).Create(FromCompletion(completion)).Error; err != nil {
		slog.ErrorContext(ctx, "failed to save completion to database",
			"completion_id", completion.ID().String(),
			"reminder_id", completion.ReminderID().String(),
			"error", err,
		)

		return err
	}

	return nil
}

// FindByReminderID returns newest first.
func (r *completionRepositoryImpl) FindByReminderID(ctx context.Context, reminderID domain.ReminderID) ([]*domain.Completion, error) {
	var models []CompletionModel

	err := r.db.WithContext(ctx).
		Where("reminder_id = ?", reminderID.String()).
		Order("completed_at DESC, id DESC").
		Find(&models).Error
	if err != nil {
		slog.ErrorContext(ctx, "failed to find completions by reminder ID",
			"reminder_id", reminderID.String(),
			"error", err,
		)

		return nil, err
	}

	return toCompletions(ctx, models)
}

// FindAll returns oldest first.
func (r *completionRepositoryImpl) FindAll(ctx context.Context) ([]*domain.Completion, error) {
	var models []CompletionModel

	if err := r.db.WithContext(ctx).Order("completed_at ASC, id ASC").Find(&models).Error; err != nil {
		slog.ErrorContext(ctx, "failed to find completions",
			"error", err,
		)

		return nil, err
	}

	return toCompletions(ctx, models)
}

func (r *completionRepositoryImpl) DeleteByReminderID(ctx context.Context, reminderID domain.ReminderID) (int64, error) {
	result := r.db.WithContext(ctx).Where("reminder_id = ?", reminderID.String()).Delete(&CompletionModel{})
	if result.Error != nil {
		slog.ErrorContext(ctx, "failed to delete completions",
			"reminder_id", reminderID.String(),
			"error", result.Error,
		)

		return 0, result.Error
	}

	return result.RowsAffected, nil
}

func toCompletions(ctx context.Context, models []CompletionModel) ([]*domain.Completion, error) {
	completions := make([]*domain.Completion, 0, len(models))

	for _, m := range models {
		completion, err := m.ToEntity()
		if err != nil {
			slog.ErrorContext(ctx, "failed to convert model to entity",
				"completion_id", m.ID,
				"error", err,
			)

			return nil, err
		}

		completions = append(completions, completion)
	}

	return completions, nil
}
