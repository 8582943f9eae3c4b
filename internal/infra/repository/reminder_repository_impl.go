package repository

import (
	"context"
	"errors"
	"log/slog"

	"gorm.io/gorm"

	"github.com/KasumiMercury/primind-habit-remind/internal/domain"
)

type reminderRepositoryImpl struct {
	db *gorm.DB
}

func NewReminderRepository(db *gorm.DB) domain.ReminderRepository {
	return &reminderRepositoryImpl{
		db: db,
	}
}

func (r *reminderRepositoryImpl) Save(ctx context.Context, reminder *domain.Reminder) error {
	slog.DebugContext(ctx, "saving reminder to database",
		"reminder_id", reminder.ID().String(),
	)

	m, err := FromReminder(reminder)
	if err != nil {
		return err
	}

	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		slog.ErrorContext(ctx, "failed to save reminder to database",
			"reminder_id", reminder.ID().String(),
			"error", err,
		)

		return err
	}

	return nil
}

func (r *reminderRepositoryImpl) FindByID(ctx context.Context, id domain.ReminderID) (*domain.Reminder, error) {
	var m ReminderModel

	result := r.db.WithContext(ctx).Where("id = ?", id.String()).First(&m)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domain.ErrReminderNotFound
		}

		slog.ErrorContext(ctx, "failed to find reminder by ID",
			"reminder_id", id.String(),
			"error", result.Error,
		)

		return nil, result.Error
	}

	return m.ToEntity()
}

func (r *reminderRepositoryImpl) FindAll(ctx context.Context) ([]*domain.Reminder, error) {
	var models []ReminderModel

	if err := r.db.WithContext(ctx).Order("created_at ASC, id ASC").Find(&models).Error; err != nil {
		slog.ErrorContext(ctx, "failed to find reminders",
			"error", err,
		)

		return nil, err
	}

	reminders := make([]*domain.Reminder, 0, len(models))
	for _, m := range models {
		reminder, err := m.ToEntity()
		if err != nil {
			slog.ErrorContext(ctx, "failed to convert model to entity",
				"reminder_id", m.ID,
				"error", err,
			)

			return nil, err
		}

		reminders = append(reminders, reminder)
	}

	slog.DebugContext(ctx, "reminders loaded",
		"count", len(reminders),
	)

	return reminders, nil
}

// Update writes every column, zero values included.
func (r *reminderRepositoryImpl) Update(ctx context.Context, reminder *domain.Reminder) error {
	m, err := FromReminder(reminder)
	if err != nil {
		return err
	}

	result := r.db.WithContext(ctx).
		Model(&ReminderModel{}).
		Where("id = ?", m.ID).
		Select("*").
		Omit("id", "created_at").
		Updates(m)
	if result.Error != nil {
		slog.ErrorContext(ctx, "failed to update reminder in database",
			"reminder_id", m.ID,
			"error", result.Error,
		)

		return result.Error
	}

	if result.RowsAffected == 0 {
		return domain.ErrReminderNotFound
	}

	return nil
}

func (r *reminderRepositoryImpl) Delete(ctx context.Context, id domain.ReminderID) error {
	result := r.db.WithContext(ctx).Where("id = ?", id.String()).Delete(&ReminderModel{})
	if result.Error != nil {
		slog.ErrorContext(ctx, "failed to delete reminder from database",
			"reminder_id", id.String(),
			"error", result.Error,
		)

		return result.Error
	}

	if result.RowsAffected == 0 {
		return domain.ErrReminderNotFound
	}

	slog.DebugContext(ctx, "reminder deleted from database",
		"reminder_id", id.String(),
	)

	return nil
}

// WithTx runs fn with repositories bound to one transaction.
func (r *reminderRepositoryImpl) WithTx(
	ctx context.Context,
	fn func(reminders domain.ReminderRepository, completions domain.CompletionRepository) error,
) error {
	tx := r.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		slog.ErrorContext(ctx, "failed to begin transaction",
			"error", tx.Error,
		)

		return tx.Error
	}

	if err := fn(&reminderRepositoryImpl{db: tx}, &completionRepositoryImpl{db: tx}); err != nil {
		if rbErr := tx.Rollback().Error; rbErr != nil {
			slog.ErrorContext(ctx, "failed to rollback transaction",
				"error", rbErr,
				"original_error", err,
			)
		}

		return err
	}

	if err := tx.Commit().Error; err != nil {
		slog.ErrorContext(ctx, "failed to commit transaction",
			"error", err,
		)

		return err
	}

	return nil
}
