package repository_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KasumiMercury/primind-habit-remind/internal/domain"
	"github.com/KasumiMercury/primind-habit-remind/internal/infra/repository"
	"github.com/KasumiMercury/primind-habit-remind/internal/testutil"
)

var baseTime = time.Date(2025, time.June, 1, 8, 0, 0, 0, time.UTC)

func newTestReminder(t *testing.T, title string, schedule domain.Schedule, createdAt time.Time) *domain.Reminder {
	t.Helper()

	reminder, err := domain.NewReminder(title, schedule, domain.DefaultAlertConfig(), domain.CategoryID{}, createdAt)
	require.NoError(t, err)

	return reminder
}

func TestReminderRepositorySaveAndFind(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	testDB := testutil.SetupTestDB(t)
	defer testDB.TeardownTestDB(t)

	repo := repository.NewReminderRepository(testDB.DB)
	ctx := context.Background()

	tests := []struct {
		name     string
		schedule domain.Schedule
		alert    domain.AlertConfig
		category domain.CategoryID
	}{
		{
			name:     "interval",
			schedule: domain.IntervalSchedule{Value: 90, Unit: domain.IntervalUnitMinutes},
			alert:    domain.DefaultAlertConfig(),
		},
		{
			name:     "daily with category",
			schedule: domain.DailySchedule{Times: []string{"08:00", "20:30"}},
			alert:    domain.AlertConfig{Ringtone: "custom:content://media/42", Vibration: domain.VibrationDouble},
			category: domain.NewCategoryID(),
		},
		{
			name:     "weekly silent",
			schedule: domain.WeeklySchedule{Weekdays: []int{7, 1}, Times: []string{"10:00"}},
			alert:    domain.AlertConfig{Ringtone: domain.RingtoneNone, Vibration: domain.VibrationNone},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			testDB.CleanTable(t)

			reminder, err := domain.NewReminder("Habit", tt.schedule, tt.alert, tt.category, baseTime)
			require.NoError(t, err)

			require.NoError(t, repo.Save(ctx, reminder))

			found, err := repo.FindByID(ctx, reminder.ID())
			require.NoError(t, err)

			assert.Equal(t, reminder.ID(), found.ID())
			assert.Equal(t, "Habit", found.Title())
			assert.True(t, found.Enabled())
			assert.Equal(t, tt.schedule, found.Schedule())
			assert.Equal(t, tt.alert, found.Alert())
			assert.True(t, tt.category.Equals(found.CategoryID()))
			assert.True(t, baseTime.Equal(found.CreatedAt()))
		})
	}
}

func TestReminderRepositoryFindByIDNotFound(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	testDB := testutil.SetupTestDB(t)
	defer testDB.TeardownTestDB(t)

	repo := repository.NewReminderRepository(testDB.DB)

	id, err := domain.ReminderIDFromString("rem_missing")
	require.NoError(t, err)

	_, err = repo.FindByID(context.Background(), id)
	assert.ErrorIs(t, err, domain.ErrReminderNotFound)
}

func TestReminderRepositoryFindAllOrdered(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	testDB := testutil.SetupTestDB(t)
	defer testDB.TeardownTestDB(t)

	repo := repository.NewReminderRepository(testDB.DB)
	ctx := context.Background()

	schedule := domain.DailySchedule{Times: []string{"09:00"}}
	late := newTestReminder(t, "late", schedule, baseTime.Add(time.Hour))
	early := newTestReminder(t, "early", schedule, baseTime)

	require.NoError(t, repo.Save(ctx, late))
	require.NoError(t, repo.Save(ctx, early))

	all, err := repo.FindAll(ctx)
	require.NoError(t, err)

	require.Len(t, all, 2)
	assert.Equal(t, "early", all[0].Title())
	assert.Equal(t, "late", all[1].Title())
}

func TestReminderRepositoryUpdate(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	testDB := testutil.SetupTestDB(t)
	defer testDB.TeardownTestDB(t)

	repo := repository.NewReminderRepository(testDB.DB)
	ctx := context.Background()

	reminder, err := domain.NewReminder(
		"Gym",
		domain.WeeklySchedule{Weekdays: []int{2}, Times: []string{"18:00"}},
		domain.DefaultAlertConfig(),
		domain.NewCategoryID(),
		baseTime,
	)
	require.NoError(t, err)
	require.NoError(t, repo.Save(ctx, reminder))

	// clearing the category and disabling must reach the row
	require.NoError(t, reminder.Update("Gym", domain.DailySchedule{Times: []string{"06:00"}}, domain.DefaultAlertConfig(), domain.CategoryID{}, baseTime.Add(time.Hour)))
	reminder.SetEnabled(false, baseTime.Add(2*time.Hour))

	require.NoError(t, repo.Update(ctx, reminder))

	found, err := repo.FindByID(ctx, reminder.ID())
	require.NoError(t, err)

	assert.False(t, found.Enabled())
	assert.True(t, found.CategoryID().IsZero())
	assert.Equal(t, domain.DailySchedule{Times: []string{"06:00"}}, found.Schedule())
	assert.True(t, baseTime.Equal(found.CreatedAt()))
	assert.True(t, baseTime.Add(2*time.Hour).Equal(found.UpdatedAt()))

	missing := newTestReminder(t, "ghost", domain.DailySchedule{Times: []string{"06:00"}}, baseTime)
	assert.ErrorIs(t, repo.Update(ctx, missing), domain.ErrReminderNotFound)
}

func TestReminderRepositoryDelete(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	testDB := testutil.SetupTestDB(t)
	defer testDB.TeardownTestDB(t)

	repo := repository.NewReminderRepository(testDB.DB)
	ctx := context.Background()

	reminder := newTestReminder(t, "Read", domain.DailySchedule{Times: []string{"21:00"}}, baseTime)
	require.NoError(t, repo.Save(ctx, reminder))

	require.NoError(t, repo.Delete(ctx, reminder.ID()))

	_, err := repo.FindByID(ctx, reminder.ID())
	require.ErrorIs(t, err, domain.ErrReminderNotFound)

	assert.ErrorIs(t, repo.Delete(ctx, reminder.ID()), domain.ErrReminderNotFound)
}

func TestReminderRepositoryWithTx(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	testDB := testutil.SetupTestDB(t)
	defer testDB.TeardownTestDB(t)

	repo := repository.NewReminderRepository(testDB.DB)
	completionRepo := repository.NewCompletionRepository(testDB.DB)
	ctx := context.Background()

	t.Run("commit", func(t *testing.T) {
		testDB.CleanTable(t)

		reminder := newTestReminder(t, "Water", domain.IntervalSchedule{Value: 1, Unit: domain.IntervalUnitHours}, baseTime)

		err := repo.WithTx(ctx, func(reminders domain.ReminderRepository, completions domain.CompletionRepository) error {
			if err := reminders.Save(ctx, reminder); err != nil {
				return err
			}

			completion, err := domain.NewCompletion(reminder.ID(), baseTime, domain.CompletionSourceInApp, time.UTC)
			if err != nil {
				return err
			}

			return completions.Save(ctx, completion)
		})
		require.NoError(t, err)

		_, err = repo.FindByID(ctx, reminder.ID())
		require.NoError(t, err)

		saved, err := completionRepo.FindByReminderID(ctx, reminder.ID())
		require.NoError(t, err)
		assert.Len(t, saved, 1)
	})

	t.Run("rollback", func(t *testing.T) {
		testDB.CleanTable(t)

		reminder := newTestReminder(t, "Water", domain.IntervalSchedule{Value: 1, Unit: domain.IntervalUnitHours}, baseTime)
		failure := errors.New("abort")

		err := repo.WithTx(ctx, func(reminders domain.ReminderRepository, _ domain.CompletionRepository) error {
			if err := reminders.Save(ctx, reminder); err != nil {
				return err
			}

			return failure
		})
		require.ErrorIs(t, err, failure)

		_, err = repo.FindByID(ctx, reminder.ID())
		assert.ErrorIs(t, err, domain.ErrReminderNotFound)
	})
}
