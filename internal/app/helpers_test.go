package app_test

import (
	"testing"
	"time"

	"github.com/KasumiMercury/primind-habit-remind/internal/app"
	"github.com/KasumiMercury/primind-habit-remind/internal/domain"
	"github.com/KasumiMercury/primind-habit-remind/internal/infra/repository"
	"github.com/KasumiMercury/primind-habit-remind/internal/testutil"
)

// fixedNow is a Sunday.
var fixedNow = time.Date(2025, time.June, 1, 10, 0, 0, 0, time.UTC)

type useCaseFixture struct {
	db          *testutil.TestDB
	scheduler   *testutil.FakeScheduler
	reminders   domain.ReminderRepository
	completions domain.CompletionRepository
	categories  domain.CategoryRepository

	reminderUC     app.ReminderUseCase
	completionUC   app.CompletionUseCase
	statsUC        app.StatsUseCase
	categoryUC     app.CategoryUseCase
	notificationUC app.NotificationUseCase
}

func setupUseCaseFixture(t *testing.T) *useCaseFixture {
	t.Helper()

	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	db := testutil.SetupTestDB(t)
	t.Cleanup(func() { db.TeardownTestDB(t) })

	clock := app.FixedClock(fixedNow)
	scheduler := testutil.NewFakeScheduler()
	channels := app.NewChannelRegistry()

	reminders := repository.NewReminderRepository(db.DB)
	completions := repository.NewCompletionRepository(db.DB)
	categories := repository.NewCategoryRepository(db.DB)

	reconciler := app.NewNotificationReconciler(scheduler, channels, nil)
	snoozer := app.NewSnoozeScheduler(scheduler, channels, clock, nil)

	return &useCaseFixture{
		db:             db,
		scheduler:      scheduler,
		reminders:      reminders,
		completions:    completions,
		categories:     categories,
		reminderUC:     app.NewReminderUseCase(reminders, reconciler, clock),
		completionUC:   app.NewCompletionUseCase(reminders, completions, clock),
		statsUC:        app.NewStatsUseCase(reminders, completions, categories, clock),
		categoryUC:     app.NewCategoryUseCase(categories),
		notificationUC: app.NewNotificationUseCase(reminders, completions, snoozer, clock),
	}
}

// reset empties the database and the fake scheduler between subtests.
func (f *useCaseFixture) reset(t *testing.T) {
	t.Helper()

	f.db.CleanTable(t)
	_ = f.scheduler.CancelAll(t.Context())
}

func dailyInput(title string, times ...string) app.CreateReminderInput {
	return app.CreateReminderInput{
		Title:    title,
		Schedule: app.ScheduleInput{Kind: "daily", Times: times},
	}
}
