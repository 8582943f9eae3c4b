package app_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/KasumiMercury/primind-habit-remind/internal/app"
	"github.com/KasumiMercury/primind-habit-remind/internal/domain"
	"github.com/KasumiMercury/primind-habit-remind/internal/testutil"
)

var reconcileNow = time.Date(2025, time.June, 1, 8, 0, 0, 0, time.UTC)

func newReminder(t *testing.T, id string, schedule domain.Schedule, alert domain.AlertConfig, enabled bool) *domain.Reminder {
	t.Helper()

	reminderID, err := domain.ReminderIDFromString(id)
	require.NoError(t, err)

	return domain.ReconstituteReminder(reminderID, "Water", enabled, schedule, alert, domain.CategoryID{}, reconcileNow, reconcileNow)
}

func TestReconcileRegistersCompiledTriggers(t *testing.T) {
	tests := []struct {
		name     string
		schedule domain.Schedule
		expected []string
	}{
		{
			name:     "interval uses the bare id",
			schedule: domain.IntervalSchedule{Value: 30, Unit: domain.IntervalUnitMinutes},
			expected: []string{"rem_1"},
		},
		{
			name:     "daily suffixes after the first",
			schedule: domain.DailySchedule{Times: []string{"08:00", "20:00"}},
			expected: []string{"rem_1", "rem_1#1"},
		},
		{
			name:     "weekly flattens weekday by time",
			schedule: domain.WeeklySchedule{Weekdays: []int{2, 4}, Times: []string{"07:00", "19:00"}},
			expected: []string{"rem_1", "rem_1#1", "rem_1#2", "rem_1#3"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			scheduler := testutil.NewFakeScheduler()
			reconciler := app.NewNotificationReconciler(scheduler, app.NewChannelRegistry(), nil)

			result := reconciler.Reconcile(context.Background(), newReminder(t, "rem_1", tt.schedule, domain.DefaultAlertConfig(), true))

			assert.ElementsMatch(t, tt.expected, result.Scheduled)
			assert.Empty(t, result.Failed)
			assert.Equal(t, tt.expected, scheduler.Identifiers())
		})
	}
}

func TestReconcileContent(t *testing.T) {
	scheduler := testutil.NewFakeScheduler()
	reconciler := app.NewNotificationReconciler(scheduler, app.NewChannelRegistry(), nil)

	alert := domain.AlertConfig{Ringtone: domain.RingtoneNone, Vibration: domain.VibrationStrong}
	reminder := newReminder(t, "rem_1", domain.DailySchedule{Times: []string{"08:30"}}, alert, true)

	reconciler.Reconcile(context.Background(), reminder)

	s, ok := scheduler.Scheduled("rem_1")
	require.True(t, ok)

	assert.Equal(t, "Water", s.Content.Title)
	assert.Equal(t, "Time for: Water", s.Content.Body)
	assert.Empty(t, s.Content.Sound)
	assert.Equal(t, "reminder-alerts-strong", s.Content.ChannelID)
	assert.Equal(t, domain.ReminderActionCategory, s.Content.CategoryIdentifier)
	assert.Equal(t, "rem_1", s.Content.ReminderID.String())
	assert.Equal(t, domain.DailyTrigger{Hour: 8, Minute: 30}, s.Trigger)

	channel, ok := scheduler.Channel("reminder-alerts-strong")
	require.True(t, ok)
	assert.Equal(t, domain.VibrationPatterns[domain.VibrationStrong], channel.VibrationPattern)

	category, ok := scheduler.ActionCategory(domain.ReminderActionCategory)
	require.True(t, ok)
	assert.Len(t, category.Actions, 1+len(domain.SnoozeDurationsMinutes))
}

func TestReconcileCancelsOnlyOwnIdentifiers(t *testing.T) {
	ctx := context.Background()
	scheduler := testutil.NewFakeScheduler()
	reconciler := app.NewNotificationReconciler(scheduler, app.NewChannelRegistry(), nil)

	content := domain.NotificationContent{Title: "other"}
	trigger := domain.DailyTrigger{Hour: 9}

	for _, id := range []string{"rem_1#5", "snooze:rem_1:1700000000000", "rem_10", "rem_10#1", "snooze:rem_10:1700000000000"} {
		require.NoError(t, scheduler.Schedule(ctx, id, content, trigger))
	}

	result := reconciler.Reconcile(ctx, newReminder(t, "rem_1", domain.DailySchedule{Times: []string{"08:00"}}, domain.DefaultAlertConfig(), true))

	assert.ElementsMatch(t, []string{"rem_1#5", "snooze:rem_1:1700000000000"}, result.Cancelled)
	assert.Equal(t, []string{"rem_1", "rem_10", "rem_10#1", "snooze:rem_10:1700000000000"}, scheduler.Identifiers())
}

func TestReconcileIsIdempotent(t *testing.T) {
	ctx := context.Background()
	scheduler := testutil.NewFakeScheduler()
	reconciler := app.NewNotificationReconciler(scheduler, app.NewChannelRegistry(), nil)

	reminder := newReminder(t, "rem_1", domain.WeeklySchedule{Weekdays: []int{1, 7}, Times: []string{"09:00"}}, domain.DefaultAlertConfig(), true)

	reconciler.Reconcile(ctx, reminder)
	first := scheduler.Identifiers()

	reconciler.Reconcile(ctx, reminder)

	assert.Equal(t, first, scheduler.Identifiers())
	assert.Equal(t, 1, scheduler.ChannelSetups)
	assert.Equal(t, 1, scheduler.CategorySetups)
}

func TestReconcileDisabledOnlyCancels(t *testing.T) {
	ctx := context.Background()
	scheduler := testutil.NewFakeScheduler()
	reconciler := app.NewNotificationReconciler(scheduler, app.NewChannelRegistry(), nil)

	schedule := domain.DailySchedule{Times: []string{"08:00", "20:00"}}
	reconciler.Reconcile(ctx, newReminder(t, "rem_1", schedule, domain.DefaultAlertConfig(), true))

	result := reconciler.Reconcile(ctx, newReminder(t, "rem_1", schedule, domain.DefaultAlertConfig(), false))

	assert.ElementsMatch(t, []string{"rem_1", "rem_1#1"}, result.Cancelled)
	assert.Empty(t, result.Scheduled)
	assert.Empty(t, scheduler.Identifiers())
}

func TestReconcileUnavailableIsNoop(t *testing.T) {
	scheduler := testutil.NewFakeScheduler()
	scheduler.SetAvailable(false)

	reconciler := app.NewNotificationReconciler(scheduler, app.NewChannelRegistry(), nil)

	result := reconciler.Reconcile(context.Background(), newReminder(t, "rem_1", domain.DailySchedule{Times: []string{"08:00"}}, domain.DefaultAlertConfig(), true))

	assert.True(t, result.Skipped)
	assert.Empty(t, scheduler.Identifiers())
	assert.Zero(t, scheduler.ChannelSetups)
}

func TestReconcileContinuesPastFailures(t *testing.T) {
	ctx := context.Background()
	scheduler := testutil.NewFakeScheduler()
	reconciler := app.NewNotificationReconciler(scheduler, app.NewChannelRegistry(), nil)

	require.NoError(t, scheduler.Schedule(ctx, "snooze:rem_1:1", domain.NotificationContent{}, domain.DailyTrigger{}))
	require.NoError(t, scheduler.Schedule(ctx, "rem_1#3", domain.NotificationContent{}, domain.DailyTrigger{}))

	scheduler.FailCancel["snooze:rem_1:1"] = errors.New("cancel failed")
	scheduler.FailSchedule["rem_1"] = errors.New("schedule failed")
	scheduler.FailChannelSetup = errors.New("channel failed")

	result := reconciler.Reconcile(ctx, newReminder(t, "rem_1", domain.DailySchedule{Times: []string{"08:00", "12:00", "20:00"}}, domain.DefaultAlertConfig(), true))

	assert.Equal(t, []string{"rem_1#3"}, result.Cancelled)
	assert.ElementsMatch(t, []string{"snooze:rem_1:1", "rem_1"}, result.Failed)
	assert.ElementsMatch(t, []string{"rem_1#1", "rem_1#2"}, result.Scheduled)
}

func TestReconcileListFailureStillRegisters(t *testing.T) {
	ctrl := gomock.NewController(t)
	scheduler := domain.NewMockNotificationScheduler(ctrl)

	scheduler.EXPECT().Available(gomock.Any()).Return(true)
	scheduler.EXPECT().ListScheduled(gomock.Any()).Return(nil, errors.New("list failed"))
	scheduler.EXPECT().SetupChannel(gomock.Any(), gomock.Any()).Return(nil)
	scheduler.EXPECT().SetupActionCategory(gomock.Any(), gomock.Any()).Return(nil)
	scheduler.EXPECT().
		Schedule(gomock.Any(), "rem_1", gomock.Any(), domain.TimeIntervalTrigger{Seconds: 3600, Repeats: true}).
		Return(nil)

	reconciler := app.NewNotificationReconciler(scheduler, app.NewChannelRegistry(), nil)

	result := reconciler.Reconcile(context.Background(), newReminder(t, "rem_1", domain.IntervalSchedule{Value: 1, Unit: domain.IntervalUnitHours}, domain.DefaultAlertConfig(), true))

	assert.Equal(t, []string{"rem_1"}, result.Scheduled)
	assert.Empty(t, result.Cancelled)
}

func TestCancelReminder(t *testing.T) {
	ctx := context.Background()
	scheduler := testutil.NewFakeScheduler()
	reconciler := app.NewNotificationReconciler(scheduler, app.NewChannelRegistry(), nil)

	reminder := newReminder(t, "rem_1", domain.DailySchedule{Times: []string{"08:00"}}, domain.DefaultAlertConfig(), true)
	reconciler.Reconcile(ctx, reminder)
	require.NoError(t, scheduler.Schedule(ctx, "snooze:rem_1:1700000000000", domain.NotificationContent{}, domain.TimeIntervalTrigger{Seconds: 300}))

	result := reconciler.CancelReminder(ctx, reminder.ID())

	assert.ElementsMatch(t, []string{"rem_1", "snooze:rem_1:1700000000000"}, result.Cancelled)
	assert.Empty(t, scheduler.Identifiers())
}

func TestResync(t *testing.T) {
	ctx := context.Background()
	scheduler := testutil.NewFakeScheduler()
	reconciler := app.NewNotificationReconciler(scheduler, app.NewChannelRegistry(), nil)

	require.NoError(t, scheduler.Schedule(ctx, "stale", domain.NotificationContent{}, domain.DailyTrigger{}))

	reminders := []*domain.Reminder{
		newReminder(t, "rem_1", domain.DailySchedule{Times: []string{"08:00"}}, domain.DefaultAlertConfig(), true),
		newReminder(t, "rem_2", domain.DailySchedule{Times: []string{"09:00"}}, domain.DefaultAlertConfig(), false),
		newReminder(t, "rem_3", domain.IntervalSchedule{Value: 2, Unit: domain.IntervalUnitHours}, domain.DefaultAlertConfig(), true),
	}

	result := reconciler.Resync(ctx, reminders)

	assert.Equal(t, 1, scheduler.CancelAllCalls)
	assert.ElementsMatch(t, []string{"rem_1", "rem_3"}, result.Scheduled)
	assert.Equal(t, []string{"rem_1", "rem_3"}, scheduler.Identifiers())
}
