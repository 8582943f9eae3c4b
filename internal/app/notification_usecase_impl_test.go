package app_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KasumiMercury/primind-habit-remind/internal/app"
)

func TestSnoozeUseCase(t *testing.T) {
	f := setupUseCaseFixture(t)
	ctx := context.Background()

	reminder, err := f.reminderUC.CreateReminder(ctx, app.CreateReminderInput{
		Title:    "Stand up",
		Schedule: app.ScheduleInput{Kind: "interval", Value: 50, Unit: "minutes"},
		Alert:    app.AlertInput{Vibration: "strong"},
	})
	require.NoError(t, err)

	out, err := f.notificationUC.Snooze(ctx, app.SnoozeInput{ReminderID: reminder.ID, DurationMinutes: 15})
	require.NoError(t, err)

	assert.True(t, out.Scheduled)
	assert.Equal(t, 900, out.Seconds)
	assert.True(t, out.FireAt.Equal(fixedNow.Add(15*time.Minute)))

	s, ok := f.scheduler.Scheduled(out.Identifier)
	require.True(t, ok)
	assert.Equal(t, "reminder-alerts-strong", s.Content.ChannelID)

	_, err = f.notificationUC.Snooze(ctx, app.SnoozeInput{ReminderID: "rem_missing", DurationMinutes: 5})
	require.ErrorIs(t, err, app.ErrNotFound)
}

func TestSnoozeUseCaseUnavailable(t *testing.T) {
	f := setupUseCaseFixture(t)
	ctx := context.Background()

	reminder, err := f.reminderUC.CreateReminder(ctx, dailyInput("Stand up", "10:00"))
	require.NoError(t, err)

	f.scheduler.SetAvailable(false)
	t.Cleanup(func() { f.scheduler.SetAvailable(true) })

	out, err := f.notificationUC.Snooze(ctx, app.SnoozeInput{ReminderID: reminder.ID, DurationMinutes: 5})
	require.NoError(t, err)

	assert.False(t, out.Scheduled)
	assert.Empty(t, out.Identifier)
}

func TestHandleAction(t *testing.T) {
	f := setupUseCaseFixture(t)
	ctx := context.Background()

	reminder, err := f.reminderUC.CreateReminder(ctx, dailyInput("Pills", "09:00"))
	require.NoError(t, err)

	tests := []struct {
		name       string
		actionID   string
		wantKind   app.ActionKind
		wantSecond int
	}{
		{name: "mark done", actionID: "mark_done", wantKind: app.ActionKindMarkDone},
		{name: "snooze ten", actionID: "snooze_10", wantKind: app.ActionKindSnooze, wantSecond: 600},
		{name: "snooze with trailing text", actionID: "snooze_5min", wantKind: app.ActionKindSnooze, wantSecond: 300},
		{name: "snooze without minutes", actionID: "snooze_", wantKind: app.ActionKindOpen},
		{name: "snooze zero", actionID: "snooze_0", wantKind: app.ActionKindOpen},
		{name: "default tap", actionID: "default", wantKind: app.ActionKindOpen},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := f.notificationUC.HandleAction(ctx, app.HandleActionInput{ReminderID: reminder.ID, ActionID: tt.actionID})
			require.NoError(t, err)

			assert.Equal(t, tt.wantKind, out.Kind)
			assert.Equal(t, reminder.ID, out.ReminderID)

			switch tt.wantKind {
			case app.ActionKindMarkDone:
				require.NotNil(t, out.Completion)
				assert.Equal(t, "notification", out.Completion.Source)
				assert.Equal(t, "2025-06-01", out.Completion.OccurrenceDate)
				assert.Nil(t, out.Snooze)

			case app.ActionKindSnooze:
				require.NotNil(t, out.Snooze)
				assert.Equal(t, tt.wantSecond, out.Snooze.Seconds)
				assert.Nil(t, out.Completion)

			default:
				assert.Nil(t, out.Completion)
				assert.Nil(t, out.Snooze)
			}
		})
	}

	completions, err := f.completionUC.ListCompletions(ctx, app.ListCompletionsInput{ReminderID: reminder.ID})
	require.NoError(t, err)
	assert.Equal(t, int32(1), completions.Count)

	_, err = f.notificationUC.HandleAction(ctx, app.HandleActionInput{ReminderID: "rem_missing", ActionID: "mark_done"})
	require.ErrorIs(t, err, app.ErrNotFound)
}
