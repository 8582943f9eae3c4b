package domain_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KasumiMercury/primind-habit-remind/internal/domain"
)

func TestNotificationIdentifier(t *testing.T) {
	id := mustReminderID(t, "rem_1")

	assert.Equal(t, "rem_1", domain.NotificationIdentifier(id, "0"))
	assert.Equal(t, "rem_1#3", domain.NotificationIdentifier(id, "3"))
}

func TestSnoozeIdentifier(t *testing.T) {
	id := mustReminderID(t, "rem_1")
	ts := time.UnixMilli(1_700_000_000_123)

	identifier := domain.SnoozeIdentifier(id, ts)

	assert.Equal(t, "snooze:rem_1:1700000000123", identifier)
	assert.True(t, domain.IsSnoozeIdentifier(identifier))
	assert.False(t, domain.IsSnoozeIdentifier("rem_1#1"))
}

func TestBelongsToReminder(t *testing.T) {
	id := mustReminderID(t, "rem_1")

	tests := []struct {
		identifier string
		expected   bool
	}{
		{identifier: "rem_1", expected: true},
		{identifier: "rem_1#2", expected: true},
		{identifier: "snooze:rem_1:1700000000000", expected: true},
		{identifier: "rem_10", expected: false},
		{identifier: "rem_10#1", expected: false},
		{identifier: "snooze:rem_10:1700000000000", expected: false},
		{identifier: "other", expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.identifier, func(t *testing.T) {
			assert.Equal(t, tt.expected, domain.BelongsToReminder(tt.identifier, id))
		})
	}
}

func TestRecurringAndSnoozeIdentifiersAreDisjoint(t *testing.T) {
	compiler := domain.NewScheduleCompiler()
	id := mustReminderID(t, "rem_1")
	snooze := domain.SnoozeIdentifier(id, time.UnixMilli(0))

	specs := compiler.Compile(domain.WeeklySchedule{
		Weekdays: []int{1, 2, 3, 4, 5, 6, 7},
		Times:    []string{"06:00", "12:00", "18:00"},
	})

	for _, spec := range specs {
		identifier := domain.NotificationIdentifier(id, spec.IdentifierSuffix)
		assert.NotEqual(t, snooze, identifier)
		assert.False(t, domain.IsSnoozeIdentifier(identifier))
		assert.True(t, domain.BelongsToReminder(identifier, id))
	}
}

func TestParseSnoozeAction(t *testing.T) {
	tests := []struct {
		action  string
		minutes int
		ok      bool
	}{
		{action: "snooze_5", minutes: 5, ok: true},
		{action: "snooze_30", minutes: 30, ok: true},
		{action: "snooze_15min", minutes: 15, ok: true},
		{action: "snooze_0", ok: false},
		{action: "snooze_-5", ok: false},
		{action: "snooze_abc", ok: false},
		{action: "snooze_", ok: false},
		{action: "mark_done", ok: false},
		{action: "", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.action, func(t *testing.T) {
			minutes, ok := domain.ParseSnoozeAction(tt.action)

			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.minutes, minutes)
		})
	}
}

func TestSnoozeActionRoundTrip(t *testing.T) {
	for _, m := range domain.SnoozeDurationsMinutes {
		minutes, ok := domain.ParseSnoozeAction(domain.SnoozeActionIdentifier(m))

		require.True(t, ok)
		assert.Equal(t, m, minutes)
	}
}

func TestNewReminderContent(t *testing.T) {
	id := mustReminderID(t, "rem_1")

	t.Run("default ringtone", func(t *testing.T) {
		content := domain.NewReminderContent(id, "Drink water", domain.AlertConfig{
			Ringtone:  "custom:file:///tone.mp3",
			Vibration: domain.VibrationStrong,
		})

		assert.Equal(t, domain.NotificationContent{
			Title:              "Drink water",
			Body:               "Time for: Drink water",
			Sound:              "default",
			ReminderID:         id,
			CategoryIdentifier: "reminder-actions",
			ChannelID:          "reminder-alerts-strong",
		}, content)
	})

	t.Run("silent", func(t *testing.T) {
		content := domain.NewReminderContent(id, "Stretch", domain.AlertConfig{
			Ringtone:  domain.RingtoneNone,
			Vibration: domain.VibrationNone,
		})

		assert.Empty(t, content.Sound)
		assert.Equal(t, "reminder-alerts-none", content.ChannelID)
	})
}

func TestNewNotificationChannel(t *testing.T) {
	channel := domain.NewNotificationChannel(domain.VibrationDouble)

	assert.Equal(t, "reminder-alerts-double", channel.ID)
	assert.Equal(t, []int{0, 200, 100, 200, 100, 200}, channel.VibrationPattern)

	channel.VibrationPattern[0] = 99
	assert.Equal(t, 0, domain.VibrationPatterns[domain.VibrationDouble][0])
}

func TestNewReminderActionCategory(t *testing.T) {
	category := domain.NewReminderActionCategory()

	ids := make([]string, 0, len(category.Actions))
	for _, a := range category.Actions {
		ids = append(ids, a.Identifier)
	}

	assert.Equal(t, "reminder-actions", category.Identifier)
	assert.Equal(t, []string{"mark_done", "snooze_5", "snooze_10", "snooze_15", "snooze_30"}, ids)
}
