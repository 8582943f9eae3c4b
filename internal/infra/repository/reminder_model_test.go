package repository_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KasumiMercury/primind-habit-remind/internal/domain"
	"github.com/KasumiMercury/primind-habit-remind/internal/infra/repository"
)

func TestReminderModelCategory(t *testing.T) {
	now := time.Date(2025, time.June, 1, 8, 0, 0, 0, time.UTC)

	tests := []struct {
		name       string
		categoryID domain.CategoryID
		wantNil    bool
	}{
		{name: "uncategorized stores NULL", categoryID: domain.CategoryID{}, wantNil: true},
		{name: "categorized", categoryID: domain.NewCategoryID()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reminder, err := domain.NewReminder("Water", domain.IntervalSchedule{Value: 30, Unit: domain.IntervalUnitMinutes}, domain.DefaultAlertConfig(), tt.categoryID, now)
			require.NoError(t, err)

			m, err := repository.FromReminder(reminder)
			require.NoError(t, err)

			if tt.wantNil {
				assert.Nil(t, m.CategoryID)
			} else {
				require.NotNil(t, m.CategoryID)
				assert.Equal(t, tt.categoryID.String(), *m.CategoryID)
			}

			back, err := m.ToEntity()
			require.NoError(t, err)
			assert.True(t, tt.categoryID.Equals(back.CategoryID()))
		})
	}
}

func TestScheduleJSONBScan(t *testing.T) {
	tests := []struct {
		name    string
		value   any
		want    repository.ScheduleJSONB
		wantErr bool
	}{
		{
			name:  "bytes",
			value: []byte(`{"kind":"weekly","weekdays":[2,6],"times":["07:30"]}`),
			want:  repository.ScheduleJSONB{Kind: "weekly", Weekdays: []int{2, 6}, Times: []string{"07:30"}},
		},
		{
			name:  "string",
			value: `{"kind":"interval","value":2,"unit":"hours"}`,
			want:  repository.ScheduleJSONB{Kind: "interval", Value: 2, Unit: "hours"},
		},
		{
			name:  "nil",
			value: nil,
			want:  repository.ScheduleJSONB{},
		},
		{
			name:    "unsupported type",
			value:   42,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got repository.ScheduleJSONB

			err := got.Scan(tt.value)
			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestReminderModelRejectsUnknownKind(t *testing.T) {
	m := repository.ReminderModel{
		ID:       "rem_1",
		Title:    "x",
		Schedule: repository.ScheduleJSONB{Kind: "monthly"},
	}

	_, err := m.ToEntity()
	assert.Error(t, err)
}

func TestCompletionModelOccurrenceDate(t *testing.T) {
	tokyo, err := time.LoadLocation("Asia/Tokyo")
	require.NoError(t, err)

	reminderID, err := domain.ReminderIDFromString("rem_1")
	require.NoError(t, err)

	// 2025-06-01 23:30 UTC is already June 2 in Tokyo
	completedAt := time.Date(2025, time.June, 1, 23, 30, 0, 0, time.UTC)

	completion, err := domain.NewCompletion(reminderID, completedAt, domain.CompletionSourceInApp, tokyo)
	require.NoError(t, err)

	m := repository.FromCompletion(completion)
	require.NotNil(t, m.OccurrenceDate)
	assert.Equal(t, time.Date(2025, time.June, 2, 0, 0, 0, 0, time.UTC), *m.OccurrenceDate)

	back, err := m.ToEntity()
	require.NoError(t, err)

	d, ok := back.OccurrenceDate()
	require.True(t, ok)
	assert.Equal(t, "2025-06-02", d.String())

	m.OccurrenceDate = nil

	legacy, err := m.ToEntity()
	require.NoError(t, err)

	_, ok = legacy.OccurrenceDate()
	assert.False(t, ok)
}
