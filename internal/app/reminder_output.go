package app

import (
	"time"

	"github.com/KasumiMercury/primind-habit-remind/internal/domain"
	"github.com/KasumiMercury/primind-habit-remind/internal/infra/record"
)

type ScheduleOutput struct {
	Kind     string
	Value    int
	Unit     string
	Times    []string
	Weekdays []int
	Label    string
}

type AlertOutput struct {
	Ringtone  string
	Vibration string
	ChannelID string
}

// NotificationSyncOutput reports what a mutation did to the scheduler.
type NotificationSyncOutput struct {
	Scheduled []string
	Cancelled []string
	Failed    []string
	Skipped   bool
}

type ReminderOutput struct {
	ID         string
	Title      string
	Enabled    bool
	Schedule   ScheduleOutput
	Alert      AlertOutput
	CategoryID string
	CreatedAt  time.Time
	UpdatedAt  time.Time
	// Notifications is nil for reads.
	Notifications *NotificationSyncOutput
}

type RemindersOutput struct {
	Reminders []ReminderOutput
	Count     int32
}

type UpcomingOutput struct {
	ReminderID string
	Enabled    bool
	FireTimes  []time.Time
}

type ImportedRecord struct {
	Index   int
	ID      string
	Version int
	Created bool
}

type UnrecognizedRecord struct {
	Index  int
	Reason string
}

type ImportOutput struct {
	Imported     []ImportedRecord
	Unrecognized []UnrecognizedRecord
}

func FromReminder(r *domain.Reminder) ReminderOutput {
	return ReminderOutput{
		ID:         r.ID().String(),
		Title:      r.Title(),
		Enabled:    r.Enabled(),
		Schedule:   fromSchedule(r.Schedule()),
		Alert:      fromAlert(r.Alert()),
		CategoryID: r.CategoryID().String(),
		CreatedAt:  r.CreatedAt(),
		UpdatedAt:  r.UpdatedAt(),
	}
}

func FromReminders(reminders []*domain.Reminder) RemindersOutput {
	outputs := make([]ReminderOutput, 0, len(reminders))
	for _, r := range reminders {
		outputs = append(outputs, FromReminder(r))
	}

	return RemindersOutput{
		Reminders: outputs,
		Count:     int32(len(outputs)), //nolint:gosec
	}
}

func fromSchedule(schedule domain.Schedule) ScheduleOutput {
	out := ScheduleOutput{Label: domain.ScheduleLabel(schedule)}

	doc, err := record.NewScheduleDocument(schedule)
	if err != nil {
		return out
	}

	out.Kind = doc.Kind
	out.Value = doc.Value
	out.Unit = doc.Unit
	out.Times = doc.Times
	out.Weekdays = doc.Weekdays

	return out
}

func fromAlert(alert domain.AlertConfig) AlertOutput {
	return AlertOutput{
		Ringtone:  alert.Ringtone,
		Vibration: string(alert.Vibration),
		ChannelID: alert.ChannelID(),
	}
}

func fromReconcile(result ReconcileResult) *NotificationSyncOutput {
	return &NotificationSyncOutput{
		Scheduled: result.Scheduled,
		Cancelled: result.Cancelled,
		Failed:    result.Failed,
		Skipped:   result.Skipped,
	}
}
