package domain

import (
	"context"
	"strconv"
	"strings"
	"time"
)

const (
	identifierSeparator = "#"
	snoozeNamespace     = "snooze:"

	ActionMarkDone     = "mark_done"
	snoozeActionPrefix = "snooze_"

	// ReminderActionCategory carries the Done and Snooze buttons.
	ReminderActionCategory = "reminder-actions"

	notificationChannelPrefix = "reminder-alerts-"
	NotificationBodyPrefix    = "Time for: "
)

// SnoozeDurationsMinutes are the snooze actions offered on a notification.
var SnoozeDurationsMinutes = []int{5, 10, 15, 30}

// NotificationIdentifier maps a trigger suffix to the scheduler identifier:
// the bare reminder id for "0", "<id>#<suffix>" otherwise.
func NotificationIdentifier(id ReminderID, suffix string) string {
	if suffix == "0" {
		return id.String()
	}

	return id.String() + identifierSeparator + suffix
}

func SnoozePrefix(id ReminderID) string {
	return snoozeNamespace + id.String() + ":"
}

func SnoozeIdentifier(id ReminderID, at time.Time) string {
	return SnoozePrefix(id) + strconv.FormatInt(at.UnixMilli(), 10)
}

func IsSnoozeIdentifier(identifier string) bool {
	return strings.HasPrefix(identifier, snoozeNamespace)
}

// BelongsToReminder reports whether a scheduled identifier was registered
// for id, either by reconciliation or by a snooze.
func BelongsToReminder(identifier string, id ReminderID) bool {
	return identifier == id.String() ||
		strings.HasPrefix(identifier, id.String()+identifierSeparator) ||
		strings.HasPrefix(identifier, SnoozePrefix(id))
}

func SnoozeActionIdentifier(minutes int) string {
	return snoozeActionPrefix + strconv.Itoa(minutes)
}

// ParseSnoozeAction returns the snooze minutes encoded in an action id.
// Anything without the prefix, without a leading integer, or below 1 is
// not a snooze action.
func ParseSnoozeAction(actionID string) (int, bool) {
	rest, ok := strings.CutPrefix(actionID, snoozeActionPrefix)
	if !ok {
		return 0, false
	}

	minutes, ok := parseLeadingInt(rest)
	if !ok || minutes < 1 {
		return 0, false
	}

	return minutes, true
}

func NotificationChannelID(v VibrationPattern) string {
	if v == "" {
		v = VibrationDefault
	}

	return notificationChannelPrefix + string(v)
}

type NotificationContent struct {
	Title              string
	Body               string
	Sound              string
	ReminderID         ReminderID
	CategoryIdentifier string
	ChannelID          string
}

// NewReminderContent builds what a fired notification for reminder shows.
func NewReminderContent(id ReminderID, title string, alert AlertConfig) NotificationContent {
	return NotificationContent{
		Title:              title,
		Body:               NotificationBodyPrefix + title,
		Sound:              alert.Sound(),
		ReminderID:         id,
		CategoryIdentifier: ReminderActionCategory,
		ChannelID:          alert.ChannelID(),
	}
}

type ScheduledNotification struct {
	Identifier string
	Content    NotificationContent
	Trigger    Trigger
}

type NotificationChannel struct {
	ID               string
	Name             string
	Sound            string
	VibrationPattern []int
}

// NewNotificationChannel describes the channel for one vibration pattern.
func NewNotificationChannel(v VibrationPattern) NotificationChannel {
	if v == "" {
		v = VibrationDefault
	}

	pattern := VibrationPatterns[v]

	return NotificationChannel{
		ID:               NotificationChannelID(v),
		Name:             "Reminders (" + string(v) + ")",
		Sound:            SoundDefault,
		VibrationPattern: append([]int(nil), pattern...),
	}
}

type NotificationAction struct {
	Identifier string
	Title      string
}

type ActionCategory struct {
	Identifier string
	Actions    []NotificationAction
}

// NewReminderActionCategory is Done followed by one snooze action per
// offered duration.
func NewReminderActionCategory() ActionCategory {
	actions := []NotificationAction{{Identifier: ActionMarkDone, Title: "Done"}}
	for _, m := range SnoozeDurationsMinutes {
		actions = append(actions, NotificationAction{
			Identifier: SnoozeActionIdentifier(m),
			Title:      "Snooze " + strconv.Itoa(m) + "m",
		})
	}

	return ActionCategory{
		Identifier: ReminderActionCategory,
		Actions:    actions,
	}
}

//go:generate mockgen -source=notification.go -destination=notification_scheduler_mock.go -package=domain

// NotificationScheduler is the port to whatever fires notifications.
type NotificationScheduler interface {
	Available(ctx context.Context) bool
	ListScheduled(ctx context.Context) ([]ScheduledNotification, error)
	Schedule(ctx context.Context, identifier string, content NotificationContent, trigger Trigger) error
	Cancel(ctx context.Context, identifier string) error
	CancelAll(ctx context.Context) error
	SetupChannel(ctx context.Context, channel NotificationChannel) error
	SetupActionCategory(ctx context.Context, category ActionCategory) error
}
