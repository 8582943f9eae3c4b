package app

import (
	"context"
	"log/slog"

	"github.com/KasumiMercury/primind-habit-remind/internal/domain"
	"github.com/KasumiMercury/primind-habit-remind/internal/observability/metrics"
)

const actionCategoryKey = "category:" + domain.ReminderActionCategory

type ReconcileResult struct {
	Cancelled []string
	Scheduled []string
	Failed    []string
	// Skipped is set when the scheduler was unavailable and nothing ran.
	Skipped bool
}

func (r *ReconcileResult) merge(other ReconcileResult) {
	r.Cancelled = append(r.Cancelled, other.Cancelled...)
	r.Scheduled = append(r.Scheduled, other.Scheduled...)
	r.Failed = append(r.Failed, other.Failed...)
}

// NotificationReconciler keeps the scheduler's registrations in line with
// stored reminders: cancel whatever belongs to a reminder, then register
// its compiled triggers again. Scheduler failures never abort a run; they
// are logged and reported in the result.
type NotificationReconciler struct {
	scheduler domain.NotificationScheduler
	compiler  *domain.ScheduleCompiler
	channels  *ChannelRegistry
	metrics   *metrics.NotificationMetrics
}

func NewNotificationReconciler(
	scheduler domain.NotificationScheduler,
	channels *ChannelRegistry,
	notificationMetrics *metrics.NotificationMetrics,
) *NotificationReconciler {
	return &NotificationReconciler{
		scheduler: scheduler,
		compiler:  domain.NewScheduleCompiler(),
		channels:  channels,
		metrics:   notificationMetrics,
	}
}

// Reconcile cancels everything registered for the reminder and, when it is
// enabled, registers its current schedule. Running it twice leaves the same
// registrations as running it once.
func (n *NotificationReconciler) Reconcile(ctx context.Context, reminder *domain.Reminder) ReconcileResult {
	if !n.scheduler.Available(ctx) {
		slog.WarnContext(ctx, "notification scheduler unavailable, skipping reconcile",
			"reminder_id", reminder.ID().String(),
		)

		return ReconcileResult{Skipped: true}
	}

	result := n.cancelFor(ctx, reminder.ID())

	if reminder.Enabled() {
		result.merge(n.register(ctx, reminder))
	}

	n.metrics.RecordReconcile(ctx, "reconcile", len(result.Scheduled), len(result.Cancelled), len(result.Failed))

	slog.DebugContext(ctx, "reminder reconciled",
		"reminder_id", reminder.ID().String(),
		"enabled", reminder.Enabled(),
		"cancelled", len(result.Cancelled),
		"scheduled", len(result.Scheduled),
		"failed", len(result.Failed),
	)

	return result
}

// CancelReminder only removes the reminder's registrations, snoozes
// included.
func (n *NotificationReconciler) CancelReminder(ctx context.Context, id domain.ReminderID) ReconcileResult {
	if !n.scheduler.Available(ctx) {
		return ReconcileResult{Skipped: true}
	}

	result := n.cancelFor(ctx, id)

	n.metrics.RecordReconcile(ctx, "cancel", 0, len(result.Cancelled), len(result.Failed))

	return result
}

// Resync wipes every registration the scheduler knows about and registers
// all enabled reminders from scratch.
func (n *NotificationReconciler) Resync(ctx context.Context, reminders []*domain.Reminder) ReconcileResult {
	if !n.scheduler.Available(ctx) {
		slog.WarnContext(ctx, "notification scheduler unavailable, skipping resync")

		return ReconcileResult{Skipped: true}
	}

	var result ReconcileResult

	if err := n.scheduler.CancelAll(ctx); err != nil {
		slog.ErrorContext(ctx, "failed to cancel all scheduled notifications",
			"error", err,
		)
	}

	enabled := 0

	for _, reminder := range reminders {
		if !reminder.Enabled() {
			continue
		}

		enabled++

		result.merge(n.register(ctx, reminder))
	}

	n.metrics.RecordReconcile(ctx, "resync", len(result.Scheduled), 0, len(result.Failed))

	slog.InfoContext(ctx, "notifications resynced",
		"reminders", len(reminders),
		"enabled", enabled,
		"scheduled", len(result.Scheduled),
		"failed", len(result.Failed),
	)

	return result
}

func (n *NotificationReconciler) cancelFor(ctx context.Context, id domain.ReminderID) ReconcileResult {
	var result ReconcileResult

	scheduled, err := n.scheduler.ListScheduled(ctx)
	if err != nil {
		slog.ErrorContext(ctx, "failed to list scheduled notifications",
			"reminder_id", id.String(),
			"error", err,
		)

		return result
	}

	for _, s := range scheduled {
		if !domain.BelongsToReminder(s.Identifier, id) {
			continue
		}

		if err := n.scheduler.Cancel(ctx, s.Identifier); err != nil {
			slog.WarnContext(ctx, "failed to cancel notification",
				"reminder_id", id.String(),
				"identifier", s.Identifier,
				"error", err,
			)

			result.Failed = append(result.Failed, s.Identifier)

			continue
		}

		result.Cancelled = append(result.Cancelled, s.Identifier)
	}

	return result
}

func (n *NotificationReconciler) register(ctx context.Context, reminder *domain.Reminder) ReconcileResult {
	var result ReconcileResult

	alert := reminder.Alert()
	ensureAlertSetup(ctx, n.scheduler, n.channels, alert)

	content := domain.NewReminderContent(reminder.ID(), reminder.Title(), alert)

	for _, spec := range n.compiler.Compile(reminder.Schedule()) {
		identifier := domain.NotificationIdentifier(reminder.ID(), spec.IdentifierSuffix)

		if err := n.scheduler.Schedule(ctx, identifier, content, spec.Trigger); err != nil {
			slog.ErrorContext(ctx, "failed to schedule notification",
				"reminder_id", reminder.ID().String(),
				"identifier", identifier,
				"trigger", spec.Trigger.String(),
				"error", err,
			)

			result.Failed = append(result.Failed, identifier)

			continue
		}

		result.Scheduled = append(result.Scheduled, identifier)
	}

	return result
}

// ensureAlertSetup makes sure the channel for the alert's vibration and
// the action category exist before anything is registered on them. A
// failure is logged and scheduling goes ahead regardless.
func ensureAlertSetup(
	ctx context.Context,
	scheduler domain.NotificationScheduler,
	channels *ChannelRegistry,
	alert domain.AlertConfig,
) {
	channelID := alert.ChannelID()

	if err := channels.Ensure(ctx, channelID, func(ctx context.Context) error {
		return scheduler.SetupChannel(ctx, domain.NewNotificationChannel(alert.Vibration))
	}); err != nil {
		slog.WarnContext(ctx, "failed to set up notification channel",
			"channel_id", channelID,
			"error", err,
		)
	}

	if err := channels.Ensure(ctx, actionCategoryKey, func(ctx context.Context) error {
		return scheduler.SetupActionCategory(ctx, domain.NewReminderActionCategory())
	}); err != nil {
		slog.WarnContext(ctx, "failed to set up notification actions",
			"category", domain.ReminderActionCategory,
			"error", err,
		)
	}
}
