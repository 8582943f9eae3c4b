package metrics

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// NotificationMetrics counts scheduler traffic. A nil *NotificationMetrics
// records nothing.
type NotificationMetrics struct {
	scheduled metric.Int64Counter
	cancelled metric.Int64Counter
	failed    metric.Int64Counter
	snoozes   metric.Int64Counter
	fired     metric.Int64Counter
}

func NewNotificationMetrics(meter metric.Meter) (*NotificationMetrics, error) {
	scheduled, err := meter.Int64Counter("reminder.notifications.scheduled")
	if err != nil {
		return nil, err
	}

	cancelled, err := meter.Int64Counter("reminder.notifications.cancelled")
	if err != nil {
		return nil, err
	}

	failed, err := meter.Int64Counter("reminder.notifications.failed")
	if err != nil {
		return nil, err
	}

	snoozes, err := meter.Int64Counter("reminder.snoozes")
	if err != nil {
		return nil, err
	}

	fired, err := meter.Int64Counter("reminder.notifications.fired")
	if err != nil {
		return nil, err
	}

	return &NotificationMetrics{
		scheduled: scheduled,
		cancelled: cancelled,
		failed:    failed,
		snoozes:   snoozes,
		fired:     fired,
	}, nil
}

func (m *NotificationMetrics) RecordReconcile(ctx context.Context, operation string, scheduled, cancelled, failed int) {
	if m == nil {
		return
	}

	attrs := metric.WithAttributes(attribute.String("operation", operation))

	m.scheduled.Add(ctx, int64(scheduled), attrs)
	m.cancelled.Add(ctx, int64(cancelled), attrs)
	m.failed.Add(ctx, int64(failed), attrs)
}

func (m *NotificationMetrics) RecordSnooze(ctx context.Context, ok bool) {
	if m == nil {
		return
	}

	m.snoozes.Add(ctx, 1, metric.WithAttributes(attribute.Bool("ok", ok)))
}

func (m *NotificationMetrics) RecordFired(ctx context.Context, triggerType string) {
	if m == nil {
		return
	}

	m.fired.Add(ctx, 1, metric.WithAttributes(attribute.String("trigger_type", triggerType)))
}
