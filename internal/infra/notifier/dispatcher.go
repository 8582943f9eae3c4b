package notifier

import (
	"context"
	"log/slog"

	"github.com/KasumiMercury/primind-habit-remind/internal/domain"
	"github.com/KasumiMercury/primind-habit-remind/internal/infra/pubsub"
	"github.com/KasumiMercury/primind-habit-remind/internal/observability/metrics"
)

// NewPublishingHandler forwards fired notifications to the event bus so a
// delivery worker can push them to the device.
func NewPublishingHandler(publisher pubsub.Publisher, notificationMetrics *metrics.NotificationMetrics) FireHandler {
	return func(ctx context.Context, fired FiredNotification) {
		notificationMetrics.RecordFired(ctx, string(fired.Trigger.Type()))

		if publisher == nil {
			return
		}

		if err := publisher.PublishReminderFired(ctx, NewReminderFiredEvent(fired)); err != nil {
			slog.ErrorContext(ctx, "failed to publish fired notification",
				"identifier", fired.Identifier,
				"reminder_id", fired.Content.ReminderID.String(),
				"error", err,
			)
		}
	}
}

func NewReminderFiredEvent(fired FiredNotification) pubsub.ReminderFiredEvent {
	event := pubsub.ReminderFiredEvent{
		Identifier:         fired.Identifier,
		ReminderID:         fired.Content.ReminderID.String(),
		Title:              fired.Content.Title,
		Body:               fired.Content.Body,
		Sound:              fired.Content.Sound,
		ChannelID:          fired.Content.ChannelID,
		CategoryIdentifier: fired.Content.CategoryIdentifier,
		TriggerType:        string(fired.Trigger.Type()),
		Snooze:             domain.IsSnoozeIdentifier(fired.Identifier),
		FiredAt:            fired.FiredAt,
	}

	if fired.Channel != nil {
		event.VibrationPattern = fired.Channel.VibrationPattern
	}

	return event
}
