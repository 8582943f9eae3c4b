package pubsub

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"

	"github.com/KasumiMercury/primind-habit-remind/internal/observability/tracing"
)

const (
	TopicReminderFired = "reminder.fired"

	eventTypeReminderFired = "reminder.fired"
)

//go:generate mockgen -source=publisher.go -destination=publisher_mock.go -package=pubsub

type Publisher interface {
	PublishReminderFired(ctx context.Context, event ReminderFiredEvent) error
	io.Closer
}

// ReminderFiredEvent is emitted every time a scheduled notification goes
// off, recurring or snoozed.
type ReminderFiredEvent struct {
	Identifier         string    `json:"identifier"`
	ReminderID         string    `json:"reminder_id"`
	Title              string    `json:"title"`
	Body               string    `json:"body"`
	Sound              string    `json:"sound,omitempty"`
	ChannelID          string    `json:"channel_id"`
	VibrationPattern   []int     `json:"vibration_pattern,omitempty"`
	CategoryIdentifier string    `json:"category_identifier"`
	TriggerType        string    `json:"trigger_type"`
	Snooze             bool      `json:"snooze"`
	FiredAt            time.Time `json:"fired_at"`
}

// newReminderFiredMessage encodes event and carries the caller's trace
// context in the message metadata.
func newReminderFiredMessage(ctx context.Context, event ReminderFiredEvent) (*message.Message, error) {
	payload, err := json.Marshal(event)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal event: %w", err)
	}

	msg := message.NewMessage(watermill.NewUUID(), payload)
	msg.Metadata.Set("event_type", eventTypeReminderFired)
	msg.Metadata.Set("reminder_id", event.ReminderID)
	msg.Metadata.Set("identifier", event.Identifier)

	tracing.InjectToMap(ctx, msg.Metadata)

	return msg, nil
}
