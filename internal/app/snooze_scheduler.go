package app

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/KasumiMercury/primind-habit-remind/internal/domain"
	"github.com/KasumiMercury/primind-habit-remind/internal/observability/metrics"
)

const (
	MinSnoozeSeconds = 1
	MaxSnoozeSeconds = 24 * 60 * 60
)

type SnoozeRequest struct {
	ReminderID      domain.ReminderID
	Title           string
	DurationMinutes int
	// Alert is nil to use the default channel.
	Alert *domain.AlertConfig
}

type SnoozeResult struct {
	Identifier string
	Seconds    int
	FireAt     time.Time
	// Scheduled is false when the scheduler was unavailable.
	Scheduled bool
}

// SnoozeScheduler registers one-shot notifications in the snooze
// namespace, which reconciliation of the same reminder sweeps up.
type SnoozeScheduler struct {
	scheduler domain.NotificationScheduler
	channels  *ChannelRegistry
	clock     Clock
	metrics   *metrics.NotificationMetrics

	mu         sync.Mutex
	lastMillis int64
}

func NewSnoozeScheduler(
	scheduler domain.NotificationScheduler,
	channels *ChannelRegistry,
	clock Clock,
	notificationMetrics *metrics.NotificationMetrics,
) *SnoozeScheduler {
	return &SnoozeScheduler{
		scheduler: scheduler,
		channels:  channels,
		clock:     clock,
		metrics:   notificationMetrics,
	}
}

func (s *SnoozeScheduler) Snooze(ctx context.Context, req SnoozeRequest) (SnoozeResult, error) {
	seconds := SnoozeSeconds(req.DurationMinutes)

	if !s.scheduler.Available(ctx) {
		slog.WarnContext(ctx, "notification scheduler unavailable, snooze dropped",
			"reminder_id", req.ReminderID.String(),
		)

		return SnoozeResult{Seconds: seconds}, nil
	}

	alert := domain.DefaultAlertConfig()
	if req.Alert != nil {
		alert = *req.Alert
	}

	ensureAlertSetup(ctx, s.scheduler, s.channels, alert)

	now := s.clock()
	identifier := domain.SnoozeIdentifier(req.ReminderID, s.stamp(now))
	content := domain.NewReminderContent(req.ReminderID, req.Title, alert)
	trigger := domain.TimeIntervalTrigger{Seconds: seconds, Repeats: false}

	if err := s.scheduler.Schedule(ctx, identifier, content, trigger); err != nil {
		slog.ErrorContext(ctx, "failed to schedule snooze",
			"reminder_id", req.ReminderID.String(),
			"identifier", identifier,
			"error", err,
		)

		s.metrics.RecordSnooze(ctx, false)

		return SnoozeResult{}, fmt.Errorf("schedule snooze: %w", err)
	}

	s.metrics.RecordSnooze(ctx, true)

	slog.DebugContext(ctx, "snooze scheduled",
		"reminder_id", req.ReminderID.String(),
		"identifier", identifier,
		"seconds", seconds,
	)

	return SnoozeResult{
		Identifier: identifier,
		Seconds:    seconds,
		FireAt:     now.Add(time.Duration(seconds) * time.Second),
		Scheduled:  true,
	}, nil
}

// stamp returns now truncated to milliseconds, moved past the previous
// stamp when two snoozes land in the same millisecond.
func (s *SnoozeScheduler) stamp(now time.Time) time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()

	ms := max(now.UnixMilli(), s.lastMillis+1)
	s.lastMillis = ms

	return time.UnixMilli(ms)
}

// SnoozeSeconds converts a snooze duration to seconds within 1s..24h.
func SnoozeSeconds(minutes int) int {
	switch {
	case minutes <= 0:
		return MinSnoozeSeconds
	case minutes >= MaxSnoozeSeconds/60:
		return MaxSnoozeSeconds
	default:
		return minutes * 60
	}
}
