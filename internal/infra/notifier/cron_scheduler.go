package notifier

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"slices"
	"strings"
	"sync"
	"time"

	robfigcron "github.com/robfig/cron/v3"

	"github.com/KasumiMercury/primind-habit-remind/internal/domain"
)

// maxIntervalSeconds keeps interval triggers inside time.Duration.
const maxIntervalSeconds = math.MaxInt64 / int64(time.Second)

// FiredNotification is what a trigger produces when it goes off.
type FiredNotification struct {
	Identifier string
	Content    domain.NotificationContent
	Trigger    domain.Trigger
	// Channel is nil when no channel with Content.ChannelID was set up.
	Channel *domain.NotificationChannel
	FiredAt time.Time
}

type FireHandler func(ctx context.Context, fired FiredNotification)

type registration struct {
	entryID  robfigcron.EntryID
	content  domain.NotificationContent
	trigger  domain.Trigger
	schedule robfigcron.Schedule
}

// CronScheduler is an in-process notification scheduler on robfig/cron.
// Daily and weekly triggers fire on wall-clock time in its location;
// registrations live in memory and are lost on restart.
type CronScheduler struct {
	cron   *robfigcron.Cron
	loc    *time.Location
	onFire FireHandler

	mu            sync.Mutex
	running       bool
	registrations map[string]registration
	channels      map[string]domain.NotificationChannel
	categories    map[string]domain.ActionCategory
}

var _ domain.NotificationScheduler = (*CronScheduler)(nil)

func NewCronScheduler(loc *time.Location, onFire FireHandler) *CronScheduler {
	if loc == nil {
		loc = time.Local
	}

	logger := slogCronLogger{}

	return &CronScheduler{
		cron: robfigcron.New(
			robfigcron.WithLocation(loc),
			robfigcron.WithLogger(logger),
			robfigcron.WithChain(robfigcron.Recover(logger)),
		),
		loc:           loc,
		onFire:        onFire,
		registrations: make(map[string]registration),
		channels:      make(map[string]domain.NotificationChannel),
		categories:    make(map[string]domain.ActionCategory),
	}
}

func (s *CronScheduler) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cron.Start()
	s.running = true
}

// Stop halts firing and waits for running jobs until ctx is done.
func (s *CronScheduler) Stop(ctx context.Context) {
	s.mu.Lock()
	s.running = false
	s.mu.Unlock()

	select {
	case <-s.cron.Stop().Done():
	case <-ctx.Done():
	}
}

func (s *CronScheduler) Available(_ context.Context) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.running
}

func (s *CronScheduler) ListScheduled(_ context.Context) ([]domain.ScheduledNotification, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]domain.ScheduledNotification, 0, len(s.registrations))
	for identifier, r := range s.registrations {
		out = append(out, domain.ScheduledNotification{
			Identifier: identifier,
			Content:    r.content,
			Trigger:    r.trigger,
		})
	}

	slices.SortFunc(out, func(a, b domain.ScheduledNotification) int {
		return strings.Compare(a.Identifier, b.Identifier)
	})

	return out, nil
}

// Schedule registers trigger under identifier, replacing any registration
// with the same identifier.
func (s *CronScheduler) Schedule(
	_ context.Context,
	identifier string,
	content domain.NotificationContent,
	trigger domain.Trigger,
) error {
	schedule, err := s.cronSchedule(trigger, time.Now().In(s.loc))
	if err != nil {
		return fmt.Errorf("identifier %s: %w", identifier, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.removeLocked(identifier)

	job := robfigcron.FuncJob(func() {
		s.fire(identifier)
	})

	s.registrations[identifier] = registration{
		entryID:  s.cron.Schedule(schedule, job),
		content:  content,
		trigger:  trigger,
		schedule: schedule,
	}

	return nil
}

// Cancel is a no-op for unknown identifiers.
func (s *CronScheduler) Cancel(_ context.Context, identifier string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.removeLocked(identifier)

	return nil
}

func (s *CronScheduler) CancelAll(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for identifier := range s.registrations {
		s.removeLocked(identifier)
	}

	return nil
}

func (s *CronScheduler) SetupChannel(_ context.Context, channel domain.NotificationChannel) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.channels[channel.ID] = channel

	return nil
}

func (s *CronScheduler) SetupActionCategory(_ context.Context, category domain.ActionCategory) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.categories[category.Identifier] = category

	return nil
}

// NextFireTime reports when identifier fires next after now.
func (s *CronScheduler) NextFireTime(identifier string, now time.Time) (time.Time, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	r, ok := s.registrations[identifier]
	if !ok {
		return time.Time{}, false
	}

	next := r.schedule.Next(now.In(s.loc))

	return next, !next.IsZero()
}

func (s *CronScheduler) fire(identifier string) {
	s.mu.Lock()

	r, ok := s.registrations[identifier]
	if !ok {
		s.mu.Unlock()

		return
	}

	var channel *domain.NotificationChannel
	if c, found := s.channels[r.content.ChannelID]; found {
		channel = &c
	}

	if once, isOnce := r.trigger.(domain.TimeIntervalTrigger); isOnce && !once.Repeats {
		s.removeLocked(identifier)
	}

	s.mu.Unlock()

	ctx := context.Background()

	slog.DebugContext(ctx, "notification fired",
		"identifier", identifier,
		"reminder_id", r.content.ReminderID.String(),
		"trigger", r.trigger.String(),
	)

	if s.onFire != nil {
		s.onFire(ctx, FiredNotification{
			Identifier: identifier,
			Content:    r.content,
			Trigger:    r.trigger,
			Channel:    channel,
			FiredAt:    time.Now().In(s.loc),
		})
	}
}

func (s *CronScheduler) removeLocked(identifier string) {
	r, ok := s.registrations[identifier]
	if !ok {
		return
	}

	s.cron.Remove(r.entryID)
	delete(s.registrations, identifier)
}

func (s *CronScheduler) cronSchedule(trigger domain.Trigger, now time.Time) (robfigcron.Schedule, error) {
	switch t := trigger.(type) {
	case domain.TimeIntervalTrigger:
		if t.Seconds < 1 {
			return nil, fmt.Errorf("interval must be at least 1s, got %d", t.Seconds)
		}

		d := time.Duration(min(int64(t.Seconds), maxIntervalSeconds)) * time.Second
		if t.Repeats {
			return robfigcron.Every(d), nil
		}

		return onceSchedule{at: now.Add(d)}, nil

	case domain.DailyTrigger, domain.WeeklyTrigger:
		spec, err := cronSpec(trigger)
		if err != nil {
			return nil, err
		}

		schedule, err := robfigcron.ParseStandard(spec)
		if err != nil {
			return nil, fmt.Errorf("parse %q: %w", spec, err)
		}

		return schedule, nil

	default:
		return nil, fmt.Errorf("unsupported trigger type %T", trigger)
	}
}

// cronSpec renders a calendar trigger as a five field cron spec. Weekday
// 1 (Sunday) .. 7 maps to cron's 0 .. 6.
func cronSpec(trigger domain.Trigger) (string, error) {
	switch t := trigger.(type) {
	case domain.DailyTrigger:
		if err := checkClock(t.Hour, t.Minute); err != nil {
			return "", err
		}

		return fmt.Sprintf("%d %d * * *", t.Minute, t.Hour), nil

	case domain.WeeklyTrigger:
		if err := checkClock(t.Hour, t.Minute); err != nil {
			return "", err
		}

		if t.Weekday < 1 || t.Weekday > 7 {
			return "", fmt.Errorf("%w: %d", domain.ErrInvalidWeekday, t.Weekday)
		}

		return fmt.Sprintf("%d %d * * %d", t.Minute, t.Hour, t.Weekday-1), nil

	default:
		return "", fmt.Errorf("no cron spec for trigger type %T", trigger)
	}
}

func checkClock(hour, minute int) error {
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return fmt.Errorf("%w: %02d:%02d", domain.ErrInvalidClockTime, hour, minute)
	}

	return nil
}

// onceSchedule fires a single time at at.
type onceSchedule struct {
	at time.Time
}

func (o onceSchedule) Next(t time.Time) time.Time {
	if t.Before(o.at) {
		return o.at
	}

	// zero time tells cron never to run again
	return time.Time{}
}
