package testutil

import (
	"context"
	"slices"
	"strings"
	"sync"

	"github.com/KasumiMercury/primind-habit-remind/internal/domain"
)

// FakeScheduler is an in-memory domain.NotificationScheduler that records
// what it was asked to do.
type FakeScheduler struct {
	mu sync.Mutex

	unavailable bool
	scheduled   map[string]domain.ScheduledNotification
	channels    map[string]domain.NotificationChannel
	categories  map[string]domain.ActionCategory

	// FailSchedule makes Schedule fail for these identifiers.
	FailSchedule map[string]error
	// FailCancel makes Cancel fail for these identifiers.
	FailCancel map[string]error
	// FailChannelSetup is returned by SetupChannel while set.
	FailChannelSetup error

	ChannelSetups  int
	CategorySetups int
	CancelAllCalls int
}

var _ domain.NotificationScheduler = (*FakeScheduler)(nil)

func NewFakeScheduler() *FakeScheduler {
	return &FakeScheduler{
		scheduled:    make(map[string]domain.ScheduledNotification),
		channels:     make(map[string]domain.NotificationChannel),
		categories:   make(map[string]domain.ActionCategory),
		FailSchedule: make(map[string]error),
		FailCancel:   make(map[string]error),
	}
}

func (f *FakeScheduler) SetAvailable(available bool) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.unavailable = !available
}

func (f *FakeScheduler) Available(_ context.Context) bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	return !f.unavailable
}

func (f *FakeScheduler) ListScheduled(_ context.Context) ([]domain.ScheduledNotification, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	out := make([]domain.ScheduledNotification, 0, len(f.scheduled))
	for _, s := range f.scheduled {
		out = append(out, s)
	}

	slices.SortFunc(out, func(a, b domain.ScheduledNotification) int {
		return strings.Compare(a.Identifier, b.Identifier)
	})

	return out, nil
}

func (f *FakeScheduler) Schedule(
	_ context.Context,
	identifier string,
	content domain.NotificationContent,
	trigger domain.Trigger,
) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if err := f.FailSchedule[identifier]; err != nil {
		return err
	}

	f.scheduled[identifier] = domain.ScheduledNotification{
		Identifier: identifier,
		Content:    content,
		Trigger:    trigger,
	}

	return nil
}

func (f *FakeScheduler) Cancel(_ context.Context, identifier string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if err := f.FailCancel[identifier]; err != nil {
		return err
	}

	delete(f.scheduled, identifier)

	return nil
}

func (f *FakeScheduler) CancelAll(_ context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.CancelAllCalls++
	clear(f.scheduled)

	return nil
}

func (f *FakeScheduler) SetupChannel(_ context.Context, channel domain.NotificationChannel) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.ChannelSetups++

	if f.FailChannelSetup != nil {
		return f.FailChannelSetup
	}

	f.channels[channel.ID] = channel

	return nil
}

func (f *FakeScheduler) SetupActionCategory(_ context.Context, category domain.ActionCategory) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.CategorySetups++
	f.categories[category.Identifier] = category

	return nil
}

// Identifiers returns the scheduled identifiers in sorted order.
func (f *FakeScheduler) Identifiers() []string {
	f.mu.Lock()
	defer f.mu.Unlock()

	ids := make([]string, 0, len(f.scheduled))
	for id := range f.scheduled {
		ids = append(ids, id)
	}

	slices.Sort(ids)

	return ids
}

func (f *FakeScheduler) Scheduled(identifier string) (domain.ScheduledNotification, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()

	s, ok := f.scheduled[identifier]

	return s, ok
}

func (f *FakeScheduler) Channel(id string) (domain.NotificationChannel, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()

	c, ok := f.channels[id]

	return c, ok
}

func (f *FakeScheduler) ActionCategory(id string) (domain.ActionCategory, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()

	c, ok := f.categories[id]

	return c, ok
}
