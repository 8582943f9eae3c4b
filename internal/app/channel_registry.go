package app

import (
	"context"
	"sync"
)

// ChannelRegistry remembers which notification channels and action
// categories were already set up in this process.
type ChannelRegistry struct {
	mu    sync.Mutex
	ready map[string]struct{}
}

func NewChannelRegistry() *ChannelRegistry {
	return &ChannelRegistry{
		ready: make(map[string]struct{}),
	}
}

// Ensure runs setup once per key. A failed setup is not remembered, so the
// next call retries it.
func (r *ChannelRegistry) Ensure(ctx context.Context, key string, setup func(ctx context.Context) error) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.ready[key]; ok {
		return nil
	}

	if err := setup(ctx); err != nil {
		return err
	}

	r.ready[key] = struct{}{}

	return nil
}

func (r *ChannelRegistry) IsReady(key string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, ok := r.ready[key]

	return ok
}

// Reset forgets everything, e.g. after the scheduler lost its state.
func (r *ChannelRegistry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()

	clear(r.ready)
}
