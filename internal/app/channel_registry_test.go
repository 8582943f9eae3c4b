package app_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KasumiMercury/primind-habit-remind/internal/app"
)

func TestChannelRegistryEnsureRunsSetupOnce(t *testing.T) {
	registry := app.NewChannelRegistry()
	ctx := context.Background()
	calls := 0

	setup := func(context.Context) error {
		calls++

		return nil
	}

	require.NoError(t, registry.Ensure(ctx, "reminder-alerts-default", setup))
	require.NoError(t, registry.Ensure(ctx, "reminder-alerts-default", setup))

	assert.Equal(t, 1, calls)
	assert.True(t, registry.IsReady("reminder-alerts-default"))
	assert.False(t, registry.IsReady("reminder-alerts-strong"))
}

func TestChannelRegistryEnsureRetriesAfterFailure(t *testing.T) {
	registry := app.NewChannelRegistry()
	ctx := context.Background()
	calls := 0

	failing := func(context.Context) error {
		calls++

		return errors.New("channel api unavailable")
	}

	require.Error(t, registry.Ensure(ctx, "reminder-alerts-strong", failing))
	assert.False(t, registry.IsReady("reminder-alerts-strong"))

	require.NoError(t, registry.Ensure(ctx, "reminder-alerts-strong", func(context.Context) error {
		calls++

		return nil
	}))

	assert.Equal(t, 2, calls)
	assert.True(t, registry.IsReady("reminder-alerts-strong"))
}

func TestChannelRegistryReset(t *testing.T) {
	registry := app.NewChannelRegistry()
	ctx := context.Background()

	require.NoError(t, registry.Ensure(ctx, "category:reminder-actions", func(context.Context) error { return nil }))

	registry.Reset()

	assert.False(t, registry.IsReady("category:reminder-actions"))
}
