package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KasumiMercury/primind-habit-remind/internal/domain"
	"github.com/KasumiMercury/primind-habit-remind/internal/infra/repository"
	"github.com/KasumiMercury/primind-habit-remind/internal/testutil"
)

func TestCompletionRepository(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	testDB := testutil.SetupTestDB(t)
	defer testDB.TeardownTestDB(t)

	repo := repository.NewCompletionRepository(testDB.DB)
	ctx := context.Background()

	first, err := domain.ReminderIDFromString("rem_1")
	require.NoError(t, err)

	second, err := domain.ReminderIDFromString("rem_2")
	require.NoError(t, err)

	save := func(t *testing.T, id domain.ReminderID, at time.Time) *domain.Completion {
		t.Helper()

		c, err := domain.NewCompletion(id, at, domain.CompletionSourceNotification, time.UTC)
		require.NoError(t, err)
		require.NoError(t, repo.Save(ctx, c))

		return c
	}

	t.Run("find by reminder newest first", func(t *testing.T) {
		testDB.CleanTable(t)

		older := save(t, first, baseTime)
		newer := save(t, first, baseTime.Add(time.Hour))
		save(t, second, baseTime.Add(30*time.Minute))

		found, err := repo.FindByReminderID(ctx, first)
		require.NoError(t, err)

		require.Len(t, found, 2)
		assert.Equal(t, newer.ID(), found[0].ID())
		assert.Equal(t, older.ID(), found[1].ID())
		assert.Equal(t, domain.CompletionSourceNotification, found[0].Source())
		assert.True(t, newer.CompletedAt().Equal(found[0].CompletedAt()))

		d, ok := found[0].OccurrenceDate()
		require.True(t, ok)
		assert.Equal(t, "2025-06-01", d.String())
	})

	t.Run("find all oldest first", func(t *testing.T) {
		testDB.CleanTable(t)

		save(t, second, baseTime.Add(2*time.Hour))
		save(t, first, baseTime)

		all, err := repo.FindAll(ctx)
		require.NoError(t, err)

		require.Len(t, all, 2)
		assert.Equal(t, first, all[0].ReminderID())
		assert.Equal(t, second, all[1].ReminderID())
	})

	t.Run("delete by reminder", func(t *testing.T) {
		testDB.CleanTable(t)

		save(t, first, baseTime)
		save(t, first, baseTime.Add(time.Minute))
		save(t, second, baseTime)

		n, err := repo.DeleteByReminderID(ctx, first)
		require.NoError(t, err)
		assert.Equal(t, int64(2), n)

		all, err := repo.FindAll(ctx)
		require.NoError(t, err)
		require.Len(t, all, 1)
		assert.Equal(t, second, all[0].ReminderID())
	})
}

func TestCategoryRepository(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	testDB := testutil.SetupTestDB(t)
	defer testDB.TeardownTestDB(t)

	repo := repository.NewCategoryRepository(testDB.DB)
	ctx := context.Background()

	empty, err := repo.FindAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, empty)

	for _, name := range []string{"Health", "Study"} {
		c, err := domain.NewCategory(name)
		require.NoError(t, err)
		require.NoError(t, repo.Save(ctx, c))
	}

	all, err := repo.FindAll(ctx)
	require.NoError(t, err)

	names := make([]string, 0, len(all))
	for _, c := range all {
		names = append(names, c.Name())
		assert.False(t, c.ID().IsZero())
	}

	assert.ElementsMatch(t, []string{"Health", "Study"}, names)
}
