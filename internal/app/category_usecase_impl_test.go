package app_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KasumiMercury/primind-habit-remind/internal/app"
	"github.com/KasumiMercury/primind-habit-remind/internal/domain"
)

func categoryNames(out app.CategoriesOutput) []string {
	names := make([]string, 0, len(out.Categories))
	for _, c := range out.Categories {
		names = append(names, c.Name)
	}

	return names
}

func TestListCategoriesSeedsOnce(t *testing.T) {
	f := setupUseCaseFixture(t)
	ctx := context.Background()

	first, err := f.categoryUC.ListCategories(ctx)
	require.NoError(t, err)

	assert.Equal(t, int32(len(domain.SeedCategoryNames)), first.Count)
	assert.ElementsMatch(t, domain.SeedCategoryNames, categoryNames(first))

	second, err := f.categoryUC.ListCategories(ctx)
	require.NoError(t, err)

	assert.ElementsMatch(t, categoryNames(first), categoryNames(second))
}

func TestListCategoriesDoesNotSeedWhenPresent(t *testing.T) {
	f := setupUseCaseFixture(t)
	ctx := context.Background()

	_, err := f.categoryUC.CreateCategory(ctx, app.CreateCategoryInput{Name: "Chores"})
	require.NoError(t, err)

	out, err := f.categoryUC.ListCategories(ctx)
	require.NoError(t, err)

	assert.Equal(t, []string{"Chores"}, categoryNames(out))
}

func TestCreateCategory(t *testing.T) {
	f := setupUseCaseFixture(t)
	ctx := context.Background()

	created, err := f.categoryUC.CreateCategory(ctx, app.CreateCategoryInput{Name: "  Sleep  "})
	require.NoError(t, err)

	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "Sleep", created.Name)

	t.Run("duplicate ignores case", func(t *testing.T) {
		_, err := f.categoryUC.CreateCategory(ctx, app.CreateCategoryInput{Name: "sleep"})
		require.ErrorIs(t, err, app.ErrAlreadyExists)
	})

	t.Run("blank name", func(t *testing.T) {
		_, err := f.categoryUC.CreateCategory(ctx, app.CreateCategoryInput{Name: "   "})
		assert.True(t, app.IsValidationError(err))
	})
}
