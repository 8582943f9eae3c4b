package app

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/KasumiMercury/primind-habit-remind/internal/domain"
)

type categoryUseCaseImpl struct {
	categories domain.CategoryRepository
}

func NewCategoryUseCase(categories domain.CategoryRepository) CategoryUseCase {
	return &categoryUseCaseImpl{
		categories: categories,
	}
}

func (uc *categoryUseCaseImpl) ListCategories(ctx context.Context) (CategoriesOutput, error) {
	categories, err := uc.categories.FindAll(ctx)
	if err != nil {
		slog.ErrorContext(ctx, "failed to list categories",
			"error", err,
		)

		return CategoriesOutput{}, fmt.Errorf("%w: %v", ErrInternalError, err)
	}

	if len(categories) == 0 {
		categories, err = uc.seed(ctx)
		if err != nil {
			return CategoriesOutput{}, err
		}
	}

	return fromCategories(categories), nil
}

func (uc *categoryUseCaseImpl) CreateCategory(ctx context.Context, input CreateCategoryInput) (CategoryOutput, error) {
	category, err := domain.NewCategory(input.Name)
	if err != nil {
		return CategoryOutput{}, NewValidationError("name", err.Error())
	}

	existing, err := uc.categories.FindAll(ctx)
	if err != nil {
		slog.ErrorContext(ctx, "failed to list categories",
			"error", err,
		)

		return CategoryOutput{}, fmt.Errorf("%w: %v", ErrInternalError, err)
	}

	for _, c := range existing {
		if strings.EqualFold(c.Name(), category.Name()) {
			return CategoryOutput{}, fmt.Errorf("%w: category %q", ErrAlreadyExists, category.Name())
		}
	}

	if err := uc.categories.Save(ctx, category); err != nil {
		slog.ErrorContext(ctx, "failed to save category",
			"name", category.Name(),
			"error", err,
		)

		return CategoryOutput{}, fmt.Errorf("%w: %v", ErrInternalError, err)
	}

	return fromCategory(category), nil
}

func (uc *categoryUseCaseImpl) seed(ctx context.Context) ([]*domain.Category, error) {
	seeded := make([]*domain.Category, 0, len(domain.SeedCategoryNames))

	for _, name := range domain.SeedCategoryNames {
		category, err := domain.NewCategory(name)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInternalError, err)
		}

		if err := uc.categories.Save(ctx, category); err != nil {
			slog.ErrorContext(ctx, "failed to seed category",
				"name", name,
				"error", err,
			)

			return nil, fmt.Errorf("%w: %v", ErrInternalError, err)
		}

		seeded = append(seeded, category)
	}

	slog.InfoContext(ctx, "default categories seeded",
		"count", len(seeded),
	)

	return seeded, nil
}

func fromCategory(c *domain.Category) CategoryOutput {
	return CategoryOutput{
		ID:   c.ID().String(),
		Name: c.Name(),
	}
}

func fromCategories(categories []*domain.Category) CategoriesOutput {
	outputs := make([]CategoryOutput, 0, len(categories))
	for _, c := range categories {
		outputs = append(outputs, fromCategory(c))
	}

	return CategoriesOutput{
		Categories: outputs,
		Count:      int32(len(outputs)), //nolint:gosec
	}
}
