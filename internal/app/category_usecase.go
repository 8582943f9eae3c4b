package app

import "context"

type CreateCategoryInput struct {
	Name string
}

type CategoryOutput struct {
	ID   string
	Name string
}

type CategoriesOutput struct {
	Categories []CategoryOutput
	Count      int32
}

type CategoryUseCase interface {
	// ListCategories seeds the default categories when none exist.
	ListCategories(ctx context.Context) (CategoriesOutput, error)
	CreateCategory(ctx context.Context, input CreateCategoryInput) (CategoryOutput, error)
}
