package repository

import (
	"context"
	"log/slog"

	"gorm.io/gorm"

	"github.com/KasumiMercury/primind-habit-remind/internal/domain"
)

type categoryRepositoryImpl struct {
	db *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) domain.CategoryRepository {
	return &categoryRepositoryImpl{
		db: db,
	}
}

func (r *categoryRepositoryImpl) Save(ctx context.Context, category *domain.Category) error {
	if err := r.db.WithContext(ctx).Create(FromCategory(category)).Error; err != nil {
		slog.ErrorContext(ctx, "failed to save category to database",
			"category_id", category.ID().String(),
			"error", err,
		)

		return err
	}

	return nil
}

func (r *categoryRepositoryImpl) FindAll(ctx context.Context) ([]*domain.Category, error) {
	var models []CategoryModel

	if err := r.db.WithContext(ctx).Order("created_at ASC, id ASC").Find(&models).Error; err != nil {
		slog.ErrorContext(ctx, "failed to find categories",
			"error", err,
		)

		return nil, err
	}

	categories := make([]*domain.Category, 0, len(models))
	for _, m := range models {
		category, err := m.ToEntity()
		if err != nil {
			return nil, err
		}

		categories = append(categories, category)
	}

	return categories, nil
}
