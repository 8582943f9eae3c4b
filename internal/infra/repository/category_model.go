package repository

import (
	"time"

	"github.com/KasumiMercury/primind-habit-remind/internal/domain"
)

type CategoryModel struct {
	ID        string    `gorm:"column:id;type:varchar(255);primaryKey"`
	Name      string    `gorm:"column:name;type:varchar(255);not null"`
	CreatedAt time.Time `gorm:"column:created_at;type:timestamptz;not null;autoCreateTime"`
}

func (CategoryModel) TableName() string {
	return "categories"
}

func (m *CategoryModel) ToEntity() (*domain.Category, error) {
	id, err := domain.CategoryIDFromString(m.ID)
	if err != nil {
		return nil, err
	}

	return domain.ReconstituteCategory(id, m.Name), nil
}

func FromCategory(e *domain.Category) *CategoryModel {
	return &CategoryModel{
		ID:   e.ID().String(),
		Name: e.Name(),
	}
}

// Models lists every table for AutoMigrate.
func Models() []any {
	return []any{&ReminderModel{}, &CompletionModel{}, &CategoryModel{}}
}
