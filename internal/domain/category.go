package domain

import (
	"strings"

	"github.com/google/uuid"
)

type CategoryID struct {
	value string
}

func NewCategoryID() CategoryID {
	return CategoryID{value: uuid.Must(uuid.NewV7()).String()}
}

// CategoryIDFromString accepts any non-empty identifier; categories created
// by older clients use "cat_<ms>_<rand>" ids.
func CategoryIDFromString(s string) (CategoryID, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return CategoryID{}, ErrInvalidCategoryID
	}

	return CategoryID{value: s}, nil
}

func (c CategoryID) String() string {
	return c.value
}

func (c CategoryID) IsZero() bool {
	return c.value == ""
}

func (c CategoryID) Equals(other CategoryID) bool {
	return c.value == other.value
}

// SeedCategoryNames are created when the category list is empty.
var SeedCategoryNames = []string{"Health", "Fitness", "Study"}

type Category struct {
	id   CategoryID
	name string
}

func NewCategory(name string) (*Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyCategoryName
	}

	return &Category{
		id:   NewCategoryID(),
		name: name,
	}, nil
}

func ReconstituteCategory(id CategoryID, name string) *Category {
	return &Category{
		id:   id,
		name: name,
	}
}

func (c *Category) ID() CategoryID {
	return c.id
}

func (c *Category) Name() string {
	return c.name
}
