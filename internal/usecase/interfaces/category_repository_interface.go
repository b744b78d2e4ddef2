package interfaces

import (
	"context"

	"campus_trade/internal/domain/entities"
)

// ICategoryRepository abstracts DynamoDB persistence for categories and
// subcategories. They live in two tables but share one port since every
// caller needs both.

type ICategoryRepository interface {
	CreateCategory(ctx context.Context, c entities.Category) (entities.Category, error)
	GetCategoryByID(ctx context.Context, id string) (entities.Category, error)
	ListCategories(ctx context.Context) ([]entities.Category, error)

	CreateSubcategory(ctx context.Context, s entities.Subcategory) (entities.Subcategory, error)
	GetSubcategoryByID(ctx context.Context, id string) (entities.Subcategory, error)
	ListSubcategoriesByCategoryID(ctx context.Context, categoryID string) ([]entities.Subcategory, error)
}
