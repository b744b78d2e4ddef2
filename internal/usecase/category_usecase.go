package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"campus_trade/internal/domain/entities"
	"campus_trade/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var ErrInvalidCategoryName = errors.New("invalid category name")

// ICategoryUseCase exposes category and subcategory operations.

type ICategoryUseCase interface {
	CreateCategory(ctx context.Context, name string) (entities.Category, error)
	ListCategories(ctx context.Context) ([]entities.Category, error)
	CreateSubcategory(ctx context.Context, categoryID, name string) (entities.Subcategory, error)
	ListSubcategories(ctx context.Context, categoryID string) ([]entities.Subcategory, error)
}

type CategoryUseCase struct {
	repo interfaces.ICategoryRepository
}

var _ ICategoryUseCase = (*CategoryUseCase)(nil)

func NewCategoryUseCase(repo interfaces.ICategoryRepository) *CategoryUseCase {
	return &CategoryUseCase{repo: repo}
}

func (u *CategoryUseCase) CreateCategory(ctx context.Context, name string) (entities.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return entities.Category{}, ErrInvalidCategoryName
	}

	c := entities.Category{
		ID:        uuid.NewString(),
		Name:      name,
		CreatedAt: time.Now().UTC(),
	}
	return u.repo.CreateCategory(ctx, c)
}

func (u *CategoryUseCase) ListCategories(ctx context.Context) ([]entities.Category, error) {
	return u.repo.ListCategories(ctx)
}

func (u *CategoryUseCase) CreateSubcategory(ctx context.Context, categoryID, name string) (entities.Subcategory, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return entities.Subcategory{}, ErrInvalidCategoryName
	}

	category, err := u.repo.GetCategoryByID(ctx, strings.TrimSpace(categoryID))
	if err != nil {
		return entities.Subcategory{}, err
	}
	if category.ID == "" {
		return entities.Subcategory{}, ErrCategoryNotFound
	}

	s := entities.Subcategory{
		ID:         uuid.NewString(),
		CategoryID: category.ID,
		Name:       name,
		CreatedAt:  time.Now().UTC(),
	}
	return u.repo.CreateSubcategory(ctx, s)
}

func (u *CategoryUseCase) ListSubcategories(ctx context.Context, categoryID string) ([]entities.Subcategory, error) {
	categoryID = strings.TrimSpace(categoryID)
	if categoryID == "" {
		return nil, ErrCategoryNotFound
	}
	return u.repo.ListSubcategoriesByCategoryID(ctx, categoryID)
}
