package usecase

import (
	"context"
	"errors"
	"testing"

	"campus_trade/internal/domain/entities"
	mock_interfaces "campus_trade/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestCategoryUseCase_CreateCategory(t *testing.T) {
	t.Run("invalid name", func(t *testing.T) {
		uc := NewCategoryUseCase(nil)
		if _, err := uc.CreateCategory(context.Background(), "  "); !errors.Is(err, ErrInvalidCategoryName) {
			t.Fatalf("expected ErrInvalidCategoryName, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockICategoryRepository(ctrl)
		uc := NewCategoryUseCase(repo)

		repo.EXPECT().CreateCategory(gomock.Any(), gomock.AssignableToTypeOf(entities.Category{})).DoAndReturn(
			func(_ context.Context, c entities.Category) (entities.Category, error) {
				if c.ID == "" || c.Name != "Books" || c.CreatedAt.IsZero() {
					t.Fatalf("unexpected category: %+v", c)
				}
				return c, nil
			},
		)

		c, err := uc.CreateCategory(context.Background(), " Books ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if c.Name != "Books" {
			t.Fatalf("unexpected category: %+v", c)
		}
	})
}

func TestCategoryUseCase_CreateSubcategory(t *testing.T) {
	t.Run("invalid name", func(t *testing.T) {
		uc := NewCategoryUseCase(nil)
		if _, err := uc.CreateSubcategory(context.Background(), "cat-1", ""); !errors.Is(err, ErrInvalidCategoryName) {
			t.Fatalf("expected ErrInvalidCategoryName, got %v", err)
		}
	})

	t.Run("parent category not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockICategoryRepository(ctrl)
		uc := NewCategoryUseCase(repo)

		repo.EXPECT().GetCategoryByID(gomock.Any(), "cat-1").Return(entities.Category{}, nil)

		if _, err := uc.CreateSubcategory(context.Background(), "cat-1", "Textbooks"); !errors.Is(err, ErrCategoryNotFound) {
			t.Fatalf("expected ErrCategoryNotFound, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockICategoryRepository(ctrl)
		uc := NewCategoryUseCase(repo)

		repo.EXPECT().GetCategoryByID(gomock.Any(), "cat-1").Return(entities.Category{ID: "cat-1"}, nil)
		repo.EXPECT().CreateSubcategory(gomock.Any(), gomock.AssignableToTypeOf(entities.Subcategory{})).DoAndReturn(
			func(_ context.Context, s entities.Subcategory) (entities.Subcategory, error) {
				if s.ID == "" || s.CategoryID != "cat-1" || s.Name != "Textbooks" {
					t.Fatalf("unexpected subcategory: %+v", s)
				}
				return s, nil
			},
		)

		s, err := uc.CreateSubcategory(context.Background(), " cat-1 ", " Textbooks ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if s.CategoryID != "cat-1" {
			t.Fatalf("unexpected subcategory: %+v", s)
		}
	})
}

func TestCategoryUseCase_ListSubcategories(t *testing.T) {
	t.Run("empty category id", func(t *testing.T) {
		uc := NewCategoryUseCase(nil)
		if _, err := uc.ListSubcategories(context.Background(), " "); !errors.Is(err, ErrCategoryNotFound) {
			t.Fatalf("expected ErrCategoryNotFound, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockICategoryRepository(ctrl)
		uc := NewCategoryUseCase(repo)

		expected := []entities.Subcategory{{ID: "sub-1", CategoryID: "cat-1"}}
		repo.EXPECT().ListSubcategoriesByCategoryID(gomock.Any(), "cat-1").Return(expected, nil)

		subs, err := uc.ListSubcategories(context.Background(), "cat-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(subs) != 1 || subs[0].ID != "sub-1" {
			t.Fatalf("unexpected result: %+v", subs)
		}
	})
}
