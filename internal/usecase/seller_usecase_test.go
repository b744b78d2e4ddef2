package usecase

import (
	"context"
	"errors"
	"testing"

	"campus_trade/internal/domain/entities"
	mock_interfaces "campus_trade/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestSellerUseCase_Register(t *testing.T) {
	t.Run("missing fields", func(t *testing.T) {
		uc := NewSellerUseCase(nil)
		for _, args := range [][3]string{
			{"", "ada@test.com", "Yaba"},
			{"Ada", " ", "Yaba"},
			{"Ada", "ada@test.com", ""},
		} {
			if _, err := uc.Register(context.Background(), args[0], args[1], args[2]); !errors.Is(err, ErrInvalidSellerInput) {
				t.Fatalf("expected ErrInvalidSellerInput for %v, got %v", args, err)
			}
		}
	})

	t.Run("registers unverified", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockISellerRepository(ctrl)
		uc := NewSellerUseCase(repo)

		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Seller{})).DoAndReturn(
			func(_ context.Context, s entities.Seller) (entities.Seller, error) {
				if s.ID == "" || s.KYCVerified {
					t.Fatalf("expected an unverified seller with id, got %+v", s)
				}
				if s.CreatedAt.IsZero() || s.UpdatedAt.IsZero() {
					t.Fatalf("expected timestamps")
				}
				return s, nil
			},
		)

		s, err := uc.Register(context.Background(), " Ada ", " ada@test.com ", " Yaba ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if s.Name != "Ada" || s.Email != "ada@test.com" || s.School != "Yaba" {
			t.Fatalf("expected trimmed fields, got %+v", s)
		}
	})
}

func TestSellerUseCase_GetByID(t *testing.T) {
	t.Run("empty id", func(t *testing.T) {
		uc := NewSellerUseCase(nil)
		if _, err := uc.GetByID(context.Background(), ""); !errors.Is(err, ErrSellerNotFound) {
			t.Fatalf("expected ErrSellerNotFound, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockISellerRepository(ctrl)
		uc := NewSellerUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "seller-1").Return(entities.Seller{}, nil)

		if _, err := uc.GetByID(context.Background(), "seller-1"); !errors.Is(err, ErrSellerNotFound) {
			t.Fatalf("expected ErrSellerNotFound, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockISellerRepository(ctrl)
		uc := NewSellerUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "seller-1").Return(entities.Seller{ID: "seller-1"}, nil)

		s, err := uc.GetByID(context.Background(), " seller-1 ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if s.ID != "seller-1" {
			t.Fatalf("unexpected seller: %+v", s)
		}
	})
}

func TestSellerUseCase_VerifyKYC(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockISellerRepository(ctrl)
		uc := NewSellerUseCase(repo)

		repo.EXPECT().SetKYCVerified(gomock.Any(), "seller-1", true).Return(entities.Seller{}, nil)

		if _, err := uc.VerifyKYC(context.Background(), "seller-1"); !errors.Is(err, ErrSellerNotFound) {
			t.Fatalf("expected ErrSellerNotFound, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockISellerRepository(ctrl)
		uc := NewSellerUseCase(repo)

		repo.EXPECT().SetKYCVerified(gomock.Any(), "seller-1", true).Return(entities.Seller{ID: "seller-1", KYCVerified: true}, nil)

		s, err := uc.VerifyKYC(context.Background(), "seller-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !s.KYCVerified {
			t.Fatalf("expected verified seller, got %+v", s)
		}
	})
}
