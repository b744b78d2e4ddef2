package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"campus_trade/internal/domain/entities"
	"campus_trade/internal/usecase/interfaces"
	mock_interfaces "campus_trade/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestTransactionUseCase_CreatePending(t *testing.T) {
	t.Run("invalid payer", func(t *testing.T) {
		uc := NewTransactionUseCase(nil)
		if _, err := uc.CreatePending(context.Background(), "", "x@test.com", 10, "prod-1"); !errors.Is(err, ErrInvalidPayer) {
			t.Fatalf("expected ErrInvalidPayer, got %v", err)
		}
		if _, err := uc.CreatePending(context.Background(), "Ada", "  ", 10, "prod-1"); !errors.Is(err, ErrInvalidPayer) {
			t.Fatalf("expected ErrInvalidPayer, got %v", err)
		}
	})

	t.Run("invalid product id", func(t *testing.T) {
		uc := NewTransactionUseCase(nil)
		if _, err := uc.CreatePending(context.Background(), "Ada", "x@test.com", 10, " "); !errors.Is(err, ErrInvalidProductID) {
			t.Fatalf("expected ErrInvalidProductID, got %v", err)
		}
	})

	t.Run("negative amount", func(t *testing.T) {
		uc := NewTransactionUseCase(nil)
		if _, err := uc.CreatePending(context.Background(), "Ada", "x@test.com", -1, "prod-1"); !errors.Is(err, ErrInvalidAmount) {
			t.Fatalf("expected ErrInvalidAmount, got %v", err)
		}
	})

	t.Run("creates pending record", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockITransactionRepository(ctrl)
		uc := NewTransactionUseCase(repo)

		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Transaction{})).DoAndReturn(
			func(_ context.Context, tx entities.Transaction) (entities.Transaction, error) {
				if tx.ID == "" || !strings.HasPrefix(tx.Reference, ReferencePrefix) {
					t.Fatalf("unexpected identifiers: %+v", tx)
				}
				if tx.Status != entities.TransactionStatusPending || tx.Used {
					t.Fatalf("expected fresh pending record, got %+v", tx)
				}
				if tx.Purpose != entities.TransactionPurposePostFee || tx.ProductID != "prod-1" || tx.Amount != 100 {
					t.Fatalf("unexpected transaction: %+v", tx)
				}
				if tx.CreatedAt.IsZero() || tx.UpdatedAt.IsZero() {
					t.Fatalf("expected timestamps")
				}
				return tx, nil
			},
		)

		created, err := uc.CreatePending(context.Background(), " Ada ", " ada@test.com ", 100, " prod-1 ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if created.Name != "Ada" || created.Email != "ada@test.com" {
			t.Fatalf("expected trimmed payer, got %+v", created)
		}
	})

	t.Run("retries once on duplicate reference", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockITransactionRepository(ctrl)
		uc := NewTransactionUseCase(repo)

		var first, second string
		gomock.InOrder(
			repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
				func(_ context.Context, tx entities.Transaction) (entities.Transaction, error) {
					first = tx.Reference
					return entities.Transaction{}, interfaces.ErrDuplicateReference
				},
			),
			repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
				func(_ context.Context, tx entities.Transaction) (entities.Transaction, error) {
					second = tx.Reference
					return tx, nil
				},
			),
		)

		created, err := uc.CreatePending(context.Background(), "Ada", "ada@test.com", 100, "prod-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if first == second {
			t.Fatalf("expected a fresh reference on retry, got %q twice", first)
		}
		if created.Reference != second {
			t.Fatalf("expected the retried reference, got %q", created.Reference)
		}
	})

	t.Run("gives up after second duplicate", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockITransactionRepository(ctrl)
		uc := NewTransactionUseCase(repo)

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Transaction{}, interfaces.ErrDuplicateReference).Times(2)

		if _, err := uc.CreatePending(context.Background(), "Ada", "ada@test.com", 100, "prod-1"); !errors.Is(err, interfaces.ErrDuplicateReference) {
			t.Fatalf("expected ErrDuplicateReference, got %v", err)
		}
	})

	t.Run("repo error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockITransactionRepository(ctrl)
		uc := NewTransactionUseCase(repo)

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Transaction{}, errors.New("db"))

		if _, err := uc.CreatePending(context.Background(), "Ada", "ada@test.com", 100, "prod-1"); err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})
}

func TestTransactionUseCase_MarkTerminal(t *testing.T) {
	cases := []struct {
		name   string
		call   func(uc *TransactionUseCase, ctx context.Context, ref string) (entities.Transaction, error)
		status entities.TransactionStatus
		used   bool
	}{
		{name: "success", call: (*TransactionUseCase).MarkSuccess, status: entities.TransactionStatusSuccess, used: true},
		{name: "failed", call: (*TransactionUseCase).MarkFailed, status: entities.TransactionStatusFailed, used: false},
	}

	for _, tc := range cases {
		t.Run(tc.name+" empty reference", func(t *testing.T) {
			uc := NewTransactionUseCase(nil)
			if _, err := tc.call(uc, context.Background(), "  "); !errors.Is(err, ErrTransactionNotFound) {
				t.Fatalf("expected ErrTransactionNotFound, got %v", err)
			}
		})

		t.Run(tc.name+" conditional write applies", func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			repo := mock_interfaces.NewMockITransactionRepository(ctrl)
			uc := NewTransactionUseCase(repo)

			expected := entities.Transaction{Reference: "ref-1", Status: tc.status, Used: tc.used}
			repo.EXPECT().UpdateStatusFromPending(gomock.Any(), "ref-1", tc.status, tc.used).Return(expected, nil)

			res, err := tc.call(uc, context.Background(), " ref-1 ")
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if res.Status != tc.status || res.Used != tc.used {
				t.Fatalf("unexpected result: %+v", res)
			}
		})

		t.Run(tc.name+" absent record", func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			repo := mock_interfaces.NewMockITransactionRepository(ctrl)
			uc := NewTransactionUseCase(repo)

			repo.EXPECT().UpdateStatusFromPending(gomock.Any(), "ref-1", tc.status, tc.used).Return(entities.Transaction{}, nil)
			repo.EXPECT().GetByReference(gomock.Any(), "ref-1").Return(entities.Transaction{}, nil)

			if _, err := tc.call(uc, context.Background(), "ref-1"); !errors.Is(err, ErrTransactionNotFound) {
				t.Fatalf("expected ErrTransactionNotFound, got %v", err)
			}
		})

		t.Run(tc.name+" idempotent when already in target status", func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			repo := mock_interfaces.NewMockITransactionRepository(ctrl)
			uc := NewTransactionUseCase(repo)

			current := entities.Transaction{Reference: "ref-1", Status: tc.status, Used: tc.used}
			repo.EXPECT().UpdateStatusFromPending(gomock.Any(), "ref-1", tc.status, tc.used).Return(entities.Transaction{}, nil)
			repo.EXPECT().GetByReference(gomock.Any(), "ref-1").Return(current, nil)

			res, err := tc.call(uc, context.Background(), "ref-1")
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if res.Status != tc.status {
				t.Fatalf("unexpected result: %+v", res)
			}
		})
	}

	t.Run("conflicting terminal state", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockITransactionRepository(ctrl)
		uc := NewTransactionUseCase(repo)

		current := entities.Transaction{Reference: "ref-1", Status: entities.TransactionStatusFailed}
		repo.EXPECT().UpdateStatusFromPending(gomock.Any(), "ref-1", entities.TransactionStatusSuccess, true).Return(entities.Transaction{}, nil)
		repo.EXPECT().GetByReference(gomock.Any(), "ref-1").Return(current, nil)

		res, err := uc.MarkSuccess(context.Background(), "ref-1")
		if !errors.Is(err, ErrAlreadyTerminal) {
			t.Fatalf("expected ErrAlreadyTerminal, got %v", err)
		}
		if res.Status != entities.TransactionStatusFailed {
			t.Fatalf("expected the current record alongside the error, got %+v", res)
		}
	})
}

func TestTransactionUseCase_GetByReference(t *testing.T) {
	t.Run("empty reference", func(t *testing.T) {
		uc := NewTransactionUseCase(nil)
		if _, err := uc.GetByReference(context.Background(), ""); !errors.Is(err, ErrTransactionNotFound) {
			t.Fatalf("expected ErrTransactionNotFound, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockITransactionRepository(ctrl)
		uc := NewTransactionUseCase(repo)

		repo.EXPECT().GetByReference(gomock.Any(), "ref-1").Return(entities.Transaction{}, nil)

		if _, err := uc.GetByReference(context.Background(), "ref-1"); !errors.Is(err, ErrTransactionNotFound) {
			t.Fatalf("expected ErrTransactionNotFound, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockITransactionRepository(ctrl)
		uc := NewTransactionUseCase(repo)

		expected := entities.Transaction{Reference: "ref-1", Status: entities.TransactionStatusPending}
		repo.EXPECT().GetByReference(gomock.Any(), "ref-1").Return(expected, nil)

		res, err := uc.GetByReference(context.Background(), " ref-1 ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Reference != "ref-1" {
			t.Fatalf("unexpected result: %+v", res)
		}
	})
}

func TestTransactionUseCase_HasSuccessfulPostFee(t *testing.T) {
	t.Run("invalid product id", func(t *testing.T) {
		uc := NewTransactionUseCase(nil)
		if _, err := uc.HasSuccessfulPostFee(context.Background(), ""); !errors.Is(err, ErrInvalidProductID) {
			t.Fatalf("expected ErrInvalidProductID, got %v", err)
		}
	})

	t.Run("ignores failed and pending attempts", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockITransactionRepository(ctrl)
		uc := NewTransactionUseCase(repo)

		repo.EXPECT().ListByProductID(gomock.Any(), "prod-1").Return([]entities.Transaction{
			{Reference: "a", Purpose: entities.TransactionPurposePostFee, Status: entities.TransactionStatusFailed},
			{Reference: "b", Purpose: entities.TransactionPurposePostFee, Status: entities.TransactionStatusPending},
		}, nil)

		paid, err := uc.HasSuccessfulPostFee(context.Background(), "prod-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if paid {
			t.Fatalf("expected no successful post fee")
		}
	})

	t.Run("finds a successful post fee", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockITransactionRepository(ctrl)
		uc := NewTransactionUseCase(repo)

		repo.EXPECT().ListByProductID(gomock.Any(), "prod-1").Return([]entities.Transaction{
			{Reference: "a", Purpose: entities.TransactionPurposePostFee, Status: entities.TransactionStatusFailed},
			{Reference: "b", Purpose: entities.TransactionPurposePostFee, Status: entities.TransactionStatusSuccess},
		}, nil)

		paid, err := uc.HasSuccessfulPostFee(context.Background(), "prod-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !paid {
			t.Fatalf("expected a successful post fee")
		}
	})
}
