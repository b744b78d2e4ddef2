package usecase

import (
	"context"
	"errors"
	"testing"

	"campus_trade/internal/domain/entities"
	"campus_trade/internal/usecase/interfaces"
	mock_interfaces "campus_trade/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

type approvalFixture struct {
	products *mock_interfaces.MockIProductRepository
	txRepo   *mock_interfaces.MockITransactionRepository
	gateway  *mock_interfaces.MockIPaymentGateway
	uc       *ListingApprovalUseCase
}

// newApprovalFixture wires the coordinator over a real TransactionUseCase so
// the conditional-write semantics are exercised end to end.
func newApprovalFixture(t *testing.T) approvalFixture {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	products := mock_interfaces.NewMockIProductRepository(ctrl)
	txRepo := mock_interfaces.NewMockITransactionRepository(ctrl)
	gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)

	uc := NewListingApprovalUseCase(products, NewTransactionUseCase(txRepo), gateway, ApprovalConfig{
		FeeRatePercent: 5,
		Currency:       "NGN",
		RedirectURL:    "https://campus-trade.test/thanks",
	})
	return approvalFixture{products: products, txRepo: txRepo, gateway: gateway, uc: uc}
}

// newUnconfiguredApprovalFixture builds the coordinator the way the wiring
// does when the provider selection fails: a nil gateway. The mocked stores
// carry no expectations, so any store access fails the test.
func newUnconfiguredApprovalFixture(t *testing.T) approvalFixture {
	f := newApprovalFixture(t)
	f.uc = NewListingApprovalUseCase(f.products, NewTransactionUseCase(f.txRepo), nil, ApprovalConfig{
		FeeRatePercent: 5,
		Currency:       "NGN",
	})
	return f
}

func TestListingApprovalUseCase_Initiate(t *testing.T) {
	t.Run("unconfigured gateway fails before any write", func(t *testing.T) {
		f := newUnconfiguredApprovalFixture(t)
		if _, err := f.uc.Initiate(context.Background(), "prod-1", "ada@test.com", "Ada"); !errors.Is(err, ErrGatewayUnavailable) {
			t.Fatalf("expected ErrGatewayUnavailable, got %v", err)
		}
	})

	t.Run("invalid payer", func(t *testing.T) {
		f := newApprovalFixture(t)
		if _, err := f.uc.Initiate(context.Background(), "prod-1", "", "Ada"); !errors.Is(err, ErrInvalidPayer) {
			t.Fatalf("expected ErrInvalidPayer, got %v", err)
		}
		if _, err := f.uc.Initiate(context.Background(), "prod-1", "ada@test.com", "  "); !errors.Is(err, ErrInvalidPayer) {
			t.Fatalf("expected ErrInvalidPayer, got %v", err)
		}
	})

	t.Run("product not found", func(t *testing.T) {
		f := newApprovalFixture(t)
		f.products.EXPECT().GetByID(gomock.Any(), "prod-1").Return(entities.Product{}, nil)

		if _, err := f.uc.Initiate(context.Background(), "prod-1", "ada@test.com", "Ada"); !errors.Is(err, ErrProductNotFound) {
			t.Fatalf("expected ErrProductNotFound, got %v", err)
		}
	})

	t.Run("already paid", func(t *testing.T) {
		f := newApprovalFixture(t)
		f.products.EXPECT().GetByID(gomock.Any(), "prod-1").Return(entities.Product{ID: "prod-1", Price: 2000}, nil)
		f.txRepo.EXPECT().ListByProductID(gomock.Any(), "prod-1").Return([]entities.Transaction{
			{Reference: "old", Purpose: entities.TransactionPurposePostFee, Status: entities.TransactionStatusSuccess},
		}, nil)

		if _, err := f.uc.Initiate(context.Background(), "prod-1", "ada@test.com", "Ada"); !errors.Is(err, ErrAlreadyPaid) {
			t.Fatalf("expected ErrAlreadyPaid, got %v", err)
		}
	})

	t.Run("failed attempt does not block a fresh one", func(t *testing.T) {
		f := newApprovalFixture(t)
		f.products.EXPECT().GetByID(gomock.Any(), "prod-1").Return(entities.Product{ID: "prod-1", Price: 2000}, nil)
		f.txRepo.EXPECT().ListByProductID(gomock.Any(), "prod-1").Return([]entities.Transaction{
			{Reference: "old", Purpose: entities.TransactionPurposePostFee, Status: entities.TransactionStatusFailed},
		}, nil)
		f.txRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, tx entities.Transaction) (entities.Transaction, error) { return tx, nil },
		)
		f.gateway.EXPECT().InitializeCharge(gomock.Any(), gomock.Any()).Return(interfaces.Charge{CheckoutURL: "https://pay.test/x"}, nil)

		if _, err := f.uc.Initiate(context.Background(), "prod-1", "ada@test.com", "Ada"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("gateway failure leaves the transaction pending", func(t *testing.T) {
		f := newApprovalFixture(t)
		f.products.EXPECT().GetByID(gomock.Any(), "prod-1").Return(entities.Product{ID: "prod-1", Price: 2000}, nil)
		f.txRepo.EXPECT().ListByProductID(gomock.Any(), "prod-1").Return(nil, nil)
		f.txRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, tx entities.Transaction) (entities.Transaction, error) { return tx, nil },
		)
		// No UpdateStatusFromPending expectation: the record must stay Pending.
		f.gateway.EXPECT().InitializeCharge(gomock.Any(), gomock.Any()).Return(interfaces.Charge{}, errors.New("timeout"))

		if _, err := f.uc.Initiate(context.Background(), "prod-1", "ada@test.com", "Ada"); !errors.Is(err, ErrGatewayUnavailable) {
			t.Fatalf("expected ErrGatewayUnavailable, got %v", err)
		}
	})

	t.Run("success charges five percent of the price", func(t *testing.T) {
		f := newApprovalFixture(t)
		f.products.EXPECT().GetByID(gomock.Any(), "prod-1").Return(entities.Product{ID: "prod-1", Price: 2000, Status: entities.ProductStatusPending}, nil)
		f.txRepo.EXPECT().ListByProductID(gomock.Any(), "prod-1").Return(nil, nil)

		var createdRef string
		f.txRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, tx entities.Transaction) (entities.Transaction, error) {
				createdRef = tx.Reference
				return tx, nil
			},
		)
		f.gateway.EXPECT().InitializeCharge(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, req interfaces.ChargeRequest) (interfaces.Charge, error) {
				if req.Amount != 100 {
					t.Fatalf("expected fee 100, got %v", req.Amount)
				}
				if req.Currency != "NGN" || req.Reference != createdRef {
					t.Fatalf("unexpected charge request: %+v", req)
				}
				if req.CustomerName != "Ada" || req.CustomerEmail != "ada@test.com" {
					t.Fatalf("unexpected customer: %+v", req)
				}
				return interfaces.Charge{CheckoutURL: "https://pay.test/" + req.Reference, Reference: req.Reference}, nil
			},
		)

		res, err := f.uc.Initiate(context.Background(), "prod-1", "ada@test.com", "Ada")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Reference != createdRef || res.CheckoutURL != "https://pay.test/"+createdRef {
			t.Fatalf("unexpected result: %+v", res)
		}
		if res.Transaction.Status != entities.TransactionStatusPending || res.Transaction.Amount != 100 {
			t.Fatalf("unexpected transaction: %+v", res.Transaction)
		}
	})
}

func TestListingApprovalUseCase_Reconcile(t *testing.T) {
	pendingTx := entities.Transaction{
		ID:        "tx-1",
		Reference: "ref-1",
		Amount:    100,
		Status:    entities.TransactionStatusPending,
		Purpose:   entities.TransactionPurposePostFee,
		ProductID: "prod-1",
	}

	t.Run("unconfigured gateway fails before any read", func(t *testing.T) {
		f := newUnconfiguredApprovalFixture(t)
		if _, err := f.uc.Reconcile(context.Background(), "ref-1"); !errors.Is(err, ErrGatewayUnavailable) {
			t.Fatalf("expected ErrGatewayUnavailable, got %v", err)
		}
	})

	t.Run("unknown reference", func(t *testing.T) {
		f := newApprovalFixture(t)
		f.txRepo.EXPECT().GetByReference(gomock.Any(), "ref-1").Return(entities.Transaction{}, nil)

		if _, err := f.uc.Reconcile(context.Background(), "ref-1"); !errors.Is(err, ErrTransactionNotFound) {
			t.Fatalf("expected ErrTransactionNotFound, got %v", err)
		}
	})

	t.Run("gateway status failure makes no writes", func(t *testing.T) {
		f := newApprovalFixture(t)
		f.txRepo.EXPECT().GetByReference(gomock.Any(), "ref-1").Return(pendingTx, nil)
		f.gateway.EXPECT().GetChargeStatus(gomock.Any(), "ref-1").Return(interfaces.ChargeStatus(""), errors.New("timeout"))

		if _, err := f.uc.Reconcile(context.Background(), "ref-1"); !errors.Is(err, ErrGatewayUnavailable) {
			t.Fatalf("expected ErrGatewayUnavailable, got %v", err)
		}
	})

	t.Run("pending charge makes no writes", func(t *testing.T) {
		f := newApprovalFixture(t)
		f.txRepo.EXPECT().GetByReference(gomock.Any(), "ref-1").Return(pendingTx, nil)
		f.gateway.EXPECT().GetChargeStatus(gomock.Any(), "ref-1").Return(interfaces.ChargeStatusPending, nil)

		res, err := f.uc.Reconcile(context.Background(), "ref-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Status != entities.TransactionStatusPending {
			t.Fatalf("expected pending, got %+v", res)
		}
	})

	t.Run("failed charge marks the transaction failed", func(t *testing.T) {
		f := newApprovalFixture(t)
		failed := pendingTx
		failed.Status = entities.TransactionStatusFailed

		f.txRepo.EXPECT().GetByReference(gomock.Any(), "ref-1").Return(pendingTx, nil)
		f.gateway.EXPECT().GetChargeStatus(gomock.Any(), "ref-1").Return(interfaces.ChargeStatusFailed, nil)
		f.txRepo.EXPECT().UpdateStatusFromPending(gomock.Any(), "ref-1", entities.TransactionStatusFailed, false).Return(failed, nil)

		res, err := f.uc.Reconcile(context.Background(), "ref-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Status != entities.TransactionStatusFailed {
			t.Fatalf("expected failed, got %+v", res)
		}
	})

	t.Run("successful charge approves the product", func(t *testing.T) {
		f := newApprovalFixture(t)
		succeeded := pendingTx
		succeeded.Status = entities.TransactionStatusSuccess
		succeeded.Used = true

		f.txRepo.EXPECT().GetByReference(gomock.Any(), "ref-1").Return(pendingTx, nil)
		f.gateway.EXPECT().GetChargeStatus(gomock.Any(), "ref-1").Return(interfaces.ChargeStatusSuccess, nil)
		f.txRepo.EXPECT().UpdateStatusFromPending(gomock.Any(), "ref-1", entities.TransactionStatusSuccess, true).Return(succeeded, nil)
		f.products.EXPECT().GetByID(gomock.Any(), "prod-1").Return(entities.Product{ID: "prod-1", Status: entities.ProductStatusPending}, nil)
		f.products.EXPECT().UpdateStatusFromPending(gomock.Any(), "prod-1", entities.ProductStatusApproved).Return(entities.Product{ID: "prod-1", Status: entities.ProductStatusApproved}, nil)

		res, err := f.uc.Reconcile(context.Background(), "ref-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Status != entities.TransactionStatusSuccess || !res.Transaction.Used {
			t.Fatalf("unexpected transaction: %+v", res.Transaction)
		}
		if res.Product == nil || res.Product.Status != entities.ProductStatusApproved {
			t.Fatalf("expected approved product, got %+v", res.Product)
		}
	})

	t.Run("second reconcile of a success is a no-op", func(t *testing.T) {
		f := newApprovalFixture(t)
		succeeded := pendingTx
		succeeded.Status = entities.TransactionStatusSuccess
		succeeded.Used = true

		f.txRepo.EXPECT().GetByReference(gomock.Any(), "ref-1").Return(succeeded, nil)
		f.gateway.EXPECT().GetChargeStatus(gomock.Any(), "ref-1").Return(interfaces.ChargeStatusSuccess, nil)
		// Conditional write loses because the record is already terminal.
		f.txRepo.EXPECT().UpdateStatusFromPending(gomock.Any(), "ref-1", entities.TransactionStatusSuccess, true).Return(entities.Transaction{}, nil)
		f.txRepo.EXPECT().GetByReference(gomock.Any(), "ref-1").Return(succeeded, nil)
		f.products.EXPECT().GetByID(gomock.Any(), "prod-1").Return(entities.Product{ID: "prod-1", Status: entities.ProductStatusApproved}, nil)

		res, err := f.uc.Reconcile(context.Background(), "ref-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Status != entities.TransactionStatusSuccess {
			t.Fatalf("expected success, got %+v", res)
		}
		if res.Product == nil || res.Product.Status != entities.ProductStatusApproved {
			t.Fatalf("expected approved product, got %+v", res.Product)
		}
	})

	t.Run("admin rejection wins over a confirmed payment", func(t *testing.T) {
		f := newApprovalFixture(t)
		succeeded := pendingTx
		succeeded.Status = entities.TransactionStatusSuccess
		succeeded.Used = true

		f.txRepo.EXPECT().GetByReference(gomock.Any(), "ref-1").Return(pendingTx, nil)
		f.gateway.EXPECT().GetChargeStatus(gomock.Any(), "ref-1").Return(interfaces.ChargeStatusSuccess, nil)
		f.txRepo.EXPECT().UpdateStatusFromPending(gomock.Any(), "ref-1", entities.TransactionStatusSuccess, true).Return(succeeded, nil)
		f.products.EXPECT().GetByID(gomock.Any(), "prod-1").Return(entities.Product{ID: "prod-1", Status: entities.ProductStatusNotApproved}, nil)

		res, err := f.uc.Reconcile(context.Background(), "ref-1")
		if !errors.Is(err, ErrConflictAlreadyRejected) {
			t.Fatalf("expected ErrConflictAlreadyRejected, got %v", err)
		}
		if res.Transaction.Status != entities.TransactionStatusSuccess {
			t.Fatalf("payment must stay recorded, got %+v", res.Transaction)
		}
		if res.Product == nil || res.Product.Status != entities.ProductStatusNotApproved {
			t.Fatalf("expected rejected product in result, got %+v", res.Product)
		}
	})

	t.Run("lost product write re-reads the winner", func(t *testing.T) {
		f := newApprovalFixture(t)
		succeeded := pendingTx
		succeeded.Status = entities.TransactionStatusSuccess
		succeeded.Used = true

		f.txRepo.EXPECT().GetByReference(gomock.Any(), "ref-1").Return(pendingTx, nil)
		f.gateway.EXPECT().GetChargeStatus(gomock.Any(), "ref-1").Return(interfaces.ChargeStatusSuccess, nil)
		f.txRepo.EXPECT().UpdateStatusFromPending(gomock.Any(), "ref-1", entities.TransactionStatusSuccess, true).Return(succeeded, nil)
		f.products.EXPECT().GetByID(gomock.Any(), "prod-1").Return(entities.Product{ID: "prod-1", Status: entities.ProductStatusPending}, nil)
		f.products.EXPECT().UpdateStatusFromPending(gomock.Any(), "prod-1", entities.ProductStatusApproved).Return(entities.Product{}, nil)
		f.products.EXPECT().GetByID(gomock.Any(), "prod-1").Return(entities.Product{ID: "prod-1", Status: entities.ProductStatusNotApproved}, nil)

		if _, err := f.uc.Reconcile(context.Background(), "ref-1"); !errors.Is(err, ErrConflictAlreadyRejected) {
			t.Fatalf("expected ErrConflictAlreadyRejected, got %v", err)
		}
	})

	t.Run("success reported for an already failed transaction", func(t *testing.T) {
		f := newApprovalFixture(t)
		failed := pendingTx
		failed.Status = entities.TransactionStatusFailed

		f.txRepo.EXPECT().GetByReference(gomock.Any(), "ref-1").Return(failed, nil)
		f.gateway.EXPECT().GetChargeStatus(gomock.Any(), "ref-1").Return(interfaces.ChargeStatusSuccess, nil)
		f.txRepo.EXPECT().UpdateStatusFromPending(gomock.Any(), "ref-1", entities.TransactionStatusSuccess, true).Return(entities.Transaction{}, nil)
		f.txRepo.EXPECT().GetByReference(gomock.Any(), "ref-1").Return(failed, nil)

		if _, err := f.uc.Reconcile(context.Background(), "ref-1"); !errors.Is(err, ErrAlreadyTerminal) {
			t.Fatalf("expected ErrAlreadyTerminal, got %v", err)
		}
	})

	t.Run("missing product on confirm keeps the payment", func(t *testing.T) {
		f := newApprovalFixture(t)
		succeeded := pendingTx
		succeeded.Status = entities.TransactionStatusSuccess
		succeeded.Used = true

		f.txRepo.EXPECT().GetByReference(gomock.Any(), "ref-1").Return(pendingTx, nil)
		f.gateway.EXPECT().GetChargeStatus(gomock.Any(), "ref-1").Return(interfaces.ChargeStatusSuccess, nil)
		f.txRepo.EXPECT().UpdateStatusFromPending(gomock.Any(), "ref-1", entities.TransactionStatusSuccess, true).Return(succeeded, nil)
		f.products.EXPECT().GetByID(gomock.Any(), "prod-1").Return(entities.Product{}, nil)

		res, err := f.uc.Reconcile(context.Background(), "ref-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Status != entities.TransactionStatusSuccess || res.Product != nil {
			t.Fatalf("unexpected result: %+v", res)
		}
	})
}
