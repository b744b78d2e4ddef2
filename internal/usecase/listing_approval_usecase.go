package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"campus_trade/internal/domain/entities"
	"campus_trade/internal/usecase/interfaces"
)

var (
	ErrProductNotFound         = errors.New("product not found")
	ErrGatewayUnavailable      = errors.New("payment gateway unavailable")
	ErrConflictAlreadyRejected = errors.New("product was rejected by an admin; approval blocked")
	ErrAlreadyPaid             = errors.New("product already has a successful posting-fee payment")
)

// ApprovalConfig is the explicit configuration handed to the coordinator at
// construction (fee rate, charge currency, checkout redirect target).

type ApprovalConfig struct {
	FeeRatePercent float64
	Currency       string
	RedirectURL    string
}

// InitiateResult is the checkout handle returned to the seller's client.

type InitiateResult struct {
	Reference   string
	CheckoutURL string
	RedirectURL string
	Transaction entities.Transaction
}

// ReconcileResult reports the outcome of polling the gateway for a charge.

type ReconcileResult struct {
	Status      entities.TransactionStatus
	Transaction entities.Transaction
	Product     *entities.Product
}

// IListingApprovalUseCase coordinates the posting-fee payment workflow:
// product pending -> fee charge initiated -> gateway polled -> product
// approved on a verified payment.
//
// Per-attempt states: Initiated (Transaction=Pending, Product=pending),
// Confirmed (Transaction=Success, Product=approved), Rejected
// (Transaction=Failed, Product untouched). Every gateway call is a single
// attempt; retry policy belongs to the caller.

type IListingApprovalUseCase interface {
	Initiate(ctx context.Context, productID, payerEmail, payerName string) (InitiateResult, error)
	Reconcile(ctx context.Context, reference string) (ReconcileResult, error)
}

type ListingApprovalUseCase struct {
	products     interfaces.IProductRepository
	transactions ITransactionUseCase
	gateway      interfaces.IPaymentGateway
	cfg          ApprovalConfig
}

var _ IListingApprovalUseCase = (*ListingApprovalUseCase)(nil)

func NewListingApprovalUseCase(products interfaces.IProductRepository, transactions ITransactionUseCase, gateway interfaces.IPaymentGateway, cfg ApprovalConfig) *ListingApprovalUseCase {
	if cfg.FeeRatePercent == 0 {
		cfg.FeeRatePercent = DefaultFeeRatePercent
	}
	return &ListingApprovalUseCase{products: products, transactions: transactions, gateway: gateway, cfg: cfg}
}

func (u *ListingApprovalUseCase) Initiate(ctx context.Context, productID, payerEmail, payerName string) (InitiateResult, error) {
	productID = strings.TrimSpace(productID)
	log.Printf("[approval][usecase] initiate start product_id=%s", productID)

	// Fail before any store write: a misconfigured provider must not leave
	// Pending records behind.
	if u.gateway == nil {
		log.Printf("[approval][usecase] gateway not configured product_id=%s", productID)
		return InitiateResult{}, fmt.Errorf("%w: not configured", ErrGatewayUnavailable)
	}

	if strings.TrimSpace(payerEmail) == "" || strings.TrimSpace(payerName) == "" {
		return InitiateResult{}, ErrInvalidPayer
	}

	product, err := u.products.GetByID(ctx, productID)
	if err != nil {
		return InitiateResult{}, err
	}
	if product.ID == "" {
		log.Printf("[approval][usecase] initiate product not found product_id=%s", productID)
		return InitiateResult{}, ErrProductNotFound
	}

	fee, err := PostingFee(product.Price, u.cfg.FeeRatePercent)
	if err != nil {
		log.Printf("[approval][usecase] initiate bad price product_id=%s price=%v err=%v", productID, product.Price, err)
		return InitiateResult{}, err
	}

	paid, err := u.transactions.HasSuccessfulPostFee(ctx, productID)
	if err != nil {
		return InitiateResult{}, err
	}
	if paid {
		log.Printf("[approval][usecase] initiate rejected, already paid product_id=%s", productID)
		return InitiateResult{}, ErrAlreadyPaid
	}

	t, err := u.transactions.CreatePending(ctx, payerName, payerEmail, fee, productID)
	if err != nil {
		return InitiateResult{}, err
	}
	log.Printf("[approval][usecase] transaction created reference=%s amount=%.2f product_id=%s", t.Reference, t.Amount, productID)

	// The transaction is persisted before the gateway call on purpose: if the
	// gateway response is lost the charge may still exist provider-side, and a
	// Pending record is what later reconciliation keys off. Never rolled back.
	charge, err := u.gateway.InitializeCharge(ctx, interfaces.ChargeRequest{
		Amount:        fee,
		Currency:      u.cfg.Currency,
		Reference:     t.Reference,
		CustomerName:  payerName,
		CustomerEmail: payerEmail,
		RedirectURL:   u.cfg.RedirectURL,
	})
	if err != nil {
		log.Printf("[approval][usecase] gateway initialize failed reference=%s err=%v", t.Reference, err)
		return InitiateResult{}, fmt.Errorf("%w: %v", ErrGatewayUnavailable, err)
	}
	log.Printf("[approval][usecase] initiate success reference=%s checkout_url=%s", t.Reference, charge.CheckoutURL)

	return InitiateResult{
		Reference:   t.Reference,
		CheckoutURL: charge.CheckoutURL,
		RedirectURL: u.cfg.RedirectURL,
		Transaction: t,
	}, nil
}

func (u *ListingApprovalUseCase) Reconcile(ctx context.Context, reference string) (ReconcileResult, error) {
	reference = strings.TrimSpace(reference)
	log.Printf("[approval][usecase] reconcile start reference=%s", reference)

	if u.gateway == nil {
		log.Printf("[approval][usecase] gateway not configured reference=%s", reference)
		return ReconcileResult{}, fmt.Errorf("%w: not configured", ErrGatewayUnavailable)
	}

	t, err := u.transactions.GetByReference(ctx, reference)
	if err != nil {
		return ReconcileResult{}, err
	}

	status, err := u.gateway.GetChargeStatus(ctx, reference)
	if err != nil {
		log.Printf("[approval][usecase] gateway status failed reference=%s err=%v", reference, err)
		return ReconcileResult{}, fmt.Errorf("%w: %v", ErrGatewayUnavailable, err)
	}
	log.Printf("[approval][usecase] gateway status reference=%s status=%s", reference, status)

	switch status {
	case interfaces.ChargeStatusSuccess:
		return u.confirm(ctx, reference)
	case interfaces.ChargeStatusFailed:
		failed, err := u.transactions.MarkFailed(ctx, reference)
		if err != nil {
			// A Success record never regresses; a gateway flip-flop to
			// "failed" is surfaced for manual reconciliation.
			return ReconcileResult{Status: failed.Status, Transaction: failed}, err
		}
		log.Printf("[approval][usecase] reconcile failed reference=%s", reference)
		return ReconcileResult{Status: entities.TransactionStatusFailed, Transaction: failed}, nil
	default:
		// Indeterminate: no writes, the caller polls again later.
		log.Printf("[approval][usecase] reconcile still pending reference=%s", reference)
		return ReconcileResult{Status: t.Status, Transaction: t}, nil
	}
}

// confirm marks the transaction successful and flips the product from pending
// to approved. Both writes are conditional single-document updates; a crash
// between them is repaired by the next reconcile of the same reference.
func (u *ListingApprovalUseCase) confirm(ctx context.Context, reference string) (ReconcileResult, error) {
	t, err := u.transactions.MarkSuccess(ctx, reference)
	if err != nil {
		if errors.Is(err, ErrAlreadyTerminal) {
			// Terminal but not Success (i.e. Failed): do not touch the product.
			return ReconcileResult{Status: t.Status, Transaction: t}, err
		}
		return ReconcileResult{}, err
	}

	res := ReconcileResult{Status: entities.TransactionStatusSuccess, Transaction: t}

	product, err := u.products.GetByID(ctx, t.ProductID)
	if err != nil {
		return res, err
	}
	if product.ID == "" {
		// Weak reference: the product may have been removed since initiation.
		log.Printf("[approval][usecase] product missing on confirm reference=%s product_id=%s", reference, t.ProductID)
		return res, nil
	}

	switch product.Status {
	case entities.ProductStatusPending:
		updated, err := u.products.UpdateStatusFromPending(ctx, product.ID, entities.ProductStatusApproved)
		if err != nil {
			return res, err
		}
		if updated.ID == "" {
			// Lost the conditional write to a concurrent admin decision or
			// reconcile; re-read to see which.
			current, err := u.products.GetByID(ctx, product.ID)
			if err != nil {
				return res, err
			}
			res.Product = &current
			if current.Status == entities.ProductStatusNotApproved {
				return res, ErrConflictAlreadyRejected
			}
			return res, nil
		}
		log.Printf("[approval][usecase] product approved reference=%s product_id=%s", reference, product.ID)
		res.Product = &updated
		return res, nil
	case entities.ProductStatusNotApproved:
		// An explicit admin rejection always wins over a payment confirmation.
		log.Printf("[approval][usecase] approval blocked by admin rejection reference=%s product_id=%s", reference, product.ID)
		res.Product = &product
		return res, ErrConflictAlreadyRejected
	default:
		res.Product = &product
		return res, nil
	}
}
