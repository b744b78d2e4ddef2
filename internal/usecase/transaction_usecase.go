package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"campus_trade/internal/domain/entities"
	"campus_trade/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrTransactionNotFound = errors.New("transaction not found")
	ErrAlreadyTerminal     = errors.New("transaction already in a terminal state")
	ErrInvalidPayer        = errors.New("invalid payer name or email")
	ErrInvalidProductID    = errors.New("invalid product id")
)

// ITransactionUseCase manages posting-fee transaction records.
//
// It owns the three-state status machine (Pending -> Success | Failed) and
// the monotonic `used` flag. Status never regresses out of a terminal state;
// the repository's conditional write guarantees that under concurrent calls.

type ITransactionUseCase interface {
	CreatePending(ctx context.Context, name, email string, amount float64, productID string) (entities.Transaction, error)
	MarkSuccess(ctx context.Context, reference string) (entities.Transaction, error)
	MarkFailed(ctx context.Context, reference string) (entities.Transaction, error)
	GetByReference(ctx context.Context, reference string) (entities.Transaction, error)
	HasSuccessfulPostFee(ctx context.Context, productID string) (bool, error)
}

type TransactionUseCase struct {
	repo interfaces.ITransactionRepository
}

var _ ITransactionUseCase = (*TransactionUseCase)(nil)

func NewTransactionUseCase(repo interfaces.ITransactionRepository) *TransactionUseCase {
	return &TransactionUseCase{repo: repo}
}

func (u *TransactionUseCase) CreatePending(ctx context.Context, name, email string, amount float64, productID string) (entities.Transaction, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)
	productID = strings.TrimSpace(productID)
	if name == "" || email == "" {
		return entities.Transaction{}, ErrInvalidPayer
	}
	if productID == "" {
		return entities.Transaction{}, ErrInvalidProductID
	}
	if amount < 0 {
		return entities.Transaction{}, ErrInvalidAmount
	}

	// One internal retry with a fresh reference on a store-reported clash.
	for attempt := 0; attempt < 2; attempt++ {
		reference, err := NewReference()
		if err != nil {
			return entities.Transaction{}, err
		}

		now := time.Now().UTC()
		t := entities.Transaction{
			ID:        uuid.NewString(),
			Reference: reference,
			Name:      name,
			Email:     email,
			Amount:    amount,
			Status:    entities.TransactionStatusPending,
			Purpose:   entities.TransactionPurposePostFee,
			Used:      false,
			ProductID: productID,
			CreatedAt: now,
			UpdatedAt: now,
		}

		created, err := u.repo.Create(ctx, t)
		if errors.Is(err, interfaces.ErrDuplicateReference) {
			log.Printf("[transaction][usecase] duplicate reference, retrying reference=%s attempt=%d", reference, attempt)
			continue
		}
		if err != nil {
			return entities.Transaction{}, err
		}
		return created, nil
	}
	return entities.Transaction{}, interfaces.ErrDuplicateReference
}

func (u *TransactionUseCase) MarkSuccess(ctx context.Context, reference string) (entities.Transaction, error) {
	return u.markTerminal(ctx, reference, entities.TransactionStatusSuccess, true)
}

func (u *TransactionUseCase) MarkFailed(ctx context.Context, reference string) (entities.Transaction, error) {
	return u.markTerminal(ctx, reference, entities.TransactionStatusFailed, false)
}

func (u *TransactionUseCase) markTerminal(ctx context.Context, reference string, status entities.TransactionStatus, used bool) (entities.Transaction, error) {
	reference = strings.TrimSpace(reference)
	if reference == "" {
		return entities.Transaction{}, ErrTransactionNotFound
	}

	updated, err := u.repo.UpdateStatusFromPending(ctx, reference, status, used)
	if err != nil {
		return entities.Transaction{}, err
	}
	if updated.Reference != "" {
		log.Printf("[transaction][usecase] status transition reference=%s status=%s used=%t", reference, status, used)
		return updated, nil
	}

	// Conditional write did not apply: the record is absent or already
	// terminal. Re-confirming the identical terminal state is a no-op.
	current, err := u.repo.GetByReference(ctx, reference)
	if err != nil {
		return entities.Transaction{}, err
	}
	if current.Reference == "" {
		return entities.Transaction{}, ErrTransactionNotFound
	}
	if current.Terminal() && current.Status == status {
		return current, nil
	}
	return current, ErrAlreadyTerminal
}

func (u *TransactionUseCase) GetByReference(ctx context.Context, reference string) (entities.Transaction, error) {
	reference = strings.TrimSpace(reference)
	if reference == "" {
		return entities.Transaction{}, ErrTransactionNotFound
	}

	t, err := u.repo.GetByReference(ctx, reference)
	if err != nil {
		return entities.Transaction{}, err
	}
	if t.Reference == "" {
		return entities.Transaction{}, ErrTransactionNotFound
	}
	return t, nil
}

func (u *TransactionUseCase) HasSuccessfulPostFee(ctx context.Context, productID string) (bool, error) {
	productID = strings.TrimSpace(productID)
	if productID == "" {
		return false, ErrInvalidProductID
	}

	txs, err := u.repo.ListByProductID(ctx, productID)
	if err != nil {
		return false, err
	}
	for _, t := range txs {
		if t.Purpose == entities.TransactionPurposePostFee && t.Status == entities.TransactionStatusSuccess {
			return true, nil
		}
	}
	return false, nil
}
