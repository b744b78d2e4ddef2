package interfaces

import (
	"context"
	"errors"

	"campus_trade/internal/domain/entities"
)

// ErrDuplicateReference is returned by Create when the store already holds a
// transaction with the same reference. The store enforces this; callers retry
// once with a freshly generated reference.
var ErrDuplicateReference = errors.New("duplicate transaction reference")

// ITransactionRepository abstracts DynamoDB persistence for Transaction.
//
// UpdateStatusFromPending is the conditional write at the heart of the
// reconcile flow: it only transitions a transaction that is still Pending.
// When the condition fails (already terminal, or absent) it returns a
// zero-value Transaction and no error; the caller re-fetches and decides.

type ITransactionRepository interface {
	Create(ctx context.Context, t entities.Transaction) (entities.Transaction, error)
	GetByReference(ctx context.Context, reference string) (entities.Transaction, error)
	UpdateStatusFromPending(ctx context.Context, reference string, status entities.TransactionStatus, used bool) (entities.Transaction, error)
	ListByProductID(ctx context.Context, productID string) ([]entities.Transaction, error)
}
