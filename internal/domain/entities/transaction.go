package entities

import "time"

// TransactionStatus is the three-state payment lifecycle.
//
// Pending -> Success or Pending -> Failed, enforced with conditional writes.
// A Failed transaction may be superseded by a fresh Pending one (new
// reference) for the same product; a Success transaction is final.

type TransactionStatus string

const (
	TransactionStatusPending TransactionStatus = "Pending"
	TransactionStatusSuccess TransactionStatus = "Success"
	TransactionStatusFailed  TransactionStatus = "Failed"
)

// TransactionPurposePostFee is the only purpose the approval workflow issues.
const TransactionPurposePostFee = "post_fee"

// Transaction records one posting-fee payment attempt.
//
// Reference is the externally visible idempotency key correlating this record
// with the gateway charge. It doubles as the DynamoDB partition key so the
// store itself enforces the uniqueness constraint.
//
// Storage model (DynamoDB):
//   - PK: reference
//   - GSI1 (product_id-index): product_id
//
// Used flips to true only on a confirmed success and never back.

type Transaction struct {
	ID        string            `json:"id"`
	Reference string            `json:"reference"`
	Name      string            `json:"name"`
	Email     string            `json:"email"`
	Amount    float64           `json:"amount"`
	Status    TransactionStatus `json:"status"`
	Purpose   string            `json:"purpose"`
	Used      bool              `json:"used"`
	ProductID string            `json:"product_id"`
	CreatedAt time.Time         `json:"created_at"`
	UpdatedAt time.Time         `json:"updated_at"`
}

// Terminal reports whether the transaction already reached a final status.
func (t Transaction) Terminal() bool {
	return t.Status == TransactionStatusSuccess || t.Status == TransactionStatusFailed
}
