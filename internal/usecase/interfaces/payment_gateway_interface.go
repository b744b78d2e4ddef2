package interfaces

import "context"

// ChargeStatus is the gateway-reported state of a charge. Anything the
// provider reports that is not a definitive success or failure maps to
// ChargeStatusPending and leaves local records untouched.

type ChargeStatus string

const (
	ChargeStatusSuccess ChargeStatus = "success"
	ChargeStatusFailed  ChargeStatus = "failed"
	ChargeStatusPending ChargeStatus = "pending"
)

// ChargeRequest opens a hosted checkout for the posting fee. Reference is
// the locally generated idempotency key; the gateway tags the charge with it
// so status can later be polled by reference alone.

type ChargeRequest struct {
	Amount        float64
	Currency      string
	Reference     string
	CustomerName  string
	CustomerEmail string
	RedirectURL   string
}

// Charge is the gateway's checkout handle.

type Charge struct {
	CheckoutURL string
	Reference   string
}

// IPaymentGateway abstracts external payment providers (Korapay, Mercado Pago).
//
// Implementations make exactly one attempt per call; retrying is the
// caller's policy, never the adapter's.

type IPaymentGateway interface {
	InitializeCharge(ctx context.Context, req ChargeRequest) (Charge, error)
	GetChargeStatus(ctx context.Context, reference string) (ChargeStatus, error)
}
