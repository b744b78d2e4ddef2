package response

import (
	"time"

	"campus_trade/internal/domain/entities"
	"campus_trade/internal/usecase"
)

type InitializePaymentResponse struct {
	Reference   string `json:"reference"`
	CheckoutURL string `json:"checkout_url"`
	RedirectURL string `json:"redirect_url"`
}

func FromInitiateResult(r usecase.InitiateResult) InitializePaymentResponse {
	return InitializePaymentResponse{
		Reference:   r.Reference,
		CheckoutURL: r.CheckoutURL,
		RedirectURL: r.RedirectURL,
	}
}

type TransactionResponse struct {
	ID        string    `json:"id"`
	Reference string    `json:"reference"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Amount    float64   `json:"amount"`
	Status    string    `json:"status"`
	Purpose   string    `json:"purpose"`
	Used      bool      `json:"used"`
	ProductID string    `json:"product_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func FromTransaction(t entities.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:        t.ID,
		Reference: t.Reference,
		Name:      t.Name,
		Email:     t.Email,
		Amount:    t.Amount,
		Status:    string(t.Status),
		Purpose:   t.Purpose,
		Used:      t.Used,
		ProductID: t.ProductID,
		CreatedAt: t.CreatedAt,
		UpdatedAt: t.UpdatedAt,
	}
}

// VerifyPaymentResponse reports the reconciled state of a charge. Product is
// present only when the workflow touched or inspected the listing.

type VerifyPaymentResponse struct {
	Status      string              `json:"status"`
	Transaction TransactionResponse `json:"transaction"`
	Product     *ProductResponse    `json:"product,omitempty"`
}

func FromReconcileResult(r usecase.ReconcileResult) VerifyPaymentResponse {
	resp := VerifyPaymentResponse{
		Status:      string(r.Status),
		Transaction: FromTransaction(r.Transaction),
	}
	if r.Product != nil {
		p := FromProduct(*r.Product)
		resp.Product = &p
	}
	return resp
}
