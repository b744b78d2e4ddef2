package request

// InitializePaymentRequest is the payload for starting a posting-fee charge.
// Email/name identify the payer, who is not necessarily the seller.

type InitializePaymentRequest struct {
	Email string `json:"email" binding:"required,email"`
	Name  string `json:"name" binding:"required"`
}
