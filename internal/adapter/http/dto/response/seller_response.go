package response

import (
	"time"

	"campus_trade/internal/domain/entities"
)

type SellerResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	School      string    `json:"school"`
	KYCVerified bool      `json:"kyc_verified"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func FromSeller(s entities.Seller) SellerResponse {
	return SellerResponse{
		ID:          s.ID,
		Name:        s.Name,
		Email:       s.Email,
		School:      s.School,
		KYCVerified: s.KYCVerified,
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt,
	}
}
