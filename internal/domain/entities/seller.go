package entities

import "time"

// Seller is a registered student seller.
//
// KYCVerified is flipped by an admin once the seller's documents check out;
// listings cannot be created before that.
//
// Storage model (DynamoDB):
//   - PK: id

type Seller struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	School      string    `json:"school"`
	KYCVerified bool      `json:"kyc_verified"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
