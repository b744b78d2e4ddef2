package interfaces

import (
	"context"

	"campus_trade/internal/domain/entities"
)

// ISellerRepository abstracts DynamoDB persistence for Seller.

type ISellerRepository interface {
	Create(ctx context.Context, s entities.Seller) (entities.Seller, error)
	GetByID(ctx context.Context, id string) (entities.Seller, error)
	SetKYCVerified(ctx context.Context, id string, verified bool) (entities.Seller, error)
}
