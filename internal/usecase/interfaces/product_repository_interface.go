package interfaces

import (
	"context"

	"campus_trade/internal/domain/entities"
)

// IProductRepository abstracts DynamoDB persistence for Product.
//
// UpdateStatusFromPending only flips a product that is still pending; the
// zero-value return on a failed condition lets the approval workflow detect
// an interim admin decision without a second round-trip race.
// UpdateStatus is the unconditional admin override path.

type IProductRepository interface {
	Create(ctx context.Context, p entities.Product) (entities.Product, error)
	GetByID(ctx context.Context, id string) (entities.Product, error)
	List(ctx context.Context) ([]entities.Product, error)
	ListBySellerID(ctx context.Context, sellerID string) ([]entities.Product, error)
	UpdateStatusFromPending(ctx context.Context, id string, status entities.ProductStatus) (entities.Product, error)
	UpdateStatus(ctx context.Context, id string, status entities.ProductStatus) (entities.Product, error)
}
