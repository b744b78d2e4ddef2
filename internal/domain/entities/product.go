package entities

import "time"

// ProductStatus tracks the moderation state of a listing.
//
// A product is created as "pending" and only becomes "approved" after the
// posting fee is confirmed (or through an explicit admin override).
// "not_approved" is an explicit admin rejection and is never overridden by
// a later payment confirmation.

type ProductStatus string

const (
	ProductStatusPending     ProductStatus = "pending"
	ProductStatusApproved    ProductStatus = "approved"
	ProductStatusNotApproved ProductStatus = "not_approved"
)

// ProductCondition is the declared state of the item being sold.

type ProductCondition string

const (
	ProductConditionUsed ProductCondition = "Used"
	ProductConditionNew  ProductCondition = "New"
)

// Product is a seller listing.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (seller_id-index): seller_id

type Product struct {
	ID              string           `json:"id"`
	Name            string           `json:"name"`
	Description     string           `json:"description"`
	Price           float64          `json:"price"`
	Condition       ProductCondition `json:"condition"`
	Media           []string         `json:"media"`
	School          string           `json:"school"`
	SellerID        string           `json:"seller_id"`
	SubCategoryID   string           `json:"sub_category_id"`
	SubCategoryName string           `json:"sub_category_name"`
	Status          ProductStatus    `json:"status"`
	CreatedAt       time.Time        `json:"created_at"`
	UpdatedAt       time.Time        `json:"updated_at"`
}
