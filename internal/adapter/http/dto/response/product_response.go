package response

import (
	"time"

	"campus_trade/internal/domain/entities"
)

type ProductResponse struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	Description     string    `json:"description"`
	Price           float64   `json:"price"`
	Condition       string    `json:"condition"`
	Media           []string  `json:"media"`
	School          string    `json:"school"`
	SellerID        string    `json:"seller_id"`
	SubCategoryID   string    `json:"sub_category_id"`
	SubCategoryName string    `json:"sub_category_name"`
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func FromProduct(p entities.Product) ProductResponse {
	return ProductResponse{
		ID:              p.ID,
		Name:            p.Name,
		Description:     p.Description,
		Price:           p.Price,
		Condition:       string(p.Condition),
		Media:           p.Media,
		School:          p.School,
		SellerID:        p.SellerID,
		SubCategoryID:   p.SubCategoryID,
		SubCategoryName: p.SubCategoryName,
		Status:          string(p.Status),
		CreatedAt:       p.CreatedAt,
		UpdatedAt:       p.UpdatedAt,
	}
}

func FromProducts(products []entities.Product) []ProductResponse {
	out := make([]ProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, FromProduct(p))
	}
	return out
}
