package response

import (
	"time"

	"campus_trade/internal/domain/entities"
)

type CategoryResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

func FromCategory(c entities.Category) CategoryResponse {
	return CategoryResponse{ID: c.ID, Name: c.Name, CreatedAt: c.CreatedAt}
}

func FromCategories(categories []entities.Category) []CategoryResponse {
	out := make([]CategoryResponse, 0, len(categories))
	for _, c := range categories {
		out = append(out, FromCategory(c))
	}
	return out
}

type SubcategoryResponse struct {
	ID         string    `json:"id"`
	CategoryID string    `json:"category_id"`
	Name       string    `json:"name"`
	CreatedAt  time.Time `json:"created_at"`
}

func FromSubcategory(s entities.Subcategory) SubcategoryResponse {
	return SubcategoryResponse{ID: s.ID, CategoryID: s.CategoryID, Name: s.Name, CreatedAt: s.CreatedAt}
}

func FromSubcategories(subs []entities.Subcategory) []SubcategoryResponse {
	out := make([]SubcategoryResponse, 0, len(subs))
	for _, s := range subs {
		out = append(out, FromSubcategory(s))
	}
	return out
}
