package entities

import "time"

// Category groups subcategories; products hang off subcategories only.
//
// Storage model (DynamoDB):
//   - categories: PK id
//   - subcategories: PK id, GSI1 (category_id-index): category_id

type Category struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

type Subcategory struct {
	ID         string    `json:"id"`
	CategoryID string    `json:"category_id"`
	Name       string    `json:"name"`
	CreatedAt  time.Time `json:"created_at"`
}
