package request

// CreateProductRequest is the payload for posting a new listing. Category and
// subcategory come from the path; media URIs are uploaded elsewhere and passed
// here by reference.

type CreateProductRequest struct {
	Name        string   `json:"name" binding:"required"`
	Description string   `json:"description" binding:"required"`
	Price       float64  `json:"price" binding:"required,gte=0"`
	Condition   string   `json:"condition" binding:"required,oneof=Used New"`
	Media       []string `json:"media" binding:"required,min=1"`
	School      string   `json:"school" binding:"required"`
	SellerID    string   `json:"seller_id" binding:"required"`
}
