package request

type RegisterSellerRequest struct {
	Name   string `json:"name" binding:"required"`
	Email  string `json:"email" binding:"required,email"`
	School string `json:"school" binding:"required"`
}
