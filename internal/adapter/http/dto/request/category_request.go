package request

type CreateCategoryRequest struct {
	Name string `json:"name" binding:"required"`
}

type CreateSubcategoryRequest struct {
	Name string `json:"name" binding:"required"`
}
