package handlers

import (
	"errors"
	"log"
	"net/http"

	"campus_trade/internal/adapter/http/dto/request"
	"campus_trade/internal/adapter/http/dto/response"
	"campus_trade/internal/domain/entities"
	"campus_trade/internal/usecase"
	"campus_trade/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidProductPayload = pkg.NewDomainErrorSimple("INVALID_PRODUCT_INPUT", "Invalid product payload", http.StatusBadRequest)

// ProductHandler handles listing endpoints.

type ProductHandler struct {
	usecase usecase.IProductUseCase
}

func NewProductHandler(uc usecase.IProductUseCase) *ProductHandler {
	return &ProductHandler{usecase: uc}
}

// CreateProduct posts a new listing under the category/subcategory in the path.
// The listing starts pending and stays invisible until the posting fee clears.
func (h *ProductHandler) CreateProduct(c *gin.Context) {
	categoryID := c.Param("category_id")
	subCategoryID := c.Param("subcategory_id")

	var payload request.CreateProductRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidProductPayload.HTTPStatus, errInvalidProductPayload.ToHTTPError())
		return
	}

	created, err := h.usecase.CreateListing(c.Request.Context(), usecase.CreateListingInput{
		Name:          payload.Name,
		Description:   payload.Description,
		Price:         payload.Price,
		Condition:     entities.ProductCondition(payload.Condition),
		Media:         payload.Media,
		School:        payload.School,
		SellerID:      payload.SellerID,
		CategoryID:    categoryID,
		SubCategoryID: subCategoryID,
	})
	if err != nil {
		log.Printf("[product][handler] create failed category_id=%s subcategory_id=%s err=%v", categoryID, subCategoryID, err)
		appErr := mapProductError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[product][handler] create success product_id=%s", created.ID)

	c.JSON(http.StatusCreated, response.FromProduct(created))
}

func (h *ProductHandler) GetProductByID(c *gin.Context) {
	id := c.Param("id")

	p, err := h.usecase.GetByID(c.Request.Context(), id)
	if err != nil {
		appErr := mapProductError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromProduct(p))
}

func (h *ProductHandler) ListProducts(c *gin.Context) {
	products, err := h.usecase.List(c.Request.Context())
	if err != nil {
		appErr := mapProductError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromProducts(products))
}

// ListSellerProducts returns the seller's approved listings.
func (h *ProductHandler) ListSellerProducts(c *gin.Context) {
	sellerID := c.Param("seller_id")

	products, err := h.usecase.ListApprovedBySellerID(c.Request.Context(), sellerID)
	if err != nil {
		appErr := mapProductError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromProducts(products))
}

func mapProductError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrProductNotFound):
		return pkg.NewDomainErrorSimple("PRODUCT_NOT_FOUND", "Product not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrCategoryNotFound):
		return pkg.NewDomainErrorSimple("CATEGORY_NOT_FOUND", "Category not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrSubcategoryNotFound):
		return pkg.NewDomainErrorSimple("SUBCATEGORY_NOT_FOUND", "Sub category not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrSellerNotFound):
		return pkg.NewDomainErrorSimple("SELLER_NOT_FOUND", "Seller not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrSellerNotVerified):
		return pkg.NewDomainErrorSimple("SELLER_NOT_VERIFIED", "Please complete your KYC before proceeding", http.StatusForbidden)
	case errors.Is(err, usecase.ErrInvalidProductInput), errors.Is(err, usecase.ErrInvalidAmount):
		return errInvalidProductPayload
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
