package handlers

import (
	"errors"
	"net/http"

	"campus_trade/internal/adapter/http/dto/request"
	"campus_trade/internal/adapter/http/dto/response"
	"campus_trade/internal/usecase"
	"campus_trade/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidCategoryPayload = pkg.NewDomainErrorSimple("INVALID_CATEGORY_INPUT", "Invalid category payload", http.StatusBadRequest)

// CategoryHandler handles category and subcategory endpoints.

type CategoryHandler struct {
	usecase usecase.ICategoryUseCase
}

func NewCategoryHandler(uc usecase.ICategoryUseCase) *CategoryHandler {
	return &CategoryHandler{usecase: uc}
}

func (h *CategoryHandler) CreateCategory(c *gin.Context) {
	var payload request.CreateCategoryRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidCategoryPayload.HTTPStatus, errInvalidCategoryPayload.ToHTTPError())
		return
	}

	created, err := h.usecase.CreateCategory(c.Request.Context(), payload.Name)
	if err != nil {
		appErr := mapCategoryError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromCategory(created))
}

func (h *CategoryHandler) ListCategories(c *gin.Context) {
	categories, err := h.usecase.ListCategories(c.Request.Context())
	if err != nil {
		appErr := mapCategoryError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromCategories(categories))
}

func (h *CategoryHandler) CreateSubcategory(c *gin.Context) {
	categoryID := c.Param("category_id")

	var payload request.CreateSubcategoryRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidCategoryPayload.HTTPStatus, errInvalidCategoryPayload.ToHTTPError())
		return
	}

	created, err := h.usecase.CreateSubcategory(c.Request.Context(), categoryID, payload.Name)
	if err != nil {
		appErr := mapCategoryError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromSubcategory(created))
}

func (h *CategoryHandler) ListSubcategories(c *gin.Context) {
	categoryID := c.Param("category_id")

	subs, err := h.usecase.ListSubcategories(c.Request.Context(), categoryID)
	if err != nil {
		appErr := mapCategoryError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromSubcategories(subs))
}

func mapCategoryError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrCategoryNotFound):
		return pkg.NewDomainErrorSimple("CATEGORY_NOT_FOUND", "Category not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrInvalidCategoryName):
		return errInvalidCategoryPayload
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
