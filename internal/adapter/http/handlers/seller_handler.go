package handlers

import (
	"net/http"

	"campus_trade/internal/adapter/http/dto/request"
	"campus_trade/internal/adapter/http/dto/response"
	"campus_trade/internal/usecase"
	"campus_trade/pkg"

	"github.com/gin-gonic/gin"
)

// SellerHandler handles seller registration and lookup.

type SellerHandler struct {
	usecase usecase.ISellerUseCase
}

func NewSellerHandler(uc usecase.ISellerUseCase) *SellerHandler {
	return &SellerHandler{usecase: uc}
}

func (h *SellerHandler) RegisterSeller(c *gin.Context) {
	var payload request.RegisterSellerRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_SELLER_INPUT", "Invalid seller payload", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	created, err := h.usecase.Register(c.Request.Context(), payload.Name, payload.Email, payload.School)
	if err != nil {
		appErr := mapSellerError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromSeller(created))
}

func (h *SellerHandler) GetSellerByID(c *gin.Context) {
	id := c.Param("id")

	s, err := h.usecase.GetByID(c.Request.Context(), id)
	if err != nil {
		appErr := mapSellerError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromSeller(s))
}
