package handlers

import (
	"errors"
	"log"
	"net/http"

	"campus_trade/internal/adapter/http/dto/response"
	"campus_trade/internal/usecase"
	"campus_trade/pkg"

	"github.com/gin-gonic/gin"
)

// AdminHandler handles moderation endpoints: listing approval overrides and
// seller KYC verification.

type AdminHandler struct {
	products usecase.IProductUseCase
	sellers  usecase.ISellerUseCase
}

func NewAdminHandler(products usecase.IProductUseCase, sellers usecase.ISellerUseCase) *AdminHandler {
	return &AdminHandler{products: products, sellers: sellers}
}

// ApproveProduct is the explicit admin override; unlike the payment path it
// may approve a previously rejected listing.
func (h *AdminHandler) ApproveProduct(c *gin.Context) {
	id := c.Param("id")

	p, err := h.products.Approve(c.Request.Context(), id)
	if err != nil {
		appErr := mapProductError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[admin][handler] product approved product_id=%s", id)

	c.JSON(http.StatusOK, response.FromProduct(p))
}

func (h *AdminHandler) RejectProduct(c *gin.Context) {
	id := c.Param("id")

	p, err := h.products.Reject(c.Request.Context(), id)
	if err != nil {
		appErr := mapProductError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[admin][handler] product rejected product_id=%s", id)

	c.JSON(http.StatusOK, response.FromProduct(p))
}

func (h *AdminHandler) VerifySeller(c *gin.Context) {
	id := c.Param("id")

	s, err := h.sellers.VerifyKYC(c.Request.Context(), id)
	if err != nil {
		appErr := mapSellerError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[admin][handler] seller verified seller_id=%s", id)

	c.JSON(http.StatusOK, response.FromSeller(s))
}

func mapSellerError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrSellerNotFound):
		return pkg.NewDomainErrorSimple("SELLER_NOT_FOUND", "Seller not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrInvalidSellerInput):
		return pkg.NewDomainErrorSimple("INVALID_SELLER_INPUT", "Invalid seller payload", http.StatusBadRequest)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
