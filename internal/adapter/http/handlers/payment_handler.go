package handlers

import (
	"errors"
	"log"
	"net/http"

	"campus_trade/internal/adapter/http/dto/request"
	"campus_trade/internal/adapter/http/dto/response"
	"campus_trade/internal/usecase"
	"campus_trade/internal/usecase/interfaces"
	"campus_trade/pkg"

	"github.com/gin-gonic/gin"
)

// PaymentHandler handles the posting-fee payment workflow endpoints.

type PaymentHandler struct {
	usecase usecase.IListingApprovalUseCase
}

func NewPaymentHandler(uc usecase.IListingApprovalUseCase) *PaymentHandler {
	return &PaymentHandler{usecase: uc}
}

// InitializePayment opens a gateway checkout for the 5% posting fee of the
// product in the path.
func (h *PaymentHandler) InitializePayment(c *gin.Context) {
	productID := c.Param("product_id")
	log.Printf("[payment][handler] initialize start product_id=%s", productID)

	var payload request.InitializePaymentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		log.Printf("[payment][handler] invalid payload product_id=%s err=%v", productID, err)
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Please provide email and name", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	result, err := h.usecase.Initiate(c.Request.Context(), productID, payload.Email, payload.Name)
	if err != nil {
		log.Printf("[payment][handler] initialize failed product_id=%s err=%v", productID, err)
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[payment][handler] initialize success product_id=%s reference=%s", productID, result.Reference)

	c.JSON(http.StatusOK, response.FromInitiateResult(result))
}

// VerifyPayment polls the gateway for the charge referenced in the query and
// applies the outcome locally.
func (h *PaymentHandler) VerifyPayment(c *gin.Context) {
	reference := c.Query("reference")
	log.Printf("[payment][handler] verify start reference=%s", reference)

	result, err := h.usecase.Reconcile(c.Request.Context(), reference)
	if err != nil {
		if errors.Is(err, usecase.ErrConflictAlreadyRejected) {
			// The payment is recorded but approval is blocked by an explicit
			// admin rejection; the body carries both facts.
			log.Printf("[payment][handler] verify conflict reference=%s", reference)
			c.JSON(http.StatusConflict, response.FromReconcileResult(result))
			return
		}
		log.Printf("[payment][handler] verify failed reference=%s err=%v", reference, err)
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[payment][handler] verify success reference=%s status=%s", reference, result.Status)

	c.JSON(http.StatusOK, response.FromReconcileResult(result))
}

func mapPaymentError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrProductNotFound):
		return pkg.NewDomainErrorSimple("PRODUCT_NOT_FOUND", "Product not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrTransactionNotFound):
		return pkg.NewDomainErrorSimple("TRANSACTION_NOT_FOUND", "Transaction not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrInvalidAmount):
		return pkg.NewDomainErrorSimple("INVALID_AMOUNT", "Product price is invalid", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidPayer):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Please provide email and name", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrAlreadyPaid):
		return pkg.NewDomainErrorSimple("ALREADY_PAID", "Product already has a successful posting-fee payment", http.StatusConflict)
	case errors.Is(err, usecase.ErrConflictAlreadyRejected):
		return pkg.NewDomainErrorSimple("PRODUCT_REJECTED", "Product was rejected by an admin; approval blocked", http.StatusConflict)
	case errors.Is(err, usecase.ErrAlreadyTerminal):
		return pkg.NewDomainErrorSimple("TRANSACTION_ALREADY_TERMINAL", "Transaction already reached a different final status", http.StatusConflict)
	case errors.Is(err, interfaces.ErrDuplicateReference):
		return pkg.NewDomainErrorSimple("DUPLICATE_REFERENCE", "Could not allocate a unique transaction reference", http.StatusConflict)
	case errors.Is(err, usecase.ErrGatewayUnavailable):
		return pkg.NewDomainErrorSimple("GATEWAY_UNAVAILABLE", "Payment gateway unavailable", http.StatusBadGateway)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
