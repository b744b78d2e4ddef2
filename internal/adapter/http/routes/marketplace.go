package routes

import (
	"campus_trade/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathProducts   = "/products"
	PathCategories = "/categories"
	PathSellers    = "/sellers"
	PathPayments   = "/payments"
	PathAdmin      = "/admin"
)

func addMarketplaceRoutes(
	rg *gin.RouterGroup,
	productHandler *handlers.ProductHandler,
	categoryHandler *handlers.CategoryHandler,
	sellerHandler *handlers.SellerHandler,
	paymentHandler *handlers.PaymentHandler,
	adminHandler *handlers.AdminHandler,
) {
	products := rg.Group(PathProducts)
	{
		products.POST("/:category_id/:subcategory_id", productHandler.CreateProduct)
		products.GET("", productHandler.ListProducts)
		products.GET("/:id", productHandler.GetProductByID)
		products.GET("/seller/:seller_id", productHandler.ListSellerProducts)
	}

	categories := rg.Group(PathCategories)
	{
		categories.POST("", categoryHandler.CreateCategory)
		categories.GET("", categoryHandler.ListCategories)
		categories.POST("/:category_id/subcategories", categoryHandler.CreateSubcategory)
		categories.GET("/:category_id/subcategories", categoryHandler.ListSubcategories)
	}

	sellers := rg.Group(PathSellers)
	{
		sellers.POST("", sellerHandler.RegisterSeller)
		sellers.GET("/:id", sellerHandler.GetSellerByID)
	}

	payments := rg.Group(PathPayments)
	{
		// Posting-fee workflow: initialize a charge, then verify by reference.
		payments.POST("/initialize/:product_id", paymentHandler.InitializePayment)
		payments.GET("/verify", paymentHandler.VerifyPayment)
	}

	admin := rg.Group(PathAdmin)
	{
		admin.PATCH("/products/:id/approve", adminHandler.ApproveProduct)
		admin.PATCH("/products/:id/reject", adminHandler.RejectProduct)
		admin.PATCH("/sellers/:id/verify", adminHandler.VerifySeller)
	}
}
