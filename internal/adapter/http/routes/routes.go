package routes

import (
	"log"
	"strconv"

	_ "campus_trade/docs" // swag-generated OpenAPI document
	"campus_trade/internal/adapter/http/handlers"
	"campus_trade/internal/adapter/persistence/repository"
	"campus_trade/internal/config"
	"campus_trade/internal/infrastructure/database"
	"campus_trade/internal/infrastructure/payments"
	"campus_trade/internal/usecase"
	"campus_trade/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

// Run will start the server
func Run() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes(cfg)

	if err := router.Run(":" + strconv.Itoa(cfg.Port)); err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes(cfg config.AppConfig) {
	ddb := database.ConnectDynamoDB()

	productRepo := repository.NewProductDynamoRepository(ddb)
	transactionRepo := repository.NewTransactionDynamoRepository(ddb)
	sellerRepo := repository.NewSellerDynamoRepository(ddb)
	categoryRepo := repository.NewCategoryDynamoRepository(ddb)

	gateway := buildPaymentGateway(cfg)

	transactionUseCase := usecase.NewTransactionUseCase(transactionRepo)
	approvalUseCase := usecase.NewListingApprovalUseCase(productRepo, transactionUseCase, gateway, usecase.ApprovalConfig{
		FeeRatePercent: cfg.FeeRatePercent,
		Currency:       cfg.Currency,
		RedirectURL:    cfg.RedirectURL,
	})
	productUseCase := usecase.NewProductUseCase(productRepo, sellerRepo, categoryRepo)
	categoryUseCase := usecase.NewCategoryUseCase(categoryRepo)
	sellerUseCase := usecase.NewSellerUseCase(sellerRepo)

	paymentHandler := handlers.NewPaymentHandler(approvalUseCase)
	productHandler := handlers.NewProductHandler(productUseCase)
	categoryHandler := handlers.NewCategoryHandler(categoryUseCase)
	sellerHandler := handlers.NewSellerHandler(sellerUseCase)
	adminHandler := handlers.NewAdminHandler(productUseCase, sellerUseCase)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addMarketplaceRoutes(v1, productHandler, categoryHandler, sellerHandler, paymentHandler, adminHandler)
}

func buildPaymentGateway(cfg config.AppConfig) interfaces.IPaymentGateway {
	if cfg.PaymentProvider == "mercadopago" {
		mpGateway, err := payments.NewMercadoPagoGateway(cfg.MercadoPagoAccessToken)
		if err != nil {
			log.Printf("Mercado Pago gateway not configured: %v", err)
			return nil
		}
		return mpGateway
	}

	koraGateway, err := payments.NewKorapayGateway(cfg.GatewayBaseURL, cfg.GatewaySecretKey, cfg.RequestTimeout())
	if err != nil {
		log.Printf("Korapay gateway not configured: %v", err)
		return nil
	}
	return koraGateway
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
