package routes

import (
	"log"
	"strconv"

	_ "github.com/amaadour/admin-sourcing-launch-sub000/docs" // This will be auto-generated
	"github.com/amaadour/admin-sourcing-launch-sub000/internal/adapter/http/handlers"
	"github.com/amaadour/admin-sourcing-launch-sub000/internal/adapter/persistence/draftstore"
	repository2 "github.com/amaadour/admin-sourcing-launch-sub000/internal/adapter/persistence/repository"
	"github.com/amaadour/admin-sourcing-launch-sub000/internal/infrastructure/cache"
	"github.com/amaadour/admin-sourcing-launch-sub000/internal/infrastructure/database"
	"github.com/amaadour/admin-sourcing-launch-sub000/internal/usecase"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const PORT = 8080

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	err := router.Run(":" + strconv.Itoa(PORT))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	ddb := database.ConnectDynamoDB()
	rdb := cache.ConnectRedis()

	quotationRepo := repository2.NewQuotationDynamoRepository(ddb)
	paymentRepo := repository2.NewPaymentDynamoRepository(ddb)
	shipmentRepo := repository2.NewShipmentDynamoRepository(ddb)
	profileRepo := repository2.NewProfileDynamoRepository(ddb)
	draftStore := draftstore.NewRedisDraftStore(rdb)

	quotationUseCase := usecase.NewQuotationUseCase(quotationRepo, paymentRepo, draftStore)
	paymentUseCase := usecase.NewPaymentUseCase(paymentRepo, quotationRepo)
	shipmentUseCase := usecase.NewShipmentUseCase(shipmentRepo)
	enrichmentUseCase := usecase.NewEnrichmentUseCase(paymentRepo, shipmentRepo, quotationRepo, profileRepo)
	draftUseCase := usecase.NewDraftUseCase(draftStore, quotationRepo)
	wizardUseCase := usecase.NewWizardUseCase(draftStore, quotationUseCase)

	quotationHandler := handlers.NewQuotationHandler(quotationUseCase)
	paymentHandler := handlers.NewPaymentHandler(paymentUseCase, enrichmentUseCase)
	shipmentHandler := handlers.NewShipmentHandler(shipmentUseCase, enrichmentUseCase)
	draftHandler := handlers.NewDraftHandler(draftUseCase)
	wizardHandler := handlers.NewWizardHandler(wizardUseCase)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addSourcingRoutes(v1, quotationHandler, paymentHandler, shipmentHandler, draftHandler, wizardHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
