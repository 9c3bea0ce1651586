package main

import (
	"fmt"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/avikravi/card-inventory-app/internal/config"
	"github.com/avikravi/card-inventory-app/internal/database"
	"github.com/avikravi/card-inventory-app/internal/handlers"
	"github.com/avikravi/card-inventory-app/internal/logger"
	"github.com/avikravi/card-inventory-app/internal/middleware"
	"github.com/avikravi/card-inventory-app/internal/services"
	"github.com/avikravi/card-inventory-app/internal/validator"

	_ "github.com/avikravi/card-inventory-app/internal/docs" // Import swagger docs
)

// @title           Card Vault API
// @version         1.0
// @description     Inventory and sale-ledger service for collectible card vaults: asset intake, sale recording, and realized-gain accounting.

// @host      localhost:8080
// @BasePath  /

func main() {
	// Initialize logger (use ENV var if available, default to development)
	logger.Init(os.Getenv("ENV"))
	defer logger.Sync()

	if err := run(); err != nil {
		logger.Get().Fatalf("Fatal error: %v", err)
	}
}

func run() error {
	log := logger.Get()

	// Load configuration
	appConfig, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Initialize database configuration
	dbConfig, err := database.NewConfig()
	if err != nil {
		return fmt.Errorf("failed to load database configuration: %w", err)
	}

	// Create database manager
	dbManager, err := database.NewManager(dbConfig)
	if err != nil {
		return fmt.Errorf("failed to create database manager: %w", err)
	}
	defer func() {
		if closeErr := dbManager.Close(); closeErr != nil {
			log.Warnf("failed to close database: %v", closeErr)
		}
	}()

	// Run migrations
	if err := dbManager.Migrate(); err != nil {
		return fmt.Errorf("failed to run database migrations: %w", err)
	}

	// Register custom request validators
	validator.Register()

	// Initialize services
	db := dbManager.DB()
	assetService := services.NewAssetService(db)
	saleService := services.NewSaleService(db)
	reportService := services.NewReportService(db)
	auditService := services.NewAuditService(db)

	// Initialize handlers
	assetHandler := handlers.NewAssetHandler(assetService, saleService, auditService)
	reportHandler := handlers.NewReportHandler(reportService)

	// Initialize Gin router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogging())
	router.Use(middleware.ErrorHandler())

	// CORS middleware
	router.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, X-Request-ID")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Asset routes
	router.GET("/assets", assetHandler.ListAssets)
	router.POST("/assets", assetHandler.CreateAsset)
	router.PATCH("/assets/:asset_id", assetHandler.UpdateAsset)
	router.PUT("/assets/:asset_id", assetHandler.RecordSale)

	// Reporting routes
	router.GET("/reports/summary", reportHandler.GetSummary)
	router.GET("/ledger", reportHandler.ListSales)

	log.Infof("Starting card vault server on port %s", appConfig.Port)
	log.Infof("Swagger documentation available at http://localhost:%s/swagger/index.html", appConfig.Port)
	return router.Run(":" + appConfig.Port)
}
