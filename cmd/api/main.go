package main

import (
	"fmt"
	"net/http"
	"os"

	"penny/internal/config"
	"penny/internal/database"
	"penny/internal/handlers"
	"penny/internal/logger"
	"penny/internal/middleware"
	"penny/internal/services"
	"penny/internal/taxonomy"
	"penny/internal/validator"

	"github.com/gin-gonic/gin"
)

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

	// Run migrations
	if err := dbManager.RunMigrations(); err != nil {
		return fmt.Errorf("failed to run database migrations: %w", err)
	}

	// Register binding validators
	validator.Register()

	// The category catalog is static; one taxonomy serves all requests.
	tax := taxonomy.Default()

	// Initialize services
	db := dbManager.DB()
	forecastService := services.NewForecastService(db, tax)

	// Initialize handlers
	categoryHandler := handlers.NewCategoryHandler(tax)
	forecastHandler := handlers.NewForecastHandler(forecastService)
	diffHandler := handlers.NewDiffHandler()

	// Initialize Gin router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogging())
	router.Use(middleware.ErrorHandler())

	// CORS middleware
	router.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})

	// Health check endpoint
	router.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// API v1 group
	v1 := router.Group("/api/v1")

	// Category routes (catalog is not user-scoped)
	categories := v1.Group("/categories")
	categories.GET("", categoryHandler.GetCategories)
	categories.GET("/:id", categoryHandler.GetCategory)
	categories.GET("/:id/expansions", categoryHandler.GetExpansions)

	// Classification diff scoring
	v1.POST("/categorization/diff", diffHandler.ScoreDiff)

	// Protected routes
	protected := v1.Group("/")
	protected.Use(middleware.AuthMiddleware())

	// Forecast routes
	forecasts := protected.Group("/forecasts")
	forecasts.POST("", forecastHandler.UpsertForecast)
	forecasts.GET("", forecastHandler.GetForecasts)
	forecasts.GET("/consolidated", forecastHandler.GetConsolidatedForecasts)

	// Pipeline routes, authenticated by shared API key
	pipeline := v1.Group("/pipeline")
	pipeline.Use(middleware.PipelineAuthMiddleware(appConfig.PipelineAPIKey))
	pipeline.POST("/forecasts", forecastHandler.PipelineUpsertForecasts)

	log.Infof("Starting Penny forecast server on port %s", appConfig.Port)
	return router.Run(":" + appConfig.Port)
}
