package server

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/roadledger/roadledger-api/internal/constants"
	"github.com/roadledger/roadledger-api/internal/db"
	"github.com/roadledger/roadledger-api/internal/handlers"
	"github.com/roadledger/roadledger-api/internal/logger"
	"github.com/roadledger/roadledger-api/internal/services"
	"go.uber.org/zap"
)

var (
	iftaHandler *handlers.IftaHandler

	dbPool    *pgxpool.Pool
	dbQueries *db.Queries
)

// InitializeHandlers loads configuration, connects the database pool and
// wires every service and handler. It must run before SetupRouter.
func InitializeHandlers() {
	// Load environment variables from .env file for local development
	err := godotenv.Load()
	if err != nil && !os.IsNotExist(err) {
		log.Printf("Warning: Error loading .env file: %v", err) // Use basic log before logger init
	}

	stage := os.Getenv("STAGE")
	if stage == "" {
		stage = constants.LocalEnvironment
		log.Printf("Warning: STAGE environment variable not set, defaulting to '%s'", stage)
	}
	if !isValidStage(stage) {
		log.Fatalf("Invalid STAGE environment variable: '%s'. Must be one of: %s, %s, %s",
			stage, constants.ProdEnvironment, constants.DevEnvironment, constants.LocalEnvironment)
	}

	logger.InitLogger(stage)
	logger.Info("Initializing handlers for stage", zap.String("stage", stage))

	ctx := context.Background()

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		logger.Fatal("DATABASE_URL is required")
	}

	dbPool, err = pgxpool.New(ctx, dsn)
	if err != nil {
		logger.Fatal("Failed to create database pool", zap.Error(err))
	}
	if err := dbPool.Ping(ctx); err != nil {
		logger.Fatal("Failed to ping database", zap.Error(err))
	}
	dbQueries = db.New(dbPool)

	reconciler := services.NewDistanceReconciler(logger.Log)
	rates := services.NewDefaultRateTable()

	importService := services.NewTripImportService(dbQueries, dbPool, reconciler, logger.Log)
	summaryService := services.NewTaxSummaryService(dbQueries, rates, logger.Log)
	tripService := services.NewTripService(dbQueries, dbPool, logger.Log)
	fuelService := services.NewFuelPurchaseService(dbQueries, logger.Log)

	iftaHandler = handlers.NewIftaHandler(importService, summaryService, tripService, fuelService)
}

// SetupRouter builds the gin engine with CORS and every route registered.
func SetupRouter() *gin.Engine {
	if os.Getenv("STAGE") == constants.ProdEnvironment {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(corsMiddleware())

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
		})
	})

	v1 := router.Group("/api/v1")
	{
		ifta := v1.Group("/ifta")
		{
			periods := ifta.Group("/periods/:year/:quarter")
			{
				periods.POST("/import", iftaHandler.ImportShipments)
				periods.GET("/summary", iftaHandler.GetSummary)
				periods.GET("/summary/csv", iftaHandler.GetSummaryCSV)
			}

			trips := ifta.Group("/trips")
			{
				trips.PUT("", iftaHandler.UpsertTrip)
				trips.DELETE("/:trip_id", iftaHandler.DeleteTrip)
			}

			fuel := ifta.Group("/fuel-purchases")
			{
				fuel.PUT("", iftaHandler.UpsertFuelPurchase)
				fuel.DELETE("/:fuel_purchase_id", iftaHandler.DeleteFuelPurchase)
			}
		}
	}

	return router
}

// Run serves the API until SIGINT/SIGTERM, then drains in-flight requests.
func Run() {
	InitializeHandlers()
	defer dbPool.Close()

	router := SetupRouter()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	srv := &http.Server{
		Addr:    ":" + port,
		Handler: router,
	}

	go func() {
		logger.Info("Starting server", zap.String("port", port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Forced server shutdown", zap.Error(err))
	}
	_ = logger.Sync()
}

func isValidStage(stage string) bool {
	switch stage {
	case constants.ProdEnvironment, constants.DevEnvironment, constants.LocalEnvironment, constants.TestEnvironment:
		return true
	}
	return false
}

func corsMiddleware() gin.HandlerFunc {
	corsConfig := cors.DefaultConfig()

	originsEnv := os.Getenv("CORS_ALLOWED_ORIGINS")
	if originsEnv == "" {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = splitAndTrim(originsEnv)
	}

	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization"}
	corsConfig.AllowCredentials = os.Getenv("CORS_ALLOW_CREDENTIALS") == "true"

	return cors.New(corsConfig)
}

func splitAndTrim(s string) []string {
	parts := strings.Split(s, ",")
	for i, p := range parts {
		parts[i] = strings.TrimSpace(p)
	}
	return parts
}
