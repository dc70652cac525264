package main

import (
	"context"
	"fmt"
	"log"
	"myMiloStore/app/echo-server/router"
	"myMiloStore/business/orders"
	"myMiloStore/business/product"
	userService "myMiloStore/business/user"
	"myMiloStore/internal/middleware"
	psqlRepo "myMiloStore/internal/repository/postgres"
	"myMiloStore/internal/rest"
	"myMiloStore/pkg/config"
	"myMiloStore/pkg/database"
	"myMiloStore/pkg/logger"
	"myMiloStore/pkg/metrics"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger.Init(cfg.App.Environment)
	logger.Info("Starting MiloStore", "version", cfg.App.Version)

	db, err := database.InitPostgres(cfg)
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}

	logger.Info("Database connected successfully")

	metrics.Init()

	// Init validate
	validate := validator.New()

	// Init repo
	userRepo := psqlRepo.NewUserRepository(db)
	ordersRepo := psqlRepo.NewOrdersRepository(db)
	productsRepo := psqlRepo.NewProductRepository(db)

	// Init service
	usersService := userService.NewUserService(userRepo, validate)
	productService := product.NewProductService(productsRepo)
	ordersService := orders.NewOrdersService(ordersRepo, productsRepo, userRepo, cfg.Orders)

	// Seed the example catalog on first startup
	seedCtx, seedCancel := context.WithTimeout(context.Background(), 10*time.Second)
	if err := productService.EnsureSeeded(seedCtx); err != nil {
		seedCancel()
		logger.Fatal("Failed to seed catalog", "error", err)
	}
	seedCancel()

	// Init handler
	userHandler := rest.NewUserHandler(usersService)
	productHandler := rest.NewProductHandler(productService)
	ordersHandler := rest.NewOrdersHandler(ordersService)

	// Init echo
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// HTTP error handler
	e.HTTPErrorHandler = middleware.ErrorHandler

	// Global middleware
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestIDWithConfig(echomiddleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: []string{"http://localhost:3000", "http://localhost:8080"},
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept},
	}))

	// Static storefront assets
	e.Static("/", cfg.Server.StaticDir)

	// Metrics endpoint
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	// Setup routes
	api := e.Group("/api")
	router.SetupUserRoutes(api, userHandler)
	router.SetupProductRoutes(api, productHandler)
	router.SetOrdersRoutes(api, ordersHandler)

	// Goroutine server
	go func() {
		addr := fmt.Sprintf(":%s", cfg.Server.Port)
		logger.Info("Server starting", "address", addr)
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server", "error", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Shutdown server
	if err := e.Shutdown(ctx); err != nil {
		logger.Error("Server shutdown error", "error", err)
	}

	if err := database.ClosePostgres(db); err != nil {
		logger.Error("Database close error", "error", err)
	}

	logger.Info("Server stopped")
}
