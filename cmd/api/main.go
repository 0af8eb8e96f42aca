package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/rewear-app/backend/internal/api"
	"github.com/rewear-app/backend/internal/api/handlers"
	"github.com/rewear-app/backend/internal/repository"
	"github.com/rewear-app/backend/internal/services"
	"github.com/rewear-app/backend/pkg/config"
	"github.com/rewear-app/backend/pkg/database"
	"github.com/rewear-app/backend/pkg/logger"
)

// @title           ReWear API
// @version         1.0
// @description     Wardrobe bookkeeping and resale marketplace backend

// @host      localhost:8080
// @BasePath  /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	// Load configuration
	cfg := config.MustLoad()

	// Initialize logger
	log, err := logger.Init(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	log.Info("starting rewear backend",
		zap.String("env", cfg.AppEnv),
		zap.String("addr", cfg.HTTPAddr),
	)

	// Connect to database
	ctx := context.Background()
	db, err := database.OpenPostgres(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatal("failed to connect to database", zap.Error(err))
	}
	log.Info("database connected")

	// Repositories
	userRepo := repository.NewUserRepository(db)
	profileRepo := repository.NewProfileRepository(db)
	itemRepo := repository.NewItemRepository(db)
	listingRepo := repository.NewListingRepository(db)
	saleRepo := repository.NewSaleRepository(db)
	taxonomyRepo := repository.NewTaxonomyRepository(db)

	// Services
	secret := []byte(cfg.JWTSecret)
	authSvc := services.NewAuthService(db, userRepo, secret, cfg.AccessTokenTTL, cfg.RefreshTokenTTL)
	profileSvc := services.NewProfileService(profileRepo, userRepo)
	wardrobeSvc := services.NewWardrobeService(itemRepo)
	marketSvc := services.NewMarketService(db, listingRepo, itemRepo)
	statsSvc := services.NewStatsService(itemRepo, listingRepo, saleRepo)

	// Router
	router := api.NewRouter(api.Dependencies{
		HMACSecret:      secret,
		HealthHandler:   handlers.NewHealthHandler(db),
		AuthHandler:     handlers.NewAuthHandler(authSvc, cfg.CookieSecure, cfg.AccessTokenTTL, cfg.RefreshTokenTTL),
		ProfileHandler:  handlers.NewProfileHandler(profileSvc, statsSvc),
		ItemsHandler:    handlers.NewItemsHandler(wardrobeSvc),
		ListingsHandler: handlers.NewListingsHandler(marketSvc),
		TaxonomyHandler: handlers.NewTaxonomyHandler(taxonomyRepo),
	})

	srv := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: router,
	}

	// Start server in goroutine
	errCh := make(chan error, 1)
	go func() {
		log.Info("HTTP server starting", zap.String("addr", cfg.HTTPAddr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	// Graceful shutdown
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		log.Info("shutdown signal received", zap.String("signal", sig.String()))
	case err := <-errCh:
		log.Error("server error", zap.Error(err))
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("server shutdown error", zap.Error(err))
	}
	log.Info("server stopped")
}
