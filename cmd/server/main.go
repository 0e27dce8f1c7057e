package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"

	"foodadmin/docs"
	"foodadmin/internal/auth"
	"foodadmin/internal/cache"
	"foodadmin/internal/config"
	"foodadmin/internal/handler"
	"foodadmin/internal/logging"
	"foodadmin/internal/router"
	"foodadmin/internal/service"
	"foodadmin/internal/store"
	"foodadmin/internal/telemetry"
)

const shutdownTimeout = 10 * time.Second

// @title Food Admin Dashboard API
// @version 1.0
// @description Admin dashboard API for a food-ordering platform: aggregate counts, activity log, restaurant management and JWT authentication.
// @host localhost:8080
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	logging.Setup(os.Stdout, cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := telemetry.Setup(ctx, "foodadmin", cfg.OTelURL)
	if err != nil {
		log.Fatalf("telemetry init: %v", err)
	}

	repos, closeStore, err := store.Open(ctx, cfg)
	if err != nil {
		log.Fatalf("store init: %v", err)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	if err := cacheClient.Ping(ctx); err != nil {
		slog.Warn("redis unavailable, continuing without cache", "addr", cfg.RedisAddr, "error", err)
	}

	// Initialize auth components
	jwtService := auth.NewJWTService(cfg.JWTSecret)
	tokenStore := auth.NewTokenStore(cacheClient)

	// Initialize services
	activity := service.NewActivityLogger(repos.Logs)
	aggregation := service.NewAggregationService(repos, cfg.AggregationConcurrency)
	dashboard := service.NewDashboardService(aggregation, repos.Restaurants)
	restaurants := service.NewRestaurantService(repos, activity, cacheClient, cfg.AggregationConcurrency)
	authService := service.NewAuthService(repos.Admins, jwtService, tokenStore)
	seedService := service.NewSeedService(repos, restaurants, authService, activity)

	e := echo.New()
	e.HideBanner = true
	router.Register(e, cfg, router.Handlers{
		Auth:        handler.NewAuthHandler(authService),
		Dashboard:   handler.NewDashboardHandler(dashboard, aggregation),
		Restaurants: handler.NewRestaurantHandler(restaurants, dashboard),
		Seed:        handler.NewSeedHandler(seedService),
	}, jwtService, tokenStore)

	if cfg.SwaggerHost != "" {
		docs.SwaggerInfo.Host = strings.TrimPrefix(strings.TrimPrefix(cfg.SwaggerHost, "https://"), "http://")
	}
	slog.Info("swagger documentation available",
		"url", "http://"+docs.SwaggerInfo.Host+"/swagger/index.html",
		"project", cfg.Store.ProjectID,
	)

	go func() {
		addr := ":" + cfg.ServerPort
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server start: %v", err)
		}
	}()

	<-ctx.Done()
	slog.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		slog.Error("http shutdown", "error", err)
	}
	if err := cacheClient.Close(); err != nil {
		slog.Error("redis close", "error", err)
	}
	if err := closeStore(); err != nil {
		slog.Error("store close", "error", err)
	}
	if err := shutdownTracing(shutdownCtx); err != nil {
		slog.Error("telemetry shutdown", "error", err)
	}
}
