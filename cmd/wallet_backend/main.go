package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/SscSPs/stripe_wallet_app/internal/adapters/cache/redisdedup"
	"github.com/SscSPs/stripe_wallet_app/internal/adapters/gateway/stripegw"
	portsrepo "github.com/SscSPs/stripe_wallet_app/internal/core/ports/repositories"
	"github.com/SscSPs/stripe_wallet_app/internal/core/services"
	"github.com/SscSPs/stripe_wallet_app/internal/handlers"
	"github.com/SscSPs/stripe_wallet_app/internal/middleware"
	"github.com/SscSPs/stripe_wallet_app/internal/platform/config"
	"github.com/SscSPs/stripe_wallet_app/internal/repositories/database/pgsql"
	"github.com/SscSPs/stripe_wallet_app/internal/utils"
	"github.com/SscSPs/stripe_wallet_app/pkg/database"
	"github.com/gin-gonic/gin"
)

// @title Stripe Wallet Backend API
// @version 1.0
// @description Wallet backend on Stripe Connect with webhook driven ledger reconciliation.

// @host localhost:8080
// @BasePath /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

// @security BearerAuth
func main() {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	if err := run(logger); err != nil {
		logger.Error("Server exited with error", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func run(logger *slog.Logger) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	dbPool, err := database.NewPgxPool(ctx, cfg.DatabaseURL, cfg.EnableDBCheck)
	if err != nil {
		return err
	}
	defer database.ClosePgxPool(dbPool)
	logger.Info("Database connection pool established")

	logger.Info("Running database migrations...")
	if err := database.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath, logger); err != nil {
		return err
	}

	var parserOpts []stripegw.ParserOption
	if cfg.TransferCreatedSettles {
		parserOpts = append(parserOpts, stripegw.WithTransferCreatedSettles())
	}
	adapters := services.Adapters{
		Gateway: stripegw.NewClient(cfg.StripeSecretKey),
		Events:  stripegw.NewWebhookParser(cfg.StripeWebhookSecret, 0, parserOpts...),
	}
	if deduper, closeRedis := setupDeduper(ctx, cfg, logger); deduper != nil {
		adapters.Deduper = deduper
		defer closeRedis()
	}

	posthogClient := utils.InitializePosthogClient(cfg.PosthogAPIKey, logger)
	defer posthogClient.Close()

	serviceContainer := services.NewServiceContainer(cfg, pgsql.NewRepositoryProvider(dbPool), adapters)

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	// Global middleware (logging, recovery)
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())
	if err := r.SetTrustedProxies(nil); err != nil {
		return err
	}

	if err := handlers.RegisterRoutes(r, cfg, serviceContainer, posthogClient); err != nil {
		return err
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("Server starting", slog.String("port", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// setupDeduper connects to redis when REDIS_URL is set. A failed connection only disables
// de-duplication.
func setupDeduper(ctx context.Context, cfg *config.Config, logger *slog.Logger) (portsrepo.EventDeduper, func()) {
	if cfg.RedisURL == "" {
		logger.Info("REDIS_URL not set, webhook event de-duplication disabled")
		return nil, nil
	}
	client, err := redisdedup.Connect(ctx, cfg.RedisURL)
	if err != nil {
		logger.Warn("Redis unavailable, webhook event de-duplication disabled", slog.String("error", err.Error()))
		return nil, nil
	}
	logger.Info("Connected to Redis for webhook event de-duplication")
	return redisdedup.New(client), func() { _ = client.Close() }
}
