package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/hyunwoopark/podomarket/internal"
	"github.com/hyunwoopark/podomarket/internal/handler/admin"
	"github.com/hyunwoopark/podomarket/internal/handler/storefront"
	"github.com/hyunwoopark/podomarket/internal/middleware"
	"github.com/hyunwoopark/podomarket/internal/notify"
	"github.com/hyunwoopark/podomarket/internal/router"
	"github.com/hyunwoopark/podomarket/internal/routes"
	"github.com/hyunwoopark/podomarket/internal/service"
	"github.com/hyunwoopark/podomarket/internal/storage"
	"github.com/hyunwoopark/podomarket/internal/telemetry"
)

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Load configuration
	cfg, err := internal.NewConfig()
	if err != nil {
		return fmt.Errorf("config initialization failed: %w", err)
	}

	// Configure logger
	logger := internal.NewLogger(os.Stdout, cfg.Env, cfg.LogLevel)

	// Run migrations before opening the key-value store when backed by postgres
	if cfg.Storage.Provider == "postgres" {
		logger.Info("Connecting to database...")
		sqlDB, err := sql.Open("pgx", cfg.Storage.DatabaseURL)
		if err != nil {
			return fmt.Errorf("database connection failed: %w", err)
		}
		if err := sqlDB.Ping(); err != nil {
			sqlDB.Close()
			return fmt.Errorf("database ping failed: %w", err)
		}

		logger.Info("Running database migrations...")
		if err := internal.RunMigrations(sqlDB); err != nil {
			sqlDB.Close()
			return fmt.Errorf("migration failed: %w", err)
		}
		sqlDB.Close()
		logger.Info("Database migrations completed successfully")
	}

	// Initialize state store
	store, err := storage.NewStore(ctx, cfg.Storage)
	if err != nil {
		return fmt.Errorf("failed to initialize state store: %w", err)
	}
	defer store.Close()
	logger.Info("State store initialized", "provider", cfg.Storage.Provider)

	// Notification center
	notifier := notify.NewCenter(cfg.UI.NotificationTTL, logger)
	defer notifier.Close()

	// Initialize services
	catalogService := service.NewCatalogService(ctx, store, cfg.Pricing.MaxStock, notifier, logger)
	cartService := service.NewCartService(ctx, store, catalogService, cfg.Pricing.PercentCouponMinOrder, notifier, logger)
	couponService := service.NewCouponService(ctx, store, cartService.DeselectIfCode, notifier, logger)

	// Metrics
	var (
		httpMetrics     *middleware.Metrics
		businessMetrics *telemetry.BusinessMetrics
	)
	if cfg.Metrics.Enabled {
		httpMetrics = middleware.NewMetrics(cfg.Metrics.Namespace)
		businessMetrics = telemetry.NewBusinessMetrics(cfg.Metrics.Namespace)
	}

	// Search telemetry
	searchTracker := storefront.NewSearchTracker(cfg.UI.SearchDebounce, businessMetrics, logger)
	defer searchTracker.Close()

	// Build route dependencies
	storefrontDeps := routes.StorefrontDeps{
		ProductHandler:      storefront.NewProductHandler(catalogService, cartService, searchTracker),
		CartHandler:         storefront.NewCartHandler(cartService, businessMetrics),
		CouponHandler:       storefront.NewCouponHandler(couponService, cartService, businessMetrics),
		OrderHandler:        storefront.NewOrderHandler(cartService, businessMetrics),
		NotificationHandler: storefront.NewNotificationHandler(notifier),
	}
	adminDeps := routes.AdminDeps{
		ProductHandler: admin.NewProductHandler(catalogService),
		CouponHandler:  admin.NewCouponHandler(couponService),
	}

	// Create router and register routes
	chain := []router.Middleware{
		router.Recovery(logger),
		middleware.RequestID,
	}
	if httpMetrics != nil {
		chain = append(chain, httpMetrics.Middleware)
	}
	chain = append(chain,
		middleware.WithRequestLogger(logger),
		router.Logger(logger),
	)
	r := router.New(chain...)

	if httpMetrics != nil {
		r.Get("/metrics", func(w http.ResponseWriter, req *http.Request) {
			httpMetrics.Handler().ServeHTTP(w, req)
		})
	}

	routes.RegisterStorefrontRoutes(r, storefrontDeps)
	routes.RegisterAdminRoutes(r, adminDeps)

	// Start server
	addr := fmt.Sprintf(":%d", cfg.Port)
	srv := &http.Server{
		Addr:    addr,
		Handler: r,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("Starting server", "address", addr, "env", cfg.Env)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("server failed: %w", err)
	case <-ctx.Done():
	}

	logger.Info("Shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown failed: %w", err)
	}

	return nil
}

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}
