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

	"github.com/fuelsquad/manquants_app/internal/core/services"
	"github.com/fuelsquad/manquants_app/internal/handlers"
	"github.com/fuelsquad/manquants_app/internal/middleware"
	"github.com/fuelsquad/manquants_app/internal/observability/metrics"
	"github.com/fuelsquad/manquants_app/internal/platform/config"
	"github.com/fuelsquad/manquants_app/internal/repositories/database/pgsql"
	"github.com/fuelsquad/manquants_app/internal/storage"
	"github.com/fuelsquad/manquants_app/internal/utils"
	"github.com/fuelsquad/manquants_app/pkg/database"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// @title Manquants Backend API
// @version 1.0
// @description Records fuel deliveries and values reimbursable shortages.

// @host localhost:8080
// @BasePath /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

// @security BearerAuth
func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}
	if err := run(cfg, logger); err != nil {
		logger.Error("Server stopped with error", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func run(cfg *config.Config, logger *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	products, err := config.LoadProducts(cfg.ProductsFile)
	if err != nil {
		return err
	}
	utils.CurrencyLabel = cfg.CurrencyLabel
	metrics.Init()

	dbPool, err := database.NewPgxPool(ctx, cfg.DatabaseURL, logger)
	if err != nil {
		return err
	}
	defer dbPool.Close()
	logger.Info("Database connection pool established.")

	if err := database.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath, logger); err != nil {
		return err
	}

	documents, err := storage.New(ctx, cfg)
	if err != nil {
		return err
	}
	logger.Info("Document storage ready", slog.String("backend", cfg.DocumentStorage))

	repos := pgsql.NewRepositoryProvider(dbPool, documents)
	if err := repos.ReferenceRepo.SyncProducts(ctx, products); err != nil {
		return err
	}
	container := services.NewServiceContainer(cfg, repos, products)
	if cfg.AdminPassword != "" {
		if err := container.User.EnsureAdmin(ctx, cfg.AdminUsername, cfg.AdminPassword); err != nil {
			return err
		}
	}

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSAllowedOrigin,
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	r.Use(middleware.StructuredLoggingMiddleware(logger), middleware.MetricsMiddleware(), gin.Recovery())

	if err := r.SetTrustedProxies(nil); err != nil {
		return err
	}
	if err := handlers.RegisterRoutes(r, cfg, container); err != nil {
		return err
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
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
