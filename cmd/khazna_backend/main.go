package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
	limitermem "github.com/ulule/limiter/v3/drivers/store/memory"

	"github.com/khazna-app/khazna_backend/internal/adapters/advisory"
	portsrepo "github.com/khazna-app/khazna_backend/internal/core/ports/repositories"
	portssvc "github.com/khazna-app/khazna_backend/internal/core/ports/services"
	"github.com/khazna-app/khazna_backend/internal/core/services"
	"github.com/khazna-app/khazna_backend/internal/handlers"
	"github.com/khazna-app/khazna_backend/internal/middleware"
	"github.com/khazna-app/khazna_backend/internal/platform/config"
	"github.com/khazna-app/khazna_backend/internal/platform/seed"
	"github.com/khazna-app/khazna_backend/internal/repositories/memory"
)

// @title Khazna Backend API
// @version 1.0
// @description Financial record-keeping backend: ledger, rates, directory and advisory.

// @host localhost:8080
// @BasePath /api/v1
func main() {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	ctx := context.Background()

	// In-memory stores, seeded with the static rate table and, unless
	// disabled, the demo directory and ledger records.
	ledgerRepo := memory.NewTransactionRepository()
	clientRepo := memory.NewClientRepository()
	userRepo := memory.NewUserRepository()
	rateRepo := memory.NewRateRepository(seed.InitialRates(), time.Now())

	if cfg.SeedDemoData {
		if err := seed.DemoData(ctx, userRepo, clientRepo, ledgerRepo); err != nil {
			logger.Error("Failed to seed demo data", slog.String("error", err.Error()))
			os.Exit(1)
		}
		logger.Info("Demo data seeded")
	}

	// The advisory generator is optional; a missing credential disables the
	// feature rather than failing startup.
	var generator portsrepo.TextGenerator
	if cfg.GeminiAPIKey != "" {
		gemini, err := advisory.NewGeminiGenerator(ctx, cfg.GeminiAPIKey, cfg.AdvisorModel)
		if err != nil {
			logger.Warn("Failed to initialize advisory client, advisory features disabled",
				slog.String("error", err.Error()))
		} else {
			generator = gemini
		}
	}

	serviceContainer := &portssvc.ServiceContainer{
		Ledger:  services.NewLedgerService(ledgerRepo, clientRepo, userRepo, rateRepo, cfg.AppName),
		Client:  services.NewClientService(clientRepo, userRepo),
		User:    services.NewUserService(userRepo),
		Rate:    services.NewRateService(rateRepo, cfg.BaseCurrencyCode),
		Advisor: services.NewAdvisorService(generator, ledgerRepo, cfg.AdvisorTimeout),
	}

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware (logging, recovery, CORS)
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	rate, err := limiter.NewRateFromFormatted(cfg.RateLimit)
	if err != nil {
		logger.Error("Invalid RATE_LIMIT value", slog.String("error", err.Error()))
		os.Exit(1)
	}
	limiterInstance := limiter.New(limitermem.NewStore(), rate)

	handlers.RegisterRoutes(r, cfg, serviceContainer, limiterInstance)

	logger.Info("Server starting",
		slog.String("app", cfg.AppName),
		slog.String("port", cfg.Port),
		slog.Bool("advisory", serviceContainer.Advisor.Enabled()))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("Server failed to run", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
