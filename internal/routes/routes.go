package routes

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/redis/go-redis/v9"

	"github.com/crossrent/crossrent/internal/config"
	"github.com/crossrent/crossrent/internal/contract"
	"github.com/crossrent/crossrent/internal/feedback"
	"github.com/crossrent/crossrent/internal/funding"
	"github.com/crossrent/crossrent/internal/ledger"
	"github.com/crossrent/crossrent/internal/middleware"
	"github.com/crossrent/crossrent/internal/notification"
	"github.com/crossrent/crossrent/internal/transfer"
	"github.com/crossrent/crossrent/internal/wallet"
)

// Deps aggregates shared dependencies required to wire routes.
type Deps struct {
	Cfg    config.Config
	Cache  *redis.Client
	Logger *slog.Logger
}

// Setup configures middlewares and all application routes.
func Setup(app *fiber.App, d Deps) error {
	// Middlewares
	app.Use(recover.New())
	app.Use(middleware.RequestID())
	// Plain text access log: [HH:MM:SS] 200 -  145ms METHOD /path
	app.Use(logger.New(logger.Config{
		Format:     "[${time}] ${status} -  ${latency} ${method} ${path}\n",
		TimeFormat: "15:04:05",
		TimeZone:   "Local",
	}))
	if d.Cache != nil {
		app.Use(middleware.Idempotency(d.Cache, d.Cfg.IdempotencyTTL, d.Logger))
	}

	// Services and handlers
	ledgerBackend := ledger.NewInMemory()
	walletSvc := wallet.NewService(wallet.NewMemoryRepository(), ledgerBackend, d.Cfg.LandlordSeed)
	notifier := notification.NewLoggerNotifier(d.Logger)
	fundingSvc := funding.NewService(walletSvc, ledgerBackend, notifier)
	contractSvc := contract.NewService(walletSvc, ledgerBackend, notifier)
	transferSvc := transfer.NewService(walletSvc, ledgerBackend, nil, notifier)
	feedbackSvc := feedback.NewService()

	walletHandler := wallet.NewHandler(walletSvc)
	fundingHandler := funding.NewHandler(fundingSvc)
	contractHandler := contract.NewHandler(contractSvc)
	transferHandler := transfer.NewHandler(transferSvc)
	feedbackHandler := feedback.NewHandler(feedbackSvc)

	// API routes
	api := app.Group("/api")

	RegisterHealthRoutes(api, d, walletSvc)
	RegisterWalletRoutes(api, walletHandler, fundingHandler)
	RegisterContractRoutes(api, contractHandler)
	RegisterTransferRoutes(api, transferHandler)

	feedbackLimiter := middleware.FeedbackRateLimit(d.Cache, 10)
	RegisterFeedbackRoutes(api, feedbackHandler, feedbackLimiter)

	return nil
}
