package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "github.com/reliefworks/donation-system/docs"
	"github.com/reliefworks/donation-system/internal/api/handler"
	"github.com/reliefworks/donation-system/internal/api/middleware"
	"github.com/reliefworks/donation-system/internal/core/service"
	"github.com/reliefworks/donation-system/internal/infrastructure/db/postgres"
	"github.com/reliefworks/donation-system/internal/infrastructure/hash"
	"github.com/reliefworks/donation-system/internal/pkg/config"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(store *postgres.Store, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(middleware.RequestLogger(log))
	e.Use(echoprometheus.NewMiddleware("donation"))

	// --- Dependencies ---
	hasher := hash.NewBcryptHasher(cfg.Bcrypt.Cost)

	accountRepo := postgres.NewAccountRepository(store)
	adminRepo := postgres.NewAdminRepository(store)
	pledgerRepo := postgres.NewPledgerRepository(store)
	nonprofitRepo := postgres.NewNonProfitRepository(store)
	fundRepo := postgres.NewFundRepository(store)
	pledgeRepo := postgres.NewPledgeRepository(store)
	withdrawalRepo := postgres.NewWithdrawalRepository(store)

	authService := service.NewAuthService(accountRepo, hasher, log)
	directoryService := service.NewDirectoryService(adminRepo, pledgerRepo, nonprofitRepo, hasher, log)
	fundService := service.NewFundService(fundRepo, log)
	ledgerService := service.NewLedgerService(pledgeRepo, withdrawalRepo, log)

	roleHandler := handler.NewRoleHandler(authService)
	adminHandler := handler.NewAdminHandler(authService, directoryService)
	pledgerHandler := handler.NewPledgerHandler(authService, directoryService)
	nonprofitHandler := handler.NewNonProfitHandler(authService, directoryService)
	fundHandler := handler.NewFundHandler(authService, fundService)
	pledgeHandler := handler.NewPledgeHandler(authService, ledgerService)
	withdrawalHandler := handler.NewWithdrawalHandler(authService, ledgerService)

	// --- Routes ---
	e.GET("/", handler.Greeting)

	g := e.Group("/api")
	g.GET("/role", roleHandler.Get)

	g.GET("/admins", adminHandler.List)
	g.POST("/admins", adminHandler.Create)
	g.GET("/admins/:id", adminHandler.Get)
	g.PUT("/admins/:id", adminHandler.Update)
	g.DELETE("/admins/:id", adminHandler.Delete)

	g.GET("/pledgers", pledgerHandler.List)
	g.POST("/pledgers", pledgerHandler.Create)
	g.GET("/pledgers/:id", pledgerHandler.Get)
	g.PUT("/pledgers/:id", pledgerHandler.Update)
	g.DELETE("/pledgers/:id", pledgerHandler.Delete)

	g.GET("/nonprofits", nonprofitHandler.List)
	g.POST("/nonprofits", nonprofitHandler.Create)
	g.GET("/nonprofits/:id", nonprofitHandler.Get)
	g.PUT("/nonprofits/:id", nonprofitHandler.Update)
	g.DELETE("/nonprofits/:id", nonprofitHandler.Delete)

	g.GET("/funds", fundHandler.List)
	g.POST("/funds", fundHandler.Create)
	g.GET("/funds/:id", fundHandler.Get)
	g.PUT("/funds/:id", fundHandler.Update)
	g.DELETE("/funds/:id", fundHandler.Delete)

	g.GET("/pledges", pledgeHandler.List)
	g.GET("/pledges/:id", pledgeHandler.ListByPledger)
	g.PUT("/pledges/:id", pledgeHandler.Record)

	g.GET("/withdrawals", withdrawalHandler.List)
	g.GET("/withdrawals/:id", withdrawalHandler.ListByNonProfit)
	g.PUT("/withdrawals/:id", withdrawalHandler.Record)

	g.GET("/nonprofitfunds/:id", withdrawalHandler.AccessibleFunds)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(store)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)

	// --- Operational endpoints ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}
