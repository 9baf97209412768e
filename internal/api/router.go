package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"

	"github.com/eventsapp/notify-system/internal/api/handler"
	"github.com/eventsapp/notify-system/internal/api/middleware"
	"github.com/eventsapp/notify-system/internal/core/domain"
	"github.com/eventsapp/notify-system/internal/core/service"
	"github.com/eventsapp/notify-system/internal/infrastructure/config"
	healthhandlers "github.com/eventsapp/notify-system/internal/infrastructure/http/handlers"
	"github.com/eventsapp/notify-system/internal/infrastructure/storage"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(store *storage.Store, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("eventsapp"))

	// --- Dependencies ---
	accountRepo := storage.NewAccountRepository(store)
	notifyRepo := storage.NewNotifyRepository(store)
	sessionRepo := storage.NewSessionRepository(store)

	authService := service.NewAuthService(accountRepo, cfg.Admin.Email, cfg.Admin.Password, cfg.JWTSecret, cfg.TokenTTL, log)
	sessionService := service.NewSessionService(authService, sessionRepo, log)
	notifyService := service.NewNotifyService(notifyRepo, log)

	authHandler := handler.NewAuthHandler(sessionService)
	notifyHandler := handler.NewNotifyHandler(notifyService)
	eventHandler := handler.NewEventHandler()
	clientHandler := handler.NewClientHandler(authService)

	authMW := middleware.Auth(cfg.JWTSecret)

	// --- Auth routes ---
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)
	e.POST("/auth/logout", authHandler.Logout, authMW)
	e.GET("/auth/me", authHandler.Me, authMW)

	// --- Incident catalog (public, hard-coded) ---
	e.GET("/v1/events", eventHandler.List)

	// --- Reports: each role reaches its own slice of the collection ---
	notifys := e.Group("/v1/notifys", authMW)
	notifys.POST("", notifyHandler.Create, middleware.RBAC(domain.RoleClient))
	notifys.GET("", notifyHandler.List)
	notifys.PATCH("/:id/status", notifyHandler.UpdateStatus, middleware.RBAC(domain.RoleAdmin, domain.RoleEvent))

	// --- Admin dashboard ---
	e.GET("/v1/clients", clientHandler.List, authMW, middleware.RBAC(domain.RoleAdmin))

	// --- Health probes and metrics (no auth required) ---
	healthHandler := healthhandlers.NewHealthHandler()
	healthDepsHandler := healthhandlers.NewHealthDependenciesHandler(store)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthDepsHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
