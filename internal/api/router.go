package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	"github.com/eadirect/ea-catalog/internal/api/handler"
	"github.com/eadirect/ea-catalog/internal/api/middleware"
	"github.com/eadirect/ea-catalog/internal/core/domain"
	"github.com/eadirect/ea-catalog/internal/core/ports"
	"github.com/eadirect/ea-catalog/internal/infrastructure/http/handlers"
)

// Dependencies carries everything the router wires into handlers.
type Dependencies struct {
	Suppliers    ports.SupplierService
	Products     ports.ProductService
	BusinessApps ports.BusinessAppService
	ADRs         ports.ADRService
	TechDebt     ports.TechDebtService
	Dashboard    ports.DashboardService
	Users        ports.UserService
	Auth         ports.AuthService
	Activity     ports.ActivityLog
	Idempotency  ports.IdempotencyStore

	// HealthChecks back /health/ready, keyed by dependency name.
	HealthChecks map[string]handlers.Checker

	JWTSecret   string
	CORSOrigins []string
	Log         zerolog.Logger

	// Registry receives the HTTP request metrics. Nil selects the default
	// Prometheus registry.
	Registry *prometheus.Registry
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(d Dependencies) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(d.Log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(requestLogger(d.Log))
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{AllowOrigins: d.CORSOrigins}))

	var registerer prometheus.Registerer = prometheus.DefaultRegisterer
	var gatherer prometheus.Gatherer = prometheus.DefaultGatherer
	if d.Registry != nil {
		registerer, gatherer = d.Registry, d.Registry
	}
	e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Namespace:  "catalog",
		Subsystem:  "http",
		Registerer: registerer,
		Skipper: func(c echo.Context) bool {
			return c.Path() == "/metrics" || c.Path() == "/health" || c.Path() == "/health/ready"
		},
	}))

	// --- Operational endpoints (no auth required) ---
	healthHandler := handlers.NewHealthHandler()
	healthDepsHandler := handlers.NewHealthDependenciesHandler(d.HealthChecks)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{Gatherer: gatherer}))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// --- Auth ---
	authHandler := handler.NewAuthHandler(d.Auth)
	e.POST("/auth/login", authHandler.Login)

	// --- Catalog ---
	v1 := e.Group("/v1", middleware.Auth(d.JWTSecret), middleware.Idempotency(d.Idempotency, d.Log))

	suppliers := handler.NewSupplierHandler(d.Suppliers)
	products := handler.NewProductHandler(d.Products, d.Suppliers)
	v1.GET("/suppliers", suppliers.List)
	v1.POST("/suppliers", suppliers.Create)
	v1.GET("/suppliers/by-name/:name", suppliers.GetByName)
	v1.GET("/suppliers/:id", suppliers.Get)
	v1.PUT("/suppliers/:id", suppliers.Update)
	v1.DELETE("/suppliers/:id", suppliers.Delete)
	v1.GET("/suppliers/:id/products", products.ListBySupplier)

	v1.GET("/products", products.List)
	v1.POST("/products", products.Create)
	v1.GET("/products/:id", products.Get)
	v1.PUT("/products/:id", products.Update)
	v1.DELETE("/products/:id", products.Delete)

	apps := handler.NewBusinessAppHandler(d.BusinessApps, d.Products)
	v1.GET("/business-apps", apps.List)
	v1.POST("/business-apps", apps.Create)
	v1.GET("/business-apps/:id", apps.Get)
	v1.PUT("/business-apps/:id", apps.Update)
	v1.DELETE("/business-apps/:id", apps.Delete)

	adrs := handler.NewADRHandler(d.ADRs)
	debt := handler.NewTechDebtHandler(d.TechDebt)
	v1.GET("/adrs", adrs.List)
	v1.POST("/adrs", adrs.Create)
	v1.GET("/adrs/:id", adrs.Get)
	v1.PUT("/adrs/:id", adrs.Update)
	v1.DELETE("/adrs/:id", adrs.Delete)
	v1.GET("/adrs/:id/tech-debt", debt.ListByADR)

	v1.GET("/tech-debt", debt.List)
	v1.POST("/tech-debt", debt.Create)
	v1.GET("/tech-debt/:id", debt.Get)
	v1.PUT("/tech-debt/:id", debt.Update)
	v1.DELETE("/tech-debt/:id", debt.Delete)

	dashboard := handler.NewDashboardHandler(d.Dashboard, d.Activity)
	v1.GET("/dashboard", dashboard.Stats)
	v1.GET("/activity", dashboard.Activity)

	// --- Users ---
	users := handler.NewUserHandler(d.Users)
	v1.GET("/users/me", users.Me)

	admin := v1.Group("/users", middleware.RBAC(domain.RoleAdmin))
	admin.GET("", users.List)
	admin.POST("", users.Create)
	admin.GET("/:id", users.Get)
	admin.PUT("/:id", users.Update)
	admin.DELETE("/:id", users.Delete)

	return e
}

// requestLogger writes one zerolog line per request.
func requestLogger(log zerolog.Logger) echo.MiddlewareFunc {
	return echomiddleware.RequestLoggerWithConfig(echomiddleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v echomiddleware.RequestLoggerValues) error {
			ev := log.Info()
			if v.Status >= 500 {
				ev = log.Error().Err(v.Error)
			}
			ev.Str("method", v.Method).
				Str("uri", v.URI).
				Int("status", v.Status).
				Dur("latency", v.Latency).
				Str("request_id", v.RequestID).
				Msg("request")
			return nil
		},
	})
}
