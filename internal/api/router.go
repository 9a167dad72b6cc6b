package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/offmarket/listing-api/internal/api/handler"
	"github.com/offmarket/listing-api/internal/api/middleware"
	"github.com/offmarket/listing-api/internal/core/domain"
	"github.com/offmarket/listing-api/internal/core/ports"
)

// Deps carries the wired services the router exposes over HTTP. Services are
// constructed in main so the alert dispatcher can sit between the property
// and alert services.
type Deps struct {
	DB        *mongo.Database
	Redis     *redis.Client
	JWTSecret string
	Log       zerolog.Logger

	Properties ports.PropertyService
	Auth       ports.AuthService
	Alerts     ports.AlertService
	Membership ports.MembershipService
	Profiles   ports.ProfileService
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("offmarket"))

	// --- Handlers ---
	propertyHandler := handler.NewPropertyHandler(deps.Properties)
	authHandler := handler.NewAuthHandler(deps.Auth)
	alertHandler := handler.NewAlertHandler(deps.Alerts)
	membershipHandler := handler.NewMembershipHandler(deps.Membership)
	profileHandler := handler.NewProfileHandler(deps.Profiles)

	requireAuth := middleware.Auth(deps.JWTSecret)
	optionalAuth := middleware.OptionalAuth(deps.JWTSecret)
	adminOnly := middleware.RBAC(domain.RoleAdmin)
	memberOrAdmin := middleware.RBAC(domain.RoleMember, domain.RoleAdmin)

	v1 := e.Group("/v1")

	// --- Catalogue (public, contact gated by optional auth) ---
	v1.GET("/properties", propertyHandler.List, optionalAuth)
	v1.GET("/properties/:id", propertyHandler.Get, optionalAuth)
	v1.POST("/properties/:id/inquiries", propertyHandler.Inquire, requireAuth, memberOrAdmin)

	// --- Auth ---
	v1.POST("/auth/register", authHandler.Register)
	v1.POST("/auth/login", authHandler.Login)
	v1.GET("/auth/me", authHandler.Me, requireAuth)

	// --- Membership (public form) ---
	v1.POST("/membership/applications", membershipHandler.Submit)

	// --- Alerts (members) ---
	alerts := v1.Group("/alerts", requireAuth, memberOrAdmin)
	alerts.POST("", alertHandler.Create)
	alerts.GET("", alertHandler.List)
	alerts.DELETE("/:id", alertHandler.Delete)

	// --- Back office (admins) ---
	admin := v1.Group("/admin", requireAuth, adminOnly)
	admin.POST("/properties", propertyHandler.Create)
	admin.PATCH("/properties/:id", propertyHandler.Update)
	admin.DELETE("/properties/:id", propertyHandler.Delete)
	admin.GET("/applications", membershipHandler.List)
	admin.PUT("/applications/:id/review", membershipHandler.Review)
	admin.DELETE("/applications/:id", membershipHandler.Delete)
	admin.GET("/profiles", profileHandler.List)
	admin.PATCH("/profiles/:id", profileHandler.Update)
	admin.DELETE("/profiles/:id", profileHandler.Delete)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(deps.DB, deps.Redis)

	e.GET("/health", healthHandler.Liveness)           // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness) // readiness – are dependencies up?

	// --- Operational endpoints ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
