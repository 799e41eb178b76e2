package api

import (
	"net/http"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/vinimompox/products-service/internal/api/handler"
	"github.com/vinimompox/products-service/internal/api/middleware"
	"github.com/vinimompox/products-service/internal/core/ports"

	_ "github.com/vinimompox/products-service/docs"
)

// Deps carries everything the router needs; main builds the services so it
// can run bootstrap against the same instances before serving traffic.
type Deps struct {
	Users    ports.UserService
	Products ports.ProductService
	Limiter  middleware.AttemptLimiter

	DB    *mongo.Database
	Redis *redis.Client

	CORSOrigin string
	Log        zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(d Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(d.Log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: []string{d.CORSOrigin},
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowHeaders: []string{echo.HeaderAuthorization, echo.HeaderContentType},
	}))
	e.Use(echoprometheus.NewMiddleware("products"))

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(d.Users)
	productHandler := handler.NewProductHandler(d.Products)

	// --- Public routes ---
	e.POST("/api/auth/register", authHandler.Register)

	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(d.DB, d.Redis)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?

	// --- Authenticated routes (credentials checked on every request) ---
	authed := e.Group("/api", middleware.BasicAuth(d.Users, d.Limiter))

	authed.GET("/auth/userinfo", authHandler.UserInfo)

	authed.GET("/products", productHandler.List)
	authed.POST("/products", productHandler.Create)
	authed.GET("/products/:id", productHandler.Get)
	authed.PUT("/products/:id", productHandler.Update)
	authed.DELETE("/products/:id", productHandler.Delete, middleware.RequireAuthority("ROLE_ADMIN"))

	return e
}
