package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/vinimompox/products-service/internal/api"
	"github.com/vinimompox/products-service/internal/core/service"
	mongodb "github.com/vinimompox/products-service/internal/infrastructure/db/mongo"
	redisdb "github.com/vinimompox/products-service/internal/infrastructure/db/redis"
	"github.com/vinimompox/products-service/internal/infrastructure/security"
	"github.com/vinimompox/products-service/internal/pkg/config"
	"github.com/vinimompox/products-service/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

// @title           Products Service API
// @version         1.0
// @description     Product catalog backend with username/password accounts and role-based access.
// @host            localhost:8080
// @BasePath        /
// @securityDefinitions.basic BasicAuth
func main() {
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})
	log.Info().Str("env", cfg.Env).Str("port", cfg.Port).Msg("starting products service")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// --- Infrastructure ---
	mongoClient, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongodb connection failed")
	}
	defer func() {
		disconnectCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = mongoClient.Disconnect(disconnectCtx)
	}()
	log.Info().Str("database", cfg.Mongo.Database).Msg("mongodb connected")

	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer func() { _ = rdb.Close() }()
	log.Info().Str("addr", cfg.Redis.Addr).Msg("redis connected")

	// --- Repositories ---
	userRepo := mongodb.NewUserRepository(db)
	roleRepo := mongodb.NewRoleRepository(db)
	productRepo := mongodb.NewProductRepository(db)

	// Unique indexes must exist before the first registration; they are what
	// makes the username check race-free.
	if err := userRepo.EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("creating user indexes failed")
	}
	if err := roleRepo.EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("creating role indexes failed")
	}

	// --- Services ---
	hasher := security.NewBcryptHasher(cfg.BcryptCost)
	catalog := service.NewRoleCatalog(roleRepo, log)
	userService := service.NewUserService(userRepo, catalog, hasher, log)
	productService := service.NewProductService(productRepo, log)
	limiter := redisdb.NewLoginLimiter(rdb)

	// --- Bootstrap roles and demo accounts ---
	if err := service.Bootstrap(ctx, userRepo, catalog, hasher, service.BootstrapConfig{
		AdminPassword: cfg.Bootstrap.AdminPassword,
		UserPassword:  cfg.Bootstrap.UserPassword,
	}, log); err != nil {
		log.Fatal().Err(err).Msg("bootstrap failed")
	}

	// --- HTTP server ---
	e := api.NewRouter(api.Deps{
		Users:      userService,
		Products:   productService,
		Limiter:    limiter,
		DB:         db,
		Redis:      rdb,
		CORSOrigin: cfg.CORSOrigin,
		Log:        log,
	})

	go func() {
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("http server failed")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("http server shutdown failed")
	}
	log.Info().Msg("stopped")
}
