package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	_ "github.com/eadirect/ea-catalog/docs"
	"github.com/eadirect/ea-catalog/internal/api"
	"github.com/eadirect/ea-catalog/internal/api/metrics"
	"github.com/eadirect/ea-catalog/internal/core/service"
	"github.com/eadirect/ea-catalog/internal/infrastructure/config"
	"github.com/eadirect/ea-catalog/internal/infrastructure/db/mongo"
	"github.com/eadirect/ea-catalog/internal/infrastructure/db/postgres"
	"github.com/eadirect/ea-catalog/internal/infrastructure/db/redis"
	"github.com/eadirect/ea-catalog/internal/infrastructure/http/handlers"
	"github.com/eadirect/ea-catalog/internal/infrastructure/queue"
	"github.com/eadirect/ea-catalog/pkg/logger"
)

//	@title			EA Catalog API
//	@version		1.0
//	@description	Enterprise architecture catalog: suppliers, products, business applications, ADRs and technical debt.

//	@BasePath	/

//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				Bearer token. Format: "Bearer {token}"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		panic("failed to load configuration: " + err.Error())
	}

	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  cfg.IsDevelopment(),
		Service: "ea-catalog",
	})

	if err := run(ctx, cfg, log); err != nil {
		log.Fatal().Err(err).Msg("server stopped with error")
	}
}

func run(ctx context.Context, cfg *config.Config, log zerolog.Logger) error {
	log.Info().Str("env", cfg.Env).Str("port", cfg.Port).Msg("starting ea-catalog")

	// --- Postgres (catalog store) ---
	db, err := postgres.Connect(ctx, cfg.PostgresSettings(), log)
	if err != nil {
		return err
	}
	defer func() {
		if err := postgres.Close(db); err != nil {
			log.Error().Err(err).Msg("closing postgres")
		}
	}()
	if err := postgres.Migrate(ctx, db); err != nil {
		return err
	}
	log.Info().Msg("postgres connected and migrated")

	// --- MongoDB (activity log) ---
	mongoClient, mongoDB, err := mongo.Connect(ctx, cfg.MongoSettings())
	if err != nil {
		return err
	}
	defer func() {
		if err := mongo.Disconnect(mongoClient); err != nil {
			log.Error().Err(err).Msg("disconnecting mongodb")
		}
	}()
	activityRepo := mongo.NewActivityRepository(mongoDB)
	if err := activityRepo.EnsureIndexes(ctx); err != nil {
		return err
	}
	activity := queue.NewDispatcher(cfg.Mongo.ActivityWorkers, metrics.NewActivityLog(activityRepo), log)
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		if err := activity.Close(ctx); err != nil {
			log.Error().Err(err).Msg("draining activity queue")
		}
	}()
	log.Info().Str("database", cfg.Mongo.Database).Msg("mongodb connected")

	// --- Redis (idempotency keys) ---
	redisClient, err := redis.Connect(ctx, cfg.RedisSettings())
	if err != nil {
		return err
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			log.Error().Err(err).Msg("closing redis")
		}
	}()
	idempotency := redis.NewIdempotencyStore(redisClient, cfg.Redis.IdempotencyTTL)
	log.Info().Str("addr", cfg.Redis.Addr).Msg("redis connected")

	// --- Repositories & services ---
	tx := postgres.NewTransactor(db)
	resolver := postgres.NewResolver(db)

	suppliers := service.NewSupplierService(postgres.NewSupplierRepository(db), tx, activity, log)
	products := service.NewProductService(postgres.NewProductRepository(db), resolver, tx, activity, log)
	apps := service.NewBusinessAppService(postgres.NewBusinessAppRepository(db), resolver, tx, activity, log)
	adrs := service.NewADRService(postgres.NewADRRepository(db), tx, activity, log)
	debt := service.NewTechDebtService(postgres.NewTechDebtRepository(db), resolver, tx, activity, log)
	dashboard := service.NewDashboardService(postgres.NewDashboardRepository(db), tx)
	users := service.NewUserService(postgres.NewUserRepository(db), tx, log)
	auth := service.NewAuthService(users, cfg.JWTSecret, cfg.TokenTTL)

	if cfg.Admin.Enabled() {
		created, err := users.EnsureAdmin(ctx, cfg.Admin.Email, cfg.Admin.Password, cfg.Admin.Name)
		if err != nil {
			return err
		}
		if created {
			log.Info().Str("email", cfg.Admin.Email).Msg("admin account created")
		}
	}

	e := api.NewRouter(api.Dependencies{
		Suppliers:    suppliers,
		Products:     products,
		BusinessApps: apps,
		ADRs:         adrs,
		TechDebt:     debt,
		Dashboard:    dashboard,
		Users:        users,
		Auth:         auth,
		Activity:     activity,
		Idempotency:  idempotency,
		HealthChecks: map[string]handlers.Checker{
			"postgres": func(ctx context.Context) error { return postgres.Ping(ctx, db) },
			"mongodb":  func(ctx context.Context) error { return mongo.Ping(ctx, mongoDB) },
			"redis":    func(ctx context.Context) error { return redis.Ping(ctx, redisClient) },
		},
		JWTSecret:   cfg.JWTSecret,
		CORSOrigins: cfg.CORSOrigins,
		Log:         log,
	})

	srv := &http.Server{
		Addr:              net.JoinHostPort("", cfg.Port),
		Handler:           e,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", srv.Addr).Msg("http server listening")
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

	log.Info().Msg("shutting down http server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	log.Info().Msg("server exited")
	return nil
}
