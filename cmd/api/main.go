// Off-market listing API server.
//
// Wires the property catalogue (Redis-backed), the member/back-office
// repositories (MongoDB), the alert-matching worker pool, and the HTTP
// surface, then runs until interrupted.
package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/offmarket/listing-api/docs"
	"github.com/offmarket/listing-api/internal/api"
	"github.com/offmarket/listing-api/internal/core/domain"
	"github.com/offmarket/listing-api/internal/core/service"
	"github.com/offmarket/listing-api/internal/infrastructure/config"
	mongodb "github.com/offmarket/listing-api/internal/infrastructure/db/mongo"
	redisdb "github.com/offmarket/listing-api/internal/infrastructure/db/redis"
	"github.com/offmarket/listing-api/internal/infrastructure/notify"
	"github.com/offmarket/listing-api/internal/infrastructure/queue"
	"github.com/offmarket/listing-api/internal/infrastructure/store"
	"github.com/offmarket/listing-api/pkg/debounce"
	"github.com/offmarket/listing-api/pkg/logger"
)

const notifyWindow = 30 * time.Second

// @title           Off-Market Listing API
// @version         1.0
// @description     Private real-estate listing catalogue with member access and a back office.
// @BasePath        /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// --- Data stores ---
	mongoClient, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongodb connection failed")
	}
	defer func() {
		if err := mongoClient.Disconnect(context.Background()); err != nil {
			log.Error().Err(err).Msg("mongodb disconnect failed")
		}
	}()

	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer rdb.Close()

	// --- Repositories ---
	profileRepo := mongodb.NewProfileRepository(db)
	applicationRepo := mongodb.NewApplicationRepository(db)
	alertRepo := mongodb.NewAlertRepository(db)

	for _, idx := range []interface {
		EnsureIndexes(context.Context) error
	}{profileRepo, applicationRepo, alertRepo} {
		if err := idx.EnsureIndexes(ctx); err != nil {
			log.Fatal().Err(err).Msg("index creation failed")
		}
	}

	// --- Property catalogue ---
	catalogue := store.New(
		redisdb.NewSlotPersister(rdb, cfg.Redis.PropertiesKey),
		domain.SeedProperties(),
		log,
	)
	if err := catalogue.Load(ctx); err != nil {
		log.Fatal().Err(err).Msg("catalogue load failed")
	}

	// --- Services and alert pipeline ---
	notifier := notify.NewDebouncedNotifier(debounce.NewGroup(notifyWindow), log)
	defer notifier.Stop()

	alertService := service.NewAlertService(alertRepo, notifier, log)
	dispatcher := queue.NewDispatcher(cfg.AlertWorkers, alertService, log)
	dispatcher.Start(ctx)

	deps := api.Deps{
		DB:         db,
		Redis:      rdb,
		JWTSecret:  cfg.JWTSecret,
		Log:        log,
		Properties: service.NewPropertyService(catalogue, dispatcher, log),
		Auth:       service.NewAuthService(profileRepo, cfg.JWTSecret, 24*time.Hour),
		Alerts:     alertService,
		Membership: service.NewMembershipService(applicationRepo, log),
		Profiles:   service.NewProfileService(profileRepo, log),
	}

	e := api.NewRouter(deps)

	// --- Serve until interrupted ---
	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("server starting")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped unexpectedly")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}
