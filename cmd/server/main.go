// Command server runs the FootballAgentSL accounts API.
//
// @title        FootballAgentSL Accounts API
// @version      1.0
// @description  Account, profile and club records for a sports agency.
// @BasePath     /
//
//go:generate swag init -g cmd/server/main.go -d ../../ -o ../../docs
package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/footballagentsl/accounts-api/internal/api"
	"github.com/footballagentsl/accounts-api/internal/api/handler"
	"github.com/footballagentsl/accounts-api/internal/core/service"
	mongostore "github.com/footballagentsl/accounts-api/internal/infrastructure/db/mongo"
	"github.com/footballagentsl/accounts-api/internal/infrastructure/db/postgres"
	redisstore "github.com/footballagentsl/accounts-api/internal/infrastructure/db/redis"
	"github.com/footballagentsl/accounts-api/internal/infrastructure/hasher"
	"github.com/footballagentsl/accounts-api/internal/infrastructure/queue"
	"github.com/footballagentsl/accounts-api/internal/pkg/config"
	"github.com/footballagentsl/accounts-api/pkg/logger"
)

const shutdownTimeout = 15 * time.Second

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		bootLog := logger.Init(logger.Options{})
		bootLog.Fatal().Err(err).Msg("failed to load configuration")
	}

	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  cfg.LogPretty,
		Service: "accounts-api",
		Env:     cfg.Env,
	})

	if err := run(ctx, cfg, log); err != nil {
		log.Fatal().Err(err).Msg("server exited with error")
	}
	log.Info().Msg("server stopped")
}

func run(ctx context.Context, cfg *config.Config, log zerolog.Logger) error {
	// --- Relational store ---
	pool, err := postgres.Connect(ctx, postgres.Config{
		URL:      cfg.Postgres.URL,
		MaxConns: cfg.Postgres.MaxConns,
	})
	if err != nil {
		return err
	}
	defer pool.Close()

	if err := postgres.Migrate(ctx, pool); err != nil {
		return err
	}
	roles := postgres.NewRoleRepository(pool)
	if err := roles.Seed(ctx); err != nil {
		return err
	}
	log.Info().Msg("schema ready")

	checks := map[string]handler.HealthCheck{"postgres": pool.Ping}
	var accountOpts []service.AccountOption

	// --- Audit trail (optional) ---
	if cfg.AuditEnabled() {
		client, db, err := mongostore.Connect(ctx, mongostore.Config{URI: cfg.Mongo.URI, Database: cfg.Mongo.Database})
		if err != nil {
			return err
		}
		defer func() { _ = mongostore.Disconnect(client) }()

		if err := mongostore.EnsureIndexes(ctx, db); err != nil {
			log.Warn().Err(err).Msg("audit index not created")
		}

		dispatcher := queue.NewDispatcher(cfg.Audit.Workers, mongostore.NewAuditRepository(db), log)
		dispatcher.Start()
		defer func() {
			stopCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			if err := dispatcher.Stop(stopCtx); err != nil {
				log.Warn().Err(err).Msg("audit queue not fully drained")
			}
		}()

		checks["mongodb"] = func(ctx context.Context) error { return client.Ping(ctx, nil) }
		accountOpts = append(accountOpts, service.WithAuditRecorder(dispatcher))
		log.Info().Str("database", cfg.Mongo.Database).Msg("audit trail enabled")
	}

	// --- Idempotent create (optional) ---
	if cfg.IdempotencyEnabled() {
		rdb, err := redisstore.Connect(ctx, redisstore.Config{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err != nil {
			return err
		}
		defer rdb.Close()

		checks["redis"] = func(ctx context.Context) error { return rdb.Ping(ctx).Err() }
		accountOpts = append(accountOpts, service.WithIdempotencyStore(
			redisstore.NewIdempotencyStore(rdb, cfg.Redis.IdempotencyTTL, cfg.Redis.PendingTTL),
		))
		log.Info().
			Dur("ttl", cfg.Redis.IdempotencyTTL).
			Dur("pending_ttl", cfg.Redis.PendingTTL).
			Msg("idempotency keys enabled")
	}

	// --- Services ---
	passwords := hasher.New(hasher.Config{Cost: cfg.Hash.Cost, MaxConcurrency: cfg.Hash.MaxConcurrency})
	log.Info().Int("cost", passwords.Cost()).Msg("password hasher ready")

	accounts := service.NewAccountService(
		roles,
		postgres.NewAccountRepository(pool),
		passwords,
		log,
		accountOpts...,
	)
	profiles := service.NewProfileService(postgres.NewProfileRepository(pool), log)
	clubs := service.NewClubService(postgres.NewClubRepository(pool), log)

	e := api.NewRouter(api.Dependencies{
		Accounts:       accounts,
		Profiles:       profiles,
		Clubs:          clubs,
		Checks:         checks,
		Logger:         log,
		RequestTimeout: cfg.RequestTimeout,
	})

	// --- Serve until signalled ---
	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("port", cfg.Port).Msg("server listening")
		errCh <- e.Start(":" + cfg.Port)
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case <-ctx.Done():
		log.Info().Msg("shutdown signal received")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return e.Shutdown(shutdownCtx)
}
