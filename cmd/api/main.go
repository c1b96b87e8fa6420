package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/multierr"

	"github.com/islandtracker/islandtracker-backend/api/controllers"
	"github.com/islandtracker/islandtracker-backend/api/routes"
	"github.com/islandtracker/islandtracker-backend/internal/ads"
	"github.com/islandtracker/islandtracker-backend/internal/articles"
	"github.com/islandtracker/islandtracker-backend/internal/auth"
	"github.com/islandtracker/islandtracker-backend/internal/islands"
	"github.com/islandtracker/islandtracker-backend/internal/users"
	"github.com/islandtracker/islandtracker-backend/internal/visits"
	"github.com/islandtracker/islandtracker-backend/pkg/config"
	"github.com/islandtracker/islandtracker-backend/pkg/db"
	"github.com/islandtracker/islandtracker-backend/pkg/instance"
	"github.com/islandtracker/islandtracker-backend/pkg/logger"
	"github.com/islandtracker/islandtracker-backend/pkg/metrics"
	"github.com/islandtracker/islandtracker-backend/pkg/migrate"
	"github.com/islandtracker/islandtracker-backend/pkg/redis"
)

const shutdownTimeout = 15 * time.Second

func main() {
	logg := logger.New(logger.Options{ServiceName: "api", Instance: instance.GetID()})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "api",
		Instance:    instance.GetID(),
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
		Console:     cfg.App.ConsoleLogs(),
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, logg); err != nil {
		logg.Error(context.Background(), "api server stopped unexpectedly", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, logg *logger.Logger) (err error) {
	dbClient, err := db.New(ctx, cfg.DB, logg)
	if err != nil {
		return err
	}
	defer func() {
		err = multierr.Append(err, dbClient.Close())
	}()

	if err := migrate.MaybeRun(ctx, cfg, logg, dbClient); err != nil {
		return err
	}

	var (
		cache   controllers.Pinger
		replays redis.ReplayStore
	)
	if cfg.Redis.Enabled() {
		redisClient, redisErr := redis.New(ctx, cfg.Redis, logg)
		if redisErr != nil {
			return redisErr
		}
		defer func() {
			err = multierr.Append(err, redisClient.Close())
		}()
		cache = redisClient
		replays = redisClient.Replays()
	} else {
		logg.Warn(ctx, "redis not configured, idempotent replay disabled")
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	domainMetrics := metrics.NewDomainMetrics(registry)

	conn := dbClient.DB()
	userRepo := users.NewRepository(conn)
	islandRepo := islands.NewRepository(conn)
	visitRepo := visits.NewRepository(conn)

	if cfg.FeatureFlags.SeedIslands {
		seeded, err := islands.SeedSamples(ctx, islandRepo, time.Now().UTC())
		if err != nil {
			return err
		}
		if seeded > 0 {
			logg.Info(logg.WithField(ctx, "count", seeded), "seeded sample islands")
		}
	}

	if cfg.Bootstrap.Enabled() {
		bootstrapper, err := auth.NewAdminBootstrapper(auth.AdminBootstrapParams{DB: dbClient, PasswordConfig: cfg.Password})
		if err != nil {
			return err
		}
		admin, err := bootstrapper.EnsureAdmin(ctx, cfg.Bootstrap)
		if err != nil {
			return err
		}
		logg.Info(logg.WithUserID(ctx, admin.ID), "bootstrap admin ensured")
	}

	authService, err := auth.NewService(auth.ServiceParams{
		UserRepo:       userRepo,
		JWTConfig:      cfg.JWT,
		PasswordConfig: cfg.Password,
		Metrics:        domainMetrics,
	})
	if err != nil {
		return err
	}
	userService, err := users.NewService(userRepo)
	if err != nil {
		return err
	}
	islandService, err := islands.NewService(islands.ServiceParams{Repo: islandRepo, Visits: visitRepo})
	if err != nil {
		return err
	}
	visitService, err := visits.NewService(visits.ServiceParams{
		Repo:    visitRepo,
		Islands: islandRepo,
		Users:   userRepo,
		Metrics: domainMetrics,
		Logger:  logg,
	})
	if err != nil {
		return err
	}
	articleService, err := articles.NewService(articles.NewRepository(conn), nil)
	if err != nil {
		return err
	}
	adService, err := ads.NewService(ads.NewRepository(conn), nil)
	if err != nil {
		return err
	}

	handler := routes.NewRouter(routes.Dependencies{
		Config:      cfg,
		Logger:      logg,
		DB:          dbClient,
		Redis:       cache,
		Replays:     replays,
		Registry:    registry,
		HTTPMetrics: metrics.NewHTTPMetrics(registry),
		Auth:        authService,
		Users:       userService,
		Islands:     islandService,
		Visits:      visitService,
		Articles:    articleService,
		Ads:         adService,
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.App.Port
	}
	addr := ":" + port
	logCtx := logg.WithFields(ctx, map[string]any{
		"env":  cfg.App.Env,
		"addr": addr,
	})

	server := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		logg.Info(logCtx, "starting api server")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		return err
	case <-ctx.Done():
	}

	logg.Info(logCtx, "shutting down api server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}
