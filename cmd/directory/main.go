package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/flashsale/platform/pkg/config"
	"github.com/flashsale/platform/pkg/correlation"
	"github.com/flashsale/platform/pkg/httpserver"
	"github.com/flashsale/platform/pkg/jwt"
	"github.com/flashsale/platform/pkg/logger"
	"github.com/flashsale/platform/pkg/pg"
	"github.com/flashsale/platform/pkg/redis"
	"github.com/flashsale/platform/pkg/tenant"
	"github.com/flashsale/platform/svc/directory"
)

type appConfig struct {
	HTTP   httpserver.Config
	PG     pg.Config
	Redis  redis.Config
	Logger logger.Config

	JWTSigningKey string        `env:"JWT_SIGNING_KEY,required"`
	CacheTTL      time.Duration `env:"TENANT_CACHE_TTL" envDefault:"5m"`
}

func main() {
	var cfg appConfig
	config.MustLoad(&cfg)

	log := logger.NewFromConfig(cfg.Logger, "directory",
		correlation.LoggerExtractor(), tenant.LoggerExtractor())

	if err := run(context.Background(), cfg, log); err != nil {
		log.Error("Directory service exited with error", logger.Error(err))
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg appConfig, log *slog.Logger) error {
	pool, err := pg.Connect(ctx, cfg.PG)
	if err != nil {
		return err
	}
	defer pool.Close()

	if err := pg.Migrate(ctx, pool, directory.Migrations, directory.MigrationsDir, log); err != nil {
		return err
	}

	redisClient, err := redis.Connect(ctx, cfg.Redis)
	if err != nil {
		return err
	}
	defer func() { _ = redisClient.Close() }()

	verifier, err := jwt.NewVerifier([]byte(cfg.JWTSigningKey))
	if err != nil {
		return err
	}

	svc := directory.NewService(
		directory.NewPGStore(pool),
		directory.NewRedisCache(redisClient),
		cfg.CacheTTL,
		log,
	)

	r := chi.NewRouter()
	r.Get("/healthz", httpserver.HealthCheckHandler(ctx, log))
	r.Get("/readyz", httpserver.HealthCheckHandler(ctx, log,
		pg.Healthcheck(pool), redis.Healthcheck(redisClient)))

	r.Group(func(r chi.Router) {
		r.Use(correlation.Middleware)
		r.Use(jwt.Middleware(verifier))
		r.Use(tenant.Middleware(jwt.ClaimsFromContext))
		r.Mount("/", directory.Router(svc, log))
	})

	srv := httpserver.NewFromConfig(cfg.HTTP, log)
	return srv.Run(ctx, r)
}
