package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"

	"github.com/flashsale/platform/pkg/config"
	"github.com/flashsale/platform/pkg/correlation"
	"github.com/flashsale/platform/pkg/httpserver"
	"github.com/flashsale/platform/pkg/jwt"
	"github.com/flashsale/platform/pkg/logger"
	"github.com/flashsale/platform/pkg/pg"
	"github.com/flashsale/platform/pkg/tenant"
	"github.com/flashsale/platform/svc/catalog"
)

type appConfig struct {
	HTTP   httpserver.Config
	PG     pg.Config
	Logger logger.Config

	JWTSigningKey string `env:"JWT_SIGNING_KEY,required"`
}

func main() {
	var cfg appConfig
	config.MustLoad(&cfg)

	log := logger.NewFromConfig(cfg.Logger, "catalog",
		correlation.LoggerExtractor(), tenant.LoggerExtractor())

	if err := run(context.Background(), cfg, log); err != nil {
		log.Error("Catalog service exited with error", logger.Error(err))
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg appConfig, log *slog.Logger) error {
	pool, err := pg.Connect(ctx, cfg.PG)
	if err != nil {
		return err
	}
	defer pool.Close()

	if err := pg.Migrate(ctx, pool, catalog.Migrations, catalog.MigrationsDir, log); err != nil {
		return err
	}

	verifier, err := jwt.NewVerifier([]byte(cfg.JWTSigningKey))
	if err != nil {
		return err
	}

	svc := catalog.NewService(catalog.NewPGStore(pool), log)

	r := chi.NewRouter()
	r.Get("/healthz", httpserver.HealthCheckHandler(ctx, log))
	r.Get("/readyz", httpserver.HealthCheckHandler(ctx, log, pg.Healthcheck(pool)))

	r.Group(func(r chi.Router) {
		r.Use(correlation.Middleware)
		r.Use(jwt.Middleware(verifier))
		r.Use(tenant.Middleware(jwt.ClaimsFromContext))
		r.Mount("/", catalog.Router(svc, log))
	})

	srv := httpserver.NewFromConfig(cfg.HTTP, log)
	return srv.Run(ctx, r)
}
