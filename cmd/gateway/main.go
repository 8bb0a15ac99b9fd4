package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"os"

	"github.com/go-chi/chi/v5"

	"github.com/flashsale/platform/pkg/config"
	"github.com/flashsale/platform/pkg/correlation"
	"github.com/flashsale/platform/pkg/httpserver"
	"github.com/flashsale/platform/pkg/jwt"
	"github.com/flashsale/platform/pkg/logger"
	"github.com/flashsale/platform/pkg/tenant"
	"github.com/flashsale/platform/svc/gateway"
)

type appConfig struct {
	HTTP   httpserver.Config
	Logger logger.Config

	JWTSigningKey string `env:"JWT_SIGNING_KEY,required"`

	CatalogURL   string `env:"CATALOG_URL" envDefault:"http://localhost:8081"`
	DirectoryURL string `env:"DIRECTORY_URL" envDefault:"http://localhost:8082"`

	PublicPrefixes []string `env:"PUBLIC_PATH_PREFIXES" envSeparator:"," envDefault:"/api/public/"`
	HealthPrefixes []string `env:"HEALTH_PATH_PREFIXES" envSeparator:"," envDefault:"/healthz,/livez,/readyz"`
}

func main() {
	var cfg appConfig
	config.MustLoad(&cfg)

	log := logger.NewFromConfig(cfg.Logger, "gateway",
		correlation.LoggerExtractor(), tenant.LoggerExtractor())

	if err := run(context.Background(), cfg, log); err != nil {
		log.Error("Gateway exited with error", logger.Error(err))
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg appConfig, log *slog.Logger) error {
	catalogURL, err := url.Parse(cfg.CatalogURL)
	if err != nil {
		return fmt.Errorf("parse CATALOG_URL: %w", err)
	}
	directoryURL, err := url.Parse(cfg.DirectoryURL)
	if err != nil {
		return fmt.Errorf("parse DIRECTORY_URL: %w", err)
	}

	verifier, err := jwt.NewVerifier([]byte(cfg.JWTSigningKey))
	if err != nil {
		return err
	}

	edge := gateway.Router(
		gateway.Upstreams{Catalog: catalogURL, Directory: directoryURL},
		verifier, log,
		tenant.WithPublicPrefixes(cfg.PublicPrefixes),
		tenant.WithHealthPrefixes(cfg.HealthPrefixes),
	)

	r := chi.NewRouter()
	r.Get("/healthz", httpserver.HealthCheckHandler(ctx, log))
	r.Mount("/", edge)

	srv := httpserver.NewFromConfig(cfg.HTTP, log)
	return srv.Run(ctx, r)
}
