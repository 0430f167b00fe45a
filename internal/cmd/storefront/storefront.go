// Package storefront parses storefront service flags and launches the service.
package storefront

import (
	"context"
	"flag"
	"fmt"
	"time"

	entrypoint "github.com/louisbranch/storefront/internal/platform/cmd"
	server "github.com/louisbranch/storefront/internal/services/shop/app"
)

// Config holds storefront command configuration.
type Config struct {
	Port            int           `env:"STOREFRONT_PORT" envDefault:"8080"`
	DBPath          string        `env:"STOREFRONT_DB_PATH"`
	RepriceInterval time.Duration `env:"STOREFRONT_REPRICE_INTERVAL" envDefault:"15s"`
}

// ParseConfig parses environment and flags into Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	fs.IntVar(&cfg.Port, "port", cfg.Port, "The storefront HTTP server port")
	fs.StringVar(&cfg.DBPath, "db-path", cfg.DBPath, "SQLite database path; blank runs memory-only")
	fs.DurationVar(&cfg.RepriceInterval, "reprice-interval", cfg.RepriceInterval, "Cadence of the scheduled price recompute")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run starts the storefront HTTP API service.
func Run(ctx context.Context, cfg Config) error {
	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceStorefront, func(context.Context) error {
		return server.Run(ctx, server.Config{
			Addr:            fmt.Sprintf(":%d", cfg.Port),
			DBPath:          cfg.DBPath,
			RepriceInterval: cfg.RepriceInterval,
		})
	})
}
