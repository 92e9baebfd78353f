// Package config loads the storefront search configuration from the
// environment.
package config

import (
	"fmt"
	"time"

	pkgconfig "github.com/emveka/beautydiscountnext-sub000/pkg/config"
	pkgvalidator "github.com/emveka/beautydiscountnext-sub000/pkg/validator"
)

// Config holds all configuration for the search service.
type Config struct {
	Environment string `env:"ENVIRONMENT" envDefault:"development"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`

	// HTTP server
	HTTPPort int `env:"SEARCH_HTTP_PORT" envDefault:"8010" validate:"gte=1,lte=65535"`

	// Product store backend serving the catalog and brand directory
	ProductStoreURL string `env:"PRODUCT_STORE_URL" envDefault:"http://localhost:8080" validate:"required"`

	// Catalog cache
	CatalogTTL        time.Duration `env:"CATALOG_TTL" envDefault:"5m" validate:"gt=0"`
	CatalogFetchLimit int           `env:"CATALOG_FETCH_LIMIT" envDefault:"1000" validate:"gte=1"`

	// Quiet period before an event burst triggers a cache invalidation
	InvalidationDebounce time.Duration `env:"INVALIDATION_DEBOUNCE" envDefault:"2s" validate:"gte=0"`

	// Kafka
	KafkaBrokers []string `env:"KAFKA_BROKERS" envDefault:"localhost:9092" envSeparator:"," validate:"min=1"`

	// CORS
	CORSAllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" envDefault:"*" envSeparator:","`
}

// Load reads configuration from environment variables and validates it.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := pkgconfig.Load(cfg); err != nil {
		return nil, fmt.Errorf("load search config: %w", err)
	}
	if err := pkgvalidator.Validate(cfg); err != nil {
		return nil, fmt.Errorf("validate search config: %w", err)
	}
	return cfg, nil
}
