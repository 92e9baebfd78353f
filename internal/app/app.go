// Package app wires together all dependencies and runs the search service.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/emveka/beautydiscountnext-sub000/internal/catalog"
	"github.com/emveka/beautydiscountnext-sub000/internal/config"
	"github.com/emveka/beautydiscountnext-sub000/internal/debounce"
	"github.com/emveka/beautydiscountnext-sub000/internal/event"
	handler "github.com/emveka/beautydiscountnext-sub000/internal/handler/http"
	"github.com/emveka/beautydiscountnext-sub000/internal/service"
	"github.com/emveka/beautydiscountnext-sub000/pkg/health"
	"github.com/emveka/beautydiscountnext-sub000/pkg/httpclient"
	pkgkafka "github.com/emveka/beautydiscountnext-sub000/pkg/kafka"
	"github.com/emveka/beautydiscountnext-sub000/pkg/middleware"
)

// App holds the running components of the search service.
type App struct {
	cfg         *config.Config
	logger      *slog.Logger
	consumers   []*pkgkafka.Consumer
	invalidator *debounce.Scheduler
	httpServer  *http.Server
}

// NewApp creates a new application instance, initializing all dependencies.
func NewApp(cfg *config.Config, logger *slog.Logger) (*App, error) {
	// Product store client behind a circuit breaker.
	httpClient := httpclient.New(httpclient.DefaultConfig())
	cbClient := httpclient.NewCircuitBreakerClient(
		httpClient,
		httpclient.DefaultCircuitBreakerConfig("product-store"),
		logger,
	)
	storeClient := catalog.NewStoreClient(cfg.ProductStoreURL, cbClient, logger)

	// Catalog cache with TTL refresh.
	cache := catalog.NewCache(storeClient, catalog.CacheConfig{
		TTL:        cfg.CatalogTTL,
		FetchLimit: cfg.CatalogFetchLimit,
	}, logger)

	searchService := service.NewSearchService(cache, storeClient, logger)

	// Product events invalidate the snapshot. Bursts are debounced so a
	// bulk import does not trigger one refresh per message.
	invalidator := debounce.New(cfg.InvalidationDebounce, cache.MarkStale)
	eventConsumer := event.NewConsumer(invalidator.Trigger, logger)

	topics := []string{
		event.TopicProductCreated,
		event.TopicProductUpdated,
		event.TopicProductDeleted,
	}

	var consumers []*pkgkafka.Consumer
	for _, topic := range topics {
		consumerCfg := pkgkafka.ConsumerConfig{
			Brokers:  cfg.KafkaBrokers,
			GroupID:  "storefront-search",
			Topic:    topic,
			MinBytes: 1,
			MaxBytes: 10e6, // 10 MB
		}
		c := pkgkafka.NewConsumer(consumerCfg, eventConsumer.Handle, logger)
		consumers = append(consumers, c)
	}
	logger.Info("kafka consumers initialized",
		slog.Any("brokers", cfg.KafkaBrokers),
		slog.Int("topic_count", len(topics)),
	)

	healthHandler := health.NewHandler()
	healthHandler.Register("product-store", storeClient.Ping)
	healthHandler.Register("kafka", func(ctx context.Context) error {
		return pkgkafka.PingBrokers(ctx, cfg.KafkaBrokers)
	})

	corsConfig := middleware.DefaultCORSConfig()
	corsConfig.AllowedOrigins = cfg.CORSAllowedOrigins
	corsConfig.Environment = cfg.Environment

	router := handler.NewRouter(searchService, healthHandler, corsConfig, logger)

	httpServer := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.HTTPPort),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return &App{
		cfg:         cfg,
		logger:      logger,
		consumers:   consumers,
		invalidator: invalidator,
		httpServer:  httpServer,
	}, nil
}

// Run starts the HTTP server and Kafka consumers, blocking until the
// context is canceled.
func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 1+len(a.consumers))

	for _, c := range a.consumers {
		c := c
		go func() {
			if err := c.Start(ctx); err != nil {
				errCh <- fmt.Errorf("kafka consumer: %w", err)
			}
		}()
	}

	go func() {
		a.logger.Info("starting HTTP server",
			slog.String("addr", a.httpServer.Addr),
		)
		if err := a.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- fmt.Errorf("http server: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		a.logger.Info("shutdown signal received")
	case err := <-errCh:
		return err
	}

	return a.Shutdown()
}

// Shutdown gracefully stops all components.
func (a *App) Shutdown() error {
	a.logger.Info("shutting down application...")

	var errs []error

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := a.httpServer.Shutdown(shutdownCtx); err != nil {
		a.logger.Error("http server shutdown error", slog.String("error", err.Error()))
		errs = append(errs, err)
	}

	a.invalidator.Stop()

	for _, c := range a.consumers {
		if err := c.Close(); err != nil {
			a.logger.Error("kafka consumer close error", slog.String("error", err.Error()))
			errs = append(errs, err)
		}
	}

	a.logger.Info("application shutdown complete")
	return errors.Join(errs...)
}
