// Package app wires the application together: configuration, document
// store, query cache, event publisher, identity provider and all command
// and query handlers.
package app

import (
	"context"
	"fmt"
	"log/slog"

	catalogCommands "github.com/felixgeelhaar/sangam/internal/catalog/application/commands"
	catalogQueries "github.com/felixgeelhaar/sangam/internal/catalog/application/queries"
	catalogPersistence "github.com/felixgeelhaar/sangam/internal/catalog/infrastructure/persistence"
	"github.com/felixgeelhaar/sangam/internal/guide"
	"github.com/felixgeelhaar/sangam/internal/identity"
	scheduleCommands "github.com/felixgeelhaar/sangam/internal/schedule/application/commands"
	scheduleQueries "github.com/felixgeelhaar/sangam/internal/schedule/application/queries"
	scheduleSync "github.com/felixgeelhaar/sangam/internal/schedule/application/sync"
	schedulePersistence "github.com/felixgeelhaar/sangam/internal/schedule/infrastructure/persistence"
	sessionCommands "github.com/felixgeelhaar/sangam/internal/session/application/commands"
	sessionQueries "github.com/felixgeelhaar/sangam/internal/session/application/queries"
	sessionPersistence "github.com/felixgeelhaar/sangam/internal/session/infrastructure/persistence"
	"github.com/felixgeelhaar/sangam/internal/shared/infrastructure/docstore"
	"github.com/felixgeelhaar/sangam/internal/shared/infrastructure/eventbus"
	"github.com/felixgeelhaar/sangam/internal/shared/infrastructure/querycache"
	"github.com/felixgeelhaar/sangam/pkg/config"
	"github.com/felixgeelhaar/sangam/pkg/observability"
	"github.com/redis/go-redis/v9"
)

// Container holds all application dependencies.
type Container struct {
	Config  *config.Config
	Logger  *slog.Logger
	Metrics observability.Metrics
	Health  *observability.HealthRegistry

	Store     docstore.Store
	Cache     *querycache.Cache
	Publisher eventbus.Publisher
	Identity  identity.Provider
	Guide     *guide.Guide

	SeedCatalog          *catalogCommands.SeedCatalogHandler
	ListJourneys         *catalogQueries.ListJourneysHandler
	ListFeaturedJourneys *catalogQueries.ListFeaturedJourneysHandler
	JourneyByTitle       *catalogQueries.GetJourneyByTitleHandler

	ScheduleSync *scheduleSync.Controller
	ListSchedule *scheduleQueries.ListScheduleHandler

	CompleteSession *sessionCommands.CompleteSessionHandler
	UserStats       *sessionQueries.GetUserStatsHandler

	redisClient *redis.Client
}

// NewContainer builds the dependency graph from configuration.
func NewContainer(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Container, error) {
	if logger == nil {
		logger = slog.Default()
	}

	c := &Container{
		Config:  cfg,
		Logger:  logger,
		Metrics: observability.NewInMemoryMetrics(),
		Health:  observability.NewHealthRegistry(),
	}

	store, err := openStore(ctx, cfg)
	if err != nil {
		return nil, err
	}
	c.Store = docstore.NewBreakerStore(store, cfg.StoreCallTimeout)

	backend, redisClient, err := openCacheBackend(cfg)
	if err != nil {
		_ = store.Close()
		return nil, err
	}
	c.redisClient = redisClient
	c.Cache = querycache.New(backend, cfg.CacheStalenessWindow)

	c.Publisher = openPublisher(cfg, logger)
	c.Identity = openIdentity(cfg, logger)
	c.Guide = guide.New()

	c.registerHealthChecks()
	c.wireHandlers()

	logger.Info("container initialized",
		"store_driver", cfg.StoreDriver,
		"cache_backend", cacheBackendName(cfg),
		"staleness_window", cfg.CacheStalenessWindow,
	)

	return c, nil
}

// Close releases all held connections.
func (c *Container) Close() error {
	var firstErr error
	if c.Publisher != nil {
		if err := c.Publisher.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	if c.redisClient != nil {
		if err := c.redisClient.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	if c.Store != nil {
		if err := c.Store.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

func (c *Container) wireHandlers() {
	journeyRepo := catalogPersistence.NewJourneyRepository(c.Store)
	scheduleRepo := schedulePersistence.NewScheduleRepository(c.Store)
	statsRepo := sessionPersistence.NewStatsRepository(c.Store)

	c.SeedCatalog = catalogCommands.NewSeedCatalogHandler(journeyRepo, c.Publisher, c.Logger, c.Metrics)
	c.ListJourneys = catalogQueries.NewListJourneysHandler(journeyRepo, c.Cache, c.Logger, c.Metrics)
	c.ListFeaturedJourneys = catalogQueries.NewListFeaturedJourneysHandler(journeyRepo, c.Cache, c.Logger, c.Metrics)
	c.JourneyByTitle = catalogQueries.NewGetJourneyByTitleHandler(journeyRepo)

	add := scheduleCommands.NewAddScheduleItemHandler(scheduleRepo, c.Cache, c.Publisher, c.Logger, c.Metrics)
	update := scheduleCommands.NewUpdateScheduleItemHandler(scheduleRepo, c.Cache, c.Publisher, c.Logger, c.Metrics)
	remove := scheduleCommands.NewRemoveScheduleItemHandler(scheduleRepo, c.Cache, c.Publisher, c.Logger, c.Metrics)
	c.ListSchedule = scheduleQueries.NewListScheduleHandler(scheduleRepo, c.Cache, c.Logger, c.Metrics)
	c.ScheduleSync = scheduleSync.NewController(add, update, remove, c.ListSchedule, c.Logger)

	c.CompleteSession = sessionCommands.NewCompleteSessionHandler(statsRepo, c.Publisher, c.Logger, c.Metrics)
	c.UserStats = sessionQueries.NewGetUserStatsHandler(statsRepo)
}

func (c *Container) registerHealthChecks() {
	c.Health.Register("docstore", func(ctx context.Context) observability.HealthResult {
		if _, err := c.Store.List(ctx, catalogPersistence.JourneysCollection); err != nil {
			return observability.HealthResult{Status: observability.HealthStatusDown, Message: err.Error()}
		}
		return observability.HealthResult{Status: observability.HealthStatusUp}
	})
	if c.redisClient != nil {
		c.Health.Register("redis", observability.PingCheck(redisPinger{client: c.redisClient}))
	}
}

func openStore(ctx context.Context, cfg *config.Config) (docstore.Store, error) {
	switch cfg.StoreDriver {
	case "memory":
		return docstore.NewMemoryStore(), nil
	case "postgres":
		return docstore.NewPostgresStore(ctx, cfg.DatabaseURL)
	default:
		return docstore.NewSQLiteStore(ctx, cfg.SQLitePath)
	}
}

func openCacheBackend(cfg *config.Config) (querycache.Backend, *redis.Client, error) {
	if cfg.RedisURL == "" {
		return querycache.NewFreecacheBackend(querycache.DefaultFreecacheSize), nil, nil
	}
	opts, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		return nil, nil, fmt.Errorf("parsing redis url: %w", err)
	}
	client := redis.NewClient(opts)
	return querycache.NewRedisBackend(client), client, nil
}

func openPublisher(cfg *config.Config, logger *slog.Logger) eventbus.Publisher {
	if cfg.RabbitMQURL == "" {
		return eventbus.NewInProcessBus(logger)
	}
	publisher, err := eventbus.NewRabbitMQPublisher(cfg.RabbitMQURL, logger)
	if err != nil {
		logger.Warn("RabbitMQ unavailable, publishing events in process", "error", err)
		return eventbus.NewInProcessBus(logger)
	}
	return publisher
}

func openIdentity(cfg *config.Config, logger *slog.Logger) identity.Provider {
	if cfg.OAuthConfigured() {
		provider, err := identity.NewOAuthProvider(cfg.OAuthTokenURL, cfg.OAuthClientID, cfg.OAuthClientSecret, nil)
		if err == nil {
			return provider
		}
		logger.Warn("OAuth identity unavailable, falling back to static provider", "error", err)
	}
	return identity.NewStaticProvider(cfg.UserID)
}

func cacheBackendName(cfg *config.Config) string {
	if cfg.RedisURL != "" {
		return "redis"
	}
	return "freecache"
}

type redisPinger struct {
	client *redis.Client
}

func (p redisPinger) Ping(ctx context.Context) error {
	return p.client.Ping(ctx).Err()
}
