package cmd

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"overcooked-menu/config"
	"overcooked-menu/menu-svc/internal/domain"
	"overcooked-menu/menu-svc/internal/service"
	"overcooked-menu/menu-svc/internal/storage"

	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"
	"github.com/spf13/viper"
)

// app holds the wired service graph shared by the subcommands.
type app struct {
	cfg    config.Config
	logger *slog.Logger

	db          *sql.DB
	rdb         *redis.Client
	kafkaWriter *kafka.Writer

	store    *storage.PostgresSnapshotStore
	lineages *service.LineageRegistry
	catalog  *service.CatalogRegistry
	resolver *service.VersionResolver
	menus    *service.MenuService
	worker   *service.ReconcileWorker
}

func loadConfig() (config.Config, *slog.Logger, error) {
	cfg, err := config.Load(viper.GetViper())
	if err != nil {
		return config.Config{}, nil, err
	}
	logger := config.NewLogger(cfg.LogLevel, cfg.LogFormat)
	slog.SetDefault(logger)
	return cfg, logger, nil
}

func newApp(ctx context.Context, cfg config.Config, logger *slog.Logger) (*app, error) {
	a := &app{cfg: cfg, logger: logger}

	db, err := config.InitPostgres(cfg)
	if err != nil {
		return nil, err
	}
	a.db = db

	a.store = storage.NewPostgresSnapshotStore(db)
	if err := a.store.EnsureSchema(ctx); err != nil {
		a.Close()
		return nil, fmt.Errorf("ensure schema: %w", err)
	}

	a.lineages = service.NewLineageRegistry(
		a.store,
		storage.NewYAMLDocument[map[string][]string](cfg.RegistryPath("food_versions.yml")),
		logger,
	)
	if err := a.lineages.Load(); err != nil {
		a.Close()
		return nil, fmt.Errorf("load lineages: %w", err)
	}

	a.catalog = service.NewCatalogRegistry(
		a.store,
		storage.NewYAMLDocument[map[string]domain.Location](cfg.RegistryPath("locations.yml")),
		storage.NewYAMLDocument[map[string]domain.FoodProperty](cfg.RegistryPath("food_properties.yml")),
		logger,
	)
	if err := a.catalog.Load(); err != nil {
		a.Close()
		return nil, fmt.Errorf("load catalog: %w", err)
	}

	var cache service.VersionCache
	if cfg.RedisHost == "" {
		logger.Info("redis not configured, using in-process version cache")
		cache = storage.NewMemoryVersionCache(cfg.VersionTTL)
	} else {
		rdb, err := config.InitRedis(ctx, cfg)
		if err != nil {
			a.Close()
			return nil, err
		}
		a.rdb = rdb
		cache = storage.NewRedisVersionCache(rdb, cfg.VersionTTL)
	}

	a.resolver = service.NewVersionResolver(a.lineages, a.store, cache, logger)
	a.menus = service.NewMenuService(
		service.NewSnapshotSelector(a.store, cfg.FallbackHorizon),
		service.NewMenuAssembler(a.resolver, cfg.ResolveConcurrency, logger),
		a.resolver,
		a.catalog,
		service.DefaultQREncoder{},
		cfg.PublicURL,
	)

	var publisher service.LineagePublisher
	if cfg.KafkaBroker != "" {
		a.kafkaWriter = config.NewKafkaWriter(cfg)
		publisher = storage.NewKafkaLineagePublisher(a.kafkaWriter)
	}
	a.worker = service.NewReconcileWorker(a.lineages, a.catalog, a.resolver, publisher, service.ReconcileConfig{
		Interval:           cfg.ReconcileInterval,
		Writer:             cfg.ReconcileWriter,
		InvalidateOnGrowth: cfg.InvalidateOnGrowth,
	}, logger)

	return a, nil
}

func (a *app) Close() {
	if a.kafkaWriter != nil {
		if err := a.kafkaWriter.Close(); err != nil {
			a.logger.Warn("close kafka writer", "error", err)
		}
	}
	if a.rdb != nil {
		a.rdb.Close()
	}
	if a.db != nil {
		a.db.Close()
	}
}
