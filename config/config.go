package config

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"
	"github.com/spf13/viper"
)

type Config struct {
	HTTPAddr  string `mapstructure:"http_addr"`
	PublicURL string `mapstructure:"public_url"`

	DBHost     string `mapstructure:"db_host"`
	DBPort     string `mapstructure:"db_port"`
	DBName     string `mapstructure:"db_name"`
	DBUser     string `mapstructure:"db_user"`
	DBPassword string `mapstructure:"db_password"`

	// An empty RedisHost selects the in-process version cache.
	RedisHost string `mapstructure:"redis_host"`
	RedisPort string `mapstructure:"redis_port"`

	// An empty KafkaBroker disables snapshot ingest and lineage events.
	KafkaBroker   string `mapstructure:"kafka_broker"`
	SnapshotTopic string `mapstructure:"snapshot_topic"`
	LineageTopic  string `mapstructure:"lineage_topic"`
	ConsumerGroup string `mapstructure:"consumer_group"`

	RegistryDir string `mapstructure:"registry_dir"`

	VersionTTL         time.Duration `mapstructure:"version_ttl"`
	FallbackHorizon    time.Duration `mapstructure:"fallback_horizon"`
	ReconcileInterval  time.Duration `mapstructure:"reconcile_interval"`
	ReconcileWriter    bool          `mapstructure:"reconcile_writer"`
	InvalidateOnGrowth bool          `mapstructure:"invalidate_on_growth"`
	ResolveConcurrency int           `mapstructure:"resolve_concurrency"`

	LogLevel  string `mapstructure:"log_level"`
	LogFormat string `mapstructure:"log_format"`
}

func SetDefaults(v *viper.Viper) {
	v.SetDefault("http_addr", ":8084")
	v.SetDefault("public_url", "http://localhost:8080")
	v.SetDefault("db_host", "localhost")
	v.SetDefault("db_port", "5432")
	v.SetDefault("db_name", "menus")
	v.SetDefault("db_user", "postgres")
	v.SetDefault("db_password", "")
	v.SetDefault("redis_host", "")
	v.SetDefault("redis_port", "6379")
	v.SetDefault("kafka_broker", "")
	v.SetDefault("snapshot_topic", "menu-snapshots")
	v.SetDefault("lineage_topic", "menu-lineage")
	v.SetDefault("consumer_group", "menu-svc")
	v.SetDefault("registry_dir", "config")
	v.SetDefault("version_ttl", 24*time.Hour)
	v.SetDefault("fallback_horizon", 48*time.Hour)
	v.SetDefault("reconcile_interval", time.Hour)
	v.SetDefault("reconcile_writer", true)
	v.SetDefault("invalidate_on_growth", false)
	v.SetDefault("resolve_concurrency", 8)
	v.SetDefault("log_level", "info")
	v.SetDefault("log_format", "text")
}

// Load reads configuration from v. Every key can also be set through the
// environment using its upper-cased name, e.g. DB_HOST or VERSION_TTL.
func Load(v *viper.Viper) (Config, error) {
	SetDefaults(v)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	if cfg.VersionTTL <= 0 {
		return Config{}, fmt.Errorf("version_ttl must be positive, got %s", cfg.VersionTTL)
	}
	return cfg, nil
}

func (c Config) PostgresDSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName)
}

func (c Config) RegistryPath(name string) string {
	return strings.TrimRight(c.RegistryDir, "/") + "/" + name
}

func NewLogger(level, format string) *slog.Logger {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		lvl = slog.LevelInfo
	}
	opts := &slog.HandlerOptions{Level: lvl}

	var handler slog.Handler
	if strings.EqualFold(format, "json") {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	} else {
		handler = slog.NewTextHandler(os.Stderr, opts)
	}
	return slog.New(handler)
}

func InitPostgres(cfg Config) (*sql.DB, error) {
	db, err := sql.Open("postgres", cfg.PostgresDSN())
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if err = db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(time.Hour)

	return db, nil
}

func InitRedis(ctx context.Context, cfg Config) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr: cfg.RedisHost + ":" + cfg.RedisPort,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("connect to redis: %w", err)
	}

	return client, nil
}

func NewKafkaReader(cfg Config) *kafka.Reader {
	return kafka.NewReader(kafka.ReaderConfig{
		Brokers: []string{cfg.KafkaBroker},
		Topic:   cfg.SnapshotTopic,
		GroupID: cfg.ConsumerGroup,
	})
}

func NewKafkaWriter(cfg Config) *kafka.Writer {
	return &kafka.Writer{
		Addr:     kafka.TCP(cfg.KafkaBroker),
		Topic:    cfg.LineageTopic,
		Balancer: &kafka.Hash{},
	}
}
