package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/jackc/pgx/v4/pgxpool"
	"github.com/redis/go-redis/v9"

	"trivia-night/internal/app"
	"trivia-night/internal/config"
	"trivia-night/internal/content"
	"trivia-night/internal/infra/memory"
	pgloader "trivia-night/internal/infra/postgres"
	redisstore "trivia-night/internal/infra/redis"
	transport "trivia-night/internal/transport/http"
)

// deps holds the storage chosen from config. Redis and Postgres are optional;
// without them everything stays in memory with the built-in packs.
type deps struct {
	catalogs app.CatalogRepository
	rooms    app.RoomStore
	checks   map[string]transport.HealthCheck
	closers  []func()
}

func (d *deps) Close() {
	for i := len(d.closers) - 1; i >= 0; i-- {
		d.closers[i]()
	}
}

func newLogger(cfg config.Config) *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.LogLevel()}))
}

func buildDeps(ctx context.Context, cfg config.Config, logger *slog.Logger) (*deps, error) {
	d := &deps{checks: map[string]transport.HealthCheck{}}

	var redisClient *redis.Client
	if cfg.Redis.Addr != "" {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err := redisClient.Ping(ctx).Err(); err != nil {
			redisClient.Close()
			return nil, fmt.Errorf("pinging redis: %w", err)
		}
		d.closers = append(d.closers, func() { _ = redisClient.Close() })
		d.checks["redis"] = func(ctx context.Context) error { return redisClient.Ping(ctx).Err() }
		logger.Info("connected to redis", "addr", cfg.Redis.Addr)
	}

	var loader memory.CatalogLoader = memory.NewStaticCatalogLoader(content.Catalog())
	if cfg.Postgres.URL != "" {
		if err := runMigrationsWithConfig(ctx, cfg, logger); err != nil {
			d.Close()
			return nil, err
		}
		pool, err := pgxpool.Connect(ctx, cfg.Postgres.URL)
		if err != nil {
			d.Close()
			return nil, fmt.Errorf("connecting to postgres: %w", err)
		}
		d.closers = append(d.closers, pool.Close)
		d.checks["postgres"] = func(ctx context.Context) error { return pool.Ping(ctx) }
		loader = pgloader.NewCatalogLoader(pool)
		logger.Info("connected to postgres")
	}

	catalogTTL := config.TTLDuration(cfg.Catalog.TTL, 10*time.Minute)
	roomTTL := config.TTLDuration(cfg.Redis.TTL, 30*time.Minute)
	if redisClient != nil {
		d.catalogs = redisstore.NewCatalogRepository(redisClient, loader, catalogTTL)
		d.rooms = redisstore.NewRoomStore(redisClient, roomTTL)
	} else {
		d.catalogs = memory.NewCatalogRepository(loader, catalogTTL)
		d.rooms = memory.NewRoomStore()
	}
	return d, nil
}
