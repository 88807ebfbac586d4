// Package store opens the override store selected by configuration.
package store

import (
	"context"
	"fmt"
	"io"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/jhrahman/shiftmate/internal/config"
	"github.com/jhrahman/shiftmate/internal/database"
	"github.com/jhrahman/shiftmate/internal/domain/contract"
	"github.com/jhrahman/shiftmate/internal/domain/roster"
	"github.com/jhrahman/shiftmate/migrator/sqlite"
)

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// Open builds the configured OverrideStore. The returned closer releases any
// connection the store holds.
func Open(ctx context.Context, cfg config.StoreConfig, log *zap.Logger) (contract.OverrideStore, io.Closer, error) {
	switch cfg.Driver {
	case "memory":
		log.Info("Using in-memory override store")
		return roster.NewMemoryStore(), nopCloser{}, nil

	case "file":
		log.Info("Using file override store", zap.String("path", cfg.Path))
		return NewFileStore(cfg.Path), nopCloser{}, nil

	case "sqlite":
		db, err := database.New(cfg.Path)
		if err != nil {
			return nil, nil, err
		}
		if err := sqlite.Migrate(db.DB()); err != nil {
			db.Close()
			return nil, nil, fmt.Errorf("failed to run migrations: %w", err)
		}
		log.Info("Using sqlite override store", zap.String("path", cfg.Path))
		return database.NewOverrideStore(db), db, nil

	case "redis":
		client := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		if err := client.Ping(ctx).Err(); err != nil {
			client.Close()
			return nil, nil, fmt.Errorf("failed to connect to redis at %s: %w", cfg.RedisAddr, err)
		}
		log.Info("Using redis override store", zap.String("addr", cfg.RedisAddr), zap.String("key", cfg.RedisKey))
		return NewRedisStore(client, cfg.RedisKey), client, nil

	default:
		return nil, nil, fmt.Errorf("unknown store driver %q", cfg.Driver)
	}
}
