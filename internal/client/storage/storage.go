// Package storage opens the metadata repository selected in the config:
// SQLite with embedded goose migrations, process memory, or Redis.
package storage

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/tutorias/internal/client/config"
	"github.com/dmitrijs2005/tutorias/internal/client/migrations"
	"github.com/dmitrijs2005/tutorias/internal/client/repositories/metadata"
	"github.com/pressly/goose/v3"
	"github.com/redis/go-redis/v9"

	_ "modernc.org/sqlite"
)

// Handle bundles the opened repository with the resource behind it.
// DB is set only for the SQLite driver.
type Handle struct {
	Repo  metadata.Repository
	DB    *sql.DB
	close func() error
}

func (h *Handle) Close() error {
	if h.close == nil {
		return nil
	}
	return h.close()
}

func RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)
	goose.SetLogger(goose.NopLogger())

	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("goose dialect: %w", err)
	}

	return goose.UpContext(ctx, db, ".")
}

// InitDatabase opens (creating if needed) the SQLite file at dsn and applies
// the migrations.
func InitDatabase(ctx context.Context, dsn string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}

	if err := RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}

// Open returns the repository for cfg.Driver.
func Open(ctx context.Context, cfg config.StorageConfig) (*Handle, error) {
	switch cfg.Driver {
	case config.StorageSQLite, "":
		db, err := InitDatabase(ctx, cfg.Path)
		if err != nil {
			return nil, fmt.Errorf("open session database %s: %w", cfg.Path, err)
		}
		return &Handle{Repo: metadata.NewSQLiteRepository(db), DB: db, close: db.Close}, nil

	case config.StorageMemory:
		return &Handle{Repo: metadata.NewMemoryRepository()}, nil

	case config.StorageRedis:
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		repo := metadata.NewRedisRepository(client, cfg.RedisKey)
		if err := repo.Ping(ctx); err != nil {
			_ = client.Close()
			return nil, fmt.Errorf("connect redis %s: %w", cfg.RedisAddr, err)
		}
		return &Handle{Repo: repo, close: client.Close}, nil

	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Driver)
	}
}
