package config

import (
	"context"
	"os"
	"time"
)

const (
	StorageSQLite = "sqlite"
	StorageMemory = "memory"
	StorageRedis  = "redis"
)

const (
	LogBackendSlog = "slog"
	LogBackendZap  = "zap"
)

// DefaultAPIURL is used when no source sets the backend address.
const DefaultAPIURL = "http://localhost:8000"

// Config holds runtime settings for the tutorias client and CLI.
type Config struct {
	APIBaseURL     string
	RequestTimeout time.Duration
	DownloadDir    string
	Storage        StorageConfig
	Log            LogConfig
}

// StorageConfig selects where the session credential and role are kept.
type StorageConfig struct {
	Driver        string
	Path          string
	RedisAddr     string
	RedisPassword string
	RedisDB       int
	RedisKey      string
}

type LogConfig struct {
	Level   string
	Backend string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = DefaultAPIURL
	c.RequestTimeout = 30 * time.Second
	c.DownloadDir = "downloads"
	c.Storage = StorageConfig{
		Driver:    StorageSQLite,
		Path:      "session.db",
		RedisAddr: "127.0.0.1:6379",
		RedisKey:  "tutorias:session",
	}
	c.Log = LogConfig{Level: "info", Backend: LogBackendSlog}
}

// LoadConfig builds a Config from defaults, the optional config file, the
// environment and the command-line flags in args (normally os.Args[1:]).
func LoadConfig(ctx context.Context, args []string) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()

	if err := parseFile(cfg, args); err != nil {
		return nil, err
	}
	if err := parseEnv(ctx, cfg); err != nil {
		return nil, err
	}
	if err := parseFlags(cfg, args); err != nil {
		return nil, err
	}
	return cfg, nil
}

// MustLoad is LoadConfig for main packages: it reads os.Args and panics on
// invalid configuration.
func MustLoad(ctx context.Context) *Config {
	cfg, err := LoadConfig(ctx, os.Args[1:])
	if err != nil {
		panic(err)
	}
	return cfg
}
