package config

import (
	"context"
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/sethvargo/go-envconfig"
)

type envVars struct {
	APIBaseURL     string        `env:"API_URL"`
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
	DownloadDir    string        `env:"DOWNLOAD_DIR"`
	Storage        string        `env:"STORAGE"`
	DBPath         string        `env:"DB_PATH"`
	RedisAddr      string        `env:"REDIS_ADDR"`
	RedisPassword  string        `env:"REDIS_PASSWORD"`
	RedisDB        int           `env:"REDIS_DB, default=-1"`
	RedisKey       string        `env:"REDIS_KEY"`
	LogLevel       string        `env:"LOG_LEVEL"`
	LogBackend     string        `env:"LOG_BACKEND"`
}

type envSource struct {
	Vars envVars `env:",prefix=TUTORIAS_"`
}

// parseEnv overlays cfg with TUTORIAS_* variables. A .env file in the
// working directory is loaded first; it never overrides variables that are
// already set in the process environment.
func parseEnv(ctx context.Context, cfg *Config) error {
	_ = godotenv.Load()

	var src envSource
	if err := envconfig.Process(ctx, &src); err != nil {
		return fmt.Errorf("environment: %w", err)
	}

	v := src.Vars
	setString(&cfg.APIBaseURL, v.APIBaseURL)
	if v.RequestTimeout > 0 {
		cfg.RequestTimeout = v.RequestTimeout
	}
	setString(&cfg.DownloadDir, v.DownloadDir)
	setString(&cfg.Storage.Driver, v.Storage)
	setString(&cfg.Storage.Path, v.DBPath)
	setString(&cfg.Storage.RedisAddr, v.RedisAddr)
	setString(&cfg.Storage.RedisPassword, v.RedisPassword)
	if v.RedisDB >= 0 {
		cfg.Storage.RedisDB = v.RedisDB
	}
	setString(&cfg.Storage.RedisKey, v.RedisKey)
	setString(&cfg.Log.Level, v.LogLevel)
	setString(&cfg.Log.Backend, v.LogBackend)
	return nil
}
