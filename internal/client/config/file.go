package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/dmitrijs2005/tutorias/internal/flagx"
	"github.com/dmitrijs2005/tutorias/internal/timex"
	"gopkg.in/yaml.v3"
)

// fileConfig is the on-disk shape. Pointer and zero fields are left out of
// the overlay so a file can set only what it cares about.
type fileConfig struct {
	APIBaseURL     string          `json:"api_url" yaml:"api_url"`
	RequestTimeout *timex.Duration `json:"request_timeout" yaml:"request_timeout"`
	DownloadDir    string          `json:"download_dir" yaml:"download_dir"`
	Storage        struct {
		Driver        string `json:"driver" yaml:"driver"`
		Path          string `json:"path" yaml:"path"`
		RedisAddr     string `json:"redis_addr" yaml:"redis_addr"`
		RedisPassword string `json:"redis_password" yaml:"redis_password"`
		RedisDB       *int   `json:"redis_db" yaml:"redis_db"`
		RedisKey      string `json:"redis_key" yaml:"redis_key"`
	} `json:"storage" yaml:"storage"`
	Log struct {
		Level   string `json:"level" yaml:"level"`
		Backend string `json:"backend" yaml:"backend"`
	} `json:"log" yaml:"log"`
}

func parseFile(cfg *Config, args []string) error {
	path := flagx.ConfigFileFlag(args)
	if path == "" {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}

	var fc fileConfig
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &fc)
	default:
		err = json.Unmarshal(data, &fc)
	}
	if err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}

	fc.apply(cfg)
	return nil
}

func (fc *fileConfig) apply(cfg *Config) {
	setString(&cfg.APIBaseURL, fc.APIBaseURL)
	if fc.RequestTimeout != nil {
		cfg.RequestTimeout = fc.RequestTimeout.Duration
	}
	setString(&cfg.DownloadDir, fc.DownloadDir)

	setString(&cfg.Storage.Driver, fc.Storage.Driver)
	setString(&cfg.Storage.Path, fc.Storage.Path)
	setString(&cfg.Storage.RedisAddr, fc.Storage.RedisAddr)
	setString(&cfg.Storage.RedisPassword, fc.Storage.RedisPassword)
	if fc.Storage.RedisDB != nil {
		cfg.Storage.RedisDB = *fc.Storage.RedisDB
	}
	setString(&cfg.Storage.RedisKey, fc.Storage.RedisKey)

	setString(&cfg.Log.Level, fc.Log.Level)
	setString(&cfg.Log.Backend, fc.Log.Backend)
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
