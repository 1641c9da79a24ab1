// Package config loads the framecraft configuration file.
//
// Configuration lives at ~/.config/framecraft/config.toml and is entirely
// optional: a missing file yields the defaults, and every field may be
// omitted independently.
package config

import (
	"context"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/framecraft/framecraft/pkg/errors"
	"github.com/framecraft/framecraft/pkg/geom"
	"github.com/framecraft/framecraft/pkg/storage"
)

// Storage backend names accepted in config.toml.
const (
	BackendFile  = "file"
	BackendRedis = "redis"
	BackendNone  = "none"
)

// Config is the on-disk configuration shape.
type Config struct {
	Frame   FrameConfig   `toml:"frame"`
	Storage StorageConfig `toml:"storage"`
	Assets  AssetsConfig  `toml:"assets"`
}

// FrameConfig sizes the composition frame.
type FrameConfig struct {
	Width  float64 `toml:"width"`
	Height float64 `toml:"height"`
}

// StorageConfig selects and parameterizes the persistence backend.
type StorageConfig struct {
	Backend string `toml:"backend"` // file, redis, or none
	Slot    string `toml:"slot"`
	Dir     string `toml:"dir"` // file backend only

	Redis RedisConfig `toml:"redis"`
}

// RedisConfig holds connection settings for the redis backend.
type RedisConfig struct {
	Addr     string `toml:"addr"`
	Password string `toml:"password"`
	DB       int    `toml:"db"`
}

// AssetsConfig tunes the asset loader.
type AssetsConfig struct {
	CacheDir string `toml:"cache_dir"`
}

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		Frame: FrameConfig{Width: geom.DefaultFrame.Width, Height: geom.DefaultFrame.Height},
		Storage: StorageConfig{
			Backend: BackendFile,
			Slot:    storage.DefaultSlot,
			Redis:   RedisConfig{Addr: "localhost:6379"},
		},
	}
}

// DefaultPath returns ~/.config/framecraft/config.toml, or "" when the
// home directory cannot be determined.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "framecraft", "config.toml")
}

// Load reads the config at path, layering it over Default. An empty path
// means DefaultPath. A missing file is not an error.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		path = DefaultPath()
		if path == "" {
			return cfg, nil
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, errors.Wrap(errors.ErrCodeStorage, err, "read config")
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, errors.Wrap(errors.ErrCodeInvalidFormat, err, "parse config")
	}
	return cfg, cfg.validate()
}

func (c Config) validate() error {
	if c.Frame.Width <= 0 || c.Frame.Height <= 0 {
		return errors.New(errors.ErrCodeInvalidInput, "frame dimensions must be positive")
	}
	switch c.Storage.Backend {
	case BackendFile, BackendRedis, BackendNone:
		return nil
	default:
		return errors.New(errors.ErrCodeUnsupported, "unknown storage backend: %s", c.Storage.Backend)
	}
}

// FrameSize returns the configured frame geometry.
func (c Config) FrameSize() geom.Frame {
	return geom.Frame{Width: c.Frame.Width, Height: c.Frame.Height}
}

// OpenSlot constructs the persistence slot the config selects. The
// context bounds backend connection checks.
func (c Config) OpenSlot(ctx context.Context) (storage.Slot, error) {
	switch c.Storage.Backend {
	case BackendNone:
		return storage.NullSlot{}, nil
	case BackendRedis:
		return storage.NewRedisSlot(ctx, storage.RedisConfig{
			Addr:     c.Storage.Redis.Addr,
			Password: c.Storage.Redis.Password,
			DB:       c.Storage.Redis.DB,
			Slot:     c.Storage.Slot,
		})
	default:
		return storage.NewFileSlot(c.Storage.Dir, c.Storage.Slot)
	}
}
