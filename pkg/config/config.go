// Package config loads the pagenav tool configuration and manages the
// start-page side file that lives next to the application model.
//
// Tool settings come from three layers, later layers winning:
// built-in defaults, an optional pagenav.toml in the working directory,
// and PAGENAV_* environment variables (a .env file is honored when
// present).
package config

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"

	"github.com/derivative-programming/pagenav/pkg/cache"
)

// DefaultFileName is the tool configuration file looked up in the
// working directory.
const DefaultFileName = "pagenav.toml"

// Cache backend names accepted in configuration.
const (
	BackendNone  = "none"
	BackendFile  = "file"
	BackendRedis = "redis"
	BackendMongo = "mongo"
)

// Config aggregates tool configuration values.
type Config struct {
	// Model is the path to the AppDNA model file.
	Model string `toml:"model"`

	// StartPageFile is the path to the start-page side file. When empty
	// it defaults to <model>.config.json next to the model.
	StartPageFile string `toml:"start_page_file"`

	// OutputDir is where computed side files are written.
	OutputDir string `toml:"output_dir"`

	Cache CacheConfig `toml:"cache"`
}

// CacheConfig selects and parameterizes the cache backend.
type CacheConfig struct {
	Backend       string `toml:"backend"` // none|file|redis|mongo
	Dir           string `toml:"dir"`     // file backend directory
	RedisAddr     string `toml:"redis_addr"`
	RedisPassword string `toml:"redis_password"`
	RedisDB       int    `toml:"redis_db"`
	MongoURI      string `toml:"mongo_uri"`
	MongoDatabase string `toml:"mongo_database"`
}

// Load reads configuration from the given TOML file (skipped when the
// file does not exist), then applies environment overrides and
// defaults. Pass an empty path to use [DefaultFileName].
func Load(path string) (Config, error) {
	// A .env next to the working directory is a convenience for the
	// serve mode; absence is not an error.
	_ = godotenv.Load()

	if path == "" {
		path = DefaultFileName
	}

	cfg := defaults()

	if _, err := os.Stat(path); err == nil {
		if _, err := toml.DecodeFile(path, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse %s: %w", path, err)
		}
	}

	applyEnv(&cfg)

	if err := validate(cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func defaults() Config {
	return Config{
		OutputDir: ".",
		Cache: CacheConfig{
			Backend:       BackendFile,
			RedisAddr:     "localhost:6379",
			MongoURI:      "mongodb://localhost:27017",
			MongoDatabase: "pagenav",
		},
	}
}

func applyEnv(cfg *Config) {
	setString(&cfg.Model, "PAGENAV_MODEL")
	setString(&cfg.StartPageFile, "PAGENAV_START_PAGE_FILE")
	setString(&cfg.OutputDir, "PAGENAV_OUTPUT_DIR")
	setString(&cfg.Cache.Backend, "PAGENAV_CACHE_BACKEND")
	setString(&cfg.Cache.Dir, "PAGENAV_CACHE_DIR")
	setString(&cfg.Cache.RedisAddr, "PAGENAV_REDIS_ADDR")
	setString(&cfg.Cache.RedisPassword, "PAGENAV_REDIS_PASSWORD")
	setString(&cfg.Cache.MongoURI, "PAGENAV_MONGO_URI")
	setString(&cfg.Cache.MongoDatabase, "PAGENAV_MONGO_DATABASE")

	if v := os.Getenv("PAGENAV_REDIS_DB"); v != "" {
		if db, err := strconv.Atoi(v); err == nil {
			cfg.Cache.RedisDB = db
		}
	}
}

func setString(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

func validate(cfg Config) error {
	switch cfg.Cache.Backend {
	case BackendNone, BackendFile, BackendRedis, BackendMongo:
		return nil
	default:
		return fmt.Errorf("unknown cache backend %q (must be one of: none, file, redis, mongo)", cfg.Cache.Backend)
	}
}

// ResolveStartPageFile returns the configured start-page file path, or
// the conventional <model-dir>/app-dna.config.json default.
func (c Config) ResolveStartPageFile() string {
	if c.StartPageFile != "" {
		return c.StartPageFile
	}
	return filepath.Join(filepath.Dir(c.Model), "app-dna.config.json")
}

// OpenCache constructs the configured cache backend. The file backend
// falls back to the user cache directory when no directory is set.
func (c CacheConfig) OpenCache(ctx context.Context) (cache.Cache, error) {
	switch c.Backend {
	case BackendNone:
		return cache.NewNullCache(), nil
	case BackendFile:
		dir := c.Dir
		if dir == "" {
			base, err := os.UserCacheDir()
			if err != nil {
				return nil, fmt.Errorf("resolve cache dir: %w", err)
			}
			dir = filepath.Join(base, "pagenav")
		}
		return cache.NewFileCache(dir)
	case BackendRedis:
		return cache.NewRedisCache(ctx, c.RedisAddr, c.RedisPassword, c.RedisDB)
	case BackendMongo:
		return cache.NewMongoCache(ctx, c.MongoURI, c.MongoDatabase, "artifacts")
	default:
		return nil, fmt.Errorf("unknown cache backend %q", c.Backend)
	}
}
