package config

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/joho/godotenv"
	"github.com/sethvargo/go-envconfig"
)

// devJWTSecret is the signing secret used outside production.
const devJWTSecret = "change-me"

// Storage drivers accepted by STORAGE_DRIVER.
const (
	DriverMemory = "memory"
	DriverSQLite = "sqlite"
	DriverRedis  = "redis"
	DriverMongo  = "mongo"
)

type Config struct {
	Port      string        `env:"PORT,      default=8080"`
	Env       string        `env:"ENV,       default=development"`
	LogLevel  string        `env:"LOG_LEVEL, default=info"`
	JWTSecret string        `env:"JWT_SECRET, default=change-me"`
	TokenTTL  time.Duration `env:"TOKEN_TTL, default=0"`

	PublicOrigin          string `env:"PUBLIC_ORIGIN, default=http://localhost:8080"`
	AllowAnonymousRecipes bool   `env:"ALLOW_ANONYMOUS_RECIPES, default=false"`

	Storage StorageConfig
}

type StorageConfig struct {
	Driver       string `env:"STORAGE_DRIVER, default=memory"`
	ResetCorrupt bool   `env:"STORAGE_RESET_CORRUPT, default=true"`

	SQLitePath string `env:"SQLITE_PATH, default=recipebook.db"`
	Mongo      MongoConfig
	Redis      RedisConfig
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=recipe_book"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

// IsProduction reports whether ENV selects production behaviour (JSON logs).
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

// LoadDotenv adds the variables of the given files (default ".env") to the
// environment. Variables already set win and missing files are skipped.
func LoadDotenv(paths ...string) error {
	if len(paths) == 0 {
		paths = []string{".env"}
	}
	for _, p := range paths {
		if err := godotenv.Load(p); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("config: %s: %w", p, err)
		}
	}
	return nil
}

// Load reads configuration from .env and environment variables and panics on
// failure.
func Load() *Config {
	if err := LoadDotenv(); err != nil {
		panic(err.Error())
	}
	cfg, err := LoadWith(context.Background(), envconfig.OsLookuper())
	if err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return cfg
}

// LoadWith reads configuration through l and validates it.
func LoadWith(ctx context.Context, l envconfig.Lookuper) (*Config, error) {
	var cfg Config
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{Target: &cfg, Lookuper: l}); err != nil {
		return nil, err
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	switch c.Storage.Driver {
	case DriverMemory, DriverSQLite, DriverRedis, DriverMongo:
	default:
		return fmt.Errorf("STORAGE_DRIVER %q: want memory, sqlite, redis or mongo", c.Storage.Driver)
	}
	if c.TokenTTL < 0 {
		return fmt.Errorf("TOKEN_TTL must not be negative")
	}
	if c.IsProduction() && (c.JWTSecret == "" || c.JWTSecret == devJWTSecret) {
		return fmt.Errorf("JWT_SECRET must be set when ENV=production")
	}
	return nil
}
