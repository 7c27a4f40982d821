package config

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"

	"github.com/eadirect/ea-catalog/internal/infrastructure/db/mongo"
	"github.com/eadirect/ea-catalog/internal/infrastructure/db/postgres"
	"github.com/eadirect/ea-catalog/internal/infrastructure/db/redis"
)

type Config struct {
	Port        string        `env:"PORT,         default=8080"`
	Env         string        `env:"ENV,          default=development"`
	LogLevel    string        `env:"LOG_LEVEL,    default=info"`
	JWTSecret   string        `env:"JWT_SECRET"`
	TokenTTL    time.Duration `env:"TOKEN_TTL,    default=24h"`
	CORSOrigins []string      `env:"CORS_ORIGINS, default=*"`

	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT, default=10s"`

	Postgres PostgresConfig
	Mongo    MongoConfig
	Redis    RedisConfig
	Admin    AdminConfig
}

type PostgresConfig struct {
	Host         string `env:"DB_HOST,           default=localhost"`
	Port         int    `env:"DB_PORT,           default=5432"`
	Name         string `env:"DB_NAME,           default=ea_catalog"`
	User         string `env:"DB_USER,           default=postgres"`
	Password     string `env:"DB_PASSWORD"`
	SSLMode      string `env:"DB_SSLMODE,        default=disable"`
	MaxOpenConns int    `env:"DB_MAX_OPEN_CONNS, default=20"`
	MaxIdleConns int    `env:"DB_MAX_IDLE_CONNS, default=5"`
	LogLevel     string `env:"DB_LOG_LEVEL,      default=warn"`
}

type MongoConfig struct {
	URI             string `env:"MONGO_URI,        default=mongodb://localhost:27017"`
	Database        string `env:"MONGO_DB,         default=ea_catalog"`
	ActivityWorkers int    `env:"ACTIVITY_WORKERS, default=4"`
}

type RedisConfig struct {
	Addr           string        `env:"REDIS_ADDR,      default=localhost:6379"`
	Password       string        `env:"REDIS_PASSWORD"`
	DB             int           `env:"REDIS_DB,        default=0"`
	IdempotencyTTL time.Duration `env:"IDEMPOTENCY_TTL, default=24h"`
}

// AdminConfig seeds an administrator at startup when Email and Password are
// both set.
type AdminConfig struct {
	Email    string `env:"ADMIN_EMAIL"`
	Password string `env:"ADMIN_PASSWORD"`
	Name     string `env:"ADMIN_NAME, default=Administrator"`
}

func (a AdminConfig) Enabled() bool {
	return a.Email != "" && a.Password != ""
}

// Load reads configuration from environment variables using go-envconfig.
func Load(ctx context.Context) (*Config, error) {
	return load(ctx, envconfig.OsLookuper())
}

func load(ctx context.Context, lookuper envconfig.Lookuper) (*Config, error) {
	var cfg Config
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{Target: &cfg, Lookuper: lookuper}); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if c.JWTSecret == "" && !c.IsDevelopment() {
		return errors.New("config: JWT_SECRET is required outside development")
	}
	if c.TokenTTL <= 0 {
		return fmt.Errorf("config: TOKEN_TTL must be positive, got %s", c.TokenTTL)
	}
	return nil
}

func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}

func (c *Config) PostgresSettings() postgres.Config {
	return postgres.Config{
		Host:         c.Postgres.Host,
		Port:         c.Postgres.Port,
		Name:         c.Postgres.Name,
		User:         c.Postgres.User,
		Password:     c.Postgres.Password,
		SSLMode:      c.Postgres.SSLMode,
		MaxOpenConns: c.Postgres.MaxOpenConns,
		MaxIdleConns: c.Postgres.MaxIdleConns,
		LogLevel:     c.Postgres.LogLevel,
	}
}

func (c *Config) MongoSettings() mongo.Config {
	return mongo.Config{URI: c.Mongo.URI, Database: c.Mongo.Database}
}

func (c *Config) RedisSettings() redis.Config {
	return redis.Config{Addr: c.Redis.Addr, Password: c.Redis.Password, DB: c.Redis.DB}
}
