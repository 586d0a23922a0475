package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/caarlos0/env/v6"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Config holds all configuration for the workforce module. DATABASE_URL is
// the only hard requirement; everything else has a working default.
type Config struct {
	// MongoDB
	DatabaseURL  string `env:"DATABASE_URL,required"`
	DatabaseName string `env:"DATABASE_NAME" envDefault:"workforce_db"`

	// Redis change-event store; disabled when RedisAddr is empty.
	RedisAddr     string `env:"REDIS_ADDR" envDefault:""`
	RedisPassword string `env:"REDIS_PASSWORD" envDefault:""`
	RedisDB       int    `env:"REDIS_DB" envDefault:"0"`

	// Auth for mutating routes. When disabled the token endpoint still
	// exists but middleware lets every request through.
	AuthEnabled       bool          `env:"AUTH_ENABLED" envDefault:"false"`
	JWTSecretKey      string        `env:"JWT_SECRET_KEY" envDefault:""`
	JWTIssuer         string        `env:"JWT_ISSUER" envDefault:"workforce-api"`
	AccessTokenTTL    time.Duration `env:"ACCESS_TOKEN_TTL" envDefault:"1h"`
	AdminUser         string        `env:"ADMIN_USER" envDefault:"admin"`
	AdminPasswordHash string        `env:"ADMIN_PASSWORD_HASH" envDefault:""`
}

// LoadConfig loads configuration from environment variables and validates
// the combinations that env tags cannot express.
func LoadConfig() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to load configuration from environment: %w", err)
	}

	if cfg.AuthEnabled {
		if cfg.JWTSecretKey == "" {
			return nil, errors.New("JWT_SECRET_KEY is required when AUTH_ENABLED=true")
		}
		if len(cfg.JWTSecretKey) < 32 {
			return nil, errors.New("JWT_SECRET_KEY must be at least 32 characters")
		}
		if cfg.AdminPasswordHash == "" {
			return nil, errors.New("ADMIN_PASSWORD_HASH is required when AUTH_ENABLED=true")
		}
	}
	if cfg.AccessTokenTTL <= 0 {
		cfg.AccessTokenTTL = time.Hour
	}

	return cfg, nil
}

// MongoClientOptions builds the driver options for DATABASE_URL.
func (c *Config) MongoClientOptions() *options.ClientOptions {
	return options.Client().
		ApplyURI(c.DatabaseURL).
		SetServerSelectionTimeout(10 * time.Second)
}

// RedisEnabled reports whether a Redis change-event store should be wired.
func (c *Config) RedisEnabled() bool {
	return c.RedisAddr != ""
}
