package config

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type EnvConfig struct {
	Port            string `envconfig:"PORT" default:"8080"`
	Environment     string `envconfig:"ENVIRONMENT" default:"development"`
	AuthSecret      string `envconfig:"AUTH_SECRET" required:"true"`
	Issuer          string `envconfig:"ISSUER" default:"hostpanel"`
	AccessTokenTTL  int    `envconfig:"ACCESS_TOKEN_TTL" default:"3600"`
	RefreshTokenTTL int    `envconfig:"REFRESH_TOKEN_TTL" default:"2592000"` // 30 days
	AdminEmail      string `envconfig:"ADMIN_EMAIL" default:"admin@localhost"`
	AdminPassword   string `envconfig:"ADMIN_PASSWORD" required:"true"`
	AdminName       string `envconfig:"ADMIN_NAME" default:"Administrator"`
	Storage         string `envconfig:"STORAGE" default:"memory"`
	RedisAddr       string `envconfig:"REDIS_ADDR" default:"localhost:6379"`
	RedisPassword   string `envconfig:"REDIS_PASSWORD"`
	RedisDB         int    `envconfig:"REDIS_DB" default:"0"`
}

func (c *EnvConfig) IsDev() bool {
	return c.Environment != "production"
}

func ValidateEnv() (*EnvConfig, error) {
	if os.Getenv("ENVIRONMENT") != "production" {
		if err := godotenv.Load(); err != nil {
			log.Println("no .env file found")
		} else {
			log.Println("loaded .env file")
		}
	}

	var cfg EnvConfig
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	var errs []string

	if len(cfg.AuthSecret) < 32 {
		errs = append(errs, "  AUTH_SECRET must be at least 32 characters")
	}
	if cfg.AdminPassword == "" {
		errs = append(errs, "  ADMIN_PASSWORD must not be empty")
	}
	switch cfg.Storage {
	case "memory", "redis":
	default:
		errs = append(errs, "  STORAGE must be one of: memory, redis")
	}

	if len(errs) > 0 {
		return nil, fmt.Errorf("environment validation failed:\n%s", strings.Join(errs, "\n"))
	}

	return &cfg, nil
}

func MaskSecret(secret string) string {
	if secret == "" {
		return "<not set>"
	}
	if len(secret) <= 8 {
		return "***"
	}
	return secret[:4] + "..." + secret[len(secret)-4:]
}

func (c *EnvConfig) Print(fmtr func(string, ...interface{})) {
	fmtr("Configuration:\n")
	fmtr("  Environment: %s\n", c.Environment)
	fmtr("  Port: %s\n", c.Port)
	fmtr("  Auth Secret: %s\n", MaskSecret(c.AuthSecret))
	fmtr("  Access TTL: %ds\n", c.AccessTokenTTL)
	fmtr("  Refresh TTL: %ds\n", c.RefreshTokenTTL)
	fmtr("  Admin: %s\n", c.AdminEmail)
	fmtr("  Storage: %s\n", c.Storage)
	if c.Storage == "redis" {
		fmtr("  Redis: %s (db=%d)\n", c.RedisAddr, c.RedisDB)
	}
}
