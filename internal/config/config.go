// Package config loads the application configuration from the
// environment.
//
// Variables are read with the FINTRACK_ prefix (a `.env` file in the
// working directory is loaded first), mapped onto the Config struct with
// "." nesting and validated before the application starts.
//
//	FINTRACK_SERVER.PORT=8080      -> Config.Server.Port
//	FINTRACK_DATABASE.HOST=db      -> Config.Database.Host
//	FINTRACK_AUTH.TOKEN_TTL=12h    -> Config.Auth.TokenTTL
package config

import (
	"fmt"
	"net"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	// Loads .env into the process environment before anything reads it.
	_ "github.com/joho/godotenv/autoload"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix is the prefix every configuration variable carries.
const EnvPrefix = "FINTRACK_"

// ServiceName labels logs, traces and issued tokens.
const ServiceName = "fintrack"

// Config is the root configuration object.
//
// Observability is optional; DefaultObservabilityConfig fills it in
// when absent.
type Config struct {
	Primary       Primary              `koanf:"primary" validate:"required"`
	Server        ServerConfig         `koanf:"server" validate:"required"`
	Database      DatabaseConfig       `koanf:"database" validate:"required"`
	Redis         RedisConfig          `koanf:"redis" validate:"required"`
	Auth          AuthConfig           `koanf:"auth" validate:"required"`
	Integration   IntegrationConfig    `koanf:"integration"`
	Observability *ObservabilityConfig `koanf:"observability"`
}

// Primary holds the runtime environment name ("local", "development",
// "production").
type Primary struct {
	Env string `koanf:"env" validate:"required"`
}

// ServerConfig groups HTTP server settings. Timeouts are in seconds.
type ServerConfig struct {
	Port               string          `koanf:"port" validate:"required"`
	ReadTimeout        int             `koanf:"read_timeout" validate:"required"`
	WriteTimeout       int             `koanf:"write_timeout" validate:"required"`
	IdleTimeout        int             `koanf:"idle_timeout" validate:"required"`
	CORSAllowedOrigins []string        `koanf:"cors_allowed_origins" validate:"required"`
	RateLimit          RateLimitConfig `koanf:"rate_limit"`
}

// RateLimitConfig configures the per-IP request limiter. A zero Rate
// disables it.
type RateLimitConfig struct {
	Rate      float64       `koanf:"rate" validate:"gte=0"`
	Burst     int           `koanf:"burst" validate:"gte=0"`
	ExpiresIn time.Duration `koanf:"expires_in"`
}

// DatabaseConfig contains PostgreSQL connection parameters and pool
// tuning. ConnMaxLifetime and ConnMaxIdleTime are in seconds.
type DatabaseConfig struct {
	Host            string `koanf:"host" validate:"required"`
	Port            int    `koanf:"port" validate:"required"`
	User            string `koanf:"user" validate:"required"`
	Password        string `koanf:"password"`
	Name            string `koanf:"name" validate:"required"`
	SSLMode         string `koanf:"ssl_mode" validate:"required"`
	MaxOpenConns    int    `koanf:"max_open_conns" validate:"required"`
	MaxIdleConns    int    `koanf:"max_idle_conns" validate:"required"`
	ConnMaxLifetime int    `koanf:"conn_max_lifetime" validate:"required"`
	ConnMaxIdleTime int    `koanf:"conn_max_idle_time" validate:"required"`
}

// DSN builds the postgres:// connection URL. The password is escaped so
// reserved characters cannot break the URL.
func (d DatabaseConfig) DSN() string {
	hostPort := net.JoinHostPort(d.Host, strconv.Itoa(d.Port))
	return fmt.Sprintf("postgres://%s:%s@%s/%s?sslmode=%s",
		d.User,
		url.QueryEscape(d.Password),
		hostPort,
		d.Name,
		d.SSLMode,
	)
}

// RedisConfig holds the redis "host:port" address used by the cache
// client and the job queue.
type RedisConfig struct {
	Address string `koanf:"address" validate:"required"`
}

// AuthConfig configures access-token issuance.
type AuthConfig struct {
	SecretKey string        `koanf:"secret_key" validate:"required"`
	TokenTTL  time.Duration `koanf:"token_ttl"`
}

// DefaultTokenTTL applies when auth.token_ttl is unset.
const DefaultTokenTTL = 24 * time.Hour

// IntegrationConfig holds third-party credentials. An empty
// ResendAPIKey disables outgoing email.
type IntegrationConfig struct {
	ResendAPIKey string `koanf:"resend_api_key"`
	EmailFrom    string `koanf:"email_from"`
}

// DefaultEmailFrom is the sender used when integration.email_from is
// unset.
const DefaultEmailFrom = "Fintrack <onboarding@resend.dev>"

// LoadConfig reads the FINTRACK_ environment, validates it and applies
// defaults.
func LoadConfig() (*Config, error) {
	k := koanf.New(".")

	// FINTRACK_DATABASE.HOST -> database.host. Underscores inside a key
	// segment are kept (FINTRACK_SERVER.READ_TIMEOUT -> server.read_timeout).
	err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	}), nil)
	if err != nil {
		return nil, fmt.Errorf("could not load initial env variables: %w", err)
	}

	mainConfig := &Config{}
	if err := k.Unmarshal("", mainConfig); err != nil {
		return nil, fmt.Errorf("could not unmarshal main config: %w", err)
	}

	validate := validator.New()
	if err := validate.Struct(mainConfig); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	mainConfig.applyDefaults()

	if err := mainConfig.Observability.Validate(); err != nil {
		return nil, fmt.Errorf("invalid observability config: %w", err)
	}

	return mainConfig, nil
}

func (c *Config) applyDefaults() {
	if c.Observability == nil {
		c.Observability = DefaultObservabilityConfig()
	}

	// Service identity always comes from the binary and the primary env,
	// whatever the observability block says.
	c.Observability.ServiceName = ServiceName
	c.Observability.Environment = c.Primary.Env

	if c.Auth.TokenTTL <= 0 {
		c.Auth.TokenTTL = DefaultTokenTTL
	}
	if c.Integration.EmailFrom == "" {
		c.Integration.EmailFrom = DefaultEmailFrom
	}
	if c.Server.RateLimit.Rate > 0 {
		if c.Server.RateLimit.Burst == 0 {
			c.Server.RateLimit.Burst = int(c.Server.RateLimit.Rate)
		}
		if c.Server.RateLimit.ExpiresIn == 0 {
			c.Server.RateLimit.ExpiresIn = 3 * time.Minute
		}
	}
}
