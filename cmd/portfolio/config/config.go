package config

import (
	"time"

	"github.com/goliatone/go-persistence-bun"
)

// BaseConfig holds all configuration for the portfolio host.
type BaseConfig struct {
	Server      ServerConfig      `json:"server"`
	Auth        AuthConfig        `json:"auth"`
	Persistence PersistenceConfig `json:"persistence"`
	Cache       CacheConfig       `json:"cache"`
	Export      ExportConfig      `json:"export"`
	Features    FeaturesConfig    `json:"features"`
}

// ServerConfig holds HTTP server settings
type ServerConfig struct {
	Port           string        `json:"port" env:"SERVER_PORT" default:"8979"`
	Host           string        `json:"host" env:"SERVER_HOST" default:"localhost"`
	RequestTimeout time.Duration `json:"request_timeout" default:"15s"`
}

// AuthConfig configures the owner token signer and resolver.
type AuthConfig struct {
	SigningKey string        `json:"signing_key" env:"AUTH_SIGNING_KEY" default:"changeme-secret-key"`
	Issuer     string        `json:"issuer" default:"go-portfolio"`
	TokenTTL   time.Duration `json:"token_ttl" default:"24h"`
}

// PersistenceConfig implements persistence.Config interface
type PersistenceConfig struct {
	Debug          bool          `json:"debug" default:"false"`
	Driver         string        `json:"driver" env:"DB_DRIVER" default:"sqlite"`
	Server         string        `json:"server" env:"DB_SERVER" default:"file:portfolio.db?_journal_mode=WAL&cache=shared&_fk=1"`
	PingTimeout    time.Duration `json:"ping_timeout" default:"5s"`
	OtelIdentifier string        `json:"otel_identifier" default:"go-portfolio"`
}

func (c PersistenceConfig) GetDebug() bool                { return c.Debug }
func (c PersistenceConfig) GetDriver() string             { return c.Driver }
func (c PersistenceConfig) GetServer() string             { return c.Server }
func (c PersistenceConfig) GetPingTimeout() time.Duration { return c.PingTimeout }
func (c PersistenceConfig) GetOtelIdentifier() string     { return c.OtelIdentifier }

// CacheConfig toggles the repository read cache.
type CacheConfig struct {
	Enabled bool `json:"enabled" env:"CACHE_ENABLED" default:"true"`
}

// ExportConfig tunes PDF printing.
type ExportConfig struct {
	ChromePath string        `json:"chrome_path" env:"CHROME_PATH"`
	Timeout    time.Duration `json:"timeout" default:"60s"`
}

// FeaturesConfig lists static feature flags.
type FeaturesConfig struct {
	CustomSlug bool `json:"custom_slug" env:"FEATURE_CUSTOM_SLUG" default:"true"`
}

// GetPersistence returns persistence config
func (c *BaseConfig) GetPersistence() persistence.Config {
	return c.Persistence
}

// GetServer returns server config
func (c *BaseConfig) GetServer() ServerConfig {
	return c.Server
}

// GetAuth returns auth config
func (c *BaseConfig) GetAuth() AuthConfig {
	return c.Auth
}

// Validate implements config.Validable interface
func (c *BaseConfig) Validate() error {
	return nil
}
