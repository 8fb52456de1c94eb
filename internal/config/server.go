package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// ServerConfig holds the HTTP backend settings.
type ServerConfig struct {
	Addr          string        `yaml:"addr"`
	JWTSecret     string        `yaml:"jwt_secret"`
	TokenTTL      time.Duration `yaml:"token_ttl"`
	DatabaseURL   string        `yaml:"database_url"`
	RedisAddr     string        `yaml:"redis_addr"`
	AdminPassword string        `yaml:"admin_password"`
	StatsCacheTTL time.Duration `yaml:"stats_cache_ttl"`
	// AuthRate is the number of login/register attempts allowed per second
	// per client, with AuthBurst extra.
	AuthRate  float64 `yaml:"auth_rate"`
	AuthBurst int     `yaml:"auth_burst"`
	// RequestTimeout bounds each HTTP request.
	RequestTimeout time.Duration `yaml:"request_timeout"`
}

// DefaultServerConfig returns the settings used when nothing is configured.
func DefaultServerConfig() ServerConfig {
	return ServerConfig{
		Addr:           ":5001",
		TokenTTL:       24 * time.Hour,
		StatsCacheTTL:  30 * time.Second,
		AuthRate:       1,
		AuthBurst:      5,
		RequestTimeout: 60 * time.Second,
	}
}

// Environment variables that override file settings.
const (
	EnvAddr          = "PORTAL_ADDR"
	EnvJWTSecret     = "PORTAL_JWT_SECRET"
	EnvDatabaseURL   = "DATABASE_URL"
	EnvRedisAddr     = "REDIS_ADDR"
	EnvAdminPassword = "PORTAL_ADMIN_PASSWORD"
)

// LoadServerConfig reads an optional YAML file, then applies environment
// overrides. An empty path skips the file.
func LoadServerConfig(path string) (ServerConfig, error) {
	cfg := DefaultServerConfig()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("failed to read file %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse YAML: %w", err)
		}
	}

	for env, dst := range map[string]*string{
		EnvAddr:          &cfg.Addr,
		EnvJWTSecret:     &cfg.JWTSecret,
		EnvDatabaseURL:   &cfg.DatabaseURL,
		EnvRedisAddr:     &cfg.RedisAddr,
		EnvAdminPassword: &cfg.AdminPassword,
	} {
		if v := os.Getenv(env); v != "" {
			*dst = v
		}
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("server configuration validation failed: %w", err)
	}
	return cfg, nil
}

// Validate checks the settings needed to start the server.
func (c ServerConfig) Validate() error {
	if c.Addr == "" {
		return fmt.Errorf("addr is required")
	}
	if c.JWTSecret == "" {
		return fmt.Errorf("jwt secret is required (set %s)", EnvJWTSecret)
	}
	if c.TokenTTL <= 0 {
		return fmt.Errorf("token ttl must be positive")
	}
	if c.AuthRate <= 0 || c.AuthBurst <= 0 {
		return fmt.Errorf("auth rate and burst must be positive")
	}
	return nil
}
