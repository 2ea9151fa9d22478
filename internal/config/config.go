package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"

	"github.com/roadwatch-io/trackview/internal/tenant"
)

const (
	envPrefix             = "TRACKVIEW_"
	defaultTimeoutSeconds = 15
)

var errNoTenantsConfigured = errors.New("TRACKVIEW_TENANTS must define at least one tenant")

// TenantEntry is one credential profile as configured. The credential is the
// complete Authorization header value, supplied verbatim - never hardcoded.
type TenantEntry struct {
	Name       string `json:"name" validate:"required"`
	Credential string `json:"credential" validate:"required"`
}

// Config is the application configuration, loaded from TRACKVIEW_* environment
// variables (with .env support).
type Config struct {
	Env            string        `koanf:"env"`
	BaseURL        string        `koanf:"base_url" validate:"required,url"`
	TimeoutSeconds int           `koanf:"timeout_seconds" validate:"min=0"`
	TenantsJSON    string        `koanf:"tenants" validate:"required"`
	Tenants        []TenantEntry `koanf:"-" validate:"omitempty,dive"`
}

// Load reads configuration from environment variables using koanf.
// TRACKVIEW_TENANTS holds a JSON array of {"name","credential"} objects.
func Load() (*Config, error) {
	_ = godotenv.Load()

	k := koanf.New(".")
	err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, envPrefix))
	}), nil)
	if err != nil {
		return nil, fmt.Errorf("load env variables: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if cfg.Env == "" {
		cfg.Env = "dev"
	}
	if cfg.TimeoutSeconds == 0 {
		cfg.TimeoutSeconds = defaultTimeoutSeconds
	}
	if cfg.TenantsJSON != "" {
		if err := json.Unmarshal([]byte(cfg.TenantsJSON), &cfg.Tenants); err != nil {
			return nil, fmt.Errorf("parse TRACKVIEW_TENANTS: %w", err)
		}
	}

	validate := validator.New()
	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}
	if len(cfg.Tenants) == 0 {
		return nil, errNoTenantsConfigured
	}

	return cfg, nil
}

// Timeout returns the per-request timeout for gateway calls.
func (c *Config) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// TenantList converts the configured entries into registry tenants, keeping
// configuration order.
func (c *Config) TenantList() []tenant.Tenant {
	out := make([]tenant.Tenant, 0, len(c.Tenants))
	for _, e := range c.Tenants {
		out = append(out, tenant.Tenant{Name: e.Name, Credential: e.Credential})
	}
	return out
}
