package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog/log"

	"github.com/johiortiz/Proyecto2-Crud-Grupo-5/client"
)

// Mode selects the backend the SDK talks to.
type Mode string

const (
	ModeDevelopment Mode = "development"
	ModeProduction  Mode = "production"
)

// Config holds the runtime configuration of SDK consumers.
// Environment variables are parsed from the FENIX_ prefix.
type Config struct {
	Mode Mode `envconfig:"MODE" default:"production"`

	// DevOrigin is the origin of the local dev proxy; the API lives under
	// client.DevelopmentPath on it.
	DevOrigin string `envconfig:"DEV_ORIGIN" default:"http://localhost:5173"`
	ProdURL   string `envconfig:"PROD_URL" default:"https://fenix-pbad.onrender.com/api"`

	Timeout   time.Duration `envconfig:"TIMEOUT" default:"30s"`
	TokenFile string        `envconfig:"TOKEN_FILE" default:""`
	Debug     bool          `envconfig:"DEBUG" default:"false"`

	// BaseURL is derived from Mode by ResolveDefaults.
	BaseURL string `ignored:"true"`
}

// ResolveDefaults validates Mode and derives BaseURL and TokenFile.
func (c *Config) ResolveDefaults() error {
	c.Mode = Mode(strings.ToLower(strings.TrimSpace(string(c.Mode))))
	if c.Mode == "" {
		c.Mode = ModeProduction
	}
	switch c.Mode {
	case ModeDevelopment:
		c.BaseURL = strings.TrimRight(c.DevOrigin, "/") + client.DevelopmentPath
	case ModeProduction:
		c.BaseURL = strings.TrimRight(c.ProdURL, "/")
	default:
		return fmt.Errorf("unsupported MODE: %s", c.Mode)
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("TIMEOUT must be > 0, got %s", c.Timeout)
	}
	if c.TokenFile == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("resolve token file: %w", err)
		}
		c.TokenFile = filepath.Join(home, ".fenix", "token.json")
	}
	return nil
}

// New creates a new Config by parsing environment variables
// prefixed with FENIX_, e.g. FENIX_MODE, FENIX_TIMEOUT.
func New() (*Config, error) {
	var cfg Config

	if err := envconfig.Process("FENIX", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process environment variables: %w", err)
	}

	if err := cfg.ResolveDefaults(); err != nil {
		return nil, err
	}

	log.Info().
		Str("mode", string(cfg.Mode)).
		Str("base_url", cfg.BaseURL).
		Dur("timeout", cfg.Timeout).
		Str("token_file", cfg.TokenFile).
		Bool("debug", cfg.Debug).
		Msg("Configuration loaded")

	return &cfg, nil
}

// ClientConfig projects the runtime configuration onto the SDK's.
func (c *Config) ClientConfig() client.Config {
	return client.Config{BaseURL: c.BaseURL, Timeout: c.Timeout}
}

// IsDevelopment reports whether the dev proxy is in use.
func (c *Config) IsDevelopment() bool {
	return c.Mode == ModeDevelopment
}
