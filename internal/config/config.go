// Package config loads the bridge configuration from a canvascal.yaml
// file and environment variables, with the environment taking precedence.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"canvascal/internal/google"
)

// Canvas holds the Canvas LMS connection settings.
type Canvas struct {
	BaseURL string `mapstructure:"base_url"`
	Token   string `mapstructure:"token"`
}

// Metrics holds the metrics server settings.
type Metrics struct {
	Enabled bool   `mapstructure:"enabled"`
	Addr    string `mapstructure:"addr"`
}

// Config is the full configuration for the canvascal server.
type Config struct {
	Canvas  Canvas        `mapstructure:"canvas"`
	Google  google.Config `mapstructure:"google"`
	Metrics Metrics       `mapstructure:"metrics"`
}

// envBindings maps config keys to the environment variables that override
// them.
var envBindings = map[string]string{
	"canvas.base_url":      "CANVAS_BASE_URL",
	"canvas.token":         "CANVAS_TOKEN",
	"google.client_id":     "GOOGLE_CLIENT_ID",
	"google.client_secret": "GOOGLE_CLIENT_SECRET",
	"google.redirect_uri":  "GOOGLE_REDIRECT_URI",
	"google.refresh_token": "GOOGLE_REFRESH_TOKEN",
	"metrics.enabled":      "METRICS_ENABLED",
	"metrics.addr":         "METRICS_ADDR",
}

// Load reads canvascal.yaml from the given directory (or the current
// directory and ~/.config/canvascal when dir is empty) and applies
// environment overrides. A missing config file is fine; missing required
// values are not.
func Load(dir string) (*Config, error) {
	v := viper.New()
	v.SetConfigName("canvascal")
	v.SetConfigType("yaml")
	if dir != "" {
		v.AddConfigPath(dir)
	} else {
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/canvascal")
	}

	v.SetDefault("metrics.enabled", true)
	v.SetDefault("metrics.addr", ":9090")

	for key, env := range envBindings {
		if err := v.BindEnv(key, env); err != nil {
			return nil, fmt.Errorf("failed to bind %s: %w", env, err)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	var missing []string
	if c.Canvas.BaseURL == "" {
		missing = append(missing, "CANVAS_BASE_URL")
	}
	if c.Canvas.Token == "" {
		missing = append(missing, "CANVAS_TOKEN")
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing required configuration: %s", strings.Join(missing, ", "))
	}
	return nil
}
