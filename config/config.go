//
// Date: 2026-10-15
// Author: Spicer Matthews <spicer@cloudmanic.com>
// Copyright (c) 2026 Cloudmanic Labs, LLC. All rights reserved.
//
// Description: Application configuration from .env, environment and an optional file.
//

package config

import (
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	KeyClientID     = "SPOTIFY_CLIENT_ID"
	KeyClientSecret = "SPOTIFY_CLIENT_SECRET"
	KeyRedirectURI  = "SPOTIFY_REDIRECT_URI"
	KeyAuthMode     = "SPOTIFY_AUTH_MODE"
	KeySearchLimit  = "SPOTIFY_SEARCH_LIMIT"
	KeySecretsFile  = "SECRETS_FILE"
	KeyLogLevel     = "LOG_LEVEL"
	KeyLogFormat    = "LOG_FORMAT"
	KeyLogFile      = "LOG_FILE"

	AuthModeFull    = "full"
	AuthModeLimited = "limited"
)

// Config holds the settings the visualizer recognizes. ClientID and
// ClientSecret are sensitive and must never be logged.
type Config struct {
	ClientID     string
	ClientSecret string
	RedirectURI  string
	AuthMode     string
	SearchLimit  int
	SecretsFile  string
	LogLevel     string
	LogFormat    string
	LogFile      string
}

// PreferLimited reports whether app-only authorization was requested.
func (c *Config) PreferLimited() bool {
	return c.AuthMode == AuthModeLimited
}

// HasCredentials reports whether both client credentials are set.
func (c *Config) HasCredentials() bool {
	return c.ClientID != "" && c.ClientSecret != ""
}

// Load reads configuration. A .env file in the working directory is loaded
// first when present; environment variables then take effect, and path, if
// non-empty, names a config file (any format viper reads) whose keys are
// used where the environment is silent.
func Load(path string) (*Config, error) {
	// Load .env file if it exists (ignore error if not found)
	_ = godotenv.Load()

	v := viper.New()
	v.AutomaticEnv()
	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	mode := strings.ToLower(strings.TrimSpace(v.GetString(KeyAuthMode)))
	switch mode {
	case AuthModeFull, AuthModeLimited:
	default:
		return nil, fmt.Errorf("config: %s must be %q or %q, got %q", KeyAuthMode, AuthModeFull, AuthModeLimited, mode)
	}

	limit := v.GetInt(KeySearchLimit)
	if limit < 1 || limit > 50 {
		return nil, fmt.Errorf("config: %s must be between 1 and 50, got %d", KeySearchLimit, limit)
	}

	return &Config{
		ClientID:     v.GetString(KeyClientID),
		ClientSecret: v.GetString(KeyClientSecret),
		RedirectURI:  v.GetString(KeyRedirectURI),
		AuthMode:     mode,
		SearchLimit:  limit,
		SecretsFile:  v.GetString(KeySecretsFile),
		LogLevel:     v.GetString(KeyLogLevel),
		LogFormat:    v.GetString(KeyLogFormat),
		LogFile:      v.GetString(KeyLogFile),
	}, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault(KeyRedirectURI, "http://127.0.0.1:8888/callback")
	v.SetDefault(KeyAuthMode, AuthModeFull)
	v.SetDefault(KeySearchLimit, 20)
	v.SetDefault(KeySecretsFile, ".streamlit/secrets.toml")
	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyLogFormat, "console")
	v.SetDefault(KeyLogFile, "")
}
