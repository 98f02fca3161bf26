//
// Date: 2026-10-15
// Author: Spicer Matthews <spicer@cloudmanic.com>
// Copyright (c) 2026 Cloudmanic Labs, LLC. All rights reserved.
//
// Description: Environment and .env secrets store.
//

package secrets

import (
	"os"

	"github.com/joho/godotenv"
)

const (
	EnvClientID     = "SPOTIFY_CLIENT_ID"
	EnvClientSecret = "SPOTIFY_CLIENT_SECRET"
	EnvAppURL       = "APP_URL"
)

// EnvStore reads secrets from the process environment, after loading any
// listed .env files. Variables already set are not overridden.
type EnvStore struct {
	Files []string
}

// NewEnvStore returns a store that loads the given .env files first.
func NewEnvStore(files ...string) *EnvStore {
	return &EnvStore{Files: files}
}

// Load returns ErrNotFound unless all three variables are set.
func (e *EnvStore) Load() (Secrets, error) {
	for _, f := range e.Files {
		// Load .env file if it exists (ignore error if not found)
		_ = godotenv.Load(f)
	}

	s := Secrets{
		ClientID:     os.Getenv(EnvClientID),
		ClientSecret: os.Getenv(EnvClientSecret),
		AppURL:       os.Getenv(EnvAppURL),
	}
	if !s.complete() {
		return Secrets{}, ErrNotFound
	}
	return s, nil
}
