//
// Date: 2026-10-15
// Author: Spicer Matthews <spicer@cloudmanic.com>
// Copyright (c) 2026 Cloudmanic Labs, LLC. All rights reserved.
//
// Description: TOML secrets file store.
//

package secrets

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// FileStore reads secrets from a TOML file of the form:
//
//	[spotify]
//	client_id = "..."
//	client_secret = "..."
//	app_url = "https://example.com"
type FileStore struct {
	Path string
}

// NewFileStore returns a store backed by the file at path.
func NewFileStore(path string) *FileStore {
	return &FileStore{Path: path}
}

// Load reads the file on every call. A missing file or missing keys yield
// ErrNotFound.
func (f *FileStore) Load() (Secrets, error) {
	if strings.TrimSpace(f.Path) == "" {
		return Secrets{}, ErrNotFound
	}

	if _, err := os.Stat(f.Path); errors.Is(err, fs.ErrNotExist) {
		return Secrets{}, fmt.Errorf("%w: %s", ErrNotFound, f.Path)
	}

	v := viper.New()
	v.SetConfigFile(f.Path)
	v.SetConfigType("toml")
	if err := v.ReadInConfig(); err != nil {
		return Secrets{}, fmt.Errorf("secrets: read %s: %w", f.Path, err)
	}

	s := Secrets{
		ClientID:     v.GetString("spotify.client_id"),
		ClientSecret: v.GetString("spotify.client_secret"),
		AppURL:       v.GetString("spotify.app_url"),
	}
	if !s.complete() {
		return Secrets{}, fmt.Errorf("%w: %s", ErrNotFound, f.Path)
	}
	return s, nil
}
