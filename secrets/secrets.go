//
// Date: 2026-10-15
// Author: Spicer Matthews <spicer@cloudmanic.com>
// Copyright (c) 2026 Cloudmanic Labs, LLC. All rights reserved.
//
// Description: Stored app credentials read from a secrets file or the environment.
//

package secrets

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when a store has no matching entries.
var ErrNotFound = errors.New("secrets: no matching entries")

// Secrets are the stored app credentials and the public base URL the app is
// served from.
type Secrets struct {
	ClientID     string
	ClientSecret string
	AppURL       string
}

// complete reports whether all fields are set.
func (s Secrets) complete() bool {
	return s.ClientID != "" && s.ClientSecret != "" && s.AppURL != ""
}

// Store is anything secrets can be loaded from.
type Store interface {
	Load() (Secrets, error)
}

// Chain tries each store in order and returns the first complete set.
type Chain []Store

// Load returns the first store's secrets that load without error. When none
// do, the last error is returned wrapped around ErrNotFound.
func (c Chain) Load() (Secrets, error) {
	var last error
	for _, st := range c {
		s, err := st.Load()
		if err == nil {
			return s, nil
		}
		last = err
	}
	if last == nil || errors.Is(last, ErrNotFound) {
		return Secrets{}, ErrNotFound
	}
	return Secrets{}, fmt.Errorf("%w: %v", ErrNotFound, last)
}
