//
// Date: 2026-10-15
// Author: Spicer Matthews <spicer@cloudmanic.com>
// Copyright (c) 2026 Cloudmanic Labs, LLC. All rights reserved.
//
// Description: Catalog accessor shared state and construction.
//

package spotify

import "go.uber.org/zap"

// Catalog performs the read operations against a Session. It keeps no state
// between calls and never caches results; every method goes to the API.
//
// Each method checks the session's capabilities before touching the network
// and returns a *CapabilityError when the required one is missing.
type Catalog struct {
	logger *zap.Logger
}

// NewCatalog returns a Catalog. A nil logger disables logging.
func NewCatalog(logger *zap.Logger) *Catalog {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Catalog{logger: logger}
}
