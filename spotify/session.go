//
// Date: 2026-10-15
// Author: Spicer Matthews <spicer@cloudmanic.com>
// Copyright (c) 2026 Cloudmanic Labs, LLC. All rights reserved.
//
// Description: Authorization modes, capabilities and the per-user session.
//

package spotify

import (
	"strings"
	"sync"
)

// Mode is the kind of authorization a session was created with.
type Mode int

const (
	// FullAccess is user-delegated authorization.
	FullAccess Mode = iota + 1
	// LimitedAccess is app-only (client credentials) authorization.
	LimitedAccess
)

// String returns a readable name for the mode.
func (m Mode) String() string {
	switch m {
	case FullAccess:
		return "full"
	case LimitedAccess:
		return "limited"
	default:
		return "none"
	}
}

// Capability is a single permission a session may carry.
type Capability uint8

const (
	ReadPlaylists Capability = 1 << iota
	ReadCurrentlyPlaying
	ReadPrivateLibrary
	SearchPublicCatalog
	ReadTrackFeatures
)

// Capabilities is a set of Capability values.
type Capabilities Capability

const (
	limitedCapabilities = Capabilities(SearchPublicCatalog | ReadTrackFeatures)
	fullCapabilities    = Capabilities(ReadPlaylists | ReadCurrentlyPlaying | ReadPrivateLibrary | SearchPublicCatalog | ReadTrackFeatures)
)

var capabilityNames = []struct {
	c    Capability
	name string
}{
	{ReadPlaylists, "read-playlists"},
	{ReadCurrentlyPlaying, "read-currently-playing"},
	{ReadPrivateLibrary, "read-private-library"},
	{SearchPublicCatalog, "search-public-catalog"},
	{ReadTrackFeatures, "read-track-features"},
}

// String returns the capability name.
func (c Capability) String() string {
	for _, n := range capabilityNames {
		if n.c == c {
			return n.name
		}
	}
	return "unknown"
}

// Has reports whether the set contains c.
func (s Capabilities) Has(c Capability) bool {
	return Capability(s)&c == c
}

// List returns the capabilities in the set in declaration order.
func (s Capabilities) List() []Capability {
	var out []Capability
	for _, n := range capabilityNames {
		if s.Has(n.c) {
			out = append(out, n.c)
		}
	}
	return out
}

// String returns a comma separated list of capability names.
func (s Capabilities) String() string {
	list := s.List()
	names := make([]string, 0, len(list))
	for _, c := range list {
		names = append(names, c.String())
	}
	return strings.Join(names, ",")
}

func capabilitiesFor(mode Mode) Capabilities {
	switch mode {
	case FullAccess:
		return fullCapabilities
	case LimitedAccess:
		return limitedCapabilities
	default:
		return 0
	}
}

// Session is the live authorization context for one UI session. It is owned
// by the caller and passed into every Catalog operation.
type Session struct {
	mu     sync.RWMutex
	client Client
	mode   Mode
	caps   Capabilities
	user   string
}

// NewSession wraps an authorized client. The capability set is derived from
// mode alone.
func NewSession(client Client, mode Mode) *Session {
	return &Session{
		client: client,
		mode:   mode,
		caps:   capabilitiesFor(mode),
	}
}

// Mode returns the authorization mode.
func (s *Session) Mode() Mode {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.mode
}

// Capabilities returns the current capability set. It is empty after Disconnect.
func (s *Session) Capabilities() Capabilities {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.caps
}

// Can reports whether the session currently carries c.
func (s *Session) Can(c Capability) bool {
	return s.Capabilities().Has(c)
}

// UserName returns the display name verified at login. It is empty for
// limited sessions.
func (s *Session) UserName() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user
}

// Disconnect invalidates the session.
func (s *Session) Disconnect() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.client = nil
	s.caps = 0
}

// clientFor returns the client if the session carries c.
func (s *Session) clientFor(op string, c Capability) (Client, error) {
	if s == nil {
		return nil, &CapabilityError{Op: op, Required: c}
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.caps.Has(c) || s.client == nil {
		return nil, &CapabilityError{Op: op, Required: c, Mode: s.mode}
	}
	return s.client, nil
}
