package spotify

import (
	"errors"
	"testing"
)

func TestCapabilitiesByMode(t *testing.T) {
	full := NewSession(&MockClient{}, FullAccess)
	for _, c := range []Capability{ReadPlaylists, ReadCurrentlyPlaying, ReadPrivateLibrary, SearchPublicCatalog, ReadTrackFeatures} {
		if !full.Can(c) {
			t.Errorf("full session should carry %s", c)
		}
	}

	limited := NewSession(&MockClient{}, LimitedAccess)
	for _, c := range []Capability{ReadPlaylists, ReadCurrentlyPlaying, ReadPrivateLibrary} {
		if limited.Can(c) {
			t.Errorf("limited session must not carry %s", c)
		}
	}
	if !limited.Can(SearchPublicCatalog) || !limited.Can(ReadTrackFeatures) {
		t.Error("limited session should search and read features")
	}
}

func TestCapabilitiesString(t *testing.T) {
	got := NewSession(&MockClient{}, LimitedAccess).Capabilities().String()
	if got != "search-public-catalog,read-track-features" {
		t.Errorf("unexpected capability list %q", got)
	}
}

func TestModeString(t *testing.T) {
	if FullAccess.String() != "full" || LimitedAccess.String() != "limited" || Mode(0).String() != "none" {
		t.Error("unexpected mode names")
	}
}

func TestDisconnect(t *testing.T) {
	s := NewSession(&MockClient{}, FullAccess)
	if _, err := s.clientFor("op", SearchPublicCatalog); err != nil {
		t.Fatalf("new session should hand out its client: %v", err)
	}

	s.Disconnect()
	if len(s.Capabilities().List()) != 0 {
		t.Errorf("expected no capabilities, got %s", s.Capabilities())
	}
	if s.Mode() != FullAccess {
		t.Error("mode should be retained after disconnect")
	}

	_, err := s.clientFor("op", SearchPublicCatalog)
	if !errors.Is(err, ErrCapability) {
		t.Errorf("expected capability error, got %v", err)
	}
}

func TestNilSession(t *testing.T) {
	var s *Session
	_, err := s.clientFor("op", SearchPublicCatalog)
	if !errors.Is(err, ErrCapability) {
		t.Errorf("expected capability error, got %v", err)
	}
}
