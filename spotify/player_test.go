package spotify

import (
	"context"
	"errors"
	"testing"

	spotifyLib "github.com/zmb3/spotify/v2"
)

func currentlyPlaying(t *testing.T, payload string) *spotifyLib.CurrentlyPlaying {
	t.Helper()
	var cp spotifyLib.CurrentlyPlaying
	decodeJSON(t, payload, &cp)
	return &cp
}

const playingTrackJSON = `{
	"id": "t1",
	"name": "Now Song",
	"artists": [{"name": "Band"}],
	"preview_url": null,
	"popularity": 40,
	"duration_ms": 180000
}`

func TestGetCurrentlyPlaying_Playing(t *testing.T) {
	mock := &MockClient{
		PlayerCurrentlyPlayingFunc: func(ctx context.Context, opts ...spotifyLib.RequestOption) (*spotifyLib.CurrentlyPlaying, error) {
			return currentlyPlaying(t, `{"is_playing": true, "progress_ms": 42000, "item": `+playingTrackJSON+`}`), nil
		},
	}

	cp, err := NewCatalog(nil).GetCurrentlyPlaying(context.Background(), fullSession(mock))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cp == nil {
		t.Fatal("expected a playing track")
	}
	if cp.ID != "t1" || cp.Name != "Now Song" || cp.Artist() != "Band" {
		t.Errorf("unexpected track: %+v", cp)
	}
	if cp.ProgressMs != 42000 || cp.DurationMs != 180000 {
		t.Errorf("unexpected progress %d/%d", cp.ProgressMs, cp.DurationMs)
	}
}

func TestGetCurrentlyPlaying_ClampsProgress(t *testing.T) {
	mock := &MockClient{
		PlayerCurrentlyPlayingFunc: func(ctx context.Context, opts ...spotifyLib.RequestOption) (*spotifyLib.CurrentlyPlaying, error) {
			return currentlyPlaying(t, `{"is_playing": true, "progress_ms": 999999, "item": `+playingTrackJSON+`}`), nil
		},
	}

	cp, err := NewCatalog(nil).GetCurrentlyPlaying(context.Background(), fullSession(mock))
	if err != nil || cp == nil {
		t.Fatalf("unexpected result: %v, %v", cp, err)
	}
	if cp.ProgressMs != cp.DurationMs {
		t.Errorf("expected progress clamped to %d, got %d", cp.DurationMs, cp.ProgressMs)
	}
}

func TestGetCurrentlyPlaying_NothingActive(t *testing.T) {
	tests := []struct {
		name string
		resp func() *spotifyLib.CurrentlyPlaying
	}{
		{"no content", func() *spotifyLib.CurrentlyPlaying { return nil }},
		{"paused", func() *spotifyLib.CurrentlyPlaying {
			return currentlyPlaying(t, `{"is_playing": false, "progress_ms": 1000, "item": `+playingTrackJSON+`}`)
		}},
		{"no item", func() *spotifyLib.CurrentlyPlaying {
			return currentlyPlaying(t, `{"is_playing": true, "progress_ms": 1000, "item": null}`)
		}},
		{"item without id", func() *spotifyLib.CurrentlyPlaying {
			return currentlyPlaying(t, `{"is_playing": true, "progress_ms": 1000, "item": {"id": "", "name": "Song", "duration_ms": 1000}}`)
		}},
		{"item without name", func() *spotifyLib.CurrentlyPlaying {
			return currentlyPlaying(t, `{"is_playing": true, "progress_ms": 1000, "item": {"id": "t1", "name": "  ", "duration_ms": 1000}}`)
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := &MockClient{
				PlayerCurrentlyPlayingFunc: func(ctx context.Context, opts ...spotifyLib.RequestOption) (*spotifyLib.CurrentlyPlaying, error) {
					return tt.resp(), nil
				},
			}
			cp, err := NewCatalog(nil).GetCurrentlyPlaying(context.Background(), fullSession(mock))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if cp != nil {
				t.Errorf("expected nothing playing, got %+v", cp)
			}
		})
	}
}

func TestGetCurrentlyPlaying_LimitedSession(t *testing.T) {
	mock := &MockClient{}
	_, err := NewCatalog(nil).GetCurrentlyPlaying(context.Background(), limitedSession(mock))

	var capErr *CapabilityError
	if !errors.As(err, &capErr) || capErr.Required != ReadCurrentlyPlaying || capErr.Mode != LimitedAccess {
		t.Fatalf("expected capability error for currently playing, got %v", err)
	}
	if mock.Calls != 0 {
		t.Errorf("expected no API calls, got %d", mock.Calls)
	}
}

func TestGetCurrentlyPlaying_APIError(t *testing.T) {
	mock := &MockClient{
		PlayerCurrentlyPlayingFunc: func(ctx context.Context, opts ...spotifyLib.RequestOption) (*spotifyLib.CurrentlyPlaying, error) {
			return nil, errors.New("connection reset")
		},
	}
	_, err := NewCatalog(nil).GetCurrentlyPlaying(context.Background(), fullSession(mock))
	if !errors.Is(err, ErrProviderRejected) {
		t.Errorf("expected provider rejection, got %v", err)
	}
}
