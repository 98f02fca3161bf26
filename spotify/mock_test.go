package spotify

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"

	spotifyLib "github.com/zmb3/spotify/v2"
)

// MockClient is a mock implementation of the Client interface for testing.
// Every call is counted so tests can assert no request was made.
type MockClient struct {
	CurrentUserFunc            func(ctx context.Context) (*spotifyLib.PrivateUser, error)
	CurrentUsersPlaylistsFunc  func(ctx context.Context, opts ...spotifyLib.RequestOption) (*spotifyLib.SimplePlaylistPage, error)
	GetPlaylistItemsFunc       func(ctx context.Context, id spotifyLib.ID, opts ...spotifyLib.RequestOption) (*spotifyLib.PlaylistItemPage, error)
	SearchFunc                 func(ctx context.Context, query string, t spotifyLib.SearchType, opts ...spotifyLib.RequestOption) (*spotifyLib.SearchResult, error)
	PlayerCurrentlyPlayingFunc func(ctx context.Context, opts ...spotifyLib.RequestOption) (*spotifyLib.CurrentlyPlaying, error)
	GetAudioFeaturesFunc       func(ctx context.Context, ids ...spotifyLib.ID) ([]*spotifyLib.AudioFeatures, error)
	GetAudioAnalysisFunc       func(ctx context.Context, id spotifyLib.ID) (*spotifyLib.AudioAnalysis, error)

	Calls int
}

func (m *MockClient) CurrentUser(ctx context.Context) (*spotifyLib.PrivateUser, error) {
	m.Calls++
	if m.CurrentUserFunc != nil {
		return m.CurrentUserFunc(ctx)
	}
	return &spotifyLib.PrivateUser{}, nil
}

func (m *MockClient) CurrentUsersPlaylists(ctx context.Context, opts ...spotifyLib.RequestOption) (*spotifyLib.SimplePlaylistPage, error) {
	m.Calls++
	if m.CurrentUsersPlaylistsFunc != nil {
		return m.CurrentUsersPlaylistsFunc(ctx, opts...)
	}
	return &spotifyLib.SimplePlaylistPage{}, nil
}

func (m *MockClient) GetPlaylistItems(ctx context.Context, id spotifyLib.ID, opts ...spotifyLib.RequestOption) (*spotifyLib.PlaylistItemPage, error) {
	m.Calls++
	if m.GetPlaylistItemsFunc != nil {
		return m.GetPlaylistItemsFunc(ctx, id, opts...)
	}
	return &spotifyLib.PlaylistItemPage{}, nil
}

func (m *MockClient) Search(ctx context.Context, query string, t spotifyLib.SearchType, opts ...spotifyLib.RequestOption) (*spotifyLib.SearchResult, error) {
	m.Calls++
	if m.SearchFunc != nil {
		return m.SearchFunc(ctx, query, t, opts...)
	}
	return &spotifyLib.SearchResult{}, nil
}

func (m *MockClient) PlayerCurrentlyPlaying(ctx context.Context, opts ...spotifyLib.RequestOption) (*spotifyLib.CurrentlyPlaying, error) {
	m.Calls++
	if m.PlayerCurrentlyPlayingFunc != nil {
		return m.PlayerCurrentlyPlayingFunc(ctx, opts...)
	}
	return nil, nil
}

func (m *MockClient) GetAudioFeatures(ctx context.Context, ids ...spotifyLib.ID) ([]*spotifyLib.AudioFeatures, error) {
	m.Calls++
	if m.GetAudioFeaturesFunc != nil {
		return m.GetAudioFeaturesFunc(ctx, ids...)
	}
	return nil, nil
}

func (m *MockClient) GetAudioAnalysis(ctx context.Context, id spotifyLib.ID) (*spotifyLib.AudioAnalysis, error) {
	m.Calls++
	if m.GetAudioAnalysisFunc != nil {
		return m.GetAudioAnalysisFunc(ctx, id)
	}
	return nil, nil
}

// decodeJSON fills v from a literal payload. Library types with unexported
// embedded pages or numeric wrappers are easiest to build this way.
func decodeJSON(t *testing.T, payload string, v any) {
	t.Helper()
	if err := json.Unmarshal([]byte(payload), v); err != nil {
		t.Fatalf("decode fixture: %v", err)
	}
}

// fullTrack builds a FullTrack. An empty preview yields a track with a null
// preview_url.
func fullTrack(t *testing.T, id, name, preview string) *spotifyLib.FullTrack {
	t.Helper()
	previewJSON := "null"
	if preview != "" {
		previewJSON = fmt.Sprintf("%q", preview)
	}
	payload := fmt.Sprintf(`{
		"id": %q,
		"name": %q,
		"artists": [{"name": "Artist One"}, {"name": "Artist Two"}],
		"preview_url": %s,
		"popularity": 61,
		"duration_ms": 200000
	}`, id, name, previewJSON)

	var ft spotifyLib.FullTrack
	decodeJSON(t, payload, &ft)
	return &ft
}

func playlistItem(track *spotifyLib.FullTrack) spotifyLib.PlaylistItem {
	return spotifyLib.PlaylistItem{Track: spotifyLib.PlaylistItemTrack{Track: track}}
}

func notFoundErr() error {
	return spotifyLib.Error{Status: 404, Message: "non existing id"}
}

func fullSession(m *MockClient) *Session {
	return NewSession(m, FullAccess)
}

func limitedSession(m *MockClient) *Session {
	return NewSession(m, LimitedAccess)
}
var _ Client = (*MockClient)(nil)
