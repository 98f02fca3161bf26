//
// Date: 2026-10-15
// Author: Spicer Matthews <spicer@cloudmanic.com>
// Copyright (c) 2026 Cloudmanic Labs, LLC. All rights reserved.
//
// Description: Client interface and the normalized records handed to the UI.
//

package spotify

import (
	"context"

	spotifyLib "github.com/zmb3/spotify/v2"
)

// Client defines the subset of the Spotify Web API the visualizer reads from.
// This allows for mocking in tests.
type Client interface {
	CurrentUser(ctx context.Context) (*spotifyLib.PrivateUser, error)
	CurrentUsersPlaylists(ctx context.Context, opts ...spotifyLib.RequestOption) (*spotifyLib.SimplePlaylistPage, error)
	GetPlaylistItems(ctx context.Context, playlistID spotifyLib.ID, opts ...spotifyLib.RequestOption) (*spotifyLib.PlaylistItemPage, error)
	Search(ctx context.Context, query string, t spotifyLib.SearchType, opts ...spotifyLib.RequestOption) (*spotifyLib.SearchResult, error)
	PlayerCurrentlyPlaying(ctx context.Context, opts ...spotifyLib.RequestOption) (*spotifyLib.CurrentlyPlaying, error)
	GetAudioFeatures(ctx context.Context, ids ...spotifyLib.ID) ([]*spotifyLib.AudioFeatures, error)
	GetAudioAnalysis(ctx context.Context, id spotifyLib.ID) (*spotifyLib.AudioAnalysis, error)
}

var _ Client = (*spotifyLib.Client)(nil)

// PlaylistRef is a playlist as listed for the current user.
type PlaylistRef struct {
	Name string
	ID   string
}

// TrackSummary is a playable track. It is never built for a track that has
// no preview URL.
type TrackSummary struct {
	ID          string
	Name        string
	ArtistNames []string
	PreviewURL  string
	Popularity  int
	DurationMs  int
}

// Artist returns the artist names joined for display.
func (t TrackSummary) Artist() string {
	return joinArtists(t.ArtistNames)
}

// CurrentlyPlaying is the track in active playback and how far into it the
// listener is. PreviewURL may be empty here.
type CurrentlyPlaying struct {
	TrackSummary
	ProgressMs int
}

// AudioFeatureVector holds a track's scalar descriptors. The seven bounded
// magnitudes are always within [0,1].
type AudioFeatureVector struct {
	Danceability     float64
	Energy           float64
	Speechiness      float64
	Acousticness     float64
	Instrumentalness float64
	Liveness         float64
	Valence          float64

	Tempo         float64
	Key           int // 0-11, or KeyUnknown
	Mode          int // 0 minor, 1 major
	TimeSignature int
	Loudness      float64
	DurationMs    int
}

// KeyUnknown is the key value used when no key was detected.
const KeyUnknown = -1

// PitchClasses is the number of entries in a segment's pitch and timbre vectors.
const PitchClasses = 12

// Segment is one slice of the time-series analysis. Only the first
// PitchCount entries of Pitches were supplied by the API; the rest are zero.
type Segment struct {
	StartSec    float64
	LoudnessMax float64
	Pitches     [PitchClasses]float64
	PitchCount  int
	Timbre      [PitchClasses]float64
	Confidence  float64
}

// SuppliedPitches returns the pitch values the API actually reported.
func (s Segment) SuppliedPitches() []float64 {
	return s.Pitches[:clampInt(s.PitchCount, 0, PitchClasses)]
}

// PitchSum returns the sum of the segment's pitch class energies.
func (s Segment) PitchSum() float64 {
	var sum float64
	for _, p := range s.Pitches {
		sum += p
	}
	return sum
}

// Beat is a single beat marker.
type Beat struct {
	StartSec   float64
	Confidence float64
}

// AudioAnalysis is the time-series breakdown of a track. Segments and Beats
// are ordered by non-decreasing StartSec. Zero segments is valid.
type AudioAnalysis struct {
	Segments     []Segment
	Beats        []Beat
	SectionCount int
}

// TrackFeatures pairs the two independently fetched halves of a track's
// audio data. Either may be nil.
type TrackFeatures struct {
	Vector   *AudioFeatureVector
	Analysis *AudioAnalysis
}
