package display

import (
	"bytes"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"

	"github.com/cloudmanic/spotify-visualizer/chart"
	"github.com/cloudmanic/spotify-visualizer/spotify"
)

func init() {
	color.NoColor = true
}

func TestPrintPlaylists(t *testing.T) {
	var buf bytes.Buffer
	New(&buf).PrintPlaylists([]spotify.PlaylistRef{
		{Name: "Morning Mix", ID: "pl1"},
		{Name: "Focus", ID: "pl2"},
	})

	out := buf.String()
	assert.Contains(t, out, "Morning Mix")
	assert.Contains(t, out, "pl2")
	assert.Contains(t, out, "Total playlists: 2")
}

func TestPrintTracks(t *testing.T) {
	var buf bytes.Buffer
	New(&buf).PrintTracks("Results", []spotify.TrackSummary{
		{ID: "t1", Name: "Song", ArtistNames: []string{"A", "B"}, DurationMs: 185000, Popularity: 42},
	})

	out := buf.String()
	assert.Contains(t, out, "A, B")
	assert.Contains(t, out, "3:05")
	assert.Contains(t, out, "Total tracks: 1")
}

func TestPrintTracksEmpty(t *testing.T) {
	var buf bytes.Buffer
	New(&buf).PrintTracks("Results", nil)
	assert.Contains(t, buf.String(), "No tracks with previews found.")
}

func TestPrintNowPlaying(t *testing.T) {
	var buf bytes.Buffer
	New(&buf).PrintNowPlaying(nil)
	assert.Contains(t, buf.String(), "Nothing is playing")

	buf.Reset()
	New(&buf).PrintNowPlaying(&spotify.CurrentlyPlaying{
		TrackSummary: spotify.TrackSummary{ID: "t1", Name: "Song", ArtistNames: []string{"A"}, DurationMs: 120000},
		ProgressMs:   60000,
	})
	out := buf.String()
	assert.Contains(t, out, "Song")
	assert.Contains(t, out, "1:00 / 2:00")
}

func TestPrintFeaturesPartial(t *testing.T) {
	var buf bytes.Buffer
	New(&buf).PrintFeatures("Song", spotify.TrackFeatures{
		Vector: &spotify.AudioFeatureVector{Energy: 0.8, Danceability: 0.6, Valence: 0.4, Tempo: 120},
	})

	out := buf.String()
	assert.Contains(t, out, "Energy")
	assert.Contains(t, out, "+0.30")
	assert.Contains(t, out, "120 BPM")
	assert.Contains(t, out, "Audio analysis unavailable")
	assert.NotContains(t, out, "Audio features unavailable")
}

func TestPrintFeaturesNothing(t *testing.T) {
	var buf bytes.Buffer
	New(&buf).PrintFeatures("Song", spotify.TrackFeatures{})

	out := buf.String()
	assert.Contains(t, out, "Audio features unavailable")
	assert.Contains(t, out, "Audio analysis unavailable")
}

func TestBar(t *testing.T) {
	assert.Equal(t, "██░░", bar(0.5, 4))
	assert.Equal(t, "░░░░", bar(-1, 4))
	assert.Equal(t, "████", bar(3, 4))
}

func TestSparkline(t *testing.T) {
	assert.Equal(t, "▁█", sparkline([]chart.XY{{X: 0, Y: 0}, {X: 1, Y: 10}}))
	assert.Equal(t, "▁▁", sparkline([]chart.XY{{X: 0, Y: 0}, {X: 1, Y: 0}}))
}
