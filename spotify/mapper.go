//
// Date: 2026-10-15
// Author: Spicer Matthews <spicer@cloudmanic.com>
// Copyright (c) 2026 Cloudmanic Labs, LLC. All rights reserved.
//
// Description: Conversion of raw API payloads into normalized records.
//

package spotify

import (
	"sort"
	"strings"

	spotifyLib "github.com/zmb3/spotify/v2"
)

func joinArtists(names []string) string {
	return strings.Join(names, ", ")
}

func artistNames(artists []spotifyLib.SimpleArtist) []string {
	names := make([]string, 0, len(artists))
	for _, a := range artists {
		if a.Name != "" {
			names = append(names, a.Name)
		}
	}
	return names
}

// summarize maps a full track regardless of preview availability.
func summarize(ft *spotifyLib.FullTrack) TrackSummary {
	return TrackSummary{
		ID:          string(ft.ID),
		Name:        ft.Name,
		ArtistNames: artistNames(ft.Artists),
		PreviewURL:  ft.PreviewURL,
		Popularity:  clampInt(int(ft.Popularity), 0, 100),
		DurationMs:  nonNegative(int(ft.Duration)),
	}
}

// playableTrack maps ft to a TrackSummary, reporting false for tracks the
// UI cannot use: null, missing id or name, or no preview URL.
func playableTrack(ft *spotifyLib.FullTrack) (TrackSummary, bool) {
	if ft == nil {
		return TrackSummary{}, false
	}
	if ft.ID == "" || strings.TrimSpace(ft.Name) == "" || ft.PreviewURL == "" {
		return TrackSummary{}, false
	}
	return summarize(ft), true
}

// mapFeatures converts a descriptor payload. A nil or id-less payload is
// treated as absent.
func mapFeatures(af *spotifyLib.AudioFeatures) *AudioFeatureVector {
	if af == nil || af.ID == "" {
		return nil
	}

	key := int(af.Key)
	if key < KeyUnknown || key > 11 {
		key = KeyUnknown
	}
	mode := int(af.Mode)
	if mode != 0 && mode != 1 {
		mode = 0
	}

	return &AudioFeatureVector{
		Danceability:     unit(float64(af.Danceability)),
		Energy:           unit(float64(af.Energy)),
		Speechiness:      unit(float64(af.Speechiness)),
		Acousticness:     unit(float64(af.Acousticness)),
		Instrumentalness: unit(float64(af.Instrumentalness)),
		Liveness:         unit(float64(af.Liveness)),
		Valence:          unit(float64(af.Valence)),
		Tempo:            nonNegativeFloat(float64(af.Tempo)),
		Key:              key,
		Mode:             mode,
		TimeSignature:    nonNegative(int(af.TimeSignature)),
		Loudness:         float64(af.Loudness),
		DurationMs:       nonNegative(int(af.Duration)),
	}
}

// mapAnalysis converts an analysis payload. Segments and beats come back
// sorted by start time.
func mapAnalysis(aa *spotifyLib.AudioAnalysis) *AudioAnalysis {
	if aa == nil {
		return nil
	}

	out := &AudioAnalysis{
		Segments:     make([]Segment, 0, len(aa.Segments)),
		Beats:        make([]Beat, 0, len(aa.Beats)),
		SectionCount: len(aa.Sections),
	}

	for _, s := range aa.Segments {
		seg := Segment{
			StartSec:    nonNegativeFloat(s.Start),
			LoudnessMax: s.LoudnessMax,
			Confidence:  unit(s.Confidence),
		}
		seg.PitchCount = copy(seg.Pitches[:], s.Pitches)
		copy(seg.Timbre[:], s.Timbre)
		out.Segments = append(out.Segments, seg)
	}

	for _, b := range aa.Beats {
		out.Beats = append(out.Beats, Beat{
			StartSec:   nonNegativeFloat(b.Start),
			Confidence: unit(b.Confidence),
		})
	}

	sort.SliceStable(out.Segments, func(i, j int) bool {
		return out.Segments[i].StartSec < out.Segments[j].StartSec
	})
	sort.SliceStable(out.Beats, func(i, j int) bool {
		return out.Beats[i].StartSec < out.Beats[j].StartSec
	})

	return out
}

func unit(v float64) float64 {
	if v != v { // NaN
		return 0
	}
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func nonNegativeFloat(v float64) float64 {
	if v != v || v < 0 {
		return 0
	}
	return v
}

func nonNegative(v int) int {
	if v < 0 {
		return 0
	}
	return v
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
