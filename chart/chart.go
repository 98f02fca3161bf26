//
// Date: 2026-10-15
// Author: Spicer Matthews <spicer@cloudmanic.com>
// Copyright (c) 2026 Cloudmanic Labs, LLC. All rights reserved.
//
// Description: Chart series derived from a track's audio features and analysis.
//

package chart

import (
	"math"

	"github.com/cloudmanic/spotify-visualizer/spotify"
)

const (
	histogramSegments = 50
	timelineBeats     = 100
	spaceSegments     = 100

	// TempoReference is the BPM the tempo gauge measures its delta against.
	TempoReference = 120.0
	// TempoMax is the top of the tempo gauge.
	TempoMax = 200.0

	metricBaseline = 0.5
)

// PitchNames labels the twelve histogram bins.
var PitchNames = [spotify.PitchClasses]string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}

// Point is a labelled value.
type Point struct {
	Label string
	Value float64
}

// XY is a point on a time axis.
type XY struct {
	X float64
	Y float64
}

// Metric is a headline figure. Delta is only meaningful when HasDelta is set.
type Metric struct {
	Label    string
	Value    float64
	Unit     string
	Delta    float64
	HasDelta bool
}

// Band is a shaded range on a gauge.
type Band struct {
	Lo float64
	Hi float64
}

// Gauge is a dial with a reference mark and a threshold needle.
type Gauge struct {
	Label     string
	Value     float64
	Reference float64
	Delta     float64
	Min       float64
	Max       float64
	Bands     []Band
	Threshold float64
}

// Bin is one bar of a histogram. Lo is inclusive; Hi is exclusive except on
// the last bin.
type Bin struct {
	Label string
	Lo    float64
	Hi    float64
	Count int
}

// SpacePoint places a segment in time, loudness and pitch energy.
type SpacePoint struct {
	Time       float64
	Loudness   float64
	PitchSum   float64
	Confidence float64
}

// Radar returns the seven bounded descriptors in a fixed order.
func Radar(v *spotify.AudioFeatureVector) ([]Point, bool) {
	if v == nil {
		return nil, false
	}
	return []Point{
		{"danceability", v.Danceability},
		{"energy", v.Energy},
		{"speechiness", v.Speechiness},
		{"acousticness", v.Acousticness},
		{"instrumentalness", v.Instrumentalness},
		{"liveness", v.Liveness},
		{"valence", v.Valence},
	}, true
}

// Metrics returns energy, danceability and valence with their distance from
// the midpoint, followed by tempo.
func Metrics(v *spotify.AudioFeatureVector) ([]Metric, bool) {
	if v == nil {
		return nil, false
	}
	withDelta := func(label string, value float64) Metric {
		return Metric{Label: label, Value: value, Delta: value - metricBaseline, HasDelta: true}
	}
	return []Metric{
		withDelta("Energy", v.Energy),
		withDelta("Danceability", v.Danceability),
		withDelta("Valence", v.Valence),
		{Label: "Tempo", Value: v.Tempo, Unit: "BPM"},
	}, true
}

// TempoGauge places the track's tempo on a 0-200 BPM dial. The threshold
// needle marks energy scaled to the same range.
func TempoGauge(v *spotify.AudioFeatureVector) (Gauge, bool) {
	if v == nil {
		return Gauge{}, false
	}
	return Gauge{
		Label:     "Tempo (BPM)",
		Value:     v.Tempo,
		Reference: TempoReference,
		Delta:     v.Tempo - TempoReference,
		Min:       0,
		Max:       TempoMax,
		Bands:     []Band{{0, 60}, {60, 120}, {120, TempoMax}},
		Threshold: v.Energy * TempoMax,
	}, true
}

// PitchHistogram bins every reported pitch value of the first segments into
// twelve equal-width bins spanning the observed range. When all values are
// equal the range is widened by half a unit each side. Segments without
// pitches contribute nothing.
func PitchHistogram(a *spotify.AudioAnalysis) ([]Bin, bool) {
	if a == nil || len(a.Segments) == 0 {
		return nil, false
	}

	segs := a.Segments
	if len(segs) > histogramSegments {
		segs = segs[:histogramSegments]
	}

	values := make([]float64, 0, len(segs)*spotify.PitchClasses)
	for i := range segs {
		values = append(values, segs[i].SuppliedPitches()...)
	}
	if len(values) == 0 {
		return nil, false
	}

	lo, hi := values[0], values[0]
	for _, v := range values[1:] {
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	if lo == hi {
		lo -= 0.5
		hi += 0.5
	}

	n := len(PitchNames)
	width := (hi - lo) / float64(n)
	bins := make([]Bin, n)
	for i := range bins {
		bins[i] = Bin{
			Label: PitchNames[i],
			Lo:    lo + float64(i)*width,
			Hi:    lo + float64(i+1)*width,
		}
	}
	bins[n-1].Hi = hi

	for _, v := range values {
		idx := int((v - lo) / (hi - lo) * float64(n))
		if idx >= n {
			idx = n - 1
		}
		if idx < 0 {
			idx = 0
		}
		bins[idx].Count++
	}
	return bins, true
}

// BeatTimeline returns start time against confidence for the first beats.
func BeatTimeline(a *spotify.AudioAnalysis) ([]XY, bool) {
	if a == nil || len(a.Beats) == 0 {
		return nil, false
	}
	beats := a.Beats
	if len(beats) > timelineBeats {
		beats = beats[:timelineBeats]
	}
	out := make([]XY, len(beats))
	for i, b := range beats {
		out[i] = XY{X: b.StartSec, Y: b.Confidence}
	}
	return out, true
}

// Waveform returns every segment's peak loudness shifted so the quietest
// segment sits at zero.
func Waveform(a *spotify.AudioAnalysis) ([]XY, bool) {
	if a == nil || len(a.Segments) == 0 {
		return nil, false
	}
	floor := a.Segments[0].LoudnessMax
	for _, s := range a.Segments[1:] {
		floor = math.Min(floor, s.LoudnessMax)
	}
	out := make([]XY, len(a.Segments))
	for i, s := range a.Segments {
		out[i] = XY{X: s.StartSec, Y: s.LoudnessMax - floor}
	}
	return out, true
}

// FeatureSpace returns the first segments as points in time, loudness and
// pitch energy, carrying confidence for colouring.
func FeatureSpace(a *spotify.AudioAnalysis) ([]SpacePoint, bool) {
	if a == nil || len(a.Segments) == 0 {
		return nil, false
	}
	segs := a.Segments
	if len(segs) > spaceSegments {
		segs = segs[:spaceSegments]
	}
	out := make([]SpacePoint, len(segs))
	for i, s := range segs {
		out[i] = SpacePoint{
			Time:       s.StartSec,
			Loudness:   s.LoudnessMax,
			PitchSum:   s.PitchSum(),
			Confidence: s.Confidence,
		}
	}
	return out, true
}
