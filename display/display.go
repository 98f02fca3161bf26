//
// Date: 2026-10-15
// Author: Spicer Matthews <spicer@cloudmanic.com>
// Copyright (c) 2026 Cloudmanic Labs, LLC. All rights reserved.
//
// Description: Terminal rendering of playlists, tracks and audio charts.
//

package display

import (
	"fmt"
	"io"
	"math"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/cloudmanic/spotify-visualizer/chart"
	"github.com/cloudmanic/spotify-visualizer/spotify"
)

const barWidth = 30

// Printer writes formatted output to W.
type Printer struct {
	W io.Writer
}

// New returns a Printer writing to w.
func New(w io.Writer) *Printer {
	return &Printer{W: w}
}

func (p *Printer) heading(title string) {
	fmt.Fprintln(p.W)
	color.New(color.FgCyan).Fprintln(p.W, title)
	fmt.Fprintln(p.W)
}

func (p *Printer) total(label string, n int) {
	fmt.Fprintln(p.W)
	color.New(color.FgGreen, color.Bold).Fprintf(p.W, "%s: %d\n", label, n)
}

func (p *Printer) newTable() table.Writer {
	t := table.NewWriter()
	t.SetOutputMirror(p.W)
	t.SetStyle(table.StyleRounded)
	return t
}

// PrintPlaylists displays the user's playlists in a formatted table.
func (p *Printer) PrintPlaylists(playlists []spotify.PlaylistRef) {
	p.heading("🎵 Your Spotify Playlists")

	t := p.newTable()
	t.AppendHeader(table.Row{"#", "Name", "Playlist ID"})
	for i, pl := range playlists {
		t.AppendRow(table.Row{
			i + 1,
			color.New(color.Bold).Sprint(pl.Name),
			color.HiBlackString(pl.ID),
		})
	}
	t.Render()

	p.total("Total playlists", len(playlists))
}

// PrintTracks displays playable tracks with their preview links.
func (p *Printer) PrintTracks(title string, tracks []spotify.TrackSummary) {
	p.heading(title)

	if len(tracks) == 0 {
		color.New(color.FgYellow).Fprintln(p.W, "No tracks with previews found.")
		return
	}

	t := p.newTable()
	t.AppendHeader(table.Row{"#", "Name", "Artist", "Length", "Popularity", "Track ID"})
	for i, tr := range tracks {
		t.AppendRow(table.Row{
			i + 1,
			color.New(color.Bold).Sprint(tr.Name),
			tr.Artist(),
			formatDuration(tr.DurationMs),
			tr.Popularity,
			color.HiBlackString(tr.ID),
		})
	}
	t.Render()

	p.total("Total tracks", len(tracks))
}

// PrintNowPlaying shows the active track and a progress bar, or a notice when
// nothing is playing.
func (p *Printer) PrintNowPlaying(cp *spotify.CurrentlyPlaying) {
	if cp == nil {
		color.New(color.FgYellow).Fprintln(p.W, "Nothing is playing right now.")
		return
	}

	p.heading("▶ Now Playing")
	color.New(color.Bold).Fprintf(p.W, "%s\n", cp.Name)
	fmt.Fprintf(p.W, "%s\n", cp.Artist())

	ratio := 0.0
	if cp.DurationMs > 0 {
		ratio = float64(cp.ProgressMs) / float64(cp.DurationMs)
	}
	fmt.Fprintf(p.W, "%s %s / %s\n", bar(ratio, barWidth), formatDuration(cp.ProgressMs), formatDuration(cp.DurationMs))
	if cp.PreviewURL != "" {
		fmt.Fprintf(p.W, "Preview: %s\n", cp.PreviewURL)
	}
}

// PrintFeatures renders every chart that has data and a notice for each half
// of the track's data that is unavailable.
func (p *Printer) PrintFeatures(track string, f spotify.TrackFeatures) {
	p.heading("🎧 Audio Visualization: " + track)

	if metrics, ok := chart.Metrics(f.Vector); ok {
		t := p.newTable()
		t.AppendHeader(table.Row{"Metric", "Value", "Δ vs 0.5"})
		for _, m := range metrics {
			value := fmt.Sprintf("%.2f", m.Value)
			delta := ""
			if m.HasDelta {
				delta = signed(m.Delta)
			}
			if m.Unit != "" {
				value = fmt.Sprintf("%.0f %s", m.Value, m.Unit)
			}
			t.AppendRow(table.Row{m.Label, value, delta})
		}
		t.Render()
	} else {
		unavailable(p.W, "Audio features")
	}

	if radar, ok := chart.Radar(f.Vector); ok {
		p.heading("Audio Features")
		for _, pt := range radar {
			fmt.Fprintf(p.W, "%-17s %s %.2f\n", pt.Label, bar(pt.Value, barWidth), pt.Value)
		}
	}

	if g, ok := chart.TempoGauge(f.Vector); ok {
		p.heading(g.Label)
		fmt.Fprintf(p.W, "%s %.0f (%s vs %.0f)\n", bar(g.Value/g.Max, barWidth), g.Value, signed(g.Delta), g.Reference)
		fmt.Fprintf(p.W, "energy threshold %.0f\n", g.Threshold)
	}

	if bins, ok := chart.PitchHistogram(f.Analysis); ok {
		p.heading("Frequency Analysis")
		peak := 0
		for _, b := range bins {
			peak = max(peak, b.Count)
		}
		for _, b := range bins {
			fmt.Fprintf(p.W, "%-3s %s %d\n", b.Label, bar(float64(b.Count)/float64(max(peak, 1)), barWidth), b.Count)
		}
	} else {
		unavailable(p.W, "Audio analysis")
	}

	if beats, ok := chart.BeatTimeline(f.Analysis); ok {
		p.heading("Beat Timeline")
		fmt.Fprintf(p.W, "%d beats, %.1fs to %.1fs, mean confidence %.2f\n",
			len(beats), beats[0].X, beats[len(beats)-1].X, meanY(beats))
	}

	if wave, ok := chart.Waveform(f.Analysis); ok {
		p.heading("Waveform")
		fmt.Fprintln(p.W, sparkline(wave))
	}

	if space, ok := chart.FeatureSpace(f.Analysis); ok {
		t := p.newTable()
		t.AppendHeader(table.Row{"Time (s)", "Loudness", "Pitch Sum", "Confidence"})
		for _, sp := range space[:min(len(space), 10)] {
			t.AppendRow(table.Row{
				fmt.Sprintf("%.2f", sp.Time),
				fmt.Sprintf("%.1f", sp.Loudness),
				fmt.Sprintf("%.2f", sp.PitchSum),
				fmt.Sprintf("%.2f", sp.Confidence),
			})
		}
		p.heading("Feature Space")
		t.Render()
	}
}

func unavailable(w io.Writer, what string) {
	color.New(color.FgYellow).Fprintf(w, "%s unavailable for this track.\n", what)
}

func formatDuration(ms int) string {
	d := time.Duration(ms) * time.Millisecond
	return fmt.Sprintf("%d:%02d", int(d.Minutes()), int(d.Seconds())%60)
}

func signed(v float64) string {
	return fmt.Sprintf("%+.2f", v)
}

// bar renders ratio, clamped to [0,1], as a fixed-width bar.
func bar(ratio float64, width int) string {
	if math.IsNaN(ratio) || ratio < 0 {
		ratio = 0
	}
	if ratio > 1 {
		ratio = 1
	}
	filled := int(math.Round(ratio * float64(width)))
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
}

var sparks = []rune("▁▂▃▄▅▆▇█")

// sparkline compresses a series into one character per point.
func sparkline(pts []chart.XY) string {
	peak := 0.0
	for _, pt := range pts {
		peak = math.Max(peak, pt.Y)
	}
	var sb strings.Builder
	for _, pt := range pts {
		idx := 0
		if peak > 0 {
			idx = int(pt.Y / peak * float64(len(sparks)-1))
		}
		sb.WriteRune(sparks[idx])
	}
	return sb.String()
}

func meanY(pts []chart.XY) float64 {
	var sum float64
	for _, pt := range pts {
		sum += pt.Y
	}
	return sum / float64(len(pts))
}
