//
// Date: 2026-10-15
// Author: Spicer Matthews <spicer@cloudmanic.com>
// Copyright (c) 2026 Cloudmanic Labs, LLC. All rights reserved.
//
// Description: Current playback lookup.
//

package spotify

import (
	"context"
	"strings"
)

// GetCurrentlyPlaying returns the track in active playback, or nil when
// nothing is playing. Paused playback is reported the same way as no
// playback.
func (c *Catalog) GetCurrentlyPlaying(ctx context.Context, s *Session) (*CurrentlyPlaying, error) {
	const op = "currently playing"
	client, err := s.clientFor(op, ReadCurrentlyPlaying)
	if err != nil {
		return nil, err
	}

	current, err := client.PlayerCurrentlyPlaying(ctx)
	if err != nil {
		return nil, accessError(op, err)
	}

	if current == nil || !current.Playing || current.Item == nil {
		return nil, nil
	}
	if current.Item.ID == "" || strings.TrimSpace(current.Item.Name) == "" {
		return nil, nil
	}

	summary := summarize(current.Item)
	return &CurrentlyPlaying{
		TrackSummary: summary,
		ProgressMs:   clampInt(int(current.Progress), 0, summary.DurationMs),
	}, nil
}
