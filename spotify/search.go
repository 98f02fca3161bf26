//
// Date: 2026-10-15
// Author: Spicer Matthews <spicer@cloudmanic.com>
// Copyright (c) 2026 Cloudmanic Labs, LLC. All rights reserved.
//
// Description: Public catalog track search.
//

package spotify

import (
	"context"
	"strings"

	"go.uber.org/zap"

	spotifyLib "github.com/zmb3/spotify/v2"
)

// SearchTracks runs one track search. limit bounds the page size and is
// clamped to [1, MaxSearchLimit]; zero or less means DefaultSearchLimit.
// Results without a preview URL are dropped. No further pages are fetched.
func (c *Catalog) SearchTracks(ctx context.Context, s *Session, query string, limit int) ([]TrackSummary, error) {
	const op = "search tracks"
	client, err := s.clientFor(op, SearchPublicCatalog)
	if err != nil {
		return nil, err
	}

	query = strings.TrimSpace(query)
	if query == "" {
		return []TrackSummary{}, nil
	}

	limit = searchLimit(limit)
	result, err := client.Search(ctx, query, spotifyLib.SearchTypeTrack, spotifyLib.Limit(limit))
	if err != nil {
		return nil, accessError(op, err)
	}

	tracks := []TrackSummary{}
	if result == nil || result.Tracks == nil {
		return tracks, nil
	}

	for i := range result.Tracks.Tracks {
		if ts, ok := playableTrack(&result.Tracks.Tracks[i]); ok {
			tracks = append(tracks, ts)
		}
	}

	c.logger.Debug("searched tracks",
		zap.Int("limit", limit),
		zap.Int("hits", len(result.Tracks.Tracks)),
		zap.Int("playable", len(tracks)),
	)
	return tracks, nil
}

func searchLimit(limit int) int {
	if limit <= 0 {
		return DefaultSearchLimit
	}
	return clampInt(limit, 1, MaxSearchLimit)
}
