//
// Date: 2026-10-15
// Author: Spicer Matthews <spicer@cloudmanic.com>
// Copyright (c) 2026 Cloudmanic Labs, LLC. All rights reserved.
//
// Description: Playlist listing and playlist track retrieval.
//

package spotify

import (
	"context"
	"strings"

	"go.uber.org/zap"

	spotifyLib "github.com/zmb3/spotify/v2"
)

// ExtractPlaylistID extracts the playlist ID from a Spotify URL or returns
// the input as-is if it's already just an ID.
func ExtractPlaylistID(input string) string {
	// If it's a full URL like https://open.spotify.com/playlist/37i9dQZF1DXcBWIGoYBM5M?si=xxx
	if strings.Contains(input, "spotify.com/playlist/") {
		parts := strings.Split(input, "/playlist/")
		if len(parts) > 1 {
			return strings.Split(parts[1], "?")[0]
		}
	}
	return strings.TrimSpace(input)
}

// ListUserPlaylists returns the current user's playlists in the order the
// API supplies them.
func (c *Catalog) ListUserPlaylists(ctx context.Context, s *Session) ([]PlaylistRef, error) {
	const op = "list playlists"
	client, err := s.clientFor(op, ReadPlaylists)
	if err != nil {
		return nil, err
	}

	refs := []PlaylistRef{}
	offset := 0

	for {
		page, err := client.CurrentUsersPlaylists(ctx, spotifyLib.Limit(playlistPageSize), spotifyLib.Offset(offset))
		if err != nil {
			return nil, accessError(op, err)
		}
		if page == nil {
			break
		}

		for _, p := range page.Playlists {
			refs = append(refs, PlaylistRef{Name: p.Name, ID: string(p.ID)})
		}

		// Check if there are more playlists to fetch
		if len(page.Playlists) < playlistPageSize {
			break
		}
		offset += playlistPageSize
	}

	c.logger.Debug("listed playlists", zap.Int("count", len(refs)))
	return refs, nil
}

// ListPlaylistTracks returns the playable tracks of a playlist. playlist may
// be an ID or an open.spotify.com URL. Null entries, local files, episodes
// and tracks without a preview URL are dropped; the rest keep their order.
func (c *Catalog) ListPlaylistTracks(ctx context.Context, s *Session, playlist string) ([]TrackSummary, error) {
	const op = "list playlist tracks"
	client, err := s.clientFor(op, ReadPlaylists)
	if err != nil {
		return nil, err
	}

	id := spotifyLib.ID(ExtractPlaylistID(playlist))
	tracks := []TrackSummary{}
	offset, dropped := 0, 0

	for {
		page, err := client.GetPlaylistItems(ctx, id, spotifyLib.Limit(playlistItemPageSize), spotifyLib.Offset(offset))
		if err != nil {
			return nil, accessError(op, err)
		}
		if page == nil {
			break
		}

		for _, item := range page.Items {
			if item.IsLocal {
				dropped++
				continue
			}
			ts, ok := playableTrack(item.Track.Track)
			if !ok {
				dropped++
				continue
			}
			tracks = append(tracks, ts)
		}

		if len(page.Items) < playlistItemPageSize {
			break
		}
		offset += playlistItemPageSize
	}

	c.logger.Debug("listed playlist tracks",
		zap.String("playlist_id", string(id)),
		zap.Int("count", len(tracks)),
		zap.Int("dropped", dropped),
	)
	return tracks, nil
}
