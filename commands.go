//
// Date: 2026-10-15
// Author: Spicer Matthews <spicer@cloudmanic.com>
// Copyright (c) 2026 Cloudmanic Labs, LLC. All rights reserved.
//
// Description: Command line interface.
//

package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/cloudmanic/spotify-visualizer/spotify"
)

// sessionCommand runs fn against a freshly authenticated session.
type sessionCommand func(ctx context.Context, a *app, s *spotify.Session, args []string) error

func newRootCmd(d deps) *cobra.Command {
	var opts options

	root := &cobra.Command{
		Use:           "spotify-visualizer",
		Short:         "Explore Spotify tracks and visualize their audio features.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := root.PersistentFlags()
	flags.StringVar(&opts.configFile, "config", "", "Path to a config file")
	flags.StringVar(&opts.secretsFile, "secrets-file", "", "Path to the TOML secrets file")
	flags.BoolVar(&opts.limited, "limited", false, "Use app-only access (search and audio features only)")
	flags.BoolVar(&opts.stored, "stored-secrets", false, "Authenticate with credentials from the secrets store")

	run := func(fn sessionCommand) func(*cobra.Command, []string) error {
		return func(cmd *cobra.Command, args []string) error {
			a, err := newApp(d, opts)
			if err != nil {
				return err
			}
			defer a.close()

			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}

			session, err := a.connect(ctx, opts.stored)
			if err != nil {
				a.logger.Error("authentication failed", zap.Error(err))
				return err
			}
			defer session.Disconnect()

			a.logger.Debug("session ready",
				zap.Stringer("mode", session.Mode()),
				zap.Stringer("capabilities", session.Capabilities()),
			)
			return fn(ctx, a, session, args)
		}
	}

	root.AddCommand(
		&cobra.Command{
			Use:   "playlists",
			Short: "List your playlists",
			Args:  cobra.NoArgs,
			RunE:  run(runPlaylists),
		},
		&cobra.Command{
			Use:   "tracks <playlist-id-or-url>",
			Short: "List the tracks of a playlist that have previews",
			Args:  cobra.ExactArgs(1),
			RunE:  run(runTracks),
		},
		&cobra.Command{
			Use:   "search <query>",
			Short: "Search the public catalog for tracks with previews",
			Args:  cobra.MinimumNArgs(1),
			RunE:  run(runSearch),
		},
		&cobra.Command{
			Use:   "now",
			Short: "Show the track you are listening to",
			Args:  cobra.NoArgs,
			RunE:  run(runNowPlaying),
		},
		&cobra.Command{
			Use:   "analyze [track-id]",
			Short: "Visualize a track's audio features; defaults to the playing track",
			Args:  cobra.MaximumNArgs(1),
			RunE:  run(runAnalyze),
		},
	)

	return root
}

func runPlaylists(ctx context.Context, a *app, s *spotify.Session, _ []string) error {
	playlists, err := a.catalog.ListUserPlaylists(ctx, s)
	if err != nil {
		return err
	}
	a.printer.PrintPlaylists(playlists)
	return nil
}

func runTracks(ctx context.Context, a *app, s *spotify.Session, args []string) error {
	tracks, err := a.catalog.ListPlaylistTracks(ctx, s, args[0])
	if err != nil {
		return err
	}
	a.printer.PrintTracks("🎵 Playlist Tracks", tracks)
	return nil
}

func runSearch(ctx context.Context, a *app, s *spotify.Session, args []string) error {
	query := strings.Join(args, " ")
	tracks, err := a.catalog.SearchTracks(ctx, s, query, a.conf.SearchLimit)
	if err != nil {
		return err
	}
	a.printer.PrintTracks(fmt.Sprintf("🔍 Results for %q", query), tracks)
	return nil
}

func runNowPlaying(ctx context.Context, a *app, s *spotify.Session, _ []string) error {
	current, err := a.catalog.GetCurrentlyPlaying(ctx, s)
	if err != nil {
		return err
	}
	a.printer.PrintNowPlaying(current)
	return nil
}

func runAnalyze(ctx context.Context, a *app, s *spotify.Session, args []string) error {
	var trackID, title string
	if len(args) == 1 {
		trackID = args[0]
		title = trackID
	} else {
		current, err := a.catalog.GetCurrentlyPlaying(ctx, s)
		if err != nil {
			return err
		}
		if current == nil {
			a.printer.PrintNowPlaying(nil)
			return nil
		}
		trackID = current.ID
		title = fmt.Sprintf("%s by %s", current.Name, current.Artist())
	}

	features, err := a.catalog.GetTrackFeatures(ctx, s, trackID)
	if err != nil {
		return err
	}
	a.printer.PrintFeatures(title, features)
	return nil
}
