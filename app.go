//
// Date: 2026-10-15
// Author: Spicer Matthews <spicer@cloudmanic.com>
// Copyright (c) 2026 Cloudmanic Labs, LLC. All rights reserved.
//
// Description: Wiring of config, logging, authentication and the catalog.
//

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"

	"github.com/cloudmanic/spotify-visualizer/config"
	"github.com/cloudmanic/spotify-visualizer/display"
	"github.com/cloudmanic/spotify-visualizer/logger"
	"github.com/cloudmanic/spotify-visualizer/secrets"
	"github.com/cloudmanic/spotify-visualizer/spotify"
)

// authenticator is the part of spotify.Authenticator the commands use.
type authenticator interface {
	Authenticate(ctx context.Context, creds spotify.Credentials) (*spotify.Session, error)
	AuthenticateFromStoredSecrets(ctx context.Context, store spotify.SecretStore) (*spotify.Session, error)
}

// catalog is the part of spotify.Catalog the commands use.
type catalog interface {
	ListUserPlaylists(ctx context.Context, s *spotify.Session) ([]spotify.PlaylistRef, error)
	ListPlaylistTracks(ctx context.Context, s *spotify.Session, playlist string) ([]spotify.TrackSummary, error)
	SearchTracks(ctx context.Context, s *spotify.Session, query string, limit int) ([]spotify.TrackSummary, error)
	GetCurrentlyPlaying(ctx context.Context, s *spotify.Session) (*spotify.CurrentlyPlaying, error)
	GetTrackFeatures(ctx context.Context, s *spotify.Session, trackID string) (spotify.TrackFeatures, error)
}

// deps builds the collaborators once config and logging are known. Tests
// replace it.
type deps struct {
	out           io.Writer
	loadConfig    func(path string) (*config.Config, error)
	newLogger     func(conf *config.Config) (*zap.Logger, error)
	authenticator func(log *zap.Logger) authenticator
	catalog       func(log *zap.Logger) catalog
}

func defaultDeps() deps {
	return deps{
		out:        os.Stdout,
		loadConfig: config.Load,
		newLogger: func(conf *config.Config) (*zap.Logger, error) {
			return logger.New(logger.Config{
				Level:  conf.LogLevel,
				Format: conf.LogFormat,
				File:   conf.LogFile,
			})
		},
		authenticator: func(log *zap.Logger) authenticator {
			return spotify.NewAuthenticator(
				spotify.WithLogger(log),
				spotify.WithBrowserPrompt(spotify.PrintPrompt(os.Stdout)),
			)
		},
		catalog: func(log *zap.Logger) catalog {
			return spotify.NewCatalog(log)
		},
	}
}

// app is the state shared by every command invocation.
type app struct {
	conf    *config.Config
	logger  *zap.Logger
	auth    authenticator
	catalog catalog
	printer *display.Printer
}

// options are the persistent flags.
type options struct {
	configFile  string
	secretsFile string
	limited     bool
	stored      bool
}

func newApp(d deps, opts options) (*app, error) {
	conf, err := d.loadConfig(opts.configFile)
	if err != nil {
		return nil, err
	}
	if opts.secretsFile != "" {
		conf.SecretsFile = opts.secretsFile
	}
	if opts.limited {
		conf.AuthMode = config.AuthModeLimited
	}

	log, err := d.newLogger(conf)
	if err != nil {
		return nil, err
	}

	return &app{
		conf:    conf,
		logger:  log,
		auth:    d.authenticator(log),
		catalog: d.catalog(log),
		printer: display.New(d.out),
	}, nil
}

// connect opens a session. With stored secrets requested it tries the secrets
// file and then the environment, falling back to the configured credentials
// when neither has a complete entry.
func (a *app) connect(ctx context.Context, stored bool) (*spotify.Session, error) {
	if stored && !a.conf.PreferLimited() {
		store := secrets.Chain{
			secrets.NewFileStore(a.conf.SecretsFile),
			secrets.NewEnvStore(),
		}
		session, err := a.auth.AuthenticateFromStoredSecrets(ctx, store)
		if err == nil {
			return session, nil
		}
		if !errors.Is(err, spotify.ErrSecretsUnavailable) {
			return nil, err
		}
		a.logger.Debug("stored secrets unavailable, using configured credentials", zap.Error(err))
	}

	if !a.conf.HasCredentials() {
		return nil, fmt.Errorf("set %s and %s: %w", config.KeyClientID, config.KeyClientSecret,
			&spotify.AuthError{Kind: spotify.ErrMissingCredentials})
	}

	session, err := a.auth.Authenticate(ctx, spotify.Credentials{
		ClientID:      a.conf.ClientID,
		ClientSecret:  a.conf.ClientSecret,
		RedirectURI:   a.conf.RedirectURI,
		PreferLimited: a.conf.PreferLimited(),
	})
	if err != nil {
		return nil, err
	}

	if session.Mode() == spotify.LimitedAccess && !a.conf.PreferLimited() {
		a.logger.Warn("running with limited access; playlists and playback are unavailable")
	}
	return session, nil
}

func (a *app) close() {
	_ = a.logger.Sync()
}
