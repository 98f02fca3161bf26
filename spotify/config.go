//
// Date: 2026-10-15
// Author: Spicer Matthews <spicer@cloudmanic.com>
// Copyright (c) 2026 Cloudmanic Labs, LLC. All rights reserved.
//
// Description: Defaults, scopes and authenticator options.
//

package spotify

import (
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/fatih/color"
	"go.uber.org/zap"

	spotifyauth "github.com/zmb3/spotify/v2/auth"
)

const (
	DefaultRedirectURI = "http://127.0.0.1:8888/callback"
	DefaultSearchLimit = 20
	MaxSearchLimit     = 50

	playlistPageSize     = 50
	playlistItemPageSize = 100
	callbackPath         = "/callback"
)

// fullScopes are requested for user-delegated sessions.
var fullScopes = []string{
	spotifyauth.ScopeUserReadPlaybackState,
	spotifyauth.ScopeUserReadCurrentlyPlaying,
	spotifyauth.ScopePlaylistReadPrivate,
	spotifyauth.ScopePlaylistReadCollaborative,
	spotifyauth.ScopeUserLibraryRead,
}

// Option configures an Authenticator.
type Option func(*Authenticator)

// WithLogger sets the logger. Credentials are never logged.
func WithLogger(logger *zap.Logger) Option {
	return func(a *Authenticator) {
		if logger != nil {
			a.logger = logger
		}
	}
}

// WithHTTPClient sets the HTTP client used for token exchanges and as the
// transport underneath the authorized API client.
func WithHTTPClient(client *http.Client) Option {
	return func(a *Authenticator) {
		if client != nil {
			a.httpClient = client
		}
	}
}

// WithEndpoints overrides the provider's authorization and token URLs.
func WithEndpoints(authURL, tokenURL string) Option {
	return func(a *Authenticator) {
		if authURL != "" {
			a.authURL = authURL
		}
		if tokenURL != "" {
			a.tokenURL = tokenURL
		}
	}
}

// WithAPIBaseURL points the API client at an alternative base URL. It must
// end with a slash.
func WithAPIBaseURL(baseURL string) Option {
	return func(a *Authenticator) {
		a.apiBaseURL = baseURL
	}
}

// WithBrowserPrompt sets the function that presents the consent URL to the
// user. The default prints it to stdout.
func WithBrowserPrompt(prompt func(url string) error) Option {
	return func(a *Authenticator) {
		if prompt != nil {
			a.prompt = prompt
		}
	}
}

// PrintPrompt returns a prompt that writes the consent URL to w.
func PrintPrompt(w io.Writer) func(string) error {
	return func(url string) error {
		cyan := color.New(color.FgCyan)
		if _, err := cyan.Fprintln(w, "Please visit this URL to authenticate:"); err != nil {
			return err
		}
		_, err := fmt.Fprintln(w, url)
		return err
	}
}

func defaultPrompt() func(string) error {
	return PrintPrompt(os.Stdout)
}
