//
// Date: 2026-10-15
// Author: Spicer Matthews <spicer@cloudmanic.com>
// Copyright (c) 2026 Cloudmanic Labs, LLC. All rights reserved.
//
// Description: Authentication logic for the Spotify OAuth flows.
//

package spotify

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"syscall"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"

	spotifyLib "github.com/zmb3/spotify/v2"
	spotifyauth "github.com/zmb3/spotify/v2/auth"

	"github.com/cloudmanic/spotify-visualizer/secrets"
)

// Credentials are the inputs to Authenticate.
type Credentials struct {
	ClientID      string
	ClientSecret  string
	RedirectURI   string
	PreferLimited bool
}

// SecretStore is the external store AuthenticateFromStoredSecrets reads from.
type SecretStore interface {
	Load() (secrets.Secrets, error)
}

// Authenticator establishes sessions against the Spotify Web API.
type Authenticator struct {
	logger     *zap.Logger
	httpClient *http.Client
	authURL    string
	tokenURL   string
	apiBaseURL string
	prompt     func(string) error
}

// NewAuthenticator returns an Authenticator using the provider endpoints
// unless overridden by opts.
func NewAuthenticator(opts ...Option) *Authenticator {
	a := &Authenticator{
		logger:     zap.NewNop(),
		httpClient: http.DefaultClient,
		authURL:    spotifyauth.AuthURL,
		tokenURL:   spotifyauth.TokenURL,
		prompt:     defaultPrompt(),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Authenticate creates a session. Limited mode is used when requested or
// when the local callback address is already in use; otherwise the user is
// sent through the consent flow and the resulting token is verified with a
// current-user call before the session is returned.
func (a *Authenticator) Authenticate(ctx context.Context, creds Credentials) (*Session, error) {
	if strings.TrimSpace(creds.ClientID) == "" || strings.TrimSpace(creds.ClientSecret) == "" {
		return nil, authError(ErrMissingCredentials, nil)
	}

	if creds.PreferLimited {
		return a.authenticateLimited(ctx, creds)
	}

	session, err := a.authenticateFull(ctx, creds)
	if errors.Is(err, syscall.EADDRINUSE) {
		a.logger.Warn("callback address in use, falling back to limited access",
			zap.String("redirect_uri", redirectOrDefault(creds.RedirectURI)),
		)
		return a.authenticateLimited(ctx, creds)
	}
	return session, err
}

// AuthenticateFromStoredSecrets reads credentials and the app base URL from
// store and authenticates in full mode with {baseURL}/callback as redirect.
func (a *Authenticator) AuthenticateFromStoredSecrets(ctx context.Context, store SecretStore) (*Session, error) {
	if store == nil {
		return nil, authError(ErrSecretsUnavailable, errors.New("no secret store configured"))
	}

	s, err := store.Load()
	if err != nil {
		return nil, authError(ErrSecretsUnavailable, err)
	}
	if s.ClientID == "" || s.ClientSecret == "" || s.AppURL == "" {
		return nil, authError(ErrSecretsUnavailable, errors.New("stored secrets are incomplete"))
	}

	return a.Authenticate(ctx, Credentials{
		ClientID:     s.ClientID,
		ClientSecret: s.ClientSecret,
		RedirectURI:  strings.TrimRight(s.AppURL, "/") + callbackPath,
	})
}

// authenticateFull runs the authorization code flow. A bind failure on the
// callback address is returned as-is.
func (a *Authenticator) authenticateFull(ctx context.Context, creds Credentials) (*Session, error) {
	redirectURI := redirectOrDefault(creds.RedirectURI)
	state := uuid.NewString()

	cs, ln, err := listenForCallback(redirectURI, state, a.logger)
	if err != nil {
		if errors.Is(err, syscall.EADDRINUSE) {
			return nil, err
		}
		return nil, classifyProviderError(err)
	}
	cs.serve(ln)
	defer cs.shutdown()

	conf := &oauth2.Config{
		ClientID:     creds.ClientID,
		ClientSecret: creds.ClientSecret,
		RedirectURL:  redirectURI,
		Scopes:       fullScopes,
		Endpoint: oauth2.Endpoint{
			AuthURL:  a.authURL,
			TokenURL: a.tokenURL,
		},
	}

	consentURL := conf.AuthCodeURL(state, oauth2.SetAuthURLParam("show_dialog", "true"))
	if err := a.prompt(consentURL); err != nil {
		return nil, authError(ErrProviderRejected, fmt.Errorf("present consent URL: %w", err))
	}

	var res callbackResult
	select {
	case res = <-cs.results:
	case <-ctx.Done():
		return nil, fmt.Errorf("spotify auth: waiting for authorization: %w", ctx.Err())
	}
	if res.err != nil {
		return nil, classifyProviderError(res.err)
	}

	tok, err := conf.Exchange(a.withHTTPClient(ctx), res.code)
	if err != nil {
		return nil, classifyProviderError(err)
	}

	client := a.newAPIClient(conf.Client(a.oauthContext(), tok))

	// Verify the token before handing the session back.
	user, err := client.CurrentUser(ctx)
	if err != nil {
		return nil, authError(ErrProviderRejected, fmt.Errorf("verify current user: %w", err))
	}

	session := NewSession(client, FullAccess)
	session.user = user.DisplayName

	a.logger.Info("authenticated",
		zap.Stringer("mode", FullAccess),
		zap.String("user_id", user.ID),
	)
	return session, nil
}

// authenticateLimited runs the client credentials flow. It never involves
// the end user.
func (a *Authenticator) authenticateLimited(ctx context.Context, creds Credentials) (*Session, error) {
	conf := &clientcredentials.Config{
		ClientID:     creds.ClientID,
		ClientSecret: creds.ClientSecret,
		TokenURL:     a.tokenURL,
	}

	tok, err := conf.Token(a.withHTTPClient(ctx))
	if err != nil {
		return nil, classifyProviderError(err)
	}

	octx := a.oauthContext()
	httpClient := oauth2.NewClient(octx, oauth2.ReuseTokenSource(tok, conf.TokenSource(octx)))
	session := NewSession(a.newAPIClient(httpClient), LimitedAccess)

	a.logger.Info("authenticated", zap.Stringer("mode", LimitedAccess))
	return session, nil
}

func (a *Authenticator) withHTTPClient(ctx context.Context) context.Context {
	return context.WithValue(ctx, oauth2.HTTPClient, a.httpClient)
}

// oauthContext carries the configured HTTP client into oauth2. It outlives
// any single call because token refreshes reuse it.
func (a *Authenticator) oauthContext() context.Context {
	return a.withHTTPClient(context.Background())
}

func (a *Authenticator) newAPIClient(httpClient *http.Client) *spotifyLib.Client {
	if a.apiBaseURL != "" {
		return spotifyLib.New(httpClient, spotifyLib.WithBaseURL(a.apiBaseURL))
	}
	return spotifyLib.New(httpClient)
}

// classifyProviderError maps a token or callback failure onto the auth
// taxonomy.
func classifyProviderError(err error) *AuthError {
	var re *oauth2.RetrieveError
	if errors.As(err, &re) {
		detail := strings.ToLower(re.ErrorCode + " " + re.ErrorDescription + " " + string(re.Body))
		if strings.Contains(detail, "redirect") {
			return authError(ErrRedirectMismatch, err)
		}
		return authError(ErrProviderRejected, err)
	}
	if strings.Contains(strings.ToLower(err.Error()), "redirect") {
		return authError(ErrRedirectMismatch, err)
	}
	return authError(ErrProviderRejected, err)
}

func redirectOrDefault(uri string) string {
	if strings.TrimSpace(uri) == "" {
		return DefaultRedirectURI
	}
	return uri
}
