//
// Date: 2026-10-15
// Author: Spicer Matthews <spicer@cloudmanic.com>
// Copyright (c) 2026 Cloudmanic Labs, LLC. All rights reserved.
//
// Description: Error taxonomy for authentication and catalog access.
//

package spotify

import (
	"errors"
	"fmt"
	"net/http"

	spotifyLib "github.com/zmb3/spotify/v2"
)

var (
	ErrMissingCredentials = errors.New("missing client credentials")
	ErrRedirectMismatch   = errors.New("redirect URI rejected by provider")
	ErrProviderRejected   = errors.New("provider rejected the request")
	ErrSecretsUnavailable = errors.New("stored secrets unavailable")
	ErrNotFound           = errors.New("resource not found")
	ErrCapability         = errors.New("capability not granted")
)

// AuthError is returned by the Authenticator. Kind is one of
// ErrMissingCredentials, ErrRedirectMismatch, ErrProviderRejected or
// ErrSecretsUnavailable.
type AuthError struct {
	Kind error
	Err  error
}

func (e *AuthError) Error() string {
	if e.Err == nil {
		return "spotify auth: " + e.Kind.Error()
	}
	return fmt.Sprintf("spotify auth: %v: %v", e.Kind, e.Err)
}

func (e *AuthError) Unwrap() error { return e.Err }

func (e *AuthError) Is(target error) bool { return target == e.Kind }

// AccessError is returned by Catalog operations when the remote call fails.
// Kind is ErrProviderRejected or ErrNotFound.
type AccessError struct {
	Op   string
	Kind error
	Err  error
}

func (e *AccessError) Error() string {
	return fmt.Sprintf("spotify %s: %v: %v", e.Op, e.Kind, e.Err)
}

func (e *AccessError) Unwrap() error { return e.Err }

func (e *AccessError) Is(target error) bool { return target == e.Kind }

// CapabilityError means an operation was attempted on a session that lacks
// the capability it needs. No remote call was made.
type CapabilityError struct {
	Op       string
	Required Capability
	Mode     Mode
}

func (e *CapabilityError) Error() string {
	return fmt.Sprintf("spotify %s: %s session lacks %s", e.Op, e.Mode, e.Required)
}

func (e *CapabilityError) Is(target error) bool { return target == ErrCapability }

func authError(kind error, err error) *AuthError {
	return &AuthError{Kind: kind, Err: err}
}

// accessError converts a remote failure into an AccessError.
func accessError(op string, err error) *AccessError {
	kind := ErrProviderRejected
	if isNotFound(err) {
		kind = ErrNotFound
	}
	return &AccessError{Op: op, Kind: kind, Err: err}
}

func isNotFound(err error) bool {
	var apiErr spotifyLib.Error
	if errors.As(err, &apiErr) {
		return apiErr.Status == http.StatusNotFound
	}
	return false
}
