//
// Date: 2026-10-15
// Author: Spicer Matthews <spicer@cloudmanic.com>
// Copyright (c) 2026 Cloudmanic Labs, LLC. All rights reserved.
//
// Description: Audio descriptor and time-series analysis retrieval.
//

package spotify

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/url"

	"go.uber.org/zap"

	spotifyLib "github.com/zmb3/spotify/v2"
)

// GetTrackFeatures fetches the descriptor vector and the time-series
// analysis for a track, one after the other. Either half is nil when the API
// has nothing usable for it: a 404, an empty or malformed payload, or a
// rejection of that request alone. The call fails only when both requests
// were rejected, or on a failure that affects the whole session (expired
// token, transport error, cancelled context).
func (c *Catalog) GetTrackFeatures(ctx context.Context, s *Session, trackID string) (TrackFeatures, error) {
	const op = "track features"
	client, err := s.clientFor(op, ReadTrackFeatures)
	if err != nil {
		return TrackFeatures{}, err
	}

	if trackID == "" {
		return TrackFeatures{}, &AccessError{Op: op, Kind: ErrNotFound, Err: errors.New("empty track id")}
	}

	id := spotifyLib.ID(trackID)
	var out TrackFeatures

	features, featuresErr := client.GetAudioFeatures(ctx, id)
	if featuresErr == nil {
		if len(features) > 0 {
			out.Vector = mapFeatures(features[0])
		}
	} else if sessionFailure(featuresErr) {
		return TrackFeatures{}, accessError(op, featuresErr)
	}

	analysis, analysisErr := client.GetAudioAnalysis(ctx, id)
	if analysisErr == nil {
		out.Analysis = mapAnalysis(analysis)
	} else if sessionFailure(analysisErr) {
		return TrackFeatures{}, accessError(op, analysisErr)
	}

	if rejected(featuresErr) && rejected(analysisErr) {
		return TrackFeatures{}, accessError(op, featuresErr)
	}

	c.logUnavailable(trackID, "features", featuresErr)
	c.logUnavailable(trackID, "analysis", analysisErr)

	c.logger.Debug("fetched track features",
		zap.String("track_id", trackID),
		zap.Bool("has_vector", out.Vector != nil),
		zap.Bool("has_analysis", out.Analysis != nil),
	)
	return out, nil
}

func (c *Catalog) logUnavailable(trackID, half string, err error) {
	if err == nil {
		return
	}
	c.logger.Warn("track data unavailable",
		zap.String("track_id", trackID),
		zap.String("half", half),
		zap.Error(err),
	)
}

// malformed reports whether err came from decoding a response body. Errors
// raised by the transport itself are not decoding errors.
func malformed(err error) bool {
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return false
	}
	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError
	return errors.As(err, &syntaxErr) ||
		errors.As(err, &typeErr) ||
		errors.Is(err, io.ErrUnexpectedEOF) ||
		errors.Is(err, io.EOF)
}

// sessionFailure reports whether err means no further request can succeed.
func sessionFailure(err error) bool {
	if malformed(err) {
		return false
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var apiErr spotifyLib.Error
	if errors.As(err, &apiErr) {
		return apiErr.Status == http.StatusUnauthorized
	}
	var urlErr *url.Error
	return errors.As(err, &urlErr)
}

// rejected reports whether err is a provider refusal of a single request,
// as opposed to absent or malformed data.
func rejected(err error) bool {
	return err != nil && !isNotFound(err) && !malformed(err)
}
