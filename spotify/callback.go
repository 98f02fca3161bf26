//
// Date: 2026-10-15
// Author: Spicer Matthews <spicer@cloudmanic.com>
// Copyright (c) 2026 Cloudmanic Labs, LLC. All rights reserved.
//
// Description: Local HTTP listener that receives the OAuth redirect.
//

package spotify

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"time"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

// loggingResponseWriter wraps http.ResponseWriter to capture the status code.
type loggingResponseWriter struct {
	http.ResponseWriter
	statusCode int
}

// WriteHeader captures the status code before writing it.
func (lrw *loggingResponseWriter) WriteHeader(code int) {
	lrw.statusCode = code
	lrw.ResponseWriter.WriteHeader(code)
}

// loggingMiddleware logs each request. Query strings carry the
// authorization code, so only the path is logged.
func loggingMiddleware(logger *zap.Logger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			lrw := &loggingResponseWriter{ResponseWriter: w, statusCode: http.StatusOK}

			next.ServeHTTP(lrw, r)

			logger.Debug("callback request",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", lrw.statusCode),
				zap.Duration("elapsed", time.Since(start)),
			)
		})
	}
}

// callbackResult is what the redirect delivered: a code or an error.
type callbackResult struct {
	code string
	err  error
}

// callbackServer serves the redirect target for a single authorization.
type callbackServer struct {
	server  *http.Server
	results chan callbackResult
	state   string
	logger  *zap.Logger
}

// listenForCallback binds the host:port of redirectURI. A bind failure is
// returned unwrapped so the caller can test for EADDRINUSE.
func listenForCallback(redirectURI, state string, logger *zap.Logger) (*callbackServer, net.Listener, error) {
	u, err := url.Parse(redirectURI)
	if err != nil || u.Host == "" {
		return nil, nil, fmt.Errorf("invalid redirect URI %q", redirectURI)
	}

	addr := u.Host
	if u.Port() == "" {
		port := "80"
		if u.Scheme == "https" {
			port = "443"
		}
		addr = net.JoinHostPort(u.Hostname(), port)
	}

	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, nil, err
	}

	path := u.Path
	if path == "" {
		path = "/"
	}

	cs := &callbackServer{
		results: make(chan callbackResult, 1),
		state:   state,
		logger:  logger,
	}

	router := mux.NewRouter()
	router.HandleFunc(path, cs.handleCallback).Methods(http.MethodGet)
	router.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger.Debug("unexpected request on callback listener", zap.String("path", r.URL.Path))
		http.NotFound(w, r)
	})
	router.Use(loggingMiddleware(logger))

	cs.server = &http.Server{
		Handler:           router,
		ReadHeaderTimeout: 15 * time.Second,
	}
	return cs, ln, nil
}

func (cs *callbackServer) serve(ln net.Listener) {
	go func() {
		if err := cs.server.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			cs.logger.Warn("callback listener stopped", zap.Error(err))
		}
	}()
}

func (cs *callbackServer) shutdown() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = cs.server.Shutdown(ctx)
}

// deliver records the first result; later redirects are ignored.
func (cs *callbackServer) deliver(res callbackResult) {
	select {
	case cs.results <- res:
	default:
	}
}

// handleCallback handles the redirect from Spotify after user authorization.
// A request carrying the wrong state is refused without ending the wait.
func (cs *callbackServer) handleCallback(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	if st := q.Get("state"); st != cs.state {
		cs.logger.Warn("ignoring authorization callback with unexpected state")
		http.Error(w, "State mismatch", http.StatusForbidden)
		return
	}

	if providerErr := q.Get("error"); providerErr != "" {
		http.Error(w, "Authorization failed: "+providerErr, http.StatusForbidden)
		cs.deliver(callbackResult{err: fmt.Errorf("authorization denied: %s", providerErr)})
		return
	}

	code := q.Get("code")
	if code == "" {
		http.Error(w, "Missing authorization code", http.StatusBadRequest)
		cs.deliver(callbackResult{err: errors.New("authorization callback carried no code")})
		return
	}

	w.Header().Set("Content-Type", "text/plain")
	fmt.Fprint(w, "Authentication successful! You can close this window.")
	cs.deliver(callbackResult{code: code})
}
