// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/MKhiriev/gameflow-harness/internal/logger"
)

const readHeaderTimeout = 5 * time.Second

var _ Server = (*HTTPServer)(nil)

// HTTPServer is an http.Server bound to an already open listener, so a
// ":0" address resolves before the server starts.
type HTTPServer struct {
	server   *http.Server
	listener net.Listener
	name     string

	logger *logger.Logger
}

// NewHTTPServer opens a TCP listener on addr and prepares handler to be
// served on it.
func NewHTTPServer(ctx context.Context, name, addr string, handler http.Handler, log *logger.Logger) (*HTTPServer, error) {
	if handler == nil {
		return nil, errNoHandler
	}
	if addr == "" {
		return nil, errNoAddress
	}
	if log == nil {
		log = logger.Nop()
	}

	var lc net.ListenConfig
	ln, err := lc.Listen(ctx, "tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("listen %s on %s: %w", name, addr, err)
	}

	return &HTTPServer{
		server: &http.Server{
			Handler:           handler,
			ReadHeaderTimeout: readHeaderTimeout,
		},
		listener: ln,
		name:     name,
		logger:   log,
	}, nil
}

// Addr returns the resolved listen address.
func (h *HTTPServer) Addr() string {
	return h.listener.Addr().String()
}

// URL returns the http URL of the listener.
func (h *HTTPServer) URL() string {
	return "http://" + h.Addr()
}

// Start serves in a background goroutine.
func (h *HTTPServer) Start() {
	go h.RunServer()
}

// RunServer implements [Server].
func (h *HTTPServer) RunServer() {
	h.logger.Info().Str("server", h.name).Str("address", h.Addr()).Msg("launching HTTP server")
	if err := h.server.Serve(h.listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
		h.logger.Error().Err(err).Str("server", h.name).Msg("HTTP server Serve")
	}
}

// Shutdown implements [Server].
func (h *HTTPServer) Shutdown(ctx context.Context) error {
	if err := h.server.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutdown %s: %w", h.name, err)
	}
	h.logger.Info().Str("server", h.name).Msg("HTTP server shutdown gracefully")
	return nil
}
