// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Anton Velram

package server

import (
	"context"
	"errors"
	"net/http"

	"github.com/avelram/go-reminders/internal/config"
	"github.com/avelram/go-reminders/internal/logger"
)

type httpServer struct {
	server *http.Server
	logger *logger.Logger
}

func newHTTPServer(handler http.Handler, cfg config.Server, logger *logger.Logger) *httpServer {
	return &httpServer{
		server: &http.Server{
			Addr:              cfg.HTTPAddress,
			Handler:           handler,
			ReadTimeout:       cfg.RequestTimeout,
			ReadHeaderTimeout: cfg.RequestTimeout,
			WriteTimeout:      cfg.RequestTimeout,
		},
		logger: logger,
	}
}

func (h *httpServer) RunServer() {
	if err := h.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		h.logger.Err(err).Msg("HTTP server ListenAndServe")
	}
}

func (h *httpServer) Shutdown() {
	if err := h.server.Shutdown(context.Background()); err != nil {
		h.logger.Err(err).Msg("HTTP server Shutdown")
	}
}
