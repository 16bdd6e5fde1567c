// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Anton Velram

package handler

import (
	"github.com/avelram/go-reminders/internal/config"
	"github.com/avelram/go-reminders/internal/handler/http"
	"github.com/avelram/go-reminders/internal/logger"
	"github.com/avelram/go-reminders/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, cfg config.Server, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	handlers := &Handlers{}

	if cfg.HTTPAddress != "" {
		handlers.HTTP = http.NewHandler(services, logger)
	}

	if handlers.HTTP == nil {
		return nil, errNoHandlersAreCreated
	}

	return handlers, nil
}
