// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Anton Velram

package http

import (
	"github.com/avelram/go-reminders/internal/logger"
	"github.com/avelram/go-reminders/internal/service"
	"github.com/avelram/go-reminders/internal/validators"
)

type Handler struct {
	services *service.Services

	userValidator     validators.Validator
	reminderValidator validators.Validator

	logger *logger.Logger
}

func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:          services,
		userValidator:     validators.NewUserValidator(),
		reminderValidator: validators.NewReminderValidator(),
		logger:            logger,
	}
}
