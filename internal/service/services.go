// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Anton Velram

package service

import (
	"github.com/avelram/go-reminders/internal/config"
	"github.com/avelram/go-reminders/internal/logger"
	"github.com/avelram/go-reminders/internal/store"
	"github.com/avelram/go-reminders/internal/workers"
)

type Services struct {
	AuthService     AuthService
	ReminderService ReminderService
}

func NewServices(storages *store.Storages, cfg config.StructuredConfig, logger *logger.Logger) *Services {
	kdfPool := workers.NewKDFPool(cfg.Workers.KDFPoolSize)

	return &Services{
		AuthService:     NewAuthService(storages.UserRepository, kdfPool, logger),
		ReminderService: NewReminderService(storages.ReminderRepository, logger),
	}
}
