// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Anton Velram

package config

import "time"

// defaultConfig returns the built-in fallback values. They are merged after
// every other source, so a value here only applies when nothing else set it.
func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		Storage: Storage{
			DB: DB{
				SQLitePath: "reminders.db",
			},
		},
		Server: Server{
			HTTPAddress:    "localhost:3000",
			RequestTimeout: 30 * time.Second,
		},
	}
}

// validate checks that the final merged [StructuredConfig] is complete
// enough to start the application.
func (cfg *StructuredConfig) validate() error {
	if cfg.Server.HTTPAddress == "" {
		return ErrInvalidServerConfigs
	}

	if cfg.Storage.DB.DSN == "" && cfg.Storage.DB.SQLitePath == "" {
		return ErrInvalidStorageConfigs
	}

	return nil
}
