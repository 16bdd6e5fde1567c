// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Anton Velram

package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidServerConfigs indicates invalid server settings
	// (for example, a missing HTTP listen address).
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidStorageConfigs indicates invalid storage settings
	// (neither a database DSN nor a sqlite file path is available).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
)
