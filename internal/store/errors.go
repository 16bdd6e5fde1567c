// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Anton Velram

package store

import "errors"

// Sentinel errors returned by the repository layer. Callers match against
// them with errors.Is to map persistence outcomes to domain results.
var (
	// ErrUsernameTaken is returned by CreateUser when the requested
	// username already exists (unique constraint violation).
	ErrUsernameTaken = errors.New("username is already taken")

	// ErrUserNotFound is returned when no user matches the given
	// username or session token.
	ErrUserNotFound = errors.New("user not found")

	// ErrReminderNotFound is returned when no reminder matches the given
	// identifier.
	ErrReminderNotFound = errors.New("reminder not found")
)
