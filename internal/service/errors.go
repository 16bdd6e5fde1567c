// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Anton Velram

package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrInvalidCredentials covers both "unknown username" and "wrong
	// password". The two cases are never distinguished in returned values
	// so that login responses carry no username-enumeration signal.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrNoToken is returned by Authorize when the request carried no
	// session token at all.
	ErrNoToken = errors.New("no session token provided")

	// ErrInvalidToken is returned by Authorize when a token was present
	// but resolves to no user (never issued, rotated out, or logged out).
	// Transport layers surface it identically to ErrNoToken; the split
	// exists for logging only.
	ErrInvalidToken = errors.New("invalid session token")
)
