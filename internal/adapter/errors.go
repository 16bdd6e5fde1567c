// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Anton Velram

package adapter

import "errors"

// Sentinel errors mapped from HTTP status codes by mapHTTPError.
var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrInternalServerError = errors.New("internal server error")
)
