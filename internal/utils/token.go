// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Anton Velram

package utils

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

// sessionTokenLength is the number of random bytes backing a session token.
// 48 bytes encode to 96 hex characters on the wire.
const sessionTokenLength = 48

// GenerateSessionToken mints a new opaque session token from crypto/rand.
//
// Every call produces fresh randomness; tokens are never reused and never
// derived from user credentials. The returned string is lowercase hex and
// has no internal structure; validity is determined solely by store lookup.
//
// Returns an error only on entropy failure, which is fatal for the caller.
func GenerateSessionToken() (string, error) {
	buf := make([]byte, sessionTokenLength)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("error generating session token: %w", err)
	}

	return hex.EncodeToString(buf), nil
}
