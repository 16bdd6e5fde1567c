// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Anton Velram

package utils

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/scrypt"
)

// scrypt parameters used for password key derivation. These values are a
// persisted-state contract: changing any of them invalidates every stored
// password record, so they must stay fixed.
const (
	scryptN          = 1 << 14 // CPU/memory cost
	scryptR          = 8       // block size
	scryptP          = 1       // parallelism
	saltLength       = 16      // random salt bytes per record
	derivedKeyLength = 64      // derived key bytes per record

	// recordSeparator joins the hex-encoded salt and derived key in the
	// stored record. Hex encoding guarantees neither side contains it.
	recordSeparator = ":"
)

// ErrMalformedPasswordRecord is returned by VerifyPassword when a stored
// record cannot be split into a salt and a derived key.
var ErrMalformedPasswordRecord = errors.New("malformed password record")

// HashPassword derives a salted password record from the given plaintext.
//
// A fresh 16-byte salt is generated from crypto/rand on every call, so two
// hashes of the same plaintext always produce different records. The result
// is encoded as "<32-hex salt>:<128-hex derivedKey>".
//
// Returns an error only on entropy or KDF failure; such errors are fatal for
// the caller and must be propagated, not swallowed.
func HashPassword(password string) (string, error) {
	salt := make([]byte, saltLength)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("error generating password salt: %w", err)
	}

	encodedSalt := hex.EncodeToString(salt)
	key, err := deriveKey(password, encodedSalt)
	if err != nil {
		return "", fmt.Errorf("error deriving password key: %w", err)
	}

	return encodedSalt + recordSeparator + hex.EncodeToString(key), nil
}

// VerifyPassword re-derives a key from the given plaintext and the salt
// stored in record, and compares it to the stored derived key in constant
// time.
//
// Returns (false, nil) for a merely-wrong password. An error is returned
// only for malformed records (missing separator, non-hex key) or KDF
// failure, never for a credential mismatch.
func VerifyPassword(password, record string) (bool, error) {
	encodedSalt, encodedKey, found := strings.Cut(record, recordSeparator)
	if !found {
		return false, ErrMalformedPasswordRecord
	}

	storedKey, err := hex.DecodeString(encodedKey)
	if err != nil {
		return false, ErrMalformedPasswordRecord
	}

	key, err := deriveKey(password, encodedSalt)
	if err != nil {
		return false, fmt.Errorf("error deriving password key: %w", err)
	}

	return subtle.ConstantTimeCompare(key, storedKey) == 1, nil
}

// deriveKey runs scrypt over the plaintext and the hex-encoded salt string.
//
// The salt is fed to scrypt as the bytes of its hex encoding, not the decoded
// raw bytes: records persisted by earlier deployments were derived that way,
// and decoding the salt here would stop every existing record from verifying.
func deriveKey(password, encodedSalt string) ([]byte, error) {
	return scrypt.Key([]byte(password), []byte(encodedSalt), scryptN, scryptR, scryptP, derivedKeyLength)
}
