// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Anton Velram

package models

import "time"

// User represents an account entity used for authentication and authorization.
// It contains identity attributes and credential-related data.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// UserID is the internal unique identifier of the user.
	// It is not exposed via JSON and is used only at the persistence layer.
	UserID int64 `json:"-"`

	// Username is the unique user login identifier (3-30 characters).
	// Typically used during authentication.
	Username string `json:"username"`

	// Name is the display name of the user (1-100 characters).
	// It is non-sensitive and may be shown in UI.
	Name string `json:"name"`

	// PasswordRecord stores the user's credential representation as an
	// encoded "salt:derivedKey" pair. This value MUST be a KDF output,
	// never plaintext. It is used only for credential verification.
	PasswordRecord string `json:"-"`

	// SessionToken is the user's currently active opaque session token.
	// Empty when the user has no live session. At most one token is valid
	// per user at any instant; issuing a new one replaces this value.
	SessionToken string `json:"-"`

	// CreatedAt is the timestamp when the user account was created.
	// Used for auditing and lifecycle management.
	CreatedAt time.Time `json:"-"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// Session is the outcome of a successful login: the non-secret profile
// fields plus the freshly issued opaque session token.
type Session struct {
	Username string `json:"username"`
	Name     string `json:"name"`
	Token    string `json:"token"`
}
