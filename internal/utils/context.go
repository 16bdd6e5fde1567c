// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Anton Velram

// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for working with context, type-safe keys, password
// hashing and verification, session token generation, HTTP response
// writing, and other common operations.
package utils

import (
	"context"

	"github.com/avelram/go-reminders/models"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// UserCtxKey is the key used to store the authenticated user in the context.
// Used together with GetUserFromContext for type-safe retrieval
// of the user from context.Context.
//
// Example of writing a value to the context:
//
//	ctx := context.WithValue(ctx, utils.UserCtxKey, user)
var UserCtxKey = contextKey("user")

// GetUserFromContext retrieves the authenticated user from the context.
//
// Returns the user and an ok flag:
//   - ok == true: value is found and has the correct models.User type
//   - ok == false: value is missing or has an unexpected type
//
// Example usage:
//
//	user, ok := utils.GetUserFromContext(ctx)
//	if !ok {
//	    // handle missing user in context
//	}
func GetUserFromContext(ctx context.Context) (models.User, bool) {
	user, ok := ctx.Value(UserCtxKey).(models.User)
	return user, ok
}
