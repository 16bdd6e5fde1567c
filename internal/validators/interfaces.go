// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Anton Velram

// Package validators provides abstractions for input validation and
// enforcement of business rules across the application.
//
// Core concepts:
//   - Validator: generic interface to validate arbitrary values or structures.
//     Supports optional field-level scoping for targeted validation.
//   - ValidationError: the aggregate of every field violation found in one
//     request body, so a response can report all problems at once instead
//     of the first one only.
//
// This package decouples validation logic from transport layers and storage,
// enabling reusable, composable, and testable validation strategies.
package validators

import "context"

// Validator defines a generic validation interface for arbitrary input values.
// Implementations may perform structural validation, semantic checks,
// cross-field rules.
type Validator interface {

	// Validate validates the provided input and optionally
	// restricts validation to specific named fields.
	Validate(context.Context, any, ...string) error
}
