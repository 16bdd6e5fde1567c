// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Anton Velram

package validators

import (
	"context"
	"unicode/utf8"

	"github.com/avelram/go-reminders/models"
)

// Field name constants used to specify which fields should be validated.
// These constants are passed to Validate to restrict validation to a
// subset of fields (field-level scoping).
const (
	// FieldUsername targets the unique login identifier of an account.
	FieldUsername = "username"

	// FieldName targets the display name of an account.
	FieldName = "name"

	// FieldPassword targets the plaintext password of a request.
	FieldPassword = "password"
)

// Account field length bounds. Lengths are counted in Unicode code points,
// not bytes, so multi-byte names are not unfairly truncated.
const (
	usernameMinLength = 3
	usernameMaxLength = 30

	nameMinLength = 1
	nameMaxLength = 100

	passwordMinLength = 6
	passwordMaxLength = 50
)

// UserValidator implements the Validator interface for account-related
// request models: RegisterRequest and LoginRequest.
//
// It supports both value and pointer receivers for every model type
// and allows optional field-level scoping via variadic field name arguments.
type UserValidator struct {
}

// NewUserValidator constructs a new UserValidator
// and returns it as the Validator interface.
func NewUserValidator() Validator {
	return &UserValidator{}
}

// Validate dispatches validation to the appropriate type-specific method
// based on the dynamic type of obj. Both value and pointer forms of each
// supported model are accepted.
//
// Supported types:
//   - models.RegisterRequest / *models.RegisterRequest
//   - models.LoginRequest / *models.LoginRequest
//
// Returns ErrUnsupportedType if obj does not match any known model.
// On failure the returned error is a *ValidationError listing every
// violated field.
func (v *UserValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.RegisterRequest:
		return v.validateRegisterRequest(ctx, value, fields...)
	case *models.RegisterRequest:
		return v.validateRegisterRequest(ctx, *value, fields...)

	case models.LoginRequest:
		return v.validateLoginRequest(ctx, value, fields...)
	case *models.LoginRequest:
		return v.validateLoginRequest(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

// validateRegisterRequest checks the registration bounds:
// username 3-30 characters, name 1-100 characters, password 6-50 characters.
//
// Default validated fields (when none specified):
// FieldUsername, FieldName, FieldPassword.
func (v *UserValidator) validateRegisterRequest(_ context.Context, req models.RegisterRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUsername, FieldName, FieldPassword}
	}

	errs := &ValidationError{}
	for _, f := range fields {
		switch f {
		case FieldUsername:
			if n := utf8.RuneCountInString(req.Username); n < usernameMinLength || n > usernameMaxLength {
				errs.add(FieldUsername, "must be between 3 and 30 characters")
			}
		case FieldName:
			if n := utf8.RuneCountInString(req.Name); n < nameMinLength || n > nameMaxLength {
				errs.add(FieldName, "must be between 1 and 100 characters")
			}
		case FieldPassword:
			if n := utf8.RuneCountInString(req.Password); n < passwordMinLength || n > passwordMaxLength {
				errs.add(FieldPassword, "must be between 6 and 50 characters")
			}
		default:
			return ErrUnknownField
		}
	}

	return errs.orNil()
}

// validateLoginRequest checks only presence. Login inputs are matched
// against stored records, so length bounds would leak registration rules
// without adding safety.
func (v *UserValidator) validateLoginRequest(_ context.Context, req models.LoginRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUsername, FieldPassword}
	}

	errs := &ValidationError{}
	for _, f := range fields {
		switch f {
		case FieldUsername:
			if req.Username == "" {
				errs.add(FieldUsername, "is required")
			}
		case FieldPassword:
			if req.Password == "" {
				errs.add(FieldPassword, "is required")
			}
		default:
			return ErrUnknownField
		}
	}

	return errs.orNil()
}
