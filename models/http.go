// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Anton Velram

package models

// RegisterRequest is the JSON body of POST /api/users.
type RegisterRequest struct {
	// Username is the requested unique login identifier (3-30 characters).
	Username string `json:"username"`

	// Name is the display name of the new user (1-100 characters).
	Name string `json:"name"`

	// Password is the plaintext password (6-50 characters). It is hashed
	// before persistence and never stored or echoed back.
	Password string `json:"password"`
}

// RegisterResponse is the JSON body returned on successful registration.
// The password record and any session state are never returned.
type RegisterResponse struct {
	Username string `json:"username"`
	Name     string `json:"name"`
}

// LoginRequest is the JSON body of POST /api/auth/login.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// CreateReminderRequest is the JSON body of POST /api/reminders.
type CreateReminderRequest struct {
	// Content is the reminder text (1-120 characters).
	Content string `json:"content"`

	// Important optionally marks the reminder as high priority.
	// Defaults to false when omitted.
	Important *bool `json:"important,omitempty"`
}

// FieldError describes a single request-validation failure.
type FieldError struct {
	// Field is the name of the offending JSON field.
	Field string `json:"field"`

	// Message is a human-readable description of the violation.
	Message string `json:"message"`
}

// ValidationErrorResponse is the JSON body returned for 400 responses
// caused by request-body validation failures.
type ValidationErrorResponse struct {
	Errors []FieldError `json:"errors"`
}

// ErrorResponse is the generic JSON error envelope.
type ErrorResponse struct {
	Error string `json:"error"`
}
