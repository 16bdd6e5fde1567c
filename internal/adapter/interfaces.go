// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Anton Velram

// Package adapter provides a typed client for the go-reminders REST API.
//
// The primary abstraction is [ServerAdapter], which decouples callers from
// the wire protocol. The package ships an HTTP/REST implementation
// ([NewHTTPServerAdapter]) that manages the session token transparently:
// Login stores the issued token and every authenticated call sends it in the
// X-Authorization header.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrConflict] for 409, [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/avelram/go-reminders/models"
)

// ServerAdapter defines transport-agnostic communication with the
// go-reminders server. Implementations are responsible for serialisation,
// session header management, and mapping transport-level errors to the
// sentinel values defined in this package.
type ServerAdapter interface {
	// SetToken stores the session token that will be attached to all
	// subsequent authenticated requests. It is called automatically after a
	// successful Login and cleared after Logout.
	SetToken(token string)

	// Token returns the session token currently stored in the adapter, or
	// an empty string if no token has been set yet.
	Token() string

	// Register creates a new account. It does not start a session.
	Register(ctx context.Context, req models.RegisterRequest) (models.RegisterResponse, error)

	// Login authenticates the user and stores the issued session token via
	// SetToken. Returns the session payload including the token.
	Login(ctx context.Context, req models.LoginRequest) (models.Session, error)

	// Logout invalidates the current session and clears the stored token.
	Logout(ctx context.Context) error

	// ListReminders returns the authenticated user's reminders.
	ListReminders(ctx context.Context) ([]models.Reminder, error)

	// CreateReminder stores a new reminder for the authenticated user.
	CreateReminder(ctx context.Context, req models.CreateReminderRequest) (models.Reminder, error)

	// UpdateReminder applies a partial update to the reminder with the
	// given id.
	UpdateReminder(ctx context.Context, id string, update models.ReminderUpdate) (models.Reminder, error)

	// DeleteReminder removes the reminder with the given id.
	DeleteReminder(ctx context.Context, id string) error
}
