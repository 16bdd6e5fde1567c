// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Anton Velram

package service

import (
	"context"

	"github.com/avelram/go-reminders/models"
)

// AuthService is the credential-and-session core of the application:
// it onboards users, verifies passwords, issues and revokes opaque session
// tokens, and resolves tokens back to users for request authorization.
type AuthService interface {
	// Register creates a new user account with no active session.
	// The returned user never carries the password record.
	Register(ctx context.Context, req models.RegisterRequest) (models.User, error)

	// Login verifies the credentials and, on success, issues a fresh
	// session token, replacing any previously issued one for that user.
	Login(ctx context.Context, username, password string) (models.Session, error)

	// Logout invalidates the session identified by token. Returns false
	// when the token resolves to no session (including repeat logouts).
	Logout(ctx context.Context, token string) (bool, error)

	// Authorize resolves a session token to its owning user.
	Authorize(ctx context.Context, token string) (models.User, error)
}

// ReminderService implements the reminder CRUD operations, always scoped by
// the authenticated user resolved at the transport layer.
type ReminderService interface {
	ListReminders(ctx context.Context, userID int64) ([]models.Reminder, error)
	CreateReminder(ctx context.Context, userID int64, req models.CreateReminderRequest) (models.Reminder, error)
	UpdateReminder(ctx context.Context, id string, update models.ReminderUpdate) (models.Reminder, error)
	DeleteReminder(ctx context.Context, id string) error
}
