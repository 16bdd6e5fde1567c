// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Anton Velram

// Package store implements the persistence layer of the application:
// database connections, embedded schema migrations, and the user and
// reminder repositories consumed by the service layer.
package store

import (
	"context"

	"github.com/avelram/go-reminders/internal/config"
	"github.com/avelram/go-reminders/internal/logger"
	"github.com/avelram/go-reminders/models"
)

// UserRepository is the persistence boundary of the authentication core.
// All operations are atomic per-call from the caller's perspective.
type UserRepository interface {
	// CreateUser persists a new user with no active session.
	// Returns ErrUsernameTaken when the username already exists.
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByUsername resolves a user by their unique username.
	// Returns ErrUserNotFound when no such user exists.
	FindUserByUsername(ctx context.Context, username string) (models.User, error)

	// FindUserByToken resolves a user by their active session token.
	// Returns ErrUserNotFound when the token resolves to no user.
	FindUserByToken(ctx context.Context, token string) (models.User, error)

	// SetSessionToken overwrites the user's session token in a single
	// statement; an empty token clears the session (stored as NULL).
	// Returns ErrUserNotFound when the username does not exist.
	SetSessionToken(ctx context.Context, username, token string) (models.User, error)
}

// ReminderRepository is the persistence boundary for reminder records.
type ReminderRepository interface {
	// CreateReminder persists a new reminder and returns it with the
	// owner's profile fields populated.
	CreateReminder(ctx context.Context, reminder models.Reminder) (models.Reminder, error)

	// FindRemindersByUser returns all reminders owned by the given user,
	// important ones first, then newest first.
	FindRemindersByUser(ctx context.Context, userID int64) ([]models.Reminder, error)

	// FindReminderByID resolves a single reminder.
	// Returns ErrReminderNotFound when no such reminder exists.
	FindReminderByID(ctx context.Context, id string) (models.Reminder, error)

	// UpdateReminder applies a partial update and returns the updated row.
	// Returns ErrReminderNotFound when no such reminder exists.
	UpdateReminder(ctx context.Context, id string, update models.ReminderUpdate) (models.Reminder, error)

	// DeleteReminder removes a reminder.
	// Returns ErrReminderNotFound when no such reminder exists.
	DeleteReminder(ctx context.Context, id string) error
}

// Storages aggregates all repositories for injection into the service layer.
type Storages struct {
	UserRepository     UserRepository
	ReminderRepository ReminderRepository
}

// NewStorages connects to the configured database, applies pending schema
// migrations, and constructs all repositories.
//
// A non-empty DSN selects PostgreSQL; otherwise a local sqlite file is used
// so the service can run without external infrastructure.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	var (
		db  *DB
		err error
	)

	if cfg.DB.DSN != "" {
		db, err = NewConnectPostgres(ctx, cfg.DB, log)
	} else {
		db, err = NewConnectSQLite(ctx, cfg.DB, log)
	}
	if err != nil {
		return nil, err
	}

	if err = db.Migrate(); err != nil {
		return nil, err
	}

	return &Storages{
		UserRepository:     NewUserRepository(db, log),
		ReminderRepository: NewReminderRepository(db, log),
	}, nil
}
