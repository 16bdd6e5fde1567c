// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Anton Velram

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/avelram/go-reminders/internal/logger"
	"github.com/avelram/go-reminders/models"
	"github.com/jackc/pgerrcode"
)

type userRepository struct {
	logger *logger.Logger
	db     *DB
}

func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("UserRepository created")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	row := r.db.QueryRowContext(ctx, createUser, user.Username, user.Name, user.PasswordRecord)

	saved, err := scanUser(row)
	if err != nil {
		if isUniqueViolation(err) {
			return models.User{}, ErrUsernameTaken
		}

		r.logger.Err(err).Str("func", "*userRepository.CreateUser").Msg("error: creating user failed")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return saved, nil
}

func (r *userRepository) FindUserByUsername(ctx context.Context, username string) (models.User, error) {
	row := r.db.QueryRowContext(ctx, findUserByUsername, username)

	found, err := scanUser(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrUserNotFound
		}

		r.logger.Err(err).Str("func", "*userRepository.FindUserByUsername").Msg("error: user lookup failed")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return found, nil
}

func (r *userRepository) FindUserByToken(ctx context.Context, token string) (models.User, error) {
	row := r.db.QueryRowContext(ctx, findUserByToken, token)

	found, err := scanUser(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrUserNotFound
		}

		r.logger.Err(err).Str("func", "*userRepository.FindUserByToken").Msg("error: token lookup failed")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return found, nil
}

func (r *userRepository) SetSessionToken(ctx context.Context, username, token string) (models.User, error) {
	row := r.db.QueryRowContext(ctx, setSessionToken, token, username)

	updated, err := scanUser(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrUserNotFound
		}

		r.logger.Err(err).Str("func", "*userRepository.SetSessionToken").Msg("error: token update failed")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return updated, nil
}

// scanUser reads one user row; the session token column is nullable and
// maps to an empty string when no session is active.
func scanUser(row *sql.Row) (models.User, error) {
	var (
		user  models.User
		token sql.NullString
	)

	if err := row.Scan(&user.UserID, &user.Username, &user.Name, &user.PasswordRecord, &token, &user.CreatedAt); err != nil {
		return models.User{}, err
	}

	user.SessionToken = token.String
	return user, nil
}

// isUniqueViolation reports whether err is a unique-constraint violation
// from either supported backend.
func isUniqueViolation(err error) bool {
	if postgresError(err) == pgerrcode.UniqueViolation {
		return true
	}

	// sqlite fallback path
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}
