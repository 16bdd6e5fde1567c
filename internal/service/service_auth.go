// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Anton Velram

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/avelram/go-reminders/internal/logger"
	"github.com/avelram/go-reminders/internal/store"
	"github.com/avelram/go-reminders/internal/utils"
	"github.com/avelram/go-reminders/internal/workers"
	"github.com/avelram/go-reminders/models"
)

// authService is the concrete implementation of AuthService.
// It handles user registration, credential verification, and the opaque
// session-token lifecycle using a UserRepository for persistence and scrypt
// for password key derivation.
//
// Session semantics: at most one token is valid per user. Login overwrites
// the stored token unconditionally, so an earlier session stops authorizing
// the moment a newer login succeeds; logout clears it. The backing store is
// the single source of truth: token validity is always a store lookup,
// never an in-process check.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// kdfPool bounds the number of concurrently running scrypt calls so
	// hashing cannot starve request intake under load.
	kdfPool *workers.KDFPool

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs an AuthService wired to the given UserRepository
// and key-derivation pool.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewAuthService(userRepository store.UserRepository, kdfPool *workers.KDFPool, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		kdfPool:        kdfPool,
		logger:         logger,
	}
}

// Register creates a new user account.
//
// It hashes the password on the bounded KDF pool and persists the new user
// with no active session. The stored password record is stripped from the
// returned user so it never crosses the service boundary.
//
// Returns:
//   - ErrInvalidDataProvided if username or password is empty.
//   - store.ErrUsernameTaken (wrapped) if the username already exists.
//   - A wrapped storage or KDF error on unexpected failure.
func (a *authService) Register(ctx context.Context, req models.RegisterRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	if req.Username == "" || req.Password == "" {
		log.Error().Str("username", req.Username).Msg("invalid registration data provided")
		return models.User{}, ErrInvalidDataProvided
	}

	var record string
	err := a.kdfPool.Do(ctx, func() error {
		var hashErr error
		record, hashErr = utils.HashPassword(req.Password)
		return hashErr
	})
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return models.User{}, fmt.Errorf("password hashing failed: %w", err)
	}

	registered, err := a.userRepository.CreateUser(ctx, models.User{
		Username:       req.Username,
		Name:           req.Name,
		PasswordRecord: record,
	})
	if err != nil {
		log.Err(err).Str("username", req.Username).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	registered.PasswordRecord = ""
	return registered, nil
}

// Login authenticates an existing user and issues a fresh session token.
//
// An unknown username and a wrong password both yield ErrInvalidCredentials;
// the two outcomes are indistinguishable to the caller so that login carries
// no username-enumeration signal. They are logged distinctly.
//
// On success the new token unconditionally overwrites any previously stored
// one. A second login (same or different device) invalidates the token
// issued by the first, with no grace period. A failed login never touches
// the stored token.
//
// Store and KDF faults are returned as wrapped internal errors, never as
// ErrInvalidCredentials.
func (a *authService) Login(ctx context.Context, username, password string) (models.Session, error) {
	log := logger.FromContext(ctx)

	if username == "" || password == "" {
		return models.Session{}, ErrInvalidCredentials
	}

	user, err := a.userRepository.FindUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			log.Debug().Str("username", username).Msg("login attempt for unknown username")
			return models.Session{}, ErrInvalidCredentials
		}

		log.Err(err).Str("username", username).Msg("user search by username failed")
		return models.Session{}, fmt.Errorf("user search by username failed: %w", err)
	}

	var match bool
	err = a.kdfPool.Do(ctx, func() error {
		var verifyErr error
		match, verifyErr = utils.VerifyPassword(password, user.PasswordRecord)
		return verifyErr
	})
	if err != nil {
		log.Err(err).Str("username", username).Msg("password verification failed")
		return models.Session{}, fmt.Errorf("password verification failed: %w", err)
	}
	if !match {
		log.Debug().Str("username", username).Msg("login attempt with wrong password")
		return models.Session{}, ErrInvalidCredentials
	}

	token, err := utils.GenerateSessionToken()
	if err != nil {
		log.Err(err).Msg("session token generation failed")
		return models.Session{}, fmt.Errorf("session token generation failed: %w", err)
	}

	if _, err = a.userRepository.SetSessionToken(ctx, user.Username, token); err != nil {
		log.Err(err).Str("username", username).Msg("session token persistence failed")
		return models.Session{}, fmt.Errorf("session token persistence failed: %w", err)
	}

	return models.Session{
		Username: user.Username,
		Name:     user.Name,
		Token:    token,
	}, nil
}

// Logout invalidates the session identified by token.
//
// Returns (false, nil) when the token resolves to no user (never issued,
// already rotated out, or already logged out). A second logout with the same
// token therefore reports false; this is intentional, not a bug. Returns
// (true, nil) after the token has been cleared.
func (a *authService) Logout(ctx context.Context, token string) (bool, error) {
	log := logger.FromContext(ctx)

	if token == "" {
		return false, nil
	}

	user, err := a.userRepository.FindUserByToken(ctx, token)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			return false, nil
		}

		log.Err(err).Msg("user search by token failed")
		return false, fmt.Errorf("user search by token failed: %w", err)
	}

	if _, err = a.userRepository.SetSessionToken(ctx, user.Username, ""); err != nil {
		log.Err(err).Str("username", user.Username).Msg("session token clearing failed")
		return false, fmt.Errorf("session token clearing failed: %w", err)
	}

	return true, nil
}

// Authorize resolves a session token to the user owning it.
//
// A missing token yields ErrNoToken and a present-but-unresolvable token
// yields ErrInvalidToken. The split exists for logging; transports surface
// both as the same generic unauthorized outcome. On success the full user
// record is returned for downstream ownership checks.
func (a *authService) Authorize(ctx context.Context, token string) (models.User, error) {
	log := logger.FromContext(ctx)

	if token == "" {
		log.Debug().Msg("authorization attempt without token")
		return models.User{}, ErrNoToken
	}

	user, err := a.userRepository.FindUserByToken(ctx, token)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			log.Debug().Msg("authorization attempt with unknown token")
			return models.User{}, ErrInvalidToken
		}

		log.Err(err).Msg("user search by token failed")
		return models.User{}, fmt.Errorf("user search by token failed: %w", err)
	}

	return user, nil
}
