// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Anton Velram

package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/avelram/go-reminders/internal/logger"
	"github.com/avelram/go-reminders/internal/service"
	"github.com/avelram/go-reminders/internal/store"
	"github.com/avelram/go-reminders/internal/utils"
	"github.com/avelram/go-reminders/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		writeError(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	if err := h.userValidator.Validate(ctx, req); err != nil {
		log.Err(err).Msg("registration request failed validation")
		writeValidationError(w, err)
		return
	}

	registered, err := h.services.AuthService.Register(ctx, req)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrUsernameTaken):
			log.Err(err).Msg("username already exists")
			writeError(w, "username already exists", http.StatusConflict)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during user registration")
			writeError(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	log.Debug().Int64("id", registered.UserID).Str("username", registered.Username).Msg("user successfully registered")

	_, _ = utils.WriteJSON(w, models.RegisterResponse{
		Username: registered.Username,
		Name:     registered.Name,
	}, http.StatusCreated)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		writeError(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	// presence failures share the credentials path so that malformed and
	// wrong logins are indistinguishable to the caller
	if err := h.userValidator.Validate(ctx, req); err != nil {
		log.Debug().Msg("login request with missing fields")
		writeError(w, "invalid username or password", http.StatusUnauthorized)
		return
	}

	session, err := h.services.AuthService.Login(ctx, req.Username, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidCredentials):
			log.Debug().Msg("login rejected")
			writeError(w, "invalid username or password", http.StatusUnauthorized)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during user login")
			writeError(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	log.Debug().Str("username", session.Username).Msg("user successfully logged in")

	_, _ = utils.WriteJSON(w, session, http.StatusOK)
}

func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	done, err := h.services.AuthService.Logout(ctx, r.Header.Get(authTokenHeader))
	if err != nil {
		log.Err(err).Msg("unexpected error occurred during logout")
		writeError(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	if !done {
		// the session vanished between the auth middleware and here
		writeError(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
