// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Anton Velram

package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/avelram/go-reminders/internal/logger"
	"github.com/avelram/go-reminders/internal/service"
	"github.com/avelram/go-reminders/internal/utils"
)

// authTokenHeader carries the opaque session token. The value is the raw
// token, no scheme prefix.
const authTokenHeader = "X-Authorization"

// auth is an HTTP middleware that enforces session-token authentication.
//
// It reads the "X-Authorization" header, resolves the token via
// [service.AuthService.Authorize], and, on success, stores the
// authenticated user in the request context under [utils.UserCtxKey]
// before delegating to the next handler.
//
// A missing token and an unknown token are logged differently but produce
// the same generic 401 response, so a probing client learns nothing about
// which tokens exist.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)
		ctx := r.Context()

		user, err := h.services.AuthService.Authorize(ctx, r.Header.Get(authTokenHeader))
		if err != nil {
			switch {
			case errors.Is(err, service.ErrNoToken):
				log.Debug().Msg("request without session token")
			case errors.Is(err, service.ErrInvalidToken):
				log.Debug().Msg("request with unknown session token")
			default:
				log.Err(err).Msg("error occurred during session authorization")
				writeError(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
				return
			}

			writeError(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
			return
		}

		// Store the authenticated user in the context so that downstream
		// handlers can retrieve it without re-resolving the token.
		ctx = context.WithValue(ctx, utils.UserCtxKey, user)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
