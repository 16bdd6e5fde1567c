// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Anton Velram

package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/avelram/go-reminders/internal/logger"
	"github.com/avelram/go-reminders/internal/utils"
	"github.com/avelram/go-reminders/models"
)

// authTokenHeader carries the opaque session token on authenticated calls.
const authTokenHeader = "X-Authorization"

type httpServerAdapter struct {
	client *utils.HTTPClient

	token string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of
// [ServerAdapter]. It normalises and validates the base URL from address and
// configures the underlying HTTP client with the resolved base URL and
// request timeout.
//
// Returns an error if address is empty or cannot be parsed as a valid URL.
func NewHTTPServerAdapter(address string, requestTimeout time.Duration, logger *logger.Logger) (ServerAdapter, error) {
	client := utils.NewHTTPClient()
	baseURL, err := normalizeBaseURL(address)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client.
		SetBaseURL(baseURL).
		SetTimeout(requestTimeout)

	return &httpServerAdapter{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetToken implements [ServerAdapter]. It stores token (whitespace-trimmed)
// for use in the X-Authorization header of all subsequent authenticated
// requests.
func (h *httpServerAdapter) SetToken(token string) {
	h.token = strings.TrimSpace(token)
}

// Token implements [ServerAdapter]. It returns the session token currently
// held by the adapter, or an empty string if none has been set.
func (h *httpServerAdapter) Token() string {
	return h.token
}

// Register implements [ServerAdapter]. It POSTs the new account's details to
// POST /api/users and returns the created public profile. No session is
// started; call Login afterwards.
func (h *httpServerAdapter) Register(ctx context.Context, req models.RegisterRequest) (models.RegisterResponse, error) {
	var created models.RegisterResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		SetResult(&created).
		Post("/api/users")
	if err != nil {
		return models.RegisterResponse{}, fmt.Errorf("register request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.RegisterResponse{}, err
	}

	return created, nil
}

// Login implements [ServerAdapter]. It POSTs the credentials to
// POST /api/auth/login. On success the issued session token is stored via
// SetToken and the session payload is returned.
func (h *httpServerAdapter) Login(ctx context.Context, req models.LoginRequest) (models.Session, error) {
	var session models.Session

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		SetResult(&session).
		Post("/api/auth/login")
	if err != nil {
		return models.Session{}, fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Session{}, err
	}

	h.SetToken(session.Token)
	return session, nil
}

// Logout implements [ServerAdapter]. It POSTs to POST /api/auth/logout with
// the stored token and clears it on success.
func (h *httpServerAdapter) Logout(ctx context.Context) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader(authTokenHeader, h.token).
		Post("/api/auth/logout")
	if err != nil {
		return fmt.Errorf("logout request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return err
	}

	h.SetToken("")
	return nil
}

// ListReminders implements [ServerAdapter]. It GETs /api/reminders.
func (h *httpServerAdapter) ListReminders(ctx context.Context) ([]models.Reminder, error) {
	var reminders []models.Reminder

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader(authTokenHeader, h.token).
		SetResult(&reminders).
		Get("/api/reminders")
	if err != nil {
		return nil, fmt.Errorf("list reminders request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return reminders, nil
}

// CreateReminder implements [ServerAdapter]. It POSTs to /api/reminders.
func (h *httpServerAdapter) CreateReminder(ctx context.Context, req models.CreateReminderRequest) (models.Reminder, error) {
	var created models.Reminder

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetHeader(authTokenHeader, h.token).
		SetBody(req).
		SetResult(&created).
		Post("/api/reminders")
	if err != nil {
		return models.Reminder{}, fmt.Errorf("create reminder request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Reminder{}, err
	}

	return created, nil
}

// UpdateReminder implements [ServerAdapter]. It PATCHes
// /api/reminders/{id} with the partial update.
func (h *httpServerAdapter) UpdateReminder(ctx context.Context, id string, update models.ReminderUpdate) (models.Reminder, error) {
	var updated models.Reminder

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetHeader(authTokenHeader, h.token).
		SetBody(update).
		SetResult(&updated).
		Patch("/api/reminders/" + url.PathEscape(id))
	if err != nil {
		return models.Reminder{}, fmt.Errorf("update reminder request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Reminder{}, err
	}

	return updated, nil
}

// DeleteReminder implements [ServerAdapter]. It DELETEs /api/reminders/{id}.
func (h *httpServerAdapter) DeleteReminder(ctx context.Context, id string) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader(authTokenHeader, h.token).
		Delete("/api/reminders/" + url.PathEscape(id))
	if err != nil {
		return fmt.Errorf("delete reminder request: %w", err)
	}

	return mapHTTPError(resp)
}
