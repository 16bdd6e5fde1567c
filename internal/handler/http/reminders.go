// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Anton Velram

package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/avelram/go-reminders/internal/logger"
	"github.com/avelram/go-reminders/internal/store"
	"github.com/avelram/go-reminders/internal/utils"
	"github.com/avelram/go-reminders/models"
)

func (h *Handler) listReminders(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	user, ok := utils.GetUserFromContext(ctx)
	if !ok {
		log.Error().Msg("no authenticated user in request context")
		writeError(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	reminders, err := h.services.ReminderService.ListReminders(ctx, user.UserID)
	if err != nil {
		log.Err(err).Msg("unexpected error occurred during reminder listing")
		writeError(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	// an empty list serializes as [], never null
	if reminders == nil {
		reminders = []models.Reminder{}
	}

	_, _ = utils.WriteJSON(w, reminders, http.StatusOK)
}

func (h *Handler) createReminder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	user, ok := utils.GetUserFromContext(ctx)
	if !ok {
		log.Error().Msg("no authenticated user in request context")
		writeError(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	var req models.CreateReminderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		writeError(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	if err := h.reminderValidator.Validate(ctx, req); err != nil {
		log.Err(err).Msg("reminder creation request failed validation")
		writeValidationError(w, err)
		return
	}

	created, err := h.services.ReminderService.CreateReminder(ctx, user.UserID, req)
	if err != nil {
		log.Err(err).Msg("unexpected error occurred during reminder creation")
		writeError(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	_, _ = utils.WriteJSON(w, created, http.StatusCreated)
}

func (h *Handler) updateReminder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	id := chi.URLParam(r, "id")

	var update models.ReminderUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		writeError(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	if err := h.reminderValidator.Validate(ctx, update); err != nil {
		log.Err(err).Str("reminder_id", id).Msg("reminder update request failed validation")
		writeValidationError(w, err)
		return
	}

	updated, err := h.services.ReminderService.UpdateReminder(ctx, id, update)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrReminderNotFound):
			log.Debug().Str("reminder_id", id).Msg("reminder not found")
			writeError(w, "reminder not found", http.StatusNotFound)
			return
		default:
			log.Err(err).Str("reminder_id", id).Msg("unexpected error occurred during reminder update")
			writeError(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	_, _ = utils.WriteJSON(w, updated, http.StatusOK)
}

func (h *Handler) deleteReminder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	id := chi.URLParam(r, "id")

	if err := h.services.ReminderService.DeleteReminder(ctx, id); err != nil {
		switch {
		case errors.Is(err, store.ErrReminderNotFound):
			log.Debug().Str("reminder_id", id).Msg("reminder not found")
			writeError(w, "reminder not found", http.StatusNotFound)
			return
		default:
			log.Err(err).Str("reminder_id", id).Msg("unexpected error occurred during reminder deletion")
			writeError(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	w.WriteHeader(http.StatusNoContent)
}
