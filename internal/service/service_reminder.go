// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Anton Velram

package service

import (
	"context"
	"fmt"

	"github.com/avelram/go-reminders/internal/logger"
	"github.com/avelram/go-reminders/internal/store"
	"github.com/avelram/go-reminders/internal/utils"
	"github.com/avelram/go-reminders/models"
)

// reminderService is the concrete implementation of ReminderService.
// It delegates persistence to a ReminderRepository and owns the business
// rules around reminder identity and defaults.
type reminderService struct {
	reminderRepository store.ReminderRepository
	uuidGenerator      *utils.UUIDGenerator
	logger             *logger.Logger
}

// NewReminderService constructs a ReminderService backed by the given
// repository.
func NewReminderService(reminderRepository store.ReminderRepository, logger *logger.Logger) ReminderService {
	return &reminderService{
		reminderRepository: reminderRepository,
		uuidGenerator:      utils.NewUUIDGenerator(),
		logger:             logger,
	}
}

// ListReminders returns all reminders owned by userID, important ones first,
// newest first within each group. An empty list is a valid result.
func (r *reminderService) ListReminders(ctx context.Context, userID int64) ([]models.Reminder, error) {
	log := logger.FromContext(ctx)

	reminders, err := r.reminderRepository.FindRemindersByUser(ctx, userID)
	if err != nil {
		log.Err(err).Int64("user_id", userID).Msg("reminder listing failed")
		return nil, fmt.Errorf("reminder listing failed: %w", err)
	}

	return reminders, nil
}

// CreateReminder stores a new reminder for userID. The identifier is
// generated server-side; a missing important flag defaults to false.
func (r *reminderService) CreateReminder(ctx context.Context, userID int64, req models.CreateReminderRequest) (models.Reminder, error) {
	log := logger.FromContext(ctx)

	important := false
	if req.Important != nil {
		important = *req.Important
	}

	created, err := r.reminderRepository.CreateReminder(ctx, models.Reminder{
		ID:        r.uuidGenerator.Generate(),
		UserID:    userID,
		Content:   req.Content,
		Important: important,
	})
	if err != nil {
		log.Err(err).Int64("user_id", userID).Msg("reminder creation ended with error")
		return models.Reminder{}, fmt.Errorf("reminder creation ended with error: %w", err)
	}

	return created, nil
}

// UpdateReminder applies a partial update to the reminder with the given id.
// Fields left nil in update keep their stored values. The caller is expected
// to have already established that the reminder belongs to the acting user.
func (r *reminderService) UpdateReminder(ctx context.Context, id string, update models.ReminderUpdate) (models.Reminder, error) {
	log := logger.FromContext(ctx)

	updated, err := r.reminderRepository.UpdateReminder(ctx, id, update)
	if err != nil {
		log.Err(err).Str("reminder_id", id).Msg("reminder update ended with error")
		return models.Reminder{}, fmt.Errorf("reminder update ended with error: %w", err)
	}

	return updated, nil
}

// DeleteReminder removes the reminder with the given id.
func (r *reminderService) DeleteReminder(ctx context.Context, id string) error {
	log := logger.FromContext(ctx)

	if err := r.reminderRepository.DeleteReminder(ctx, id); err != nil {
		log.Err(err).Str("reminder_id", id).Msg("reminder deletion ended with error")
		return fmt.Errorf("reminder deletion ended with error: %w", err)
	}

	return nil
}
