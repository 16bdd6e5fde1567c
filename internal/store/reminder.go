// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Anton Velram

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/avelram/go-reminders/internal/logger"
	"github.com/avelram/go-reminders/models"
)

type reminderRepository struct {
	logger *logger.Logger
	db     *DB
}

func NewReminderRepository(db *DB, logger *logger.Logger) ReminderRepository {
	logger.Debug().Msg("ReminderRepository created")
	return &reminderRepository{
		db:     db,
		logger: logger,
	}
}

func (r *reminderRepository) CreateReminder(ctx context.Context, reminder models.Reminder) (models.Reminder, error) {
	_, err := r.db.ExecContext(ctx, createReminder, reminder.ID, reminder.UserID, reminder.Content, reminder.Important)
	if err != nil {
		r.logger.Err(err).Str("func", "*reminderRepository.CreateReminder").Msg("error: creating reminder failed")
		return models.Reminder{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	// read back through the owner join so the response carries the profile
	return r.FindReminderByID(ctx, reminder.ID)
}

func (r *reminderRepository) FindRemindersByUser(ctx context.Context, userID int64) ([]models.Reminder, error) {
	rows, err := r.db.QueryContext(ctx, findRemindersByUser, userID)
	if err != nil {
		r.logger.Err(err).Str("func", "*reminderRepository.FindRemindersByUser").Msg("error: listing reminders failed")
		return nil, fmt.Errorf("unexpected DB error: %w", err)
	}
	defer rows.Close()

	reminders := make([]models.Reminder, 0)
	for rows.Next() {
		var reminder models.Reminder
		if err = rows.Scan(
			&reminder.ID,
			&reminder.UserID,
			&reminder.Content,
			&reminder.Important,
			&reminder.CreatedAt,
			&reminder.UpdatedAt,
			&reminder.Owner.Username,
			&reminder.Owner.Name,
		); err != nil {
			r.logger.Err(err).Str("func", "*reminderRepository.FindRemindersByUser").Msg("error: scanning reminder row failed")
			return nil, fmt.Errorf("unexpected DB error: %w", err)
		}

		reminders = append(reminders, reminder)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected DB error: %w", err)
	}

	return reminders, nil
}

func (r *reminderRepository) FindReminderByID(ctx context.Context, id string) (models.Reminder, error) {
	row := r.db.QueryRowContext(ctx, findReminderByID, id)

	found, err := scanReminder(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Reminder{}, ErrReminderNotFound
		}

		r.logger.Err(err).Str("func", "*reminderRepository.FindReminderByID").Msg("error: reminder lookup failed")
		return models.Reminder{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return found, nil
}

func (r *reminderRepository) UpdateReminder(ctx context.Context, id string, update models.ReminderUpdate) (models.Reminder, error) {
	query, args, err := buildUpdateReminderQuery(id, update)
	if err != nil {
		return models.Reminder{}, fmt.Errorf("error building update query: %w", err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		r.logger.Err(err).Str("func", "*reminderRepository.UpdateReminder").Msg("error: updating reminder failed")
		return models.Reminder{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return models.Reminder{}, fmt.Errorf("unexpected DB error: %w", err)
	}
	if affected == 0 {
		return models.Reminder{}, ErrReminderNotFound
	}

	return r.FindReminderByID(ctx, id)
}

func (r *reminderRepository) DeleteReminder(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, deleteReminder, id)
	if err != nil {
		r.logger.Err(err).Str("func", "*reminderRepository.DeleteReminder").Msg("error: deleting reminder failed")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("unexpected DB error: %w", err)
	}
	if affected == 0 {
		return ErrReminderNotFound
	}

	return nil
}

func scanReminder(row *sql.Row) (models.Reminder, error) {
	var reminder models.Reminder

	if err := row.Scan(
		&reminder.ID,
		&reminder.UserID,
		&reminder.Content,
		&reminder.Important,
		&reminder.CreatedAt,
		&reminder.UpdatedAt,
		&reminder.Owner.Username,
		&reminder.Owner.Name,
	); err != nil {
		return models.Reminder{}, err
	}

	return reminder, nil
}
