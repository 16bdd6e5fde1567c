// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Anton Velram

package store

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/avelram/go-reminders/models"
)

const (
	userColumns = `user_id, username, name, password_record, session_token, created_at`

	createUser = `INSERT INTO users (username, name, password_record)
    VALUES ($1, $2, $3)
    RETURNING ` + userColumns + `;`

	findUserByUsername = `SELECT ` + userColumns + `
    FROM users
    WHERE username = $1;`

	findUserByToken = `SELECT ` + userColumns + `
    FROM users
    WHERE session_token = $1;`

	// NULLIF maps an empty token to NULL so logout and login share one
	// statement; the overwrite is unconditional (last write wins).
	// Placeholders appear in ascending order because sqlite numbers them
	// by first occurrence.
	setSessionToken = `UPDATE users
    SET session_token = NULLIF($1, '')
    WHERE username = $2
    RETURNING ` + userColumns + `;`

	reminderColumns = `r.id, r.user_id, r.content, r.important, r.created_at, r.updated_at, u.username, u.name`

	// insert and read-back are separate statements so the same SQL works
	// on both backends
	createReminder = `INSERT INTO reminders (id, user_id, content, important)
    VALUES ($1, $2, $3, $4);`

	findRemindersByUser = `SELECT ` + reminderColumns + `
    FROM reminders r
    JOIN users u ON u.user_id = r.user_id
    WHERE r.user_id = $1
    ORDER BY r.important DESC, r.created_at DESC;`

	findReminderByID = `SELECT ` + reminderColumns + `
    FROM reminders r
    JOIN users u ON u.user_id = r.user_id
    WHERE r.id = $1;`

	deleteReminder = `DELETE FROM reminders
    WHERE id = $1;`
)

// buildUpdateReminderQuery builds the partial UPDATE statement for a
// reminder. Only fields present in update produce SET clauses; updated_at
// is always advanced.
func buildUpdateReminderQuery(id string, update models.ReminderUpdate) (string, []any, error) {
	builder := sq.Update("reminders").
		PlaceholderFormat(sq.Dollar).
		Set("updated_at", sq.Expr("CURRENT_TIMESTAMP")).
		Where(sq.Eq{"id": id})

	if update.Content != nil {
		builder = builder.Set("content", *update.Content)
	}
	if update.Important != nil {
		builder = builder.Set("important", *update.Important)
	}

	return builder.ToSql()
}
