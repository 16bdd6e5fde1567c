// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Anton Velram

package models

import "time"

// Reminder represents a single reminder record owned by a user.
type Reminder struct {
	// ID is the unique identifier of the reminder (UUID string).
	ID string `json:"id"`

	// UserID is the internal identifier of the owning user.
	// Not exposed via JSON; ownership is conveyed through the Owner field.
	UserID int64 `json:"-"`

	// Content is the reminder text (1-120 characters).
	Content string `json:"content"`

	// Important marks the reminder as high priority. Important reminders
	// are listed before the rest.
	Important bool `json:"important"`

	// CreatedAt is the timestamp when the reminder was created.
	CreatedAt time.Time `json:"created_at"`

	// UpdatedAt is the timestamp of the last modification.
	UpdatedAt time.Time `json:"updated_at"`

	// Owner carries the non-sensitive profile fields of the owning user,
	// populated by the persistence layer via a join.
	Owner ReminderOwner `json:"user"`
}

// ReminderOwner is the subset of user fields embedded in reminder responses.
type ReminderOwner struct {
	Username string `json:"username"`
	Name     string `json:"name"`
}

// TableName returns the name of the database table
// associated with the Reminder model.
func (r Reminder) TableName() string {
	return "reminders"
}

// ReminderUpdate represents criteria for partially updating a reminder.
// Only non-nil fields will be updated.
type ReminderUpdate struct {
	// Content is the new reminder text. If nil, the field is not updated.
	Content *string `json:"content,omitempty"`

	// Important is the new priority flag. If nil, the field is not updated.
	Important *bool `json:"important,omitempty"`
}
