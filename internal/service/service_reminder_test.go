// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Anton Velram

package service

import (
	"context"
	"errors"
	"testing"

	"github.com/avelram/go-reminders/internal/logger"
	"github.com/avelram/go-reminders/internal/store"
	"github.com/avelram/go-reminders/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// Mock: store.ReminderRepository
// ─────────────────────────────────────────────

type mockReminderRepository struct {
	createReminderFn      func(ctx context.Context, reminder models.Reminder) (models.Reminder, error)
	findRemindersByUserFn func(ctx context.Context, userID int64) ([]models.Reminder, error)
	findReminderByIDFn    func(ctx context.Context, id string) (models.Reminder, error)
	updateReminderFn      func(ctx context.Context, id string, update models.ReminderUpdate) (models.Reminder, error)
	deleteReminderFn      func(ctx context.Context, id string) error
}

func (m *mockReminderRepository) CreateReminder(ctx context.Context, reminder models.Reminder) (models.Reminder, error) {
	if m.createReminderFn != nil {
		return m.createReminderFn(ctx, reminder)
	}
	return reminder, nil
}

func (m *mockReminderRepository) FindRemindersByUser(ctx context.Context, userID int64) ([]models.Reminder, error) {
	if m.findRemindersByUserFn != nil {
		return m.findRemindersByUserFn(ctx, userID)
	}
	return nil, nil
}

func (m *mockReminderRepository) FindReminderByID(ctx context.Context, id string) (models.Reminder, error) {
	if m.findReminderByIDFn != nil {
		return m.findReminderByIDFn(ctx, id)
	}
	return models.Reminder{}, store.ErrReminderNotFound
}

func (m *mockReminderRepository) UpdateReminder(ctx context.Context, id string, update models.ReminderUpdate) (models.Reminder, error) {
	if m.updateReminderFn != nil {
		return m.updateReminderFn(ctx, id, update)
	}
	return models.Reminder{}, store.ErrReminderNotFound
}

func (m *mockReminderRepository) DeleteReminder(ctx context.Context, id string) error {
	if m.deleteReminderFn != nil {
		return m.deleteReminderFn(ctx, id)
	}
	return store.ErrReminderNotFound
}

func newTestReminderService(repo store.ReminderRepository) ReminderService {
	return NewReminderService(repo, logger.Nop())
}

// ─────────────────────────────────────────────
// CreateReminder
// ─────────────────────────────────────────────

// TestReminderService_CreateReminder_Case verifies that creation assigns a
// server-side id, attributes the reminder to the acting user and defaults
// the important flag to false when the request omits it.
func TestReminderService_CreateReminder_Case(t *testing.T) {
	var persisted models.Reminder
	repo := &mockReminderRepository{
		createReminderFn: func(_ context.Context, reminder models.Reminder) (models.Reminder, error) {
			persisted = reminder
			return reminder, nil
		},
	}
	reminders := newTestReminderService(repo)

	created, err := reminders.CreateReminder(context.Background(), 42, models.CreateReminderRequest{Content: "buy milk"})
	require.NoError(t, err)

	assert.NotEmpty(t, created.ID)
	assert.Equal(t, int64(42), persisted.UserID)
	assert.Equal(t, "buy milk", persisted.Content)
	assert.False(t, persisted.Important, "omitted flag defaults to false")

	important := true
	created2, err := reminders.CreateReminder(context.Background(), 42, models.CreateReminderRequest{Content: "pay rent", Important: &important})
	require.NoError(t, err)
	assert.True(t, persisted.Important)
	assert.NotEqual(t, created.ID, created2.ID, "each reminder gets its own id")
}

// ─────────────────────────────────────────────
// ListReminders
// ─────────────────────────────────────────────

// TestReminderService_ListReminders_Case verifies delegation and that an
// empty list comes back without error.
func TestReminderService_ListReminders_Case(t *testing.T) {
	repo := &mockReminderRepository{
		findRemindersByUserFn: func(_ context.Context, userID int64) ([]models.Reminder, error) {
			assert.Equal(t, int64(42), userID)
			return []models.Reminder{}, nil
		},
	}
	reminders := newTestReminderService(repo)

	listed, err := reminders.ListReminders(context.Background(), 42)
	require.NoError(t, err)
	assert.Empty(t, listed)
}

// ─────────────────────────────────────────────
// UpdateReminder / DeleteReminder
// ─────────────────────────────────────────────

// TestReminderService_UpdateReminder_NotFound_Case verifies that the
// store's not-found error stays recognizable through the wrapping.
func TestReminderService_UpdateReminder_NotFound_Case(t *testing.T) {
	reminders := newTestReminderService(&mockReminderRepository{})

	content := "changed"
	_, err := reminders.UpdateReminder(context.Background(), "missing-id", models.ReminderUpdate{Content: &content})
	assert.ErrorIs(t, err, store.ErrReminderNotFound)

	err = reminders.DeleteReminder(context.Background(), "missing-id")
	assert.ErrorIs(t, err, store.ErrReminderNotFound)
}

// TestReminderService_UpdateReminder_PartialFields_Case verifies that the
// update passes through exactly the fields the caller set.
func TestReminderService_UpdateReminder_PartialFields_Case(t *testing.T) {
	var gotUpdate models.ReminderUpdate
	repo := &mockReminderRepository{
		updateReminderFn: func(_ context.Context, id string, update models.ReminderUpdate) (models.Reminder, error) {
			gotUpdate = update
			return models.Reminder{ID: id, Content: "kept", Important: true}, nil
		},
	}
	reminders := newTestReminderService(repo)

	important := true
	updated, err := reminders.UpdateReminder(context.Background(), "r1", models.ReminderUpdate{Important: &important})
	require.NoError(t, err)

	assert.Nil(t, gotUpdate.Content, "unset field stays nil")
	require.NotNil(t, gotUpdate.Important)
	assert.True(t, *gotUpdate.Important)
	assert.Equal(t, "r1", updated.ID)
}

// TestReminderService_DeleteReminder_StoreFault_Case verifies that storage
// failures surface wrapped, not swallowed.
func TestReminderService_DeleteReminder_StoreFault_Case(t *testing.T) {
	dbErr := errors.New("disk full")
	repo := &mockReminderRepository{
		deleteReminderFn: func(_ context.Context, _ string) error {
			return dbErr
		},
	}
	reminders := newTestReminderService(repo)

	err := reminders.DeleteReminder(context.Background(), "r1")
	assert.ErrorIs(t, err, dbErr)
}
