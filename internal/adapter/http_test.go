// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Anton Velram

package adapter

import (
	"context"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/avelram/go-reminders/internal/handler"
	httphandler "github.com/avelram/go-reminders/internal/handler/http"
	"github.com/avelram/go-reminders/internal/logger"
	"github.com/avelram/go-reminders/internal/service"
	"github.com/avelram/go-reminders/internal/store"
	"github.com/avelram/go-reminders/internal/workers"
	"github.com/avelram/go-reminders/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// In-memory repositories for the full-stack test
// ─────────────────────────────────────────────

type memoryStore struct {
	mu         sync.Mutex
	nextUserID int64
	users      map[string]*models.User     // keyed by username
	reminders  map[string]*models.Reminder // keyed by reminder id
}

func newMemoryStore() *memoryStore {
	return &memoryStore{
		nextUserID: 1,
		users:      make(map[string]*models.User),
		reminders:  make(map[string]*models.Reminder),
	}
}

func (m *memoryStore) CreateUser(_ context.Context, user models.User) (models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.users[user.Username]; exists {
		return models.User{}, store.ErrUsernameTaken
	}

	user.UserID = m.nextUserID
	m.nextUserID++
	stored := user
	m.users[user.Username] = &stored
	return user, nil
}

func (m *memoryStore) FindUserByUsername(_ context.Context, username string) (models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	u, ok := m.users[username]
	if !ok {
		return models.User{}, store.ErrUserNotFound
	}
	return *u, nil
}

func (m *memoryStore) FindUserByToken(_ context.Context, token string) (models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, u := range m.users {
		if u.SessionToken != "" && u.SessionToken == token {
			return *u, nil
		}
	}
	return models.User{}, store.ErrUserNotFound
}

func (m *memoryStore) SetSessionToken(_ context.Context, username, token string) (models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	u, ok := m.users[username]
	if !ok {
		return models.User{}, store.ErrUserNotFound
	}
	u.SessionToken = token
	return *u, nil
}

func (m *memoryStore) CreateReminder(_ context.Context, reminder models.Reminder) (models.Reminder, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	reminder.CreatedAt = time.Now()
	reminder.UpdatedAt = reminder.CreatedAt
	for _, u := range m.users {
		if u.UserID == reminder.UserID {
			reminder.Owner = models.ReminderOwner{Username: u.Username, Name: u.Name}
		}
	}
	stored := reminder
	m.reminders[reminder.ID] = &stored
	return reminder, nil
}

func (m *memoryStore) FindRemindersByUser(_ context.Context, userID int64) ([]models.Reminder, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var out []models.Reminder
	for _, r := range m.reminders {
		if r.UserID == userID {
			out = append(out, *r)
		}
	}
	return out, nil
}

func (m *memoryStore) FindReminderByID(_ context.Context, id string) (models.Reminder, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	r, ok := m.reminders[id]
	if !ok {
		return models.Reminder{}, store.ErrReminderNotFound
	}
	return *r, nil
}

func (m *memoryStore) UpdateReminder(_ context.Context, id string, update models.ReminderUpdate) (models.Reminder, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	r, ok := m.reminders[id]
	if !ok {
		return models.Reminder{}, store.ErrReminderNotFound
	}
	if update.Content != nil {
		r.Content = *update.Content
	}
	if update.Important != nil {
		r.Important = *update.Important
	}
	r.UpdatedAt = time.Now()
	return *r, nil
}

func (m *memoryStore) DeleteReminder(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.reminders[id]; !ok {
		return store.ErrReminderNotFound
	}
	delete(m.reminders, id)
	return nil
}

// ─────────────────────────────────────────────
// Full stack: adapter → httptest server → services
// ─────────────────────────────────────────────

// newTestStack starts an in-process HTTP server backed by in-memory
// repositories and returns a connected adapter.
func newTestStack(t *testing.T) ServerAdapter {
	t.Helper()

	log := logger.Nop()
	mem := newMemoryStore()
	storages := &store.Storages{
		UserRepository:     mem,
		ReminderRepository: mem,
	}

	services := &service.Services{
		AuthService:     service.NewAuthService(storages.UserRepository, workers.NewKDFPool(2), log),
		ReminderService: service.NewReminderService(storages.ReminderRepository, log),
	}

	handlers := &handler.Handlers{HTTP: httphandler.NewHandler(services, log)}
	srv := httptest.NewServer(handlers.HTTP.Init())
	t.Cleanup(srv.Close)

	client, err := NewHTTPServerAdapter(srv.URL, 10*time.Second, log)
	require.NoError(t, err)
	return client
}

// TestAdapter_FullSessionFlow drives the complete account and reminder
// lifecycle over real HTTP: register, login, reminder CRUD, token rotation
// on re-login, and logout.
func TestAdapter_FullSessionFlow(t *testing.T) {
	client := newTestStack(t)
	ctx := context.Background()

	// register
	profile, err := client.Register(ctx, models.RegisterRequest{
		Username: "alice",
		Name:     "Alice",
		Password: "secret123",
	})
	require.NoError(t, err)
	assert.Equal(t, "alice", profile.Username)
	assert.Empty(t, client.Token(), "registration must not start a session")

	// duplicate registration maps to ErrConflict
	_, err = client.Register(ctx, models.RegisterRequest{Username: "alice", Name: "X", Password: "another1"})
	assert.ErrorIs(t, err, ErrConflict)

	// requests without a session are rejected
	_, err = client.ListReminders(ctx)
	assert.ErrorIs(t, err, ErrUnauthorized)

	// login
	session, err := client.Login(ctx, models.LoginRequest{Username: "alice", Password: "secret123"})
	require.NoError(t, err)
	require.NotEmpty(t, session.Token)
	assert.Equal(t, session.Token, client.Token())

	// wrong password maps to ErrUnauthorized and keeps the session alive
	_, err = client.Login(ctx, models.LoginRequest{Username: "alice", Password: "wrong"})
	assert.ErrorIs(t, err, ErrUnauthorized)
	client.SetToken(session.Token)

	// reminder CRUD
	listed, err := client.ListReminders(ctx)
	require.NoError(t, err)
	assert.Empty(t, listed)

	created, err := client.CreateReminder(ctx, models.CreateReminderRequest{Content: "buy milk"})
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)
	assert.False(t, created.Important)

	important := true
	updated, err := client.UpdateReminder(ctx, created.ID, models.ReminderUpdate{Important: &important})
	require.NoError(t, err)
	assert.True(t, updated.Important)
	assert.Equal(t, "buy milk", updated.Content)

	listed, err = client.ListReminders(ctx)
	require.NoError(t, err)
	require.Len(t, listed, 1)

	// unknown reminder ids map to ErrNotFound
	_, err = client.UpdateReminder(ctx, "missing-id", models.ReminderUpdate{Important: &important})
	assert.ErrorIs(t, err, ErrNotFound)
	err = client.DeleteReminder(ctx, "missing-id")
	assert.ErrorIs(t, err, ErrNotFound)

	// re-login rotates the token and kills the old one
	oldToken := session.Token
	session, err = client.Login(ctx, models.LoginRequest{Username: "alice", Password: "secret123"})
	require.NoError(t, err)
	assert.NotEqual(t, oldToken, session.Token)

	client.SetToken(oldToken)
	_, err = client.ListReminders(ctx)
	assert.ErrorIs(t, err, ErrUnauthorized)
	client.SetToken(session.Token)

	// delete and logout
	require.NoError(t, client.DeleteReminder(ctx, created.ID))

	require.NoError(t, client.Logout(ctx))
	assert.Empty(t, client.Token())

	// the invalidated session no longer authorizes anything
	client.SetToken(session.Token)
	_, err = client.ListReminders(ctx)
	assert.ErrorIs(t, err, ErrUnauthorized)
}

// TestAdapter_ValidationErrors verifies that out-of-bounds input maps to
// ErrBadRequest end to end.
func TestAdapter_ValidationErrors(t *testing.T) {
	client := newTestStack(t)
	ctx := context.Background()

	_, err := client.Register(ctx, models.RegisterRequest{Username: "ab", Name: "", Password: "pw"})
	assert.ErrorIs(t, err, ErrBadRequest)

	_, err = client.Register(ctx, models.RegisterRequest{Username: "alice", Name: "Alice", Password: "secret123"})
	require.NoError(t, err)
	_, err = client.Login(ctx, models.LoginRequest{Username: "alice", Password: "secret123"})
	require.NoError(t, err)

	_, err = client.CreateReminder(ctx, models.CreateReminderRequest{Content: ""})
	assert.ErrorIs(t, err, ErrBadRequest)

	_, err = client.UpdateReminder(ctx, "some-id", models.ReminderUpdate{})
	assert.ErrorIs(t, err, ErrBadRequest)
}

// TestNormalizeBaseURL verifies scheme defaulting and trailing slash
// trimming.
func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{in: "localhost:3000", want: "http://localhost:3000"},
		{in: "http://localhost:3000/", want: "http://localhost:3000"},
		{in: "https://api.example.com", want: "https://api.example.com"},
		{in: "  ", wantErr: true},
		{in: "://bad", wantErr: true},
	}

	for _, tt := range tests {
		got, err := normalizeBaseURL(tt.in)
		if tt.wantErr {
			assert.Error(t, err, tt.in)
			continue
		}
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got)
	}
}
