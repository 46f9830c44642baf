// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-movie-keeper/internal/logger"
	"github.com/MKhiriev/go-movie-keeper/internal/store"
	"github.com/MKhiriev/go-movie-keeper/internal/utils"
	"github.com/MKhiriev/go-movie-keeper/models"
)

// ─────────────────────────────────────────────
// Mock: store.CredentialStore
// ─────────────────────────────────────────────

type mockCredentialStore struct {
	findFn func(ctx context.Context, email string) (models.User, error)
	calls  int
}

func (m *mockCredentialStore) FindUserByEmailWithPassword(ctx context.Context, email string) (models.User, error) {
	m.calls++
	if m.findFn != nil {
		return m.findFn(ctx, email)
	}
	return models.User{}, nil
}

func hashedUser(t *testing.T, password string) models.User {
	t.Helper()
	hash, err := utils.HashPassword(password)
	require.NoError(t, err)
	return models.User{
		UserID:       1,
		Email:        "alice@example.com",
		Name:         "Alice",
		PasswordHash: hash,
	}
}

func TestLocalStrategy_Success(t *testing.T) {
	user := hashedUser(t, "correct horse battery staple")
	cs := &mockCredentialStore{
		findFn: func(_ context.Context, email string) (models.User, error) {
			assert.Equal(t, "alice@example.com", email)
			return user, nil
		},
	}

	s := NewLocalStrategy(cs, logger.NewLogger("test"))
	principal, err := s.Verify(context.Background(), models.Credentials{
		Email:    "alice@example.com",
		Password: "correct horse battery staple",
	})

	require.NoError(t, err)
	assert.Equal(t, user.Principal(), principal)
}

func TestLocalStrategy_UnknownEmail(t *testing.T) {
	cs := &mockCredentialStore{
		findFn: func(_ context.Context, _ string) (models.User, error) {
			return models.User{}, store.ErrUserNotFound
		},
	}

	s := NewLocalStrategy(cs, logger.NewLogger("test"))
	_, err := s.Verify(context.Background(), models.Credentials{Email: "ghost@example.com", Password: "whatever"})

	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLocalStrategy_WrongPassword(t *testing.T) {
	user := hashedUser(t, "the real password")
	cs := &mockCredentialStore{
		findFn: func(_ context.Context, _ string) (models.User, error) {
			return user, nil
		},
	}

	s := NewLocalStrategy(cs, logger.NewLogger("test"))
	_, err := s.Verify(context.Background(), models.Credentials{Email: "alice@example.com", Password: "a guess"})

	// Same sentinel as the unknown-email case: the two must be
	// indistinguishable to the caller.
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLocalStrategy_NoStoredHash(t *testing.T) {
	cs := &mockCredentialStore{
		findFn: func(_ context.Context, _ string) (models.User, error) {
			return models.User{UserID: 2, Email: "sso@example.com"}, nil
		},
	}

	s := NewLocalStrategy(cs, logger.NewLogger("test"))
	_, err := s.Verify(context.Background(), models.Credentials{Email: "sso@example.com", Password: "whatever"})

	assert.ErrorIs(t, err, ErrPasswordAuthUnavailable)
}

func TestLocalStrategy_EmptyInputRejectedBeforeStorage(t *testing.T) {
	cs := &mockCredentialStore{}
	s := NewLocalStrategy(cs, logger.NewLogger("test"))

	_, err := s.Verify(context.Background(), models.Credentials{Email: "", Password: ""})

	assert.ErrorIs(t, err, ErrInvalidDataProvided)
	assert.Zero(t, cs.calls, "storage must not be touched for empty credentials")
}

func TestLocalStrategy_StorageFailurePassedThrough(t *testing.T) {
	storageErr := errors.New("database is locked")
	cs := &mockCredentialStore{
		findFn: func(_ context.Context, _ string) (models.User, error) {
			return models.User{}, storageErr
		},
	}

	s := NewLocalStrategy(cs, logger.NewLogger("test"))
	_, err := s.Verify(context.Background(), models.Credentials{Email: "alice@example.com", Password: "x"})

	require.Error(t, err)
	assert.ErrorIs(t, err, storageErr)
	assert.NotErrorIs(t, err, ErrInvalidCredentials, "infrastructure failures must not masquerade as auth failures")
}
