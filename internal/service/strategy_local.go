package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-movie-keeper/internal/logger"
	"github.com/MKhiriev/go-movie-keeper/internal/store"
	"github.com/MKhiriev/go-movie-keeper/internal/utils"
	"github.com/MKhiriev/go-movie-keeper/internal/validators"
	"github.com/MKhiriev/go-movie-keeper/models"
)

// localStrategy verifies an email/password pair against the stored bcrypt
// hash. It is the only component in the process handed the hash-returning
// [store.CredentialStore] accessor.
type localStrategy struct {
	credentialStore store.CredentialStore
	validator       validators.Validator
	logger          *logger.Logger
}

func NewLocalStrategy(credentialStore store.CredentialStore, logger *logger.Logger) CredentialStrategy {
	return &localStrategy{
		credentialStore: credentialStore,
		validator:       validators.NewAccountValidator(),
		logger:          logger,
	}
}

// Verify implements [CredentialStrategy]. Unknown email and wrong password
// are indistinguishable to the caller: both collapse into
// ErrInvalidCredentials. An account without a stored hash reports
// ErrPasswordAuthUnavailable instead, since that is a property of the
// account, not of the attempt.
func (s *localStrategy) Verify(ctx context.Context, credentials models.Credentials) (models.Principal, error) {
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(ctx, credentials, validators.FieldEmail, validators.FieldPassword); err != nil {
		return models.Principal{}, errors.Join(ErrInvalidDataProvided, err)
	}

	user, err := s.credentialStore.FindUserByEmailWithPassword(ctx, credentials.Email)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			log.Debug().Str("email", credentials.Email).Msg("login attempt for unknown email")
			return models.Principal{}, ErrInvalidCredentials
		}
		log.Err(err).Msg("credential lookup failed")
		return models.Principal{}, fmt.Errorf("credential lookup failed: %w", err)
	}

	if user.PasswordHash == "" {
		return models.Principal{}, ErrPasswordAuthUnavailable
	}

	if !utils.VerifyPassword(credentials.Password, user.PasswordHash) {
		log.Debug().Int64("id", user.UserID).Msg("login attempt with wrong password")
		return models.Principal{}, ErrInvalidCredentials
	}

	return user.Principal(), nil
}
