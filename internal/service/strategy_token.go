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

// tokenStrategy verifies a bearer JWT and re-resolves the subject against
// the user repository, so a token for a deleted account stops working the
// moment the row is gone rather than at expiry.
type tokenStrategy struct {
	userRepository store.UserRepository

	tokenSignKey string
	tokenIssuer  string

	validator validators.Validator
	logger    *logger.Logger
}

func NewTokenStrategy(userRepository store.UserRepository, tokenSignKey, tokenIssuer string, logger *logger.Logger) CredentialStrategy {
	return &tokenStrategy{
		userRepository: userRepository,
		tokenSignKey:   tokenSignKey,
		tokenIssuer:    tokenIssuer,
		validator:      validators.NewAccountValidator(),
		logger:         logger,
	}
}

// Verify implements [CredentialStrategy]. Signature, issuer and expiry
// failures map to ErrTokenIsExpiredOrInvalid; a valid token whose subject
// no longer exists maps to ErrInvalidCredentials.
func (s *tokenStrategy) Verify(ctx context.Context, credentials models.Credentials) (models.Principal, error) {
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(ctx, credentials, validators.FieldToken); err != nil {
		return models.Principal{}, errors.Join(ErrInvalidDataProvided, err)
	}

	token, err := utils.ValidateAndParseJWTToken(credentials.Token, s.tokenSignKey, s.tokenIssuer)
	if err != nil {
		log.Debug().Err(err).Msg("token validation failed")
		return models.Principal{}, ErrTokenIsExpiredOrInvalid
	}

	user, err := s.userRepository.FindUserByID(ctx, token.UserID)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			log.Debug().Int64("id", token.UserID).Msg("token subject no longer exists")
			return models.Principal{}, ErrInvalidCredentials
		}
		log.Err(err).Msg("token subject lookup failed")
		return models.Principal{}, fmt.Errorf("token subject lookup failed: %w", err)
	}

	return user.Principal(), nil
}
