package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-movie-keeper/internal/config"
	"github.com/MKhiriev/go-movie-keeper/internal/logger"
	"github.com/MKhiriev/go-movie-keeper/internal/store"
	"github.com/MKhiriev/go-movie-keeper/internal/utils"
	"github.com/MKhiriev/go-movie-keeper/internal/validators"
	"github.com/MKhiriev/go-movie-keeper/models"
)

// authService is the concrete implementation of AuthService. It handles
// user registration, credential verification through the configured
// strategies, and the JWT token lifecycle.
type authService struct {
	// userRepository is the data-access layer used to create users.
	userRepository store.UserRepository

	// localStrategy verifies email/password logins.
	localStrategy CredentialStrategy

	// tokenStrategy verifies bearer tokens on authenticated requests.
	tokenStrategy CredentialStrategy

	// tokenSignKey is the HMAC secret used to sign issued JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	// validator checks sign-up input before anything touches storage.
	validator validators.Validator

	logger *logger.Logger
}

// NewAuthService constructs an AuthService wired to the given repositories
// and populated with security parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewAuthService(userRepository store.UserRepository, credentialStore store.CredentialStore, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		localStrategy:  NewLocalStrategy(credentialStore, logger),
		tokenStrategy:  NewTokenStrategy(userRepository, cfg.TokenSignKey, cfg.TokenIssuer, logger),
		tokenSignKey:   cfg.TokenSignKey,
		tokenIssuer:    cfg.TokenIssuer,
		tokenDuration:  cfg.TokenDuration,
		validator:      validators.NewAccountValidator(),
		logger:         logger,
	}
}

// Register creates a new user account.
//
// It validates the input, hashes the password with bcrypt, and delegates
// persistence to the UserRepository. The plaintext password is never stored
// or logged.
//
// Returns the persisted user (hash stripped, server-assigned UserID) or:
//   - ErrInvalidDataProvided if the email is malformed or password/name is
//     empty.
//   - store.ErrEmailAlreadyExists (wrapped) if the email is taken.
func (a *authService) Register(ctx context.Context, email, password, name string) (models.User, error) {
	log := logger.FromContext(ctx)

	email = strings.ToLower(strings.TrimSpace(email))
	name = strings.TrimSpace(name)

	request := models.RegisterRequest{Email: email, Password: password, Name: name}
	if err := a.validator.Validate(ctx, request); err != nil {
		log.Error().Err(err).Str("email", email).Msg("invalid registration data provided")
		return models.User{}, errors.Join(ErrInvalidDataProvided, err)
	}

	passwordHash, err := utils.HashPassword(password)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return models.User{}, fmt.Errorf("password hashing failed: %w", err)
	}

	registeredUser, err := a.userRepository.CreateUser(ctx, email, passwordHash, name)
	if err != nil {
		log.Err(err).Str("email", email).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return registeredUser, nil
}

// Login authenticates an existing user through the local strategy and
// returns the resolved principal. All failure modes that could reveal
// whether the account exists surface as ErrInvalidCredentials.
func (a *authService) Login(ctx context.Context, credentials models.Credentials) (models.Principal, error) {
	return a.localStrategy.Verify(ctx, credentials)
}

// CreateToken issues a signed JWT for the given principal.
//
// The token is signed with the configured tokenSignKey, carries the
// configured tokenIssuer as the "iss" claim, and expires after
// tokenDuration.
func (a *authService) CreateToken(ctx context.Context, principal models.Principal) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, principal, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken verifies a raw JWT string through the token strategy. The
// subject is re-resolved against storage, so a token for a deleted account
// is rejected even while its expiry is still in the future.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Principal, error) {
	return a.tokenStrategy.Verify(ctx, models.Credentials{Token: tokenString})
}
