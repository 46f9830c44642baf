package validators

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-movie-keeper/models"
)

// Field name constants used to specify which fields should be validated.
// These constants are passed to Validate to restrict validation to a subset
// of fields (field-level scoping).
const (
	// FieldEmail targets the email address of an account or login attempt.
	FieldEmail = "email"

	// FieldPassword targets the plaintext password of a login or sign-up
	// attempt. Only presence is checked here, strength policy is out of
	// scope for the validator.
	FieldPassword = "password"

	// FieldName targets the display name of a new account.
	FieldName = "name"

	// FieldToken targets the raw bearer token of a token verification
	// attempt.
	FieldToken = "token"

	// FieldUserID targets the owner identifier of a favorites operation.
	FieldUserID = "user_id"

	// FieldMovieID targets the external movie identifier of a favorite.
	FieldMovieID = "movie_id"
)

type AccountValidator struct {
}

func NewAccountValidator() Validator {
	return &AccountValidator{}
}

func (v *AccountValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.RegisterRequest:
		return v.validateRegisterRequest(ctx, value, fields...)
	case *models.RegisterRequest:
		return v.validateRegisterRequest(ctx, *value, fields...)

	case models.Credentials:
		return v.validateCredentials(ctx, value, fields...)
	case *models.Credentials:
		return v.validateCredentials(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

// isValidEmail is deliberately permissive: one "@" with something on both
// sides. Deliverability is the mail server's problem, not the validator's.
func isValidEmail(email string) bool {
	at := strings.Index(email, "@")
	return at > 0 && at < len(email)-1
}

func (v *AccountValidator) validateRegisterRequest(_ context.Context, request models.RegisterRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEmail, FieldPassword, FieldName}
	}

	for _, f := range fields {
		switch f {
		case FieldEmail:
			if !isValidEmail(request.Email) {
				return ErrInvalidEmail
			}
		case FieldPassword:
			if request.Password == "" {
				return ErrEmptyPassword
			}
		case FieldName:
			if strings.TrimSpace(request.Name) == "" {
				return ErrEmptyName
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *AccountValidator) validateCredentials(_ context.Context, credentials models.Credentials, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEmail, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldEmail:
			if credentials.Email == "" {
				return ErrInvalidEmail
			}
		case FieldPassword:
			if credentials.Password == "" {
				return ErrEmptyPassword
			}
		case FieldToken:
			if credentials.Token == "" {
				return ErrEmptyToken
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
