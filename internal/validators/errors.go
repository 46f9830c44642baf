package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidEmail   = errors.New("invalid email")
	ErrEmptyPassword  = errors.New("password is required")
	ErrEmptyName      = errors.New("name is required")
	ErrEmptyToken     = errors.New("token is required")
	ErrInvalidUserID  = errors.New("invalid user ID")
	ErrInvalidMovieID = errors.New("invalid movie ID")
)
