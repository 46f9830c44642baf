package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrInvalidCredentials covers every authentication failure whose cause
	// must stay hidden from the caller: unknown email, wrong password,
	// token pointing at a deleted account. One sentinel, one message.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrPasswordAuthUnavailable is returned for accounts that have no
	// stored password hash and therefore cannot log in with a password.
	ErrPasswordAuthUnavailable = errors.New("password authentication is not available for this account")

	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
)
