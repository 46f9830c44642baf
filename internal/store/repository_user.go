package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-movie-keeper/internal/logger"
	"github.com/MKhiriev/go-movie-keeper/models"
)

type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs the repository backing both the hash-free
// [UserRepository] surface and the narrow [CredentialStore] accessor.
func NewUserRepository(db *DB, logger *logger.Logger) *userRepository {
	logger.Debug().Msg("UserRepository created")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// CreateUser inserts a new user row. The email is normalised to lowercase
// before the insert so the unique constraint applies to the canonical form.
// A unique violation is translated into ErrEmailAlreadyExists; the raw
// storage error never crosses the repository boundary for that case.
//
// The returned user is re-read from the RETURNING clause and stripped of
// the password hash.
func (r *userRepository) CreateUser(ctx context.Context, email, passwordHash, name string) (models.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	var hash sql.NullString
	if passwordHash != "" {
		hash = sql.NullString{String: passwordHash, Valid: true}
	}

	row := r.db.QueryRowContext(ctx, createUser, email, hash, name)
	if err := row.Err(); err != nil {
		r.logger.Err(err).Str("func", "*userRepository.CreateUser").Msg("error: row is nil")
		return models.User{}, classifyUserError(err)
	}

	user, err := scanUser(row)
	if err != nil {
		r.logger.Err(err).Str("func", "*userRepository.CreateUser").Msg("error: scanning error")
		return models.User{}, classifyUserError(err)
	}

	return user.Public(), nil
}

// FindUserByID returns the user with the given ID, hash stripped, or
// ErrUserNotFound. Used both for profile retrieval and for the token
// strategy's re-validation of account existence.
func (r *userRepository) FindUserByID(ctx context.Context, userID int64) (models.User, error) {
	row := r.db.QueryRowContext(ctx, findUserByID, userID)
	if err := row.Err(); err != nil {
		r.logger.Err(err).Str("func", "*userRepository.FindUserByID").Msg("error: row is nil")
		return models.User{}, classifyUserError(err)
	}

	user, err := scanUser(row)
	if err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			r.logger.Err(err).Str("func", "*userRepository.FindUserByID").Msg("error: scanning error")
		}
		return models.User{}, classifyUserError(err)
	}

	return user.Public(), nil
}

// FindUserByEmailWithPassword is the one lookup permitted to return the
// password hash. It backs the [CredentialStore] interface consumed
// exclusively by the local credential strategy.
func (r *userRepository) FindUserByEmailWithPassword(ctx context.Context, email string) (models.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	row := r.db.QueryRowContext(ctx, findUserByEmail, email)
	if err := row.Err(); err != nil {
		r.logger.Err(err).Str("func", "*userRepository.FindUserByEmailWithPassword").Msg("error: row is nil")
		return models.User{}, classifyUserError(err)
	}

	user, err := scanUser(row)
	if err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			r.logger.Err(err).Str("func", "*userRepository.FindUserByEmailWithPassword").Msg("error: scanning error")
		}
		return models.User{}, classifyUserError(err)
	}

	return user, nil
}

// scanUser reads one user row, mapping the nullable password_hash column
// onto the empty string for accounts created through a non-password path.
func scanUser(row *sql.Row) (models.User, error) {
	var user models.User
	var hash sql.NullString

	if err := row.Scan(&user.UserID, &user.Email, &user.Name, &hash, &user.CreatedAt, &user.UpdatedAt); err != nil {
		return models.User{}, err
	}

	user.PasswordHash = hash.String
	return user, nil
}

// classifyUserError maps low-level write errors onto domain sentinels.
func classifyUserError(err error) error {
	switch {
	case isUniqueViolation(err):
		return ErrEmailAlreadyExists
	case errors.Is(err, sql.ErrNoRows):
		return ErrUserNotFound
	default:
		return fmt.Errorf("unexpected DB error: %w", err)
	}
}
