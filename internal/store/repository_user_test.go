package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/mattn/go-sqlite3"

	"github.com/MKhiriev/go-movie-keeper/internal/logger"
)

func newTestUserRepo(t *testing.T) (*userRepository, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.NewLogger("test")
	repo := &userRepository{
		db:     &DB{DB: db, logger: l},
		logger: l,
	}
	return repo, mock, db
}

func uniqueViolation() error {
	return sqlite3.Error{
		Code:         sqlite3.ErrConstraint,
		ExtendedCode: sqlite3.ErrConstraintUnique,
	}
}

func userColumns() []string {
	return []string{"user_id", "email", "name", "password_hash", "created_at", "updated_at"}
}

func TestCreateUser_Success(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()
	now := time.Now()

	rows := sqlmock.NewRows(userColumns()).
		AddRow(1, "john@example.com", "John", "$2a$10$hash", now, now)

	mock.ExpectQuery("INSERT INTO users").
		WithArgs("john@example.com", sqlmock.AnyArg(), "John").
		WillReturnRows(rows)

	created, err := repo.CreateUser(ctx, "john@example.com", "$2a$10$hash", "John")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.UserID != 1 {
		t.Errorf("expected UserID=1, got %d", created.UserID)
	}
	if created.Email != "john@example.com" {
		t.Errorf("expected email john@example.com, got %s", created.Email)
	}
	if created.PasswordHash != "" {
		t.Errorf("expected password hash stripped from returned user, got %q", created.PasswordHash)
	}
}

func TestCreateUser_LowercasesEmail(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()
	now := time.Now()

	rows := sqlmock.NewRows(userColumns()).
		AddRow(1, "john@example.com", "John", nil, now, now)

	mock.ExpectQuery("INSERT INTO users").
		WithArgs("john@example.com", sqlmock.AnyArg(), "John").
		WillReturnRows(rows)

	created, err := repo.CreateUser(ctx, "  John@Example.COM ", "", "John")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.Email != "john@example.com" {
		t.Errorf("expected canonical email, got %s", created.Email)
	}
}

func TestCreateUser_UniqueViolation(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("INSERT INTO users").
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnError(uniqueViolation())

	_, err := repo.CreateUser(ctx, "john@example.com", "$2a$10$hash", "John")
	if !errors.Is(err, ErrEmailAlreadyExists) {
		t.Fatalf("expected ErrEmailAlreadyExists, got %v", err)
	}
}

func TestCreateUser_UnexpectedError(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("INSERT INTO users").
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnError(errors.New("disk I/O error"))

	_, err := repo.CreateUser(ctx, "john@example.com", "$2a$10$hash", "John")
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if errors.Is(err, ErrEmailAlreadyExists) {
		t.Fatalf("unrelated error must not map onto ErrEmailAlreadyExists: %v", err)
	}
}

func TestFindUserByID_Success(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()
	now := time.Now()

	rows := sqlmock.NewRows(userColumns()).
		AddRow(7, "jane@example.com", "Jane", "$2a$10$hash", now, now)

	mock.ExpectQuery("SELECT (.+) FROM users").
		WithArgs(int64(7)).
		WillReturnRows(rows)

	user, err := repo.FindUserByID(ctx, 7)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if user.UserID != 7 {
		t.Errorf("expected UserID=7, got %d", user.UserID)
	}
	if user.PasswordHash != "" {
		t.Errorf("expected password hash stripped, got %q", user.PasswordHash)
	}
}

func TestFindUserByID_NotFound(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("SELECT (.+) FROM users").
		WithArgs(int64(404)).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.FindUserByID(ctx, 404)
	if !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestFindUserByID_NotFound_EmptyResult(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()

	// No error at query time, the miss only surfaces when Scan runs.
	mock.ExpectQuery("SELECT (.+) FROM users").
		WithArgs(int64(404)).
		WillReturnRows(sqlmock.NewRows(userColumns()))

	_, err := repo.FindUserByID(ctx, 404)
	if !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestFindUserByEmailWithPassword_KeepsHash(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()
	now := time.Now()

	rows := sqlmock.NewRows(userColumns()).
		AddRow(3, "jane@example.com", "Jane", "$2a$10$hash", now, now)

	mock.ExpectQuery("SELECT (.+) FROM users").
		WithArgs("jane@example.com").
		WillReturnRows(rows)

	user, err := repo.FindUserByEmailWithPassword(ctx, "Jane@Example.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if user.PasswordHash != "$2a$10$hash" {
		t.Errorf("expected hash preserved for credential check, got %q", user.PasswordHash)
	}
}

func TestFindUserByEmailWithPassword_NotFound(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("SELECT (.+) FROM users").
		WithArgs("ghost@example.com").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.FindUserByEmailWithPassword(ctx, "ghost@example.com")
	if !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestFindUserByEmailWithPassword_NotFound_EmptyResult(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("SELECT (.+) FROM users").
		WithArgs("ghost@example.com").
		WillReturnRows(sqlmock.NewRows(userColumns()))

	_, err := repo.FindUserByEmailWithPassword(ctx, "ghost@example.com")
	if !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}
