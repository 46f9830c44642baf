package store

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/MKhiriev/go-movie-keeper/internal/config"
	"github.com/MKhiriev/go-movie-keeper/internal/logger"
)

// newTestDB opens a private in-memory SQLite database with the schema
// migrated, exercising the same connect path as production.
func newTestDB(t *testing.T) *DB {
	t.Helper()

	l := logger.NewLogger("test")
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := NewConnectSQLite(context.Background(), config.DB{DSN: dsn}, l)
	if err != nil {
		t.Fatalf("failed to open in-memory database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if err := db.Migrate(); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	return db
}

func TestSQLite_UserRoundTrip(t *testing.T) {
	db := newTestDB(t)
	l := logger.NewLogger("test")
	repos := NewRepositories(db, l)
	ctx := context.Background()

	created, err := repos.UserRepository.CreateUser(ctx, "John@Example.com", "$2a$10$hash", "John")
	if err != nil {
		t.Fatalf("unexpected error creating user: %v", err)
	}
	if created.UserID == 0 {
		t.Error("expected assigned UserID")
	}
	if created.Email != "john@example.com" {
		t.Errorf("expected canonical email, got %s", created.Email)
	}
	if created.PasswordHash != "" {
		t.Errorf("expected hash stripped, got %q", created.PasswordHash)
	}

	found, err := repos.UserRepository.FindUserByID(ctx, created.UserID)
	if err != nil {
		t.Fatalf("unexpected error finding user: %v", err)
	}
	if found.Email != created.Email {
		t.Errorf("expected email %s, got %s", created.Email, found.Email)
	}
	if found.PasswordHash != "" {
		t.Errorf("expected hash stripped on lookup, got %q", found.PasswordHash)
	}

	withHash, err := repos.CredentialStore.FindUserByEmailWithPassword(ctx, "john@example.com")
	if err != nil {
		t.Fatalf("unexpected error on credential lookup: %v", err)
	}
	if withHash.PasswordHash != "$2a$10$hash" {
		t.Errorf("expected hash preserved on credential lookup, got %q", withHash.PasswordHash)
	}

	_, err = repos.UserRepository.CreateUser(ctx, "JOHN@example.com", "$2a$10$other", "John2")
	if !errors.Is(err, ErrEmailAlreadyExists) {
		t.Fatalf("expected ErrEmailAlreadyExists for same email in different case, got %v", err)
	}
}

func TestSQLite_FavoritesLifecycle(t *testing.T) {
	db := newTestDB(t)
	l := logger.NewLogger("test")
	repos := NewRepositories(db, l)
	ctx := context.Background()

	user, err := repos.UserRepository.CreateUser(ctx, "jane@example.com", "$2a$10$hash", "Jane")
	if err != nil {
		t.Fatalf("unexpected error creating user: %v", err)
	}

	favorites, err := repos.FavoriteRepository.GetFavorites(ctx, user.UserID)
	if err != nil {
		t.Fatalf("unexpected error listing favorites: %v", err)
	}
	if favorites == nil || len(favorites) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", favorites)
	}

	for _, movieID := range []string{"tt0133093", "tt0234215", "tt0242653"} {
		if _, err := repos.FavoriteRepository.AddFavorite(ctx, user.UserID, movieID); err != nil {
			t.Fatalf("unexpected error adding favorite %s: %v", movieID, err)
		}
	}

	_, err = repos.FavoriteRepository.AddFavorite(ctx, user.UserID, "tt0133093")
	if !errors.Is(err, ErrFavoriteAlreadyExists) {
		t.Fatalf("expected ErrFavoriteAlreadyExists on duplicate, got %v", err)
	}

	favorites, err = repos.FavoriteRepository.GetFavorites(ctx, user.UserID)
	if err != nil {
		t.Fatalf("unexpected error listing favorites: %v", err)
	}
	want := []string{"tt0133093", "tt0234215", "tt0242653"}
	if len(favorites) != len(want) {
		t.Fatalf("expected %d favorites, got %d", len(want), len(favorites))
	}
	for i := range want {
		if favorites[i] != want[i] {
			t.Errorf("favorites[%d]: expected %s, got %s", i, want[i], favorites[i])
		}
	}

	if err := repos.FavoriteRepository.RemoveFavorite(ctx, user.UserID, "tt0234215"); err != nil {
		t.Fatalf("unexpected error removing favorite: %v", err)
	}
	err = repos.FavoriteRepository.RemoveFavorite(ctx, user.UserID, "tt0234215")
	if !errors.Is(err, ErrFavoriteNotFound) {
		t.Fatalf("expected ErrFavoriteNotFound on second remove, got %v", err)
	}
}

func TestSQLite_AddFavoriteForMissingUser(t *testing.T) {
	db := newTestDB(t)
	l := logger.NewLogger("test")
	repos := NewRepositories(db, l)
	ctx := context.Background()

	_, err := repos.FavoriteRepository.AddFavorite(ctx, 12345, "tt0133093")
	if !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}
