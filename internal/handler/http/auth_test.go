// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-movie-keeper/internal/logger"
	"github.com/MKhiriev/go-movie-keeper/internal/mock"
	"github.com/MKhiriev/go-movie-keeper/internal/service"
	"github.com/MKhiriev/go-movie-keeper/internal/store"
	"github.com/MKhiriev/go-movie-keeper/models"
)

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

type testMocks struct {
	auth      *mock.MockAuthService
	movies    *mock.MockMovieService
	favorites *mock.MockFavoriteService
}

// newTestRouter builds the full chi router backed by gomock services.
func newTestRouter(t *testing.T) (http.Handler, testMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)

	mocks := testMocks{
		auth:      mock.NewMockAuthService(ctrl),
		movies:    mock.NewMockMovieService(ctrl),
		favorites: mock.NewMockFavoriteService(ctrl),
	}
	services := &service.Services{
		AuthService:     mocks.auth,
		MovieService:    mocks.movies,
		FavoriteService: mocks.favorites,
	}
	return NewHandler(services, logger.Nop()).Init(), mocks
}

// stubToken returns a models.Token with the given signed string.
func stubToken(signed string) models.Token {
	return models.Token{SignedString: signed}
}

func decodeError(t *testing.T, body string) string {
	t.Helper()
	var resp models.ErrorResponse
	require.NoError(t, json.Unmarshal([]byte(body), &resp))
	return resp.Error
}

var testPrincipal = models.Principal{UserID: 1, Email: "alice@example.com", Name: "Alice"}

// ─────────────────────────────────────────────
// register
// ─────────────────────────────────────────────

func TestRegister_Success(t *testing.T) {
	router, mocks := newTestRouter(t)

	registered := models.User{UserID: 1, Email: "alice@example.com", Name: "Alice"}
	mocks.auth.EXPECT().
		Register(gomock.Any(), "alice@example.com", "s3cret", "Alice").
		Return(registered, nil)
	mocks.auth.EXPECT().
		CreateToken(gomock.Any(), registered.Principal()).
		Return(stubToken("signed.jwt.token"), nil)

	req := httptest.NewRequest(http.MethodPost, "/api/auth/register",
		strings.NewReader(`{"email": "alice@example.com", "password": "s3cret", "name": "Alice"}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "Bearer signed.jwt.token", rec.Header().Get("Authorization"))

	var resp models.AuthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, registered.Principal(), resp.User)
	assert.Equal(t, "signed.jwt.token", resp.Token)
}

func TestRegister_InvalidJSON(t *testing.T) {
	router, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/api/auth/register", strings.NewReader(`{not json`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRegister_InvalidData(t *testing.T) {
	router, mocks := newTestRouter(t)

	mocks.auth.EXPECT().
		Register(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(models.User{}, service.ErrInvalidDataProvided)

	req := httptest.NewRequest(http.MethodPost, "/api/auth/register",
		strings.NewReader(`{"email": "no-at-sign", "password": "x", "name": "X"}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	router, mocks := newTestRouter(t)

	mocks.auth.EXPECT().
		Register(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(models.User{}, store.ErrEmailAlreadyExists)

	req := httptest.NewRequest(http.MethodPost, "/api/auth/register",
		strings.NewReader(`{"email": "dup@example.com", "password": "x", "name": "Dup"}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, store.ErrEmailAlreadyExists.Error(), decodeError(t, rec.Body.String()))
}

func TestRegister_CreateTokenFails(t *testing.T) {
	router, mocks := newTestRouter(t)

	registered := models.User{UserID: 1, Email: "alice@example.com", Name: "Alice"}
	mocks.auth.EXPECT().
		Register(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(registered, nil)
	mocks.auth.EXPECT().
		CreateToken(gomock.Any(), gomock.Any()).
		Return(models.Token{}, service.ErrTokenCreationFailed)

	req := httptest.NewRequest(http.MethodPost, "/api/auth/register",
		strings.NewReader(`{"email": "alice@example.com", "password": "s3cret", "name": "Alice"}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

// ─────────────────────────────────────────────
// login
// ─────────────────────────────────────────────

func TestLogin_Success(t *testing.T) {
	router, mocks := newTestRouter(t)

	mocks.auth.EXPECT().
		Login(gomock.Any(), models.Credentials{Email: "alice@example.com", Password: "s3cret"}).
		Return(testPrincipal, nil)
	mocks.auth.EXPECT().
		CreateToken(gomock.Any(), testPrincipal).
		Return(stubToken("signed.jwt.token"), nil)

	req := httptest.NewRequest(http.MethodPost, "/api/auth/login",
		strings.NewReader(`{"email": "alice@example.com", "password": "s3cret"}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Bearer signed.jwt.token", rec.Header().Get("Authorization"))

	var resp models.AuthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, testPrincipal, resp.User)
}

func TestLogin_InvalidCredentials(t *testing.T) {
	router, mocks := newTestRouter(t)

	mocks.auth.EXPECT().
		Login(gomock.Any(), gomock.Any()).
		Return(models.Principal{}, service.ErrInvalidCredentials)

	req := httptest.NewRequest(http.MethodPost, "/api/auth/login",
		strings.NewReader(`{"email": "alice@example.com", "password": "wrong"}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	// Generic message regardless of whether the email or the password was
	// wrong.
	assert.Equal(t, service.ErrInvalidCredentials.Error(), decodeError(t, rec.Body.String()))
}

func TestLogin_InvalidJSON(t *testing.T) {
	router, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(`]`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

// ─────────────────────────────────────────────
// me / logout
// ─────────────────────────────────────────────

func TestMe_Success(t *testing.T) {
	router, mocks := newTestRouter(t)

	mocks.auth.EXPECT().
		ParseToken(gomock.Any(), "valid.token").
		Return(testPrincipal, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	req.Header.Set("Authorization", "Bearer valid.token")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp models.Principal
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, testPrincipal, resp)
}

func TestLogout_Success(t *testing.T) {
	router, mocks := newTestRouter(t)

	mocks.auth.EXPECT().
		ParseToken(gomock.Any(), "valid.token").
		Return(testPrincipal, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/auth/logout", nil)
	req.Header.Set("Authorization", "Bearer valid.token")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "logged out")
}
