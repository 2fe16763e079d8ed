package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"health-tracker/config"
	"health-tracker/pkg/jwt"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockTokenStore struct {
	mock.Mock
}

func (m *mockTokenStore) StorePair(ctx context.Context, userID uint, accessID string, accessTTL time.Duration, refreshID string, refreshTTL time.Duration) error {
	args := m.Called(ctx, userID, accessID, accessTTL, refreshID, refreshTTL)
	return args.Error(0)
}

func (m *mockTokenStore) IsAccessValid(ctx context.Context, userID uint, tokenID string) (bool, error) {
	args := m.Called(ctx, userID, tokenID)
	return args.Bool(0), args.Error(1)
}

func (m *mockTokenStore) IsRefreshValid(ctx context.Context, userID uint, tokenID string) (bool, error) {
	args := m.Called(ctx, userID, tokenID)
	return args.Bool(0), args.Error(1)
}

func (m *mockTokenStore) RevokeRefresh(ctx context.Context, userID uint, tokenID string) error {
	return m.Called(ctx, userID, tokenID).Error(0)
}

func (m *mockTokenStore) Revoke(ctx context.Context, userID uint, accessID, refreshID string) error {
	return m.Called(ctx, userID, accessID, refreshID).Error(0)
}

func (m *mockTokenStore) RevokeAll(ctx context.Context, userID uint) error {
	return m.Called(ctx, userID).Error(0)
}

func newTestJWTService() *jwt.JWTService {
	return jwt.NewJWTService(config.JWTConfig{
		Secret:        "test-secret",
		AccessExpiry:  time.Minute,
		RefreshExpiry: time.Hour,
	})
}

// echoUser checks the context values set by Authenticate
func echoUser(t *testing.T, want uint) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, ok := GetUserIDFromContext(r.Context())
		require.True(t, ok)
		assert.Equal(t, want, userID)
		_, ok = GetTokenIDFromContext(r.Context())
		assert.True(t, ok)
		w.WriteHeader(http.StatusNoContent)
	})
}

func serve(h http.Handler, header string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/goals", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestAuthenticateAcceptsStoredAccessToken(t *testing.T) {
	jwtService := newTestJWTService()
	token, tokenID, err := jwtService.GenerateAccessToken(7, "u@example.com")
	require.NoError(t, err)

	store := new(mockTokenStore)
	store.On("IsAccessValid", mock.Anything, uint(7), tokenID).Return(true, nil)

	h := NewAuthMiddleware(jwtService, store).Authenticate(echoUser(t, 7))
	rec := serve(h, "Bearer "+token)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	store.AssertExpectations(t)
}

func TestAuthenticateRejections(t *testing.T) {
	jwtService := newTestJWTService()
	access, accessID, err := jwtService.GenerateAccessToken(7, "u@example.com")
	require.NoError(t, err)
	refresh, _, err := jwtService.GenerateRefreshToken(7, "u@example.com")
	require.NoError(t, err)

	store := new(mockTokenStore)
	store.On("IsAccessValid", mock.Anything, uint(7), accessID).Return(false, nil)

	h := NewAuthMiddleware(jwtService, store).Authenticate(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not run")
	}))

	tests := []struct {
		name   string
		header string
	}{
		{"missing header", ""},
		{"wrong scheme", "Token " + access},
		{"garbage token", "Bearer not-a-jwt"},
		{"refresh token", "Bearer " + refresh},
		{"revoked token", "Bearer " + access},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, http.StatusUnauthorized, serve(h, tt.header).Code)
		})
	}
}

func TestAuthenticateStoreFailure(t *testing.T) {
	jwtService := newTestJWTService()
	token, tokenID, err := jwtService.GenerateAccessToken(3, "u@example.com")
	require.NoError(t, err)

	store := new(mockTokenStore)
	store.On("IsAccessValid", mock.Anything, uint(3), tokenID).Return(false, errors.New("redis down"))

	h := NewAuthMiddleware(jwtService, store).Authenticate(http.NotFoundHandler())
	assert.Equal(t, http.StatusInternalServerError, serve(h, "Bearer "+token).Code)
}

func TestCORSPreflight(t *testing.T) {
	h := NewCORSMiddleware().Handle(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("preflight must not reach the handler")
	}))

	req := httptest.NewRequest(http.MethodOptions, "/api/v1/goals", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, rec.Header().Get("Access-Control-Allow-Methods"), "PATCH")
}

func TestCORSAllowList(t *testing.T) {
	h := NewCORSMiddleware("https://app.example.com").Handle(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))

	tests := []struct {
		origin string
		want   string
	}{
		{"https://app.example.com", "https://app.example.com"},
		{"https://evil.example.com", ""},
		{"", ""},
	}
	for _, tt := range tests {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/goals", nil)
		if tt.origin != "" {
			req.Header.Set("Origin", tt.origin)
		}
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.Equal(t, tt.want, rec.Header().Get("Access-Control-Allow-Origin"), tt.origin)
	}
}

func TestMetricsRecordsStatus(t *testing.T) {
	h := Metrics(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/nowhere", nil))
	assert.Equal(t, http.StatusTeapot, rec.Code)
}
