package auth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"locallibrary/internal/httpx"
	"locallibrary/internal/platform/crypto"
	"locallibrary/internal/user"
)

const testSecret = "test-secret"

type mockUsers struct {
	mock.Mock
}

func (m *mockUsers) GetByEmail(ctx context.Context, email string) (user.User, error) {
	args := m.Called(ctx, email)
	return args.Get(0).(user.User), args.Error(1)
}

type mockBlacklist struct {
	mock.Mock
}

func (m *mockBlacklist) AddToken(ctx context.Context, jti, userID string, expiresAt time.Time) error {
	return m.Called(ctx, jti, userID, expiresAt).Error(0)
}

func (m *mockBlacklist) IsBlacklisted(ctx context.Context, jti string) (bool, error) {
	args := m.Called(ctx, jti)
	return args.Bool(0), args.Error(1)
}

func (m *mockBlacklist) CleanupExpired(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func TestHTTPHandler_Login(t *testing.T) {
	hash, err := crypto.HashPassword("Librarian1!")
	require.NoError(t, err)
	librarian := user.User{ID: "lib-1", Email: "lib@example.com", Password: hash, Role: user.RoleLibrarian}

	tests := []struct {
		name     string
		body     string
		setup    func(*mockUsers)
		wantCode int
	}{
		{
			name: "success",
			body: `{"email":"lib@example.com","password":"Librarian1!"}`,
			setup: func(m *mockUsers) {
				m.On("GetByEmail", mock.Anything, "lib@example.com").Return(librarian, nil)
			},
			wantCode: http.StatusOK,
		},
		{
			name: "wrong password",
			body: `{"email":"lib@example.com","password":"nope"}`,
			setup: func(m *mockUsers) {
				m.On("GetByEmail", mock.Anything, "lib@example.com").Return(librarian, nil)
			},
			wantCode: http.StatusUnauthorized,
		},
		{
			name: "unknown email",
			body: `{"email":"ghost@example.com","password":"Librarian1!"}`,
			setup: func(m *mockUsers) {
				m.On("GetByEmail", mock.Anything, "ghost@example.com").Return(user.User{}, user.ErrNotFound)
			},
			wantCode: http.StatusUnauthorized,
		},
		{
			name:     "invalid body",
			body:     `{`,
			setup:    func(*mockUsers) {},
			wantCode: http.StatusBadRequest,
		},
		{
			name:     "missing password",
			body:     `{"email":"lib@example.com"}`,
			setup:    func(*mockUsers) {},
			wantCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			users := new(mockUsers)
			tt.setup(users)
			handler := NewHTTPHandler(NewService(testSecret, time.Hour, users, new(mockBlacklist)))

			w := httptest.NewRecorder()
			handler.Login(w, httptest.NewRequest(http.MethodPost, "/accounts/login", strings.NewReader(tt.body)))

			assert.Equal(t, tt.wantCode, w.Code)
			if tt.wantCode == http.StatusOK {
				assert.Contains(t, w.Body.String(), "access_token")
			}
		})
	}
}

func TestHTTPHandler_Logout(t *testing.T) {
	token, jti, err := crypto.GenerateToken(testSecret, "lib-1", user.RoleLibrarian, time.Hour)
	require.NoError(t, err)

	t.Run("revokes token", func(t *testing.T) {
		blacklist := new(mockBlacklist)
		blacklist.On("AddToken", mock.Anything, jti, "lib-1", mock.AnythingOfType("time.Time")).Return(nil)
		handler := NewHTTPHandler(NewService(testSecret, time.Hour, new(mockUsers), blacklist))

		r := httptest.NewRequest(http.MethodPost, "/accounts/logout", nil)
		r.Header.Set("Authorization", "Bearer "+token)
		r = r.WithContext(httpx.ContextWithUser(r.Context(), "lib-1", user.RoleLibrarian))
		w := httptest.NewRecorder()
		handler.Logout(w, r)

		assert.Equal(t, http.StatusNoContent, w.Code)
		blacklist.AssertExpectations(t)
	})

	t.Run("anonymous", func(t *testing.T) {
		handler := NewHTTPHandler(NewService(testSecret, time.Hour, new(mockUsers), new(mockBlacklist)))

		w := httptest.NewRecorder()
		handler.Logout(w, httptest.NewRequest(http.MethodPost, "/accounts/logout", nil))

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}
