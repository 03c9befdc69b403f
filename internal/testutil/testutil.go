package testutil

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"locallibrary/internal/auth"
	"locallibrary/internal/httpx"
	"locallibrary/internal/platform/crypto"
	"locallibrary/internal/user"
)

// TestLibrarian holds catalog.can_mark_returned in handler tests.
var TestLibrarian = user.User{
	ID:       "5f0c7a52-1c1e-4d4b-9d5e-0a7f3c6c1a01",
	Username: "librarian",
	Email:    "librarian@example.com",
	Role:     user.RoleLibrarian,
}

// TestReader is a plain borrower without catalogue permissions.
var TestReader = user.User{
	ID:       "5f0c7a52-1c1e-4d4b-9d5e-0a7f3c6c1a02",
	Username: "reader",
	Email:    "reader@example.com",
	Role:     user.RoleUser,
}

// GenerateTestToken generates a JWT token for testing
func GenerateTestToken(secret, userID, role string) string {
	token, _, _ := crypto.GenerateToken(secret, userID, role, time.Hour)
	return token
}

// GenerateExpiredToken generates an expired JWT token for testing
func GenerateExpiredToken(secret, userID, role string) string {
	c := crypto.Claims{
		Sub:  userID,
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    crypto.Issuer,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-2 * time.Hour)),
		},
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, c)
	token, _ := t.SignedString([]byte(secret))
	return token
}

// NewRequest creates a new HTTP request for testing
func NewRequest(method, path string, body any) *http.Request {
	var bodyBytes []byte
	if body != nil {
		bodyBytes, _ = json.Marshal(body)
	}
	var r *http.Request
	if bodyBytes != nil {
		r = httptest.NewRequest(method, path, bytes.NewReader(bodyBytes))
		r.Header.Set("Content-Type", "application/json")
	} else {
		r = httptest.NewRequest(method, path, nil)
	}
	return r
}

// NewRequestAs builds a request already carrying u's identity, as if
// httpx.IdentityMiddleware had run.
func NewRequestAs(method, path string, body any, u user.User) *http.Request {
	r := NewRequest(method, path, body)
	return r.WithContext(httpx.ContextWithUser(r.Context(), u.ID, u.Role))
}

// RecordResponse records the HTTP response for testing
type RecordResponse struct {
	Code   int
	Header http.Header
	Body   map[string]any
}

// RecordHTTPResponse records the HTTP response
func RecordHTTPResponse(w *httptest.ResponseRecorder) RecordResponse {
	result := w.Result()
	defer result.Body.Close()

	bodyBytes, _ := io.ReadAll(result.Body)

	var bodyMap map[string]any
	if len(bodyBytes) > 0 {
		_ = json.NewDecoder(bytes.NewReader(bodyBytes)).Decode(&bodyMap)
	}

	return RecordResponse{
		Code:   result.StatusCode,
		Header: result.Header,
		Body:   bodyMap,
	}
}

// Authorizer is a fixed-decision auth.Authorizer that records every check.
type Authorizer struct {
	mu    sync.Mutex
	err   error
	Calls []auth.Identity
}

// AllowAll grants every permission.
func AllowAll() *Authorizer { return &Authorizer{} }

// DenyAll refuses every permission with auth.ErrPermissionDenied.
func DenyAll() *Authorizer { return &Authorizer{err: auth.ErrPermissionDenied} }

func (a *Authorizer) RequireAll(_ context.Context, id auth.Identity, _ ...string) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.Calls = append(a.Calls, id)
	return a.err
}
