package auth

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"locallibrary/internal/httpx"
	"locallibrary/internal/user"
)

// PermissionChecker answers whether an account holds a named permission.
type PermissionChecker interface {
	HasPermission(ctx context.Context, userID, permission string) (bool, error)
}

type Guard struct {
	checker PermissionChecker
}

func NewGuard(checker PermissionChecker) *Guard {
	return &Guard{checker: checker}
}

// RequireAll returns nil only when id holds every permission in perms.
// Anonymous identities and lookup failures are denied.
func (g *Guard) RequireAll(ctx context.Context, id Identity, perms ...string) error {
	if id.IsAnonymous() {
		return ErrPermissionDenied
	}
	if id.Role == user.RoleAdmin {
		return nil
	}
	for _, perm := range perms {
		ok, err := g.checker.HasPermission(ctx, id.UserID, perm)
		if err != nil {
			return fmt.Errorf("check permission %s: %w", perm, err)
		}
		if !ok {
			return ErrPermissionDenied
		}
	}
	return nil
}

// RequireLogin returns ErrUnauthenticated for anonymous identities.
func RequireLogin(id Identity) error {
	if id.IsAnonymous() {
		return ErrUnauthenticated
	}
	return nil
}

// Authorizer is satisfied by *Guard; handlers depend on it so tests can
// substitute a fixed decision.
type Authorizer interface {
	RequireAll(ctx context.Context, id Identity, perms ...string) error
}

// Authorize checks perms for the request's identity and writes the failure
// response itself. Handlers call it before touching any data.
func Authorize(w http.ResponseWriter, r *http.Request, a Authorizer, perms ...string) bool {
	err := a.RequireAll(r.Context(), IdentityFrom(r), perms...)
	switch {
	case err == nil:
		return true
	case errors.Is(err, ErrPermissionDenied):
		httpx.Forbidden(w, r)
	default:
		httpx.InternalError(w, r)
	}
	return false
}
