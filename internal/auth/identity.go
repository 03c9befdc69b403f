package auth

import (
	"errors"
	"net/http"

	"locallibrary/internal/httpx"
)

// PermCanMarkReturned gates loan renewal, the all-borrowed listing and every
// catalogue mutation.
const PermCanMarkReturned = "catalog.can_mark_returned"

var (
	ErrUnauthorized     = errors.New("unauthorized")
	ErrUnauthenticated  = errors.New("authentication required")
	ErrPermissionDenied = errors.New("permission denied")
)

// Identity is the acting user of a request. The zero value is anonymous.
type Identity struct {
	UserID string
	Role   string
}

func (i Identity) IsAnonymous() bool {
	return i.UserID == ""
}

// IdentityFrom reads the identity placed on the request by
// httpx.IdentityMiddleware.
func IdentityFrom(r *http.Request) Identity {
	return Identity{UserID: httpx.UserIDFrom(r), Role: httpx.RoleFrom(r)}
}
