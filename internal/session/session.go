package session

import (
	"context"
	"errors"
	"net/http"
)

// CookieName carries the visitor session id.
const CookieName = "sessionid"

// KeyNumVisits counts index page views per visitor.
const KeyNumVisits = "num_visits"

var ErrNoSession = errors.New("no visitor session")

type contextKey struct{}

// IDFrom returns the visitor session id attached by Middleware.
func IDFrom(r *http.Request) string {
	return IDFromContext(r.Context())
}

func IDFromContext(ctx context.Context) string {
	if v, ok := ctx.Value(contextKey{}).(string); ok {
		return v
	}
	return ""
}

func ContextWithID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, contextKey{}, id)
}
