package context

import (
	"context"

	"bizdir/internal/domain/authz"
)

// WithCaller returns a new context carrying the authenticated caller identity.
func WithCaller(ctx context.Context, caller authz.Caller) context.Context {
	return context.WithValue(ctx, KeyCaller, caller)
}

// GetCaller extracts the caller identity from the context. Requests that
// never passed the authentication middleware yield the anonymous caller.
func GetCaller(ctx context.Context) authz.Caller {
	if caller, ok := ctx.Value(KeyCaller).(authz.Caller); ok {
		return caller
	}

	return authz.Anonymous()
}
