// Package requestctx provides request-scoped values (e.g. session_id) set by
// middleware.
package requestctx

import "context"

type contextKey struct{}

var sessionIDKey = &contextKey{}

// SetSessionID stores session_id in the context.
func SetSessionID(ctx context.Context, sessionID string) context.Context {
	return context.WithValue(ctx, sessionIDKey, sessionID)
}

// SessionID returns the session_id from context, or "" if not set.
func SessionID(ctx context.Context) string {
	v, _ := ctx.Value(sessionIDKey).(string)
	return v
}
