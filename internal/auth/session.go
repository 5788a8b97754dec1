package auth

import (
	"context"
	"time"
)

// Session is the authenticated caller. It is built once at the HTTP edge and
// handed down through context; nothing reads credentials from anywhere else.
type Session struct {
	UserID    string
	Role      Role
	Token     string
	ExpiresAt time.Time
}

// Guest is the session of an anonymous caller.
func Guest() Session {
	return Session{Role: RoleGuest}
}

// Authenticated reports whether the session carries a token.
func (s Session) Authenticated() bool {
	return s.Token != ""
}

type ctxKey struct{}

// NewContext returns a copy of ctx carrying s.
func NewContext(ctx context.Context, s Session) context.Context {
	return context.WithValue(ctx, ctxKey{}, s)
}

// FromContext returns the session stored in ctx, if any.
func FromContext(ctx context.Context) (Session, bool) {
	s, ok := ctx.Value(ctxKey{}).(Session)
	return s, ok
}
