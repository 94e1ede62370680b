package session

import (
	"golang.org/x/net/context"

	"github.com/JC2405/medicitas-client/models"
)

type contextKey string

const sessionContextKey contextKey = "requestSession"

// WithSession attaches a session snapshot to the context so screen code can
// reach it without threading the manager through every call.
func WithSession(ctx context.Context, s models.Session) context.Context {
	return context.WithValue(ctx, sessionContextKey, s)
}

// FromContext returns the session attached by WithSession, if any.
func FromContext(ctx context.Context) (models.Session, bool) {
	s, ok := ctx.Value(sessionContextKey).(models.Session)
	return s, ok
}
