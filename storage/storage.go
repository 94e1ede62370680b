package storage

import (
	"context"
	"errors"

	"github.com/JC2405/medicitas-client/models"
)

// Well-known keys the mobile app has always used for its device-local
// session entries. Both backends keep them so a stored session survives a
// backend swap.
const (
	TokenKey = "userToken"
	UserKey  = "userData"
)

// ErrNotFound is returned when a session entry is absent from the store.
var ErrNotFound = errors.New("storage: entry not found")

// SessionStore is the persistent key-value storage holding the session token
// and the serialized user profile, durable across app restarts.
type SessionStore interface {
	SaveToken(ctx context.Context, token string) error
	Token(ctx context.Context) (string, error)
	SaveUser(ctx context.Context, user *models.UserProfile) error
	User(ctx context.Context) (*models.UserProfile, error)
	Clear(ctx context.Context) error
}
