package session

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/JC2405/medicitas-client/models"
	"github.com/JC2405/medicitas-client/storage"
	"github.com/JC2405/medicitas-client/utils/logger"
)

// ErrEmptyToken is returned by Commit when called without a token.
var ErrEmptyToken = errors.New("session: token is required")

// Manager is the single source of truth for "is someone logged in, and as
// what". It owns the in-memory session and keeps it in sync with the
// persistent store. Construct it once at the top of the host application and
// pass it down explicitly.
type Manager struct {
	store storage.SessionStore

	mu          sync.Mutex
	current     models.Session
	initialized bool
	onChange    []func(models.Session)
}

func NewManager(store storage.SessionStore) *Manager {
	return &Manager{
		store:   store,
		current: models.Session{Loading: true},
	}
}

// OnChange registers a hook invoked synchronously after every session change
// (restore, commit, clear) with a snapshot of the new session. Register hooks
// before Initialize.
func (m *Manager) OnChange(fn func(models.Session)) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.onChange = append(m.onChange, fn)
}

// Initialize restores the session from the persistent store. It runs exactly
// once per process; later calls are no-ops. It never fails: read errors are
// logged and treated as "no session", and the loading flag always ends up
// false.
func (m *Manager) Initialize(ctx context.Context) {
	m.mu.Lock()
	if m.initialized {
		m.mu.Unlock()
		return
	}
	m.initialized = true
	m.mu.Unlock()

	token, err := m.store.Token(ctx)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			logger.LogWarn("session restore: token read failed", zap.Error(err))
		}
		token = ""
	}

	var user *models.UserProfile
	if token != "" {
		user, err = m.store.User(ctx)
		if err != nil {
			if !errors.Is(err, storage.ErrNotFound) {
				logger.LogWarn("session restore: user read failed", zap.Error(err))
			}
			user = nil
		}
	}

	m.mu.Lock()
	m.current = models.Session{Token: token, User: user}
	snap := m.current
	m.mu.Unlock()

	logger.LogDebug("session restored",
		zap.Bool("authenticated", snap.Authenticated()),
		zap.Bool("has_user", snap.User != nil))
	m.notify(snap)
}

// Commit persists the token (required) and the user profile (optional), then
// replaces the in-memory session. The commit is atomic: when a store write
// fails the in-memory session is left untouched and the error is returned.
func (m *Manager) Commit(ctx context.Context, token string, user *models.UserProfile) error {
	if token == "" {
		return ErrEmptyToken
	}

	if err := m.store.SaveToken(ctx, token); err != nil {
		return fmt.Errorf("session: persist token: %w", err)
	}
	if user != nil {
		if err := m.store.SaveUser(ctx, user); err != nil {
			return fmt.Errorf("session: persist user: %w", err)
		}
	}

	m.mu.Lock()
	m.current = models.Session{Token: token, User: user}
	snap := m.current
	m.mu.Unlock()

	logger.LogInfo("session committed", zap.Bool("has_user", user != nil))
	m.notify(snap)
	return nil
}

// Clear removes the persisted session and empties the in-memory one. The
// in-memory session is emptied even when the store removal fails, so a local
// logout never depends on storage or on server acknowledgement.
func (m *Manager) Clear(ctx context.Context) error {
	storeErr := m.store.Clear(ctx)

	m.mu.Lock()
	m.current = models.Session{}
	snap := m.current
	m.mu.Unlock()

	logger.LogInfo("session cleared")
	m.notify(snap)

	if storeErr != nil {
		return fmt.Errorf("session: clear store: %w", storeErr)
	}
	return nil
}

// Snapshot returns a copy of the current session.
func (m *Manager) Snapshot() models.Session {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.current
}

func (m *Manager) Token() string {
	return m.Snapshot().Token
}

func (m *Manager) User() *models.UserProfile {
	return m.Snapshot().User
}

func (m *Manager) Loading() bool {
	return m.Snapshot().Loading
}

func (m *Manager) notify(snap models.Session) {
	m.mu.Lock()
	hooks := make([]func(models.Session), len(m.onChange))
	copy(hooks, m.onChange)
	m.mu.Unlock()

	for _, fn := range hooks {
		fn(snap)
	}
}
