package app

import (
	"context"

	"go.uber.org/zap"

	"github.com/JC2405/medicitas-client/client"
	"github.com/JC2405/medicitas-client/config"
	"github.com/JC2405/medicitas-client/enums"
	"github.com/JC2405/medicitas-client/navigation"
	"github.com/JC2405/medicitas-client/roles"
	"github.com/JC2405/medicitas-client/services"
	"github.com/JC2405/medicitas-client/session"
	"github.com/JC2405/medicitas-client/storage"
	"github.com/JC2405/medicitas-client/utils/logger"
)

// App owns the client's long-lived pieces and wires them with explicit
// dependency injection: store → session manager → router, and the API client
// with its unauthorized hook pointing back at the session. Nothing here is a
// package-level mutable; the host application holds the App.
type App struct {
	Config   *config.Config
	Store    storage.SessionStore
	Sessions *session.Manager
	Router   *navigation.Router
	API      *client.Client
	Services *services.Services
}

// New builds an App on the default file-backed session store.
func New(cfg *config.Config) *App {
	return NewWithStore(cfg, storage.NewFileStore(cfg.StorePath))
}

// NewWithStore builds an App on an injected session store (Redis, or a fake
// in tests).
func NewWithStore(cfg *config.Config, store storage.SessionStore) *App {
	sessions := session.NewManager(store)
	router := navigation.NewRouter(sessions)
	api := client.New(client.Config{
		BaseURL: cfg.BaseURL,
		Timeout: cfg.Timeout,
		Store:   store,
	})

	a := &App{
		Config:   cfg,
		Store:    store,
		Sessions: sessions,
		Router:   router,
		API:      api,
		Services: services.New(api),
	}

	// A credential rejection that survives the refresh attempt ends the
	// local session, independent of whatever alert the screen shows.
	api.OnUnauthorized(func() {
		if err := sessions.Clear(context.Background()); err != nil {
			logger.LogWarn("session clear after rejection failed", zap.Error(err))
		}
	})

	return a
}

// Start restores the session from the store and returns the screen group to
// mount first.
func (a *App) Start(ctx context.Context) navigation.Screen {
	a.Sessions.Initialize(ctx)
	return a.Router.Current()
}

// Login authenticates and commits the new session; the router re-evaluates
// as a side effect of the commit.
func (a *App) Login(ctx context.Context, email, password string) (*services.LoginResult, error) {
	result, err := a.Services.Auth.Login(ctx, services.LoginRequest{
		Email:    email,
		Password: password,
	})
	if err != nil {
		return nil, err
	}
	if err := a.Sessions.Commit(ctx, result.Token, result.User); err != nil {
		return nil, err
	}
	return result, nil
}

// Logout revokes the session remotely when possible and always clears it
// locally; the remote call failing never blocks the local logout.
func (a *App) Logout(ctx context.Context) error {
	if err := a.Services.Auth.Logout(ctx); err != nil {
		logger.LogWarn("remote logout failed, clearing local session anyway", zap.Error(err))
	}
	return a.Sessions.Clear(ctx)
}

// Role resolves the routing role for the current session.
func (a *App) Role() enums.Role {
	return roles.Resolve(a.Sessions.User())
}

// SessionContext attaches the current session snapshot to ctx for screen
// code.
func (a *App) SessionContext(ctx context.Context) context.Context {
	return session.WithSession(ctx, a.Sessions.Snapshot())
}
