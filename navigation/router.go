package navigation

import (
	"sync"

	"go.uber.org/zap"

	"github.com/JC2405/medicitas-client/enums"
	"github.com/JC2405/medicitas-client/models"
	"github.com/JC2405/medicitas-client/roles"
	"github.com/JC2405/medicitas-client/session"
	"github.com/JC2405/medicitas-client/utils/logger"
)

// Screen is a top-level screen group. Exactly one is mounted at a time.
type Screen string

const (
	ScreenLoading Screen = "loading"
	ScreenAuth    Screen = "auth"
	ScreenAdmin   Screen = "admin"
	ScreenDoctor  Screen = "doctor"
	ScreenPatient Screen = "paciente"
)

// Router chooses which screen group to mount as a function of session state.
// It is pure presentation state: it holds no business data and re-derives the
// role on every read.
type Router struct {
	sessions *session.Manager

	mu         sync.Mutex
	last       Screen
	onNavigate []func(Screen)
}

// NewRouter wires the router to the session manager so every session change
// re-evaluates the mounted screen group.
func NewRouter(sessions *session.Manager) *Router {
	r := &Router{sessions: sessions, last: ScreenLoading}
	sessions.OnChange(func(models.Session) { r.reevaluate() })
	return r
}

// OnNavigate registers a mount callback invoked whenever the screen group
// changes.
func (r *Router) OnNavigate(fn func(Screen)) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.onNavigate = append(r.onNavigate, fn)
}

// Current derives the screen group from the present session state.
func (r *Router) Current() Screen {
	return ScreenFor(r.sessions.Snapshot())
}

// ScreenFor maps a session to the screen group to mount: loading while the
// restore is in flight, the auth stack without a token, otherwise the group
// for the resolved role.
func ScreenFor(s models.Session) Screen {
	if s.Loading {
		return ScreenLoading
	}
	if !s.Authenticated() {
		return ScreenAuth
	}

	switch roles.Resolve(s.User) {
	case enums.RoleAdmin:
		return ScreenAdmin
	case enums.RoleDoctor:
		return ScreenDoctor
	default:
		return ScreenPatient
	}
}

func (r *Router) reevaluate() {
	next := r.Current()

	r.mu.Lock()
	changed := next != r.last
	r.last = next
	hooks := make([]func(Screen), len(r.onNavigate))
	copy(hooks, r.onNavigate)
	r.mu.Unlock()

	if !changed {
		return
	}
	logger.LogInfo("navigation switched", zap.String("screen", string(next)))
	for _, fn := range hooks {
		fn(next)
	}
}
