package session

import (
	"sync"

	"github.com/Astemirdum/room-booking/console/internal/errs"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

const (
	RoleAdmin   = "admin"
	RoleDefault = "default"
)

type Session struct {
	Token       string `json:"token"`
	Role        string `json:"role"`
	IsFirstTime bool   `json:"isFirstTime"`
}

func (s Session) Authenticated() bool {
	return s.Token != ""
}

func (s Session) IsAdmin() bool {
	return s.Role == RoleAdmin
}

// NeedsUserInfo reports whether the additional user info form has to be shown.
func (s Session) NeedsUserInfo() bool {
	return s.Authenticated() && !s.IsAdmin() && s.IsFirstTime
}

// Title is the heading of the request list for the session's role.
func (s Session) Title() string {
	if s.IsAdmin() {
		return "Solicitudes"
	}
	return "Mis Solicitudes"
}

func (s Session) Subtitle() string {
	if s.IsAdmin() {
		return "Gestión de solicitudes de reserva para salones"
	}
	return "Gestión de mis solicitudes de reserva para salones"
}

// Manager holds the current session. Every mutation is written through to the store.
type Manager struct {
	log   *zap.Logger
	store Store

	mu      sync.RWMutex
	current Session
}

// NewManager restores the stored session, if any.
func NewManager(log *zap.Logger, store Store) (*Manager, error) {
	m := &Manager{log: log.Named("session"), store: store}
	s, err := store.Load()
	switch {
	case errors.Is(err, ErrNoSession):
	case err != nil:
		return nil, err
	default:
		m.current = s
		m.log.Info("session restored", zap.String("role", s.Role))
	}
	return m, nil
}

func (m *Manager) Current() Session {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.current
}

func (m *Manager) Login(token, role string, isFirstTime bool) (Session, error) {
	if role == "" {
		role = RoleDefault
	}
	s := Session{Token: token, Role: role, IsFirstTime: isFirstTime}

	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.store.Save(s); err != nil {
		return Session{}, err
	}
	m.current = s
	m.log.Info("logged in", zap.String("role", role), zap.Bool("firstTime", isFirstTime))
	return s, nil
}

func (m *Manager) Logout() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.store.Delete(); err != nil {
		return err
	}
	m.current = Session{}
	m.log.Info("logged out")
	return nil
}

// MarkInfoCompleted clears the first-time flag once the user info was registered.
func (m *Manager) MarkInfoCompleted() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.current.Authenticated() {
		return errs.ErrUnauthorized
	}
	next := m.current
	next.IsFirstTime = false
	if err := m.store.Save(next); err != nil {
		return err
	}
	m.current = next
	return nil
}
