package session_test

import (
	"testing"

	"github.com/Astemirdum/room-booking/console/internal/errs"
	"github.com/Astemirdum/room-booking/console/internal/session"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newStore(t *testing.T, path string) *session.BadgerStore {
	t.Helper()
	st, err := session.NewBadgerStore(path)
	require.NoError(t, err)
	return st
}

func TestManager_LoginLogout(t *testing.T) {
	t.Parallel()
	st := newStore(t, "")
	t.Cleanup(func() { _ = st.Close() })

	m, err := session.NewManager(zap.NewNop(), st)
	require.NoError(t, err)
	require.False(t, m.Current().Authenticated())

	s, err := m.Login("token", "", true)
	require.NoError(t, err)
	require.Equal(t, session.RoleDefault, s.Role)
	require.True(t, s.NeedsUserInfo())

	stored, err := st.Load()
	require.NoError(t, err)
	require.Equal(t, s, stored)

	require.NoError(t, m.MarkInfoCompleted())
	require.False(t, m.Current().NeedsUserInfo())
	stored, err = st.Load()
	require.NoError(t, err)
	require.False(t, stored.IsFirstTime)

	require.NoError(t, m.Logout())
	require.Equal(t, session.Session{}, m.Current())
	_, err = st.Load()
	require.ErrorIs(t, err, session.ErrNoSession)

	require.ErrorIs(t, m.MarkInfoCompleted(), errs.ErrUnauthorized)
}

func TestManager_RestoresOnInit(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()

	st := newStore(t, dir)
	m, err := session.NewManager(zap.NewNop(), st)
	require.NoError(t, err)
	_, err = m.Login("token", session.RoleAdmin, false)
	require.NoError(t, err)
	require.NoError(t, st.Close())

	st = newStore(t, dir)
	t.Cleanup(func() { _ = st.Close() })
	m, err = session.NewManager(zap.NewNop(), st)
	require.NoError(t, err)
	require.Equal(t, session.Session{Token: "token", Role: session.RoleAdmin}, m.Current())
}

func TestSession_Flags(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name      string
		session   session.Session
		wantAdmin bool
		wantInfo  bool
		wantTitle string
	}{
		{
			name:      "admin first time",
			session:   session.Session{Token: "t", Role: session.RoleAdmin, IsFirstTime: true},
			wantAdmin: true,
			wantTitle: "Solicitudes",
		},
		{
			name:      "user first time",
			session:   session.Session{Token: "t", Role: session.RoleDefault, IsFirstTime: true},
			wantInfo:  true,
			wantTitle: "Mis Solicitudes",
		},
		{
			name:      "user returning",
			session:   session.Session{Token: "t", Role: "user"},
			wantTitle: "Mis Solicitudes",
		},
		{
			name:      "anonymous",
			session:   session.Session{IsFirstTime: true},
			wantTitle: "Mis Solicitudes",
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tt.wantAdmin, tt.session.IsAdmin())
			require.Equal(t, tt.wantInfo, tt.session.NeedsUserInfo())
			require.Equal(t, tt.wantTitle, tt.session.Title())
		})
	}
}
