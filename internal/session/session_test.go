package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransitions(t *testing.T) {
	t.Run("login then logout", func(t *testing.T) {
		s := New()
		require.Equal(t, LoggedOut, s.State())

		require.NoError(t, s.Login("alice"))
		assert.Equal(t, UserSession, s.State())
		assert.Equal(t, "alice", s.User())

		require.NoError(t, s.Logout())
		assert.Equal(t, LoggedOut, s.State())
		assert.Empty(t, s.User())
	})

	t.Run("admin enter and leave", func(t *testing.T) {
		s := New()
		require.NoError(t, s.EnterAdmin())
		assert.Equal(t, AdminSession, s.State())
		assert.Empty(t, s.User())

		require.NoError(t, s.LeaveAdmin())
		assert.Equal(t, LoggedOut, s.State())
	})

	t.Run("invalid transitions", func(t *testing.T) {
		s := New()
		assert.ErrorIs(t, s.Logout(), ErrInvalidTransition)
		assert.ErrorIs(t, s.LeaveAdmin(), ErrInvalidTransition)

		require.NoError(t, s.Login("alice"))
		assert.ErrorIs(t, s.Login("bob"), ErrInvalidTransition)
		assert.ErrorIs(t, s.EnterAdmin(), ErrInvalidTransition)

		require.NoError(t, s.Logout())
		require.NoError(t, s.EnterAdmin())
		assert.ErrorIs(t, s.Login("alice"), ErrInvalidTransition)
		assert.ErrorIs(t, s.Logout(), ErrInvalidTransition)
	})
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "logged-out", LoggedOut.String())
	assert.Equal(t, "user", UserSession.String())
	assert.Equal(t, "admin", AdminSession.String())
}
