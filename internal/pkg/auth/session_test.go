package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestManager(t *testing.T, ttl time.Duration) *SessionManager {
	t.Helper()
	m := NewSessionManager(SessionConfig{TTL: ttl})
	t.Cleanup(m.Close)
	return m
}

func TestSessionCreateAndResolve(t *testing.T) {
	m := newTestManager(t, time.Hour)

	sess := m.Create(42)
	require.NotEmpty(t, sess.Token)
	assert.Equal(t, int64(42), sess.UserID)
	assert.True(t, sess.ExpiresAt.After(sess.CreatedAt))

	userID, ok := m.Resolve(sess.Token)
	require.True(t, ok)
	assert.Equal(t, int64(42), userID)
}

func TestSessionTokensAreUnique(t *testing.T) {
	m := newTestManager(t, time.Hour)

	first := m.Create(1)
	second := m.Create(1)
	assert.NotEqual(t, first.Token, second.Token)

	// Both sessions stay valid; logging in twice does not evict the first.
	_, ok := m.Resolve(first.Token)
	assert.True(t, ok)
	_, ok = m.Resolve(second.Token)
	assert.True(t, ok)
}

func TestSessionResolveUnknownToken(t *testing.T) {
	m := newTestManager(t, time.Hour)

	_, ok := m.Resolve("no-such-token")
	assert.False(t, ok)
}

func TestSessionRevoke(t *testing.T) {
	m := newTestManager(t, time.Hour)

	sess := m.Create(7)
	m.Revoke(sess.Token)

	_, ok := m.Resolve(sess.Token)
	assert.False(t, ok)

	// Revoking again is a no-op.
	m.Revoke(sess.Token)
	m.Revoke("never-existed")
}

func TestSessionExpiry(t *testing.T) {
	m := newTestManager(t, 10*time.Millisecond)

	sess := m.Create(7)
	time.Sleep(25 * time.Millisecond)

	_, ok := m.Resolve(sess.Token)
	assert.False(t, ok, "expired session must not resolve")

	// Lazy expiry removed the entry as a side effect.
	assert.Zero(t, m.Sweep())
}

func TestSessionSweep(t *testing.T) {
	m := newTestManager(t, 10*time.Millisecond)

	m.Create(1)
	m.Create(2)
	time.Sleep(25 * time.Millisecond)
	live := m.Create(3)

	removed := m.Sweep()
	assert.Equal(t, 2, removed)

	_, ok := m.Resolve(live.Token)
	assert.True(t, ok, "sweep must not touch live sessions")
}
