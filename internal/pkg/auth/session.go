package auth

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Session ties an opaque bearer token to a user id.
type Session struct {
	Token     string
	UserID    int64
	CreatedAt time.Time
	ExpiresAt time.Time
}

// SessionConfig configures the session manager.
type SessionConfig struct {
	// TTL is the session lifetime from creation.
	TTL time.Duration
	// SweepInterval is how often the janitor removes expired sessions.
	// Zero disables the janitor; expiry is still enforced lazily on Resolve.
	SweepInterval time.Duration
}

// SessionManager owns the token to principal mapping. A token transitions
// Active -> Expired/Revoked and never back; a new login always mints a fresh
// token. Multiple concurrent sessions per user are permitted.
type SessionManager struct {
	mu       sync.RWMutex
	sessions map[string]Session
	ttl      time.Duration
	done     chan struct{}
	closed   sync.Once
}

// NewSessionManager creates a SessionManager and starts its janitor when a
// sweep interval is configured.
func NewSessionManager(cfg SessionConfig) *SessionManager {
	if cfg.TTL <= 0 {
		cfg.TTL = 7 * 24 * time.Hour
	}

	m := &SessionManager{
		sessions: make(map[string]Session),
		ttl:      cfg.TTL,
		done:     make(chan struct{}),
	}

	if cfg.SweepInterval > 0 {
		go m.janitor(cfg.SweepInterval)
	}

	return m
}

// Create mints a new session for the user and returns it. The token is an
// opaque uuid, intended to be delivered as an HTTP-only cookie.
func (m *SessionManager) Create(userID int64) Session {
	now := time.Now()
	session := Session{
		Token:     uuid.NewString(),
		UserID:    userID,
		CreatedAt: now,
		ExpiresAt: now.Add(m.ttl),
	}

	m.mu.Lock()
	m.sessions[session.Token] = session
	m.mu.Unlock()

	return session
}

// Resolve returns the principal for the token. An absent or expired token
// resolves to (0, false); expired records are removed on sight.
func (m *SessionManager) Resolve(token string) (int64, bool) {
	m.mu.RLock()
	session, ok := m.sessions[token]
	m.mu.RUnlock()

	if !ok {
		return 0, false
	}
	if time.Now().After(session.ExpiresAt) {
		m.Revoke(token)
		return 0, false
	}
	return session.UserID, true
}

// Revoke removes the session record. Revoking an absent token is not an error.
func (m *SessionManager) Revoke(token string) {
	m.mu.Lock()
	delete(m.sessions, token)
	m.mu.Unlock()
}

// Sweep removes all expired sessions and returns how many were dropped.
func (m *SessionManager) Sweep() int {
	now := time.Now()
	removed := 0

	m.mu.Lock()
	for token, session := range m.sessions {
		if now.After(session.ExpiresAt) {
			delete(m.sessions, token)
			removed++
		}
	}
	m.mu.Unlock()

	return removed
}

// Close stops the janitor. Safe to call more than once.
func (m *SessionManager) Close() {
	m.closed.Do(func() {
		close(m.done)
	})
}

func (m *SessionManager) janitor(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			m.Sweep()
		case <-m.done:
			return
		}
	}
}
