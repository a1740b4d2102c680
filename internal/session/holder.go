package session

import "sync"

// Holder is the process-wide current session. Readers always see either the
// old or the new session, never a mix.
type Holder struct {
	mu       sync.RWMutex
	current  Session
	onLogout []func()
}

// NewHolder creates a holder seeded with sess, which may be empty.
func NewHolder(sess Session) *Holder {
	return &Holder{current: sess}
}

// Get returns the current session.
func (h *Holder) Get() Session {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.current
}

// Set replaces the current session, typically after login.
func (h *Holder) Set(sess Session) {
	h.mu.Lock()
	h.current = sess
	h.mu.Unlock()
}

// Rename sets the username of the current session when it still carries token.
// It reports false once the session has been cleared or replaced.
func (h *Holder) Rename(token, username string) (Session, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if token == "" || h.current.Token != token {
		return Session{}, false
	}
	h.current.Username = username
	return h.current, true
}

// OnLogout registers a hook run by Clear after the token has been dropped.
func (h *Holder) OnLogout(fn func()) {
	h.mu.Lock()
	h.onLogout = append(h.onLogout, fn)
	h.mu.Unlock()
}

// Clear drops the session and runs the logout hooks in registration order.
func (h *Holder) Clear() {
	h.mu.Lock()
	h.current = Session{}
	hooks := make([]func(), len(h.onLogout))
	copy(hooks, h.onLogout)
	h.mu.Unlock()

	for _, fn := range hooks {
		fn()
	}
}
