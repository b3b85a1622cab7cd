package server

import (
	"sync"

	"github.com/jonathan/career-compass/internal/session"
)

// managedSession pairs a session with the mutex that serializes access to
// it. Session methods themselves are not safe for concurrent use.
type managedSession struct {
	mu   sync.Mutex
	sess *session.Session
}

// Store is the in-memory session store. Sessions live until deleted or
// until the server stops; there is no persistence.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]*managedSession
}

// NewStore creates an empty store
func NewStore() *Store {
	return &Store{sessions: make(map[string]*managedSession)}
}

// Create adds a new session and returns it
func (st *Store) Create() *session.Session {
	sess := session.New()
	st.mu.Lock()
	st.sessions[sess.ID()] = &managedSession{sess: sess}
	st.mu.Unlock()
	return sess
}

// With runs fn with exclusive access to the identified session. Returns
// ErrSessionNotFound if the ID is unknown.
func (st *Store) With(id string, fn func(*session.Session) error) error {
	st.mu.RLock()
	ms, ok := st.sessions[id]
	st.mu.RUnlock()
	if !ok {
		return &ErrSessionNotFound{ID: id}
	}

	ms.mu.Lock()
	defer ms.mu.Unlock()
	return fn(ms.sess)
}

// Delete removes a session and releases its resources
func (st *Store) Delete(id string) error {
	st.mu.Lock()
	ms, ok := st.sessions[id]
	delete(st.sessions, id)
	st.mu.Unlock()
	if !ok {
		return &ErrSessionNotFound{ID: id}
	}

	ms.mu.Lock()
	ms.sess.Close()
	ms.mu.Unlock()
	return nil
}

// Len returns the number of live sessions
func (st *Store) Len() int {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return len(st.sessions)
}

// CloseAll releases every session's resources. Called on shutdown.
func (st *Store) CloseAll() {
	st.mu.Lock()
	defer st.mu.Unlock()
	for id, ms := range st.sessions {
		ms.mu.Lock()
		ms.sess.Close()
		ms.mu.Unlock()
		delete(st.sessions, id)
	}
}
