package store

import (
	"fmt"
	"sync"

	"github.com/mediassist/mediassist-api/schema"
)

var (
	ErrSessionNotFound = fmt.Errorf("session not found")
)

// SessionStore keeps intake sessions keyed by session id. All state is
// in-memory and ephemeral; nothing survives a process restart.
type SessionStore interface {
	Get(id string) (*schema.IntakeSession, error)
	Set(id string, session *schema.IntakeSession)
	Delete(id string)

	// Update runs fn on the session under the store lock so that the
	// read-modify-write of a turn is atomic. fn may delete the session
	// by returning true.
	Update(id string, fn func(*schema.IntakeSession) (remove bool, err error)) error
}

type sessionStore struct {
	sync.RWMutex
	sessions map[string]*schema.IntakeSession
}

// NewSessionStore returns an empty in-memory session store.
func NewSessionStore() SessionStore {
	return &sessionStore{
		sessions: make(map[string]*schema.IntakeSession),
	}
}

func (s *sessionStore) Get(id string) (*schema.IntakeSession, error) {
	s.RLock()
	defer s.RUnlock()

	session, ok := s.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return session, nil
}

func (s *sessionStore) Set(id string, session *schema.IntakeSession) {
	s.Lock()
	defer s.Unlock()

	s.sessions[id] = session
}

func (s *sessionStore) Delete(id string) {
	s.Lock()
	defer s.Unlock()

	delete(s.sessions, id)
}

func (s *sessionStore) Update(id string, fn func(*schema.IntakeSession) (bool, error)) error {
	s.Lock()
	defer s.Unlock()

	session, ok := s.sessions[id]
	if !ok {
		return ErrSessionNotFound
	}

	remove, err := fn(session)
	if remove {
		delete(s.sessions, id)
	}
	return err
}
