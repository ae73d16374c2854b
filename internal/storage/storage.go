package storage

import (
	"sort"
	"sync"

	"github.com/loptr-yoo/paking-ai-1/internal/viewer"
)

// SessionStore keeps sessions in memory. Nothing is persisted.
type SessionStore struct {
	sessions map[string]*viewer.Session
	mu       sync.RWMutex
}

func New() *SessionStore {
	return &SessionStore{
		sessions: make(map[string]*viewer.Session),
	}
}

func (s *SessionStore) Get(sessionID string) (*viewer.Session, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	session, exists := s.sessions[sessionID]
	return session, exists
}

func (s *SessionStore) Set(session *viewer.Session) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[session.ID()] = session
}

// GetAll returns the sessions ordered by id
func (s *SessionStore) GetAll() []*viewer.Session {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]*viewer.Session, 0, len(s.sessions))
	for _, v := range s.sessions {
		result = append(result, v)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID() < result[j].ID() })
	return result
}

func (s *SessionStore) Delete(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, sessionID)
}
