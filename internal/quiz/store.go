package quiz

import "sync"

// SessionStore guarda as sessões de quiz ativas, indexadas pelo session id.
// A implementação em memória é volátil: todo estado se perde em um redeploy.
type SessionStore interface {
	Get(sessionID string) (*QuizSession, bool)
	Put(session *QuizSession)
	Delete(sessionID string) bool
}

type memoryStore struct {
	mu       sync.RWMutex
	sessions map[string]*QuizSession
}

func NewMemoryStore() SessionStore {
	return &memoryStore{
		sessions: make(map[string]*QuizSession),
	}
}

func (s *memoryStore) Get(sessionID string) (*QuizSession, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	session, ok := s.sessions[sessionID]
	return session, ok
}

func (s *memoryStore) Put(session *QuizSession) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[session.SessionID] = session
}

func (s *memoryStore) Delete(sessionID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.sessions[sessionID]; !ok {
		return false
	}
	delete(s.sessions, sessionID)
	return true
}
