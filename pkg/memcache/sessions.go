// pkg/memcache/sessions.go
package mem

import (
	"sync"

	"localexplorer/internal/models/domain_models"
)

// SessionStore keeps every live conversation session in memory. Sessions are
// independent and may be serviced in parallel, but turns within one session
// are serialized by a per-session lock. Durability across restarts is out of
// scope.
type SessionStore struct {
	mu   sync.RWMutex
	data map[string]*sessionEntry
}

type sessionEntry struct {
	mu      sync.Mutex
	session *domain_models.ConversationSession
}

func NewSessionStore() *SessionStore {
	return &SessionStore{
		data: make(map[string]*sessionEntry),
	}
}

// Acquire returns the session for id, creating it on first use, with its
// turn lock held. The release func must be called when the turn completes.
func (s *SessionStore) Acquire(id string) (*domain_models.ConversationSession, func()) {
	s.mu.Lock()
	entry, ok := s.data[id]
	if !ok {
		entry = &sessionEntry{session: domain_models.NewConversationSession(id)}
		s.data[id] = entry
	}
	s.mu.Unlock()

	entry.mu.Lock()
	return entry.session, entry.mu.Unlock
}

// Snapshot returns a shallow copy of the session for read-only use, without
// blocking behind an in-flight turn longer than the copy takes.
func (s *SessionStore) Snapshot(id string) (domain_models.ConversationSession, bool) {
	s.mu.RLock()
	entry, ok := s.data[id]
	s.mu.RUnlock()
	if !ok {
		return domain_models.ConversationSession{}, false
	}

	entry.mu.Lock()
	defer entry.mu.Unlock()
	return *entry.session, true
}

func (s *SessionStore) Delete(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, id)
}

func (s *SessionStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.data)
}
