package browse

import (
	"sync"

	"github.com/google/uuid"
)

// Store holds live browse sessions in memory, keyed by session id.
// Sessions are ephemeral UI state; losing them on restart is fine.
type Store struct {
	mu       sync.RWMutex
	fetcher  Fetcher
	sessions map[uuid.UUID]*Session
}

func NewStore(fetcher Fetcher) *Store {
	return &Store{
		fetcher:  fetcher,
		sessions: make(map[uuid.UUID]*Session),
	}
}

// Create registers a new session with the given page size.
func (st *Store) Create(pageSize int) *Session {
	s := NewSession(st.fetcher, pageSize)
	st.mu.Lock()
	st.sessions[s.ID()] = s
	st.mu.Unlock()
	return s
}

// Get looks up a session by id.
func (st *Store) Get(id uuid.UUID) (*Session, bool) {
	st.mu.RLock()
	defer st.mu.RUnlock()
	s, ok := st.sessions[id]
	return s, ok
}

// Delete removes a session.
func (st *Store) Delete(id uuid.UUID) {
	st.mu.Lock()
	delete(st.sessions, id)
	st.mu.Unlock()
}
