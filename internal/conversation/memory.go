package conversation

import (
	"context"
	"sync"
	"time"
)

// MemoryStore keeps sessions in process. Sessions idle for longer than ttl
// are dropped on read.
type MemoryStore struct {
	mu       sync.Mutex
	sessions map[int64]Session
	ttl      time.Duration
	now      func() time.Time
}

// NewMemoryStore measures idle time with now, which must be the clock that
// stamps Session.UpdatedAt. A nil now means time.Now.
func NewMemoryStore(ttl time.Duration, now func() time.Time) *MemoryStore {
	if now == nil {
		now = time.Now
	}

	return &MemoryStore{
		sessions: make(map[int64]Session),
		ttl:      ttl,
		now:      now,
	}
}

func (m *MemoryStore) Get(_ context.Context, ownerID int64) (*Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.sessions[ownerID]
	if !ok {
		return nil, nil
	}

	if m.ttl > 0 && m.now().Sub(s.UpdatedAt) > m.ttl {
		delete(m.sessions, ownerID)
		return nil, nil
	}

	return &s, nil
}

func (m *MemoryStore) Save(_ context.Context, s *Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.sessions[s.OwnerID] = *s
	return nil
}

func (m *MemoryStore) Delete(_ context.Context, ownerID int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.sessions, ownerID)
	return nil
}
