package intent

import (
	"fmt"
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"
)

// SessionStore remembers the last resolved intent of each session.
// Implementations must be safe for concurrent use; writes to one key are
// atomic and the last write wins.
type SessionStore interface {
	Get(sessionID string) (Intent, bool)
	Set(sessionID string, in Intent)
}

// MemoryStore keeps every session for the lifetime of the process.
type MemoryStore struct {
	m sync.Map
}

// NewMemoryStore creates an unbounded in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Get(sessionID string) (Intent, bool) {
	v, ok := s.m.Load(sessionID)
	if !ok {
		return None, false
	}
	return v.(Intent), true
}

func (s *MemoryStore) Set(sessionID string, in Intent) {
	s.m.Store(sessionID, in)
}

// LRUStore keeps at most a fixed number of sessions, evicting the least
// recently used one.
type LRUStore struct {
	cache *lru.Cache[string, Intent]
}

// NewLRUStore creates a bounded store.
func NewLRUStore(size int) (*LRUStore, error) {
	cache, err := lru.New[string, Intent](size)
	if err != nil {
		return nil, fmt.Errorf("intent: create lru store: %w", err)
	}
	return &LRUStore{cache: cache}, nil
}

func (s *LRUStore) Get(sessionID string) (Intent, bool) {
	return s.cache.Get(sessionID)
}

func (s *LRUStore) Set(sessionID string, in Intent) {
	s.cache.Add(sessionID, in)
}

// NewSessionStore returns a MemoryStore when size is 0 and an LRUStore
// otherwise.
func NewSessionStore(size int) (SessionStore, error) {
	if size < 0 {
		return nil, fmt.Errorf("intent: negative session store size %d", size)
	}
	if size == 0 {
		return NewMemoryStore(), nil
	}
	return NewLRUStore(size)
}
