// Package session holds server-side admin sessions keyed by an opaque id.
// The id is the only thing that leaves the process, inside an HttpOnly
// cookie; everything else stays in the store.
package session

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
)

// ErrNotFound is returned for unknown or expired session ids.
var ErrNotFound = errors.New("session not found")

func newSessionID() string {
	return uuid.NewString()
}

// Store persists admin sessions. Create returns the new session id; Get
// resolves an id to the admin it belongs to.
type Store interface {
	Create(ctx context.Context, adminID string) (string, error)
	Get(ctx context.Context, sessionID string) (string, error)
	Delete(ctx context.Context, sessionID string) error
}

type memoryEntry struct {
	adminID   string
	expiresAt time.Time
}

// MemoryStore keeps sessions in process memory. Expired entries are dropped
// lazily on read.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]memoryEntry
	ttl      time.Duration
}

var _ Store = (*MemoryStore)(nil)

func NewMemoryStore(ttl time.Duration) *MemoryStore {
	return &MemoryStore{
		sessions: make(map[string]memoryEntry),
		ttl:      ttl,
	}
}

func (s *MemoryStore) Create(_ context.Context, adminID string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := newSessionID()
	s.sessions[id] = memoryEntry{
		adminID:   adminID,
		expiresAt: time.Now().Add(s.ttl),
	}
	return id, nil
}

func (s *MemoryStore) Get(_ context.Context, sessionID string) (string, error) {
	s.mu.RLock()
	entry, ok := s.sessions[sessionID]
	s.mu.RUnlock()

	if !ok {
		return "", ErrNotFound
	}
	if time.Now().After(entry.expiresAt) {
		s.mu.Lock()
		delete(s.sessions, sessionID)
		s.mu.Unlock()
		return "", ErrNotFound
	}
	return entry.adminID, nil
}

func (s *MemoryStore) Delete(_ context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.sessions, sessionID)
	return nil
}
