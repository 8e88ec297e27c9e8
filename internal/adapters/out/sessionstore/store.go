// Package sessionstore keeps pick sessions in process memory. A session is
// scan state for one operator working one job (unlocked containers, bound
// consolidation cart) and does not survive a restart: operators simply
// rescan, so durable storage would buy nothing.
package sessionstore

import (
	"sync"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/picking"
)

type sessionKey struct {
	jobID    kernel.UUID
	operator string
}

// InMemorySessionStore holds one session per (job, operator) pair, created
// lazily on first access. Two operators on the same job each carry their
// own unlocked containers and cart. Safe for concurrent use.
type InMemorySessionStore struct {
	mu       sync.Mutex
	sessions map[sessionKey]*picking.Session
}

// NewInMemorySessionStore creates an empty session store.
func NewInMemorySessionStore() *InMemorySessionStore {
	return &InMemorySessionStore{
		sessions: make(map[sessionKey]*picking.Session),
	}
}

// GetOrCreate returns the operator's session for the job, creating it on
// first access.
func (s *InMemorySessionStore) GetOrCreate(jobID kernel.UUID, operator string) (*picking.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := sessionKey{jobID: jobID, operator: operator}
	if session, ok := s.sessions[key]; ok {
		return session, nil
	}

	session, err := picking.NewSession(jobID, operator)
	if err != nil {
		return nil, err
	}

	s.sessions[key] = session
	return session, nil
}

// Drop removes every operator's session for the job, typically after the
// job completes.
func (s *InMemorySessionStore) Drop(jobID kernel.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for key := range s.sessions {
		if key.jobID.IsEqual(jobID) {
			delete(s.sessions, key)
		}
	}
}
