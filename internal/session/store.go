package session

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/pkordes/travel-planner/backend/internal/domain"
)

// Session is one user's interactive session.
type Session struct {
	ID        uuid.UUID
	Log       *ChatLog
	CreatedAt time.Time
	LastSeen  time.Time
}

// Store keeps live sessions in memory. Nothing survives a process restart.
//
// When idleTTL is positive, a session unused for longer than idleTTL is
// ended. There is no background sweeper: Get drops the session it finds
// expired, and Start drops every expired session before adding a new one.
type Store struct {
	mu       sync.RWMutex
	sessions map[uuid.UUID]*Session
	idleTTL  time.Duration
	now      func() time.Time
}

// NewStore returns an empty Store. idleTTL <= 0 disables expiry.
func NewStore(idleTTL time.Duration) *Store {
	return &Store{
		sessions: make(map[uuid.UUID]*Session),
		idleTTL:  idleTTL,
		now:      time.Now,
	}
}

// SetClock replaces the time source. Used by tests.
func (s *Store) SetClock(now func() time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.now = now
}

// Start opens a new session with an empty chat log.
func (s *Store) Start() *Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	s.dropExpired(now)

	sess := &Session{
		ID:        uuid.New(),
		Log:       NewChatLog(),
		CreatedAt: now,
		LastSeen:  now,
	}
	s.sessions[sess.ID] = sess
	return sess
}

// Get returns the live session with the given id and marks it as used.
// Returns domain.ErrNotFound if the session never existed, was ended, or
// has been idle too long.
func (s *Store) Get(id uuid.UUID) (*Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[id]
	if !ok {
		return nil, fmt.Errorf("session.Store.Get: %w", domain.ErrNotFound)
	}

	now := s.now()
	if s.idleTTL > 0 && now.Sub(sess.LastSeen) > s.idleTTL {
		delete(s.sessions, id)
		return nil, fmt.Errorf("session.Store.Get: %w: expired", domain.ErrNotFound)
	}

	sess.LastSeen = now
	return sess, nil
}

// End discards a session and its chat log.
// Returns domain.ErrNotFound if there was no such session.
func (s *Store) End(id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.sessions[id]; !ok {
		return fmt.Errorf("session.Store.End: %w", domain.ErrNotFound)
	}
	delete(s.sessions, id)
	return nil
}

// dropExpired discards every session idle for longer than idleTTL.
// The caller holds s.mu.
func (s *Store) dropExpired(now time.Time) {
	if s.idleTTL <= 0 {
		return
	}
	for id, sess := range s.sessions {
		if now.Sub(sess.LastSeen) > s.idleTTL {
			delete(s.sessions, id)
		}
	}
}

// Len returns the number of sessions currently held. Sessions that expired
// since the last Start or Get are still counted.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}
