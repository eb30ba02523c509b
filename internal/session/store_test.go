package session_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/travel-planner/backend/internal/domain"
	"github.com/pkordes/travel-planner/backend/internal/session"
)

func TestStore_StartGet(t *testing.T) {
	s := session.NewStore(0)

	sess := s.Start()
	got, err := s.Get(sess.ID)

	require.NoError(t, err)
	assert.Same(t, sess, got)
	assert.Zero(t, got.Log.Len(), "fresh session starts with no turns")
}

func TestStore_SessionsAreIsolated(t *testing.T) {
	s := session.NewStore(0)

	a := s.Start()
	b := s.Start()
	a.Log.Append("only in a", "yes")

	assert.NotEqual(t, a.ID, b.ID)
	assert.Equal(t, 1, a.Log.Len())
	assert.Zero(t, b.Log.Len())
}

func TestStore_Get_Unknown(t *testing.T) {
	s := session.NewStore(0)

	_, err := s.Get(uuid.New())

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestStore_End(t *testing.T) {
	s := session.NewStore(0)
	sess := s.Start()
	sess.Log.Append("q", "a")

	require.NoError(t, s.End(sess.ID))

	_, err := s.Get(sess.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Zero(t, s.Len())

	// A new session never sees the old history.
	assert.Zero(t, s.Start().Log.Len())
}

func TestStore_End_Unknown(t *testing.T) {
	s := session.NewStore(0)

	err := s.End(uuid.New())

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestStore_IdleExpiry(t *testing.T) {
	now := time.Date(2025, 5, 1, 12, 0, 0, 0, time.UTC)
	s := session.NewStore(10 * time.Minute)
	s.SetClock(func() time.Time { return now })

	sess := s.Start()

	now = now.Add(9 * time.Minute)
	_, err := s.Get(sess.ID)
	require.NoError(t, err, "within TTL")

	// Get refreshed LastSeen, so another 9 minutes is still fine.
	now = now.Add(9 * time.Minute)
	_, err = s.Get(sess.ID)
	require.NoError(t, err, "TTL is measured from last use")

	now = now.Add(11 * time.Minute)
	_, err = s.Get(sess.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Zero(t, s.Len(), "expired session is dropped")
}

func TestStore_NoExpiryWhenTTLZero(t *testing.T) {
	now := time.Date(2025, 5, 1, 12, 0, 0, 0, time.UTC)
	s := session.NewStore(0)
	s.SetClock(func() time.Time { return now })

	sess := s.Start()
	now = now.Add(365 * 24 * time.Hour)

	_, err := s.Get(sess.ID)
	assert.NoError(t, err)
}

func TestStore_StartDropsAbandonedSessions(t *testing.T) {
	now := time.Date(2025, 5, 1, 12, 0, 0, 0, time.UTC)
	s := session.NewStore(10 * time.Minute)
	s.SetClock(func() time.Time { return now })

	for range 1000 {
		s.Start()
	}
	active := s.Start()

	now = now.Add(5 * time.Minute)
	_, err := s.Get(active.ID)
	require.NoError(t, err)

	// The 1000 untouched sessions are now past the TTL; active is not.
	now = now.Add(6 * time.Minute)
	fresh := s.Start()

	assert.Equal(t, 2, s.Len())
	_, err = s.Get(active.ID)
	assert.NoError(t, err)
	_, err = s.Get(fresh.ID)
	assert.NoError(t, err)

	now = now.Add(24 * time.Hour)
	s.Start()
	assert.Equal(t, 1, s.Len())
}

func TestStore_StartKeepsSessionsWhenTTLZero(t *testing.T) {
	now := time.Date(2025, 5, 1, 12, 0, 0, 0, time.UTC)
	s := session.NewStore(0)
	s.SetClock(func() time.Time { return now })

	s.Start()
	now = now.Add(365 * 24 * time.Hour)
	s.Start()

	assert.Equal(t, 2, s.Len())
}
