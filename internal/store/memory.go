package store

import (
	lru "github.com/hashicorp/golang-lru"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"github.com/xtding233/sheepshead-backend/internal/logging"
	"github.com/xtding233/sheepshead-backend/internal/session"
)

var storeLogger = log.With().Str("logger_name", "store::memory").Logger()

var ErrNotFound = errors.New("session not found")

// SessionStore keeps the most recently used sessions in memory.
// When full, the least recently used session is dropped.
type SessionStore struct {
	cache *lru.Cache
}

// New creates a store holding at most maxSessions sessions.
func New(maxSessions int) (*SessionStore, error) {
	cache, err := lru.NewWithEvict(maxSessions, func(key interface{}, _ interface{}) {
		storeLogger.Info().Str(logging.SessionIDKey, key.(string)).Msg("Session evicted")
	})
	if err != nil {
		return nil, errors.Wrapf(err, "Could not create session cache of size %d", maxSessions)
	}
	return &SessionStore{cache: cache}, nil
}

// Add stores sess under its ID.
func (s *SessionStore) Add(sess *session.Session) {
	s.cache.Add(sess.ID, sess)
}

// Get returns the session with id and marks it as recently used.
func (s *SessionStore) Get(id string) (*session.Session, error) {
	v, ok := s.cache.Get(id)
	if !ok {
		return nil, errors.Wrapf(ErrNotFound, "%s", id)
	}
	return v.(*session.Session), nil
}

// Delete removes a session. Unknown ids are ignored.
func (s *SessionStore) Delete(id string) {
	s.cache.Remove(id)
}

// Len returns the number of stored sessions.
func (s *SessionStore) Len() int {
	return s.cache.Len()
}
