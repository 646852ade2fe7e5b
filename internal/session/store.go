package session

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"codereview/internal/analyzer"
)

// State is the lifecycle position of a session
type State int

const (
	// NoResult is the initial state; no analysis has succeeded yet
	NoResult State = iota
	// HasResult means the session holds the latest successful analysis
	HasResult
)

func (s State) String() string {
	if s == HasResult {
		return "has_result"
	}
	return "no_result"
}

// Session is a snapshot of one user's form session
type Session struct {
	ID       string
	State    State
	Analysis *analyzer.Analysis
	LastSeen time.Time
}

// Store keeps sessions in memory, keyed by ID
type Store struct {
	mu       sync.Mutex
	sessions map[string]*Session
	ttl      time.Duration
	now      func() time.Time
}

// NewStore creates an empty store; sessions idle longer than ttl are evicted
func NewStore(ttl time.Duration) *Store {
	return &Store{
		sessions: make(map[string]*Session),
		ttl:      ttl,
		now:      time.Now,
	}
}

// Get returns the session for id, creating a fresh one when id is unknown
// or expired. The returned value is a copy.
func (s *Store) Get(id string) Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	sess, ok := s.sessions[id]
	if ok && s.expired(sess, now) {
		delete(s.sessions, id)
		ok = false
	}
	if !ok {
		sess = &Session{ID: uuid.NewString(), State: NoResult}
		s.sessions[sess.ID] = sess
	}
	sess.LastSeen = now
	return *sess
}

// Record stores a successful analysis, moving the session to HasResult.
// A prior result is overwritten.
func (s *Store) Record(id string, a *analyzer.Analysis) Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[id]
	if !ok {
		sess = &Session{ID: id}
		s.sessions[id] = sess
	}
	sess.State = HasResult
	sess.Analysis = a
	sess.LastSeen = s.now()
	return *sess
}

// Len returns the number of live sessions
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

// Evict drops expired sessions and returns how many were removed
func (s *Store) Evict() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	removed := 0
	for id, sess := range s.sessions {
		if s.expired(sess, now) {
			delete(s.sessions, id)
			removed++
		}
	}
	return removed
}

// MinSweepInterval is the shortest interval Run will tick at
const MinSweepInterval = time.Second

// Run evicts expired sessions every interval until ctx is done.
// Intervals below MinSweepInterval are raised to it.
func (s *Store) Run(ctx context.Context, interval time.Duration) {
	if interval < MinSweepInterval {
		interval = MinSweepInterval
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.Evict()
		}
	}
}

func (s *Store) expired(sess *Session, now time.Time) bool {
	return s.ttl > 0 && now.Sub(sess.LastSeen) > s.ttl
}
