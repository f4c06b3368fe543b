package convo

import (
	"context"
	"sync"
	"time"

	"github.com/abhisek/brainbytes/internal/classify"
)

// Options configures a Store. Zero TTL or MaxUsers disables that limit.
type Options struct {
	// TTL evicts users idle for longer than this.
	TTL time.Duration

	// MaxUsers caps the number of tracked users. The least recently
	// touched user is evicted first.
	MaxUsers int

	// Now is the clock. Defaults to time.Now.
	Now func() time.Time
}

type entry struct {
	ctx     Context
	touched time.Time
}

// Store maps user ids to their conversation context. It is safe for
// concurrent use, but callers that read a context, wait on a slow call and
// then update it can still lose an interleaved update for the same user.
type Store struct {
	mu       sync.Mutex
	entries  map[string]*entry
	ttl      time.Duration
	maxUsers int
	now      func() time.Time
}

// NewStore creates an empty Store.
func NewStore(opts Options) *Store {
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	return &Store{
		entries:  make(map[string]*entry),
		ttl:      opts.TTL,
		maxUsers: opts.MaxUsers,
		now:      now,
	}
}

// Get returns a copy of the user's context. Unknown or expired users get an
// empty context.
func (s *Store) Get(userID string) Context {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[userID]
	if !ok {
		return Context{}
	}
	if s.expired(e, s.now()) {
		delete(s.entries, userID)
		return Context{}
	}
	return e.ctx.clone()
}

// Update records an exchange for the user, creating the context if needed.
func (s *Store) Update(userID, question, response string, subject classify.Subject) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e := s.touch(userID)
	e.ctx.push(question, response, subject)
}

// SetFollowUps replaces the user's stored follow-up suggestions.
func (s *Store) SetFollowUps(userID string, followUps []string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e := s.touch(userID)
	e.ctx.FollowUps = append([]string(nil), followUps...)
}

// IsFollowUp reports whether question continues the user's conversation.
func (s *Store) IsFollowUp(userID, question string) bool {
	return IsFollowUp(s.Get(userID), question)
}

// Forget drops the user's context.
func (s *Store) Forget(userID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, userID)
}

// Len returns the number of tracked users, including expired entries that
// have not been swept yet.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

// Sweep removes expired users and returns how many were removed.
func (s *Store) Sweep() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	removed := 0
	for id, e := range s.entries {
		if s.expired(e, now) {
			delete(s.entries, id)
			removed++
		}
	}
	return removed
}

// RunJanitor sweeps every interval until ctx is done.
func (s *Store) RunJanitor(ctx context.Context, interval time.Duration) {
	if s.ttl <= 0 || interval <= 0 {
		return
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.Sweep()
		}
	}
}

// touch returns the user's entry, creating it and enforcing MaxUsers when
// it is new. Caller holds s.mu.
func (s *Store) touch(userID string) *entry {
	now := s.now()
	e, ok := s.entries[userID]
	if ok && s.expired(e, now) {
		delete(s.entries, userID)
		ok = false
	}
	if !ok {
		for s.maxUsers > 0 && len(s.entries) >= s.maxUsers {
			s.evictOldest()
		}
		e = &entry{}
		s.entries[userID] = e
	}
	e.touched = now
	return e
}

func (s *Store) evictOldest() {
	var (
		oldestID string
		oldest   time.Time
		found    bool
	)
	for id, e := range s.entries {
		if !found || e.touched.Before(oldest) {
			oldestID, oldest, found = id, e.touched, true
		}
	}
	if found {
		delete(s.entries, oldestID)
	}
}

func (s *Store) expired(e *entry, now time.Time) bool {
	return s.ttl > 0 && now.Sub(e.touched) > s.ttl
}
