package main

import (
	"sync"
	"time"

	"lg/bmi-tracker/internal/health"
)

// sessionResult is the outcome of the last Calculate in one session. Generate
// Report reads it; each new Calculate replaces it.
type sessionResult struct {
	Computation *health.Computation
	Saved       bool  // false when the record store rejected the write
	RecordID    int64 // set only when Saved
}

type sessionEntry struct {
	result   *sessionResult
	lastSeen time.Time
}

// sessionStore keeps one sessionResult per browser session in memory.
// Entries idle for longer than ttl are dropped.
type sessionStore struct {
	mu      sync.Mutex
	ttl     time.Duration
	now     func() time.Time
	entries map[string]*sessionEntry
}

func newSessionStore(ttl time.Duration) *sessionStore {
	return &sessionStore{ttl: ttl, now: time.Now, entries: make(map[string]*sessionEntry)}
}

// get returns the session's last result, or nil if there is none or it expired.
func (s *sessionStore) get(id string) *sessionResult {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[id]
	if !ok {
		return nil
	}
	now := s.now()
	if now.Sub(e.lastSeen) > s.ttl {
		delete(s.entries, id)
		return nil
	}
	e.lastSeen = now
	return e.result
}

// put replaces the session's result and sweeps expired sessions.
func (s *sessionStore) put(id string, res *sessionResult) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	for k, e := range s.entries {
		if now.Sub(e.lastSeen) > s.ttl {
			delete(s.entries, k)
		}
	}
	s.entries[id] = &sessionEntry{result: res, lastSeen: now}
}

func (s *sessionStore) size() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}
