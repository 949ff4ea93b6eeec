// Package session is the one home for process-wide mutable state: who
// is signed in and how recently each AI operation ran. Everything else
// reaches it through the Store interface; there is no ambient key-value
// access anywhere in the service.
package session

import (
	"sync"
	"time"
)

// User is the signed-in identity. The zero value is anonymous.
type User struct {
	ID            string
	Name          string
	Authenticated bool
}

// Store gates mutating operations on identity and cooldowns.
type Store interface {
	User() User
	SignIn(id, name string)
	SignOut()
	// TryAcquire reports whether the named operation may run now. When
	// it may not, retryIn says how long until it may.
	TryAcquire(op string) (retryIn time.Duration, ok bool)
}

// MemoryStore is the in-process Store. Safe for concurrent use.
type MemoryStore struct {
	mu       sync.Mutex
	user     User
	lastUse  map[string]time.Time
	cooldown time.Duration
	now      func() time.Time
}

// NewMemoryStore builds a store with the given per-operation cooldown.
// Zero disables cooldowns.
func NewMemoryStore(cooldown time.Duration) *MemoryStore {
	return &MemoryStore{
		lastUse:  make(map[string]time.Time),
		cooldown: cooldown,
		now:      time.Now,
	}
}

func (s *MemoryStore) User() User {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.user
}

func (s *MemoryStore) SignIn(id, name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = User{ID: id, Name: name, Authenticated: true}
}

// SignOut clears the identity and all cooldown bookkeeping.
func (s *MemoryStore) SignOut() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = User{}
	s.lastUse = make(map[string]time.Time)
}

func (s *MemoryStore) TryAcquire(op string) (time.Duration, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cooldown <= 0 {
		return 0, true
	}
	now := s.now()
	if last, ok := s.lastUse[op]; ok {
		if wait := s.cooldown - now.Sub(last); wait > 0 {
			return wait, false
		}
	}
	s.lastUse[op] = now
	return 0, true
}
