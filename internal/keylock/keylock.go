// Package keylock provides per-key mutual exclusion, used to serialize
// writes to one session's state without blocking unrelated sessions.
package keylock

import "sync"

// Set is a collection of named mutexes. Locks are created on first use
// and kept for the lifetime of the Set.
type Set struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func New() *Set {
	return &Set{locks: make(map[string]*sync.Mutex)}
}

// Lock acquires the mutex for key, creating it if needed.
func (s *Set) Lock(key string) {
	s.mu.Lock()
	l, ok := s.locks[key]
	if !ok {
		l = &sync.Mutex{}
		s.locks[key] = l
	}
	s.mu.Unlock()
	l.Lock()
}

// Unlock releases the mutex for key. Unlocking a key that was never
// locked is a programming error and panics, matching sync.Mutex.
func (s *Set) Unlock(key string) {
	s.mu.Lock()
	l, ok := s.locks[key]
	s.mu.Unlock()
	if !ok {
		panic("keylock: unlock of unknown key " + key)
	}
	l.Unlock()
}
