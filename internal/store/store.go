// Package store implements the shared in-memory keyspace: typed values,
// the expiry table, lazy expiration, and the kind-specific operations
// the command dispatcher calls into.
//
// Grounded on the teacher's core.HashEngine (single sync.RWMutex guarding
// a map[string]*Item) generalized to a plain sync.Mutex: every exported
// Store method takes the lock exactly once, and unexported *Locked
// helpers assume the caller already holds it. This gives the "reentrant"
// critical section spec.md §5 asks for (a write can lazily expire a key
// without a second lock acquisition) without needing Go's sync.Mutex,
// which isn't actually reentrant, to pretend to be.
package store

import (
	"sync"
	"time"

	"github.com/mshaverdo/assert"
)

// Kind discriminates the tagged-variant value kinds a key can hold.
type Kind int

const (
	KindString Kind = iota
	KindList
	KindSet
	KindHash
)

func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindList:
		return "list"
	case KindSet:
		return "set"
	case KindHash:
		return "hash"
	default:
		return "unknown"
	}
}

// entry is the tagged variant stored per key. Exactly one of the payload
// fields is meaningful, selected by kind.
type entry struct {
	kind Kind
	str  string
	list []string
	set  map[string]struct{}
	hash map[string]string
}

// Store is the single shared keyspace: a map of key to typed entry plus
// a parallel map of per-key absolute expiry instants, both guarded by
// one mutex.
type Store struct {
	mu       sync.Mutex
	data     map[string]*entry
	expireAt map[string]time.Time
}

// New constructs an empty Store.
func New() *Store {
	return &Store{
		data:     make(map[string]*entry),
		expireAt: make(map[string]time.Time),
	}
}

// --- locked helpers: caller must already hold s.mu ---

// expireIfNeededLocked removes key from data/expireAt if its expiry has
// elapsed. Returns true if key is now (or was already) absent.
func (s *Store) expireIfNeededLocked(key string) bool {
	if at, ok := s.expireAt[key]; ok {
		if !time.Now().Before(at) {
			delete(s.data, key)
			delete(s.expireAt, key)
			return true
		}
	}
	_, present := s.data[key]
	return !present
}

func (s *Store) getLocked(key string) (*entry, bool) {
	if s.expireIfNeededLocked(key) {
		return nil, false
	}
	e, ok := s.data[key]
	return e, ok
}

func (s *Store) deleteLocked(key string) bool {
	_, existed := s.getLocked(key)
	delete(s.data, key)
	delete(s.expireAt, key)
	return existed
}

// putLocked replaces any prior value at key and clears any prior expiry.
func (s *Store) putLocked(key string, e *entry) {
	assert.True(e != nil, "trying to put nil entry into store")
	s.data[key] = e
	delete(s.expireAt, key)
}

// dropIfEmptyLocked removes key if its collection-kind entry has become empty.
func (s *Store) dropIfEmptyLocked(key string, e *entry) {
	switch e.kind {
	case KindList:
		if len(e.list) == 0 {
			s.deleteLocked(key)
		}
	case KindSet:
		if len(e.set) == 0 {
			s.deleteLocked(key)
		}
	case KindHash:
		if len(e.hash) == 0 {
			s.deleteLocked(key)
		}
	}
}

// checkKindLocked resolves the live entry at key, if any, and verifies it
// matches want. If absent, ok is false and err is nil. If present with a
// different kind, err is ErrWrongType.
func (s *Store) checkKindLocked(key string, want Kind) (e *entry, ok bool, err error) {
	e, ok = s.getLocked(key)
	if !ok {
		return nil, false, nil
	}
	if e.kind != want {
		return nil, true, ErrWrongType
	}
	return e, true, nil
}

// --- exported, kind-agnostic operations ---

// Exists reports whether key is live (present and unexpired).
func (s *Store) Exists(key string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.getLocked(key)
	return ok
}

// ExistsCount returns the number of keys in keys that are live, counting
// duplicates multiple times.
func (s *Store) ExistsCount(keys []string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	count := 0
	for _, k := range keys {
		if _, ok := s.getLocked(k); ok {
			count++
		}
	}
	return count
}

// Delete removes the given keys, ignoring absent ones, and returns the
// count actually removed.
func (s *Store) Delete(keys ...string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	count := 0
	for _, k := range keys {
		if s.deleteLocked(k) {
			count++
		}
	}
	return count
}

// FlushAll removes every key and expiry.
func (s *Store) FlushAll() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data = make(map[string]*entry)
	s.expireAt = make(map[string]time.Time)
}

// SetExpiry records an absolute expiry instant, secondsFromNow in the
// future. Non-positive values cause immediate deletion. Returns false if
// key is absent.
func (s *Store) SetExpiry(key string, secondsFromNow int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.getLocked(key); !ok {
		return false
	}

	if secondsFromNow <= 0 {
		s.deleteLocked(key)
		return true
	}

	s.expireAt[key] = time.Now().Add(time.Duration(secondsFromNow) * time.Second)
	return true
}

// Persist clears any TTL on key without deleting it. Returns true if a
// TTL was present and cleared.
func (s *Store) Persist(key string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.getLocked(key); !ok {
		return false
	}
	if _, hadTTL := s.expireAt[key]; !hadTTL {
		return false
	}
	delete(s.expireAt, key)
	return true
}

// TTL returns -2 if key is absent, -1 if it has no expiry, else the
// ceiling of the remaining seconds.
func (s *Store) TTL(key string) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.getLocked(key); !ok {
		return -2
	}

	at, ok := s.expireAt[key]
	if !ok {
		return -1
	}

	remaining := time.Until(at)
	seconds := int64(remaining / time.Second)
	if remaining%time.Second > 0 {
		seconds++
	}
	if seconds < 0 {
		seconds = 0
	}
	return seconds
}

// KeysMatching returns all live keys matching the glob pattern.
func (s *Store) KeysMatching(pattern string) []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	result := make([]string, 0, len(s.data))
	for k := range s.data {
		if s.expireIfNeededLocked(k) {
			continue
		}
		if matchGlob(pattern, k) {
			result = append(result, k)
		}
	}
	return result
}

// TypeOf returns the simple-string kind name for key, or ("none", false)
// if absent.
func (s *Store) TypeOf(key string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.getLocked(key)
	if !ok {
		return "none", false
	}
	return e.kind.String(), true
}

// Rename atomically moves the value (and TTL) at key to newkey,
// overwriting newkey if present. Returns false if key is absent.
func (s *Store) Rename(key, newkey string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.getLocked(key)
	if !ok {
		return false
	}

	at, hadTTL := s.expireAt[key]

	delete(s.data, key)
	delete(s.expireAt, key)

	s.data[newkey] = e
	if hadTTL {
		s.expireAt[newkey] = at
	} else {
		delete(s.expireAt, newkey)
	}

	return true
}
