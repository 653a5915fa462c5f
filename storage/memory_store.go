package storage

import (
	"context"
	"sync"
	"time"
)

// MemoryStore is the in-process fallback backend. It implements the same
// contract as the Redis store over plain maps and sets, so nothing above the
// port can tell which backend is active. No durability across restarts.
type MemoryStore struct {
	mu     sync.RWMutex
	values map[string]memoryEntry
	sets   map[string]memorySet

	// now is swappable so tests can control expiry.
	now func() time.Time
}

type memoryEntry struct {
	value     string
	expiresAt time.Time
}

type memorySet struct {
	members   map[string]struct{}
	expiresAt time.Time // zero means no expiry set yet
}

// NewMemoryStore constructs an empty in-process store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		values: make(map[string]memoryEntry),
		sets:   make(map[string]memorySet),
		now:    time.Now,
	}
}

func (s *MemoryStore) Get(_ context.Context, key string) (string, error) {
	s.mu.RLock()
	entry, ok := s.values[key]
	s.mu.RUnlock()

	if !ok || s.now().After(entry.expiresAt) {
		return "", ErrNotFound
	}
	return entry.value, nil
}

func (s *MemoryStore) SetWithTTL(_ context.Context, key, value string, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.values[key] = memoryEntry{value: value, expiresAt: s.now().Add(ttl)}
	return nil
}

func (s *MemoryStore) SetIfAbsent(_ context.Context, key, value string, ttl time.Duration) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if entry, ok := s.values[key]; ok && !s.now().After(entry.expiresAt) {
		return false, nil
	}
	s.values[key] = memoryEntry{value: value, expiresAt: s.now().Add(ttl)}
	return true, nil
}

func (s *MemoryStore) AddToSet(_ context.Context, setKey, member string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	set, ok := s.sets[setKey]
	if !ok || s.setExpired(set) {
		set = memorySet{members: make(map[string]struct{})}
	}
	set.members[member] = struct{}{}
	s.sets[setKey] = set
	return nil
}

func (s *MemoryStore) SetMembers(_ context.Context, setKey string) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	set, ok := s.sets[setKey]
	if !ok || s.setExpired(set) {
		return []string{}, nil
	}
	members := make([]string, 0, len(set.members))
	for member := range set.members {
		members = append(members, member)
	}
	return members, nil
}

func (s *MemoryStore) Exists(_ context.Context, key string) (bool, error) {
	s.mu.RLock()
	entry, ok := s.values[key]
	s.mu.RUnlock()

	return ok && !s.now().After(entry.expiresAt), nil
}

func (s *MemoryStore) Expire(_ context.Context, key string, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if entry, ok := s.values[key]; ok {
		entry.expiresAt = s.now().Add(ttl)
		s.values[key] = entry
		return nil
	}
	if set, ok := s.sets[key]; ok {
		set.expiresAt = s.now().Add(ttl)
		s.sets[key] = set
	}
	return nil
}

// Purge drops every expired value and set. Reads already treat expired
// entries as absent; this reclaims the memory behind them. It is scheduled
// from the cleanup job and returns the number of entries removed.
func (s *MemoryStore) Purge() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	now := s.now()
	for key, entry := range s.values {
		if now.After(entry.expiresAt) {
			delete(s.values, key)
			removed++
		}
	}
	for key, set := range s.sets {
		if !set.expiresAt.IsZero() && now.After(set.expiresAt) {
			delete(s.sets, key)
			removed++
		}
	}
	return removed
}

func (s *MemoryStore) setExpired(set memorySet) bool {
	return !set.expiresAt.IsZero() && s.now().After(set.expiresAt)
}
