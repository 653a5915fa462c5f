// Package storage provides the key-value/set port the repositories persist
// through, with a Redis-backed implementation for production and an in-process
// implementation for local development.
package storage

import (
	"context"
	"errors"
	"time"
)

// DefaultTTL is the retention window for every persisted key. Questions,
// answers and their indexes all age out together after 24 hours.
const DefaultTTL = 24 * time.Hour

// ErrNotFound is returned by Get when a key is absent or expired.
var ErrNotFound = errors.New("storage: key not found")

// Store is the storage port. Values are opaque strings (the repositories store
// JSON). Set operations back the membership indexes; SetIfAbsent is the atomic
// claim used for the one-answer-per-user guard.
type Store interface {
	// Get returns the value at key, or ErrNotFound.
	Get(ctx context.Context, key string) (string, error)

	// SetWithTTL stores value at key, expiring after ttl.
	SetWithTTL(ctx context.Context, key, value string, ttl time.Duration) error

	// SetIfAbsent stores value at key only if the key does not exist, and
	// reports whether this call won the claim.
	SetIfAbsent(ctx context.Context, key, value string, ttl time.Duration) (bool, error)

	// AddToSet adds member to the set at setKey, creating the set if needed.
	AddToSet(ctx context.Context, setKey, member string) error

	// SetMembers returns the members of the set at setKey; an absent set
	// yields an empty slice, not an error.
	SetMembers(ctx context.Context, setKey string) ([]string, error)

	// Exists reports whether key currently holds a live value.
	Exists(ctx context.Context, key string) (bool, error)

	// Expire sets or refreshes the ttl on an existing key.
	Expire(ctx context.Context, key string, ttl time.Duration) error
}
