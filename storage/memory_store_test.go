package storage

import (
	"context"
	"sort"
	"testing"
	"time"
)

// fixedClock lets tests march the store's clock forward deterministically.
type fixedClock struct {
	now time.Time
}

func (c *fixedClock) advance(d time.Duration) {
	c.now = c.now.Add(d)
}

func newTestStore() (*MemoryStore, *fixedClock) {
	clock := &fixedClock{now: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)}
	store := NewMemoryStore()
	store.now = func() time.Time { return clock.now }
	return store, clock
}

// TestGetReturnsStoredValue ensures a value set with a TTL can be read back.
func TestGetReturnsStoredValue(t *testing.T) {
	store, _ := newTestStore()
	ctx := context.Background()

	if err := store.SetWithTTL(ctx, "question:1", `{"id":"1"}`, time.Hour); err != nil {
		t.Fatalf("set: %v", err)
	}
	value, err := store.Get(ctx, "question:1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if value != `{"id":"1"}` {
		t.Fatalf("got %q", value)
	}
}

// TestGetMissingKeyReturnsErrNotFound ensures absent keys surface the sentinel.
func TestGetMissingKeyReturnsErrNotFound(t *testing.T) {
	store, _ := newTestStore()

	if _, err := store.Get(context.Background(), "nope"); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

// TestGetExpiredKeyReturnsErrNotFound ensures values vanish once the TTL passes.
func TestGetExpiredKeyReturnsErrNotFound(t *testing.T) {
	store, clock := newTestStore()
	ctx := context.Background()

	if err := store.SetWithTTL(ctx, "k", "v", time.Minute); err != nil {
		t.Fatalf("set: %v", err)
	}
	clock.advance(2 * time.Minute)

	if _, err := store.Get(ctx, "k"); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if ok, _ := store.Exists(ctx, "k"); ok {
		t.Fatal("expired key should not exist")
	}
}

// TestSetIfAbsentOnlyFirstCallWins ensures the atomic claim admits one writer.
func TestSetIfAbsentOnlyFirstCallWins(t *testing.T) {
	store, _ := newTestStore()
	ctx := context.Background()

	won, err := store.SetIfAbsent(ctx, "guard", "true", time.Hour)
	if err != nil {
		t.Fatalf("first claim: %v", err)
	}
	if !won {
		t.Fatal("first claim should win")
	}

	won, err = store.SetIfAbsent(ctx, "guard", "true", time.Hour)
	if err != nil {
		t.Fatalf("second claim: %v", err)
	}
	if won {
		t.Fatal("second claim should lose")
	}
}

// TestSetIfAbsentReclaimsExpiredKey ensures an expired claim can be taken again.
func TestSetIfAbsentReclaimsExpiredKey(t *testing.T) {
	store, clock := newTestStore()
	ctx := context.Background()

	if _, err := store.SetIfAbsent(ctx, "guard", "true", time.Minute); err != nil {
		t.Fatalf("claim: %v", err)
	}
	clock.advance(2 * time.Minute)

	won, err := store.SetIfAbsent(ctx, "guard", "true", time.Minute)
	if err != nil {
		t.Fatalf("reclaim: %v", err)
	}
	if !won {
		t.Fatal("expired claim should be reclaimable")
	}
}

// TestSetMembersOfMissingSetIsEmpty ensures absent sets read as empty, not errors.
func TestSetMembersOfMissingSetIsEmpty(t *testing.T) {
	store, _ := newTestStore()

	members, err := store.SetMembers(context.Background(), "none")
	if err != nil {
		t.Fatalf("members: %v", err)
	}
	if len(members) != 0 {
		t.Fatalf("expected empty set, got %v", members)
	}
}

// TestAddToSetCollectsMembers ensures set adds accumulate and deduplicate.
func TestAddToSetCollectsMembers(t *testing.T) {
	store, _ := newTestStore()
	ctx := context.Background()

	for _, member := range []string{"q1", "q2", "q1"} {
		if err := store.AddToSet(ctx, "questions:recent", member); err != nil {
			t.Fatalf("add %s: %v", member, err)
		}
	}

	members, err := store.SetMembers(ctx, "questions:recent")
	if err != nil {
		t.Fatalf("members: %v", err)
	}
	sort.Strings(members)
	if len(members) != 2 || members[0] != "q1" || members[1] != "q2" {
		t.Fatalf("got %v", members)
	}
}

// TestExpireAgesOutSet ensures Expire applies a TTL to an existing set.
func TestExpireAgesOutSet(t *testing.T) {
	store, clock := newTestStore()
	ctx := context.Background()

	if err := store.AddToSet(ctx, "idx", "a"); err != nil {
		t.Fatalf("add: %v", err)
	}
	if err := store.Expire(ctx, "idx", time.Minute); err != nil {
		t.Fatalf("expire: %v", err)
	}
	clock.advance(2 * time.Minute)

	members, err := store.SetMembers(ctx, "idx")
	if err != nil {
		t.Fatalf("members: %v", err)
	}
	if len(members) != 0 {
		t.Fatalf("expected expired set to be empty, got %v", members)
	}
}

// TestPurgeReclaimsExpiredEntries ensures Purge removes only dead entries.
func TestPurgeReclaimsExpiredEntries(t *testing.T) {
	store, clock := newTestStore()
	ctx := context.Background()

	if err := store.SetWithTTL(ctx, "old", "v", time.Minute); err != nil {
		t.Fatalf("set old: %v", err)
	}
	if err := store.AddToSet(ctx, "old-set", "m"); err != nil {
		t.Fatalf("add: %v", err)
	}
	if err := store.Expire(ctx, "old-set", time.Minute); err != nil {
		t.Fatalf("expire: %v", err)
	}
	clock.advance(30 * time.Minute)
	if err := store.SetWithTTL(ctx, "fresh", "v", time.Hour); err != nil {
		t.Fatalf("set fresh: %v", err)
	}

	if removed := store.Purge(); removed != 2 {
		t.Fatalf("expected 2 purged entries, got %d", removed)
	}
	if _, err := store.Get(ctx, "fresh"); err != nil {
		t.Fatalf("fresh entry should survive purge: %v", err)
	}
}
