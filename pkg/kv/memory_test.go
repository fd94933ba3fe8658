package kv

import (
	"context"
	"errors"
	"sort"
	"testing"
	"time"
)

func TestMemoryStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	if err := s.Set(ctx, "a", []byte("1"), 0); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	got, err := s.Get(ctx, "a")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if string(got) != "1" {
		t.Fatalf("expected 1, got %s", got)
	}

	if err := s.Delete(ctx, "a"); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if _, err := s.Get(ctx, "a"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	// Delete of a missing key is not an error.
	if err := s.Delete(ctx, "a"); err != nil {
		t.Fatalf("Delete of missing key failed: %v", err)
	}
}

func TestMemoryStoreTTL(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	if err := s.Set(ctx, "a", []byte("1"), 10*time.Millisecond); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	time.Sleep(30 * time.Millisecond)
	if _, err := s.Get(ctx, "a"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected expired key to be gone, got %v", err)
	}
}

func TestMemoryStoreKeys(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	for _, k := range []string{"cat:1", "cat:2", "news:1"} {
		if err := s.Set(ctx, k, []byte("x"), 0); err != nil {
			t.Fatalf("Set failed: %v", err)
		}
	}

	keys, err := s.Keys(ctx, "cat:")
	if err != nil {
		t.Fatalf("Keys failed: %v", err)
	}
	sort.Strings(keys)
	if len(keys) != 2 || keys[0] != "cat:1" || keys[1] != "cat:2" {
		t.Fatalf("unexpected keys: %v", keys)
	}
}
