package credstore

import (
	"path/filepath"
	"testing"
	"time"
)

func TestMemoryRoundTrip(t *testing.T) {
	m := NewMemory()

	if err := m.Set(AccessTokenKey, "A1", Options{}); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	got, ok := m.Get(AccessTokenKey)
	if !ok || got != "A1" {
		t.Fatalf("expected A1, got %q (present=%v)", got, ok)
	}

	m.Remove(AccessTokenKey)
	if _, ok := m.Get(AccessTokenKey); ok {
		t.Fatal("expected value to be absent after Remove")
	}

	// Remove is idempotent.
	m.Remove(AccessTokenKey)
}

func TestMemoryExpiry(t *testing.T) {
	m := NewMemory()
	base := time.Now()
	m.now = func() time.Time { return base }

	if err := m.Set(AccessTokenKey, "A1", Options{LifetimeDays: 7}); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	m.now = func() time.Time { return base.Add(6 * 24 * time.Hour) }
	if _, ok := m.Get(AccessTokenKey); !ok {
		t.Fatal("expected value to still be present before expiry")
	}

	m.now = func() time.Time { return base.Add(8 * 24 * time.Hour) }
	if _, ok := m.Get(AccessTokenKey); ok {
		t.Fatal("expected value to be absent after storage lifetime")
	}
}

func TestCookieFileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "credentials.json")
	c := NewCookieFile(path)

	if err := c.Set(AccessTokenKey, "A1", Options{}); err != nil {
		t.Fatalf("Set access token failed: %v", err)
	}
	if err := c.Set(RefreshTokenKey, "R1", Options{}); err != nil {
		t.Fatalf("Set refresh token failed: %v", err)
	}

	// A fresh instance reading the same file sees the values.
	c2 := NewCookieFile(path)
	if got, ok := c2.Get(AccessTokenKey); !ok || got != "A1" {
		t.Fatalf("expected A1, got %q (present=%v)", got, ok)
	}
	if got, ok := c2.Get(RefreshTokenKey); !ok || got != "R1" {
		t.Fatalf("expected R1, got %q (present=%v)", got, ok)
	}

	c2.Remove(AccessTokenKey)
	c2.Remove(RefreshTokenKey)
	if _, ok := c2.Get(AccessTokenKey); ok {
		t.Fatal("access token should be absent after Remove")
	}
	if _, ok := c2.Get(RefreshTokenKey); ok {
		t.Fatal("refresh token should be absent after Remove")
	}
}

func TestCookieFileExpiredEntryReadsAbsent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "credentials.json")
	c := NewCookieFile(path)
	base := time.Now()
	c.now = func() time.Time { return base }

	if err := c.Set(AccessTokenKey, "A1", Options{LifetimeDays: 7}); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	c.now = func() time.Time { return base.Add(7*24*time.Hour + time.Minute) }
	if _, ok := c.Get(AccessTokenKey); ok {
		t.Fatal("expected expired entry to read as absent")
	}
}

func TestCookieFileMissingFile(t *testing.T) {
	c := NewCookieFile(filepath.Join(t.TempDir(), "nope", "credentials.json"))
	if _, ok := c.Get(AccessTokenKey); ok {
		t.Fatal("expected absent for missing file")
	}
	// Remove on a missing file is a no-op.
	c.Remove(AccessTokenKey)
}

func TestDefaultOptions(t *testing.T) {
	if d := DefaultOptions(AccessTokenKey).LifetimeDays; d != 7 {
		t.Fatalf("expected access token lifetime 7, got %d", d)
	}
	if d := DefaultOptions(RefreshTokenKey).LifetimeDays; d != 30 {
		t.Fatalf("expected refresh token lifetime 30, got %d", d)
	}
	if p := DefaultOptions(AccessTokenKey).Path; p != "/" {
		t.Fatalf("expected path /, got %s", p)
	}
}
